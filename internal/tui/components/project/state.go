package project

import (
	"fmt"

	"github.com/julianstephens/onetake/internal/constants"
	"github.com/julianstephens/onetake/internal/models"
)

type Tab int

const (
	TabOverview Tab = iota
	TabTeam
	TabMilestones
)

// Tabs lists the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabTeam, TabMilestones}
}

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabTeam:
		return "team"
	case TabMilestones:
		return "milestones"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return constants.TabOverview
	case TabTeam:
		return constants.TabTeam
	case TabMilestones:
		return constants.TabMilestones
	default:
		return t.String()
	}
}

// ParseTab accepts a tab name as typed on the command line.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if t.String() == s {
			return t, nil
		}
	}
	return TabOverview, fmt.Errorf("unknown tab %q", s)
}

// State is the project screen view-model.
type State struct {
	Active Tab
}

// Valid reports whether t is one of Tabs.
func (t Tab) Valid() bool {
	return t >= TabOverview && t <= TabMilestones
}

// SelectTab replaces the active tab. The previous tab leaves no trace.
// An unknown tab leaves the state unchanged.
func (s State) SelectTab(t Tab) State {
	if t.Valid() {
		s.Active = t
	}
	return s
}

// View is one of OverviewView, TeamView or MilestonesView.
type View interface {
	isView()
}

type OverviewView struct {
	Description     string
	StartDate       string
	Deadline        string
	ProgressPercent int
	// Fill is the bar fill ratio in [0,1]
	Fill float64
}

type MemberView struct {
	Initials string
	Name     string
	Role     string
}

type TeamView struct {
	Members []MemberView
}

type MilestonesView struct {
	Items []models.Milestone
}

func (OverviewView) isView()   {}
func (TeamView) isView()       {}
func (MilestonesView) isView() {}

// Derive produces the view for the active tab. Each variant reads only the
// project fields its tab shows.
func Derive(s State, p models.Project) View {
	switch s.Active {
	case TabTeam:
		members := make([]MemberView, len(p.Team))
		for i, m := range p.Team {
			members[i] = MemberView{Initials: models.Initials(m.Name), Name: m.Name, Role: m.Role}
		}
		return TeamView{Members: members}
	case TabMilestones:
		items := make([]models.Milestone, len(p.Milestones))
		copy(items, p.Milestones)
		return MilestonesView{Items: items}
	case TabOverview:
		pct := ClampPercent(p.ProgressPercent)
		return OverviewView{
			Description:     p.Description,
			StartDate:       p.StartDate,
			Deadline:        p.Deadline,
			ProgressPercent: pct,
			Fill:            ProgressFill(pct),
		}
	default:
		panic(fmt.Sprintf("project: derive for unknown tab %s", s.Active))
	}
}

// ClampPercent limits p to [0,100].
func ClampPercent(p int) int {
	return max(0, min(100, p))
}

// ProgressFill is the bar fill ratio for a percentage.
func ProgressFill(p int) float64 {
	return float64(ClampPercent(p)) / 100
}
