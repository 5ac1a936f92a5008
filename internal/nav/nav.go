package nav

import (
	"errors"
	"fmt"
	"slices"

	"github.com/julianstephens/onetake/internal/constants"
)

// Screen identifies one full-viewport state of the app.
type Screen int

const (
	Login Screen = iota
	Dashboard
	ProjectDetails
	ServiceCatalog
	Chat
)

func (s Screen) String() string {
	switch s {
	case Login:
		return "login"
	case Dashboard:
		return "dashboard"
	case ProjectDetails:
		return "project-details"
	case ServiceCatalog:
		return "service-catalog"
	case Chat:
		return "chat"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Title is the header text; Login has none.
func (s Screen) Title() string {
	switch s {
	case Dashboard:
		return constants.TitleDashboard
	case ProjectDetails:
		return constants.TitleProjectDetails
	case ServiceCatalog:
		return constants.TitleServiceCatalog
	case Chat:
		return constants.TitleChat
	default:
		return ""
	}
}

// Mode is how a transition affects the back stack.
type Mode int

const (
	Push Mode = iota
	Replace
)

func (m Mode) String() string {
	if m == Replace {
		return "replace"
	}
	return "push"
}

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrUnauthenticated      = errors.New("authentication required")
)

// TransitionError describes a refused transition.
type TransitionError struct {
	From, To Screen
	Mode     Mode
	Err      error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %s -> %s: %v", e.Mode, e.From, e.To, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

type edge struct {
	from, to Screen
	mode     Mode
}

// edges is the whole navigation graph. Anything not listed is refused.
var edges = map[edge]bool{
	{Login, Dashboard, Replace}:       true,
	{Dashboard, Chat, Push}:           true,
	{Dashboard, ProjectDetails, Push}: true,
	{Dashboard, ServiceCatalog, Push}: true,
}

// Stack is the navigation shell: a back stack rooted at Login.
type Stack struct {
	screens []Screen
	// authorized gates every screen except Login.
	authorized func() bool
}

func NewStack(authorized func() bool) Stack {
	if authorized == nil {
		authorized = func() bool { return false }
	}
	return Stack{screens: []Screen{Login}, authorized: authorized}
}

func (s Stack) Current() Screen {
	if len(s.screens) == 0 {
		return Login
	}
	return s.screens[len(s.screens)-1]
}

func (s Stack) Depth() int {
	return len(s.screens)
}

// History returns the stack bottom to top.
func (s Stack) History() []Screen {
	return slices.Clone(s.screens)
}

// Navigate applies a transition. On error the stack is unchanged.
func (s *Stack) Navigate(to Screen, mode Mode) error {
	from := s.Current()
	if !edges[edge{from, to, mode}] {
		return &TransitionError{From: from, To: to, Mode: mode, Err: ErrTransitionNotAllowed}
	}
	if to != Login && !s.authorized() {
		return &TransitionError{From: from, To: to, Mode: mode, Err: ErrUnauthenticated}
	}

	switch mode {
	case Replace:
		// Replace drops the whole history so back can never reach the
		// screen being replaced.
		s.screens = []Screen{to}
	case Push:
		s.screens = append(slices.Clip(s.screens), to)
	}
	return nil
}

// Back pops the top screen. It reports false at the root.
func (s *Stack) Back() (Screen, bool) {
	if len(s.screens) <= 1 {
		return s.Current(), false
	}
	s.screens = slices.Clone(s.screens[:len(s.screens)-1])
	return s.Current(), true
}

// Reset returns to the initial state, used on logout.
func (s *Stack) Reset() {
	s.screens = []Screen{Login}
}
