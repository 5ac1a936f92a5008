package catalog

import "github.com/julianstephens/onetake/internal/models"

// State is the catalog screen view-model.
type State struct {
	Selected models.Category
}

func NewState() State {
	return State{Selected: models.CategoryAll}
}

func (s State) SelectCategory(c models.Category) State {
	s.Selected = c
	return s
}

// Filter returns the entries in category c, preserving their order.
// CategoryAll returns every entry.
func Filter(services []models.Service, c models.Category) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, svc := range services {
		if c == models.CategoryAll || svc.Category == c {
			out = append(out, svc)
		}
	}
	return out
}
