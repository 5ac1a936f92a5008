package models

// Category groups catalog entries. CategoryAll is only a filter value;
// no entry carries it.
type Category string

const (
	CategoryAll       Category = "all"
	CategorySocial    Category = "social"
	CategoryContent   Category = "content"
	CategoryMarketing Category = "marketing"
)

type CategoryInfo struct {
	ID    Category
	Label string
	Icon  string
}

// Categories lists the filter chips in display order, "all" first.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryAll, Label: "Todos", Icon: "th-large"},
		{ID: CategorySocial, Label: "Social", Icon: "share-alt"},
		{ID: CategoryContent, Label: "Conteúdo", Icon: "file-alt"},
		{ID: CategoryMarketing, Label: "Marketing", Icon: "bullhorn"},
	}
}

// ParseCategory accepts a category id as typed on the command line.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c.ID) == s {
			return c.ID, true
		}
	}
	return "", false
}

type Service struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
}
