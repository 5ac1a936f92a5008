package models

import (
	"strings"
	"unicode/utf8"
)

// Status is the progress state shared by milestones and dashboard timeline steps.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
	StatusPending    Status = "pending"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPending:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusOnHold     ProjectStatus = "on-hold"
	ProjectStatusDelivered  ProjectStatus = "delivered"
)

// Label returns the badge text shown in the project header.
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectStatusPlanning:
		return "Planejamento"
	case ProjectStatusInProgress:
		return "Em Andamento"
	case ProjectStatusOnHold:
		return "Pausado"
	case ProjectStatusDelivered:
		return "Entregue"
	default:
		return string(s)
	}
}

type Member struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Milestone struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status Status `json:"status"`
	Date   string `json:"date"` // DD/MM/YYYY
}

type Project struct {
	Name            string        `json:"name"`
	Status          ProjectStatus `json:"status"`
	StartDate       string        `json:"start_date"` // DD/MM/YYYY
	Deadline        string        `json:"deadline"`   // DD/MM/YYYY
	ProgressPercent int           `json:"progress_percent"`
	Description     string        `json:"description"`
	Team            []Member      `json:"team"`
	Milestones      []Milestone   `json:"milestones"`
}

// Initials joins the first letter of each word of name, upper-cased.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
