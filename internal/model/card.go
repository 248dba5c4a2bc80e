package model

import (
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Card belongs to exactly one column at a time. ColumnID is the
// back-reference; the owning column's Cards slice is the source of truth for
// membership and the two must always agree. Order is the fractional sort key
// among siblings.
type Card struct {
	ID          string       `json:"id"`
	ColumnID    string       `json:"columnId"`
	Order       float64      `json:"order"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    Priority     `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	Weight      *float64     `json:"weight,omitempty"`
	Labels      []Label      `json:"labels"`
	Assignees   []User       `json:"assignees"`
	Attachments []Attachment `json:"attachments"`
	Comments    []Comment    `json:"comments"`
}

func (c *Card) Clone() Card {
	out := *c
	if c.DueDate != nil {
		due := *c.DueDate
		out.DueDate = &due
	}
	if c.Weight != nil {
		w := *c.Weight
		out.Weight = &w
	}
	out.Labels = append([]Label(nil), c.Labels...)
	out.Assignees = append([]User(nil), c.Assignees...)
	out.Attachments = append([]Attachment(nil), c.Attachments...)
	out.Comments = append([]Comment(nil), c.Comments...)
	return out
}

// LabelIndex returns the index of the label on this card, or -1.
func (c *Card) LabelIndex(labelID string) int {
	for i := range c.Labels {
		if c.Labels[i].ID == labelID {
			return i
		}
	}
	return -1
}

// AssigneeIndex returns the index of the assignee on this card, or -1.
func (c *Card) AssigneeIndex(userID string) int {
	for i := range c.Assignees {
		if c.Assignees[i].ID == userID {
			return i
		}
	}
	return -1
}
