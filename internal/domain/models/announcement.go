package models

import "time"

// Announcement priorities accepted by the API.
const (
	PriorityNormal    = "Normal"
	PriorityImportant = "Important"
	PriorityUrgent    = "Urgent"
)

// Announcement is a dated notice shown on the dashboard. Date and
// Deadline are free-form display strings entered by the admin; ordering
// is always by CreatedAt, newest first.
type Announcement struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Priority  string    `json:"priority" db:"priority"`
	Date      string    `json:"date,omitempty" db:"date"`
	Deadline  string    `json:"deadline,omitempty" db:"deadline"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
