package models

import "time"

// Notification types accepted by the API.
const (
	NotificationInfo    = "Info"
	NotificationWarning = "Warning"
	NotificationAlert   = "Alert"
)

// Notification is a short-lived message pushed to the dashboard bell.
type Notification struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Type      string    `json:"type" db:"type"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
