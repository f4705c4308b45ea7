package models

// TimetableEntry is one period in the weekly class timetable.
// StartTime and EndTime are 24h "HH:MM" strings.
type TimetableEntry struct {
	ID        string `json:"id" db:"id"`
	Day       string `json:"day" db:"day"`
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
	Subject   string `json:"subject" db:"subject"`
	Room      string `json:"room,omitempty" db:"room"`
}

// Days of the teaching week, in display order.
var TimetableDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
