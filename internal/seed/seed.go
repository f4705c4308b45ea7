package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"classboard/internal/domain/services"
)

// File is the YAML layout of a seed file: the weekly timetable and any
// starting announcements.
type File struct {
	Timetable     []TimetableEntry `yaml:"timetable"`
	Announcements []Announcement   `yaml:"announcements"`
}

// TimetableEntry mirrors services.TimetableInput in YAML form.
type TimetableEntry struct {
	Day       string `yaml:"day"`
	StartTime string `yaml:"start"`
	EndTime   string `yaml:"end"`
	Subject   string `yaml:"subject"`
	Room      string `yaml:"room"`
}

// Announcement mirrors services.AnnouncementInput in YAML form.
type Announcement struct {
	Title    string `yaml:"title"`
	Content  string `yaml:"content"`
	Priority string `yaml:"priority"`
	Date     string `yaml:"date"`
	Deadline string `yaml:"deadline"`
}

// Load parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	return &f, nil
}

// Apply inserts the seed data through the services so the usual
// validation applies to seeded rows too.
func Apply(
	ctx context.Context,
	f *File,
	timetable services.TimetableService,
	bulletin services.BulletinService,
	logger *slog.Logger,
) error {
	for _, entry := range f.Timetable {
		_, err := timetable.Create(ctx, &services.TimetableInput{
			Day:       entry.Day,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
			Subject:   entry.Subject,
			Room:      entry.Room,
		})
		if err != nil {
			return fmt.Errorf("seed timetable entry %s %s: %w", entry.Day, entry.StartTime, err)
		}
	}

	for _, a := range f.Announcements {
		_, err := bulletin.CreateAnnouncement(ctx, &services.AnnouncementInput{
			Title:    a.Title,
			Content:  a.Content,
			Priority: a.Priority,
			Date:     a.Date,
			Deadline: a.Deadline,
		})
		if err != nil {
			return fmt.Errorf("seed announcement %q: %w", a.Title, err)
		}
	}

	logger.Info("seed applied",
		"timetable_entries", len(f.Timetable),
		"announcements", len(f.Announcements),
	)

	return nil
}
