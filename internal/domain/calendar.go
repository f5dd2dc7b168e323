package domain

import (
	"sort"
	"time"
)

type EventKind string

const (
	EventTask EventKind = "task"
	EventNote EventKind = "note"
)

// CalendarEvent is one all-day entry on the calendar, sourced from either a
// task or a client note.
type CalendarEvent struct {
	Kind      EventKind
	ID        string
	Title     string
	Date      time.Time
	Status    Status
	ClientID  string
	CreatedAt *time.Time // notes only
}

// BuildCalendar collects dated tasks and notes that fall within [from, to]
// (inclusive, by date) and sorts them by date then kind then id. Tasks
// without a parseable due date are left out. Notes are dated by their due
// date, or by their creation date when they have none. A zero from or to
// leaves that side open.
func BuildCalendar(clients []Client, tasks []Task, from, to time.Time) []CalendarEvent {
	var events []CalendarEvent
	for _, t := range tasks {
		d, ok := ParseDate(t.DueDate)
		if !ok {
			continue
		}
		events = append(events, CalendarEvent{
			Kind:     EventTask,
			ID:       t.ID,
			Title:    t.Title,
			Date:     d,
			Status:   t.Status,
			ClientID: t.ClientID,
		})
	}
	for _, c := range clients {
		for _, n := range c.Notes {
			created := n.CreatedAt
			d := dateOnly(created)
			if n.DueDate != nil {
				if due, ok := ParseDate(*n.DueDate); ok {
					d = due
				}
			}
			events = append(events, CalendarEvent{
				Kind:      EventNote,
				ID:        n.ID,
				Title:     c.Name + ": " + n.Content,
				Date:      d,
				Status:    n.Status,
				ClientID:  c.ID,
				CreatedAt: &created,
			})
		}
	}

	filtered := events[:0]
	for _, e := range events {
		if !from.IsZero() && e.Date.Before(dateOnly(from)) {
			continue
		}
		if !to.IsZero() && e.Date.After(dateOnly(to)) {
			continue
		}
		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Kind != b.Kind {
			return a.Kind == EventTask
		}
		return a.ID < b.ID
	})
	return filtered
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
