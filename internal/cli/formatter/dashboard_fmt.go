package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// StatusTally mirrors the per-status counts shown on the dashboard.
type StatusTally struct {
	NotStarted, InProgress, Completed int
}

// OverdueRow is one overdue task or note.
type OverdueRow struct {
	Kind   domain.EventKind
	Title  string
	Client string
	Due    string
}

// DashboardView is the data rendered by FormatDashboard.
type DashboardView struct {
	Clients int
	Tasks   StatusTally
	Notes   StatusTally
	Overdue []OverdueRow
}

// FormatDashboard renders the overview counters and the overdue list.
func FormatDashboard(v DashboardView, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", StyleDim.Render("Clients"), v.Clients)

	rows := [][]string{
		tallyRow("Tasks", v.Tasks),
		tallyRow("Notes", v.Notes),
	}
	b.WriteString(RenderTable([]string{"", "NOT STARTED", "IN PROGRESS", "COMPLETED", "DONE"}, rows))

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Overdue (%d)", len(v.Overdue))))
	b.WriteString("\n")
	if len(v.Overdue) == 0 {
		b.WriteString(StyleGreen.Render("Nothing overdue."))
	} else {
		overdue := make([][]string, 0, len(v.Overdue))
		for _, o := range v.Overdue {
			overdue = append(overdue, []string{kindBadge(o.Kind), Truncate(o.Title, 48), OrDash(o.Client), DueLabel(o.Due, now)})
		}
		b.WriteString(strings.TrimRight(RenderTable([]string{"KIND", "TITLE", "CLIENT", "DUE"}, overdue), "\n"))
	}
	return RenderBox("Dashboard", b.String())
}

func tallyRow(label string, t StatusTally) []string {
	total := t.NotStarted + t.InProgress + t.Completed
	ratio := 0.0
	if total > 0 {
		ratio = float64(t.Completed) / float64(total)
	}
	return []string{
		Bold(label),
		fmt.Sprint(t.NotStarted),
		fmt.Sprint(t.InProgress),
		fmt.Sprint(t.Completed),
		RenderProgress(ratio, 10),
	}
}

func kindBadge(k domain.EventKind) string {
	if k == domain.EventTask {
		return StyleYellow.Render("task")
	}
	return StylePurple.Render("note")
}

// FormatCalendar groups events under one heading per day.
func FormatCalendar(events []domain.CalendarEvent) string {
	if len(events) == 0 {
		return Dim("No events in range.") + "\n"
	}
	var b strings.Builder
	var current time.Time
	for i, e := range events {
		if i == 0 || !e.Date.Equal(current) {
			if i > 0 {
				b.WriteString("\n")
			}
			current = e.Date
			b.WriteString(StyleHeader.Render(e.Date.Format("Mon Jan 2, 2006")) + "\n")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", kindBadge(e.Kind), StatusPill(e.Status), e.Title)
	}
	return b.String()
}
