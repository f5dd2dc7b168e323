package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/service"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show client and workload counts with overdue items",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := app.Dashboard.Summary(cmd.Context())
			if err != nil {
				return err
			}
			clients, err := app.Clients.List(cmd.Context(), service.ListOptions{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(dashboardView(sum, clients), app.now()))
			return nil
		},
	}
}

func dashboardView(sum *service.DashboardSummary, clients []domain.Client) formatter.DashboardView {
	tally := func(c service.StatusCounts) formatter.StatusTally {
		return formatter.StatusTally{NotStarted: c.NotStarted, InProgress: c.InProgress, Completed: c.Completed}
	}
	v := formatter.DashboardView{
		Clients: sum.Clients,
		Tasks:   tally(sum.Tasks),
		Notes:   tally(sum.Notes),
	}
	for _, t := range sum.OverdueTasks {
		v.Overdue = append(v.Overdue, formatter.OverdueRow{Kind: domain.EventTask, Title: t.Title, Client: domain.ClientName(clients, t.ClientID), Due: t.DueDate})
	}
	for _, n := range sum.OverdueNotes {
		due := ""
		if n.Note.DueDate != nil {
			due = *n.Note.DueDate
		}
		v.Overdue = append(v.Overdue, formatter.OverdueRow{Kind: domain.EventNote, Title: n.Note.Content, Client: n.ClientName, Due: due})
	}
	return v
}

func newCalendarCmd(app *App) *cobra.Command {
	var from, to string
	var days int

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "List dated tasks and notes by day",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := calendarRange(app.now(), from, to, days)
			if err != nil {
				return err
			}
			events, err := app.Dashboard.Calendar(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(events))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 30, "Window length when --to is not given; 0 for no end")
	return cmd
}

// calendarRange resolves the flags into an inclusive date window. A zero
// end leaves the window open.
func calendarRange(now time.Time, from, to string, days int) (time.Time, time.Time, error) {
	y, m, d := now.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if from != "" {
		t, err := time.Parse(domain.DateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: use YYYY-MM-DD", from)
		}
		start = t
	}

	var end time.Time
	switch {
	case to != "":
		t, err := time.Parse(domain.DateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: use YYYY-MM-DD", to)
		}
		end = t
	case days > 0:
		end = start.AddDate(0, 0, days-1)
	}
	if !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("--to %s is before --from %s", end.Format(domain.DateLayout), start.Format(domain.DateLayout))
	}
	return start, end, nil
}
