package formatter

import (
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// FormatTaskList renders tasks with the owning client's name. clients is
// used only for the name lookup.
func FormatTaskList(tasks []domain.Task, clients []domain.Client, now time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			Dim(t.ID),
			Bold(Truncate(t.Title, 40)),
			OrDash(domain.ClientName(clients, t.ClientID)),
			PriorityBadge(t.Priority),
			StatusPill(t.Status),
			DueLabel(t.DueDate, now),
		})
	}
	return RenderTable([]string{"ID", "TITLE", "CLIENT", "PRIORITY", "STATUS", "DUE"}, rows)
}
