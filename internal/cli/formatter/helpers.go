package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// DueLabel describes a YYYY-MM-DD due date relative to now. Past dates
// render red, the coming week yellow. Unparseable or empty dates render "--".
func DueLabel(due string, now time.Time) string {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(due))
	if err != nil {
		return StyleDim.Render("--")
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(today).Hours() / 24)

	var text string
	switch {
	case days == 0:
		text = "Today"
	case days == 1:
		text = "Tomorrow"
	case days == -1:
		text = "Yesterday"
	case days > 0 && days < 14:
		text = fmt.Sprintf("In %dd", days)
	case days < 0 && days > -14:
		text = fmt.Sprintf("%dd ago", -days)
	default:
		text = d.Format("Jan 2, 2006")
	}
	label := fmt.Sprintf("%s %s", due, Dim("("+text+")"))
	switch {
	case days < 0:
		return StyleRed.Render(due) + " " + Dim("("+text+")")
	case days <= 7:
		return StyleYellow.Render(due) + " " + Dim("("+text+")")
	}
	return label
}

// Truncate shortens s to n visible runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// OrDash returns s, or a dimmed "--" when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return StyleDim.Render("--")
	}
	return s
}

// HumanSize formats a byte count as B, KB or MB.
func HumanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
