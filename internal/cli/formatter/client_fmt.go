package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// FormatClientList renders clients as a table of id, name, email, phone,
// business and journey completion.
func FormatClientList(clients []domain.Client) string {
	headers := []string{"ID", "NAME", "EMAIL", "PHONE", "BUSINESS", "JOURNEY"}
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{
			Dim(c.ID),
			Bold(c.Name),
			c.Email,
			OrDash(c.Phone),
			OrDash(c.BusinessName),
			RenderProgress(journeyRatio(c.WealthJourney), 10),
		})
	}
	return RenderTable(headers, rows)
}

// FormatClientDetail renders the client card: contact fields, journey
// summary, notes and attachments.
func FormatClientDetail(c domain.Client, now time.Time) string {
	var b strings.Builder

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-15s", label)), OrDash(value))
	}
	field("ID", c.ID)
	field("Email", c.Email)
	field("Phone", c.Phone)
	field("Address", c.Address)
	field("Business", c.BusinessName)
	field("Financial goal", c.FinancialGoal)
	field("Birthday", c.Birthday)
	field("Family members", strconv.Itoa(c.FamilyMembers))
	field("SSN", maskSSN(c.SSN))

	b.WriteString("\n")
	b.WriteString(Header("Wealth Journey"))
	b.WriteString("\n")
	for _, p := range c.WealthJourney.Progress(0) {
		fmt.Fprintf(&b, "%-28s %s %s\n", p.Title, RenderProgress(p.Ratio, 12),
			Dim(fmt.Sprintf("%d/%d", p.Completed, p.Total)))
	}

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Notes (%d)", len(c.Notes))))
	b.WriteString("\n")
	if len(c.Notes) == 0 {
		b.WriteString(Dim("No notes.") + "\n")
	} else {
		b.WriteString(FormatNotes(c.Notes, now))
	}

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Attachments (%d)", len(c.Attachments))))
	b.WriteString("\n")
	if len(c.Attachments) == 0 {
		b.WriteString(Dim("No attachments.") + "\n")
	} else {
		b.WriteString(FormatAttachments(c.Attachments))
	}

	return RenderBox(c.Name, strings.TrimRight(b.String(), "\n"))
}

// FormatNotes renders notes as a table in stored order.
func FormatNotes(notes []domain.Note, now time.Time) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		due := Dim("--")
		if n.DueDate != nil {
			due = DueLabel(*n.DueDate, now)
		}
		rows = append(rows, []string{
			Dim(n.ID),
			Truncate(n.Content, 48),
			StatusPill(n.Status),
			due,
			Dim(n.CreatedAt.Local().Format("Jan 2, 2006")),
		})
	}
	return RenderTable([]string{"ID", "CONTENT", "STATUS", "DUE", "CREATED"}, rows)
}

// FormatAttachments renders stored files with their size and links with
// their URL.
func FormatAttachments(atts []domain.Attachment) string {
	rows := make([][]string, 0, len(atts))
	for _, a := range atts {
		kind, detail := StylePurple.Render("file"), HumanSize(a.Size)
		if !a.Stored() {
			kind, detail = StyleBlue.Render("link"), a.URL
		}
		rows = append(rows, []string{Dim(a.ID), a.Name, kind, detail})
	}
	return RenderTable([]string{"ID", "NAME", "KIND", "DETAIL"}, rows)
}

func journeyRatio(j domain.WealthJourney) float64 {
	done, total := 0, 0
	for _, k := range domain.SectionKeys {
		done += j[k].CompletedCount()
		total += len(j[k].Items)
	}
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

func maskSSN(ssn string) string {
	ssn = strings.TrimSpace(ssn)
	if len(ssn) <= 4 {
		return ssn
	}
	return strings.Repeat("•", len(ssn)-4) + ssn[len(ssn)-4:]
}
