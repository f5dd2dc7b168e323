package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// FormatJourneySummary renders the card view: per-section progress with
// the next outstanding items.
func FormatJourneySummary(progress []domain.SectionProgress) string {
	var b strings.Builder
	for i, p := range progress {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s %s\n", Bold(p.Title), RenderProgress(p.Ratio, 16),
			Dim(fmt.Sprintf("%d/%d", p.Completed, p.Total)))
		if p.Total > 0 && len(p.Outstanding) == 0 {
			b.WriteString("  " + StyleGreen.Render("✔ All done") + "\n")
		}
		for _, it := range p.Outstanding {
			fmt.Fprintf(&b, "  %s %s %s\n", StyleBlue.Render("○"), Dim(it.ID+"."), it.Description)
		}
	}
	return b.String()
}

// FormatJourneySection renders every item of one section with its checkbox.
func FormatJourneySection(key domain.SectionKey, sec domain.Section) string {
	var b strings.Builder
	b.WriteString(Header(domain.SectionTitles[key]))
	b.WriteString("\n")
	if len(sec.Items) == 0 {
		b.WriteString(Dim("No items.") + "\n")
		return b.String()
	}
	for _, it := range sec.Items {
		fmt.Fprintf(&b, "%s %s %s\n", Checkbox(it.Completed), Dim(fmt.Sprintf("%3s.", it.ID)), it.Description)
	}
	return b.String()
}

// Checkbox renders [x] in green or [ ] dimmed.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}
