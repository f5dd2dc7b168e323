package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// SkippedRow is a row left out of an import.
type SkippedRow struct {
	Line   int
	Reason string
}

// Result is the outcome of converting rows.
type Result struct {
	Clients []domain.Client
	Skipped []SkippedRow
}

// Convert turns eligible rows into clients with empty journeys. Ineligible
// rows are reported in Skipped. The id of the i-th imported client is the
// millisecond timestamp of now with i appended.
func Convert(rows []ImportRow, now time.Time) Result {
	res := Result{Clients: []domain.Client{}}
	stamp := domain.TimestampID(now)
	for _, row := range rows {
		if reason := SkipReason(row); reason != "" {
			res.Skipped = append(res.Skipped, SkippedRow{Line: row.Line, Reason: reason})
			continue
		}
		id := stamp + strconv.Itoa(len(res.Clients))
		c, err := domain.NewClient(id, fieldsFromRow(row), domain.EmptyJourney())
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Line: row.Line, Reason: err.Error()})
			continue
		}
		res.Clients = append(res.Clients, c)
	}
	return res
}

// FormatName renders the stored "Last, First" display name.
func FormatName(first, last string) string {
	return strings.TrimSpace(last) + ", " + strings.TrimSpace(first)
}

func fieldsFromRow(row ImportRow) domain.ClientFields {
	return domain.ClientFields{
		Name:          FormatName(row.FirstName, row.LastName),
		Email:         strings.TrimSpace(row.Email),
		Phone:         strings.TrimSpace(row.Phone),
		Address:       strings.TrimSpace(row.Address),
		SSN:           strings.TrimSpace(row.SSN),
		FinancialGoal: strings.TrimSpace(row.FinancialGoal),
		Birthday:      strings.TrimSpace(row.Birthday),
		FamilyMembers: domain.LeadingInt(row.FamilyMembers, 0),
		BusinessName:  strings.TrimSpace(row.BusinessName),
	}
}
