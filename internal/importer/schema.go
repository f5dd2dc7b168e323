package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Recognized CSV column headers.
const (
	ColFirstName     = "First Name"
	ColLastName      = "Last Name"
	ColEmail         = "Email"
	ColPhone         = "Phone Number"
	ColAddress       = "Address"
	ColSSN           = "SSN"
	ColFinancialGoal = "Financial Goal"
	ColBirthday      = "Birthday"
	ColFamilyMembers = "Family Members"
	ColBusinessName  = "Business Name"
)

// Columns lists the recognized headers in template order.
var Columns = []string{
	ColFirstName, ColLastName, ColEmail, ColPhone, ColAddress,
	ColSSN, ColFinancialGoal, ColBirthday, ColFamilyMembers, ColBusinessName,
}

// ImportRow is one data row of an import file. Line is the 1-based line
// number in the source, counting the header.
type ImportRow struct {
	Line          int
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Address       string
	SSN           string
	FinancialGoal string
	Birthday      string
	FamilyMembers string
	BusinessName  string
}

// ErrNoHeader is returned for input without a header row.
var ErrNoHeader = errors.New("csv has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadRows parses CSV with a header row. Headers are matched ignoring case
// and surrounding space; unknown columns are ignored and missing ones read
// as empty. Blank lines are skipped and a leading UTF-8 BOM is tolerated.
func ReadRows(r io.Reader) ([]ImportRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("parsing csv header: %w", err)
	}
	index := headerIndex(header)

	var rows []ImportRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing csv: %w", err)
		}
		if blankRecord(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, ImportRow{
			Line:          line,
			FirstName:     get(ColFirstName),
			LastName:      get(ColLastName),
			Email:         get(ColEmail),
			Phone:         get(ColPhone),
			Address:       get(ColAddress),
			SSN:           get(ColSSN),
			FinancialGoal: get(ColFinancialGoal),
			Birthday:      get(ColBirthday),
			FamilyMembers: get(ColFamilyMembers),
			BusinessName:  get(ColBusinessName),
		})
	}
	return rows, nil
}

// LoadImportFile reads and parses the CSV file at path.
func LoadImportFile(path string) ([]ImportRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()
	return ReadRows(f)
}

func headerIndex(header []string) map[string]int {
	byFold := make(map[string]string, len(Columns))
	for _, c := range Columns {
		byFold[strings.ToLower(c)] = c
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		col, ok := byFold[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}
	return index
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
