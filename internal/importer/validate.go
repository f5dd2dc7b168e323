package importer

import "strings"

// Eligible reports whether a row has a first name, last name and email.
func Eligible(row ImportRow) bool {
	return SkipReason(row) == ""
}

// SkipReason names the first missing required column, or returns "" for an
// eligible row.
func SkipReason(row ImportRow) string {
	switch {
	case strings.TrimSpace(row.FirstName) == "":
		return "missing " + ColFirstName
	case strings.TrimSpace(row.LastName) == "":
		return "missing " + ColLastName
	case strings.TrimSpace(row.Email) == "":
		return "missing " + ColEmail
	}
	return ""
}
