package domain

// Status is the shared lifecycle of notes and tasks.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ValidStatuses is the canonical set of accepted status strings.
var ValidStatuses = map[Status]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

// ParseStatus accepts the display form ("In Progress") as well as the
// flag-friendly forms ("in-progress", "in_progress", "inprogress").
func ParseStatus(s string) (Status, error) {
	switch normalizeEnum(s) {
	case "notstarted", "todo":
		return StatusNotStarted, nil
	case "inprogress", "doing":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", &ValidationError{Field: "status", Message: "must be one of Not Started, In Progress, Completed (got " + quote(s) + ")"}
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ParsePriority is case-insensitive. Empty input yields the Medium default.
func ParsePriority(s string) (Priority, error) {
	switch normalizeEnum(s) {
	case "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	return "", &ValidationError{Field: "priority", Message: "must be one of Low, Medium, High (got " + quote(s) + ")"}
}

// SectionKey names one of the four fixed wealth journey sections.
type SectionKey string

const (
	SectionTaxReturn                SectionKey = "tax-return"
	SectionBusinessSetup            SectionKey = "business-setup"
	SectionFamilyWealthPreservation SectionKey = "family-wealth-preservation"
	SectionPersonalCredit           SectionKey = "personal-credit"
)

// SectionKeys lists the journey sections in display order.
var SectionKeys = []SectionKey{
	SectionTaxReturn,
	SectionBusinessSetup,
	SectionFamilyWealthPreservation,
	SectionPersonalCredit,
}

// SectionTitles maps each section to its display title.
var SectionTitles = map[SectionKey]string{
	SectionTaxReturn:                "Tax Return 2024",
	SectionBusinessSetup:            "Business Corporation Setup",
	SectionFamilyWealthPreservation: "Family Wealth Preservation",
	SectionPersonalCredit:           "Personal Credit",
}

// legacySectionKeys maps the keys used by exported browser data.
var legacySectionKeys = map[string]SectionKey{
	"taxReturn2024":            SectionTaxReturn,
	"businessCorporationSetup": SectionBusinessSetup,
	"familyWealthPreservation": SectionFamilyWealthPreservation,
	"personalCredit":           SectionPersonalCredit,
}

// ParseSectionKey accepts canonical keys, legacy camelCase keys and a few
// short aliases used on the command line.
func ParseSectionKey(s string) (SectionKey, error) {
	k := SectionKey(s)
	if _, ok := SectionTitles[k]; ok {
		return k, nil
	}
	if k, ok := legacySectionKeys[s]; ok {
		return k, nil
	}
	switch normalizeEnum(s) {
	case "tax", "taxreturn":
		return SectionTaxReturn, nil
	case "business", "businesssetup":
		return SectionBusinessSetup, nil
	case "family", "familywealthpreservation", "estate":
		return SectionFamilyWealthPreservation, nil
	case "credit", "personalcredit":
		return SectionPersonalCredit, nil
	}
	return "", &ValidationError{Field: "section", Message: "unknown journey section " + quote(s)}
}

// StarterSet names a built-in starter checklist.
type StarterSet string

const (
	StarterStandard StarterSet = "standard"
	StarterExtended StarterSet = "extended"
)
