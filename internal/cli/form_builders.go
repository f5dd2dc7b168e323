package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/fulfill/internal/domain"
)

// clientFormValues backs the add-client form. Family members stays a
// string until submit so the input can be blank.
type clientFormValues struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	SSN           string
	FinancialGoal string
	Birthday      string
	FamilyMembers string
	BusinessName  string
}

func (v clientFormValues) fields() domain.ClientFields {
	family, _ := strconv.Atoi(strings.TrimSpace(v.FamilyMembers))
	return domain.ClientFields{
		Name:          strings.TrimSpace(v.Name),
		Email:         strings.TrimSpace(v.Email),
		Phone:         strings.TrimSpace(v.Phone),
		Address:       strings.TrimSpace(v.Address),
		SSN:           strings.TrimSpace(v.SSN),
		FinancialGoal: strings.TrimSpace(v.FinancialGoal),
		Birthday:      strings.TrimSpace(v.Birthday),
		FamilyMembers: family,
		BusinessName:  strings.TrimSpace(v.BusinessName),
	}
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// clientForm collects the add-client fields in two groups: contact details
// then profile.
func clientForm(v *clientFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&v.Name).Validate(validateRequired("name")),
			huh.NewInput().Title("Email").Value(&v.Email).Validate(validateRequired("email")),
			huh.NewInput().Title("Phone").Value(&v.Phone),
			huh.NewText().Title("Address").Lines(2).Value(&v.Address),
		),
		huh.NewGroup(
			huh.NewInput().Title("Business name").Value(&v.BusinessName),
			huh.NewInput().Title("Financial goal").Value(&v.FinancialGoal),
			dateInput("Birthday (YYYY-MM-DD)", &v.Birthday),
			huh.NewInput().Title("Family members").Placeholder("0").Value(&v.FamilyMembers).Validate(validateNonNegativeInt),
			huh.NewInput().Title("SSN").EchoMode(huh.EchoModePassword).Value(&v.SSN),
		),
	).WithTheme(fulfillHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(result),
		),
	).WithTheme(fulfillHuhTheme()).WithShowHelp(false)
}
