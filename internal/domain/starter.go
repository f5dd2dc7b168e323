package domain

import "strconv"

// StarterJourney returns a fresh journey populated with the named starter
// checklist. Item ids restart at "1" in every section. An empty set name
// selects StarterStandard.
func StarterJourney(set StarterSet) (WealthJourney, error) {
	var src map[SectionKey][]string
	switch set {
	case "", StarterStandard:
		src = standardStarter
	case StarterExtended:
		src = extendedStarter
	default:
		return nil, &ValidationError{Field: "journey.starter_set", Message: "must be standard or extended (got " + quote(string(set)) + ")"}
	}
	j := EmptyJourney()
	for _, k := range SectionKeys {
		items := make([]Item, 0, len(src[k]))
		for i, desc := range src[k] {
			items = append(items, Item{ID: strconv.Itoa(i + 1), Description: desc})
		}
		j[k] = Section{Items: items}
	}
	return j, nil
}

// standardStarter is the checklist given to clients added by hand.
var standardStarter = map[SectionKey][]string{
	SectionTaxReturn: {
		"Gather all income documents",
		"Review deductions and credits",
		"File tax return",
	},
	SectionBusinessSetup: {
		"Create LLC Corporation",
		"Check domain availability and generate business name",
		"List company members and address",
		"Create business email",
		"Set up iPostal for business location (if needed)",
		"File Articles of Incorporation for LLC (Owner as AMBR)",
		"Obtain EIN for Business",
		"Design company logo",
		"Register with Dun & Bradstreet for DUNS number",
		"Set up Paydex Number for Business Credit Score",
		"Open Business Bank Account (after Sunbiz visibility)",
		"Set up Payroll",
		"Register on Nav.com",
		"Establish Net 30 Account with Uline or Grainger",
		"Apply for Gas Cards",
		"Create Website and secure Domain",
		"Complete BOI (Beneficial Ownership Information) filing",
		"Apply for Retail Credit Card",
	},
	SectionFamilyWealthPreservation: {
		"Create estate plan",
		"Set up trust funds",
		"Review insurance policies",
	},
	SectionPersonalCredit: {
		"Check credit report",
		"Dispute any errors",
		"Set up credit monitoring",
	},
}

// extendedStarter is the longer onboarding checklist, opt-in through configuration.
var extendedStarter = map[SectionKey][]string{
	SectionTaxReturn: {
		"Call to connect, Ask if the client will like to meet in person to the office, do their taxes through email/calling",
		"Create physical and digital folder",
		"Ask for their 2023 Tax Return and Is all the Info the same",
		"Fill out client information sheet",
		"Ask the client if they have a PTIN",
		"Live in House or Apartment? Double check with the client that it's their current address and Apt. #",
		"Ask if they have insurance in the marketplace and or if anyone was in college?",
		"Receive Social security, ID",
		"Acquire W-2 and/or 1099",
		"Acquire any other miscellaneous documents (1099-B, 1098-T, 1098 Mortgage Investment)",
		"Print out all documentation that was acquired W-2",
		"Do they have a business?",
		"Request expenses",
		"Get bank account info",
		"Put information into CRM",
		"Fill out Tax",
		"Add information into Tax Software from documents acquired",
		"Confirm refund",
		"Submit",
		"Check if Accepted",
		"Send client submission",
		"Put Return on CRM",
		"PAID Zelle/Cashapp",
		"PAID VIA TPG",
		"Funded",
	},
	SectionBusinessSetup: {
		"Create LLC Corporation",
		"Check domain availability and generate business name",
		"List company members and address",
		"Create business email",
		"Set up iPostal for business location (if needed)",
		"File Articles of Incorporation for LLC (Owner as AMBR)",
		"Obtain EIN for Business",
		"Design company logo",
		"Register with Dun & Bradstreet for DUNS number",
		"Set up Paydex Number for Business Credit Score",
		"Open Business Bank Account (after Sunbiz visibility)",
		"Set up Payroll",
		"Register on Nav.com",
		"Establish Net 30 Account with Uline or Grainger",
		"Apply for Gas Cards",
		"Create Website and secure Domain",
		"Complete BOI (Beneficial Ownership Information) filing",
		"Apply for Retail Credit Card",
	},
	SectionFamilyWealthPreservation: {
		"Create estate plan",
		"Set up trust funds",
		"Review insurance policies",
		"Discuss legacy planning with family",
		"Establish family governance structure",
	},
	SectionPersonalCredit: {
		"Check credit report",
		"Dispute any errors",
		"Set up credit monitoring",
		"Create debt repayment plan",
		"Establish emergency fund",
	},
}
