package cli

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/service"
	"github.com/alexanderramin/fulfill/internal/teatest"
)

func checklistFixture(t *testing.T) (*App, *domain.Client, *teatest.Driver) {
	t.Helper()
	app := testApp(t)
	c := seedClient(t, app, "Amy Lin", "amy@x.com")
	return app, c, teatest.New(t, newChecklistModel(context.Background(), app.Journeys, *c))
}

func checklist(d *teatest.Driver) *checklistModel {
	return d.Model.(*checklistModel)
}

func TestChecklist_ToggleIsPersisted(t *testing.T) {
	app, c, d := checklistFixture(t)

	d.PressKey('j')
	assert.Equal(t, 1, checklist(d).cursor)
	d.PressSpace()
	m := checklist(d)

	assert.True(t, m.journey[domain.SectionTaxReturn].Items[1].Completed)
	assert.False(t, m.saving)

	stored, err := app.Journeys.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, stored[domain.SectionTaxReturn].Items[1].Completed)
	assert.False(t, stored[domain.SectionTaxReturn].Items[0].Completed)
}

func TestChecklist_SectionNavigation(t *testing.T) {
	_, _, d := checklistFixture(t)

	d.PressKey('j')
	d.Press(tea.KeyTab)
	assert.Equal(t, domain.SectionBusinessSetup, checklist(d).sectionKey())
	assert.Equal(t, 0, checklist(d).cursor, "cursor resets on section change")

	d.Press(tea.KeyShiftTab)
	d.Press(tea.KeyShiftTab)
	assert.Equal(t, domain.SectionPersonalCredit, checklist(d).sectionKey(), "wraps around")
}

func TestChecklist_CursorBounds(t *testing.T) {
	_, _, d := checklistFixture(t)

	d.Press(tea.KeyUp)
	assert.Equal(t, 0, checklist(d).cursor)
	for range 10 {
		d.Press(tea.KeyDown)
	}
	assert.Equal(t, 2, checklist(d).cursor, "tax return has three items")
}

func TestChecklist_Quit(t *testing.T) {
	_, _, d := checklistFixture(t)
	d.PressKey('q')
	assert.True(t, d.Quitting)
}

type failingJourneys struct {
	service.JourneyService
}

func (failingJourneys) Toggle(context.Context, string, domain.SectionKey, string) (domain.WealthJourney, error) {
	return nil, errors.New("disk full")
}

func TestChecklist_ToggleErrorKeepsJourney(t *testing.T) {
	_, c, _ := checklistFixture(t)
	d := teatest.New(t, newChecklistModel(context.Background(), failingJourneys{}, *c))

	d.PressKey('x')
	m := checklist(d)
	require.Error(t, m.err)
	assert.False(t, m.journey[domain.SectionTaxReturn].Items[0].Completed)
	assert.Contains(t, m.View(), "disk full")
}

func TestChecklist_View(t *testing.T) {
	_, _, d := checklistFixture(t)
	view := d.View()
	assert.Contains(t, view, "Amy Lin")
	assert.Contains(t, view, "Tax Return 2024")
	assert.Contains(t, view, "Personal Credit")
	assert.Contains(t, view, "> [ ] Gather all income documents")
	assert.Contains(t, view, "0/3")
}
