package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/service"
)

type checklistKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k checklistKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Toggle, k.Quit}
}

func (k checklistKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Next, k.Prev}, {k.Toggle, k.Quit}}
}

var checklistKeys = checklistKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next section")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev section")),
	Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// itemToggledMsg carries the journey as saved after a toggle.
type itemToggledMsg struct {
	journey domain.WealthJourney
	err     error
}

// checklistModel shows one journey section at a time. Each toggle is
// written through the journey service before the view updates.
type checklistModel struct {
	ctx        context.Context
	journeys   service.JourneyService
	clientID   string
	clientName string
	journey    domain.WealthJourney
	section    int
	cursor     int
	saving     bool
	err        error
	help       help.Model
}

func newChecklistModel(ctx context.Context, journeys service.JourneyService, c domain.Client) *checklistModel {
	return &checklistModel{
		ctx:        ctx,
		journeys:   journeys,
		clientID:   c.ID,
		clientName: c.Name,
		journey:    c.WealthJourney.Normalize(),
		help:       help.New(),
	}
}

func (m *checklistModel) Init() tea.Cmd { return nil }

func (m *checklistModel) sectionKey() domain.SectionKey {
	return domain.SectionKeys[m.section]
}

func (m *checklistModel) items() []domain.Item {
	return m.journey[m.sectionKey()].Items
}

func (m *checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemToggledMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.journey = msg.journey
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		n := len(domain.SectionKeys)
		switch {
		case key.Matches(msg, checklistKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, checklistKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, checklistKeys.Down):
			if m.cursor < len(m.items())-1 {
				m.cursor++
			}
		case key.Matches(msg, checklistKeys.Next):
			m.section = (m.section + 1) % n
			m.cursor = 0
		case key.Matches(msg, checklistKeys.Prev):
			m.section = (m.section + n - 1) % n
			m.cursor = 0
		case key.Matches(msg, checklistKeys.Toggle):
			items := m.items()
			if m.saving || m.cursor >= len(items) {
				return m, nil
			}
			m.saving = true
			return m, m.toggle(m.sectionKey(), items[m.cursor].ID)
		}
	}
	return m, nil
}

func (m *checklistModel) toggle(sectionKey domain.SectionKey, itemID string) tea.Cmd {
	ctx, journeys, clientID := m.ctx, m.journeys, m.clientID
	return func() tea.Msg {
		j, err := journeys.Toggle(ctx, clientID, sectionKey, itemID)
		return itemToggledMsg{journey: j, err: err}
	}
}

var (
	tabActive   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true)
	tabInactive = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

func (m *checklistModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Bold(m.clientName) + formatter.Dim(" · wealth journey") + "\n\n")

	tabs := make([]string, 0, len(domain.SectionKeys))
	for i, k := range domain.SectionKeys {
		style := tabInactive
		if i == m.section {
			style = tabActive
		}
		tabs = append(tabs, style.Render(domain.SectionTitles[k]))
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n\n")

	sec := m.journey[m.sectionKey()]
	fmt.Fprintf(&b, "%s %s\n\n", formatter.RenderProgress(domain.CompletionRatio(sec), 24),
		formatter.Dim(fmt.Sprintf("%d/%d", sec.CompletedCount(), len(sec.Items))))

	if len(sec.Items) == 0 {
		b.WriteString(formatter.Dim("No items in this section.") + "\n")
	}
	for i, it := range sec.Items {
		cursor := "  "
		desc := it.Description
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("> ")
			desc = formatter.Bold(desc)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, formatter.Checkbox(it.Completed), desc)
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + m.help.View(checklistKeys))
	return b.String()
}
