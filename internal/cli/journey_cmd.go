package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/domain"
)

func newJourneyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journey",
		Short: "Work through a client's wealth journey checklist",
	}

	cmd.AddCommand(
		newJourneyShowCmd(app),
		newJourneyToggleCmd(app),
		newJourneyCheckCmd(app),
	)

	return cmd
}

func newJourneyShowCmd(app *App) *cobra.Command {
	var section string

	cmd := &cobra.Command{
		Use:   "show <client>",
		Short: "Show section progress, or every item of one section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}

			if section != "" {
				key, err := domain.ParseSectionKey(section)
				if err != nil {
					return err
				}
				j, err := app.Journeys.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJourneySection(key, j[key]))
				return nil
			}

			progress, err := app.Journeys.Progress(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatJourneySummary(progress))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "tax, business, family or credit")
	return cmd
}

func newJourneyToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <client> <section> <item-id>",
		Short: "Flip one checklist item between done and not done",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			key, err := domain.ParseSectionKey(args[1])
			if err != nil {
				return err
			}
			j, err := app.Journeys.Toggle(cmd.Context(), id, key, args[2])
			if err != nil {
				return err
			}
			for _, it := range j[key].Items {
				if it.ID == args[2] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Checkbox(it.Completed), it.Description)
					break
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", domain.SectionTitles[key], formatter.RenderProgress(domain.CompletionRatio(j[key]), 16))
			return nil
		},
	}
}

func newJourneyCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <client>",
		Short: "Open the interactive checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("journey check needs a terminal; use journey toggle instead")
			}
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			model := newChecklistModel(cmd.Context(), app.Journeys, *c)
			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(*checklistModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}
