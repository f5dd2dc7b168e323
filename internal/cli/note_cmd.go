package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/domain"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note",
		Aliases: []string{"notes"},
		Short:   "Manage client notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(app),
		newNoteListCmd(app),
		newNoteEditCmd(app),
		newNoteRemoveCmd(app),
	)

	return cmd
}

// noteFlags parses --content, --due and --status into a NoteInput.
type noteFlags struct {
	content string
	due     string
	status  string
}

func (f *noteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.content, "content", "m", "", "Note text")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.status, "status", "", "Not Started, In Progress or Completed")
}

// input builds a NoteInput, keeping base values for flags that were not set.
func (f *noteFlags) input(cmd *cobra.Command, base domain.NoteInput) (domain.NoteInput, error) {
	in := base
	if cmd.Flags().Changed("content") {
		in.Content = f.content
	}
	if cmd.Flags().Changed("due") {
		due, err := parseDateFlag("due", f.due)
		if err != nil {
			return in, err
		}
		in.DueDate = due
	}
	if cmd.Flags().Changed("status") {
		st, err := domain.ParseStatus(f.status)
		if err != nil {
			return in, err
		}
		in.Status = st
	}
	return in, nil
}

func newNoteAddCmd(app *App) *cobra.Command {
	var flags noteFlags

	cmd := &cobra.Command{
		Use:   "add <client>",
		Short: "Add a note to a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			in, err := flags.input(cmd, domain.NoteInput{})
			if err != nil {
				return err
			}
			n, err := app.Clients.AddNote(cmd.Context(), id, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added note %s\n", formatter.Dim(n.ID))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newNoteListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list <client>",
		Aliases: []string{"ls"},
		Short:   "List a client's notes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if len(c.Notes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No notes.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNotes(c.Notes, app.now()))
			return nil
		},
	}
}

func newNoteEditCmd(app *App) *cobra.Command {
	var flags noteFlags

	cmd := &cobra.Command{
		Use:   "edit <client> <note-id>",
		Short: "Change a note's content, due date or status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			current, ok := c.Note(args[1])
			if !ok {
				return &domain.NotFoundError{Kind: "note", ID: args[1]}
			}
			in, err := flags.input(cmd, domain.NoteInput{
				Content: current.Content,
				DueDate: current.DueDate,
				Status:  current.Status,
			})
			if err != nil {
				return err
			}
			n, err := app.Clients.EditNote(cmd.Context(), id, args[1], in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated note %s %s\n", formatter.Dim(n.ID), formatter.StatusPill(n.Status))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newNoteRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <client> <note-id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Clients.DeleteNote(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted note %s\n", formatter.Dim(args[1]))
			return nil
		},
	}
}
