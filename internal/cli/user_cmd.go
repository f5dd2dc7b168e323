package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage the users collection",
	}

	var display string
	add := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Add(cmd.Context(), args[0], display)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added user %s %s\n", formatter.Bold(u.Username), formatter.Dim("("+u.ID+")"))
			return nil
		},
	}
	add.Flags().StringVar(&display, "display-name", "", "Name shown in listings")

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No users found.")
				return nil
			}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{formatter.Dim(u.ID), formatter.Bold(u.Username), formatter.OrDash(u.DisplayName)})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "USERNAME", "DISPLAY NAME"}, rows))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
