package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
)

func newAttachCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attach",
		Aliases: []string{"attachment", "attachments"},
		Short:   "Manage client attachments",
	}

	cmd.AddCommand(
		newAttachAddCmd(app),
		newAttachLinkCmd(app),
		newAttachRenameCmd(app),
		newAttachRemoveCmd(app),
		newAttachExportCmd(app),
	)

	return cmd
}

func newAttachAddCmd(app *App) *cobra.Command {
	var name, contentType string

	cmd := &cobra.Command{
		Use:   "add <client> <file>",
		Short: "Store a file as a client attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening attachment: %w", err)
			}
			defer f.Close()

			if name == "" {
				name = filepath.Base(args[1])
			}
			if contentType == "" {
				contentType = mime.TypeByExtension(filepath.Ext(args[1]))
			}
			a, err := app.Attachments.Attach(cmd.Context(), id, name, contentType, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Attached %s %s\n", formatter.Bold(a.Name),
				formatter.Dim(fmt.Sprintf("(%s, %s)", a.ID, formatter.HumanSize(a.Size))))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (default: file name)")
	cmd.Flags().StringVar(&contentType, "type", "", "Content type (default: from extension)")
	return cmd
}

func newAttachLinkCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "link <client> <url>",
		Short: "Attach an external link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = args[1]
			}
			a, err := app.Attachments.Link(cmd.Context(), id, name, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Linked %s %s\n", formatter.Bold(a.Name), formatter.Dim("("+a.ID+")"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (default: the URL)")
	return cmd
}

func newAttachRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <client> <attachment-id> <name>",
		Short: "Rename an attachment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			a, err := app.Attachments.Rename(cmd.Context(), id, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed attachment to %s\n", formatter.Bold(a.Name))
			return nil
		},
	}
}

func newAttachRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <client> <attachment-id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove an attachment and its stored file",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Attachments.Remove(cmd.Context(), id, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed attachment %s\n", formatter.Dim(args[1]))
			return nil
		},
	}
}

func newAttachExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <client> <attachment-id>",
		Short: "Write a stored attachment to a file or stdout",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			blob, err := app.Attachments.Open(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(blob.Data)
				return err
			}
			if err := os.WriteFile(out, blob.Data, 0o600); err != nil {
				return fmt.Errorf("writing attachment: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s to %s\n", formatter.HumanSize(blob.Size), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (default: stdout)")
	return cmd
}
