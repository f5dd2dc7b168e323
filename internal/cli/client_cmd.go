package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/domain"
	"github.com/alexanderramin/fulfill/internal/importer"
	"github.com/alexanderramin/fulfill/internal/service"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "client",
		Aliases: []string{"clients"},
		Short:   "Manage clients",
	}

	cmd.AddCommand(
		newClientAddCmd(app),
		newClientListCmd(app),
		newClientShowCmd(app),
		newClientEditCmd(app),
		newClientRemoveCmd(app),
		newClientImportCmd(app),
	)

	return cmd
}

// clientFlags binds one flag per client field.
type clientFlags struct {
	values clientFormValues
	family int
}

func (f *clientFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.values.Name, "name", "", "Full name")
	fs.StringVar(&f.values.Email, "email", "", "Email address")
	fs.StringVar(&f.values.Phone, "phone", "", "Phone number")
	fs.StringVar(&f.values.Address, "address", "", "Postal address")
	fs.StringVar(&f.values.SSN, "ssn", "", "Social security number")
	fs.StringVar(&f.values.FinancialGoal, "goal", "", "Financial goal")
	fs.StringVar(&f.values.Birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	fs.IntVar(&f.family, "family", 0, "Number of family members")
	fs.StringVar(&f.values.BusinessName, "business", "", "Business name")
}

// clientFieldFlags names the flags register binds.
var clientFieldFlags = []string{"name", "email", "phone", "address", "ssn", "goal", "birthday", "family", "business"}

// anyChanged reports whether the user set at least one field flag.
func (f *clientFlags) anyChanged(fs *pflag.FlagSet) bool {
	for _, name := range clientFieldFlags {
		if fs.Changed(name) {
			return true
		}
	}
	return false
}

func (f *clientFlags) fields() domain.ClientFields {
	out := f.values.fields()
	out.FamilyMembers = f.family
	return out
}

// overlay copies the flags the user set onto existing.
func (f *clientFlags) overlay(fs *pflag.FlagSet, existing domain.ClientFields) domain.ClientFields {
	set := f.fields()
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "name":
			existing.Name = set.Name
		case "email":
			existing.Email = set.Email
		case "phone":
			existing.Phone = set.Phone
		case "address":
			existing.Address = set.Address
		case "ssn":
			existing.SSN = set.SSN
		case "goal":
			existing.FinancialGoal = set.FinancialGoal
		case "birthday":
			existing.Birthday = set.Birthday
		case "family":
			existing.FamilyMembers = set.FamilyMembers
		case "business":
			existing.BusinessName = set.BusinessName
		}
	})
	return existing
}

func newClientAddCmd(app *App) *cobra.Command {
	var flags clientFlags
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client with the starter wealth journey",
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := flags.fields()
			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal")
				}
				values := flags.values
				if err := clientForm(&values).Run(); err != nil {
					return err
				}
				fields = values.fields()
			}

			c, err := app.Clients.Create(cmd.Context(), fields)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created client %s %s\n", formatter.Bold(c.Name), formatter.Dim("("+c.ID+")"))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the client with a form")
	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	var opts service.ListOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List clients sorted by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := app.Clients.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No clients found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClientList(clients))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Filter by name or email")
	cmd.Flags().BoolVar(&opts.Descending, "desc", false, "Sort Z to A")
	return cmd
}

func newClientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <client>",
		Short: "Show a client's details, journey, notes and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatClientDetail(*c, app.now()))
			return nil
		},
	}
}

func newClientEditCmd(app *App) *cobra.Command {
	var flags clientFlags

	cmd := &cobra.Command{
		Use:   "edit <client>",
		Short: "Change a client's fields; unset flags keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.anyChanged(cmd.Flags()) {
				return fmt.Errorf("nothing to change; pass at least one field flag")
			}
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Clients.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			edit := domain.ClientEdit{Fields: flags.overlay(cmd.Flags(), c.ClientFields)}
			updated, err := app.Clients.Update(cmd.Context(), id, edit)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated client %s\n", formatter.Bold(updated.Name))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <client>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a client with its tasks and attachment files",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveClientID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if !yes {
				if !app.interactive() {
					return fmt.Errorf("refusing to delete without --yes")
				}
				c, err := app.Clients.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				var ok bool
				if err := confirmForm(fmt.Sprintf("Delete %s and all their tasks?", c.Name), &ok).Run(); err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			res, err := app.Clients.Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted client %s %s\n", formatter.Bold(res.Client.Name),
				formatter.Dim(fmt.Sprintf("(%d tasks, %d files removed)", res.TasksRemoved, res.BlobsRemoved)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newClientImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import clients from a CSV export",
		Long: "Import clients from a CSV file with a header row. Recognized columns:\n" +
			strings.Join(importer.Columns, ", ") + ".\n" +
			"Rows missing " + importer.ColFirstName + ", " + importer.ColLastName + " or " + importer.ColEmail +
			" are skipped and reported. Use - to read stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res *service.ImportResult
				err error
			)
			if args[0] == "-" {
				res, err = app.Import.ImportCSV(cmd.Context(), cmd.InOrStdin())
			} else {
				stop := func() {}
				if app.interactive() {
					stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Importing "+args[0])
				}
				res, err = app.Import.ImportFile(cmd.Context(), args[0])
				stop()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d clients\n", len(res.Imported))
			if len(res.Skipped) > 0 {
				lines := make([]string, 0, len(res.Skipped))
				for _, s := range res.Skipped {
					lines = append(lines, fmt.Sprintf("  line %d: %s", s.Line, s.Reason))
				}
				fmt.Fprintf(out, "%s\n%s\n", formatter.StyleYellow.Render(fmt.Sprintf("Skipped %d rows:", len(res.Skipped))),
					formatter.Dim(strings.Join(lines, "\n")))
			}
			return nil
		},
	}
}
