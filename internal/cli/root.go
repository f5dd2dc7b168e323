package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Clients     service.ClientService
	Attachments service.AttachmentService
	Journeys    service.JourneyService
	Tasks       service.TaskService
	Import      service.ImportService
	Dashboard   service.DashboardService
	Users       service.UserService

	// Init wires the services above from the parsed persistent flags. It
	// runs before every command and may be nil when services are preset.
	Init func(cmd *cobra.Command) error

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// checklist view refuse to start when it returns false.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "fulfill" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "fulfill",
		Short:         "Client relationship manager for wealth advisory work",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Init == nil {
				return nil
			}
			return app.Init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.config/fulfill/config.yaml)")
	flags.String("db", "", "SQLite database path")
	flags.String("store", "", "Storage backend: sqlite or redis")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")

	root.AddCommand(
		newClientCmd(app),
		newNoteCmd(app),
		newAttachCmd(app),
		newJourneyCmd(app),
		newTaskCmd(app),
		newUserCmd(app),
		newDashboardCmd(app),
		newCalendarCmd(app),
	)

	return root
}
