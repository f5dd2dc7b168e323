package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fulfill/internal/cli"
	"github.com/alexanderramin/fulfill/internal/cli/formatter"
	"github.com/alexanderramin/fulfill/internal/config"
	"github.com/alexanderramin/fulfill/internal/logging"
	"github.com/alexanderramin/fulfill/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	formatter.ConfigureColor(os.Stdout)

	var backend *repository.Backend
	defer func() {
		if backend != nil {
			backend.Close()
		}
	}()

	app := &cli.App{
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	app.Init = func(cmd *cobra.Command) error {
		v := config.New()
		if err := config.BindFlags(v, cmd.Flags()); err != nil {
			return err
		}
		configFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(v, config.Options{ConfigFile: configFile})
		if err != nil {
			return err
		}

		logger, err := logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", "file", cfg.File, "backend", cfg.Store.Backend)

		backend, err = openBackend(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		wireServices(app, backend, cfg, logger)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
