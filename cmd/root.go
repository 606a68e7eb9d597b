package main

import (
	"developer-service/cmd/bootstrap"
	"developer-service/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "developer-service",
		Short:         "REST service managing developer records",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newTokenCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg := loadConfig()

	// Initialize application with all dependencies
	app, err := bootstrap.New(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	app.Run()
	return nil
}

// loadConfig reads configuration and configures logging; failures are fatal.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap.SetupLogger("info")
		logrus.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")
	return cfg
}
