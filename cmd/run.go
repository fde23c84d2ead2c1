package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/app"
	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/scoring"
)

// runApp resolves config, builds the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load checklist: %w", err)
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	engine := scoring.NewEngine(cat, scoring.WithLogger(logger))
	return app.Run(app.Options{
		Engine: engine,
		Logger: logger,
	})
}
