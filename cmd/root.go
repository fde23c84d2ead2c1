package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/checklist"
	"github.com/abhisek/sprout/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Child development skill checklist",
	Long:  "Sprout — score a child's developmental skills from 0 to 4 and see per-domain progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides SPROUT_CONFIG env var)")
	rootCmd.PersistentFlags().String("checklist", "", "Path to a JSON checklist file (default: built-in checklist)")
	rootCmd.PersistentFlags().String("log-file", "", "Append structured logs to this file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error, disabled")

	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the config file and SPROUT_* env vars, then applies
// command-line flags on top (highest priority).
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if p, _ := cmd.Flags().GetString("checklist"); p != "" {
		cfg.Checklist = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	return cfg, cfg.Validate()
}

// loadCatalog returns the configured checklist, or the built-in one.
func loadCatalog(cfg config.Config) (*checklist.Catalog, error) {
	if cfg.Checklist == "" {
		return checklist.Default(), nil
	}
	return checklist.Load(cfg.Checklist)
}
