package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/logging"
	"github.com/abhisek/sprout/internal/report"
	"github.com/abhisek/sprout/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score items non-interactively and print the summary",
	Example: `  sprout score --set "Motor Skills#0=3" --set "Motor Skills#1=4"
  sprout score --set "Receptive Language#2=1" --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		sets, _ := cmd.Flags().GetStringArray("set")
		asJSON, _ := cmd.Flags().GetBool("json")

		engine := scoring.NewEngine(cat, scoring.WithLogger(logger))
		for _, s := range sets {
			a, err := parseAssignment(s)
			if err != nil {
				return err
			}
			err = engine.SetScore(a.Domain, a.Index, a.Raw)
			var perr *scoring.ParseError
			switch {
			case errors.As(err, &perr):
				// Stored as invalid; counts as 0 in the summary.
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s#%d: %v (counted as 0)\n", a.Domain, a.Index, perr)
			case err != nil:
				return fmt.Errorf("set %q: %w", s, err)
			}
		}

		sum := engine.Calculate()
		if asJSON {
			return report.WriteJSON(cmd.OutOrStdout(), engine.ID(), sum)
		}
		return report.WriteText(cmd.OutOrStdout(), sum)
	},
}

func init() {
	scoreCmd.Flags().StringArray("set", nil, `Score an item as "Domain#index=value" (repeatable; empty value clears)`)
	scoreCmd.Flags().Bool("json", false, "Print the summary as JSON")
}

// assignment is one parsed --set flag.
type assignment struct {
	Domain string
	Index  int
	Raw    string
}

// parseAssignment splits "Domain#index=value". The value is passed through
// raw so the engine decides whether it is a valid score.
func parseAssignment(s string) (assignment, error) {
	key, raw, ok := strings.Cut(s, "=")
	if !ok {
		return assignment{}, fmt.Errorf("invalid --set %q: expected Domain#index=value", s)
	}
	hash := strings.LastIndex(key, "#")
	if hash < 0 {
		return assignment{}, fmt.Errorf("invalid --set %q: missing #index", s)
	}

	domain := strings.TrimSpace(key[:hash])
	if domain == "" {
		return assignment{}, fmt.Errorf("invalid --set %q: empty domain", s)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(key[hash+1:]))
	if err != nil {
		return assignment{}, fmt.Errorf("invalid --set %q: index must be an integer", s)
	}

	return assignment{Domain: domain, Index: idx, Raw: raw}, nil
}
