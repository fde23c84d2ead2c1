package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/sprout/internal/checklist"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "List the checklist domains and items",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("load checklist: %w", err)
		}

		domainFilter, _ := cmd.Flags().GetString("domain")
		out := cmd.OutOrStdout()

		// Header.
		fmt.Fprintf(out, "%-24s  %5s  %s\n", "Domain", "Index", "Item")
		fmt.Fprintln(out, strings.Repeat("─", 80))

		shown := 0
		for _, d := range cat.Domains() {
			if domainFilter != "" && !strings.EqualFold(d.Name, domainFilter) {
				continue
			}
			for i, item := range d.Items {
				fmt.Fprintf(out, "%-24s  %5d  %s\n", d.Name, i, ansi.Truncate(item, 48, "..."))
				shown++
			}
		}
		if domainFilter != "" && shown == 0 {
			return fmt.Errorf("no domain named %q", domainFilter)
		}

		fmt.Fprintf(out, "\n%d items, max score %d\n", shown, shown*checklist.MaxItemScore)
		return nil
	},
}

func init() {
	checklistCmd.Flags().String("domain", "", "Only list items of this domain")
}
