package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BenDeJonge/advent-of-code-2024/internal/input"
	"github.com/BenDeJonge/advent-of-code-2024/internal/style"
)

var fetchCmd = &cobra.Command{
	Use:     "fetch [day...]",
	Short:   "Download puzzle inputs into the local cache",
	GroupID: GroupInputs,
	Long: `Fetch downloads puzzle inputs from adventofcode.com and caches them
in the configured inputs directory. A session cookie is required, see
"aoc session".`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f := &input.Fetcher{Session: cfg.Session}
	out := cmd.OutOrStdout()
	for _, day := range days {
		if _, err := f.Fetch(cmd.Context(), cfg.Year, day, cfg.Inputs); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
		fmt.Fprintf(out, "%s day %02d cached at %s\n",
			style.OKPrefix, day, style.Dim.Render(input.Path(cfg.Inputs, day)))
	}
	return nil
}
