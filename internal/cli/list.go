package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BenDeJonge/advent-of-code-2024/internal/input"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
	"github.com/BenDeJonge/advent-of-code-2024/internal/style"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List implemented days and cached inputs",
	GroupID: GroupPuzzles,
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, day := range solve.Days() {
		sol, err := solve.Lookup(day)
		if err != nil {
			return err
		}
		cached := style.Dim.Render("input missing")
		if _, err := os.Stat(input.Path(cfg.Inputs, day)); err == nil {
			cached = style.OKPrefix
		}
		fmt.Fprintf(out, "%s %-24s %s\n",
			style.Bold.Render(fmt.Sprintf("%2d", sol.Day)), sol.Title, cached)
	}
	return nil
}
