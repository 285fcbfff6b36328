package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/BenDeJonge/advent-of-code-2024/internal/tui/board"
)

var boardCmd = &cobra.Command{
	Use:     "board",
	Short:   "Run every day on an interactive scoreboard",
	GroupID: GroupPuzzles,
	Args:    cobra.NoArgs,
	RunE:    runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p := tea.NewProgram(board.New(cfg.Inputs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}
