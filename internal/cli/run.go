package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BenDeJonge/advent-of-code-2024/internal/input"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
	"github.com/BenDeJonge/advent-of-code-2024/internal/style"
)

var (
	runInput string
	runPart  int
)

var runCmd = &cobra.Command{
	Use:     "run [day...]",
	Short:   "Run puzzle solutions",
	GroupID: GroupPuzzles,
	Example: `  aoc run          run every implemented day
  aoc run 6 16     run days 6 and 16
  aoc run 3 -i sample.txt`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input file (single day only)")
	runCmd.Flags().IntVarP(&runPart, "part", "p", 0, "part to run, 1 or 2 (default both)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if runPart < 0 || runPart > 2 {
		return fmt.Errorf("part must be 1 or 2, got %d", runPart)
	}
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if runInput != "" && len(days) != 1 {
		return fmt.Errorf("--input requires exactly one day")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, day := range days {
		sol, err := solve.Lookup(day)
		if err != nil {
			return err
		}
		text, err := readInput(cfg.Inputs, day)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s\n", style.Title.Render(fmt.Sprintf("Day %02d: %s", sol.Day, sol.Title)))
		if runPart != 2 {
			printPart(out, 1, sol.Part1, text)
		}
		if runPart != 1 {
			printPart(out, 2, sol.Part2, text)
		}
	}
	return nil
}

func readInput(dir string, day int) (string, error) {
	if runInput != "" {
		b, err := os.ReadFile(runInput)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return input.Read(dir, day)
}

// printer groups digits for a human reader, but only when stdout is a
// terminal so piped output stays machine friendly.
func printer() *message.Printer {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return message.NewPrinter(language.English)
	}
	return message.NewPrinter(language.Und)
}

func printPart(out io.Writer, part int, fn solve.PartFunc, text string) {
	started := time.Now()
	answer, err := fn(text)
	elapsed := time.Since(started).Round(time.Microsecond)
	if err != nil {
		fmt.Fprintf(out, "  %s part %d: %v\n", style.FailPrefix, part, err)
		return
	}
	fmt.Fprintf(out, "  %s part %d: %s %s\n",
		style.OKPrefix, part,
		style.Answer.Render(printer().Sprintf("%d", answer)),
		style.Dim.Render(elapsed.String()))
}
