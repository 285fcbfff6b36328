// Package cli provides the commands for the aoc tool.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BenDeJonge/advent-of-code-2024/internal/config"
	_ "github.com/BenDeJonge/advent-of-code-2024/internal/days"
	"github.com/BenDeJonge/advent-of-code-2024/internal/solve"
	"github.com/BenDeJonge/advent-of-code-2024/internal/style"
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2024 puzzle runner",
	Long: `aoc runs the Advent of Code 2024 solutions.

Puzzle inputs are cached locally and can be downloaded with a session
cookie from adventofcode.com.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command group IDs, used by subcommands to organize help output.
const (
	GroupPuzzles = "puzzles"
	GroupInputs  = "inputs"
	GroupConfig  = "config"
)

var configPath string

func init() {
	// Enable prefix matching for subcommands (e.g. "aoc fe 3" -> "aoc fetch 3").
	cobra.EnablePrefixMatching = true

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupPuzzles, Title: "Puzzles:"},
		&cobra.Group{ID: GroupInputs, Title: "Inputs:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupConfig)
	rootCmd.SetCompletionCommandGroupID(GroupConfig)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: user config dir)")
}

// Execute runs the root command and returns an exit code for main.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.FailPrefix, err)
		return 1
	}
	return 0
}

// loadConfig resolves the configuration, honoring the --config flag.
func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return config.Config{}, err
		}
	}
	return config.LoadOrDefault(path)
}

// saveConfig writes the configuration back to the resolved location.
func saveConfig(cfg config.Config) error {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.Path(); err != nil {
			return err
		}
	}
	return config.Save(path, cfg)
}

// parseDays converts day arguments to numbers, defaulting to every
// registered day when no arguments are given.
func parseDays(args []string) ([]int, error) {
	if len(args) == 0 {
		return solve.Days(), nil
	}
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("bad day %q", arg)
		}
		if _, err := solve.Lookup(day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	sort.Ints(days)
	return days, nil
}
