package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDays(t *testing.T) {
	t.Run("explicit days are sorted", func(t *testing.T) {
		days, err := parseDays([]string{"7", "2"})
		if err != nil {
			t.Fatal(err)
		}
		if len(days) != 2 || days[0] != 2 || days[1] != 7 {
			t.Errorf("parseDays = %v, want [2 7]", days)
		}
	})
	t.Run("empty means all", func(t *testing.T) {
		days, err := parseDays(nil)
		if err != nil {
			t.Fatal(err)
		}
		if len(days) != 16 {
			t.Errorf("parseDays(nil) returned %d days, want 16", len(days))
		}
	})
	t.Run("non-numeric", func(t *testing.T) {
		if _, err := parseDays([]string{"six"}); err == nil {
			t.Error("expected error for non-numeric day")
		}
	})
	t.Run("unregistered day", func(t *testing.T) {
		if _, err := parseDays([]string{"17"}); err == nil {
			t.Error("expected error for unregistered day")
		}
	})
}

func TestRunCommandWithExplicitInput(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(sample, []byte("3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"run", "1", "--input", sample, "--config", filepath.Join(dir, "config.toml")})
	defer func() {
		runInput = ""
		configPath = ""
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Day 01: Historian Hysteria") {
		t.Errorf("output missing day header:\n%s", got)
	}
	if !strings.Contains(got, "11") || !strings.Contains(got, "31") {
		t.Errorf("output missing answers:\n%s", got)
	}
}

func TestRunCommandRejectsInputForManyDays(t *testing.T) {
	runInput = "x.txt"
	defer func() { runInput = "" }()
	if err := runRun(runCmd, []string{"1", "2"}); err == nil {
		t.Error("expected error when --input is combined with several days")
	}
}
