package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "aoc", "config.toml")
	want := Config{Year: 2024, Session: "abc123", Inputs: "inputs"}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	t.Parallel()
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("year = 2024\ninputs = \"data\"\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"year too early", Config{Year: 2014, Inputs: "data"}},
		{"empty inputs", Config{Year: 2024}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("validate = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPathOverride(t *testing.T) {
	t.Setenv("AOC_CONFIG", "/tmp/custom.toml")
	p, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.toml" {
		t.Errorf("Path = %q, want override", p)
	}
}
