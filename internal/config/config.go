// Package config loads and stores the runner configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned when no configuration file exists yet.
	ErrNotFound = errors.New("config not found")
	// ErrInvalid is returned when the file parses but fails validation.
	ErrInvalid = errors.New("invalid config")
)

// Config is the on-disk configuration, stored as TOML.
type Config struct {
	// Year is the event year puzzles are fetched for.
	Year int `toml:"year"`
	// Session is the adventofcode.com session cookie used to download
	// puzzle inputs.
	Session string `toml:"session,omitempty"`
	// Inputs is the directory puzzle inputs are cached in.
	Inputs string `toml:"inputs"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Year:   2024,
		Inputs: "data",
	}
}

// Path returns the configuration file location, honoring the AOC_CONFIG
// override.
func Path() (string, error) {
	if p := os.Getenv("AOC_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "aoc", "config.toml"), nil
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, keys[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the configuration at path, falling back to defaults
// when the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes the configuration to path, creating parent directories as
// needed.
func Save(path string, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}

func (c Config) validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("%w: year %d predates the event", ErrInvalid, c.Year)
	}
	if c.Inputs == "" {
		return fmt.Errorf("%w: inputs directory is empty", ErrInvalid)
	}
	return nil
}
