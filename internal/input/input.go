// Package input resolves cached puzzle inputs and downloads missing ones
// from adventofcode.com.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

var (
	// ErrNoInput is returned when a puzzle input is not cached locally.
	ErrNoInput = errors.New("puzzle input not cached")
	// ErrNoSession is returned when a download is attempted without a
	// session cookie.
	ErrNoSession = errors.New("no session cookie configured")
)

// Path returns the cache location for a day's input.
func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}

// Read returns the cached input for a day.
func Read(dir string, day int) (string, error) {
	b, err := os.ReadFile(Path(dir, day))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: day %d, run fetch first", ErrNoInput, day)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Fetcher downloads puzzle inputs into the local cache.
type Fetcher struct {
	// BaseURL overrides the download host, for tests.
	BaseURL string
	// Session is the adventofcode.com session cookie.
	Session string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

func (f *Fetcher) baseURL() string {
	if f.BaseURL != "" {
		return f.BaseURL
	}
	return "https://adventofcode.com"
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return http.DefaultClient
}

// Fetch ensures the input for a day is cached in dir and returns it. A
// file lock guards the download so concurrent fetches of the same day hit
// the network once.
func (f *Fetcher) Fetch(ctx context.Context, year, day int, dir string) (string, error) {
	if cached, err := Read(dir, day); err == nil {
		return cached, nil
	}
	if f.Session == "" {
		return "", ErrNoSession
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create input dir: %w", err)
	}

	path := Path(dir, day)
	lock := flock.New(path + ".lock")
	if _, err := lock.TryLockContext(ctx, 100*time.Millisecond); err != nil {
		return "", fmt.Errorf("lock input cache: %w", err)
	}
	defer lock.Unlock()

	// Another process may have filled the cache while we waited.
	if cached, err := Read(dir, day); err == nil {
		return cached, nil
	}

	body, err := f.download(ctx, year, day)
	if err != nil {
		return "", err
	}

	// Write through a unique temp file so readers never see a partial
	// input.
	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return "", fmt.Errorf("write input: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("store input: %w", err)
	}
	return string(body), nil
}

func (f *Fetcher) download(ctx context.Context, year, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", f.baseURL(), year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("download day %d: %w", day, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download day %d: %s", day, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
