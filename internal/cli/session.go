package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/spf13/cobra"

	"github.com/BenDeJonge/advent-of-code-2024/internal/style"
)

var sessionCmd = &cobra.Command{
	Use:     "session [cookie]",
	Short:   "Store the adventofcode.com session cookie",
	GroupID: GroupInputs,
	Args:    cobra.MaximumNArgs(1),
	Long: `Session stores the cookie used to download puzzle inputs.

With an argument the cookie is saved as-is. Without one a browser window
opens on the adventofcode.com login page and the cookie is captured once
you log in.`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Session = args[0]
	} else {
		cookie, err := captureSession(cmd.Context())
		if err != nil {
			return err
		}
		cfg.Session = cookie
	}
	if err := saveConfig(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s session cookie stored\n", style.OKPrefix)
	return nil
}

// captureSession opens a visible browser on the login page and polls for
// the session cookie until the user has logged in.
func captureSession(ctx context.Context) (string, error) {
	url, err := launcher.New().Headless(false).Launch()
	if err != nil {
		return "", fmt.Errorf("launch browser: %w", err)
	}
	browser := rod.New().ControlURL(url).Context(ctx)
	if err := browser.Connect(); err != nil {
		return "", fmt.Errorf("connect browser: %w", err)
	}
	defer browser.Close()

	if _, err := browser.Page(proto.TargetCreateTarget{URL: "https://adventofcode.com/auth/login"}); err != nil {
		return "", fmt.Errorf("open login page: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("waiting for login: %w", ctx.Err())
		case <-ticker.C:
			cookies, err := browser.GetCookies()
			if err != nil {
				return "", fmt.Errorf("read cookies: %w", err)
			}
			for _, c := range cookies {
				if c.Name == "session" && strings.Contains(c.Domain, "adventofcode.com") {
					return c.Value, nil
				}
			}
		}
	}
}
