package static

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// Theme modes
const (
	ThemeDark  = "Dark"
	ThemeLight = "Light"
)

// GTKTheme derives the mode from the GTK_THEME variant suffix
func GTKTheme(_ context.Context) (string, error) {
	theme := os.Getenv("GTK_THEME")
	if theme == "" {
		return "", metrics.Unavailable("GTK_THEME")
	}
	return modeOf(theme), nil
}

// GSettingsTheme reads the GNOME color scheme preference
func GSettingsTheme(cmd metrics.CommandExecutor) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := cmd.Execute(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return "", err
		}
		scheme := strings.Trim(out, `'"`)
		if scheme == "" {
			return "", metrics.Unavailable("color-scheme")
		}
		return modeOf(scheme), nil
	}
}

// AppleInterfaceStyle reads the macOS appearance. The key only exists in
// dark mode, so a failing read of an existing defaults binary means light.
func AppleInterfaceStyle(cmd metrics.CommandExecutor) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := cmd.Execute(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return ThemeLight, nil
			}
			return "", err
		}
		return modeOf(out), nil
	}
}

func modeOf(name string) string {
	if strings.Contains(strings.ToLower(name), "dark") {
		return ThemeDark
	}
	return ThemeLight
}
