package static

import (
	"context"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// localeVars are consulted in POSIX precedence order
var localeVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// EnvLocale returns the first usable locale from the environment
func EnvLocale(_ context.Context) (string, error) {
	for _, key := range localeVars {
		if tag, err := canonicalLocale(os.Getenv(key)); err == nil {
			return tag, nil
		}
	}
	return "", metrics.Unavailable("locale environment")
}

// AppleLocale reads the macOS locale preference
func AppleLocale(cmd metrics.CommandExecutor) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		out, err := cmd.Execute(ctx, "defaults", "read", "-g", "AppleLocale")
		if err != nil {
			return "", err
		}
		return canonicalLocale(out)
	}
}

// canonicalLocale turns a POSIX locale like en_US.UTF-8@euro into a BCP 47 tag
func canonicalLocale(raw string) (string, error) {
	name := raw
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", "-")
	if name == "" || name == "C" || name == "POSIX" {
		return "", metrics.Unavailable("locale %q", raw)
	}

	tag, err := language.Parse(name)
	if err != nil {
		return "", metrics.Unavailable("locale %q", raw)
	}
	return tag.String(), nil
}
