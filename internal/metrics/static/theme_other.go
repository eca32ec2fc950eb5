//go:build !windows

package static

import (
	"context"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// RegistryTheme is only implemented on Windows
func RegistryTheme(_ context.Context) (string, error) {
	return "", metrics.Unavailable("registry")
}
