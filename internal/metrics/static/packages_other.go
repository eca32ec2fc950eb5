//go:build !linux

package static

import (
	"context"
	"strings"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// packageManager enumerates packages through a package manager command
type packageManager struct {
	name   string
	args   []string
	header int // leading lines that are not packages
}

var packageManagers = []packageManager{
	{name: "brew", args: []string{"list", "--formula", "-1"}},
	{name: "port", args: []string{"installed"}, header: 1},
	{name: "pkg", args: []string{"info"}},
	{name: "choco", args: []string{"list", "--limit-output"}},
}

// PackageCounter asks every available package manager for its package list
func PackageCounter(exec metrics.CommandExecutor) func(context.Context) ([]models.PackageCount, error) {
	return func(ctx context.Context) ([]models.PackageCount, error) {
		var counts []models.PackageCount
		for _, pm := range packageManagers {
			out, err := exec.Execute(ctx, pm.name, pm.args...)
			if err != nil {
				continue
			}
			if n := countLines(out) - pm.header; n > 0 {
				counts = append(counts, models.PackageCount{Manager: pm.name, Count: n})
			}
		}

		if len(counts) == 0 {
			return nil, metrics.Unavailable("package managers")
		}
		return counts, nil
	}
}

func countLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
