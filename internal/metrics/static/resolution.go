package static

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

var (
	xrandrGeometry  = regexp.MustCompile(`(\d+)x(\d+)\+\d+\+\d+`)
	profilerDisplay = regexp.MustCompile(`(\d+)\s*x\s*(\d+)`)
)

// DRMModes returns the preferred mode of every connected DRM connector
func DRMModes(_ context.Context) ([]string, error) {
	return drmModes("/sys/class/drm")
}

func drmModes(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var modes []string
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		status, err := metrics.ReadTrimmed(filepath.Join(dir, "status"))
		if err != nil || status != "connected" {
			continue
		}
		raw, err := metrics.ReadTrimmed(filepath.Join(dir, "modes"))
		if err != nil {
			continue
		}
		// The first listed mode is the preferred one
		modes = append(modes, strings.SplitN(raw, "\n", 2)[0])
	}

	if len(modes) == 0 {
		return nil, metrics.Unavailable("connected drm connectors")
	}
	return modes, nil
}

// XrandrModes returns the active geometry of each connected X11 output
func XrandrModes(exec metrics.CommandExecutor) func(context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		out, err := exec.Execute(ctx, "xrandr", "--current")
		if err != nil {
			return nil, err
		}
		return parseXrandr(out)
	}
}

func parseXrandr(out string) ([]string, error) {
	var modes []string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		if m := xrandrGeometry.FindStringSubmatch(line); m != nil {
			modes = append(modes, m[1]+"x"+m[2])
		}
	}
	if len(modes) == 0 {
		return nil, metrics.Unavailable("xrandr outputs")
	}
	return modes, nil
}

// SystemProfilerModes returns display resolutions from macOS system_profiler
func SystemProfilerModes(exec metrics.CommandExecutor) func(context.Context) ([]string, error) {
	return func(ctx context.Context) ([]string, error) {
		out, err := exec.Execute(ctx, "system_profiler", "SPDisplaysDataType")
		if err != nil {
			return nil, err
		}
		var modes []string
		for _, v := range profilerValues(out, "Resolution") {
			if m := profilerDisplay.FindStringSubmatch(v); m != nil {
				modes = append(modes, m[1]+"x"+m[2])
			}
		}
		if len(modes) == 0 {
			return nil, metrics.Unavailable("system_profiler displays")
		}
		return modes, nil
	}
}
