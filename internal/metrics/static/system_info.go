package static

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"howett.net/plist"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

const systemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"

// PlatformName returns "<Platform> <Version>" from gopsutil host information
func PlatformName(ctx context.Context) (string, error) {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return "", err
	}
	if platform == "" {
		return "", metrics.Unavailable("platform")
	}

	name := platform
	if strings.ToLower(platform) == platform {
		name = cases.Title(language.English).String(platform)
	}
	return strings.TrimSpace(name + " " + version), nil
}

// systemVersion mirrors the keys of macOS SystemVersion.plist
type systemVersion struct {
	ProductName         string `plist:"ProductName"`
	ProductVersion      string `plist:"ProductVersion"`
	ProductBuildVersion string `plist:"ProductBuildVersion"`
}

// SystemVersionName returns the macOS product name and version
func SystemVersionName(_ context.Context) (string, error) {
	f, err := os.Open(systemVersionPlist)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return decodeSystemVersion(f)
}

func decodeSystemVersion(r io.ReadSeeker) (string, error) {
	var v systemVersion
	if err := plist.NewDecoder(r).Decode(&v); err != nil {
		return "", err
	}
	if v.ProductName == "" {
		return "", metrics.Unavailable("SystemVersion.plist")
	}

	parts := []string{v.ProductName, v.ProductVersion}
	if v.ProductBuildVersion != "" {
		parts = append(parts, v.ProductBuildVersion)
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// KernelVersion returns the kernel release reported by gopsutil
func KernelVersion(ctx context.Context) (string, error) {
	version, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return "", err
	}
	if version == "" {
		return "", metrics.Unavailable("kernel version")
	}
	return version, nil
}
