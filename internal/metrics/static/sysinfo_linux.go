//go:build linux

package static

import (
	"context"
	"strings"
	"sync"

	"github.com/zcalusic/sysinfo"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// placeholderModels are firmware defaults that carry no information
var placeholderModels = map[string]bool{
	"to be filled by o.e.m.": true,
	"default string":         true,
	"system product name":    true,
	"system version":         true,
	"not applicable":         true,
	"none":                   true,
}

var (
	si     sysinfo.SysInfo
	siOnce sync.Once
)

// gather reads sysfs and os-release once per process
func gather() *sysinfo.SysInfo {
	siOnce.Do(si.GetSysInfo)
	return &si
}

// SysinfoOSName returns the distribution's pretty name
func SysinfoOSName(_ context.Context) (string, error) {
	return osName(gather().OS)
}

// SysinfoModel returns the machine model from the DMI product fields
func SysinfoModel(_ context.Context) (string, error) {
	return productModel(gather().Product)
}

func osName(o sysinfo.OS) (string, error) {
	if name := strings.TrimSpace(o.Name); name != "" {
		return name, nil
	}
	if o.Vendor == "" {
		return "", metrics.Unavailable("os name")
	}
	return strings.TrimSpace(o.Vendor + " " + o.Version), nil
}

func productModel(p sysinfo.Product) (string, error) {
	var parts []string
	for _, value := range []string{p.Name, p.Version} {
		value = strings.TrimSpace(value)
		if value == "" || placeholderModels[strings.ToLower(value)] {
			continue
		}
		parts = append(parts, value)
	}

	if len(parts) == 0 {
		return "", metrics.Unavailable("dmi model")
	}
	return strings.Join(parts, " "), nil
}
