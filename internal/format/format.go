// Package format turns resolved facts into labelled display lines.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/monify-labs/sysfetch/pkg/models"
)

// Sentinels shown when every provider of a category failed
const (
	Unknown = "Unknown"
	NA      = "N/A"
)

const bytesPerGB = 1073741824.0

var labels = map[models.Category]string{
	models.Os:            "OS",
	models.ComputerName:  "Host",
	models.KernelVersion: "Kernel",
	models.Uptime:        "Uptime",
	models.Resolution:    "Resolution",
	models.Packages:      "Packages",
	models.Theme:         "Theme",
	models.CpuName:       "CPU",
	models.GpuInfo:       "GPU",
	models.Processes:     "Processes",
	models.Ram:           "Memory",
	models.Swap:          "Swap",
	models.DiskInfo:      "Disk",
	models.Battery:       "Battery",
	models.Locale:        "Locale",
	models.LocalIp:       "Local IP",
	models.Location:      "Location",
}

// Label returns the display label of a category, empty for the identity lines
func Label(c models.Category) string {
	return labels[c]
}

// Sentinel returns the fallback text of a category
func Sentinel(c models.Category) string {
	if c == models.Battery {
		return NA
	}
	return Unknown
}

// Line prefixes value with the category label
func Line(c models.Category, value string) string {
	label := Label(c)
	if label == "" {
		return value
	}
	return label + ": " + value
}

// SentinelLine is the single line shown for a category that could not be resolved
func SentinelLine(c models.Category) string {
	return Line(c, Sentinel(c))
}

// Identity renders user@host, or the host alone when the user is unknown
func Identity(id models.Identity) (string, bool) {
	user, userOK := id.User.Get()
	host, hostOK := id.Host.Get()
	switch {
	case userOK && hostOK:
		return user + "@" + host, true
	case hostOK:
		return host, true
	case userOK:
		return user, true
	default:
		return Unknown, false
	}
}

// Partition renders the dashed rule under the identity line
func Partition(identity string) string {
	return strings.Repeat("-", runewidth.StringWidth(identity))
}

// GB converts bytes to binary gigabytes
func GB(bytes uint64) float64 {
	return float64(bytes) / bytesPerGB
}

// Percent is used*100/total with integer division; zero total yields zero
func Percent(u models.Usage) uint64 {
	if u.Total == 0 {
		return 0
	}
	return u.Used * 100 / u.Total
}

// Usage renders "1.23 GB / 4.56 GB (27%)"
func Usage(u models.Usage) string {
	return fmt.Sprintf("%.2f GB / %.2f GB (%d%%)", GB(u.Used), GB(u.Total), Percent(u))
}

// Disk renders one disk line, labelled with its mount point
func Disk(d models.DiskUsage) string {
	return fmt.Sprintf("%s (%s): %s", Label(models.DiskInfo), d.MountPoint, Usage(d.Usage))
}

// Uptime renders seconds as "N days N hours N minutes ", omitting zero parts
func Uptime(seconds uint64) string {
	var b strings.Builder
	writeUnit(&b, seconds/86400, "day")
	writeUnit(&b, (seconds%86400)/3600, "hour")
	writeUnit(&b, (seconds%3600)/60, "minute")
	if b.Len() == 0 {
		return "less than a minute"
	}
	return b.String()
}

func writeUnit(b *strings.Builder, n uint64, unit string) {
	switch n {
	case 0:
	case 1:
		b.WriteString("1 " + unit + " ")
	default:
		b.WriteString(strconv.FormatUint(n, 10) + " " + unit + "s ")
	}
}

// Packages renders "1234 (dpkg), 12 (flatpak)"
func Packages(counts []models.PackageCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%d (%s)", c.Count, c.Manager))
	}
	return strings.Join(parts, ", ")
}

// CPU renders "N x brand @ X.XGHz"; the count and clock are dropped when unknown
func CPU(c models.CPU) (string, bool) {
	brand, ok := c.Brand.Get()
	if !ok {
		return Unknown, false
	}
	s := strings.TrimSpace(brand)
	if n, ok := c.Count.Get(); ok && n > 0 {
		s = fmt.Sprintf("%d x %s", n, s)
	}
	if mhz, ok := c.MHz.Get(); ok && mhz > 0 {
		s = fmt.Sprintf("%s @ %.1fGHz", s, mhz/1000)
	}
	return s, true
}

// Location renders "City, Region, Country", marking estimates
func Location(l models.LocationInfo) string {
	var parts []string
	for _, p := range []string{l.City, l.Region, l.Country} {
		if p != "" && (len(parts) == 0 || parts[len(parts)-1] != p) {
			parts = append(parts, p)
		}
	}
	s := strings.Join(parts, ", ")
	if l.Estimated {
		s += " (estimated)"
	}
	return s
}
