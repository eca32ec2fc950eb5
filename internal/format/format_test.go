package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monify-labs/sysfetch/pkg/models"
)

func TestPercentTruncates(t *testing.T) {
	u := models.Usage{Used: 3221225472, Total: 8589934592}
	assert.Equal(t, uint64(37), Percent(u))
	assert.Equal(t, "3.00 GB / 8.00 GB (37%)", Usage(u))
}

func TestPercentZeroTotal(t *testing.T) {
	assert.Equal(t, uint64(0), Percent(models.Usage{}))
	assert.Equal(t, "0.00 GB / 0.00 GB (0%)", Usage(models.Usage{}))
}

func TestPercentNearlyFull(t *testing.T) {
	assert.Equal(t, uint64(99), Percent(models.Usage{Used: 999, Total: 1000}))
}

func TestDisk(t *testing.T) {
	d := models.DiskUsage{MountPoint: "/home", Usage: models.Usage{Used: 1610612736, Total: 10737418240}}
	assert.Equal(t, "Disk (/home): 1.50 GB / 10.00 GB (15%)", Disk(d))
}

func TestUptime(t *testing.T) {
	tests := []struct {
		seconds uint64
		want    string
	}{
		{90061, "1 day 1 hour 1 minute "},
		{2*86400 + 3*3600 + 4*60, "2 days 3 hours 4 minutes "},
		{3600, "1 hour "},
		{86400 + 120, "1 day 2 minutes "},
		{59, "less than a minute"},
		{0, "less than a minute"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Uptime(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestBatteryTemplates(t *testing.T) {
	p := models.Known(80)
	s := models.Known("Charging")
	h := models.Known(95)
	noInt := models.Unknown[int]()
	noStr := models.Unknown[string]()

	tests := []struct {
		name  string
		in    models.BatteryInfo
		want  []string
		known bool
	}{
		{"all", models.BatteryInfo{Percentage: p, State: s, Health: h}, []string{"Battery: 80% (Charging)", "  Health: 95%"}, true},
		{"percentage and state", models.BatteryInfo{Percentage: p, State: s, Health: noInt}, []string{"Battery: 80% (Charging)"}, true},
		{"percentage and health", models.BatteryInfo{Percentage: p, State: noStr, Health: h}, []string{"Battery: 80%", "  Health: 95%"}, true},
		{"state and health", models.BatteryInfo{Percentage: noInt, State: s, Health: h}, []string{"Battery: Charging", "  Health: 95%"}, true},
		{"state only", models.BatteryInfo{Percentage: noInt, State: s, Health: noInt}, []string{"Battery: Charging"}, true},
		{"percentage only", models.BatteryInfo{Percentage: p, State: noStr, Health: noInt}, []string{"Battery: N/A"}, false},
		{"health only", models.BatteryInfo{Percentage: noInt, State: noStr, Health: h}, []string{"Battery: N/A"}, false},
		{"none", models.BatteryInfo{}, []string{"Battery: N/A"}, false},
	}

	seen := make(map[string]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := Battery(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
		got, _ := Battery(tt.in)
		seen[got[0]+"|"+lastOf(got)] = true
	}
	// the N/A shape covers the last three rows
	assert.Len(t, seen, 6)
}

func lastOf(lines []string) string {
	return lines[len(lines)-1]
}

func TestIdentityAndPartition(t *testing.T) {
	line, ok := Identity(models.Identity{User: models.Known("alice"), Host: models.Known("box")})
	assert.True(t, ok)
	assert.Equal(t, "alice@box", line)
	assert.Equal(t, "---------", Partition(line))

	line, ok = Identity(models.Identity{Host: models.Known("box")})
	assert.True(t, ok)
	assert.Equal(t, "box", line)

	line, ok = Identity(models.Identity{})
	assert.False(t, ok)
	assert.Equal(t, "Unknown", line)
}

func TestCPU(t *testing.T) {
	s, ok := CPU(models.CPU{
		Brand: models.Known("AMD Ryzen 7 5800X 8-Core Processor   "),
		Count: models.Known(16),
		MHz:   models.Known(3800.0),
	})
	assert.True(t, ok)
	assert.Equal(t, "16 x AMD Ryzen 7 5800X 8-Core Processor @ 3.8GHz", s)

	s, ok = CPU(models.CPU{Brand: models.Known("Apple M1"), Count: models.Known(8)})
	assert.True(t, ok)
	assert.Equal(t, "8 x Apple M1", s)

	s, ok = CPU(models.CPU{Count: models.Known(8)})
	assert.False(t, ok)
	assert.Equal(t, "Unknown", s)
}

func TestSentinelLines(t *testing.T) {
	assert.Equal(t, "OS: Unknown", SentinelLine(models.Os))
	assert.Equal(t, "Battery: N/A", SentinelLine(models.Battery))
	assert.Equal(t, "Unknown", SentinelLine(models.User))
}

func TestPackagesAndLocation(t *testing.T) {
	assert.Equal(t, "1834 (dpkg), 12 (flatpak)", Packages([]models.PackageCount{
		{Manager: "dpkg", Count: 1834},
		{Manager: "flatpak", Count: 12},
	}))

	assert.Equal(t, "Lisbon, Portugal", Location(models.LocationInfo{City: "Lisbon", Region: "Lisbon", Country: "Portugal"}))
	assert.Equal(t, "Berlin, Europe (estimated)", Location(models.LocationInfo{City: "Berlin", Region: "Europe", Estimated: true}))
}
