package resolve

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/pkg/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func ok[T any](name string, v T) Provider[T] {
	return P(name, func(context.Context) (T, error) { return v, nil })
}

func fail[T any](name string) Provider[T] {
	return P(name, func(context.Context) (T, error) {
		var zero T
		return zero, metrics.Unavailable("%s", name)
	})
}

// emptyTable has no providers at all, so every chain is exhausted
func emptyTable() *Table {
	return &Table{}
}

func fullTable() *Table {
	return &Table{
		User:      []Provider[string]{ok("user", "alice")},
		Host:      []Provider[string]{ok("host", "box")},
		OS:        []Provider[string]{ok("os", "Ubuntu 24.04 LTS")},
		Model:     []Provider[string]{ok("model", "ThinkPad X1")},
		Kernel:    []Provider[string]{ok("kernel", "6.8.0-45-generic")},
		Uptime:    []Provider[uint64]{ok[uint64]("uptime", 90061)},
		Displays:  []Provider[[]string]{ok("displays", []string{"1920x1080", "2560x1440"})},
		Packages:  []Provider[[]models.PackageCount]{ok("packages", []models.PackageCount{{Manager: "dpkg", Count: 1834}})},
		Theme:     []Provider[string]{ok("theme", "Dark")},
		CPUBrand:  []Provider[string]{ok("brand", "Intel(R) Core(TM) i7-8565U")},
		CPUCount:  []Provider[int]{ok("count", 8)},
		CPUFreq:   []Provider[float64]{ok("freq", 4600.0)},
		GPUs:      []Provider[[]models.GPU]{ok("gpus", []models.GPU{{Name: "Intel UHD 620"}, {Name: "NVIDIA MX150"}})},
		Processes: []Provider[int]{ok("procs", 312)},
		Memory:    []Provider[models.Usage]{ok("mem", models.Usage{Used: 3221225472, Total: 8589934592})},
		Swap:      []Provider[models.Usage]{ok("swap", models.Usage{})},
		Disks: []Provider[[]models.DiskUsage]{ok("disks", []models.DiskUsage{
			{MountPoint: "/", Usage: models.Usage{Used: 1073741824, Total: 4294967296}},
		})},
		BatteryPercentage: []Provider[int]{ok("pct", 81)},
		BatteryState:      []Provider[string]{ok("state", "Charging")},
		BatteryHealth:     []Provider[int]{ok("health", 90)},
		Locale:            []Provider[string]{ok("locale", "en-US")},
		LocalIP:           []Provider[[]string]{ok("ip", []string{"192.168.1.20"})},
		Location:          []Provider[models.LocationInfo]{ok("loc", models.LocationInfo{City: "Berlin", Region: "Europe", Estimated: true})},
	}
}

func TestResolveAllFailingGivesSentinels(t *testing.T) {
	r := New(emptyTable(), WithLogger(quietLogger()))
	facts := r.ResolveAll(context.Background(), models.Categories())
	require.Len(t, facts, len(models.Categories()))

	for _, f := range facts {
		assert.False(t, f.Known, f.Category.Key())
		require.Len(t, f.Lines, 1, f.Category.Key())
		if f.Category == models.Battery {
			assert.Equal(t, "Battery: N/A", f.Lines[0])
		} else {
			assert.Contains(t, f.Lines[0], "Unknown", f.Category.Key())
		}
	}
}

func TestResolveFullTable(t *testing.T) {
	r := New(fullTable(), WithLogger(quietLogger()))
	facts := r.ResolveAll(context.Background(), models.Categories())

	got := make(map[models.Category][]string)
	for _, f := range facts {
		assert.True(t, f.Known, f.Category.Key())
		got[f.Category] = f.Lines
	}

	assert.Equal(t, []string{"alice@box"}, got[models.User])
	assert.Equal(t, []string{"---------"}, got[models.Partition])
	assert.Equal(t, []string{"OS: Ubuntu 24.04 LTS"}, got[models.Os])
	assert.Equal(t, []string{"Host: ThinkPad X1"}, got[models.ComputerName])
	assert.Equal(t, []string{"Uptime: 1 day 1 hour 1 minute "}, got[models.Uptime])
	assert.Equal(t, []string{"Resolution: 1920x1080, 2560x1440"}, got[models.Resolution])
	assert.Equal(t, []string{"Packages: 1834 (dpkg)"}, got[models.Packages])
	assert.Equal(t, []string{"CPU: 8 x Intel(R) Core(TM) i7-8565U @ 4.6GHz"}, got[models.CpuName])
	assert.Equal(t, []string{"GPU: Intel UHD 620", "GPU: NVIDIA MX150"}, got[models.GpuInfo])
	assert.Equal(t, []string{"Processes: 312"}, got[models.Processes])
	assert.Equal(t, []string{"Memory: 3.00 GB / 8.00 GB (37%)"}, got[models.Ram])
	assert.Equal(t, []string{"Swap: 0.00 GB / 0.00 GB (0%)"}, got[models.Swap])
	assert.Equal(t, []string{"Disk (/): 1.00 GB / 4.00 GB (25%)"}, got[models.DiskInfo])
	assert.Equal(t, []string{"Battery: 81% (Charging)", "  Health: 90%"}, got[models.Battery])
	assert.Equal(t, []string{"Locale: en-US"}, got[models.Locale])
	assert.Equal(t, []string{"Local IP: 192.168.1.20"}, got[models.LocalIp])
	assert.Equal(t, []string{"Location: Berlin, Europe (estimated)"}, got[models.Location])
}

func TestFirstSuccessWins(t *testing.T) {
	var calls []string
	track := func(name string, err error) Provider[string] {
		return P(name, func(context.Context) (string, error) {
			calls = append(calls, name)
			return name, err
		})
	}

	table := &Table{OS: []Provider[string]{
		track("a", errors.New("boom")),
		track("b", nil),
		track("c", nil),
	}}
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.Os)

	assert.Equal(t, []string{"OS: b"}, fact.Lines)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestIdentityResolvedOncePerPass(t *testing.T) {
	calls := 0
	table := &Table{
		User: []Provider[string]{P("user", func(context.Context) (string, error) {
			calls++
			return "alice", nil
		})},
		Host: []Provider[string]{ok("host", "box")},
	}
	r := New(table, WithLogger(quietLogger()))

	facts := r.ResolveAll(context.Background(), []models.Category{models.User, models.Partition})
	assert.Equal(t, 1, calls)
	assert.Equal(t, "alice@box", facts[0].Lines[0])
	assert.Equal(t, "---------", facts[1].Lines[0])

	// Partition alone still resolves the identity
	fact := r.Resolve(context.Background(), models.Partition)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "---------", fact.Lines[0])
}

func TestIdentityHostOnly(t *testing.T) {
	table := &Table{
		User: []Provider[string]{fail[string]("user")},
		Host: []Provider[string]{ok("host", "box")},
	}
	facts := New(table, WithLogger(quietLogger())).ResolveAll(context.Background(), []models.Category{models.User, models.Partition})
	assert.Equal(t, "box", facts[0].Lines[0])
	assert.Equal(t, "---", facts[1].Lines[0])
}

func TestResolveIsIdempotent(t *testing.T) {
	r := New(fullTable(), WithLogger(quietLogger()))
	ctx := context.Background()
	assert.Equal(t, r.ResolveAll(ctx, models.Categories()), r.ResolveAll(ctx, models.Categories()))
}

func TestEmptyMultiLineCategories(t *testing.T) {
	table := &Table{
		GPUs:  []Provider[[]models.GPU]{ok("gpus", []models.GPU{})},
		Disks: []Provider[[]models.DiskUsage]{ok[[]models.DiskUsage]("disks", nil)},
	}
	cats := []models.Category{models.GpuInfo, models.DiskInfo}

	facts := New(table, WithLogger(quietLogger())).ResolveAll(context.Background(), cats)
	for _, f := range facts {
		assert.True(t, f.Known)
		assert.Empty(t, f.Lines, f.Category.Key())
	}

	facts = New(table, WithLogger(quietLogger()), WithReserveEmpty(true)).ResolveAll(context.Background(), cats)
	assert.Equal(t, []string{"GPU: Unknown"}, facts[0].Lines)
	assert.Equal(t, []string{"Disk: Unknown"}, facts[1].Lines)
}

func TestMultiLineFailureGivesOneSentinel(t *testing.T) {
	table := &Table{Disks: []Provider[[]models.DiskUsage]{fail[[]models.DiskUsage]("disks")}}
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.DiskInfo)
	assert.False(t, fact.Known)
	assert.Equal(t, []string{"Disk: Unknown"}, fact.Lines)
}

func TestProviderPanicBecomesSentinel(t *testing.T) {
	table := &Table{Kernel: []Provider[string]{
		P("explodes", func(context.Context) (string, error) { panic("bad sysfs read") }),
	}}
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.KernelVersion)
	assert.False(t, fact.Known)
	assert.Equal(t, []string{"Kernel: Unknown"}, fact.Lines)
}

func TestPanicFallsThroughToNextProvider(t *testing.T) {
	table := &Table{Kernel: []Provider[string]{
		P("explodes", func(context.Context) (string, error) { panic("bad sysfs read") }),
		ok("uname", "6.8.0"),
	}}
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.KernelVersion)
	assert.Equal(t, []string{"Kernel: 6.8.0"}, fact.Lines)
}

func TestBlankTextIsUnknown(t *testing.T) {
	table := &Table{Theme: []Provider[string]{ok("theme", "  ")}}
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.Theme)
	assert.False(t, fact.Known)
	assert.Equal(t, []string{"Theme: Unknown"}, fact.Lines)
}

func TestBatteryPartialSubFacts(t *testing.T) {
	table := &Table{
		BatteryState:  []Provider[string]{ok("state", "Full")},
		BatteryHealth: []Provider[int]{fail[int]("health"), ok("health-2", 97)},
	}
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.Battery)
	assert.True(t, fact.Known)
	assert.Equal(t, []string{"Battery: Full", "  Health: 97%"}, fact.Lines)
}

func TestNewTableOffline(t *testing.T) {
	online := NewTable(Platform{OS: "linux", Arch: "amd64"}, Options{Executor: metrics.NewExecutor()})
	offline := NewTable(Platform{OS: "linux", Arch: "amd64"}, Options{Executor: metrics.NewExecutor(), Offline: true})

	assert.Equal(t, []string{"geolocation", "time-zone"}, names(online.Location))
	assert.Equal(t, []string{"time-zone"}, names(offline.Location))
}

func TestNewTablePlatformChains(t *testing.T) {
	linux := NewTable(Platform{OS: "linux", Arch: "amd64"}, Options{})
	assert.Equal(t, []string{"cpuid", "cpu-info", "proc-cpuinfo"}, names(linux.CPUBrand))
	assert.Equal(t, []string{"lspci", "drm"}, names(linux.GPUs))
	assert.Equal(t, []string{"power-supply"}, names(linux.BatteryState))

	arm := NewTable(Platform{OS: "linux", Arch: "arm64"}, Options{})
	assert.Equal(t, []string{"cpu-info", "proc-cpuinfo"}, names(arm.CPUBrand))

	darwin := NewTable(Platform{OS: "darwin", Arch: "arm64"}, Options{})
	assert.Equal(t, []string{"cpu-info", "sysctl"}, names(darwin.CPUBrand))
	assert.Equal(t, []string{"env", "defaults"}, names(darwin.Locale))
	assert.Equal(t, []string{"pmset"}, names(darwin.BatteryPercentage))

	windows := NewTable(Platform{OS: "windows", Arch: "amd64"}, Options{})
	assert.Equal(t, []string{"registry"}, names(windows.Theme))
	assert.Empty(t, windows.BatteryState)
}

func TestLocationFallsBackToTimeZoneWithinTimeout(t *testing.T) {
	t.Setenv("TZ", "Europe/Berlin")

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	table := NewTable(CurrentPlatform(), Options{
		Executor:    metrics.NewExecutor(),
		GeoEndpoint: srv.URL,
		GeoTimeout:  50 * time.Millisecond,
	})

	start := time.Now()
	fact := New(table, WithLogger(quietLogger())).Resolve(context.Background(), models.Location)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, fact.Known)
	assert.Equal(t, []string{"Location: Berlin, Europe (estimated)"}, fact.Lines)
}
