package resolve

import (
	"runtime"
	"time"

	"github.com/monify-labs/sysfetch/internal/metrics"
	"github.com/monify-labs/sysfetch/internal/metrics/dynamic"
	"github.com/monify-labs/sysfetch/internal/metrics/static"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// Platform is the (GOOS, GOARCH) pair the strategy table is keyed by
type Platform struct {
	OS   string
	Arch string
}

// CurrentPlatform returns the platform the binary was built for
func CurrentPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// x86 reports whether the CPUID instruction is available
func (p Platform) x86() bool {
	return p.Arch == "amd64" || p.Arch == "386"
}

// Options tune how the table is built
type Options struct {
	Executor    metrics.CommandExecutor
	Offline     bool          // Drop providers that need the network
	GeoEndpoint string        // Geolocation endpoint, static.GeoEndpoint when empty
	GeoTimeout  time.Duration // Geolocation timeout, static.LookupTimeout when zero
}

// Table holds the ordered providers of every raw fact
type Table struct {
	User     []Provider[string]
	Host     []Provider[string]
	OS       []Provider[string]
	Model    []Provider[string]
	Kernel   []Provider[string]
	Uptime   []Provider[uint64]
	Displays []Provider[[]string]
	Packages []Provider[[]models.PackageCount]
	Theme    []Provider[string]

	CPUBrand []Provider[string]
	CPUCount []Provider[int]
	CPUFreq  []Provider[float64]

	GPUs      []Provider[[]models.GPU]
	Processes []Provider[int]
	Memory    []Provider[models.Usage]
	Swap      []Provider[models.Usage]
	Disks     []Provider[[]models.DiskUsage]

	BatteryPercentage []Provider[int]
	BatteryState      []Provider[string]
	BatteryHealth     []Provider[int]

	Locale   []Provider[string]
	LocalIP  []Provider[[]string]
	Location []Provider[models.LocationInfo]
}

// NewTable builds the provider chains for a platform
func NewTable(p Platform, opts Options) *Table {
	exec := opts.Executor
	if exec == nil {
		exec = metrics.NewExecutor()
	}

	t := &Table{
		User: []Provider[string]{
			P("process-owner", static.ProcessOwner),
			P("os/user", static.CurrentUser),
			P("env", static.EnvUser),
		},
		Host: []Provider[string]{
			P("host-info", static.InfoHostname),
			P("os.Hostname", static.OSHostname),
		},
		OS:     []Provider[string]{P("platform-info", static.PlatformName)},
		Kernel: []Provider[string]{P("host-kernel", static.KernelVersion)},
		Uptime: []Provider[uint64]{P("host-uptime", dynamic.HostUptime)},
		CPUCount: []Provider[int]{
			P("cpu-counts", static.LogicalCount),
			P("runtime", static.RuntimeCount),
		},
		Processes: []Provider[int]{P("pids", dynamic.ProcessCount)},
		Memory:    []Provider[models.Usage]{P("virtual-memory", dynamic.VirtualMemory)},
		Swap:      []Provider[models.Usage]{P("swap-memory", dynamic.SwapMemory)},
		Disks:     []Provider[[]models.DiskUsage]{P("partitions", dynamic.Disks)},
		Locale:    []Provider[string]{P("env", static.EnvLocale)},
		LocalIP: []Provider[[]string]{
			P("interfaces", static.PrivateAddresses),
			P("interface-addrs", static.InterfaceAddresses),
		},
		Packages: []Provider[[]models.PackageCount]{P("package-managers", static.PackageCounter(exec))},
	}

	if p.x86() {
		t.CPUBrand = append(t.CPUBrand, P("cpuid", static.CPUIDBrand))
	}
	t.CPUBrand = append(t.CPUBrand, P("cpu-info", static.InfoModelName))
	t.CPUFreq = append(t.CPUFreq, P("cpu-info", static.InfoMHz))

	switch p.OS {
	case "linux":
		t.OS = append(t.OS, P("sysinfo", static.SysinfoOSName))
		t.Model = append(t.Model, P("sysinfo", static.SysinfoModel))
		t.Kernel = append(t.Kernel, P("uname", static.UnameRelease))
		t.Uptime = append(t.Uptime, P("sysinfo", dynamic.SysinfoUptime), P("proc-uptime", dynamic.ProcUptime))
		t.Displays = append(t.Displays, P("drm", static.DRMModes), P("xrandr", static.XrandrModes(exec)))
		t.Theme = append(t.Theme, P("gtk-theme", static.GTKTheme), P("gsettings", static.GSettingsTheme(exec)))
		t.CPUBrand = append(t.CPUBrand, P("proc-cpuinfo", static.ProcCPUInfoModel))
		t.CPUFreq = append(t.CPUFreq, P("cpufreq", static.CPUFreqMaxMHz))
		t.GPUs = append(t.GPUs, P("lspci", static.LspciGPUs(exec)), P("drm", static.DRMGPUs))
		t.Processes = append(t.Processes, P("proc", dynamic.ProcDirCount))
		t.Memory = append(t.Memory, P("proc-meminfo", dynamic.ProcMeminfo))
		t.Swap = append(t.Swap, P("sysinfo", dynamic.SysinfoSwap))

		ps := dynamic.NewPowerSupply()
		t.BatteryPercentage = append(t.BatteryPercentage, P("power-supply", ps.Percentage))
		t.BatteryState = append(t.BatteryState, P("power-supply", ps.State))
		t.BatteryHealth = append(t.BatteryHealth, P("power-supply", ps.Health))

	case "darwin":
		t.OS = append(t.OS, P("system-version", static.SystemVersionName))
		t.Model = append(t.Model, P("sysctl", static.SysctlModel(exec)))
		t.Kernel = append(t.Kernel, P("uname", static.UnameRelease))
		t.Displays = append(t.Displays, P("system-profiler", static.SystemProfilerModes(exec)))
		t.Theme = append(t.Theme, P("defaults", static.AppleInterfaceStyle(exec)))
		t.CPUBrand = append(t.CPUBrand, P("sysctl", static.SysctlBrand(exec)))
		t.CPUFreq = append(t.CPUFreq, P("sysctl", static.SysctlMHz(exec)))
		t.GPUs = append(t.GPUs, P("system-profiler", static.SystemProfilerGPUs(exec)))
		t.Locale = append(t.Locale, P("defaults", static.AppleLocale(exec)))

		pm := dynamic.NewPmset(exec)
		t.BatteryPercentage = append(t.BatteryPercentage, P("pmset", pm.Percentage))
		t.BatteryState = append(t.BatteryState, P("pmset", pm.State))
		t.BatteryHealth = append(t.BatteryHealth, P("system-profiler", pm.Health))

	case "windows":
		t.Displays = append(t.Displays, P("system-metrics", static.ScreenMetrics))
		t.Theme = append(t.Theme, P("registry", static.RegistryTheme))
		t.GPUs = append(t.GPUs, P("powershell", static.PowerShellGPUs(exec)))

	default:
		t.Kernel = append(t.Kernel, P("uname", static.UnameRelease))
		t.Displays = append(t.Displays, P("xrandr", static.XrandrModes(exec)))
	}

	if p.x86() {
		t.CPUFreq = append(t.CPUFreq, P("cpuid", static.CPUIDMHz))
	}

	if !opts.Offline {
		endpoint := opts.GeoEndpoint
		if endpoint == "" {
			endpoint = static.GeoEndpoint
		}
		locator := static.NewLocator(endpoint, opts.GeoTimeout)
		t.Location = append(t.Location, P("geolocation", locator.Lookup))
	}
	t.Location = append(t.Location, P("time-zone", static.TimeZoneEstimate))

	return t
}

// Names lists the provider names of every chain, for debug output
func (t *Table) Names() map[string][]string {
	return map[string][]string{
		"user":      names(t.User),
		"host":      names(t.Host),
		"os":        names(t.OS),
		"model":     names(t.Model),
		"kernel":    names(t.Kernel),
		"uptime":    names(t.Uptime),
		"displays":  names(t.Displays),
		"packages":  names(t.Packages),
		"theme":     names(t.Theme),
		"cpu_brand": names(t.CPUBrand),
		"cpu_count": names(t.CPUCount),
		"cpu_freq":  names(t.CPUFreq),
		"gpus":      names(t.GPUs),
		"processes": names(t.Processes),
		"memory":    names(t.Memory),
		"swap":      names(t.Swap),
		"disks":     names(t.Disks),
		"battery":   append(append(names(t.BatteryPercentage), names(t.BatteryState)...), names(t.BatteryHealth)...),
		"locale":    names(t.Locale),
		"local_ip":  names(t.LocalIP),
		"location":  names(t.Location),
	}
}

func names[T any](providers []Provider[T]) []string {
	out := make([]string, len(providers))
	for i, p := range providers {
		out[i] = p.Name
	}
	return out
}

