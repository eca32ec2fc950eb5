package models

// Category identifies one fact slot shown in the output
type Category int

// Declaration order is the on-screen order and the config key order
const (
	User Category = iota
	Partition
	Os
	ComputerName
	KernelVersion
	Uptime
	Resolution
	Packages
	Theme
	CpuName
	GpuInfo
	Processes
	Ram
	Swap
	DiskInfo
	Battery
	Locale
	LocalIp
	Location

	categoryCount
)

var categoryKeys = [categoryCount]string{
	User:          "user",
	Partition:     "partition",
	Os:            "os",
	ComputerName:  "computer_name",
	KernelVersion: "kernel_version",
	Uptime:        "uptime",
	Resolution:    "resolution",
	Packages:      "packages",
	Theme:         "theme",
	CpuName:       "cpu_name",
	GpuInfo:       "gpu_info",
	Processes:     "processes",
	Ram:           "ram",
	Swap:          "swap",
	DiskInfo:      "disk_info",
	Battery:       "battery",
	Locale:        "locale",
	LocalIp:       "local_ip",
	Location:      "location",
}

// Categories returns every category in declaration order
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// Key returns the configuration key of the category
func (c Category) Key() string {
	if c < 0 || c >= categoryCount {
		return "unknown"
	}
	return categoryKeys[c]
}

func (c Category) String() string {
	return c.Key()
}

// Valid reports whether c is a declared category
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// MultiLine reports whether the category expands to one line per item
func (c Category) MultiLine() bool {
	return c == GpuInfo || c == DiskInfo
}

// ParseCategory looks up a category by its configuration key
func ParseCategory(key string) (Category, bool) {
	for i, k := range categoryKeys {
		if k == key {
			return Category(i), true
		}
	}
	return 0, false
}
