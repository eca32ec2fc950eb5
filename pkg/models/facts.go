package models

// Value is the tagged result of one sub-fact: Known(v) or Unknown
type Value[T any] struct {
	V  T
	OK bool
}

// Known wraps a resolved value
func Known[T any](v T) Value[T] {
	return Value[T]{V: v, OK: true}
}

// Unknown returns the absent value of T
func Unknown[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the value and whether it is known
func (v Value[T]) Get() (T, bool) {
	return v.V, v.OK
}

// Identity holds the current user and host name
type Identity struct {
	User Value[string]
	Host Value[string]
}

// Usage is a used/total pair in bytes
type Usage struct {
	Used  uint64 `json:"used"`
	Total uint64 `json:"total"`
}

// DiskUsage is the usage of one mounted filesystem
type DiskUsage struct {
	MountPoint string `json:"mount"`  // Mount point (e.g., /)
	Device     string `json:"device"` // Device path (e.g., /dev/sda1)
	FSType     string `json:"fstype"` // Filesystem type (e.g., ext4, xfs)
	Usage
}

// GPU describes one graphics adapter
type GPU struct {
	Name string `json:"name"`
}

// PackageCount is the number of packages known to one package manager
type PackageCount struct {
	Manager string `json:"manager"`
	Count   int    `json:"count"`
}

// CPU holds the processor sub-facts, each resolved independently
type CPU struct {
	Brand Value[string]
	Count Value[int]
	MHz   Value[float64]
}

// BatteryInfo holds the three independently resolved battery sub-facts
type BatteryInfo struct {
	Percentage Value[int]
	State      Value[string]
	Health     Value[int]
}

// LocationInfo is a coarse geographic position of the machine
type LocationInfo struct {
	City      string `json:"city"`
	Region    string `json:"regionName"`
	Country   string `json:"country"`
	Estimated bool   `json:"-"` // Derived from the local time zone, not a lookup
}

// ResolvedFact is the display output of one category for a single run
type ResolvedFact struct {
	Category Category
	Lines    []string // Complete, labelled display lines
	Known    bool     // False when the category fell back to its sentinel
}
