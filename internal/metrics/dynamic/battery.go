package dynamic

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/monify-labs/sysfetch/internal/metrics"
)

// PowerSupply reads battery sub-facts from the Linux power_supply class.
// Each sub-fact is read independently so one missing attribute does not
// hide the others.
type PowerSupply struct {
	root string
}

// NewPowerSupply creates a reader for /sys/class/power_supply
func NewPowerSupply() *PowerSupply {
	return &PowerSupply{root: "/sys/class/power_supply"}
}

// battery returns the directory of the first supply whose type is Battery
func (p *PowerSupply) battery() (string, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		dir := filepath.Join(p.root, e.Name())
		if kind, err := metrics.ReadTrimmed(filepath.Join(dir, "type")); err == nil && kind == "Battery" {
			return dir, nil
		}
	}
	return "", metrics.Unavailable("no battery in %s", p.root)
}

// Percentage returns the remaining capacity in percent
func (p *PowerSupply) Percentage(_ context.Context) (int, error) {
	dir, err := p.battery()
	if err != nil {
		return 0, err
	}
	return readPercent(filepath.Join(dir, "capacity"))
}

// State returns the charge state, e.g. Charging or Discharging
func (p *PowerSupply) State(_ context.Context) (string, error) {
	dir, err := p.battery()
	if err != nil {
		return "", err
	}
	status, err := metrics.ReadTrimmed(filepath.Join(dir, "status"))
	if err != nil {
		return "", err
	}
	if status == "Unknown" {
		return "", metrics.Unavailable("battery status")
	}
	return status, nil
}

// Health returns full capacity relative to design capacity, in percent
func (p *PowerSupply) Health(_ context.Context) (int, error) {
	dir, err := p.battery()
	if err != nil {
		return 0, err
	}
	for _, prefix := range []string{"energy", "charge"} {
		full, err := readUint(filepath.Join(dir, prefix+"_full"))
		if err != nil {
			continue
		}
		design, err := readUint(filepath.Join(dir, prefix+"_full_design"))
		if err != nil || design == 0 {
			continue
		}
		return int(full * 100 / design), nil
	}
	return 0, metrics.Unavailable("battery design capacity")
}

func readUint(path string) (uint64, error) {
	raw, err := metrics.ReadTrimmed(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(raw, 10, 64)
}

func readPercent(path string) (int, error) {
	n, err := readUint(path)
	if err != nil {
		return 0, err
	}
	if n > 100 {
		n = 100
	}
	return int(n), nil
}

var (
	pmsetPercent = regexp.MustCompile(`(\d+)%;\s*([^;]+);`)
	maxCapacity  = regexp.MustCompile(`Maximum Capacity:\s*(\d+)%`)
)

// Pmset reads battery sub-facts on macOS from pmset and system_profiler
type Pmset struct {
	exec metrics.CommandExecutor
}

// NewPmset creates a macOS battery reader
func NewPmset(exec metrics.CommandExecutor) *Pmset {
	return &Pmset{exec: exec}
}

func (p *Pmset) batt(ctx context.Context) ([]string, error) {
	out, err := p.exec.Execute(ctx, "pmset", "-g", "batt")
	if err != nil {
		return nil, err
	}
	m := pmsetPercent.FindStringSubmatch(out)
	if m == nil {
		return nil, metrics.Unavailable("pmset battery")
	}
	return m, nil
}

// Percentage returns the remaining capacity reported by pmset
func (p *Pmset) Percentage(ctx context.Context) (int, error) {
	m, err := p.batt(ctx)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(m[1])
}

// State returns the pmset charge state, capitalized
func (p *Pmset) State(ctx context.Context) (string, error) {
	m, err := p.batt(ctx)
	if err != nil {
		return "", err
	}
	state := strings.TrimSpace(m[2])
	if state == "" {
		return "", metrics.Unavailable("pmset state")
	}
	return strings.ToUpper(state[:1]) + state[1:], nil
}

// Health returns the maximum capacity reported by system_profiler
func (p *Pmset) Health(ctx context.Context) (int, error) {
	out, err := p.exec.Execute(ctx, "system_profiler", "SPPowerDataType")
	if err != nil {
		return 0, err
	}
	m := maxCapacity.FindStringSubmatch(out)
	if m == nil {
		return 0, metrics.Unavailable("maximum capacity")
	}
	return strconv.Atoi(m[1])
}
