package resolve

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysfetch/internal/format"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// Resolver turns categories into display lines using a provider table
type Resolver struct {
	table        *Table
	log          logrus.FieldLogger
	reserveEmpty bool
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger provider failures are reported to
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// WithReserveEmpty makes a multi-line category with no items render its
// sentinel line instead of nothing
func WithReserveEmpty(reserve bool) Option {
	return func(r *Resolver) {
		r.reserveEmpty = reserve
	}
}

// New creates a resolver over table
func New(table *Table, opts ...Option) *Resolver {
	r := &Resolver{
		table: table,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve resolves a single category
func (r *Resolver) Resolve(ctx context.Context, cat models.Category) models.ResolvedFact {
	return r.newPass().resolve(ctx, cat)
}

// ResolveAll resolves categories in the given order within one pass, so
// facts shared between categories are looked up once
func (r *Resolver) ResolveAll(ctx context.Context, cats []models.Category) []models.ResolvedFact {
	p := r.newPass()
	facts := make([]models.ResolvedFact, 0, len(cats))
	for _, cat := range cats {
		facts = append(facts, p.resolve(ctx, cat))
	}
	return facts
}

// pass holds what is memoized for the duration of one render
type pass struct {
	*Resolver
	identity     string
	identityOK   bool
	identityDone bool
}

func (r *Resolver) newPass() *pass {
	return &pass{Resolver: r}
}

func (p *pass) identityLine(ctx context.Context) (string, bool) {
	if !p.identityDone {
		id := models.Identity{
			User: first(ctx, p.log, models.User, p.table.User),
			Host: first(ctx, p.log, models.Partition, p.table.Host),
		}
		p.identity, p.identityOK = format.Identity(id)
		p.identityDone = true
	}
	return p.identity, p.identityOK
}

func (p *pass) resolve(ctx context.Context, cat models.Category) models.ResolvedFact {
	lines, known := p.lines(ctx, cat)
	if !known {
		lines = []string{format.SentinelLine(cat)}
	}
	return models.ResolvedFact{Category: cat, Lines: lines, Known: known}
}

func (p *pass) lines(ctx context.Context, cat models.Category) ([]string, bool) {
	t := p.table
	switch cat {
	case models.User:
		line, ok := p.identityLine(ctx)
		return []string{line}, ok

	case models.Partition:
		line, ok := p.identityLine(ctx)
		return []string{format.Partition(line)}, ok

	case models.Os:
		return p.text(ctx, cat, t.OS)

	case models.ComputerName:
		return p.text(ctx, cat, t.Model)

	case models.KernelVersion:
		return p.text(ctx, cat, t.Kernel)

	case models.Uptime:
		return single(cat, first(ctx, p.log, cat, t.Uptime), format.Uptime)

	case models.Resolution:
		v := first(ctx, p.log, cat, t.Displays)
		if modes, ok := v.Get(); ok && len(modes) == 0 {
			return nil, false
		}
		return single(cat, v, joinList)

	case models.Packages:
		v := first(ctx, p.log, cat, t.Packages)
		if counts, ok := v.Get(); ok && len(counts) == 0 {
			return nil, false
		}
		return single(cat, v, format.Packages)

	case models.Theme:
		return p.text(ctx, cat, t.Theme)

	case models.CpuName:
		cpu := models.CPU{
			Brand: first(ctx, p.log, cat, t.CPUBrand),
			Count: first(ctx, p.log, cat, t.CPUCount),
			MHz:   first(ctx, p.log, cat, t.CPUFreq),
		}
		s, ok := format.CPU(cpu)
		return []string{format.Line(cat, s)}, ok

	case models.GpuInfo:
		gpus, ok := first(ctx, p.log, cat, t.GPUs).Get()
		if !ok {
			return nil, false
		}
		lines := make([]string, 0, len(gpus))
		for _, g := range gpus {
			lines = append(lines, format.Line(cat, g.Name))
		}
		return p.items(cat, lines), true

	case models.Processes:
		return single(cat, first(ctx, p.log, cat, t.Processes), strconv.Itoa)

	case models.Ram:
		return single(cat, first(ctx, p.log, cat, t.Memory), format.Usage)

	case models.Swap:
		return single(cat, first(ctx, p.log, cat, t.Swap), format.Usage)

	case models.DiskInfo:
		disks, ok := first(ctx, p.log, cat, t.Disks).Get()
		if !ok {
			return nil, false
		}
		lines := make([]string, 0, len(disks))
		for _, d := range disks {
			lines = append(lines, format.Disk(d))
		}
		return p.items(cat, lines), true

	case models.Battery:
		return format.Battery(models.BatteryInfo{
			Percentage: first(ctx, p.log, cat, t.BatteryPercentage),
			State:      first(ctx, p.log, cat, t.BatteryState),
			Health:     first(ctx, p.log, cat, t.BatteryHealth),
		})

	case models.Locale:
		return p.text(ctx, cat, t.Locale)

	case models.LocalIp:
		v := first(ctx, p.log, cat, t.LocalIP)
		if addrs, ok := v.Get(); ok && len(addrs) == 0 {
			return nil, false
		}
		return single(cat, v, joinList)

	case models.Location:
		return single(cat, first(ctx, p.log, cat, t.Location), format.Location)

	default:
		p.log.WithField("category", cat.Key()).Warn("No providers for category")
		return nil, false
	}
}

// text resolves a plain string fact; blank answers count as unknown
func (p *pass) text(ctx context.Context, cat models.Category, providers []Provider[string]) ([]string, bool) {
	s, ok := first(ctx, p.log, cat, providers).Get()
	s = strings.TrimSpace(s)
	if !ok || s == "" {
		return nil, false
	}
	return []string{format.Line(cat, s)}, true
}

// items applies the empty-collection policy of multi-line categories
func (p *pass) items(cat models.Category, lines []string) []string {
	if len(lines) == 0 && p.reserveEmpty {
		return []string{format.SentinelLine(cat)}
	}
	return lines
}

func single[T any](cat models.Category, v models.Value[T], render func(T) string) ([]string, bool) {
	raw, ok := v.Get()
	if !ok {
		return nil, false
	}
	return []string{format.Line(cat, render(raw))}, true
}

func joinList(parts []string) string {
	return strings.Join(parts, ", ")
}
