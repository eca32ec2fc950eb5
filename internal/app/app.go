// Package app wires configuration, resolution, layout and rendering into
// a single render pass.
package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/monify-labs/sysfetch/internal/ascii"
	"github.com/monify-labs/sysfetch/internal/config"
	"github.com/monify-labs/sysfetch/internal/layout"
	"github.com/monify-labs/sysfetch/internal/render"
	"github.com/monify-labs/sysfetch/internal/resolve"
	"github.com/monify-labs/sysfetch/pkg/models"
)

// App renders the system summary once
type App struct {
	cfg      *config.Config
	logo     ascii.Logo
	resolver *resolve.Resolver
	out      *countingWriter
	log      logrus.FieldLogger
}

// New creates an app rendering cfg with the providers of table to out
func New(cfg *config.Config, table *resolve.Table, out io.Writer, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		cfg:  cfg,
		logo: ascii.Get(cfg.ImageName),
		resolver: resolve.New(table,
			resolve.WithLogger(log),
			resolve.WithReserveEmpty(cfg.ReserveEmpty),
		),
		out: &countingWriter{w: out},
		log: log,
	}
}

// LoadConfig reads the configuration at path. A missing file silently
// yields the default; any other failure yields the default with a warning.
func LoadConfig(path string, log logrus.FieldLogger) *config.Config {
	cfg, err := config.Load(path)
	switch {
	case err == nil:
		for _, w := range cfg.Warnings {
			log.WithField("path", path).Warn(w.String())
		}
		return cfg
	case errors.Is(err, fs.ErrNotExist):
		log.WithField("path", path).Debug("No config file, using defaults")
	default:
		log.WithError(err).Warn("Failed to load config, using defaults")
	}
	return config.Default()
}

// Run resolves every enabled category and writes the composed output
func (a *App) Run(ctx context.Context) error {
	start := time.Now()

	cats := a.cfg.ActiveCategories()
	if !ascii.Known(a.cfg.ImageName) {
		a.log.WithField("image_name", a.cfg.ImageName).Warn("Unknown logo, using default")
	}
	if a.cfg.InfoOffset > a.logo.Height() {
		a.log.WithFields(logrus.Fields{
			"info_offset": a.cfg.InfoOffset,
			"logo_height": a.logo.Height(),
		}).Debug("Offset clamped to logo height")
	}

	facts := a.resolver.ResolveAll(ctx, cats)
	cells := Cells(facts)

	a.log.WithFields(logrus.Fields{
		"categories": len(cats),
		"lines":      len(cells),
		"elapsed":    time.Since(start).Round(time.Millisecond),
	}).Debug("Resolved facts")

	plan := layout.Compose(a.logo.Rows, cells, a.cfg.InfoOffset, a.cfg.Gap)
	sink := render.NewTerminalSink(a.out, a.cfg.Color, a.log)
	err := layout.Render(plan, sink)

	a.log.WithFields(logrus.Fields{
		"logo":   a.logo.Name,
		"lines":  len(plan.Lines),
		"output": humanize.Bytes(a.out.n),
	}).Debug("Rendered summary")

	return err
}

// Cells turns resolved facts into styled info cells in order
func Cells(facts []models.ResolvedFact) []render.Cell {
	var cells []render.Cell
	for _, f := range facts {
		kind := render.KindFact
		if f.Category == models.User || f.Category == models.Partition {
			kind = render.KindHeading
		}
		for _, line := range f.Lines {
			cells = append(cells, render.Cell{Text: line, Kind: kind})
		}
	}
	return cells
}

// countingWriter tracks how much output was written
type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}
