// Package layout places the logo and the fact lines side by side.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/monify-labs/sysfetch/internal/render"
)

// State is the compositor state for one output line
type State int

const (
	Offset         State = iota // Logo rows above the first fact
	Paired                      // Logo row and fact line together
	LogoExhausted               // Fact lines below the logo
	FactsExhausted              // Logo rows below the last fact
	Done
)

func (s State) String() string {
	switch s {
	case Offset:
		return "offset"
	case Paired:
		return "paired"
	case LogoExhausted:
		return "logo-exhausted"
	case FactsExhausted:
		return "facts-exhausted"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Line is one composed output line
type Line struct {
	Index   int
	State   State
	Logo    render.Cell
	Info    render.Cell
	HasLogo bool // false below the logo, where Logo is blank padding
	HasInfo bool
}

// Plan is the full composition, ready to be written to a sink
type Plan struct {
	Width  int // Visible width of the widest logo row
	Column int // Column the fact lines start at
	Offset int // Effective offset after clamping
	Lines  []Line
}

// Compose interleaves logo rows with fact lines. Facts start offset rows
// down, clamped to the logo height, and the plan has max(L, offset+F) lines.
func Compose(logo []string, info []render.Cell, offset, gap int) Plan {
	offset = min(max(offset, 0), len(logo))
	gap = max(gap, 0)

	width := 0
	for _, row := range logo {
		width = max(width, render.VisibleWidth(row))
	}

	plan := Plan{Width: width, Column: width + gap, Offset: offset}
	c := cursor{logoRows: len(logo), facts: len(info), offset: offset}

	for state := c.state(); state != Done; state = c.advance() {
		line := Line{Index: c.index, State: state}
		if state == LogoExhausted {
			line.Logo = render.Cell{Text: strings.Repeat(" ", width), Kind: render.KindLogo}
		} else {
			line.Logo = render.Cell{Text: pad(logo[c.index], width), Kind: render.KindLogo}
			line.HasLogo = true
		}
		if state == Paired || state == LogoExhausted {
			line.Info = info[c.index-offset]
			line.HasInfo = true
		}
		plan.Lines = append(plan.Lines, line)
	}
	return plan
}

// cursor walks the output one line at a time
type cursor struct {
	index    int
	logoRows int
	facts    int
	offset   int
}

func (c *cursor) advance() State {
	c.index++
	return c.state()
}

func (c *cursor) state() State {
	hasLogo := c.index < c.logoRows
	fact := c.index - c.offset
	hasFact := fact >= 0 && fact < c.facts

	switch {
	case hasLogo && c.index < c.offset:
		return Offset
	case hasLogo && hasFact:
		return Paired
	case hasLogo:
		return FactsExhausted
	case hasFact:
		return LogoExhausted
	default:
		return Done
	}
}

func pad(s string, width int) string {
	if w := render.VisibleWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// Render writes the plan to sink and flushes it. A failed cell does not
// stop the remaining cells from being written.
func Render(plan Plan, sink render.Sink) error {
	var errs []error
	for _, line := range plan.Lines {
		if line.Logo.Text != "" {
			if err := sink.Write(render.Position{Row: line.Index, Col: 0}, line.Logo); err != nil {
				errs = append(errs, err)
			}
		}
		if line.HasInfo {
			if err := sink.Write(render.Position{Row: line.Index, Col: plan.Column}, line.Info); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := sink.Flush(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
