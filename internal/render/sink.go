// Package render writes composed output to the terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

// Kind tells the sink how to style a cell
type Kind int

const (
	KindPlain   Kind = iota
	KindLogo         // Logo row
	KindHeading      // Identity line and its partition
	KindFact         // "Label: value" line
)

// Position is a zero-based row and column on screen
type Position struct {
	Row int
	Col int
}

// Cell is a piece of text placed at a position
type Cell struct {
	Text string
	Kind Kind
}

// Sink receives cells and makes them visible
type Sink interface {
	Write(pos Position, cell Cell) error
	Flush() error
}

var (
	logoStyle    = pterm.NewStyle(pterm.FgCyan)
	headingStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	labelStyle   = pterm.NewStyle(pterm.FgBlue, pterm.Bold)
)

type placed struct {
	col  int
	cell Cell
}

// TerminalSink buffers cells row by row and writes whole lines on Flush
type TerminalSink struct {
	out   io.Writer
	color bool
	log   logrus.FieldLogger
	rows  map[int][]placed
}

// NewTerminalSink creates a sink writing to out
func NewTerminalSink(out io.Writer, color bool, log logrus.FieldLogger) *TerminalSink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &TerminalSink{
		out:   out,
		color: color,
		log:   log,
		rows:  make(map[int][]placed),
	}
}

// Write buffers a cell; nothing reaches the writer until Flush
func (s *TerminalSink) Write(pos Position, cell Cell) error {
	if pos.Row < 0 || pos.Col < 0 {
		return fmt.Errorf("invalid position %d:%d", pos.Row, pos.Col)
	}
	s.rows[pos.Row] = append(s.rows[pos.Row], placed{col: pos.Col, cell: cell})
	return nil
}

// Flush writes every buffered row in order. A failed row is logged and
// the remaining rows are still written; all failures are returned joined.
func (s *TerminalSink) Flush() error {
	last := -1
	for row := range s.rows {
		if row > last {
			last = row
		}
	}

	var errs []error
	for row := 0; row <= last; row++ {
		line := s.line(s.rows[row])
		if _, err := io.WriteString(s.out, line+"\n"); err != nil {
			s.log.WithError(err).WithField("row", row).Warn("Failed to write output row")
			errs = append(errs, fmt.Errorf("row %d: %w", row, err))
		}
	}

	s.rows = make(map[int][]placed)
	return errors.Join(errs...)
}

// line lays out the cells of one row, padding to each column by visible width
func (s *TerminalSink) line(cells []placed) string {
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].col < cells[j].col })

	var b strings.Builder
	width := 0
	for _, c := range cells {
		if c.col > width {
			b.WriteString(strings.Repeat(" ", c.col-width))
			width = c.col
		}
		b.WriteString(s.style(c.cell))
		width += VisibleWidth(c.cell.Text)
	}
	return strings.TrimRight(b.String(), " ")
}

func (s *TerminalSink) style(c Cell) string {
	if !s.color || strings.TrimSpace(c.Text) == "" {
		return c.Text
	}
	switch c.Kind {
	case KindLogo:
		return logoStyle.Sprint(c.Text)
	case KindHeading:
		return headingStyle.Sprint(c.Text)
	case KindFact:
		label, value, ok := strings.Cut(c.Text, ": ")
		if !ok {
			return c.Text
		}
		return labelStyle.Sprint(label+":") + " " + value
	default:
		return c.Text
	}
}

// VisibleWidth is the number of terminal columns s occupies, ignoring color codes
func VisibleWidth(s string) int {
	return runewidth.StringWidth(pterm.RemoveColorFromString(s))
}
