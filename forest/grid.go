// Package forest finds which trees in a rectangular grid of heights can be
// seen from outside the grid, and which tree has the best view.
package forest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/forestview/aoc"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEmptyGrid      = errors.New("empty grid")
)

// MalformedInputError reports where Parse rejected its input. Line and Col
// are 1-based; Col is 0 when the whole line is at fault.
type MalformedInputError struct {
	Line, Col int
	Reason    string
}

func (e *MalformedInputError) Error() string {
	if e.Col == 0 {
		return fmt.Sprintf("forest: malformed input at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("forest: malformed input at line %d, col %d: %s", e.Line, e.Col, e.Reason)
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

// Grid is an immutable rows x cols grid of tree heights 0-9.
// Points are (X: col, Y: row) with the origin at the top left.
type Grid struct {
	rows, cols int
	h          []uint8 // row-major
}

// Parse reads one row per line, one digit per column. Trailing newlines
// and CRLF line endings are accepted.
func Parse(text string) (*Grid, error) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	g := &Grid{rows: len(lines)}
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if y == 0 {
			g.cols = len(line)
			g.h = make([]uint8, 0, g.rows*g.cols)
		}
		for x := 0; x < len(line); x++ {
			v, ok := aoc.DigVal(line[x])
			if !ok {
				return nil, &MalformedInputError{Line: y + 1, Col: x + 1, Reason: fmt.Sprintf("%q is not a digit", line[x])}
			}
			g.h = append(g.h, uint8(v))
		}
		if len(line) != g.cols {
			return nil, &MalformedInputError{Line: y + 1, Reason: fmt.Sprintf("row has %d cells; want %d", len(line), g.cols)}
		}
	}
	return g, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// At returns the height at p. It panics if p is out of bounds.
func (g *Grid) At(p aoc.Pt) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("forest: %v out of bounds", p))
	}
	return int(g.h[p.Y*g.cols+p.X])
}

func (g *Grid) InBounds(p aoc.Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.cols && p.Y < g.rows
}

// IsBorder reports whether p is on the outer edge of the grid.
func (g *Grid) IsBorder(p aoc.Pt) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.cols-1 || p.Y == g.rows-1
}

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid) Transpose() *Grid {
	t := &Grid{rows: g.cols, cols: g.rows, h: make([]uint8, len(g.h))}
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			t.h[x*t.cols+y] = g.h[y*g.cols+x]
		}
	}
	return t
}

// Draw writes g in the same format Parse reads.
func (g *Grid) Draw(w io.Writer) error {
	row := make([]byte, g.cols+1)
	row[g.cols] = '\n'
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			row[x] = '0' + g.h[y*g.cols+x]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) String() string {
	var sb strings.Builder
	g.Draw(&sb)
	return sb.String()
}
