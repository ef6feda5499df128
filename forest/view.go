package forest

import "github.com/forestview/aoc"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction, in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

var steps = [...]func(aoc.Pt) aoc.Pt{
	Up:    aoc.Pt.North,
	Down:  aoc.Pt.South,
	Left:  aoc.Pt.West,
	Right: aoc.Pt.East,
}

func (d Direction) Step(p aoc.Pt) aoc.Pt { return steps[d](p) }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "Direction(?)"
}

// scan walks outward from p in direction d, calling keepGoing with the
// height of each cell it passes. It stops at the edge or after the first
// cell for which keepGoing returns false. n counts every cell visited,
// including that last one; blocked reports whether the walk stopped
// before the edge.
func (g *Grid) scan(p aoc.Pt, d Direction, keepGoing func(h int) bool) (n int, blocked bool) {
	for q := d.Step(p); g.InBounds(q); q = d.Step(q) {
		n++
		if !keepGoing(g.At(q)) {
			return n, true
		}
	}
	return n, false
}

func shorterThan(h int) func(int) bool {
	return func(v int) bool { return v < h }
}

// Visible reports whether the tree at p can be seen from outside the
// grid: it is on the border, or every tree between it and some edge is
// shorter.
func Visible(g *Grid, p aoc.Pt) bool {
	if g.IsBorder(p) {
		return true
	}
	lower := shorterThan(g.At(p))
	for _, d := range Directions {
		if _, blocked := g.scan(p, d, lower); !blocked {
			return true
		}
	}
	return false
}

// Distances holds a viewing distance per Direction.
type Distances [len(Directions)]int

// Score is the product of the four distances.
func (ds Distances) Score() int {
	s := 1
	for _, n := range ds {
		s *= n
	}
	return s
}

// ViewingDistances returns, for each direction, how many trees can be
// seen from p: up to and including the first one at least as tall, or up
// to the edge. Border trees have a zero distance toward their edge.
func ViewingDistances(g *Grid, p aoc.Pt) Distances {
	var ds Distances
	lower := shorterThan(g.At(p))
	for _, d := range Directions {
		ds[d], _ = g.scan(p, d, lower)
	}
	return ds
}
