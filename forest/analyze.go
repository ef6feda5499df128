package forest

import (
	"github.com/forestview/aoc"
	"golang.org/x/sync/errgroup"
)

// Analyzer runs the whole-grid computations. Rows are independent, so
// with Workers > 1 they are spread over that many goroutines. Results do
// not depend on Workers.
type Analyzer struct {
	Workers int
}

// Spot is a tree and its view.
type Spot struct {
	Pt        aoc.Pt
	Distances Distances
	Score     int
}

// mapRows calls fn for each row in [lo, hi) and returns the results in
// row order.
func mapRows[T any](workers, lo, hi int, fn func(y int) T) []T {
	out := make([]T, max(hi-lo, 0))
	if workers <= 1 {
		for y := lo; y < hi; y++ {
			out[y-lo] = fn(y)
		}
		return out
	}
	var eg errgroup.Group
	eg.SetLimit(workers)
	for y := lo; y < hi; y++ {
		eg.Go(func() error {
			out[y-lo] = fn(y)
			return nil
		})
	}
	eg.Wait()
	return out
}

// CountVisible returns how many trees are visible from outside the grid.
// A grid narrower than 2 in either dimension is all border.
func (a Analyzer) CountVisible(g *Grid) int {
	if g.rows < 2 || g.cols < 2 {
		return g.rows * g.cols
	}
	n := 2*g.rows + 2*g.cols - 4
	counts := mapRows(a.Workers, 1, g.rows-1, func(y int) int {
		c := 0
		for x := 1; x < g.cols-1; x++ {
			if Visible(g, aoc.Pt{X: x, Y: y}) {
				c++
			}
		}
		return c
	})
	for _, c := range counts {
		n += c
	}
	return n
}

// BestSpot returns the interior tree with the highest scenic score. Ties go
// to the first in row-major order. It returns ErrEmptyGrid if the grid has
// no interior trees.
func (a Analyzer) BestSpot(g *Grid) (Spot, error) {
	if g.rows < 3 || g.cols < 3 {
		return Spot{}, ErrEmptyGrid
	}
	rowBest := mapRows(a.Workers, 1, g.rows-1, func(y int) Spot {
		var best Spot
		for x := 1; x < g.cols-1; x++ {
			p := aoc.Pt{X: x, Y: y}
			ds := ViewingDistances(g, p)
			if s := ds.Score(); x == 1 || s > best.Score {
				best = Spot{Pt: p, Distances: ds, Score: s}
			}
		}
		return best
	})
	best := rowBest[0]
	for _, s := range rowBest[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best, nil
}

// ScenicScore returns the highest scenic score of any interior tree.
func (a Analyzer) ScenicScore(g *Grid) (int, error) {
	s, err := a.BestSpot(g)
	if err != nil {
		return 0, err
	}
	return s.Score, nil
}

// CountVisible is Analyzer{}.CountVisible.
func CountVisible(g *Grid) int { return Analyzer{}.CountVisible(g) }

// ScenicScore is Analyzer{}.ScenicScore.
func ScenicScore(g *Grid) (int, error) { return Analyzer{}.ScenicScore(g) }

// BestSpot is Analyzer{}.BestSpot.
func BestSpot(g *Grid) (Spot, error) { return Analyzer{}.BestSpot(g) }
