// Command aoc2022 runs the 2022 puzzle solvers.
package main

import (
	_ "embed"

	"github.com/forestview/aoc"
	"github.com/forestview/aoc/forest"
	"github.com/sirupsen/logrus"
)

//go:embed main.go
var src []byte

func main() {
	aoc.ExtractSamples(src)
	aoc.Add(
		day8,
		day8b,
	)
	aoc.Main()
}

// day8 counts the trees visible from outside the forest.
/*
want=21

30373
25512
65332
33549
35390
*/
func day8(p *aoc.Puzzle) (any, error) {
	g, err := forest.Parse(string(p.Input))
	if err != nil {
		return nil, err
	}
	p.Log.WithFields(logrus.Fields{"rows": g.Rows(), "cols": g.Cols()}).Debug("parsed forest")
	return forest.Analyzer{Workers: p.Workers}.CountVisible(g), nil
}

// day8b finds the best tree house spot.
// want=8
func day8b(p *aoc.Puzzle) (any, error) {
	g, err := forest.Parse(string(p.Input))
	if err != nil {
		return nil, err
	}
	best, err := forest.Analyzer{Workers: p.Workers}.BestSpot(g)
	if err != nil {
		return nil, err
	}
	p.Log.WithFields(logrus.Fields{"at": best.Pt, "distances": best.Distances}).Debug("best spot")
	return best.Score, nil
}
