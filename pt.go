package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Pt2 is a point on a grid. Y grows downward, so North is row-1.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt = Pt2[int]

func (p Pt2[T]) String() string { return fmt.Sprintf("(%v,%v)", p.X, p.Y) }

func (p Pt2[T]) North() Pt2[T] { return Pt2[T]{p.X, p.Y - 1} }
func (p Pt2[T]) South() Pt2[T] { return Pt2[T]{p.X, p.Y + 1} }
func (p Pt2[T]) West() Pt2[T]  { return Pt2[T]{p.X - 1, p.Y} }
func (p Pt2[T]) East() Pt2[T]  { return Pt2[T]{p.X + 1, p.Y} }

// Transpose swaps X and Y.
func (p Pt2[T]) Transpose() Pt2[T] { return Pt2[T]{p.Y, p.X} }
