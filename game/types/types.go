package types

import "fmt"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is one cell of the grid: X is the column, Y the row.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Color is an RGBA colour handed to the frontends.
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Wrap returns the Euclidean remainder of n modulo m, so the result is
// always in [0, m). m must be positive.
func Wrap(n, m int) int {
	n %= m
	if n < 0 {
		n += m
	}
	return n
}

// WrapPoint maps p back onto the torus, each axis independently.
func (g Grid) WrapPoint(p Point) Point {
	return Point{X: Wrap(p.X, g.Width), Y: Wrap(p.Y, g.Height)}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells is the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}
