package board

import "fmt"

// MaxSize is the largest board dimension supported along either axis
// (§3). It sizes the Zobrist table and the padded internal grid.
const MaxSize = 19

// Point is a board coordinate in the public, unpadded coordinate space:
// origin top-left, X increasing rightward, Y increasing downward. It is
// the interface-level coordinate (§6 of the spec); the padded internal
// grid is never exposed.
type Point struct {
	X, Y int
}

// Equals reports whether two points denote the same coordinate.
func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Size is a board dimension, columns by rows.
type Size struct {
	X, Y int
}

func (s Size) String() string {
	return fmt.Sprintf("%vx%v", s.X, s.Y)
}

// Area returns the number of intersections on a board of this size.
func (s Size) Area() int {
	return s.X * s.Y
}

// west, east, north, south enumerate the four orthogonal neighbour
// offsets in the fixed visitation order used throughout the rules
// evaluator, Setup and Play, so that all three visit neighbours in the
// same order. Group rosters and liberty sets are Go maps, so their own
// iteration order is not fixed; String() reads the cell grid and does
// not depend on either.
var neighborOffsets = [4]Point{
	{X: -1, Y: 0}, // west
	{X: 1, Y: 0},  // east
	{X: 0, Y: -1}, // north
	{X: 0, Y: 1},  // south
}
