package board

import "fmt"

// Move represents a stone placement or a pass, along with the color to
// play it. A pass carries no coordinate.
type Move struct {
	Color Color
	Point Point
	Pass  bool
}

// PlayAt constructs a non-pass move.
func PlayAt(c Color, p Point) Move {
	return Move{Color: c, Point: p}
}

// PassMove constructs a pass for the given color.
func PassMove(c Color) Move {
	return Move{Color: c, Pass: true}
}

// Equals reports move equality: passes of equal color are equal
// regardless of coordinate; non-passes compare coordinate.
func (m Move) Equals(o Move) bool {
	if m.Color != o.Color || m.Pass != o.Pass {
		return false
	}
	if m.Pass {
		return true
	}
	return m.Point.Equals(o.Point)
}

func (m Move) String() string {
	if m.Pass {
		return fmt.Sprintf("%v pass", m.Color)
	}
	return fmt.Sprintf("%v %v", m.Color, m.Point)
}

// Verdict is the outcome of a legality query (§4.3).
type Verdict uint8

const (
	Legal Verdict = iota
	NonEmpty
	Suicidal
	Ko
)

func (v Verdict) String() string {
	switch v {
	case Legal:
		return "Legal"
	case NonEmpty:
		return "NonEmpty"
	case Suicidal:
		return "Suicidal"
	case Ko:
		return "Ko"
	default:
		return "?"
	}
}
