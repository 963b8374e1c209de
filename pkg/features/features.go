// Package features derives neural-network-ready tensors from a
// board.Board for a declared side to move: a stacked per-point feature
// tensor and a fixed-length scalar vector (SPEC_FULL.md §4.6).
package features

import "github.com/weiqilab/goengine/pkg/board"

const (
	// NumPlanes is the depth of the stacked feature tensor.
	NumPlanes = 18
	// NumScalars is the length of the scalar feature vector.
	NumScalars = 8

	// dim is the fixed padded grid dimension shared with pkg/board.
	dim = board.MaxSize + 2

	// historyDepth and passDepth bound how many recent moves feed the
	// history planes and the recent-pass scalars, respectively.
	historyDepth = 5
	passDepth    = 3

	// normalizer is the fixed scale applied to the komi/bonus and
	// captures scalars; callers must not rescale (§4.6).
	normalizer = 15
)

// Planes is the stacked feature tensor, indexed [row][col][plane], with
// row/col running over the full padded grid (board.MaxSize+2 per axis).
type Planes [][][NumPlanes]float32

// Scalars is the fixed-length scalar feature vector.
type Scalars [NumScalars]float32

// Extract derives the stacked feature planes and scalar vector for
// toPlay. It never mutates b: every on-board Empty point is probed with
// a read-only Legality call.
func Extract(b *board.Board, toPlay board.Color) (Planes, Scalars) {
	planes := newPlanes()

	anyKo := false
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			p := board.Point{X: col - 1, Y: row - 1}
			c := b.At(p)
			if c == board.OffBoard {
				continue
			}
			planes[row][col][3] = 1

			switch {
			case c == board.Empty:
				switch b.Legality(board.PlayAt(toPlay, p)) {
				case board.Legal:
					planes[row][col][0] = 1
				case board.Ko:
					planes[row][col][4] = 1
					anyKo = true
				}
			case c == toPlay:
				planes[row][col][1] = 1
				setLibertyBucket(planes, row, col, b.LibertyCount(p), 5)
			default:
				planes[row][col][2] = 1
				setLibertyBucket(planes, row, col, b.LibertyCount(p), 9)
			}
		}
	}

	history := b.History()
	for d := 0; d < historyDepth; d++ {
		idx := len(history) - 1 - d
		if idx < 0 {
			break
		}
		if m := history[idx]; !m.Pass {
			planes[m.Point.Y+1][m.Point.X+1][13+d] = 1
		}
	}

	return planes, extractScalars(b, toPlay, history, anyKo)
}

func newPlanes() Planes {
	planes := make(Planes, dim)
	for row := range planes {
		planes[row] = make([][NumPlanes]float32, dim)
	}
	return planes
}

// setLibertyBucket marks the one-hot liberty-count plane for a group
// with the given liberty count: buckets are 1, 2, 3, and "4 or more",
// at base, base+1, base+2, base+3 respectively (§4.6).
func setLibertyBucket(planes Planes, row, col, liberties, base int) {
	if liberties <= 0 {
		return
	}
	bucket := liberties
	if bucket > 4 {
		bucket = 4
	}
	planes[row][col][base+bucket-1] = 1
}

func extractScalars(b *board.Board, toPlay board.Color, history []board.Move, anyKo bool) Scalars {
	var s Scalars

	bonus := b.Komi()
	if b.Ruleset().PassBonus == board.PassBonus {
		switch b.FirstToPass() {
		case board.Black:
			bonus -= 0.5
		case board.White:
			bonus += 0.5
		}
	}
	if toPlay == board.White {
		s[0] = float32(bonus / normalizer)
	} else {
		s[0] = float32(-bonus / normalizer)
	}

	if anyKo {
		s[1] = 1
	}
	if b.Ruleset().Scoring == board.TerritoryScoring {
		s[2] = 1
	}

	net := float32(b.CapturesNet())
	if toPlay == board.White {
		s[3] = -net / normalizer
	} else {
		s[3] = net / normalizer
	}

	if area := b.Size().Area(); area > 0 {
		s[4] = float32(b.SetupCount()+len(history)) / float32(area)
	}

	for d := 0; d < passDepth; d++ {
		idx := len(history) - 1 - d
		if idx < 0 {
			break
		}
		if history[idx].Pass {
			s[5+d] = 1
		}
	}

	return s
}
