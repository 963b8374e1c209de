package board

import (
	"fmt"
	"strings"
)

// padding is the width, in cells, of the OffBoard sentinel ring around
// the playing rectangle (§9 design notes).
const padding = 1

// paddedDim is the fixed array dimension along each axis: the largest
// supported board plus a one-cell border on either side.
const paddedDim = MaxSize + 2*padding

// Board is the Go (the board game) position representation and rules
// engine: a padded grid of colors, a union-find group index with
// liberty tracking, the Zobrist key and its history, and move/capture
// bookkeeping (§3). Not thread-safe; callers that need concurrent
// access should guard it externally (see pkg/engine.Engine).
type Board struct {
	table *ZobristTable

	size     Size
	komi     float64
	ruleset  Ruleset
	handicap int

	cells [paddedDim][paddedDim]Color
	gi    *groupIndex

	history     []Move
	firstToPass Color
	capturesNet int
	setupCount  int

	key        ZobristKey
	keyHistory []ZobristKey
}

// Option configures a Board at construction time.
type Option func(*Board)

// WithZobristTable injects a pre-built table instead of the lazily
// constructed process-wide default, so that golden-hash tests stay
// reproducible across runs (§4.2).
func WithZobristTable(t *ZobristTable) Option {
	return func(b *Board) {
		b.table = t
	}
}

// NewBoard constructs a Board of the given size, komi, ruleset and
// handicap stone count, already reset and ready for setup/play.
func NewBoard(size Size, komi float64, ruleset Ruleset, handicap int, opts ...Option) (*Board, error) {
	b := &Board{table: DefaultZobristTable()}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.Reset(size, komi, ruleset, handicap); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset reinitializes every field of the Board (§3 Lifecycle). A
// malformed size is caller data, not a programmer bug, so it is
// reported via error rather than assertf (§7).
func (b *Board) Reset(size Size, komi float64, ruleset Ruleset, handicap int) error {
	if size.X < 1 || size.X > MaxSize || size.Y < 1 || size.Y > MaxSize {
		return fmt.Errorf("board: size %v outside supported range [1,%v]", size, MaxSize)
	}

	b.size = size
	b.komi = komi
	b.ruleset = ruleset
	b.handicap = handicap

	for x := 0; x < paddedDim; x++ {
		for y := 0; y < paddedDim; y++ {
			b.cells[x][y] = OffBoard
		}
	}
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			p := toPadded(Point{X: x, Y: y})
			b.cells[p.X][p.Y] = Empty
		}
	}

	b.gi = newGroupIndex()
	b.history = nil
	b.firstToPass = Empty
	b.capturesNet = 0
	b.setupCount = 0

	b.key = 0
	b.keyHistory = []ZobristKey{b.postMoveKey(0, Black)}

	return nil
}

// toPadded shifts a public, unpadded coordinate into the internal
// padded grid's coordinate space.
func toPadded(p Point) Point {
	return Point{X: p.X + padding, Y: p.Y + padding}
}

// fromPadded is the inverse of toPadded.
func fromPadded(p Point) Point {
	return Point{X: p.X - padding, Y: p.Y - padding}
}

func (b *Board) cellAt(p Point) Color {
	return b.cells[p.X][p.Y]
}

// zkey looks up the Zobrist table entry for a padded-grid point, which
// the table itself indexes in unpadded coordinates.
func (b *Board) zkey(p Point, c Color) ZobristKey {
	return b.table.Zkey(fromPadded(p), c)
}

// postMoveKey computes the key-history entry for a post-move stone key
// k, given the color about to move next (the ko rule determines whether
// the side-to-move bit is folded in; §4.4 step 5).
func (b *Board) postMoveKey(k ZobristKey, nextToMove Color) ZobristKey {
	if b.ruleset.Ko == PositionalSuperko {
		return k
	}
	return k ^ b.table.Side(nextToMove)
}

// ExpectedColor returns the color expected to move next: Black if no
// move has been played yet, else the opposite of the last move's color.
func (b *Board) ExpectedColor() Color {
	if len(b.history) == 0 {
		return Black
	}
	return b.history[len(b.history)-1].Color.Opposite()
}

// Size returns the playing rectangle's dimensions.
func (b *Board) Size() Size {
	return b.size
}

// Komi returns the komi compensation configured at construction.
func (b *Board) Komi() float64 {
	return b.komi
}

// Ruleset returns the ruleset configured at construction.
func (b *Board) Ruleset() Ruleset {
	return b.ruleset
}

// Handicap returns the handicap stone count configured at construction.
// The core does not place handicap stones itself: the caller places
// them via Setup, same as any other pre-game stone.
func (b *Board) Handicap() int {
	return b.handicap
}

// At returns the color occupying the given on-board point.
func (b *Board) At(p Point) Color {
	return b.cellAt(toPadded(p))
}

// History returns the move sequence played so far, passes included. The
// returned slice must not be mutated by the caller.
func (b *Board) History() []Move {
	return b.history
}

// FirstToPass returns the color of whichever side passed first, or
// Empty if neither side has passed yet.
func (b *Board) FirstToPass() Color {
	return b.firstToPass
}

// CapturesNet returns (White stones captured by Black) minus (Black
// stones captured by White): positive favors Black.
func (b *Board) CapturesNet() int {
	return b.capturesNet
}

// SetupCount returns the number of live setup stones currently on the
// board (handicap stones plus any placed via Setup, minus any erased).
func (b *Board) SetupCount() int {
	return b.setupCount
}

// Key returns the current Zobrist key of the stones on the board.
func (b *Board) Key() ZobristKey {
	return b.key
}

// KeyHistory returns the append-only sequence of post-move keys used by
// the ko check. The returned slice must not be mutated by the caller.
func (b *Board) KeyHistory() []ZobristKey {
	return b.keyHistory
}

// LibertyCount returns the number of liberties of the group occupying
// p, or 0 if p does not hold a stone.
func (b *Board) LibertyCount(p Point) int {
	c := b.At(p)
	if c != Black && c != White {
		return 0
	}
	return b.gi.libertyCount(toPadded(p))
}

// GroupSize returns the number of stones in the group occupying p, or 0
// if p does not hold a stone.
func (b *Board) GroupSize(p Point) int {
	c := b.At(p)
	if c != Black && c != White {
		return 0
	}
	return b.gi.size(toPadded(p))
}

// Setup places or erases a stone without legality or ko accounting
// (§4.5). Misuse — placing onto an occupied point, or placing a stone
// that would have zero liberties — asserts and aborts (§7.1).
func (b *Board) Setup(m Move) {
	assertf(!m.Pass, "setup: pass has no meaning for setup")

	p := toPadded(m.Point)
	prev := b.cellAt(p)

	if m.Color == Empty {
		if prev != Black && prev != White {
			return
		}
		assertf(b.gi.size(p) == 1, "setup: erasing %v out of a %v-stone group is not supported", m.Point, b.gi.size(p))

		b.setupCount--
		b.key ^= b.zkey(p, prev)
		b.cells[p.X][p.Y] = Empty
		for _, off := range neighborOffsets {
			n := Point{X: p.X + off.X, Y: p.Y + off.Y}
			if nc := b.cellAt(n); nc == Black || nc == White {
				b.gi.addLiberty(n, p)
			}
		}
		b.gi.clear(p)
		return
	}

	assertf(prev == Empty, "setup: point %v is not empty", m.Point)

	c := m.Color
	b.setupCount++
	b.cells[p.X][p.Y] = c
	b.key ^= b.zkey(p, c)
	b.gi.newSingleton(p)

	for _, off := range neighborOffsets {
		n := Point{X: p.X + off.X, Y: p.Y + off.Y}
		switch b.cellAt(n) {
		case Empty:
			b.gi.addLiberty(p, n)
		case c:
			b.gi.removeLiberty(n, p)
			b.gi.unite(p, n)
		case c.Opposite():
			b.gi.removeLiberty(n, p)
		}
	}

	assertf(b.gi.libertyCount(p) != 0, "setup: placing %v at %v leaves it with zero liberties", c, m.Point)
}

// Play mutates the Board by playing m, which must be Legal for the
// color expected to move next (§7.1: a non-Legal move is a programmer
// error, so Play asserts and aborts rather than returning an error).
func (b *Board) Play(m Move) {
	v := b.Legality(m)
	assertf(v == Legal, "play: %v is not legal (verdict %v)", m, v)

	if m.Pass {
		if b.ruleset.PassBonus == PassBonus && b.firstToPass == Empty {
			// The button is consumed: clear every ko-forbidden state that
			// predates it, then re-seed history with the current position
			// so it alone anchors the post-button superko/ko scan (§9
			// Open Questions: append after clearing, not before).
			b.keyHistory = append(b.keyHistory[:0], b.postMoveKey(b.key, m.Color.Opposite()))
		}
		if b.firstToPass == Empty {
			b.firstToPass = m.Color
		}
		b.history = append(b.history, m)
		return
	}

	p := toPadded(m.Point)
	c := m.Color
	opp := c.Opposite()

	b.cells[p.X][p.Y] = c
	b.key ^= b.zkey(p, c)
	b.gi.newSingleton(p)

	captureRoots := make(map[Point]struct{})

	for _, off := range neighborOffsets {
		n := Point{X: p.X + off.X, Y: p.Y + off.Y}
		switch b.cellAt(n) {
		case Empty:
			b.gi.addLiberty(p, n)
		case c:
			b.gi.removeLiberty(n, p)
			b.gi.unite(p, n)
		case opp:
			b.gi.removeLiberty(n, p)
			if b.gi.libertyCount(n) == 0 {
				captureRoots[b.gi.find(n)] = struct{}{}
			}
		}
	}

	if len(captureRoots) == 0 && b.gi.libertyCount(p) == 0 {
		captureRoots[b.gi.find(p)] = struct{}{}
	}

	for r := range captureRoots {
		removedColor := b.cellAt(r)

		members := make([]Point, 0, b.gi.size(r))
		for s := range b.gi.members(r) {
			members = append(members, s)
		}

		if removedColor == White {
			b.capturesNet += len(members)
		} else {
			b.capturesNet -= len(members)
		}

		for _, s := range members {
			b.cells[s.X][s.Y] = Empty
			b.key ^= b.zkey(s, removedColor)
			for _, off := range neighborOffsets {
				n := Point{X: s.X + off.X, Y: s.Y + off.Y}
				if b.cellAt(n) == removedColor.Opposite() {
					b.gi.addLiberty(n, s)
				}
			}
		}
		b.gi.dissolve(r)
	}

	b.keyHistory = append(b.keyHistory, b.postMoveKey(b.key, opp))
	b.history = append(b.history, m)
}

// Clone returns a deep copy that shares no mutable state with b.
func (b *Board) Clone() *Board {
	clone := *b
	clone.gi = b.gi.clone()
	clone.history = append([]Move(nil), b.history...)
	clone.keyHistory = append([]ZobristKey(nil), b.keyHistory...)
	return &clone
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.size.Y; y++ {
		for x := 0; x < b.size.X; x++ {
			sb.WriteString(b.At(Point{X: x, Y: y}).String())
		}
		if y < b.size.Y-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
