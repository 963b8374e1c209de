package board

import (
	"math/rand"
	"sync"
	"time"
)

// ZobristKey is a 64-bit position hash, maintained incrementally by
// XORing a per-(point, color) random value as stones are placed and
// removed (§4.2).
type ZobristKey uint64

// ZobristTable is a pseudo-randomized, process-wide table for computing
// a Zobrist key. It is immutable after construction.
type ZobristTable struct {
	stones [MaxSize][MaxSize][2]ZobristKey // [x][y][Black=0,White=1]
	side   [2]ZobristKey                   // [Black=0,White=1]
}

// NewZobristTable builds a table from the given seed. Two tables built
// from the same seed are bitwise identical, which is what makes
// golden-hash tests reproducible; callers that need determinism
// construct their own table and inject it at Board construction instead
// of relying on the process-wide default (DefaultZobristTable).
func NewZobristTable(seed int64) *ZobristTable {
	r := rand.New(rand.NewSource(seed))

	t := &ZobristTable{}
	for x := 0; x < MaxSize; x++ {
		for y := 0; y < MaxSize; y++ {
			t.stones[x][y][0] = ZobristKey(r.Uint64())
			t.stones[x][y][1] = ZobristKey(r.Uint64())
		}
	}
	t.side[0] = ZobristKey(r.Uint64())
	t.side[1] = ZobristKey(r.Uint64())
	return t
}

// Zkey returns the table entry for a stone of the given color at p.
// Only valid for Black/White.
func (t *ZobristTable) Zkey(p Point, c Color) ZobristKey {
	return t.stones[p.X][p.Y][colorIndex(c)]
}

// Side returns the side-to-move key for the given color. Only valid for
// Black/White.
func (t *ZobristTable) Side(c Color) ZobristKey {
	return t.side[colorIndex(c)]
}

func colorIndex(c Color) int {
	if c == White {
		return 1
	}
	return 0
}

var defaultZobrist struct {
	once  sync.Once
	table *ZobristTable
}

// DefaultZobristTable returns the process-wide Zobrist table, built on
// first use under a single-shot guard so that parallel first touches
// from distinct Board goroutines produce exactly one table (§5). It is
// seeded from the current time, so it is not reproducible across
// processes by design (§1 Non-goals); tests requiring reproducibility
// build their own table via NewZobristTable and inject it with
// WithZobristTable.
func DefaultZobristTable() *ZobristTable {
	defaultZobrist.once.Do(func() {
		defaultZobrist.table = NewZobristTable(time.Now().UnixNano())
	})
	return defaultZobrist.table
}
