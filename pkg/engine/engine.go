// Package engine provides a mutex-guarded facade around pkg/board's
// Board, adding functional-options construction, structured logging of
// lifecycle transitions, and a panic-to-error boundary so a pipeline
// worker processing an archive of records does not take down the whole
// batch job on one malformed record (SPEC_FULL.md §6).
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/weiqilab/goengine/pkg/board"
	"github.com/weiqilab/goengine/pkg/features"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Engine wraps a board.Board behind a mutex, so that a single instance
// may be shared by goroutines that serialize access to it (the core
// itself is not re-entrant, §5).
type Engine struct {
	seed  int64
	table *board.ZobristTable

	b  *board.Board
	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithZobristSeed configures the engine to build its own Zobrist table
// from the given seed instead of sharing the process-wide default,
// trading a little memory for reproducible golden-hash tests.
func WithZobristSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
		e.table = board.NewZobristTable(seed)
	}
}

// WithZobristTable configures the engine to use a pre-built table,
// e.g. one shared across several engines that must hash identically.
func WithZobristTable(t *board.ZobristTable) Option {
	return func(e *Engine) {
		e.table = t
	}
}

// New constructs an Engine reset to an empty board of the given size,
// komi, ruleset and handicap count.
func New(ctx context.Context, size board.Size, komi float64, ruleset board.Ruleset, handicap int, opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, fn := range opts {
		fn(e)
	}

	if err := e.Reset(ctx, size, komi, ruleset, handicap); err != nil {
		return nil, err
	}

	logw.Infof(ctx, "Initialized engine %v: size=%v, komi=%v, ruleset=%+v", e.Version(), size, komi, ruleset)
	return e, nil
}

// Version returns the engine's name and semantic version.
func (e *Engine) Version() string {
	return fmt.Sprintf("goengine %v", version)
}

// Reset reinitializes the engine's board to a new size/komi/ruleset.
func (e *Engine) Reset(ctx context.Context, size board.Size, komi float64, ruleset board.Ruleset, handicap int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var opts []board.Option
	if e.table != nil {
		opts = append(opts, board.WithZobristTable(e.table))
	}

	b, err := board.NewBoard(size, komi, ruleset, handicap, opts...)
	if err != nil {
		return err
	}
	e.b = b

	logw.Infof(ctx, "Reset: size=%v, komi=%v, ruleset=%+v, handicap=%v", size, komi, ruleset, handicap)
	return nil
}

// Setup places or erases a stone without legality or ko accounting. A
// misuse panic raised by the core (§7.1) is recovered and reported as
// an error here, since one malformed setup placement in a batch job
// should not crash the worker.
func (e *Engine) Setup(ctx context.Context, m board.Move) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("setup %v: %v", m, r)
		}
	}()

	e.b.Setup(m)
	logw.Debugf(ctx, "Setup %v: %v", m, e.b)
	return nil
}

// Legality reports the verdict for m as if it were played next; it
// never mutates the board.
func (e *Engine) Legality(m board.Move) board.Verdict {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Legality(m)
}

// Play plays m, which must be Legal for the side expected to move
// next. A misuse panic raised by the core (§7.1) is recovered and
// reported as an error here, mirroring Setup's boundary.
func (e *Engine) Play(ctx context.Context, m board.Move) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("play %v: %v", m, r)
		}
	}()

	e.b.Play(m)
	logw.Infof(ctx, "Play %v: %v", m, e.b)
	return nil
}

// Features derives the stacked feature planes and scalar vector for
// toPlay from the current board state.
func (e *Engine) Features(toPlay board.Color) (features.Planes, features.Scalars) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return features.Extract(e.b, toPlay)
}

// LastMove returns the most recently played move, if any.
func (e *Engine) LastMove() lang.Optional[board.Move] {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := e.b.History()
	if len(h) == 0 {
		return lang.Optional[board.Move]{}
	}
	return lang.Some(h[len(h)-1])
}

// ExpectedColor returns the color expected to move next.
func (e *Engine) ExpectedColor() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.ExpectedColor()
}

// Clone returns an Engine operating on an independent copy of the
// current board, so a pipeline worker can snapshot a position (e.g. at
// a record's declared start-turn index) and explore multiple
// continuations from a shared prefix without replaying the whole
// record per continuation.
func (e *Engine) Clone() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()

	return &Engine{
		seed:  e.seed,
		table: e.table,
		b:     e.b.Clone(),
	}
}
