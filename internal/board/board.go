package board

import (
	"context"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

const (
	MatchDelay    = 1000 * time.Millisecond
	MismatchDelay = 1500 * time.Millisecond
)

// DefaultFaces are the tile faces used when none are configured.
var DefaultFaces = []string{"♠", "♥", "♦", "♣", "★", "☀", "☂", "♪"}

// Rand is the randomness source used for dealing.
type Rand interface {
	Intn(n int) int
}

type Options struct {
	Size      Size
	Faces     []string
	Rand      Rand
	Scheduler Scheduler
	Logger    *zerolog.Logger
}

// Board owns the tile grid and runs the flip/match state machine. It is not
// safe for concurrent use; every call, including scheduled resolutions, must
// happen on one goroutine.
type Board struct {
	size     Size
	tiles    []*Tile
	attempts int
	faces    []string

	rng       Rand
	scheduler Scheduler
	log       zerolog.Logger

	phase      *fsm.FSM
	generation int
	cancel     func()

	listeners []subscription
	nextSub   int
}

// New builds a board. Call Init to deal.
func New(opts Options) *Board {
	b := &Board{
		size:      opts.Size,
		faces:     opts.Faces,
		rng:       opts.Rand,
		scheduler: opts.Scheduler,
		log:       zerolog.Nop(),
	}
	if len(b.faces) < MaxPairs {
		b.faces = DefaultFaces
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if b.scheduler == nil {
		b.scheduler = NewDeferred()
	}
	if opts.Logger != nil {
		b.log = opts.Logger.With().Str("component", "board").Logger()
	}

	b.phase = fsm.NewFSM(
		stateIdle,
		getRoundTransitions(),
		getRoundCallbacks(b),
	)

	return b
}

// Init deals a fresh round for the current size. A resolution still pending
// from the previous round is cancelled.
func (b *Board) Init() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.generation++
	b.attempts = 0

	count := b.size.TileCount()
	if count != len(b.tiles) {
		b.tiles = make([]*Tile, count)
		for i := range b.tiles {
			b.tiles[i] = &Tile{index: i, onFlip: b.onTileFlip}
		}
	}

	b.deal()
	b.phase.SetState(stateIdle)

	b.log.Debug().
		Str("size", b.size.String()).
		Int("tiles", count).
		Int("generation", b.generation).
		Msg("board dealt")
}

// SetSize changes the board size and re-deals.
func (b *Board) SetSize(s Size) {
	b.size = s
	b.Init()
}

// Flip activates the tile at index i. Disabled, hidden and out of range tiles
// are ignored.
func (b *Board) Flip(i int) bool {
	t := b.Tile(i)
	if t == nil {
		return false
	}
	return t.Flip()
}

func (b *Board) Size() Size    { return b.size }
func (b *Board) Attempts() int { return b.attempts }
func (b *Board) Phase() string { return b.phase.Current() }

func (b *Board) Width() int {
	w, _ := b.size.Dimensions()
	return w
}

func (b *Board) Height() int {
	_, h := b.size.Dimensions()
	return h
}

// Narrow reports whether the layout uses the two-column variant.
func (b *Board) Narrow() bool {
	return b.Width() == 2
}

// Resolving reports whether a comparison is waiting for its delay.
func (b *Board) Resolving() bool {
	return b.phase.Is(stateResolving)
}

// Tiles returns the tiles in grid order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

func (b *Board) Tile(i int) *Tile {
	if i < 0 || i >= len(b.tiles) {
		return nil
	}
	return b.tiles[i]
}

func (b *Board) onTileFlip(_ *Tile) {
	faceUp := b.FaceUp()
	faceDown := b.FaceDown()

	toDisable := append([]*Tile{}, faceUp...)
	if len(faceUp) > 1 {
		b.attempts++
		toDisable = append(toDisable, faceDown...)
	}

	for _, t := range toDisable {
		t.disabled = true
	}

	if len(toDisable) < 2 {
		b.event(evFlip)
		return
	}

	r := round{
		first:      toDisable[0],
		second:     toDisable[1],
		rest:       append([]*Tile{}, toDisable[2:]...),
		generation: b.generation,
	}
	r.equal = r.first.Equals(r.second)
	b.event(evCompare, r)
}

// resolve finishes a comparison once its delay has elapsed.
func (b *Board) resolve(r round) {
	if r.generation != b.generation {
		b.log.Debug().Int("generation", r.generation).Msg("dropping stale resolution")
		return
	}
	b.cancel = nil

	enable := r.rest
	kind := TilesMismatch
	if r.equal {
		r.first.hidden = true
		r.second.hidden = true
		kind = TilesMatch
	} else {
		r.first.faceUp = false
		r.second.faceUp = false
		enable = append(enable, r.first, r.second)
	}

	b.log.Debug().
		Str("event", string(kind)).
		Int("first", r.first.index).
		Int("second", r.second.index).
		Int("attempts", b.attempts).
		Msg("pair resolved")

	b.emit(Event{Kind: kind, First: r.first, Second: r.second})

	// A listener may have re-dealt the board.
	if r.generation != b.generation {
		return
	}

	if b.AllHidden() {
		b.event(evFinish)
		return
	}

	for _, t := range enable {
		t.disabled = false
	}
	b.event(evSettle)
}

func (b *Board) event(name string, args ...interface{}) {
	if err := b.phase.Event(context.Background(), name, args...); err != nil {
		b.log.Debug().Err(err).Str("event", name).Str("phase", b.phase.Current()).Msg("transition skipped")
	}
}
