package game

import (
	"fmt"

	"go-tiles/internal/board"
	"go-tiles/internal/scoring"

	"github.com/rs/zerolog"
)

type GameOptions struct {
	Faces     []string
	Rand      board.Rand
	Scheduler board.Scheduler
	Logger    *zerolog.Logger
}

// Game ties a board to the scoring of the round being played on it,
// independent of the UI.
type Game struct {
	Board *board.Board
	Score *scoring.Scoring

	storage scoring.ScoreStorage
	log     zerolog.Logger
}

// NewGame builds a game with an undealt board. Call Start to deal.
func NewGame(storage scoring.ScoreStorage, opts GameOptions) *Game {
	g := &Game{
		storage: storage,
		log:     zerolog.Nop(),
	}
	if opts.Logger != nil {
		g.log = opts.Logger.With().Str("component", "game").Logger()
	}

	g.Board = board.New(board.Options{
		Faces:     opts.Faces,
		Rand:      opts.Rand,
		Scheduler: opts.Scheduler,
		Logger:    opts.Logger,
	})
	g.Board.Subscribe(g.handleEvent)

	return g
}

// Start deals a new round of the given size.
func (g *Game) Start(size board.Size) error {
	sc, err := scoring.InitScoring(size.String(), g.storage)
	if err != nil {
		return fmt.Errorf("failed to start %s round: %w", size, err)
	}
	g.Score = sc
	g.Board.SetSize(size)
	return nil
}

// Restart re-deals the current size.
func (g *Game) Restart() error {
	return g.Start(g.Board.Size())
}

// Abandon drops the round in play along with any pending resolution.
func (g *Game) Abandon() {
	g.Board.Init()
	g.Score = nil
}

// Activate flips the tile at index i.
func (g *Game) Activate(i int) bool {
	if g.Score == nil {
		return false
	}
	return g.Board.Flip(i)
}

func (g *Game) Subscribe(l board.Listener) func() {
	return g.Board.Subscribe(l)
}

func (g *Game) Attempts() int {
	return g.Board.Attempts()
}

// Over reports whether every pair of the current round has been matched.
func (g *Game) Over() bool {
	return g.Score != nil && g.Board.AllHidden()
}

func (g *Game) handleEvent(e board.Event) {
	if g.Score == nil {
		return
	}

	switch e.Kind {
	case board.TilesMatch:
		g.Score.ScoreEvent("match")
	case board.TilesMismatch:
		g.Score.ScoreEvent("mismatch")
	case board.GameOver:
		g.Score.ScoreEvent("clearBonus")
		if err := g.Score.SaveEntries(); err != nil {
			g.log.Error().Err(err).Msg("failed to save score")
		}
	}
}
