package board

import (
	"context"

	"github.com/looplab/fsm"
)

const (
	stateIdle      = "idle"
	stateOneFaceUp = "oneFaceUp"
	stateResolving = "resolving"
	stateGameOver  = "gameOver"

	evFlip    = "flip"
	evCompare = "compare"
	evSettle  = "settle"
	evFinish  = "finish"
)

// round is one pending comparison.
type round struct {
	first, second *Tile
	rest          []*Tile
	equal         bool
	generation    int
}

func getRoundTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: evFlip, Src: []string{stateIdle}, Dst: stateOneFaceUp},
		{Name: evCompare, Src: []string{stateIdle, stateOneFaceUp}, Dst: stateResolving},
		{Name: evSettle, Src: []string{stateResolving}, Dst: stateIdle},
		{Name: evFinish, Src: []string{stateResolving}, Dst: stateGameOver},
	}
}

func getRoundCallbacks(b *Board) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			b.log.Debug().Str("from", e.Src).Str("to", e.Dst).Str("event", e.Event).Msg("round transition")
		},
		"enter_" + stateResolving: func(_ context.Context, e *fsm.Event) {
			var r round
			if len(e.Args) > 0 {
				r, _ = e.Args[0].(round)
			}
			if r.first == nil {
				b.log.Warn().Str("from", e.Src).Msg("compare without a round")
				b.phase.SetState(e.Src)
				return
			}

			delay := MismatchDelay
			if r.equal {
				delay = MatchDelay
			}
			b.cancel = b.scheduler.Schedule(delay, func() {
				b.resolve(r)
			})
		},
		"enter_" + stateGameOver: func(_ context.Context, e *fsm.Event) {
			for _, t := range b.tiles {
				t.disabled = true
			}
			b.log.Info().Int("attempts", b.attempts).Str("size", b.size.String()).Msg("game over")
			b.emit(Event{Kind: GameOver})
		},
	}
}
