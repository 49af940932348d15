package game

import (
	"fmt"

	"go-tiles/internal/board"
	"go-tiles/internal/scoring"
)

type Phase int

const (
	PhaseSelecting Phase = iota
	PhasePlaying
)

func (p Phase) String() string {
	if p == PhasePlaying {
		return "playing"
	}
	return "selecting"
}

// Result summarises a finished round.
type Result struct {
	Size      board.Size
	Attempts  int
	Score     int
	HighScore bool
	Top       []scoring.ScoreHistoryEntry
}

func (r Result) Message() string {
	return fmt.Sprintf("Congratulations! You finished the game in %d attempts.", r.Attempts)
}

// Session moves between the size selector and a round in play. A finished
// round sends the player back to the selector with its result.
type Session struct {
	Game       *Game
	Phase      Phase
	LastResult *Result

	// Aggregate State
	RoundsPlayed int
	TotalScore   int
}

func NewSession(storage scoring.ScoreStorage, opts GameOptions) *Session {
	s := &Session{
		Game:  NewGame(storage, opts),
		Phase: PhaseSelecting,
	}
	s.Game.Subscribe(s.handleEvent)
	return s
}

// Select starts a round of the given size.
func (s *Session) Select(size board.Size) error {
	if err := s.Game.Start(size); err != nil {
		return err
	}
	s.Phase = PhasePlaying
	return nil
}

// Restart re-deals the round in play.
func (s *Session) Restart() error {
	if s.Phase != PhasePlaying {
		return nil
	}
	return s.Game.Restart()
}

// Back abandons the round in play and returns to the selector.
func (s *Session) Back() {
	if s.Phase != PhasePlaying {
		return
	}
	s.Game.Abandon()
	s.Phase = PhaseSelecting
}

func (s *Session) Activate(i int) bool {
	if s.Phase != PhasePlaying {
		return false
	}
	return s.Game.Activate(i)
}

func (s *Session) handleEvent(e board.Event) {
	if e.Kind != board.GameOver || s.Game.Score == nil {
		return
	}

	sc := s.Game.Score
	s.LastResult = &Result{
		Size:      s.Game.Board.Size(),
		Attempts:  s.Game.Attempts(),
		Score:     sc.DisplayScore(),
		HighScore: sc.GotHighScore(),
		Top:       sc.GetNScoreEntries(5),
	}
	s.RoundsPlayed++
	s.TotalScore += sc.DisplayScore()
	s.Phase = PhaseSelecting
}
