package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Scoring tracks the score of one round and the history of previous rounds
// played on the same board size.
type Scoring struct {
	// public
	CurrentScore int
	Matches      int
	Mismatches   int
	// private
	storage    ScoreStorage
	history    ScoreHistory
	scoreTable map[string]int
	size       string
}

// InitScoring creates a Scoring for a round on the given board size and loads
// the previous results for that size from storage.
func InitScoring(size string, storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		scoreTable: getScoreTable(),
		storage:    storage,
		size:       size,
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load score history: %w", err)
	}

	filteredEntries := []ScoreHistoryEntry{}
	for _, entry := range allEntries {
		if entry.Size == s.size {
			filteredEntries = append(filteredEntries, entry)
		}
	}

	sort.Slice(filteredEntries, func(i, j int) bool {
		return filteredEntries[i].Score > filteredEntries[j].Score
	})

	s.history.Entries = filteredEntries
	s.history.PreviousRounds = len(filteredEntries)
	if len(filteredEntries) > 0 {
		s.history.HighScoreEntry = &filteredEntries[0]
	}

	s.history.CurrentScore = &ScoreHistoryEntry{
		ID:        uuid.NewString(),
		Size:      s.size,
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return s, nil
}

// ScoreEvent updates the score based on a board event.
func (s *Scoring) ScoreEvent(event string) {
	switch event {
	case "match":
		s.Matches++
	case "mismatch":
		s.Mismatches++
	}
	s.CurrentScore += s.scoreTable[event]

	if s.history.CurrentScore != nil {
		s.history.CurrentScore.Score = s.DisplayScore()
		s.history.CurrentScore.Attempts = s.Attempts()
	}
}

// Attempts is the number of pair comparisons scored so far.
func (s *Scoring) Attempts() int {
	return s.Matches + s.Mismatches
}

// DisplayScore is the current score floored at zero.
func (s *Scoring) DisplayScore() int {
	if s.CurrentScore < 0 {
		return 0
	}
	return s.CurrentScore
}

// SaveEntries records the finished round in storage.
func (s *Scoring) SaveEntries() error {
	if s.history.CurrentScore == nil {
		return nil
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return fmt.Errorf("could not load scores for saving: %w", err)
	}

	updatedEntries := make([]ScoreHistoryEntry, 0, len(allEntries)+1)
	for _, entry := range allEntries {
		if entry.ID != s.history.CurrentScore.ID {
			updatedEntries = append(updatedEntries, entry)
		}
	}
	updatedEntries = append(updatedEntries, *s.history.CurrentScore)

	return s.storage.SaveAll(updatedEntries)
}

func (s *Scoring) GetHighScore() *ScoreHistoryEntry {
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetNumPrevious() int {
	return s.history.PreviousRounds
}

func (s *Scoring) GotHighScore() bool {
	return s.history.GotHighScore()
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	return s.history.GetNScoreEntries(n)
}

func (s *Scoring) GetBestAttempts() int {
	return s.history.BestAttempts()
}

// getScoreTable returns the predefined values for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"match":      100,
		"mismatch":   -20,
		"clearBonus": 500,
	}
}
