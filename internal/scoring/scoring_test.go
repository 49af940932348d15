package scoring

import (
	"errors"
	"testing"
)

// MockScoreStorage is a mock implementation of the ScoreStorage interface
// that stores score entries in memory and can simulate failures.
type MockScoreStorage struct {
	Entries []ScoreHistoryEntry
	err     error
}

func (m *MockScoreStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.Entries, nil
}

func (m *MockScoreStorage) SaveAll(entries []ScoreHistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.Entries = entries
	return nil
}

// TestInitScoring_NewSize verifies that scoring starts empty for a board size
// that has never been played.
func TestInitScoring_NewSize(t *testing.T) {
	scoring, err := InitScoring("small", &MockScoreStorage{})
	if err != nil {
		t.Fatalf("InitScoring returned an unexpected error: %v", err)
	}

	if scoring.GetNumPrevious() != 0 {
		t.Errorf("expected 0 previous rounds, got %d", scoring.GetNumPrevious())
	}
	if scoring.GetHighScore() != nil {
		t.Errorf("expected nil high score, got %v", scoring.GetHighScore())
	}
	if scoring.CurrentScore != 0 {
		t.Errorf("expected initial score of 0, got %d", scoring.CurrentScore)
	}
	if !scoring.GotHighScore() {
		t.Error("first round should count as a high score")
	}
}

// TestInitScoring_WithHistory verifies that only entries for the same size
// are loaded.
func TestInitScoring_WithHistory(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{ID: "1", Size: "large", Score: 9999, Attempts: 8},
			{ID: "2", Size: "small", Score: 700, Attempts: 2},
			{ID: "3", Size: "small", Score: 560, Attempts: 4},
		},
	}

	scoring, err := InitScoring("small", mockStorage)
	if err != nil {
		t.Fatalf("InitScoring returned an unexpected error: %v", err)
	}

	if scoring.GetNumPrevious() != 2 {
		t.Errorf("expected 2 previous rounds, got %d", scoring.GetNumPrevious())
	}
	if scoring.Attempts() != 0 {
		t.Errorf("previous rounds must not count as attempts, got %d", scoring.Attempts())
	}

	highScore := scoring.GetHighScore()
	if highScore == nil {
		t.Fatal("expected a high score, got nil")
	}
	if highScore.Score != 700 {
		t.Errorf("expected high score of 700, got %d", highScore.Score)
	}
	if scoring.GetBestAttempts() != 2 {
		t.Errorf("expected best attempts 2, got %d", scoring.GetBestAttempts())
	}
}

func TestInitScoring_StorageError(t *testing.T) {
	_, err := InitScoring("small", &MockScoreStorage{err: errors.New("boom")})
	if err == nil {
		t.Fatal("expected an error from failing storage")
	}
}

// TestScoreEvent checks that board events modify the score and counters.
func TestScoreEvent(t *testing.T) {
	scoring, _ := InitScoring("medium", &MockScoreStorage{})

	scoring.ScoreEvent("mismatch")
	if scoring.CurrentScore != -20 {
		t.Errorf("mismatch: expected score -20, got %d", scoring.CurrentScore)
	}
	if scoring.DisplayScore() != 0 {
		t.Errorf("mismatch: expected display score 0, got %d", scoring.DisplayScore())
	}

	scoring.ScoreEvent("match")
	if scoring.CurrentScore != 80 {
		t.Errorf("match: expected score 80, got %d", scoring.CurrentScore)
	}

	scoring.ScoreEvent("clearBonus")
	if scoring.CurrentScore != 580 {
		t.Errorf("clearBonus: expected score 580, got %d", scoring.CurrentScore)
	}

	if scoring.Attempts() != 2 {
		t.Errorf("expected 2 attempts, got %d", scoring.Attempts())
	}
	if scoring.Matches != 1 || scoring.Mismatches != 1 {
		t.Errorf("unexpected counters: %d matches, %d mismatches", scoring.Matches, scoring.Mismatches)
	}
}

// TestGetNScoreEntries_IncludesCurrent verifies that the current round is
// ranked together with the history.
func TestGetNScoreEntries_IncludesCurrent(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{
			{ID: "a", Size: "large", Score: 100},
			{ID: "b", Size: "large", Score: 300},
		},
	}

	scoring, _ := InitScoring("large", mockStorage)
	scoring.ScoreEvent("match")
	scoring.ScoreEvent("match")

	entries := scoring.GetNScoreEntries(5)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []int{300, 200, 100}
	for i, score := range want {
		if entries[i].Score != score {
			t.Errorf("entry %d: expected score %d, got %d", i, score, entries[i].Score)
		}
	}

	if top := scoring.GetNScoreEntries(1); len(top) != 1 || top[0].Score != 300 {
		t.Errorf("expected only the 300 entry, got %+v", top)
	}
}

func TestSaveEntries(t *testing.T) {
	mockStorage := &MockScoreStorage{
		Entries: []ScoreHistoryEntry{{ID: "old", Size: "small", Score: 50, Attempts: 6}},
	}

	scoring, _ := InitScoring("small", mockStorage)
	scoring.ScoreEvent("match")
	scoring.ScoreEvent("match")
	scoring.ScoreEvent("clearBonus")

	if err := scoring.SaveEntries(); err != nil {
		t.Fatalf("SaveEntries returned error: %v", err)
	}
	// Saving twice must not duplicate the round.
	if err := scoring.SaveEntries(); err != nil {
		t.Fatalf("SaveEntries returned error: %v", err)
	}

	if len(mockStorage.Entries) != 2 {
		t.Fatalf("expected 2 stored entries, got %d", len(mockStorage.Entries))
	}
	saved := mockStorage.Entries[1]
	if saved.Score != 700 || saved.Attempts != 2 || saved.Size != "small" {
		t.Errorf("unexpected saved entry: %+v", saved)
	}
	if saved.ID == "" {
		t.Error("saved entry should carry an id")
	}
}
