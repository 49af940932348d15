package scoring

import (
	"sort"
)

// ScoreHistory holds the results for one board size, including past entries
// and the round in progress.
type ScoreHistory struct {
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
	CurrentScore   *ScoreHistoryEntry
	PreviousRounds int
}

// ScoreHistoryEntry represents one finished round.
type ScoreHistoryEntry struct {
	ID        string `json:"id"`
	Size      string `json:"size"`
	Score     int    `json:"score"`
	Attempts  int    `json:"attempts"`
	Timestamp string `json:"timestamp"`
}

func (sh ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N entries, the current round included,
// sorted by score.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	entriesCopy := make([]ScoreHistoryEntry, 0, len(sh.Entries)+1)
	entriesCopy = append(entriesCopy, sh.Entries...)
	if sh.CurrentScore != nil {
		entriesCopy = append(entriesCopy, *sh.CurrentScore)
	}

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if the current score is at least the previous best.
func (sh ScoreHistory) GotHighScore() bool {
	if sh.HighScoreEntry == nil || sh.CurrentScore == nil {
		return true
	}
	return sh.CurrentScore.Score >= sh.HighScoreEntry.Score
}

// BestAttempts returns the fewest attempts of any previous round, or 0 when
// there is none.
func (sh ScoreHistory) BestAttempts() int {
	best := 0
	for _, e := range sh.Entries {
		if e.Attempts <= 0 {
			continue
		}
		if best == 0 || e.Attempts < best {
			best = e.Attempts
		}
	}
	return best
}
