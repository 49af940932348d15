package scoring

import (
	"testing"
)

func TestMemoryStorage_SaveAndLoad(t *testing.T) {
	storage := NewMemoryStorage()

	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty storage returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	testEntries := []ScoreHistoryEntry{
		{ID: "abc", Size: "small", Score: 100, Timestamp: "2023-01-01"},
		{ID: "def", Size: "large", Score: 200, Timestamp: "2023-01-02"},
	}

	if err := storage.SaveAll(testEntries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	loadedEntries, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loadedEntries) != len(testEntries) {
		t.Fatalf("Expected %d entries, got %d", len(testEntries), len(loadedEntries))
	}
	if loadedEntries[0].ID != "abc" || loadedEntries[1].Score != 200 {
		t.Errorf("Loaded content mismatch. Got: %+v", loadedEntries)
	}
}

func TestMemoryStorage_CopiesEntries(t *testing.T) {
	storage := NewMemoryStorage()
	entries := []ScoreHistoryEntry{{ID: "x", Score: 1}}
	_ = storage.SaveAll(entries)

	entries[0].Score = 99
	loaded, _ := storage.LoadAll()
	if loaded[0].Score != 1 {
		t.Errorf("storage should not alias the caller's slice, got score %d", loaded[0].Score)
	}

	loaded[0].Score = 42
	again, _ := storage.LoadAll()
	if again[0].Score != 1 {
		t.Errorf("LoadAll should return a copy, got score %d", again[0].Score)
	}
}
