package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Several runs with different final masses
	if _, err := store.SaveScore("petri", "MyCell", 640); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("petri", "Blobby", 425); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("petri", "MyCell", 910); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("petri", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 910 || scores[1].Score != 640 || scores[2].Score != 425 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "MyCell" {
		t.Errorf("Expected top player MyCell, got %q", scores[0].Player)
	}
	if scores[2].Player != "Blobby" {
		t.Errorf("Expected third player Blobby, got %q", scores[2].Player)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("petri", "cell", (i+1)*100)
	}

	scores, err := store.TopScores("petri", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("petri")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("petri", "a", 400)
	store.SaveScore("petri", "b", 825)
	store.SaveScore("petri", "c", 550)

	high, err = store.HighScore("petri")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 825 {
		t.Errorf("Expected high score of 825, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("petri", "a", 100)
	store.SaveScore("petri", "b", 200)
	store.SaveScore("other", "c", 300)

	if err := store.ClearScores("petri"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	petriScores, _ := store.TopScores("petri", 10)
	if len(petriScores) != 0 {
		t.Errorf("Expected 0 petri scores after clear, got %d", len(petriScores))
	}

	// Other games should not be affected
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Clearing petri scores should not touch other games")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("petri", "cell", i*10)
	}

	scores, err := store.AllScores("petri")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("petri", "a", 400)
	store.SaveScore("petri", "b", 600)

	stats, err := store.GetGameStats("petri")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 600 {
		t.Errorf("HighScore = %d, expected 600", stats.HighScore)
	}
	if stats.AvgScore != 500 {
		t.Errorf("AvgScore = %v, expected 500", stats.AvgScore)
	}
	if stats.TotalScore != 1000 {
		t.Errorf("TotalScore = %d, expected 1000", stats.TotalScore)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
