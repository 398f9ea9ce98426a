package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, stage, kills int }{
		{1200, 2, 12}, {300, 1, 3}, {5400, 4, 31},
	} {
		if _, err := store.SaveScore("battle", s.score, s.stage, s.kills); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("battle_2p", 9000, 5, 40); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("battle", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("TopScores() returned %d entries, expected 2", len(scores))
	}
	if scores[0].Score != 5400 || scores[0].Stage != 4 || scores[0].Kills != 31 {
		t.Errorf("best entry = %+v", scores[0])
	}
	if scores[1].Score != 1200 {
		t.Errorf("second entry score = %d, expected 1200", scores[1].Score)
	}

	recent, err := store.RecentScores(1)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].GameID != "battle_2p" {
		t.Errorf("RecentScores(1) = %+v, expected the battle_2p entry", recent)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("battle")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	store.SaveScore("battle", 100, 1, 1)
	store.SaveScore("battle", 300, 3, 3)

	if high, _ = store.HighScore("battle"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}

	stats, err := store.Stats("battle")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestStage != 3 || stats.AvgScore != 200 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Stats().LastPlayed should be set")
	}

	if err := store.ClearScores("battle"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("battle", 10); len(left) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(left))
	}
}
