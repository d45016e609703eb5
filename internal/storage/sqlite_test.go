package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		game  string
		name  string
		score int
		level int
	}{
		{"pacman", "ann", 1200, 2},
		{"pacman", "bob", 300, 1},
		{"pacman", "cid", 4500, 3},
		{"pacman_random", "dan", 800, 1},
	}
	for _, r := range runs {
		if _, err := store.SaveScore(r.game, r.name, r.score, r.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	top, err := store.TopScores("pacman", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	expected := []struct {
		name  string
		score int
		level int
	}{
		{"cid", 4500, 3},
		{"ann", 1200, 2},
		{"bob", 300, 1},
	}
	for i, e := range expected {
		if top[i].Name != e.name || top[i].Score != e.score || top[i].Level != e.level {
			t.Errorf("top[%d] = %+v, expected %+v", i, top[i], e)
		}
		if top[i].GameID != "pacman" {
			t.Errorf("top[%d].GameID = %q, expected pacman", i, top[i].GameID)
		}
	}

	limited, err := store.TopScores("pacman", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveScore("pacman", "p", i*10, 1)
	}

	recent, err := store.RecentRuns("pacman", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(recent))
	}
	if recent[0].Score != 50 || recent[2].Score != 30 {
		t.Errorf("RecentRuns() order = %v, expected newest first", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveScore("pacman", "a", 100, 1)
	store.SaveScore("pacman", "b", 300, 1)
	store.SaveScore("pacman", "c", 200, 1)

	high, err = store.HighScore("pacman")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("pacman", "a", 100, 1)
	store.SaveScore("pacman", "b", 200, 1)
	store.SaveScore("pacman_random", "c", 300, 1)

	if err := store.ClearScores("pacman"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if runs, _ := store.TopScores("pacman", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopScores("pacman_random", 10); len(runs) != 1 {
		t.Errorf("Other variants should not be affected by clearing pacman")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("pacman", "a", 100, 1)
	store.SaveScore("pacman", "b", 300, 4)
	store.SaveScore("pacman_random", "c", 50, 2)

	stats, err := store.GetGameStats("pacman")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, expected 4", stats.BestLevel)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 variants, got %d", len(all))
	}
	if all["pacman_random"] == nil || all["pacman_random"].HighScore != 50 {
		t.Errorf("pacman_random stats = %+v", all["pacman_random"])
	}
}

func TestRecorderSavesEachRunOnce(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store, "pacman", "ann", nil)

	states := []struct {
		st   core.GameState
		want bool
	}{
		{core.GameState{Score: 10, Level: 1}, false},
		{core.GameState{Score: 120, Level: 2, GameOver: true}, true},
		{core.GameState{Score: 120, Level: 2, GameOver: true}, false},
		{core.GameState{Score: 0, Level: 1}, false},
		{core.GameState{Score: 0, Level: 1, GameOver: true}, false},
		{core.GameState{Score: 0, Level: 1}, false},
		{core.GameState{Score: 90, Level: 1, GameOver: true}, true},
	}
	for i, tt := range states {
		if got := rec.Observe(tt.st); got != tt.want {
			t.Errorf("Observe #%d = %v, want %v", i, got, tt.want)
		}
	}

	runs, err := store.RecentRuns("pacman", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Score != 90 || runs[1].Score != 120 || runs[1].Level != 2 || runs[1].Name != "ann" {
		t.Errorf("runs = %+v", runs)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	rec := NewRecorder(nil, "pacman", "", nil)
	if rec.Observe(core.GameState{Score: 50, GameOver: true}) {
		t.Error("nil store should never record")
	}
}
