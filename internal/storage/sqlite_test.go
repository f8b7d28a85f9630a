package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("crossing", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("crossing", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("crossing", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("hop", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for crossing
	scores, err := store.TopScores("crossing", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for hop
	hopScores, err := store.TopScores("hop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(hopScores) != 1 {
		t.Errorf("Expected 1 hop score, got %d", len(hopScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("crossing", 100)
	store.SaveScore("crossing", 300)
	store.SaveScore("crossing", 200)

	high, err = store.HighScore("crossing")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("crossing", 100)
	store.SaveScore("crossing", 200)
	store.SaveScore("hop", 300)

	// Clear only crossing scores
	err = store.ClearScores("crossing")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Crossing should be empty
	crossingScores, _ := store.TopScores("crossing", 10)
	if len(crossingScores) != 0 {
		t.Errorf("Expected 0 crossing scores after clear, got %d", len(crossingScores))
	}

	// Hop should still have scores
	hopScores, _ := store.TopScores("hop", 10)
	if len(hopScores) != 1 {
		t.Errorf("Hop scores should not be affected by clearing crossing")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
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

func TestStoreSaveRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	saved, err := store.SaveRun(RunRecord{
		GameID:   "crossing",
		Outcome:  OutcomeLost,
		Score:    50,
		Leaps:    2,
		Duration: 4500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}
	if saved.ID == 0 {
		t.Error("SaveRun() should set the row ID")
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() found nothing")
	}
	if got.Score != 50 || got.Leaps != 2 || got.Outcome != OutcomeLost {
		t.Errorf("run not round-tripped: %+v", got)
	}
	if got.Duration != 4500*time.Millisecond {
		t.Errorf("duration = %v, expected 4.5s", got.Duration)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreRunIDUnique(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	run := RunRecord{RunID: "fixed", GameID: "hop", Outcome: OutcomeWon, Score: 360}
	if _, err := store.SaveRun(run); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(run); err == nil {
		t.Error("duplicate run ID should be rejected")
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(RunRecord{GameID: "crossing", Outcome: OutcomeLost, Score: 50})
	store.SaveRun(RunRecord{GameID: "hop", Outcome: OutcomeWon, Score: 360})
	store.SaveRun(RunRecord{GameID: "crossing", Outcome: OutcomeWon, Score: 500})

	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(all))
	}
	if all[0].Score != 500 {
		t.Errorf("newest run first, got score %d", all[0].Score)
	}

	crossing, _ := store.RecentRuns("crossing", 10)
	if len(crossing) != 2 {
		t.Errorf("expected 2 crossing runs, got %d", len(crossing))
	}

	limited, _ := store.RecentRuns("", 1)
	if len(limited) != 1 {
		t.Errorf("expected limit 1, got %d", len(limited))
	}
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	empty, err := store.GetGameStats("hop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.WinRate() != 0 {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "hop", Outcome: OutcomeLost, Score: 120, Leaps: 3})
	store.SaveRun(RunRecord{GameID: "hop", Outcome: OutcomeWon, Score: 360, Leaps: 6})
	store.SaveRun(RunRecord{GameID: "hop", Outcome: OutcomeLost, Score: 0, Leaps: 1})
	store.SaveRun(RunRecord{GameID: "crossing", Outcome: OutcomeWon, Score: 500})

	stats, err := store.GetGameStats("hop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.Wins != 1 || stats.Losses != 2 {
		t.Errorf("counts = %+v", stats)
	}
	if stats.HighScore != 360 {
		t.Errorf("high score = %d, expected 360", stats.HighScore)
	}
	if stats.AvgScore != 160 {
		t.Errorf("avg score = %f, expected 160", stats.AvgScore)
	}
	if math.Abs(stats.AvgLeaps-10.0/3.0) > 1e-9 {
		t.Errorf("avg leaps = %f", stats.AvgLeaps)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}
