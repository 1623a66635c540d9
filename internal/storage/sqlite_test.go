package storage

import (
	"errors"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

	for _, sess := range []Session{
		{Variant: "classic", Score: 100, Length: 13, Eaten: 10, Ticks: 400, Reason: "wall"},
		{Variant: "classic", Score: 50, Length: 8, Eaten: 5, Ticks: 120, Reason: "self"},
		{Variant: "classic", Score: 200, Length: 23, Eaten: 20, Ticks: 900, Reason: "wall"},
		{Variant: "effects", Score: 500, Length: 30, Eaten: 27, Ticks: 1500, Reason: "self"},
	} {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.TopSessions("classic", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if sessions[i].Score != w {
			t.Errorf("sessions[%d].Score = %d, want %d", i, sessions[i].Score, w)
		}
	}
	if sessions[0].Length != 23 || sessions[0].Ticks != 900 || sessions[0].Reason != "wall" {
		t.Errorf("session fields not round-tripped: %+v", sessions[0])
	}
	if sessions[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	effects, err := store.TopSessions("effects", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(effects) != 1 || effects[0].Score != 500 {
		t.Errorf("effects sessions = %+v", effects)
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveSession(Session{Variant: "classic", Score: i * 10}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.TopSessions("classic", 5)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 5 {
		t.Errorf("Expected 5 sessions, got %d", len(sessions))
	}
	if sessions[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", sessions[0].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty variant, got %d", high)
	}

	store.SaveSession(Session{Variant: "classic", Score: 100})
	store.SaveSession(Session{Variant: "classic", Score: 300})

	high, _ = store.HighScore("classic")
	if high != 300 {
		t.Errorf("Expected 300, got %d", high)
	}

	// A best saved mid-session counts even before the session is recorded.
	if err := store.SetBestScore("classic", 420); err != nil {
		t.Fatalf("SetBestScore() failed: %v", err)
	}
	high, _ = store.HighScore("classic")
	if high != 420 {
		t.Errorf("Expected 420, got %d", high)
	}
}

func TestStoreSetBestScoreNeverLowers(t *testing.T) {
	store := openTestStore(t)

	store.SetBestScore("effects", 90)
	store.SetBestScore("effects", 40)

	high, err := store.HighScore("effects")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("Expected 90, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{Variant: "classic", Score: 100})
	store.SetBestScore("classic", 100)
	store.SaveSession(Session{Variant: "effects", Score: 200})

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if high, _ := store.HighScore("classic"); high != 0 {
		t.Errorf("classic high = %d after clear", high)
	}
	if high, _ := store.HighScore("effects"); high != 200 {
		t.Errorf("effects high = %d, should be untouched", high)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveSession(Session{Variant: "classic", Score: 100, Length: 12})
	store.SaveSession(Session{Variant: "classic", Score: 300, Length: 30})

	stats, err = store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 || stats.LongestTail != 30 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestBestScoreAdapter(t *testing.T) {
	store := openTestStore(t)
	store.SaveSession(Session{Variant: "classic", Score: 70})

	best := store.BestScore("classic", nil)
	got, err := best.LoadBestScore()
	if err != nil {
		t.Fatalf("LoadBestScore() failed: %v", err)
	}
	if got != 70 {
		t.Errorf("LoadBestScore() = %d, want 70", got)
	}

	if err := best.SaveBestScore(80); err != nil {
		t.Fatalf("SaveBestScore() failed: %v", err)
	}
	if got, _ := best.LoadBestScore(); got != 80 {
		t.Errorf("after save = %d, want 80", got)
	}

	other := store.BestScore("effects", nil)
	if got, _ := other.LoadBestScore(); got != 0 {
		t.Errorf("effects best = %d, want 0", got)
	}
}

func TestBestScoreClosedStoreFails(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	best := store.BestScore("classic", nil)
	store.Close()

	if err := best.SaveBestScore(10); err == nil {
		t.Error("expected error on closed store")
	}
}

func TestIsBusy(t *testing.T) {
	if IsBusy(nil) || IsBusy(errors.New("database is locked")) {
		t.Error("plain errors are not driver busy errors")
	}
}
