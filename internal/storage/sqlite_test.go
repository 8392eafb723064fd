package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/hungry-pixel/internal/msg"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		kind    msg.Kind
		want    Outcome
		wantErr bool
	}{
		{msg.KindShowWinScreen, OutcomeWin, false},
		{msg.KindShowGameOver, OutcomeGameOver, false},
		{msg.KindExit, "", true},
	}

	for _, tt := range tests {
		got, err := OutcomeOf(tt.kind)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("OutcomeOf(%s) = %q, %v", tt.kind, got, err)
		}
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return at }

	results := []struct {
		kind msg.Kind
		r    msg.Result
	}{
		{msg.KindShowGameOver, msg.Result{FinalSize: 1, PeakSize: 80.5, PlayedMS: 30000}},
		{msg.KindShowWinScreen, msg.Result{FinalSize: 390, PeakSize: 390, PlayedMS: 95000}},
		{msg.KindShowGameOver, msg.Result{FinalSize: 0.5, PeakSize: 20, PlayedMS: 4000}},
	}
	for _, res := range results {
		if err := store.Record(res.kind, res.r); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	sessions, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Sorted by peak descending
	if sessions[0].PeakSize != 390 || sessions[1].PeakSize != 80.5 || sessions[2].PeakSize != 20 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}

	top := sessions[0]
	if top.Outcome != OutcomeWin || top.FinalSize != 390 || top.Played() != 95*time.Second {
		t.Errorf("Top session = %+v", top)
	}
	if !top.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt = %v, expected %v", top.CreatedAt, at)
	}
}

func TestStoreRecordRejectsOtherKinds(t *testing.T) {
	store := openTestStore(t)

	if err := store.Record(msg.KindTick, msg.Result{}); err == nil {
		t.Error("Record() should reject non-result kinds")
	}
	if sessions, _ := store.TopSessions(10); len(sessions) != 0 {
		t.Errorf("Expected nothing stored, got %v", sessions)
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveSession(OutcomeGameOver, msg.Result{PeakSize: float64((i + 1) * 100)})
	}

	sessions, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].PeakSize != 500 || sessions[1].PeakSize != 400 || sessions[2].PeakSize != 300 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for i := range 4 {
		store.SaveSession(OutcomeGameOver, msg.Result{PeakSize: float64(i)})
	}

	sessions, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 || sessions[0].PeakSize != 3 || sessions[1].PeakSize != 2 {
		t.Errorf("Expected the two newest sessions, got %v", sessions)
	}
}

func TestStoreBestPeak(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestPeak()
	if err != nil {
		t.Fatalf("BestPeak() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 with no sessions, got %v", best)
	}

	store.SaveSession(OutcomeGameOver, msg.Result{PeakSize: 100})
	store.SaveSession(OutcomeGameOver, msg.Result{PeakSize: 300.5})
	store.SaveSession(OutcomeWin, msg.Result{PeakSize: 200})

	best, err = store.BestPeak()
	if err != nil {
		t.Fatalf("BestPeak() failed: %v", err)
	}
	if best != 300.5 {
		t.Errorf("Expected best peak of 300.5, got %v", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveSession(OutcomeGameOver, msg.Result{PeakSize: 100, PlayedMS: 1000})
	store.SaveSession(OutcomeWin, msg.Result{PeakSize: 300, PlayedMS: 2000})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.Wins != 1 || stats.BestPeak != 300 || stats.AvgPeak != 200 || stats.TotalMS != 3000 {
		t.Errorf("Stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(OutcomeGameOver, msg.Result{PeakSize: 100})
	store.SaveSession(OutcomeWin, msg.Result{PeakSize: 200})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	sessions, _ := store.TopSessions(10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}
}
