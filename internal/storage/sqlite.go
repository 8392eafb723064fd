// Package storage provides SQLite-based persistence for play session results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hungry-pixel/internal/engine"
	"github.com/vovakirdan/hungry-pixel/internal/msg"
)

// Outcome is how a session ended, as stored in the database.
type Outcome string

const (
	OutcomeWin      Outcome = "win"
	OutcomeGameOver Outcome = "game_over"
)

// OutcomeOf maps a result message kind to its stored outcome.
func OutcomeOf(k msg.Kind) (Outcome, error) {
	switch k {
	case msg.KindShowWinScreen:
		return OutcomeWin, nil
	case msg.KindShowGameOver:
		return OutcomeGameOver, nil
	}
	return "", fmt.Errorf("storage: %s is not a session outcome", k)
}

// Store manages the SQLite database connection for session history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ engine.Recorder = (*Store)(nil)

// Session is a single recorded play session.
type Session struct {
	ID        int64
	Outcome   Outcome
	FinalSize float64
	PeakSize  float64
	PlayedMS  int64
	CreatedAt time.Time
}

// Played returns the unpaused play time.
func (s Session) Played() time.Duration {
	return time.Duration(s.PlayedMS) * time.Millisecond
}

// Stats contains aggregated statistics over every recorded session.
type Stats struct {
	Sessions   int
	Wins       int
	BestPeak   float64
	AvgPeak    float64
	TotalMS    int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL,
			final_size REAL NOT NULL,
			peak_size REAL NOT NULL,
			played_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_peak ON sessions(peak_size DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record implements engine.Recorder.
func (s *Store) Record(outcome msg.Kind, r msg.Result) error {
	o, err := OutcomeOf(outcome)
	if err != nil {
		return err
	}
	_, err = s.SaveSession(o, r)
	return err
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(o Outcome, r msg.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (outcome, final_size, peak_size, played_ms, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(o), r.FinalSize, r.PeakSize, int64(r.PlayedMS), s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopSessions retrieves the N sessions with the largest peak size.
// Ties go to the earlier session.
func (s *Store) TopSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, outcome, final_size, peak_size, played_ms, created_at
		 FROM sessions
		 ORDER BY peak_size DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentSessions retrieves the N most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, outcome, final_size, peak_size, played_ms, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Session, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var e Session
		var outcome string
		var createdAt int64
		if err := rows.Scan(&e.ID, &outcome, &e.FinalSize, &e.PeakSize, &e.PlayedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.CreatedAt = time.UnixMilli(createdAt)
		sessions = append(sessions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// BestPeak returns the largest peak size ever recorded.
// Returns 0 if no sessions exist.
func (s *Store) BestPeak() (float64, error) {
	var peak sql.NullFloat64
	if err := s.db.QueryRow("SELECT MAX(peak_size) FROM sessions").Scan(&peak); err != nil {
		return 0, fmt.Errorf("storage: cannot query best peak: %w", err)
	}
	if !peak.Valid {
		return 0, nil
	}
	return peak.Float64, nil
}

// Stats retrieves aggregated statistics over every session.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(peak_size), 0),
		        COALESCE(AVG(peak_size), 0),
		        COALESCE(SUM(played_ms), 0)
		 FROM sessions`,
		string(OutcomeWin),
	).Scan(&stats.Sessions, &stats.Wins, &stats.BestPeak, &stats.AvgPeak, &stats.TotalMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var last int64
	err = s.db.QueryRow("SELECT created_at FROM sessions ORDER BY id DESC LIMIT 1").Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = time.UnixMilli(last)
	}
	return stats, nil
}

// Clear deletes every recorded session.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}
