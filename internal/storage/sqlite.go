// Package storage provides SQLite-based persistence for run results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Entry is one recorded run. The table is append-only: a run is inserted
// once when it ends and never updated.
type Entry struct {
	ID        int64
	Name      string
	Score     int
	Coins     int
	CreatedAt time.Time
}

// PlayerStats aggregates all recorded runs for one player name.
type PlayerStats struct {
	Name         string
	GamesPlayed  int
	BestScore    int
	AverageScore float64 // Rounded to one decimal
	TotalCoins   int
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist, then backfills columns
// added since older releases so existing databases keep working.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT 'PLAYER',
			score INTEGER NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_name ON scores(name);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Additive migrations for databases created before these columns
	for _, col := range []struct {
		name string
		ddl  string
	}{
		{"name", "ALTER TABLE scores ADD COLUMN name TEXT NOT NULL DEFAULT 'PLAYER'"},
		{"coins", "ALTER TABLE scores ADD COLUMN coins INTEGER NOT NULL DEFAULT 0"},
		{"created_at", "ALTER TABLE scores ADD COLUMN created_at DATETIME"},
	} {
		ok, err := s.hasColumn("scores", col.name)
		if err != nil {
			return err
		}
		if !ok {
			if _, err := s.db.Exec(col.ddl); err != nil {
				return err
			}
		}
	}
	return nil
}

// hasColumn checks the live table schema via PRAGMA table_info.
func (s *Store) hasColumn(table, column string) (bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    any
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run. Zero and negative scores are not
// recorded. Returns the ID of the inserted row.
func (s *Store) SaveScore(name string, score, coins int) (int64, error) {
	if score <= 0 {
		return 0, fmt.Errorf("storage: refusing to record score %d", score)
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (name, score, coins) VALUES (?, ?, ?)",
		name, score, coins,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Leaderboard retrieves the top N runs. Results are ordered by score
// descending; equal scores keep insertion order, so the earlier run ranks
// higher.
func (s *Store) Leaderboard(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, coins, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Coins, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Best returns the highest recorded score, 0 if no runs exist.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates every recorded run for the given player name.
// A player with no runs gets zeroed stats, not an error.
func (s *Store) Stats(name string) (*PlayerStats, error) {
	stats := &PlayerStats{Name: name}

	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), AVG(score), COALESCE(SUM(coins), 0)
		 FROM scores WHERE name = ?`,
		name,
	).Scan(&stats.GamesPlayed, &stats.BestScore, &avg, &stats.TotalCoins)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}

	if avg.Valid {
		stats.AverageScore = math.Round(avg.Float64*10) / 10
	}

	return stats, nil
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or the
// textual DATETIME representation.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Append implements the session's score sink. Storage trouble is logged
// and swallowed; a failed write never interrupts play.
func (s *Store) Append(name string, score, coins int) bool {
	if score <= 0 {
		return false
	}
	if _, err := s.SaveScore(name, score, coins); err != nil {
		log.Warn("score not saved", "name", name, "score", score, "err", err)
		return false
	}
	return true
}

// HighScore implements the session's score sink, degrading to 0 when the
// database cannot be read.
func (s *Store) HighScore() int {
	best, err := s.Best()
	if err != nil {
		log.Warn("high score unavailable", "err", err)
		return 0
	}
	return best
}
