// Package storage provides SQLite-based persistence for scores, preferences
// and unlocked achievements.
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
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// One writer at a time; SSH sessions share the store
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist and upgrades
// databases written before rounds and achievements were kept per player.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			skin TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_difficulty ON scores(difficulty);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(difficulty, score DESC);

		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS achievements (
			player TEXT NOT NULL DEFAULT '',
			id TEXT NOT NULL,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player, id)
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	hasPlayer, err := s.hasColumn("scores", "player")
	if err != nil {
		return err
	}
	if !hasPlayer {
		if _, err := s.db.Exec("ALTER TABLE scores ADD COLUMN player TEXT NOT NULL DEFAULT ''"); err != nil {
			return err
		}
	}

	// The old achievements table is keyed by id alone; rebuild it so the
	// primary key covers the player.
	hasPlayer, err = s.hasColumn("achievements", "player")
	if err != nil {
		return err
	}
	if !hasPlayer {
		if _, err := s.db.Exec(`
			ALTER TABLE achievements RENAME TO achievements_legacy;
			CREATE TABLE achievements (
				player TEXT NOT NULL DEFAULT '',
				id TEXT NOT NULL,
				unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (player, id)
			);
			INSERT INTO achievements (player, id, unlocked_at)
				SELECT '', id, unlocked_at FROM achievements_legacy;
			DROP TABLE achievements_legacy;
		`); err != nil {
			return err
		}
	}

	_, err = s.db.Exec("CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player)")
	return err
}

// hasColumn reports whether table has a column called name.
func (s *Store) hasColumn(table, name string) (bool, error) {
	rows, err := s.db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return false, err
		}
		if col == name {
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

// parseTime converts a scanned DATETIME column, which the driver may return
// as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
