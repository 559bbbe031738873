package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is a single finished round. Player is empty for the local
// player and the SSH user name for remote sessions.
type ScoreEntry struct {
	ID         int64
	Player     string
	Difficulty string
	Score      int
	Skin       string
	CreatedAt  time.Time
}

// Stats aggregates the rounds played on one difficulty.
type Stats struct {
	Difficulty string
	Games      int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// SaveScore records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	return insertScore(s.db, e)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertScore(db execer, e ScoreEntry) (int64, error) {
	result, err := db.Exec(
		"INSERT INTO scores (player, difficulty, score, skin) VALUES (?, ?, ?, ?)",
		e.Player, e.Difficulty, e.Score, e.Skin,
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

// RoundRecord is what RecordRound learned while saving a round.
type RoundRecord struct {
	ID       int64
	PrevBest int // best score on the difficulty before this round, any player
	Plays    int // rounds recorded for the player, this one included
}

// RecordRound saves a finished round and reads the previous best and the
// player's play count in the same transaction, so two rounds finishing at
// once cannot both see the other's score as missing.
func (s *Store) RecordRound(e ScoreEntry) (RoundRecord, error) {
	var rec RoundRecord

	tx, err := s.db.Begin()
	if err != nil {
		return rec, fmt.Errorf("storage: cannot begin round: %w", err)
	}
	defer tx.Rollback()

	var best sql.NullInt64
	if err := tx.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?", e.Difficulty,
	).Scan(&best); err != nil {
		return rec, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	rec.PrevBest = int(best.Int64)

	if rec.ID, err = insertScore(tx, e); err != nil {
		return rec, err
	}

	if err := tx.QueryRow(
		"SELECT COUNT(*) FROM scores WHERE player = ?", e.Player,
	).Scan(&rec.Plays); err != nil {
		return rec, fmt.Errorf("storage: cannot count games: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return rec, fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return rec, nil
}

// TopScores retrieves the top N scores for a difficulty, best first.
// Equal scores keep the order they were recorded in.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, difficulty, score, skin, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves every score for a difficulty (no limit).
func (s *Store) AllScores(difficulty string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, player, difficulty, score, skin, created_at
		 FROM scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, id ASC`,
		difficulty,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Difficulty, &e.Score, &e.Skin, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score for a difficulty, or 0 if none exist.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE difficulty = ?",
		difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// GamesPlayed counts the rounds player has recorded across all difficulties.
func (s *Store) GamesPlayed(player string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM scores WHERE player = ?", player).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count games: %w", err)
	}
	return n, nil
}

// Stats returns aggregates for every difficulty that has been played.
func (s *Store) Stats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Games, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearScores deletes all scores for a difficulty. An empty difficulty
// clears every score.
func (s *Store) ClearScores(difficulty string) error {
	var err error
	if difficulty == "" {
		_, err = s.db.Exec("DELETE FROM scores")
	} else {
		_, err = s.db.Exec("DELETE FROM scores WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}
