package storage

import (
	"fmt"
	"time"
)

// Preference keys.
const (
	PrefSkin       = "chosen-pipe"
	PrefDifficulty = "difficulty"
)

// Preference returns the stored value for key. The bool is false when the
// key has never been set.
func (s *Store) Preference(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if isNoRows(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference stores value under key, replacing any previous value.
func (s *Store) SetPreference(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write preference %q: %w", key, err)
	}
	return nil
}

// UnlockedAchievement records when an achievement was first earned.
type UnlockedAchievement struct {
	ID         string
	UnlockedAt time.Time
}

// UnlockAchievement marks id as earned by player. It reports false if the
// player had already unlocked it.
func (s *Store) UnlockAchievement(player, id string) (bool, error) {
	res, err := s.db.Exec("INSERT OR IGNORE INTO achievements (player, id) VALUES (?, ?)", player, id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot unlock achievement %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot unlock achievement %q: %w", id, err)
	}
	return n > 0, nil
}

// Achievements lists the achievements player has unlocked, oldest first.
func (s *Store) Achievements(player string) ([]UnlockedAchievement, error) {
	rows, err := s.db.Query(
		"SELECT id, unlocked_at FROM achievements WHERE player = ? ORDER BY unlocked_at, id",
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var out []UnlockedAchievement
	for rows.Next() {
		var a UnlockedAchievement
		var at any
		if err := rows.Scan(&a.ID, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.UnlockedAt = parseTime(at)
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
