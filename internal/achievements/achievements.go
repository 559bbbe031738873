// Package achievements defines play-count milestones and unlocks them
// against a persistent store.
package achievements

import "fmt"

// Achievement is a milestone earned after a number of finished rounds.
type Achievement struct {
	ID    string
	Title string
	Plays int
}

var catalog = []Achievement{
	{ID: "first-time", Title: "Played 1 time", Plays: 1},
	{ID: "five-times", Title: "Played 5 times", Plays: 5},
}

// All returns the catalog in unlock order.
func All() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an achievement by ID.
func Lookup(id string) (Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Earned returns every achievement whose threshold plays has reached.
func Earned(plays int) []Achievement {
	var out []Achievement
	for _, a := range catalog {
		if plays >= a.Plays {
			out = append(out, a)
		}
	}
	return out
}

// Unlocker persists unlocked achievements per player. It reports whether id
// was newly unlocked for that player.
type Unlocker interface {
	UnlockAchievement(player, id string) (bool, error)
}

// Record unlocks everything player has earned at plays and returns only the
// achievements that player had not unlocked before.
func Record(u Unlocker, player string, plays int) ([]Achievement, error) {
	var fresh []Achievement
	for _, a := range Earned(plays) {
		ok, err := u.UnlockAchievement(player, a.ID)
		if err != nil {
			return fresh, fmt.Errorf("achievements: %s: %w", a.ID, err)
		}
		if ok {
			fresh = append(fresh, a)
		}
	}
	return fresh, nil
}
