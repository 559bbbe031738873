package config

import "fmt"

// ParsePreset converts a CLI/menu string into a preset.
// The empty string means "use the config as loaded" and maps to normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyFlappyPreset modifies the ramp based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	d := &cfg.Difficulty
	switch preset {
	case DifficultyEasy:
		d.IntervalAccel *= 0.5
		d.VelocityAccel *= 0.5
	case DifficultyHard:
		d.IntervalAccel *= 2
		d.VelocityAccel *= 2
		d.InitialVelocity *= 1.5
		if d.MaxSpeed < -d.InitialVelocity {
			d.MaxSpeed = -d.InitialVelocity
		}
	case DifficultyFixed:
		d.IntervalAccel = 0
		d.VelocityAccel = 0
	}
}

// Next returns the preset after p in menu order, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	return p.offset(1)
}

// Prev returns the preset before p in menu order, wrapping around.
func (p DifficultyPreset) Prev() DifficultyPreset {
	return p.offset(-1)
}

func (p DifficultyPreset) offset(step int) DifficultyPreset {
	all := Presets()
	for i, q := range all {
		if q == p {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return DifficultyNormal
}
