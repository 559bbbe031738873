package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Skin selects the obstacle appearance. It has no physical effect.
type Skin uint8

const (
	SkinGreen Skin = iota
	SkinRed
)

var skinNames = [...]string{
	SkinGreen: "pipe-green",
	SkinRed:   "pipe-red",
}

// Skins returns every skin in catalog order.
func Skins() []Skin {
	return []Skin{SkinGreen, SkinRed}
}

// ParseSkin resolves a skin by its system name (e.g. "pipe-red").
func ParseSkin(name string) (Skin, error) {
	for i, n := range skinNames {
		if n == name {
			return Skin(i), nil
		}
	}
	return SkinGreen, fmt.Errorf("flappy: unknown skin %q", name)
}

// String returns the system name used for persistence.
func (s Skin) String() string {
	if int(s) < len(skinNames) {
		return skinNames[s]
	}
	return skinNames[SkinGreen]
}

// Title returns the display name.
func (s Skin) Title() string {
	switch s {
	case SkinRed:
		return "Red"
	default:
		return "Green"
	}
}

// Color returns the obstacle color for terminal rendering.
func (s Skin) Color() core.Color {
	switch s {
	case SkinRed:
		return core.ColorBrightRed
	default:
		return core.ColorGreen
	}
}

// Next returns the following skin, wrapping around.
func (s Skin) Next() Skin {
	return Skin((int(s) + 1) % len(skinNames))
}

// Prev returns the preceding skin, wrapping around.
func (s Skin) Prev() Skin {
	return Skin((int(s) + len(skinNames) - 1) % len(skinNames))
}
