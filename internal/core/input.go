package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionScreenshot
)

var actionNames = [...]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionJump:       "Jump",
	ActionConfirm:    "Confirm",
	ActionBack:       "Back",
	ActionRestart:    "Restart",
	ActionQuit:       "Quit",
	ActionScreenshot: "Screenshot",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}
