package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	BodyChar      = '●'
)

// RenderOptions carries presentation choices that live outside the simulation.
type RenderOptions struct {
	Skin  Skin
	Notes []string // extra lines for the game over panel
}

// Render draws a snapshot into dst. The bottom row is the ground; the
// playfield is scaled to the remaining rows.
func Render(dst *core.Screen, s Snapshot, opts RenderOptions) {
	dst.Clear()

	rows := PlayfieldRows(dst.Height())
	proj := core.NewProjection(s.Width, s.Height, dst.Width(), rows)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), GroundChar, core.ColorYellow)

	for _, p := range s.Pairs {
		drawPair(dst, proj, rows, p, s.PairWidth, opts.Skin.Color())
	}

	if s.Phase != PhaseIdle {
		drawBody(dst, proj, s.Body, s.Pose)
	}

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.Score))

	switch s.Phase {
	case PhaseIdle:
		drawPanel(dst, "F L A P P Y", "Enter: start  |  Space: flap  |  Q: quit")
	case PhaseGameOver:
		lines := append([]string{fmt.Sprintf("Score: %d", s.Score)}, opts.Notes...)
		lines = append(lines, "Enter: play again  |  B: menu")
		drawPanel(dst, "GAME OVER", lines...)
	}
}

// drawPair renders both segments of an obstacle pair.
func drawPair(dst *core.Screen, proj core.Projection, rows int, p Pair, width float64, color core.Color) {
	col := proj.Box(p.X, 0, width, 0)
	x0, w := col.X, col.W

	// Upper segment from the top of the screen down to the gap
	topEnd := proj.Y(p.TopY)
	if topEnd > 0 {
		dst.DrawRect(core.NewRect(x0, 0, w, topEnd), PipeChar, color)
		dst.DrawRect(core.NewRect(x0, topEnd-1, w, 1), PipeCapTop, color)
	}

	// Lower segment from below the gap down to the ground
	bottomStart := proj.Y(p.BottomY)
	if bottomStart < rows {
		dst.DrawRect(core.NewRect(x0, bottomStart, w, rows-bottomStart), PipeChar, color)
		dst.DrawRect(core.NewRect(x0, bottomStart, w, 1), PipeCapBottom, color)
	}
}

// drawBody renders the player with a head glyph chosen by pose.
func drawBody(dst *core.Screen, proj core.Projection, b Body, pose Pose) {
	r := proj.Box(b.X, b.Y, b.W, b.H)
	dst.DrawRect(r, BodyChar, core.ColorBrightYellow)
	dst.SetColor(r.Right()-1, r.Y, headGlyph(pose), core.ColorBrightYellow)
}

func headGlyph(pose Pose) rune {
	switch pose {
	case PoseAscending:
		return '◥'
	case PoseDescending:
		return '◢'
	default:
		return '▶'
	}
}

// drawPanel draws a boxed message in the center of the screen: the title,
// a blank line, then each line.
func drawPanel(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4

	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r)

	dst.DrawTextCentered(r.Y+1, title)
	for i, l := range lines {
		dst.DrawTextCentered(r.Y+3+i, l)
	}
}
