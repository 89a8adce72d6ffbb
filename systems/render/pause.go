package render

import (
	"image/color"

	"github.com/automoto/dobok/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the overlay for paused, game over and victory states.
func DrawPause(sess *session.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		var msg string
		switch sess.State() {
		case session.Paused:
			msg = "PAUSED - press Esc to resume"
		case session.GameOver:
			msg = "GAME OVER - press R to restart"
		case session.Victory:
			msg = "VICTORY - press R to play again"
		default:
			return
		}

		width := float32(screen.Bounds().Dx())
		height := float32(screen.Bounds().Dy())

		// Draw semi-transparent overlay
		vector.FillRect(screen, 0, 0, width, height, color.RGBA{0, 0, 0, 160}, false)

		// DebugPrint glyphs are 6px wide
		x := (int(width) - len(msg)*6) / 2
		ebitenutil.DebugPrintAt(screen, msg, x, int(height)/2)
	}
}
