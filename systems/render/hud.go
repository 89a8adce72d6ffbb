package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/systems"
	"github.com/automoto/dobok/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 6
	hudMargin    = 10
)

// DrawHUD renders the player's health bar and the controller debug readout.
func DrawHUD(sess *session.Session) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		playerEntry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		hp := components.Health.Get(playerEntry)

		// Background (dark gray)
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth), float32(hudBarHeight),
			color.RGBA{40, 40, 40, 255}, false)

		// Current HP (green)
		ratio := float32(hp.Current) / float32(hp.Max)
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)

		now := systems.Now(ecs.World)
		motion := components.Motion.Get(playerEntry)
		timers := components.ActionTimers.Get(playerEntry)
		combo := components.Combo.Get(playerEntry)

		var b strings.Builder
		fmt.Fprintf(&b, "stage %d/%d  targets %d  dobok %s  t=%.2f\n",
			sess.Stage(), sess.MaxStages(), systems.TargetsRemaining(ecs.World), components.Player.Get(playerEntry).Dobok, now)
		fmt.Fprintf(&b, "combo %d playing %s window %s\n", combo.Stage, combo.Playing, windowLabel(combo, now))
		fmt.Fprintf(&b, "jumps %d grounded %t gravity x%.2f\n", motion.JumpChargesRemaining, motion.IsGrounded, motion.GravityMultiplier)
		fmt.Fprintf(&b, "dash %s canDash %t airDashed %t  roll %s\n", timers.Dash.Phase, motion.CanDash, motion.HasAirDashed, timers.Roll.Phase)
		ebitenutil.DebugPrintAt(screen, b.String(), hudMargin, hudMargin+hudBarHeight+4)
	}
}

func windowLabel(combo *components.ComboData, now float64) string {
	if !combo.InWindow(now) {
		return "closed"
	}
	return fmt.Sprintf("%.2fs", combo.WindowDeadline-now)
}
