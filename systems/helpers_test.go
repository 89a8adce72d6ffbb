package systems

import (
	"testing"

	"github.com/automoto/dobok/components"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testFloorY = 200.0
	testTile   = 16
)

// testWorld is a 640x360 space with a floor across the bottom and a player
// standing on it at x=100.
type testWorld struct {
	ecs    *ecs.ECS
	sess   *session.Session
	player *donburi.Entry
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	saved := cfg.Current()
	t.Cleanup(func() { cfg.Apply(saved) })
	cfg.Apply(cfg.Defaults())

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, testTile, testTile)
	factory.CreateClock(e)
	factory.CreateSolid(e, 0, testFloorY, 640, testTile)
	RegisterEventHandlers(e.World)

	player := factory.CreatePlayer(e, 100, testFloorY-cfg.Player.CollisionHeight)

	return &testWorld{ecs: e, sess: session.New(nil), player: player}
}

func (tw *testWorld) motion() *components.MotionData {
	return components.Motion.Get(tw.player)
}

func (tw *testWorld) combo() *components.ComboData {
	return components.Combo.Get(tw.player)
}

func (tw *testWorld) timers() *components.ActionTimersData {
	return components.ActionTimers.Get(tw.player)
}

func (tw *testWorld) object() *components.ObjectData {
	return components.Object.Get(tw.player)
}

func (tw *testWorld) now() float64 {
	return Now(tw.ecs.World)
}

// press sets the held actions for the next frame.
func (tw *testWorld) press(actions ...cfg.ActionID) {
	input := components.PlayerInput.Get(tw.player)
	input.Advance()
	for _, a := range actions {
		input.CurrentInput[a] = true
	}
}

// step runs one frame of the gameplay systems in the documented order.
func (tw *testWorld) step() {
	UpdateClock(tw.ecs)
	UpdatePlayer(tw.ecs)
	UpdateActionTimers(tw.ecs)
	UpdateAttackClips(tw.ecs)
	UpdateCombo(tw.ecs)
	UpdateMotion(tw.ecs)
	UpdatePhysics(tw.ecs)
	UpdateCombat(tw.ecs)
	UpdateDeaths(tw.sess)(tw.ecs)
	UpdateDobokPickups(tw.ecs)
	UpdateStageProgress(tw.sess)(tw.ecs)
	UpdateObjects(tw.ecs)
}

// frames presses the actions for one frame then releases for n-1 frames.
func (tw *testWorld) frames(n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		if i == 0 {
			tw.press(actions...)
		} else {
			tw.press()
		}
		tw.step()
	}
}

// secondsToFrames rounds a duration up to whole frames.
func secondsToFrames(d float64) int {
	return int(d*float64(cfg.Physics.TickRate)) + 1
}

// createWall places a solid column standing on the floor at x.
func createWall(tw *testWorld, x float64) {
	factory.CreateSolid(tw.ecs, x, testFloorY-64, testTile, 64)
}
