package sim

import (
	"log"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/level"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/systems"
	"github.com/yohamta/donburi/ecs"
)

// FrameTrace is the observable controller state after one frame.
type FrameTrace struct {
	Frame int     `yaml:"frame"`
	Time  float64 `yaml:"time"`
	Stage int     `yaml:"stage"`

	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	VX       float64 `yaml:"vx"`
	VY       float64 `yaml:"vy"`
	Grounded bool    `yaml:"grounded"`
	Charges  int     `yaml:"charges"`
	Gravity  float64 `yaml:"gravity"`
	Facing   string  `yaml:"facing"`
	Dashing  bool    `yaml:"dashing"`
	Rolling  bool    `yaml:"rolling"`

	Attack     string `yaml:"attack"` // Playing phase
	ComboStage int    `yaml:"comboStage"`
	Window     bool   `yaml:"window"`

	Health int    `yaml:"health"`
	Dobok  string `yaml:"dobok"`
	Hits   []Hit  `yaml:"hits,omitempty"`

	State string `yaml:"state"`
}

// Hit is one landed attack.
type Hit struct {
	Phase  string `yaml:"phase"`
	Target string `yaml:"target"`
	Damage int    `yaml:"damage"`
}

// Result is the outcome of a script run.
type Result struct {
	Script string       `yaml:"script"`
	Frames []FrameTrace `yaml:"frames"`

	TotalHits  int    `yaml:"totalHits"`
	FinalStage int    `yaml:"finalStage"`
	FinalState string `yaml:"finalState"`
}

// Run replays script on a fresh session without persistence. The run stops
// early once the session reaches game over or victory.
func Run(levels []*level.Level, script Script) (*Result, error) {
	frames, err := script.Frames()
	if err != nil {
		return nil, err
	}

	sess := session.New(nil)
	if script.Stage > 0 {
		sess.SetStage(script.Stage)
	}

	var next Frame
	w, err := NewWorld(levels, sess, scriptedInput(&next))
	if err != nil {
		return nil, err
	}

	res := &Result{Script: script.Name}
	for i, f := range frames {
		next = f
		if err := w.Update(); err != nil {
			return nil, err
		}

		trace := w.trace(i + 1)
		res.TotalHits += len(trace.Hits)
		res.Frames = append(res.Frames, trace)

		if state := sess.State(); state == session.GameOver || state == session.Victory {
			break
		}
	}

	res.FinalStage = sess.Stage()
	res.FinalState = sess.State().String()
	log.Printf("[sim] %s: %d frames, %d hits, stage %d, %s",
		res.Script, len(res.Frames), res.TotalHits, res.FinalStage, res.FinalState)
	return res, nil
}

// scriptedInput writes *next into every player's input.
func scriptedInput(next *Frame) ecs.System {
	return func(e *ecs.ECS) {
		for entry := range components.PlayerInput.Iter(e.World) {
			input := components.PlayerInput.Get(entry)
			input.Advance()
			for _, id := range next.Held {
				input.CurrentInput[id] = true
			}
			input.AxisX = next.Axis
		}
	}
}

func (w *World) trace(frame int) FrameTrace {
	e := w.Player
	m := components.Motion.Get(e)
	combo := components.Combo.Get(e)
	obj := components.Object.Get(e)

	t := FrameTrace{
		Frame:      frame,
		Time:       systems.Now(w.ECS.World),
		Stage:      w.Session.Stage(),
		X:          obj.X,
		Y:          obj.Y,
		VX:         m.VelocityX,
		VY:         m.VelocityY,
		Grounded:   m.IsGrounded,
		Charges:    m.JumpChargesRemaining,
		Gravity:    m.GravityMultiplier,
		Facing:     m.Facing.String(),
		Dashing:    m.IsDashing,
		Rolling:    m.IsRolling,
		Attack:     combo.Playing.String(),
		ComboStage: combo.Stage,
		Window:     combo.WindowOpen,
		Health:     components.Health.Get(e).Current,
		Dobok:      components.Player.Get(e).Dobok,
		State:      w.Session.State().String(),
	}

	t.Hits = append(t.Hits, w.Hits()...)
	return t
}

