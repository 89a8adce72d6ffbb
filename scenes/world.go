package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/dobok/assets"
	cfg "github.com/automoto/dobok/config"
	"github.com/automoto/dobok/session"
	"github.com/automoto/dobok/sim"
	"github.com/automoto/dobok/systems/input"
	"github.com/automoto/dobok/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// AppName names the save data directory.
const AppName = "dobok"

// DojoScene is the interactive demo: keyboard or gamepad input, the stage,
// characters, attack area and a debug HUD.
type DojoScene struct {
	world   *sim.World
	watcher *cfg.TuningWatcher

	tuningPath string
	fresh      bool
	once       sync.Once
}

// NewDojoScene creates the scene. tuningPath, when set, is applied and
// watched for changes. fresh skips saved progress.
func NewDojoScene(tuningPath string, fresh bool) *DojoScene {
	return &DojoScene{tuningPath: tuningPath, fresh: fresh}
}

func (ds *DojoScene) Update() {
	ds.once.Do(ds.configure)
	ds.applyTuningUpdates()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if state := ds.world.Session.State(); state == session.GameOver || state == session.Victory {
			if err := ds.world.Restart(); err != nil {
				log.Printf("[scene] Restart failed: %v", err)
			}
			return
		}
	}

	if err := ds.world.Update(); err != nil {
		log.Printf("[scene] Update failed: %v", err)
	}
}

func (ds *DojoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.world == nil {
		return
	}
	ds.world.ECS.Draw(screen)
}

// Close stops the tuning watcher.
func (ds *DojoScene) Close() error {
	if ds.watcher != nil {
		return ds.watcher.Close()
	}
	return nil
}

func (ds *DojoScene) configure() {
	if ds.tuningPath != "" {
		t, err := cfg.LoadTuning(ds.tuningPath)
		if err != nil {
			log.Printf("Warning: Could not load tuning: %v", err)
		} else {
			applyTuning(t)
		}

		if ds.watcher, err = cfg.WatchTuning(ds.tuningPath); err != nil {
			log.Printf("Warning: Could not watch tuning: %v", err)
		}
	}

	var store session.Store
	if m, err := session.OpenStore(AppName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		store = m
	}
	sess := session.New(store)

	world, err := sim.NewWorld(assets.MustLoadLevels(), sess, input.UpdateInput)
	if err != nil {
		panic("failed to build stage: " + err.Error())
	}
	world.OnStageLoaded = addRenderers(sess)
	ds.world = world

	// Rebuild so the renderers are attached, resuming saved progress if any
	if ds.fresh || store == nil {
		err = world.Restart()
	} else {
		err = world.Continue()
	}
	if err != nil {
		log.Printf("Warning: Could not resume saved progress: %v", err)
		if err := world.Restart(); err != nil {
			panic("failed to build stage: " + err.Error())
		}
	}
}

func addRenderers(sess *session.Session) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		e.AddRenderer(cfg.Default, render.DrawLevel)
		e.AddRenderer(cfg.Default, render.DrawCharacters)
		e.AddRenderer(cfg.Default, render.DrawAttackArea)
		e.AddRenderer(cfg.Default, render.DrawHUD(sess))
		e.AddRenderer(cfg.Default, render.DrawPause(sess))
	}
}

// applyTuningUpdates installs reloaded tuning between frames.
func (ds *DojoScene) applyTuningUpdates() {
	if ds.watcher == nil {
		return
	}
	for {
		select {
		case t, ok := <-ds.watcher.Updates:
			if !ok {
				ds.watcher = nil
				return
			}
			applyTuning(t)
		case err, ok := <-ds.watcher.Errors:
			if !ok {
				ds.watcher = nil
				return
			}
			log.Printf("[config] Tuning reload rejected: %v", err)
		default:
			return
		}
	}
}

func applyTuning(t cfg.Tuning) {
	cfg.Apply(t)
	ebiten.SetTPS(t.Physics.TickRate)
}
