package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/dobok/config"
	"github.com/automoto/dobok/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

var (
	tuningPath string
	fresh      bool
)

var rootCmd = &cobra.Command{
	Use:   "dobok",
	Short: "Dobok motion and combo demo",
	Long:  `Play the training stages with keyboard or gamepad. Tuning changes are picked up while the game runs.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
		ebiten.SetWindowTitle("Dobok")
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
		ebiten.SetTPS(config.Physics.TickRate)

		scene := scenes.NewDojoScene(tuningPath, fresh)
		defer func() {
			if err := scene.Close(); err != nil {
				log.Printf("Warning: Could not stop tuning watcher: %v", err)
			}
		}()
		return ebiten.RunGame(NewGame(scene))
	},
}

func init() {
	rootCmd.Flags().StringVar(&tuningPath, "tuning", "", "YAML tuning file, reloaded on change")
	rootCmd.Flags().BoolVar(&fresh, "fresh", false, "Ignore saved progress")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
