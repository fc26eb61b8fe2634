// Package stage provides the in-game stage scene.
package stage

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/transition"
	"github.com/dohyunkim/fadegate/internal/infrastructure/config"
)

var colorMarker = color.RGBA{100, 200, 100, 255}

// Stage is a stage scene built from a stage config.
// Escape fades back to the menu.
type Stage struct {
	ctrl    *transition.Controller
	cfg     *config.StageConfig
	screenW int
	screenH int
	elapsed float64
}

// New creates a stage scene from its config.
func New(ctrl *transition.Controller, cfg *config.StageConfig, screenW, screenH int) *Stage {
	return &Stage{
		ctrl:    ctrl,
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update advances the stage and handles the exit key.
func (s *Stage) Update(dt float64) (scene.Scene, error) {
	s.elapsed += dt

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := s.ctrl.Request(scene.NameMenu, 0); err != nil {
			log.Printf("[Stage] exit rejected: %v", err)
		}
	}

	return nil, nil
}

// Draw renders the stage background and name.
func (s *Stage) Draw(screen *ebiten.Image) {
	bg := s.cfg.Background
	screen.Fill(color.RGBA{bg.R, bg.G, bg.B, 255})

	// A bobbing marker so the stage visibly animates
	y := float64(s.screenH)/2 + 20*math.Sin(s.elapsed*2)
	ebitenutil.DrawRect(screen, float64(s.screenW)/2-8, y-8, 16, 16, colorMarker)

	ebitenutil.DebugPrintAt(screen, s.cfg.Name, s.screenW/2-len(s.cfg.Name)*3, 100)
	ebitenutil.DebugPrintAt(screen, "ESC: Back to menu", s.screenW/2-55, s.screenH-30)
}

// OnEnter is called when entering this scene.
func (s *Stage) OnEnter() {
	s.elapsed = 0
	log.Printf("[Stage] entered %q", s.cfg.ID)
}

// OnExit is called when leaving this scene.
func (s *Stage) OnExit() {}
