// Package director provides the main game loop manager.
//
// The director owns the current scene, the transition controller, and
// the fade overlay, and delegates update and draw calls. Scene swaps
// happen either immediately (a scene returns its successor) or through
// the controller's fade sequence, in which case the swap lands on the
// tick the load completes, while the overlay is fully opaque.
package director

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dohyunkim/fadegate/internal/application/loader"
	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/transition"
)

// Director implements ebiten.Game and manages scene transitions.
type Director struct {
	current  scene.Scene
	registry *loader.Registry
	ctrl     *transition.Controller
	overlay  *FadeOverlay
	screenW  int
	screenH  int
	dt       float64
}

// New creates a Director showing the given initial scene.
// The initial scene's OnEnter is called immediately. The controller is
// wired to the director's overlay and scene registry.
func New(initial scene.Scene, reg *loader.Registry, ctrl *transition.Controller, screenW, screenH int) *Director {
	d := &Director{
		current:  initial,
		registry: reg,
		ctrl:     ctrl,
		overlay:  NewFadeOverlay(screenW, screenH),
		screenW:  screenW,
		screenH:  screenH,
		dt:       1.0 / 60.0, // Default to 60 FPS
	}
	ctrl.SetOverlayFactory(func() transition.Overlay {
		return d.overlay
	})
	ctrl.OnLoaded = func() {
		if next, ok := d.registry.Take(); ok {
			d.swap(next)
		}
	}
	d.current.OnEnter()
	return d
}

// Update advances the transition controller and the current scene.
// Implements ebiten.Game interface.
func (d *Director) Update() error {
	d.ctrl.Update()

	// The scene is inert while the overlay gates input.
	if d.ctrl.Blocking() {
		return nil
	}

	next, err := d.current.Update(d.dt)
	if err != nil {
		return err
	}

	// Immediate cut, no fade
	if next != nil {
		d.swap(next)
	}

	return nil
}

// Draw renders the current scene and the fade overlay on top.
// Implements ebiten.Game interface.
func (d *Director) Draw(screen *ebiten.Image) {
	if d.current != nil {
		d.current.Draw(screen)
	}
	d.overlay.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (d *Director) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.screenW, d.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (d *Director) SetDT(dt float64) {
	d.dt = dt
}

// Current returns the active scene.
func (d *Director) Current() scene.Scene {
	return d.current
}

// Overlay returns the fade overlay owned by the director.
func (d *Director) Overlay() *FadeOverlay {
	return d.overlay
}

func (d *Director) swap(next scene.Scene) {
	if d.current != nil {
		d.current.OnExit()
	}
	d.current = next
	d.current.OnEnter()
}
