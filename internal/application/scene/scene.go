// Package scene defines the Scene interface for game screens.
//
// Each game screen (menu, options, stage, etc.) implements the Scene
// interface to handle its own update logic and rendering. Scenes are
// registered under a name so the loader can build them on demand.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Registered scene names.
const (
	NameMenu    = "menu"
	NameOptions = "options"
	NameStage   = "stage"
)

// Scene represents a game screen (menu, options, stage, etc.)
//
// The game loop delegates Update and Draw calls to the current scene.
// A scene may switch directly by returning a new Scene from Update;
// faded switches go through the transition controller instead.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene for an immediate cut, nil to stay on the
	// current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}
