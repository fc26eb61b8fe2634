package director

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FadeOverlay is the full-screen black rectangle the transition
// controller ramps during a scene change. It doubles as the input gate:
// while BlocksInput is set the director withholds updates from the
// scene underneath.
type FadeOverlay struct {
	width   int
	height  int
	opacity float64
	blocks  bool
}

// NewFadeOverlay creates an overlay covering a screen of the given size.
func NewFadeOverlay(width, height int) *FadeOverlay {
	return &FadeOverlay{width: width, height: height}
}

// SetOpacity sets the overlay opacity, clamped to [0, 1].
func (o *FadeOverlay) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	o.opacity = opacity
}

// SetBlocksInput toggles the input gate.
func (o *FadeOverlay) SetBlocksInput(blocks bool) {
	o.blocks = blocks
}

// Opacity returns the current opacity.
func (o *FadeOverlay) Opacity() float64 {
	return o.opacity
}

// BlocksInput reports whether the overlay currently swallows input.
func (o *FadeOverlay) BlocksInput() bool {
	return o.blocks
}

// Draw renders the overlay on top of the current scene.
// Fully transparent overlays draw nothing.
func (o *FadeOverlay) Draw(screen *ebiten.Image) {
	if o.opacity <= 0 {
		return
	}
	a := uint8(o.opacity * 255)
	ebitenutil.DrawRect(screen, 0, 0, float64(o.width), float64(o.height), color.RGBA{0, 0, 0, a})
}
