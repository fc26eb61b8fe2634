// Package menu provides the main menu scene.
package menu

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/transition"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorItem     = color.RGBA{60, 60, 90, 255}
	colorSelected = color.RGBA{100, 100, 160, 255}
)

// Menu item indices
const (
	itemStart = iota
	itemOptions
	itemQuit
	itemCount
)

// Menu item layout
const (
	itemX = 250.0
	itemY = 220.0
	itemW = 140.0
	itemH = 22.0
	rowH  = 32.0
)

var itemLabels = [itemCount]string{"START", "OPTIONS", "QUIT"}

// Menu is the main menu scene. Start and Options request faded
// transitions through the controller; Quit terminates the game.
type Menu struct {
	ctrl     *transition.Controller
	screenW  int
	screenH  int
	selected int
	elapsed  float64
}

// New creates the main menu scene.
func New(ctrl *transition.Controller, screenW, screenH int) *Menu {
	return &Menu{
		ctrl:    ctrl,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update handles menu navigation and selection.
func (m *Menu) Update(dt float64) (scene.Scene, error) {
	m.elapsed += dt

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		m.moveSelection(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		m.moveSelection(1)
	}

	mx, my := ebiten.CursorPosition()
	if item := itemAt(mx, my); item >= 0 {
		m.selected = item
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			return m.activate(item)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return m.activate(m.selected)
	}

	return nil, nil
}

// Draw renders the menu.
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ebitenutil.DebugPrintAt(screen, "F A D E G A T E", m.screenW/2-45, 140)

	for i := 0; i < itemCount; i++ {
		y := itemY + float64(i)*rowH
		c := colorItem
		if i == m.selected {
			c = colorSelected
			// Pulse the selected row
			pulse := 0.85 + 0.15*math.Sin(m.elapsed*6)
			c = color.RGBA{
				uint8(float64(colorSelected.R) * pulse),
				uint8(float64(colorSelected.G) * pulse),
				uint8(float64(colorSelected.B) * pulse),
				255,
			}
		}
		ebitenutil.DrawRect(screen, itemX, y, itemW, itemH, c)
		ebitenutil.DebugPrintAt(screen, itemLabels[i], int(itemX)+10, int(y)+4)
	}

	ebitenutil.DebugPrintAt(screen, "W/S: Move | Enter: Select", m.screenW/2-80, m.screenH-30)
}

// OnEnter is called when entering this scene.
func (m *Menu) OnEnter() {
	m.selected = itemStart
	m.elapsed = 0
}

// OnExit is called when leaving this scene.
func (m *Menu) OnExit() {}

func (m *Menu) moveSelection(delta int) {
	m.selected = (m.selected + delta + itemCount) % itemCount
}

func (m *Menu) activate(item int) (scene.Scene, error) {
	switch item {
	case itemStart:
		if err := m.ctrl.Request(scene.NameStage, 0); err != nil {
			log.Printf("[Menu] start rejected: %v", err)
		}
	case itemOptions:
		if err := m.ctrl.Request(scene.NameOptions, 0); err != nil {
			log.Printf("[Menu] options rejected: %v", err)
		}
	case itemQuit:
		return nil, ebiten.Termination
	}
	return nil, nil
}

// itemAt returns the menu item under the given screen position,
// or -1 when the position misses every row.
func itemAt(x, y int) int {
	fx, fy := float64(x), float64(y)
	if fx < itemX || fx >= itemX+itemW {
		return -1
	}
	for i := 0; i < itemCount; i++ {
		top := itemY + float64(i)*rowH
		if fy >= top && fy < top+itemH {
			return i
		}
	}
	return -1
}
