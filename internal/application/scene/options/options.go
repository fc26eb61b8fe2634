// Package options provides the options scene.
package options

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/settings"
	"github.com/dohyunkim/fadegate/internal/application/transition"
)

var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorEntry    = color.RGBA{60, 60, 90, 255}
	colorSelected = color.RGBA{100, 100, 160, 255}
)

// Option entry indices
const (
	entryMusic = iota
	entrySound
	entryFullscreen
	entryBack
	entryCount
)

const (
	entryX = 200.0
	entryY = 180.0
	entryW = 240.0
	entryH = 22.0
	rowH   = 32.0

	volumeStep = 0.1
)

// Options is the options scene. Changes are applied to the settings
// manager as they happen and persisted once, when the scene exits.
type Options struct {
	ctrl     *transition.Controller
	sm       *settings.Manager
	screenW  int
	screenH  int
	selected int
	dirty    bool
}

// New creates the options scene.
func New(ctrl *transition.Controller, sm *settings.Manager, screenW, screenH int) *Options {
	return &Options{
		ctrl:    ctrl,
		sm:      sm,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update handles option navigation and adjustment.
func (o *Options) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		o.selected = (o.selected - 1 + entryCount) % entryCount
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		o.selected = (o.selected + 1) % entryCount
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		o.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.adjust(1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if o.selected == entryFullscreen {
			o.adjust(1)
		}
		if o.selected == entryBack {
			o.back()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		o.back()
	}

	return nil, nil
}

// Draw renders the options entries.
func (o *Options) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ebitenutil.DebugPrintAt(screen, "O P T I O N S", o.screenW/2-40, 120)

	s := o.sm.Get()
	labels := [entryCount]string{
		fmt.Sprintf("MUSIC VOLUME   < %3.0f%% >", s.MusicVolume*100),
		fmt.Sprintf("SOUND VOLUME   < %3.0f%% >", s.SoundVolume*100),
		fmt.Sprintf("FULLSCREEN       [%s]", onOff(s.Fullscreen)),
		"BACK",
	}

	for i := 0; i < entryCount; i++ {
		y := entryY + float64(i)*rowH
		c := colorEntry
		if i == o.selected {
			c = colorSelected
		}
		ebitenutil.DrawRect(screen, entryX, y, entryW, entryH, c)
		ebitenutil.DebugPrintAt(screen, labels[i], int(entryX)+10, int(y)+4)
	}

	ebitenutil.DebugPrintAt(screen, "A/D: Adjust | ESC: Back", o.screenW/2-75, o.screenH-30)
}

// OnEnter is called when entering this scene.
func (o *Options) OnEnter() {
	o.selected = entryMusic
	o.dirty = false
}

// OnExit saves any pending changes.
func (o *Options) OnExit() {
	if !o.dirty {
		return
	}
	if err := o.sm.Save(); err != nil {
		log.Printf("[Options] saving settings failed: %v", err)
	}
}

// adjust changes the selected entry by one step in the given direction.
func (o *Options) adjust(dir int) {
	s := o.sm.Get()
	switch o.selected {
	case entryMusic:
		o.sm.SetMusicVolume(s.MusicVolume + float64(dir)*volumeStep)
		o.dirty = true
	case entrySound:
		o.sm.SetSoundVolume(s.SoundVolume + float64(dir)*volumeStep)
		o.dirty = true
	case entryFullscreen:
		o.sm.SetFullscreen(!s.Fullscreen)
		ebiten.SetFullscreen(o.sm.Get().Fullscreen)
		o.dirty = true
	}
}

func (o *Options) back() {
	if err := o.ctrl.Request(scene.NameMenu, 0); err != nil {
		log.Printf("[Options] back rejected: %v", err)
	}
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}
