// Package transition drives faded scene changes.
//
// A Controller walks a fixed sequence for every request: fade the
// overlay to opaque, hand the target scene name to the loader, poll the
// load once per tick, then fade back in. The controller owns the
// overlay for the whole sequence; nothing else may write to it.
package transition

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/dohyunkim/fadegate/internal/application/state"
)

// ErrAlreadyTransitioning is returned by Request when a transition is
// still in flight. Overlapping requests are rejected rather than queued
// so two fades can never race on the shared overlay.
var ErrAlreadyTransitioning = errors.New("transition already in progress")

// Overlay is the full-screen rectangle that visually and functionally
// gates a transition. The rendering layer provides the implementation.
type Overlay interface {
	// SetOpacity sets the overlay opacity in [0, 1].
	SetOpacity(opacity float64)

	// SetBlocksInput toggles whether the overlay swallows input.
	SetBlocksInput(blocks bool)
}

// Handle reports completion of an asynchronous scene load.
type Handle interface {
	// Done reports whether the load has finished.
	Done() bool
}

// Loader builds scenes by name. LoadAsync returns nil when it cannot
// start an asynchronous load; the controller then falls back to
// LoadImmediate.
type Loader interface {
	LoadAsync(name string) Handle
	LoadImmediate(name string) error
}

// Controller runs the fade-out / load / fade-in sequence.
// It is driven by Update, called once per tick from the game loop,
// and is not safe for concurrent use.
type Controller struct {
	// OnLoaded is invoked once per transition, on the tick the scene
	// load completes (or immediately after the synchronous fallback).
	// The game loop uses it to swap in the freshly built scene while
	// the overlay is fully opaque.
	OnLoaded func()

	loader         Loader
	overlay        Overlay
	overlayFactory func() Overlay
	now            func() time.Time

	// defaultDuration has its own lock so live config reload can write
	// it from outside the game loop. Everything else on the controller
	// must stay on the loop.
	durMu           sync.Mutex
	defaultDuration float64

	phase     state.Phase
	target    string
	duration  float64
	rampStart time.Time
	handle    Handle
	opacity   float64
	blocking  bool

	factoryRan      bool
	warnedNoOverlay bool
}

// New creates a Controller that loads scenes through ld.
// defaultDuration is the fade duration, in seconds, used when a request
// does not carry its own.
func New(ld Loader, defaultDuration float64) *Controller {
	return &Controller{
		loader:          ld,
		defaultDuration: defaultDuration,
		now:             time.Now,
		phase:           state.Idle,
	}
}

// SetOverlay supplies an externally built overlay. When none is set the
// controller creates one through the overlay factory on first use.
func (c *Controller) SetOverlay(o Overlay) {
	c.overlay = o
}

// SetOverlayFactory sets the factory used to lazily create the overlay.
// The factory runs at most once.
func (c *Controller) SetOverlayFactory(f func() Overlay) {
	c.overlayFactory = f
}

// SetClock overrides the wall-clock source.
// Useful for testing fade timing deterministically.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// SetDefaultDuration changes the fade duration applied to requests that
// do not carry their own. Unlike the rest of the controller it is safe
// to call from other goroutines; live config reload goes through here.
func (c *Controller) SetDefaultDuration(d float64) {
	c.durMu.Lock()
	defer c.durMu.Unlock()
	c.defaultDuration = d
}

// DefaultDuration returns the configured default fade duration.
func (c *Controller) DefaultDuration() float64 {
	c.durMu.Lock()
	defer c.durMu.Unlock()
	return c.defaultDuration
}

// Phase returns the current transition phase.
func (c *Controller) Phase() state.Phase {
	return c.phase
}

// Target returns the scene name of the transition in flight, or ""
// when the controller is idle.
func (c *Controller) Target() string {
	return c.target
}

// Opacity returns the current overlay opacity.
func (c *Controller) Opacity() float64 {
	return c.opacity
}

// Blocking reports whether input should be withheld from the current
// scene. True from the instant a fade-to-opaque starts until opacity
// returns to exactly zero.
func (c *Controller) Blocking() bool {
	return c.blocking
}

// Request starts a faded transition to the named scene.
//
// An empty target is a caller error: it is logged and ignored, leaving
// the controller idle. A request while another transition is in flight
// returns ErrAlreadyTransitioning. duration <= 0 substitutes the
// default duration.
func (c *Controller) Request(target string, duration float64) error {
	if target == "" {
		log.Printf("[Transition] ignoring request with empty scene name")
		return nil
	}
	if c.phase != state.Idle {
		return ErrAlreadyTransitioning
	}
	if duration <= 0 {
		duration = c.DefaultDuration()
	}

	c.ensureOverlay()
	c.target = target
	c.duration = duration
	c.rampStart = c.now()
	c.setBlocks(true)
	c.setOpacity(0)
	c.phase = state.FadingOut
	return nil
}

// Cancel aborts any transition in flight, clearing the overlay and
// returning the controller to idle. A pending load result is dropped.
func (c *Controller) Cancel() {
	if c.phase == state.Idle {
		return
	}
	c.setOpacity(0)
	c.setBlocks(false)
	c.handle = nil
	c.target = ""
	c.phase = state.Idle
}

// Update advances the transition by one tick.
// It is a no-op while the controller is idle.
func (c *Controller) Update() {
	switch c.phase {
	case state.FadingOut:
		if c.stepRamp(0, 1) {
			c.beginLoad()
		}
	case state.Loading:
		if c.handle == nil || c.handle.Done() {
			c.handle = nil
			c.finishLoad()
		}
	case state.FadingIn:
		if c.stepRamp(1, 0) {
			c.setOpacity(0)
			c.setBlocks(false)
			c.target = ""
			c.phase = state.Idle
		}
	}
}

// stepRamp samples the linear opacity ramp against wall-clock elapsed
// time and reports whether the ramp has finished. A missing overlay
// skips the ramp entirely; the load still proceeds.
func (c *Controller) stepRamp(from, to float64) bool {
	progress := 1.0
	if c.overlay != nil && c.duration > 0 {
		elapsed := c.now().Sub(c.rampStart).Seconds()
		progress = clamp01(elapsed / c.duration)
	}
	c.setOpacity(from + (to-from)*progress)
	return progress >= 1
}

func (c *Controller) beginLoad() {
	c.handle = c.loader.LoadAsync(c.target)
	if c.handle == nil {
		// Loader could not start an async load. Load synchronously and
		// keep going so the overlay never gets stuck opaque.
		log.Printf("[Transition] async load unavailable for %q, loading immediately", c.target)
		if err := c.loader.LoadImmediate(c.target); err != nil {
			log.Printf("[Transition] immediate load of %q failed: %v", c.target, err)
		}
		c.finishLoad()
		return
	}
	c.phase = state.Loading
}

func (c *Controller) finishLoad() {
	if c.OnLoaded != nil {
		c.OnLoaded()
	}
	c.rampStart = c.now()
	c.phase = state.FadingIn
}

func (c *Controller) ensureOverlay() {
	if c.overlay != nil {
		return
	}
	if c.overlayFactory != nil && !c.factoryRan {
		c.factoryRan = true
		c.overlay = c.overlayFactory()
	}
	if c.overlay == nil && !c.warnedNoOverlay {
		log.Printf("[Transition] no overlay available, transitions will not fade")
		c.warnedNoOverlay = true
	}
}

func (c *Controller) setOpacity(opacity float64) {
	c.opacity = opacity
	if c.overlay != nil {
		c.overlay.SetOpacity(opacity)
	}
}

func (c *Controller) setBlocks(blocks bool) {
	c.blocking = blocks
	if c.overlay != nil {
		c.overlay.SetBlocksInput(blocks)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
