// Package loader builds scenes by name through registered factories.
package loader

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/transition"
)

// ErrUnknownScene is returned when no factory is registered for a name.
var ErrUnknownScene = errors.New("unknown scene")

// Factory builds a scene. Factories run on a background goroutine for
// asynchronous loads, so they must not touch shared mutable state.
type Factory func() (scene.Scene, error)

// Registry maps scene names to factories and holds the most recently
// built scene until the game loop takes it.
type Registry struct {
	mu        sync.Mutex
	factories map[string]Factory
	built     scene.Scene
	gen       int
}

// NewRegistry creates an empty scene registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under the given name, replacing any previous
// registration.
func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// LoadAsync starts building the named scene on a background goroutine
// and returns a handle that reports completion. It returns nil when no
// factory is registered, which sends the caller down the synchronous
// fallback path.
func (r *Registry) LoadAsync(name string) transition.Handle {
	r.mu.Lock()
	f, ok := r.factories[name]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	r.gen++
	gen := r.gen
	r.built = nil
	r.mu.Unlock()

	h := &handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		s, err := f()
		if err != nil {
			log.Printf("[Loader] building scene %q failed: %v", name, err)
			return
		}
		r.store(gen, s)
	}()
	return h
}

// LoadImmediate builds the named scene synchronously.
func (r *Registry) LoadImmediate(name string) error {
	r.mu.Lock()
	f, ok := r.factories[name]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	r.gen++
	gen := r.gen
	r.built = nil
	r.mu.Unlock()

	s, err := f()
	if err != nil {
		return fmt.Errorf("building scene %q: %w", name, err)
	}
	r.store(gen, s)
	return nil
}

// Take removes and returns the most recently built scene.
// The second return is false when no completed load is waiting.
func (r *Registry) Take() (scene.Scene, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.built == nil {
		return nil, false
	}
	s := r.built
	r.built = nil
	return s, true
}

// store keeps the result only if no newer load has started since,
// so a cancelled transition cannot leak a stale scene into the next one.
func (r *Registry) store(gen int, s scene.Scene) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	r.built = s
}

type handle struct {
	done chan struct{}
}

func (h *handle) Done() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}
