package loader

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyunkim/fadegate/internal/application/scene"
)

// stubScene is a minimal Scene for registry tests
type stubScene struct {
	name string
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(screen *ebiten.Image)              {}
func (s *stubScene) OnEnter()                               {}
func (s *stubScene) OnExit()                                {}

func waitDone(t *testing.T, h interface{ Done() bool }) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !h.Done() {
		if time.Now().After(deadline) {
			t.Fatal("load did not complete in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestRegistry_LoadAsync(t *testing.T) {
	r := NewRegistry()
	r.Register("stage", func() (scene.Scene, error) {
		return &stubScene{name: "stage"}, nil
	})

	h := r.LoadAsync("stage")
	require.NotNil(t, h)
	waitDone(t, h)

	s, ok := r.Take()
	require.True(t, ok)
	assert.Equal(t, "stage", s.(*stubScene).name)

	_, ok = r.Take()
	assert.False(t, ok, "Take drains the built scene")
}

func TestRegistry_LoadAsync_UnknownScene(t *testing.T) {
	r := NewRegistry()
	h := r.LoadAsync("nope")
	assert.Nil(t, h, "unknown scene yields no handle")
}

func TestRegistry_LoadAsync_FactoryError(t *testing.T) {
	r := NewRegistry()
	r.Register("bad", func() (scene.Scene, error) {
		return nil, assert.AnError
	})

	h := r.LoadAsync("bad")
	require.NotNil(t, h)
	waitDone(t, h)

	_, ok := r.Take()
	assert.False(t, ok, "failed build leaves nothing to take")
}

func TestRegistry_LoadImmediate(t *testing.T) {
	r := NewRegistry()
	r.Register("menu", func() (scene.Scene, error) {
		return &stubScene{name: "menu"}, nil
	})

	require.NoError(t, r.LoadImmediate("menu"))

	s, ok := r.Take()
	require.True(t, ok)
	assert.Equal(t, "menu", s.(*stubScene).name)
}

func TestRegistry_LoadImmediate_UnknownScene(t *testing.T) {
	r := NewRegistry()
	err := r.LoadImmediate("nope")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestRegistry_StaleLoadDropped(t *testing.T) {
	r := NewRegistry()
	release := make(chan struct{})
	r.Register("slow", func() (scene.Scene, error) {
		<-release
		return &stubScene{name: "slow"}, nil
	})
	r.Register("fast", func() (scene.Scene, error) {
		return &stubScene{name: "fast"}, nil
	})

	slow := r.LoadAsync("slow")
	require.NotNil(t, slow)

	// A newer load supersedes the slow one.
	require.NoError(t, r.LoadImmediate("fast"))
	close(release)
	waitDone(t, slow)

	s, ok := r.Take()
	require.True(t, ok)
	assert.Equal(t, "fast", s.(*stubScene).name, "stale result is dropped")

	_, ok = r.Take()
	assert.False(t, ok)
}
