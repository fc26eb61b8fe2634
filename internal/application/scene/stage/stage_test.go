package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyunkim/fadegate/internal/application/transition"
	"github.com/dohyunkim/fadegate/internal/infrastructure/config"
)

type nopLoader struct{}

func (nopLoader) LoadAsync(name string) transition.Handle { return nil }
func (nopLoader) LoadImmediate(name string) error         { return nil }

func TestStage_UpdateAccumulatesTime(t *testing.T) {
	ctrl := transition.New(nopLoader{}, 0.5)
	s := New(ctrl, &config.StageConfig{ID: "demo", Name: "Demo Stage"}, 640, 480)
	s.OnEnter()

	for i := 0; i < 60; i++ {
		_, err := s.Update(1.0 / 60.0)
		require.NoError(t, err)
	}
	assert.InDelta(t, 1.0, s.elapsed, 1e-9)
}

func TestStage_OnEnterResetsTime(t *testing.T) {
	ctrl := transition.New(nopLoader{}, 0.5)
	s := New(ctrl, &config.StageConfig{ID: "demo"}, 640, 480)

	s.elapsed = 42
	s.OnEnter()
	assert.Equal(t, 0.0, s.elapsed)
}
