package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 2, cfg.Display.Scale)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, "Fadegate", cfg.Display.Title)
	assert.Equal(t, 0.5, cfg.Transition.FadeDuration)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Equal(t, "Demo Stage", cfg.Name)
	assert.Equal(t, uint8(26), cfg.Background.R)
	assert.Equal(t, uint8(26), cfg.Background.G)
	assert.Equal(t, uint8(46), cfg.Background.B)
}

func TestLoader_LoadStage_Missing(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadStage("nope")
	assert.Error(t, err)
}

func TestLoader_LoadGame_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			"malformed yaml",
			"display: [not a mapping",
		},
		{
			"zero screen size",
			"display:\n  screenWidth: 0\n  screenHeight: 480\n  framerate: 60\n",
		},
		{
			"zero framerate",
			"display:\n  screenWidth: 640\n  screenHeight: 480\n  framerate: 0\n",
		},
		{
			"negative fade duration",
			"display:\n  screenWidth: 640\n  screenHeight: 480\n  framerate: 60\ntransition:\n  fadeDuration: -1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"game.yaml": &fstest.MapFile{Data: []byte(tt.yaml)},
			}
			_, err := NewFSLoader(fsys).LoadGame()
			assert.Error(t, err)
		})
	}
}

func TestLoader_LoadGame_DefaultsScale(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml": &fstest.MapFile{Data: []byte(
			"display:\n  screenWidth: 320\n  screenHeight: 240\n  framerate: 30\n",
		)},
	}

	cfg, err := NewFSLoader(fsys).LoadGame()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Display.Scale, "missing scale defaults to 1")
	assert.Equal(t, 0.0, cfg.Transition.FadeDuration)
}

func TestLoader_LoadGame_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}).LoadGame()
	assert.Error(t, err)
}
