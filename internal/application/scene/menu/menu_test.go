package menu

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyunkim/fadegate/internal/application/scene"
	"github.com/dohyunkim/fadegate/internal/application/state"
	"github.com/dohyunkim/fadegate/internal/application/transition"
)

// recordingLoader captures requested scene names
type recordingLoader struct {
	names []string
}

func (l *recordingLoader) LoadAsync(name string) transition.Handle {
	l.names = append(l.names, name)
	return nil
}

func (l *recordingLoader) LoadImmediate(name string) error {
	return nil
}

func newTestMenu() (*Menu, *recordingLoader, *transition.Controller) {
	ld := &recordingLoader{}
	ctrl := transition.New(ld, 0.5)
	m := New(ctrl, 640, 480)
	m.OnEnter()
	return m, ld, ctrl
}

func TestMenu_MoveSelection(t *testing.T) {
	m, _, _ := newTestMenu()

	assert.Equal(t, itemStart, m.selected)

	m.moveSelection(1)
	assert.Equal(t, itemOptions, m.selected)

	m.moveSelection(1)
	assert.Equal(t, itemQuit, m.selected)

	// Wraps around in both directions
	m.moveSelection(1)
	assert.Equal(t, itemStart, m.selected)

	m.moveSelection(-1)
	assert.Equal(t, itemQuit, m.selected)
}

func TestMenu_ActivateStart(t *testing.T) {
	m, _, ctrl := newTestMenu()

	next, err := m.activate(itemStart)
	require.NoError(t, err)
	assert.Nil(t, next, "faded transitions never return a scene directly")
	assert.Equal(t, state.FadingOut, ctrl.Phase())
	assert.Equal(t, scene.NameStage, ctrl.Target())
}

func TestMenu_ActivateOptions(t *testing.T) {
	m, _, ctrl := newTestMenu()

	_, err := m.activate(itemOptions)
	require.NoError(t, err)
	assert.Equal(t, scene.NameOptions, ctrl.Target())
}

func TestMenu_ActivateQuit(t *testing.T) {
	m, _, _ := newTestMenu()

	_, err := m.activate(itemQuit)
	assert.ErrorIs(t, err, ebiten.Termination)
}

func TestMenu_ActivateWhileTransitioning(t *testing.T) {
	m, _, ctrl := newTestMenu()

	_, err := m.activate(itemStart)
	require.NoError(t, err)

	// A second activation mid-fade is rejected by the controller and
	// must not crash or change the running transition.
	_, err = m.activate(itemOptions)
	require.NoError(t, err)
	assert.Equal(t, scene.NameStage, ctrl.Target())
}

func TestItemAt(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{"start row", 300, 230, itemStart},
		{"options row", 300, 262, itemOptions},
		{"quit row", 300, 294, itemQuit},
		{"left of items", 100, 230, -1},
		{"between rows", 300, 245, -1},
		{"below items", 300, 400, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, itemAt(tt.x, tt.y))
		})
	}
}

func TestMenu_OnEnterResetsSelection(t *testing.T) {
	m, _, _ := newTestMenu()

	m.moveSelection(1)
	m.OnEnter()
	assert.Equal(t, itemStart, m.selected)
}
