package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{Idle, "Idle"},
		{FadingOut, "FadingOut"},
		{Loading, "Loading"},
		{FadingIn, "FadingIn"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Phase(0), Idle)
	assert.Equal(t, Phase(1), FadingOut)
	assert.Equal(t, Phase(2), Loading)
	assert.Equal(t, Phase(3), FadingIn)
}
