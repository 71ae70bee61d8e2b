package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellHaptics_RingsBell(t *testing.T) {
	var buf bytes.Buffer
	h := NewBellHaptics(&buf)

	h.Pulse(10 * time.Millisecond)
	h.Pulse(5 * time.Millisecond)

	assert.Equal(t, "\a\a", buf.String())
}

func TestPulseCmd(t *testing.T) {
	h := &recordingHaptics{}

	assert.Nil(t, pulseCmd(nil, time.Millisecond))
	assert.Nil(t, pulseCmd(h, 0))

	cmd := pulseCmd(h, 10*time.Millisecond)
	require.NotNil(t, cmd)
	assert.Empty(t, h.Pulses(), "the pulse plays when the command runs")
	assert.Nil(t, cmd())
	assert.Equal(t, []time.Duration{10 * time.Millisecond}, h.Pulses())
}

func TestApp_HapticsHonorsConfig(t *testing.T) {
	env := testApp(t)
	assert.Same(t, env.haptics, env.app.haptics())

	env.app.Config.Haptics = false
	assert.IsType(t, NoHaptics{}, env.app.haptics())

	assert.IsType(t, NoHaptics{}, (&App{}).haptics())
}
