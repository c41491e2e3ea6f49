package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	assert.True(t, f.Empty())

	f.Set(ActionFire)
	f.Set(ActionMagnet)
	f.Set(ActionNone)
	assert.True(t, f.Has(ActionFire))
	assert.True(t, f.Has(ActionMagnet))
	assert.False(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionNone))

	// Frames are values
	copied := f
	f.Clear()
	assert.True(t, f.Empty())
	assert.True(t, copied.Has(ActionFire))

	other := NewInputFrame()
	other.Set(ActionMagnet)
	other.Set(ActionFire)
	assert.Equal(t, copied, other)
}

func TestInputFrameIgnoresUnknownActions(t *testing.T) {
	var f InputFrame
	f.Set(Action(99))
	f.Set(Action(-3))
	assert.True(t, f.Empty())
	assert.False(t, f.Has(Action(99)))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Magnet", ActionMagnet.String())
	assert.Equal(t, "Unknown", Action(42).String())
}

func TestRuntimeConfigNormalized(t *testing.T) {
	c := RuntimeConfig{ScreenW: 0, ScreenH: -4, TickRate: 0, Seed: 9}.Normalized()
	assert.Equal(t, RuntimeConfig{ScreenW: 1, ScreenH: 1, TickRate: DefaultTickRate, Seed: 9}, c)

	assert.InDelta(t, 1.0/30, RuntimeConfig{TickRate: 30}.DeltaT(), 1e-12)
	assert.InDelta(t, 1.0/60, RuntimeConfig{}.DeltaT(), 1e-12)
}

func TestColorANSI(t *testing.T) {
	assert.Equal(t, "", ColorDefault.ANSI())
	assert.Equal(t, "9", ColorBrightRed.ANSI())
	assert.Equal(t, "245", ColorGray.ANSI())
	assert.Equal(t, "", Color(200).ANSI())

	for _, c := range Colors() {
		assert.NotEmpty(t, c.ANSI(), "color %d", c)
	}
	assert.NotContains(t, Colors(), ColorDefault)
}
