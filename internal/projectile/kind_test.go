package projectile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindTableComplete(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, 16)

	seen := make(map[string]bool)
	for _, k := range kinds {
		info := Info(k)
		assert.NotEmpty(t, info.Name, "kind %d", int(k))
		assert.False(t, seen[info.Name], "duplicate name %s", info.Name)
		seen[info.Name] = true

		assert.Greater(t, info.Width, 0.0, info.Name)
		assert.Greater(t, info.Height, 0.0, info.Name)
		assert.NotNil(t, info.Step, info.Name)
		assert.NotNil(t, info.Bounds, info.Name)
		assert.LessOrEqual(t, info.Damage, info.MaxDamage, info.Name)
		if info.Shape == ShapeOrb {
			assert.Equal(t, info.Width, info.Height, info.Name)
		}
		if info.MagnetDegreesPerSec > 0 {
			assert.GreaterOrEqual(t, info.MagnetDegreesPerSec, 55.0, info.Name)
			assert.LessOrEqual(t, info.MagnetDegreesPerSec, 70.0, info.Name)
		}
	}
}

func TestRefractableKinds(t *testing.T) {
	for _, k := range Kinds() {
		assert.Equal(t, k.TracksReflection(), Info(k).Refractable, k.String())
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("PADDLE_LASER")
	require.NoError(t, err)
	assert.Equal(t, PaddleLaserBullet, got)

	_, err = ParseKind("banana")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestInfoPanicsOnUnknownKind(t *testing.T) {
	assert.Panics(t, func() { Info(Kind(99)) })
	assert.Equal(t, "kind(99)", Kind(99).String())
}
