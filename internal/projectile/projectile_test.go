package projectile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

const tol = 1e-9

func TestSetVelocityRightVector(t *testing.T) {
	dirs := []core.Vector2D{
		{X: 0, Y: 1},
		{X: 1, Y: 0},
		core.Normalize(core.NewVector2D(-3, 4)),
		core.Normalize(core.NewVector2D(1, -1)),
	}

	p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))
	for _, d := range dirs {
		p.SetVelocity(d, 7)
		right := p.GetRightVector()
		assert.InDelta(t, 0, core.Dot(right, d), tol)
		assert.InDelta(t, 1, core.Magnitude(right), tol)
		assert.InDelta(t, d.Y, right.X, tol)
		assert.InDelta(t, -d.X, right.Y, tol)
		assert.InDelta(t, 7, p.GetVelocityMagnitude(), tol)
	}
}

func TestSetVelocityFromVector(t *testing.T) {
	p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))

	t.Run("regular vector", func(t *testing.T) {
		p.SetVelocityFromVector(core.NewVector2D(3, 4))
		assert.InDelta(t, 5, p.GetVelocityMagnitude(), tol)
		assert.InDelta(t, 0.6, p.GetVelocityDirection().X, tol)
		assert.InDelta(t, 0.8, p.GetVelocityDirection().Y, tol)
		assert.InDelta(t, 0.8, p.GetRightVector().X, tol)
		assert.InDelta(t, -0.6, p.GetRightVector().Y, tol)
	})

	t.Run("near zero keeps direction", func(t *testing.T) {
		before := p.GetVelocityDirection()
		beforeRight := p.GetRightVector()
		p.SetVelocityFromVector(core.NewVector2D(1e-9, 0))
		assert.Less(t, p.GetVelocityMagnitude(), core.Epsilon)
		assert.Equal(t, before, p.GetVelocityDirection())
		assert.Equal(t, beforeRight, p.GetRightVector())
	})
}

func TestRectBoundingLines(t *testing.T) {
	p := New(PaddleLaserBullet, core.NewPoint2D(10, 20), core.NewVector2D(0, 1))
	p.SetDimensions(2, 4)

	bl := p.BuildBoundingLines()
	require.Equal(t, 2, bl.NumLines())

	left := bl.Line(0)
	right := bl.Line(1)
	assert.Equal(t, core.NewPoint2D(9, 18), left.P1)
	assert.Equal(t, core.NewPoint2D(9, 22), left.P2)
	assert.Equal(t, core.NewPoint2D(11, 18), right.P1)
	assert.Equal(t, core.NewPoint2D(11, 22), right.P2)
	for i := 0; i < bl.NumLines(); i++ {
		assert.True(t, bl.Normal(i).IsZero())
	}
}

func TestRectBoundingLinesFollowDirection(t *testing.T) {
	p := New(LaserTurretBullet, core.NewPoint2D(0, 0), core.NewVector2D(1, 0))
	p.SetDimensions(2, 4)

	bl := p.BuildBoundingLines()
	require.Equal(t, 2, bl.NumLines())
	for i := 0; i < bl.NumLines(); i++ {
		seg := bl.Line(i)
		assert.InDelta(t, 4, core.Magnitude(seg.P2.Sub(seg.P1)), tol)
		assert.InDelta(t, 1, math.Abs(seg.P1.Y), tol)
	}
}

func TestOrbBoundingLines(t *testing.T) {
	p := New(BossOrb, core.NewPoint2D(5, 5), core.NewVector2D(1, 0))
	p.SetDimensions(2, 2)

	bl := p.BuildBoundingLines()
	require.Equal(t, 6, bl.NumLines())

	for i := 0; i < bl.NumLines(); i++ {
		seg := bl.Line(i)
		assert.InDelta(t, 1, core.Magnitude(seg.P1.Sub(p.GetPosition())), tol)
		// A regular hexagon's side equals its circumradius.
		assert.InDelta(t, 1, core.Magnitude(seg.P2.Sub(seg.P1)), tol)
		assert.Equal(t, bl.Line((i+1)%6).P1, seg.P2)
	}
	assert.InDelta(t, 6, bl.Line(0).P1.X, tol)
	assert.InDelta(t, 5, bl.Line(0).P1.Y, tol)
}

func TestOrbBoundingLinesPanicsWhenNotRound(t *testing.T) {
	p := New(BossOrb, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))
	p.SetDimensions(2, 3)
	assert.Panics(t, func() { p.BuildBoundingLines() })
}

func TestTickLinear(t *testing.T) {
	p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))
	p.SetVelocity(core.NewVector2D(0, 1), 10)

	p.Tick(0.5, nil)

	assert.InDelta(t, 0, p.GetPosition().X, tol)
	assert.InDelta(t, 5, p.GetPosition().Y, tol)
}

func TestTickAcceleratingClampsSpeed(t *testing.T) {
	info := Info(PaddleRocket)
	p := New(PaddleRocket, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))

	for i := 0; i < 1000; i++ {
		p.Tick(0.1, nil)
	}
	assert.InDelta(t, info.MaxSpeed, p.GetVelocityMagnitude(), tol)

	mine := New(PaddleMine, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))
	for i := 0; i < 1000; i++ {
		mine.Tick(0.1, nil)
	}
	assert.InDelta(t, Info(PaddleMine).MinSpeed, mine.GetVelocityMagnitude(), tol)
}

func TestTickFallingTurnsDownward(t *testing.T) {
	p := New(FireGlob, core.NewPoint2D(0, 0), core.NewVector2D(1, 0))
	for i := 0; i < 120; i++ {
		p.Tick(1.0/60.0, nil)
	}
	assert.Less(t, p.GetVelocityDirection().Y, 0.0)
	assert.Less(t, p.GetPosition().Y, 0.0)
	assert.Greater(t, p.GetPosition().X, 0.0)
}

func TestCollisionTag(t *testing.T) {
	p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))

	assert.False(t, p.IsLastThingCollidedWith(core.NoEntity))
	p.SetLastThingCollidedWith(42)
	assert.True(t, p.IsLastThingCollidedWith(42))
	assert.False(t, p.IsLastThingCollidedWith(43))
	p.ClearLastThingCollidedWith()
	assert.False(t, p.IsLastThingCollidedWith(42))
}

func TestRotationDegrees(t *testing.T) {
	tests := []struct {
		name string
		dir  core.Vector2D
		want float64
	}{
		{"up", core.NewVector2D(0, 1), 0},
		{"left", core.NewVector2D(-1, 0), 90},
		{"right", core.NewVector2D(1, 0), -90},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), tc.dir)
			assert.InDelta(t, tc.want, p.RotationDegrees(), tol)
		})
	}

	down := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, -1))
	assert.InDelta(t, 180, math.Abs(down.RotationDegrees()), tol)
}

func TestSetDamageCapped(t *testing.T) {
	p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))
	p.SetDamage(100)
	assert.Equal(t, Info(PaddleLaserBullet).MaxDamage, p.Damage())
}
