package projectile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// fakePaddle steers every projectile straight toward center.
type fakePaddle struct {
	center  core.Point2D
	removed bool
	calls   int
}

func (f *fakePaddle) HasBeenPausedAndRemovedFromGame(pause PauseState) bool {
	return f.removed || pause.Has(PausePaddle)
}

func (f *fakePaddle) AugmentDirectionOnPaddleMagnet(dT, degreesPerSec float64, pos core.Point2D, dir *core.Vector2D) bool {
	f.calls++
	target := core.Normalize(f.center.Sub(pos))
	next, turned := core.SteerToward(*dir, target, degreesPerSec*dT)
	*dir = next
	return turned > 0
}

type fakeEnv struct {
	paddle *fakePaddle
	pause  PauseState
}

func (e fakeEnv) GetPlayerPaddle() Paddle {
	if e.paddle == nil {
		return nil
	}
	return e.paddle
}

func (e fakeEnv) PauseState() PauseState { return e.pause }

func TestMagnetRotationIsRateCapped(t *testing.T) {
	paddle := &fakePaddle{center: core.NewPoint2D(0, -10)}
	env := fakeEnv{paddle: paddle}

	// Turret bullet moving sideways, paddle far below: needs a 90 degree turn.
	p := New(LaserTurretBullet, core.NewPoint2D(0, 0), core.NewVector2D(1, 0))
	dT := 1.0 / 60.0
	maxTurn := Info(LaserTurretBullet).MagnetDegreesPerSec * dT

	before := p.GetVelocityDirection()
	p.Tick(dT, env)
	after := p.GetVelocityDirection()

	assert.Equal(t, 1, paddle.calls)
	assert.InDelta(t, maxTurn, core.AngleBetweenDegrees(before, after), 1e-6)
	assert.InDelta(t, 1, core.Magnitude(after), 1e-9)
	assert.InDelta(t, 0, core.Dot(after, p.GetRightVector()), 1e-9)
}

func TestMagnetSkippedForUnaffectedKinds(t *testing.T) {
	paddle := &fakePaddle{center: core.NewPoint2D(0, -10)}
	p := New(PaddleLaserBullet, core.NewPoint2D(0, 0), core.NewVector2D(0, 1))

	p.Tick(0.1, fakeEnv{paddle: paddle})

	assert.Zero(t, paddle.calls)
	assert.Equal(t, core.NewVector2D(0, 1), p.GetVelocityDirection())
}

func TestMagnetSkippedWhenPaddleRemoved(t *testing.T) {
	tests := []struct {
		name string
		env  fakeEnv
	}{
		{"paddle removed", fakeEnv{paddle: &fakePaddle{removed: true}}},
		{"paddle paused", fakeEnv{paddle: &fakePaddle{}, pause: PauseGame}},
		{"no paddle", fakeEnv{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := New(LaserTurretBullet, core.NewPoint2D(5, 0), core.NewVector2D(1, 0))
			assert.False(t, p.AugmentDirectionOnPaddleMagnet(0.1, 60, tc.env))
			assert.Equal(t, core.NewVector2D(1, 0), p.GetVelocityDirection())
			if tc.env.paddle != nil {
				assert.Zero(t, tc.env.paddle.calls)
			}
		})
	}
}

func TestPauseStateHas(t *testing.T) {
	assert.True(t, PauseGame.Has(PausePaddle))
	assert.True(t, PauseGame.Has(PauseProjectiles))
	assert.False(t, PausePaddle.Has(PauseProjectiles))
	assert.False(t, PauseNone.Has(PauseNone))
}
