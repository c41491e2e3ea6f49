package projectile

import (
	"github.com/vovakirdan/prism-arcade/internal/core"
)

// PauseState is a bit set describing which parts of the game are paused.
type PauseState uint8

const (
	PausePaddle PauseState = 1 << iota
	PauseProjectiles
	PauseTimers
)

const (
	PauseNone PauseState = 0
	PauseGame            = PausePaddle | PauseProjectiles | PauseTimers
)

// Has reports whether all bits of flag are set.
func (s PauseState) Has(flag PauseState) bool {
	return flag != 0 && s&flag == flag
}

// Paddle is the part of the player's paddle that projectiles interact with.
type Paddle interface {
	// HasBeenPausedAndRemovedFromGame reports whether the paddle is out of play
	// for the given pause state.
	HasBeenPausedAndRemovedFromGame(pause PauseState) bool

	// AugmentDirectionOnPaddleMagnet steers dir toward the paddle when its
	// magnet is active, turning at most degreesPerSec*dT degrees. Returns
	// whether dir was changed.
	AugmentDirectionOnPaddleMagnet(dT, degreesPerSec float64, pos core.Point2D, dir *core.Vector2D) bool
}

// TickEnv is what a projectile needs from the owning game model while ticking.
type TickEnv interface {
	GetPlayerPaddle() Paddle
	PauseState() PauseState
}

// Tick advances the projectile by dT seconds: magnet steering first, then the
// kind's motion step. env may be nil for free flight.
func (p *Projectile) Tick(dT float64, env TickEnv) {
	info := Info(p.kind)
	if env != nil && info.MagnetDegreesPerSec > 0 {
		p.AugmentDirectionOnPaddleMagnet(dT, info.MagnetDegreesPerSec, env)
	}
	info.Step(p, dT)
}

// AugmentDirectionOnPaddleMagnet asks the paddle to bend this projectile
// toward it. Nothing happens when the paddle is missing or out of play.
func (p *Projectile) AugmentDirectionOnPaddleMagnet(dT, degreesPerSec float64, env TickEnv) bool {
	paddle := env.GetPlayerPaddle()
	if paddle == nil || paddle.HasBeenPausedAndRemovedFromGame(env.PauseState()) {
		return false
	}

	dir := p.velocityDir
	if !paddle.AugmentDirectionOnPaddleMagnet(dT, degreesPerSec, p.position, &dir) {
		return false
	}
	p.SetVelocity(core.Normalize(dir), p.velocityMag)
	return true
}

func stepLinear(p *Projectile, dT float64) {
	p.position = p.position.Add(p.velocityDir.Scale(p.velocityMag * dT))
}

// stepAccelerating changes speed by the kind's acceleration before moving.
func stepAccelerating(p *Projectile, dT float64) {
	info := Info(p.kind)
	mag := core.ClampF(p.velocityMag+info.Accel*dT, info.MinSpeed, info.MaxSpeed)
	p.SetVelocity(p.velocityDir, mag)
	stepLinear(p, dT)
}

// stepFalling adds gravity to the velocity; direction follows the new velocity.
func stepFalling(p *Projectile, dT float64) {
	info := Info(p.kind)
	v := p.GetVelocity().Add(core.NewVector2D(0, -info.Gravity*dT))
	p.SetVelocityFromVector(v)
	stepLinear(p, dT)
}
