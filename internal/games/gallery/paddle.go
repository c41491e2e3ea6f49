package gallery

import (
	"math"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

// Paddle is the player's laser cannon at the bottom of the playfield.
// Coordinates are world units, y up.
type Paddle struct {
	X      float64 // Center
	Y      float64
	Width  float64
	Height float64

	removed      bool // Knocked out, waiting to respawn
	respawnTicks int

	magnetTicks   int // Remaining ticks of an active magnet
	magnetCharges int
	fireCooldown  float64 // Seconds until the next shot
}

// Center returns the middle of the paddle.
func (p *Paddle) Center() core.Point2D {
	return core.NewPoint2D(p.X, p.Y)
}

// Left returns the left edge.
func (p *Paddle) Left() float64 { return p.X - p.Width/2 }

// Right returns the right edge.
func (p *Paddle) Right() float64 { return p.X + p.Width/2 }

// Contains reports whether a projectile of the given half width centered at
// pos touches the paddle.
func (p *Paddle) Contains(pos core.Point2D, halfWidth float64) bool {
	return pos.X >= p.Left()-halfWidth && pos.X <= p.Right()+halfWidth &&
		math.Abs(pos.Y-p.Y) <= p.Height/2+halfWidth
}

// MagnetActive reports whether the magnet is pulling hostile shots in.
func (p *Paddle) MagnetActive() bool {
	return p.magnetTicks > 0 && !p.removed
}

// MagnetCharges returns the number of unused magnet charges.
func (p *Paddle) MagnetCharges() int { return p.magnetCharges }

// Removed reports whether the paddle is waiting to respawn.
func (p *Paddle) Removed() bool { return p.removed }

// HasBeenPausedAndRemovedFromGame reports whether the paddle is out of play.
func (p *Paddle) HasBeenPausedAndRemovedFromGame(pause projectile.PauseState) bool {
	return p.removed || pause.Has(projectile.PausePaddle)
}

// AugmentDirectionOnPaddleMagnet bends a downward-moving projectile toward the
// paddle center by at most degreesPerSec*dT degrees.
func (p *Paddle) AugmentDirectionOnPaddleMagnet(dT, degreesPerSec float64, pos core.Point2D, dir *core.Vector2D) bool {
	if !p.MagnetActive() || dir.Y >= 0 {
		return false
	}

	target := core.Normalize(p.Center().Sub(pos))
	if target.IsZero() {
		return false
	}
	next, turned := core.SteerToward(*dir, target, degreesPerSec*dT)
	if turned <= 0 {
		return false
	}
	*dir = next
	return true
}

// activateMagnet spends a charge. Returns false if none are left or one is
// already running.
func (p *Paddle) activateMagnet(ticks int) bool {
	if p.magnetCharges <= 0 || p.magnetTicks > 0 || p.removed {
		return false
	}
	p.magnetCharges--
	p.magnetTicks = ticks
	return true
}

// knockOut removes the paddle from play for the given number of ticks.
func (p *Paddle) knockOut(ticks int) {
	p.removed = true
	p.respawnTicks = ticks
	p.magnetTicks = 0
}

// update advances timers by one tick. Returns true on the tick the paddle
// respawns.
func (p *Paddle) update(dT float64) bool {
	if p.fireCooldown > 0 {
		p.fireCooldown = math.Max(0, p.fireCooldown-dT)
	}
	if p.magnetTicks > 0 {
		p.magnetTicks--
	}
	if p.removed {
		p.respawnTicks--
		if p.respawnTicks <= 0 {
			p.removed = false
			return true
		}
	}
	return false
}

// move shifts the paddle horizontally and clamps it to [0, worldW].
func (p *Paddle) move(dx, worldW float64) {
	p.X = core.ClampF(p.X+dx, p.Width/2, worldW-p.Width/2)
}
