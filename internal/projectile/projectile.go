package projectile

import (
	"math"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// Projectile is a moving shot of any kind. Behavior that differs between kinds
// is looked up in the kind table instead of being dispatched through methods.
type Projectile struct {
	id   core.EntityID
	kind Kind

	position    core.Point2D
	velocityDir core.Vector2D // Unit direction of travel
	velocityMag float64       // Speed in units/sec, >= 0
	rightVec    core.Vector2D // Always (velocityDir.Y, -velocityDir.X)

	width  float64
	height float64
	damage float64

	lastThingCollidedWith core.EntityID
	invisible             bool
	createdByReflection   bool
}

// New creates a projectile of the given kind at pos using the kind's default
// dimensions and speed, travelling in dir.
func New(kind Kind, pos core.Point2D, dir core.Vector2D) *Projectile {
	info := Info(kind)
	p := &Projectile{
		kind:     kind,
		position: pos,
		width:    info.Width,
		height:   info.Height,
		damage:   info.Damage,
	}
	p.SetVelocity(core.Normalize(dir), info.Speed)
	return p
}

// ID returns the handle assigned by the owning model.
func (p *Projectile) ID() core.EntityID { return p.id }

// SetID assigns the owning model's handle.
func (p *Projectile) SetID(id core.EntityID) { p.id = id }

// GetType returns the projectile kind.
func (p *Projectile) GetType() Kind { return p.kind }

// GetPosition returns the center of the projectile.
func (p *Projectile) GetPosition() core.Point2D { return p.position }

// SetPosition moves the projectile's center.
func (p *Projectile) SetPosition(pos core.Point2D) { p.position = pos }

// GetVelocityDirection returns the unit direction of travel.
func (p *Projectile) GetVelocityDirection() core.Vector2D { return p.velocityDir }

// GetVelocityMagnitude returns the speed.
func (p *Projectile) GetVelocityMagnitude() float64 { return p.velocityMag }

// GetRightVector returns the unit vector perpendicular to the direction of travel.
func (p *Projectile) GetRightVector() core.Vector2D { return p.rightVec }

// GetVelocity returns direction scaled by speed.
func (p *Projectile) GetVelocity() core.Vector2D {
	return p.velocityDir.Scale(p.velocityMag)
}

// SetVelocity sets a unit direction and a speed and recomputes the right vector.
func (p *Projectile) SetVelocity(dir core.Vector2D, mag float64) {
	p.velocityDir = dir
	p.velocityMag = mag
	p.rightVec = core.NewVector2D(dir.Y, -dir.X)
}

// SetVelocityFromVector sets the velocity from a raw vector. Near-zero vectors
// keep the previous direction so the right vector never divides by zero.
func (p *Projectile) SetVelocityFromVector(v core.Vector2D) {
	mag := core.Magnitude(v)
	p.velocityMag = mag
	if mag < core.Epsilon {
		return
	}
	p.velocityDir = v.Scale(1 / mag)
	p.rightVec = core.NewVector2D(p.velocityDir.Y, -p.velocityDir.X)
}

// Width returns the projectile's extent across its direction of travel.
func (p *Projectile) Width() float64 { return p.width }

// Height returns the projectile's extent along its direction of travel.
func (p *Projectile) Height() float64 { return p.height }

// SetDimensions resizes the projectile.
func (p *Projectile) SetDimensions(w, h float64) {
	p.width = w
	p.height = h
}

// Damage returns the damage dealt on impact.
func (p *Projectile) Damage() float64 { return p.damage }

// SetDamage sets the damage, capped at the kind's maximum.
func (p *Projectile) SetDamage(d float64) {
	p.damage = math.Min(d, Info(p.kind).MaxDamage)
}

// IsLastThingCollidedWith reports whether id was the last entity this projectile hit.
func (p *Projectile) IsLastThingCollidedWith(id core.EntityID) bool {
	return p.lastThingCollidedWith.IsValid() && p.lastThingCollidedWith == id
}

// SetLastThingCollidedWith records the entity this projectile just hit.
func (p *Projectile) SetLastThingCollidedWith(id core.EntityID) {
	p.lastThingCollidedWith = id
}

// ClearLastThingCollidedWith forgets the last collision.
func (p *Projectile) ClearLastThingCollidedWith() {
	p.lastThingCollidedWith = core.NoEntity
}

// LastThingCollidedWith returns the handle of the last entity hit.
func (p *Projectile) LastThingCollidedWith() core.EntityID {
	return p.lastThingCollidedWith
}

// IsInvisible reports whether the renderer should skip this projectile.
func (p *Projectile) IsInvisible() bool { return p.invisible }

// SetInvisible hides or shows the projectile.
func (p *Projectile) SetInvisible(v bool) { p.invisible = v }

// CreatedByReflection reports whether this projectile came out of a reflection
// or refraction. Always false for kinds that do not track it.
func (p *Projectile) CreatedByReflection() bool { return p.createdByReflection }

// IsHostile reports whether the projectile was fired at the player.
func (p *Projectile) IsHostile() bool { return Info(p.kind).Hostile }

// IsRocket reports the rocket capability.
func (p *Projectile) IsRocket() bool { return Info(p.kind).Rocket }

// IsMine reports the mine capability.
func (p *Projectile) IsMine() bool { return Info(p.kind).Mine }

// IsRefractable reports whether prism blocks bend this projectile.
func (p *Projectile) IsRefractable() bool { return Info(p.kind).Refractable }

// IsDestroyedBySafetyNet reports whether the paddle's safety net removes it.
func (p *Projectile) IsDestroyedBySafetyNet() bool { return Info(p.kind).DestroyedBySafetyNet }

// PassesThroughSafetyNet reports whether it ignores the safety net entirely.
func (p *Projectile) PassesThroughSafetyNet() bool { return Info(p.kind).PassesThroughSafetyNet }

// RotationDegrees returns the counter-clockwise angle from "up" to the
// direction of travel, in (-180, 180].
func (p *Projectile) RotationDegrees() float64 {
	return math.Atan2(-p.velocityDir.X, p.velocityDir.Y) * 180.0 / math.Pi
}

// BuildBoundingLines returns the collision boundary for the current state.
// The result must not be cached beyond the current tick.
func (p *Projectile) BuildBoundingLines() core.BoundingLines {
	return Info(p.kind).Bounds(p)
}
