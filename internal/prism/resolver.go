package prism

import (
	"math"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

// DefaultThresholdDegrees separates head-on hits from oblique ones.
const DefaultThresholdDegrees = 15.0

// splitCount is how many children a head-on face hit produces.
const splitCount = 2

// ResolverConfig tunes the resolver.
type ResolverConfig struct {
	ThresholdDegrees float64
}

// DefaultResolverConfig returns the standard 15 degree threshold.
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{ThresholdDegrees: DefaultThresholdDegrees}
}

func (c ResolverConfig) threshold() float64 {
	if c.ThresholdDegrees <= 0 {
		return DefaultThresholdDegrees
	}
	return c.ThresholdDegrees
}

// Zone is where on the block a projectile struck.
type Zone int

const (
	ZoneBottom Zone = iota
	ZoneTop
	ZoneLeft
	ZoneRight
	ZoneBottomLeft
	ZoneBottomRight
	ZoneTopLeft
	ZoneTopRight
)

var zoneNames = [...]string{
	"bottom", "top", "left", "right",
	"bottom_left", "bottom_right", "top_left", "top_right",
}

func (z Zone) String() string {
	if z < 0 || int(z) >= len(zoneNames) {
		return "unknown"
	}
	return zoneNames[z]
}

// IsCorner reports whether the zone is one of the diagonal faces.
func (z Zone) IsCorner() bool {
	return z >= ZoneBottomLeft
}

// Normal returns the outward unit normal of the face in this zone.
func (z Zone) Normal() core.Vector2D {
	const d = 1 / core.Sqrt2
	switch z {
	case ZoneBottom:
		return core.NewVector2D(0, -1)
	case ZoneTop:
		return core.NewVector2D(0, 1)
	case ZoneLeft:
		return core.NewVector2D(-1, 0)
	case ZoneRight:
		return core.NewVector2D(1, 0)
	case ZoneBottomLeft:
		return core.NewVector2D(-d, -d)
	case ZoneBottomRight:
		return core.NewVector2D(d, -d)
	case ZoneTopLeft:
		return core.NewVector2D(-d, d)
	case ZoneTopRight:
		return core.NewVector2D(d, d)
	}
	return core.Vector2D{}
}

// Classify picks the impact zone from the projectile's offset to the block
// center. The vertical band is tested before the horizontal one.
func Classify(delta core.Vector2D, halfWidth float64) Zone {
	if math.Abs(delta.X) <= halfWidth {
		if delta.Y < 0 {
			return ZoneBottom
		}
		return ZoneTop
	}
	if math.Abs(delta.Y) <= halfWidth*0.5 {
		if delta.X < 0 {
			return ZoneLeft
		}
		return ZoneRight
	}
	switch {
	case delta.X < 0 && delta.Y < 0:
		return ZoneBottomLeft
	case delta.X > 0 && delta.Y < 0:
		return ZoneBottomRight
	case delta.X < 0:
		return ZoneTopLeft
	default:
		return ZoneTopRight
	}
}

// Action is what the resolver did.
type Action int

const (
	ActionIgnored Action = iota // Not refractable, or already tagged with this block
	ActionNone                  // Processed and tagged, trajectory unchanged
	ActionSplit
	ActionReflect
)

func (a Action) String() string {
	switch a {
	case ActionIgnored:
		return "ignored"
	case ActionNone:
		return "none"
	case ActionSplit:
		return "split"
	case ActionReflect:
		return "reflect"
	}
	return "unknown"
}

// Outcome describes one resolver call. Spawns are new projectiles the caller
// must register; the resolver never adds them anywhere itself.
type Outcome struct {
	Action Action
	Zone   Zone
	Angle  float64 // Degrees between the reversed direction and the face normal
	Spawns []*projectile.Projectile
}

// Resolve applies a prism block to a projectile whose bounds overlap it.
// p may be moved and redirected in place. After any processed call p is
// tagged with blk.ID, so a second call on the same pair is ignored.
func Resolve(p *projectile.Projectile, blk *Block, cfg ResolverConfig) Outcome {
	if !p.IsRefractable() || p.IsLastThingCollidedWith(blk.ID) {
		return Outcome{Action: ActionIgnored}
	}

	delta := p.GetPosition().Sub(blk.Center)
	zone := Classify(delta, p.Width()/2)
	normal := zone.Normal()
	dir := p.GetVelocityDirection()
	angle := core.AngleBetweenDegrees(dir.Negate(), normal)

	out := Outcome{Action: ActionNone, Zone: zone, Angle: angle}
	threshold := cfg.threshold()

	if zone.IsCorner() {
		if angle > threshold {
			p.SetPosition(p.GetPosition().Add(dir.Scale(p.Height() / 2)))
			p.SetVelocity(core.Normalize(core.Reflect(dir, normal)), p.GetVelocityMagnitude())
			out.Action = ActionReflect
		}
	} else if angle < threshold {
		out.Spawns = split(p, blk, normal)
		out.Action = ActionSplit
	}

	p.SetLastThingCollidedWith(blk.ID)
	return out
}

// split launches copies of p through the far side of the block along the two
// diagonals adjacent to the struck face.
func split(p *projectile.Projectile, blk *Block, faceNormal core.Vector2D) []*projectile.Projectile {
	through := faceNormal.Negate()
	scale := projectile.SplitScaleFactor(splitCount)
	speed := p.GetVelocityMagnitude()

	spawns := make([]*projectile.Projectile, 0, splitCount)
	for _, deg := range [splitCount]float64{-45, 45} {
		child := projectile.CreateFromCopy(p, true)
		child.SetVelocity(core.Normalize(core.Rotate(deg, through)), speed)
		child.SetDimensions(p.Width()*scale, p.Height()*scale)
		child.SetDamage(p.Damage() * scale)
		child.SetLastThingCollidedWith(blk.ID)
		spawns = append(spawns, child)
	}
	return spawns
}
