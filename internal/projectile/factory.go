package projectile

import (
	"fmt"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// CreateFromCopy returns an independent copy of src. The copy gets no ID and
// keeps src's collision tag. createdByReflection is recorded only on kinds that
// track it.
func CreateFromCopy(src *Projectile, createdByReflection bool) *Projectile {
	dup := *src
	dup.id = core.NoEntity

	switch src.kind {
	case PaddleLaserBullet, BallLaserBullet, LaserTurretBullet, BossLaserBullet:
		dup.createdByReflection = createdByReflection
	case PaddleRocket, PaddleRemoteControlRocket, RocketTurretBullet, BossRocket,
		PaddleMine, MineTurretBullet,
		CollateralBlock, PaddleFlameBlast, PaddleIceBlast, FireGlob,
		BossOrb, BossLightningBolt:
		dup.createdByReflection = false
	default:
		panic(fmt.Sprintf("projectile: cannot copy unknown kind %d", int(src.kind)))
	}
	return &dup
}

// SplitScaleFactor is the size and damage multiplier applied to each of n
// projectiles produced by splitting one. 1 for n <= 1, approaching 2/3.
func SplitScaleFactor(numSplits int) float64 {
	if numSplits <= 1 {
		return 1.0
	}
	return 0.6667 + 0.3333/float64(numSplits)
}

// Override replaces default kind parameters. Zero fields keep the default.
type Override struct {
	Width  float64
	Height float64
	Speed  float64
	Damage float64
}

// Overrides maps kinds to their parameter overrides.
type Overrides map[Kind]Override

// Constructor builds a projectile at pos with the kind's launch direction.
type Constructor func(pos core.Point2D) *Projectile

// Table maps each kind to its constructor.
type Table map[Kind]Constructor

// DefaultTable builds a constructor for every kind. Player kinds launch upward,
// hostile kinds launch downward.
func DefaultTable(overrides Overrides) Table {
	table := make(Table, kindCount)
	for _, k := range Kinds() {
		kind := k
		ov := overrides[kind]
		dir := core.NewVector2D(0, 1)
		if Info(kind).Hostile {
			dir = core.NewVector2D(0, -1)
		}
		table[kind] = func(pos core.Point2D) *Projectile {
			p := New(kind, pos, dir)
			applyOverride(p, ov)
			return p
		}
	}
	return table
}

func applyOverride(p *Projectile, ov Override) {
	w, h := p.width, p.height
	if ov.Width > 0 {
		w = ov.Width
	}
	if ov.Height > 0 {
		h = ov.Height
	}
	if Info(p.kind).Shape == ShapeOrb {
		// Orbs stay round; width wins.
		h = w
	}
	p.SetDimensions(w, h)
	if ov.Speed > 0 {
		p.SetVelocity(p.velocityDir, ov.Speed)
	}
	if ov.Damage > 0 {
		p.SetDamage(ov.Damage)
	}
}

// Create builds a projectile of the given kind. Panics if the table has no
// constructor for it.
func (t Table) Create(kind Kind, pos core.Point2D) *Projectile {
	ctor, ok := t[kind]
	if !ok {
		panic(fmt.Sprintf("projectile: no constructor for %s", kind))
	}
	return ctor(pos)
}
