// Package projectile implements the projectile entities of the prism arcade:
// a single concrete Projectile record tagged with a closed Kind enum, a
// per-kind parameter table, bounding geometry, per-tick motion and the
// copy/spawn factory.
package projectile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// ErrUnknownKind is returned when a kind name does not match any projectile kind.
var ErrUnknownKind = errors.New("projectile: unknown kind")

// Kind identifies the projectile variant. The set is closed.
type Kind int

const (
	PaddleLaserBullet Kind = iota
	BallLaserBullet
	LaserTurretBullet
	PaddleRocket
	PaddleRemoteControlRocket
	RocketTurretBullet
	PaddleMine
	MineTurretBullet
	CollateralBlock
	PaddleFlameBlast
	PaddleIceBlast
	FireGlob
	BossLaserBullet
	BossRocket
	BossOrb
	BossLightningBolt
	kindCount // Sentinel for counting kinds
)

// Shape selects how bounding lines are built.
type Shape int

const (
	ShapeRect Shape = iota // Two side lines along the direction of travel
	ShapeOrb               // Hexagon approximation of a circle
)

// String returns the name of the shape.
func (s Shape) String() string {
	if s == ShapeOrb {
		return "orb"
	}
	return "rect"
}

// StepFunc advances a projectile by dT seconds.
type StepFunc func(p *Projectile, dT float64)

// BoundsFunc builds the projectile's collision boundary from its current state.
type BoundsFunc func(p *Projectile) core.BoundingLines

// KindInfo holds the fixed parameters and behavior of one projectile kind.
type KindInfo struct {
	Name  string
	Shape Shape

	// Hostile kinds are fired at the player.
	Hostile bool

	// Capability flags
	Rocket      bool
	Mine        bool
	Refractable bool // Laser class: bent and split by prism blocks

	// Safety net interaction
	DestroyedBySafetyNet   bool
	PassesThroughSafetyNet bool

	Damage    float64
	MaxDamage float64

	// Default dimensions (world units) and launch speed (units/sec)
	Width  float64
	Height float64
	Speed  float64

	// Acceleration in units/sec² along the direction of travel, clamped to
	// [MinSpeed, MaxSpeed]. Negative values decelerate (mines).
	Accel    float64
	MinSpeed float64
	MaxSpeed float64

	// Gravity pulls falling debris down, in units/sec².
	Gravity float64

	// MagnetDegreesPerSec is the turn rate toward a magnetized paddle; 0 = unaffected.
	MagnetDegreesPerSec float64

	Step   StepFunc
	Bounds BoundsFunc
}

var kindTable [kindCount]KindInfo

func init() {
	laser := func(name string, w, h, speed, magnet float64, hostile bool) KindInfo {
		return KindInfo{
			Name:                 name,
			Shape:                ShapeRect,
			Hostile:              hostile,
			Refractable:          true,
			DestroyedBySafetyNet: hostile,
			Damage:               1,
			MaxDamage:            2,
			Width:                w,
			Height:               h,
			Speed:                speed,
			MagnetDegreesPerSec:  magnet,
			Step:                 stepLinear,
			Bounds:               rectBounds,
		}
	}
	rocket := func(name string, w, h, speed, maxSpeed, magnet float64, hostile bool) KindInfo {
		return KindInfo{
			Name:                 name,
			Shape:                ShapeRect,
			Hostile:              hostile,
			Rocket:               true,
			DestroyedBySafetyNet: hostile,
			Damage:               5,
			MaxDamage:            5,
			Width:                w,
			Height:               h,
			Speed:                speed,
			Accel:                speed,
			MinSpeed:             speed,
			MaxSpeed:             maxSpeed,
			MagnetDegreesPerSec:  magnet,
			Step:                 stepAccelerating,
			Bounds:               rectBounds,
		}
	}
	orb := func(name string, size, speed, magnet float64, hostile bool) KindInfo {
		return KindInfo{
			Name:                 name,
			Shape:                ShapeOrb,
			Hostile:              hostile,
			DestroyedBySafetyNet: hostile,
			Damage:               2,
			MaxDamage:            2,
			Width:                size,
			Height:               size,
			Speed:                speed,
			MagnetDegreesPerSec:  magnet,
			Step:                 stepLinear,
			Bounds:               orbBounds,
		}
	}

	kindTable[PaddleLaserBullet] = laser("paddle_laser", 0.3, 1.2, 18, 0, false)
	kindTable[BallLaserBullet] = laser("ball_laser", 0.25, 1.0, 16, 0, false)
	kindTable[LaserTurretBullet] = laser("turret_laser", 0.3, 1.2, 12, 60, true)
	kindTable[BossLaserBullet] = laser("boss_laser", 0.5, 1.6, 14, 60, true)

	kindTable[PaddleRocket] = rocket("paddle_rocket", 0.8, 2.0, 6, 16, 0, false)
	kindTable[PaddleRemoteControlRocket] = rocket("paddle_rc_rocket", 0.8, 2.0, 5, 12, 0, false)
	kindTable[RocketTurretBullet] = rocket("turret_rocket", 0.6, 1.6, 5, 12, 55, true)
	kindTable[BossRocket] = rocket("boss_rocket", 0.9, 2.2, 5, 14, 55, true)

	kindTable[PaddleMine] = orb("paddle_mine", 0.8, 10, 0, false)
	kindTable[PaddleMine].Mine = true
	kindTable[PaddleMine].Accel = -6
	kindTable[PaddleMine].MaxSpeed = 10
	kindTable[PaddleMine].Step = stepAccelerating

	kindTable[MineTurretBullet] = orb("turret_mine", 0.8, 8, 65, true)
	kindTable[MineTurretBullet].Mine = true
	kindTable[MineTurretBullet].Accel = -3
	kindTable[MineTurretBullet].MinSpeed = 2
	kindTable[MineTurretBullet].MaxSpeed = 8
	kindTable[MineTurretBullet].Step = stepAccelerating

	kindTable[PaddleFlameBlast] = orb("paddle_flame_blast", 1.0, 12, 0, false)
	kindTable[PaddleIceBlast] = orb("paddle_ice_blast", 1.0, 12, 0, false)
	kindTable[BossOrb] = orb("boss_orb", 1.2, 9, 65, true)

	kindTable[FireGlob] = orb("fire_glob", 0.6, 4, 70, true)
	kindTable[FireGlob].Gravity = 6
	kindTable[FireGlob].Step = stepFalling

	kindTable[CollateralBlock] = KindInfo{
		Name:                   "collateral_block",
		Shape:                  ShapeRect,
		Hostile:                true,
		PassesThroughSafetyNet: true,
		Damage:                 3,
		MaxDamage:              3,
		Width:                  1,
		Height:                 1,
		Speed:                  4,
		Gravity:                9,
		Step:                   stepFalling,
		Bounds:                 rectBounds,
	}

	kindTable[BossLightningBolt] = KindInfo{
		Name:                 "boss_lightning_bolt",
		Shape:                ShapeRect,
		Hostile:              true,
		DestroyedBySafetyNet: true,
		Damage:               3,
		MaxDamage:            3,
		Width:                0.5,
		Height:               2.0,
		Speed:                15,
		MagnetDegreesPerSec:  70,
		Step:                 stepLinear,
		Bounds:               rectBounds,
	}
}

// Info returns the parameter table entry for a kind. Panics on unknown kinds.
func Info(k Kind) KindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("projectile: unknown kind %d", int(k)))
	}
	return kindTable[k]
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// String returns the kind's stable name (used in config and storage).
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTable[k].Name
}

// ParseKind looks a kind up by name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if strings.EqualFold(kindTable[k].Name, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// TracksReflection reports whether the kind records if it was produced by a
// reflection or refraction.
func (k Kind) TracksReflection() bool {
	switch k {
	case PaddleLaserBullet, BallLaserBullet, LaserTurretBullet, BossLaserBullet:
		return true
	}
	return false
}
