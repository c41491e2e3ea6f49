// Package config provides YAML-based configuration loading and difficulty
// management for the prism arcade.
package config

// PrismConfig contains all configuration for the prism gallery game.
type PrismConfig struct {
	Physics     PhysicsConfig           `yaml:"physics"`
	Paddle      PaddleConfig            `yaml:"paddle"`
	Lasers      LaserConfig             `yaml:"lasers"`
	Turrets     TurretConfig            `yaml:"turrets"`
	Projectiles map[string]KindOverride `yaml:"projectiles"`
	Gameplay    GameplayConfig          `yaml:"gameplay"`
	Difficulty  DifficultyConfig        `yaml:"difficulty"`
}

// PhysicsConfig tunes the simulation step and the prism resolver.
type PhysicsConfig struct {
	RefractThresholdDeg float64 `yaml:"refract_threshold_deg"` // Head-on vs. oblique cutoff
	TickRate            int     `yaml:"tick_rate"`             // Overrides the runtime tick rate when > 0
}

// PaddleConfig defines the player's paddle. Sizes are in world units
// (one unit is one terminal row or two columns).
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Speed         float64 `yaml:"speed"`          // Units per second
	MagnetSeconds float64 `yaml:"magnet_seconds"` // How long one magnet charge lasts
	MagnetCharges int     `yaml:"magnet_charges"` // Charges per life
}

// LaserConfig defines the paddle laser.
type LaserConfig struct {
	Speed    float64 `yaml:"speed"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Cooldown float64 `yaml:"cooldown"` // Seconds between shots
}

// TurretConfig defines the hostile laser turrets.
type TurretConfig struct {
	FireEvery   float64 `yaml:"fire_every"`   // Seconds between shots at difficulty 0
	BulletSpeed float64 `yaml:"bullet_speed"` // Units per second at difficulty 0
	HP          int     `yaml:"hp"`
}

// KindOverride replaces the default parameters of one projectile kind.
// Zero values keep the defaults.
type KindOverride struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives        int    `yaml:"lives"`
	BrickPoints  int    `yaml:"brick_points"`
	TurretPoints int    `yaml:"turret_points"`
	AbsorbPoints int    `yaml:"absorb_points"` // Awarded when the magnet swallows a hostile shot
	RespawnTicks int    `yaml:"respawn_ticks"`
	LevelFile    string `yaml:"level_file"` // Optional YAML level pack replacing the built-ins
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types
const (
	ProgressNone   = "none"
	ProgressScore  = "score"  // Score points
	ProgressTime   = "time"   // Simulated ticks
	ProgressLevels = "levels" // Levels cleared
)

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // One of the Progress* constants
	MaxAt int    `yaml:"max_at"` // Score, ticks or levels at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to turret bullet speed at max difficulty
	FireRateBoost   float64 `yaml:"fire_rate_boost"`  // Fraction of the turret interval removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	}
	return ""
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
