package config

import (
	_ "embed"
)

//go:embed defaults/prism.yaml
var defaultPrismYAML []byte

// DefaultPrismConfig returns the hardcoded prism gallery configuration,
// used when even the embedded YAML cannot be parsed.
func DefaultPrismConfig() PrismConfig {
	return PrismConfig{
		Physics: PhysicsConfig{
			RefractThresholdDeg: 15,
		},
		Paddle: PaddleConfig{
			Width:         4,
			Speed:         24,
			MagnetSeconds: 3,
			MagnetCharges: 3,
		},
		Lasers: LaserConfig{
			Speed:    30,
			Width:    0.3,
			Height:   1.2,
			Cooldown: 0.25,
		},
		Turrets: TurretConfig{
			FireEvery:   2.5,
			BulletSpeed: 10,
			HP:          3,
		},
		Projectiles: map[string]KindOverride{},
		Gameplay: GameplayConfig{
			Lives:        3,
			BrickPoints:  10,
			TurretPoints: 50,
			AbsorbPoints: 5,
			RespawnTicks: 60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
				FireRateBoost:   0.5,
			},
		},
	}
}
