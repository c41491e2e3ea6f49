package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// LoadPrism loads the prism gallery configuration.
// Search order: customPath -> ~/.arcade/configs/prism.yaml -> ./configs/prism.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadPrism(customPath string) (PrismConfig, error) {
	cfg := DefaultPrismConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("prism.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultPrismConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "prism.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultPrismConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPrismYAML, &cfg); err != nil {
		return DefaultPrismConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPrismPreset modifies the config based on a difficulty preset.
func ApplyPrismPreset(cfg *PrismConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 5
		cfg.Paddle.MagnetCharges = 5
		cfg.Turrets.FireEvery = 3.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 3
		cfg.Paddle.MagnetCharges = 1
		cfg.Turrets.FireEvery = 1.5
	}
}

// Validate checks that sizes and rates are usable and that every projectile
// override names a known kind.
func (c PrismConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"physics.refract_threshold_deg", c.Physics.RefractThresholdDeg},
		{"paddle.width", c.Paddle.Width},
		{"paddle.speed", c.Paddle.Speed},
		{"lasers.speed", c.Lasers.Speed},
		{"lasers.width", c.Lasers.Width},
		{"lasers.height", c.Lasers.Height},
		{"turrets.fire_every", c.Turrets.FireEvery},
		{"turrets.bullet_speed", c.Turrets.BulletSpeed},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, f.name, f.value)
		}
	}
	if c.Physics.RefractThresholdDeg >= 90 {
		return fmt.Errorf("%w: physics.refract_threshold_deg must be below 90, got %g",
			ErrInvalidConfig, c.Physics.RefractThresholdDeg)
	}
	if c.Physics.TickRate < 0 {
		return fmt.Errorf("%w: physics.tick_rate must not be negative", ErrInvalidConfig)
	}
	if c.Gameplay.Lives <= 0 {
		return fmt.Errorf("%w: gameplay.lives must be positive, got %d", ErrInvalidConfig, c.Gameplay.Lives)
	}
	if c.Turrets.HP <= 0 {
		return fmt.Errorf("%w: turrets.hp must be positive, got %d", ErrInvalidConfig, c.Turrets.HP)
	}
	switch c.Difficulty.Progression.Type {
	case "", ProgressNone, ProgressScore, ProgressTime, ProgressLevels:
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q is not one of none, score, time, levels",
			ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	if _, err := c.KindOverrides(); err != nil {
		return err
	}
	return nil
}

// KindOverrides converts the per-kind YAML overrides into factory overrides.
// The paddle laser also picks up the lasers section.
func (c PrismConfig) KindOverrides() (projectile.Overrides, error) {
	out := make(projectile.Overrides, len(c.Projectiles)+1)
	out[projectile.PaddleLaserBullet] = projectile.Override{
		Width:  c.Lasers.Width,
		Height: c.Lasers.Height,
		Speed:  c.Lasers.Speed,
	}

	for name, ov := range c.Projectiles {
		kind, err := projectile.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: projectiles.%s: %w", ErrInvalidConfig, name, err)
		}
		if ov.Width < 0 || ov.Height < 0 || ov.Speed < 0 || ov.Damage < 0 {
			return nil, fmt.Errorf("%w: projectiles.%s: values must not be negative", ErrInvalidConfig, name)
		}
		out[kind] = projectile.Override{
			Width:  ov.Width,
			Height: ov.Height,
			Speed:  ov.Speed,
			Damage: ov.Damage,
		}
	}
	return out, nil
}
