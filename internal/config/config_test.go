package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultPrismConfig()
	require.NoError(t, cfg.Validate())

	embedded := DefaultPrismConfig()
	require.NoError(t, yaml.Unmarshal(defaultPrismYAML, &embedded))
	require.NoError(t, embedded.Validate())

	assert.Equal(t, cfg.Physics.RefractThresholdDeg, embedded.Physics.RefractThresholdDeg)
	assert.Equal(t, cfg.Paddle, embedded.Paddle)
	assert.Equal(t, cfg.Lasers, embedded.Lasers)
	assert.Equal(t, cfg.Turrets, embedded.Turrets)
	assert.Equal(t, cfg.Gameplay, embedded.Gameplay)
	assert.Equal(t, cfg.Difficulty, embedded.Difficulty)
}

func TestLoadPrismCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prism.yaml")
	data := []byte(`
physics:
  refract_threshold_deg: 20
paddle:
  width: 6
projectiles:
  boss_orb:
    width: 2
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadPrism(path)
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Physics.RefractThresholdDeg)
	assert.Equal(t, 6.0, cfg.Paddle.Width)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultPrismConfig().Lasers, cfg.Lasers)

	ov, err := cfg.KindOverrides()
	require.NoError(t, err)
	assert.Equal(t, 2.0, ov[projectile.BossOrb].Width)
	assert.Equal(t, cfg.Lasers.Speed, ov[projectile.PaddleLaserBullet].Speed)
}

func TestLoadPrismErrors(t *testing.T) {
	_, err := LoadPrism(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paddle: [not a map"), 0o600))
	_, err = LoadPrism(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PrismConfig)
	}{
		{"zero paddle width", func(c *PrismConfig) { c.Paddle.Width = 0 }},
		{"negative laser speed", func(c *PrismConfig) { c.Lasers.Speed = -1 }},
		{"threshold too wide", func(c *PrismConfig) { c.Physics.RefractThresholdDeg = 90 }},
		{"no lives", func(c *PrismConfig) { c.Gameplay.Lives = 0 }},
		{"turret without hp", func(c *PrismConfig) { c.Turrets.HP = 0 }},
		{"unknown progression", func(c *PrismConfig) { c.Difficulty.Progression.Type = "moon_phase" }},
		{"negative override", func(c *PrismConfig) {
			c.Projectiles = map[string]KindOverride{"boss_orb": {Speed: -2}}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPrismConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestValidateUnknownKind(t *testing.T) {
	cfg := DefaultPrismConfig()
	cfg.Projectiles = map[string]KindOverride{"photon_torpedo": {Width: 1}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, projectile.ErrUnknownKind))
}

func TestApplyPrismPreset(t *testing.T) {
	cfg := DefaultPrismConfig()
	ApplyPrismPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.Equal(t, 2, cfg.Gameplay.Lives)

	cfg = DefaultPrismConfig()
	ApplyPrismPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	assert.Equal(t, DefaultPrismConfig().Gameplay.Lives, cfg.Gameplay.Lives)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyEasy, ParsePreset("easy"))
	assert.Equal(t, DifficultyFixed, ParsePreset("fixed"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("nightmare"))
}
