package config

import "math"

// Progress is how far a run has come, as seen by the difficulty curve.
type Progress struct {
	Score         int
	Ticks         int
	LevelsCleared int
}

// DifficultyManager turns run progress into turret pressure. The level moves
// linearly from InitialLevel to 1.0 as progress reaches Progression.MaxAt.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a difficulty manager. InitialLevel is clamped
// to [0, 1].
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty level in [0, 1] for the given progress.
func (d *DifficultyManager) Level(p Progress) float64 {
	start := d.cfg.InitialLevel
	if !d.cfg.Enabled {
		return start
	}

	var done float64
	switch d.cfg.Progression.Type {
	case ProgressScore:
		done = float64(p.Score)
	case ProgressTime:
		done = float64(p.Ticks)
	case ProgressLevels:
		done = float64(p.LevelsCleared)
	default:
		return start
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	return start + clampF(done/maxAt, 0, 1)*(1-start)
}

// TurretBulletSpeed scales a turret shot's launch speed. At full difficulty
// it is base * (1 + SpeedMultiplier).
func (d *DifficultyManager) TurretBulletSpeed(base float64, p Progress) float64 {
	return base * (1 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// TurretFireInterval shrinks the seconds between turret shots by up to
// FireRateBoost of the base. The boost is capped at 0.9 so turrets never fire
// every tick.
func (d *DifficultyManager) TurretFireInterval(base float64, p Progress) float64 {
	boost := clampF(d.cfg.Scaling.FireRateBoost, 0, 0.9)
	return base * (1 - d.Level(p)*boost)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
