package gallery

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/prism-arcade/internal/config"
	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/prism"
	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// newTestGame starts a game on the given levels and serves so it is playing.
func newTestGame(t *testing.T, cfg config.PrismConfig, levels ...*Level) *Game {
	t.Helper()
	g := New().WithConfig(cfg)
	if len(levels) > 0 {
		g.WithLevels(levels)
	}
	g.Reset(testRuntime(42))
	require.False(t, g.screenTooSmall)

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)
	require.Equal(t, StatePlaying, g.Phase())
	return g
}

func idle() core.InputFrame { return core.NewInputFrame() }

// stepUntil steps with no input until cond holds or max ticks pass.
func stepUntil(g *Game, maxTicks int, cond func() bool) bool {
	for iter := 0; iter < maxTicks; iter++ {
		g.Step(idle())
		if cond() {
			return true
		}
	}
	return false
}

// prismLevel has one prism at (1, 4) and a far brick so the level never clears.
func prismLevel() *Level {
	return ParseLevel("test_prism", "Test Prism", []string{
		"#.........",
		"....P.....",
		"..........",
	})
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionFire)
		case i == 120:
			inputs[i].Set(core.ActionMagnet)
		case i%7 == 0:
			inputs[i].Set(core.ActionFire)
		case i%40 < 15:
			inputs[i].Set(core.ActionRight)
		case i%40 < 30:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New().WithConfig(config.DefaultPrismConfig())
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	assert.Equal(t, snap1.Hash(), snap2.Hash(), "hashes differ")
	assert.Equal(t, snap1.Score, snap2.Score)
	assert.Equal(t, snap1.Tick, snap2.Tick)
	assert.Equal(t, snap1.ProjectileData, snap2.ProjectileData)
	assert.Positive(t, snap1.Tick)
}

func TestGameSeedChangesSnapshot(t *testing.T) {
	snap := func(seed int64) Snapshot {
		g := New().WithConfig(config.DefaultPrismConfig())
		g.Reset(testRuntime(seed))
		return g.Snapshot()
	}
	a, b := snap(1), snap(2)
	// Level 1 has no turrets; only the RNG state differs
	assert.NotEqual(t, a.RNGState, b.RNGState)
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	for iter := 0; iter < 30; iter++ {
		g.Step(fire)
	}
	require.Positive(t, g.Stats().LasersFired)

	g.Reset(testRuntime(42))

	assert.Equal(t, 0, g.score)
	assert.Equal(t, StateServe, g.Phase())
	assert.Equal(t, 0, g.TickCount())
	assert.Equal(t, 0, g.levelIndex)
	assert.Empty(t, g.Projectiles())
	assert.Equal(t, Stats{}, g.Stats())
	assert.Equal(t, 3, g.Lives())
}

func TestGameServeState(t *testing.T) {
	g := New().WithConfig(config.DefaultPrismConfig())
	g.Reset(testRuntime(1))
	require.Equal(t, StateServe, g.Phase())

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	x := g.Paddle().X
	g.Step(right)
	assert.Greater(t, g.Paddle().X, x, "paddle moves while serving")
	assert.Equal(t, 0, g.TickCount(), "no ticks while serving")
	assert.Empty(t, g.Projectiles())
}

func TestFireLaserRespectsCooldown(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)
	g.Step(fire)

	assert.Equal(t, 1, g.Stats().LasersFired)
	require.Len(t, g.Projectiles(), 1)
	p := g.Projectiles()[0]
	assert.Equal(t, projectile.PaddleLaserBullet, p.GetType())
	assert.InDelta(t, 1, p.GetVelocityDirection().Y, 1e-9)
	assert.InDelta(t, 30, p.GetVelocityMagnitude(), 1e-9)
}

func TestSplitInGame(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())
	blk, ok := g.Block(1, 4)
	require.True(t, ok)

	parent := g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(blk.Center.X, 15))
	require.True(t, stepUntil(g, 60, func() bool { return g.Stats().Splits > 0 }))

	assert.Equal(t, 1, g.Stats().Splits)
	assert.Equal(t, 2, g.Stats().Spawned)

	children := g.Projectiles()
	require.Len(t, children, 2, "parent replaced by two children")
	scale := projectile.SplitScaleFactor(2)
	for _, c := range children {
		assert.NotEqual(t, parent.ID(), c.ID())
		assert.True(t, c.CreatedByReflection())
		assert.True(t, c.IsLastThingCollidedWith(blk.ID))
		assert.InDelta(t, parent.Damage()*scale, c.Damage(), 1e-9)
		assert.InDelta(t, parent.Width()*scale, c.Width(), 1e-9)
		assert.InDelta(t, 1/math.Sqrt2, c.GetVelocityDirection().Y, 1e-9)
		assert.InDelta(t, 1/math.Sqrt2, math.Abs(c.GetVelocityDirection().X), 1e-9)

		// Spawned during resolution, so not moved yet
		assert.Equal(t, parent.GetPosition(), c.GetPosition())
	}
	assert.Less(t, children[0].GetVelocityDirection().X*children[1].GetVelocityDirection().X, 0.0)

	// Next tick the children move and the block ignores them
	before := children[0].GetPosition()
	g.Step(idle())
	require.Len(t, g.Projectiles(), 2)
	assert.NotEqual(t, before, g.Projectiles()[0].GetPosition())
	assert.Equal(t, 1, g.Stats().Splits)
}

func TestObliqueHitDoesNotSplit(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())
	blk, _ := g.Block(1, 4)

	// About 24 degrees off vertical, well past the threshold
	start := core.NewPoint2D(blk.Center.X-2, 15)
	p := g.AddProjectile(projectile.PaddleLaserBullet, start)
	target := blk.Center.Sub(start)
	p.SetVelocity(core.Normalize(target), p.GetVelocityMagnitude())

	stepUntil(g, 60, func() bool { return p.IsLastThingCollidedWith(blk.ID) })

	assert.Equal(t, 0, g.Stats().Splits)
	assert.Contains(t, g.Projectiles(), p)
}

func TestHostileShotAbsorbedByMagnet(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())

	magnet := core.NewInputFrame()
	magnet.Set(core.ActionMagnet)
	g.Step(magnet)
	require.True(t, g.Paddle().MagnetActive())
	assert.Equal(t, 2, g.Paddle().MagnetCharges())

	g.AddProjectile(projectile.LaserTurretBullet, core.NewPoint2D(g.Paddle().X, 5))
	require.True(t, stepUntil(g, 60, func() bool { return g.Stats().Absorbed > 0 }))

	assert.Equal(t, 5, g.score)
	assert.Equal(t, 3, g.Lives())
	assert.Empty(t, g.Projectiles())
}

func TestMagnetBendsHostileShot(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())

	magnet := core.NewInputFrame()
	magnet.Set(core.ActionMagnet)
	g.Step(magnet)

	p := g.AddProjectile(projectile.LaserTurretBullet, core.NewPoint2D(g.Paddle().X-6, 15))
	g.Step(idle())

	dir := p.GetVelocityDirection()
	assert.Greater(t, dir.X, 0.0, "turned toward the paddle")
	turned := core.AngleBetweenDegrees(dir, core.NewVector2D(0, -1))
	assert.LessOrEqual(t, turned, 60*g.dT+1e-6)
}

func TestHostileShotCostsLife(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())

	g.AddProjectile(projectile.LaserTurretBullet, core.NewPoint2D(g.Paddle().X, 5))
	other := g.AddProjectile(projectile.LaserTurretBullet, core.NewPoint2D(5, 15))
	require.True(t, stepUntil(g, 60, func() bool { return g.Stats().LivesLost > 0 }))

	assert.Equal(t, 2, g.Lives())
	assert.True(t, g.Paddle().Removed())
	assert.NotContains(t, g.Projectiles(), other, "hostile shots cleared")
	assert.Equal(t, StatePlaying, g.Phase())

	// Respawns after the configured delay
	require.True(t, stepUntil(g, 61, func() bool { return !g.Paddle().Removed() }))
}

func TestLastLifeEndsGame(t *testing.T) {
	cfg := config.DefaultPrismConfig()
	cfg.Gameplay.Lives = 1
	g := newTestGame(t, cfg, prismLevel())

	g.AddProjectile(projectile.LaserTurretBullet, core.NewPoint2D(g.Paddle().X, 5))
	require.True(t, stepUntil(g, 60, func() bool { return g.State().GameOver }))
	assert.Equal(t, StateGameOver, g.Phase())

	// Restart from game over
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	assert.Equal(t, StateServe, g.Phase())
	assert.Equal(t, 1, g.Lives())
}

func TestHostileShotPassesBricks(t *testing.T) {
	level := ParseLevel("wall", "Wall", []string{
		"..........",
		"##########",
		"XXXXXXXXXX",
	})
	g := newTestGame(t, config.DefaultPrismConfig(), level)

	p := g.AddProjectile(projectile.LaserTurretBullet, g.cellCenter(0, 3))
	require.True(t, stepUntil(g, 60, func() bool { return !containsProjectile(g, p) }))

	assert.True(t, g.Level().Cells[1][3].Alive, "brick untouched")
	assert.Equal(t, 0, g.Stats().BricksDestroyed)
	row, _, _ := g.cellAt(p.GetPosition())
	assert.Equal(t, 2, row, "stopped by the solid row")
}

func TestLevelClear(t *testing.T) {
	one := ParseLevel("one", "One", []string{"#........."})
	two := ParseLevel("two", "Two", []string{"##########"})
	g := newTestGame(t, config.DefaultPrismConfig(), one, two)

	g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(g.cellCenter(0, 0).X, 15))
	require.True(t, stepUntil(g, 60, func() bool { return g.Phase() == StateServe }))

	assert.Equal(t, 10, g.score)
	assert.Equal(t, 1, g.Stats().BricksDestroyed)
	assert.Equal(t, "two", g.Level().ID)
	assert.Empty(t, g.Projectiles())
}

func TestClearingLastLevelWins(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), ParseLevel("one", "One", []string{"#........."}))

	g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(g.cellCenter(0, 0).X, 15))
	require.True(t, stepUntil(g, 60, func() bool { return g.State().GameOver }))
	assert.Equal(t, StateWin, g.Phase())
}

func TestHardBrickNeedsTwoHits(t *testing.T) {
	level := ParseLevel("hard", "Hard", []string{"H.........", "#........."})
	g := newTestGame(t, config.DefaultPrismConfig(), level)

	g.damageCell(0, 0, 1)
	assert.True(t, g.Level().Cells[0][0].Alive)
	assert.Equal(t, 1, g.Level().Cells[0][0].HP)

	// Split shots carry fractional damage but still count as a hit
	g.damageCell(0, 0, projectile.SplitScaleFactor(2))
	assert.False(t, g.Level().Cells[0][0].Alive)
	assert.Equal(t, 20, g.score)
}

func TestDestroyedNeighborOpensPrismFace(t *testing.T) {
	level := ParseLevel("nest", "Nest", []string{
		"###",
		"#P#",
		"###",
	})
	g := newTestGame(t, config.DefaultPrismConfig(), level)
	blk, ok := g.Block(1, 1)
	require.True(t, ok)
	require.True(t, blk.BoundingLines().IsEmpty())

	// Brick below-left of the prism
	g.damageCell(2, 0, 1)
	assert.Equal(t, prism.NoBounds, blk.Neighbor(prism.BottomLeft).Bounds)
	assert.Equal(t, 1, blk.BoundingLines().NumLines())

	g.damageCell(0, 1, 1)
	assert.Equal(t, prism.NoBounds, blk.Neighbor(prism.Top).Bounds)
	assert.Equal(t, prism.Solid, blk.Neighbor(prism.Bottom).Bounds)
}

func TestTurretsFireAtPaddle(t *testing.T) {
	level := ParseLevel("turret", "Turret", []string{".........T"})
	g := newTestGame(t, config.DefaultPrismConfig(), level)

	require.True(t, stepUntil(g, 300, func() bool { return g.Stats().TurretShots > 0 }))
	require.NotEmpty(t, g.Projectiles())
	p := g.Projectiles()[0]
	assert.True(t, p.IsHostile())
	assert.Less(t, p.GetVelocityDirection().X, 0.0, "aimed left toward the paddle")
	assert.Less(t, p.GetVelocityDirection().Y, 0.0)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())
	g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(2, 10))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	require.Equal(t, StatePaused, g.Phase())
	assert.True(t, g.State().Paused)
	assert.Equal(t, projectile.PauseGame, g.PauseState())

	pos := g.Projectiles()[0].GetPosition()
	ticks := g.TickCount()
	for iter := 0; iter < 10; iter++ {
		g.Step(idle())
	}
	assert.Equal(t, pos, g.Projectiles()[0].GetPosition())
	assert.Equal(t, ticks, g.TickCount())

	g.Step(pause)
	assert.Equal(t, StatePlaying, g.Phase())
	assert.Equal(t, projectile.PauseNone, g.PauseState())
}

func TestOutOfBoundsRemoved(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())
	p := g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(39.9, 10))
	p.SetVelocity(core.NewVector2D(1, 0), 30)

	g.Step(idle())
	assert.Empty(t, g.Projectiles())
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())
	g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(10, 10))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Lives: 3")
	assert.Contains(t, out, "<◆◆◆◆◆◆>")
	assert.Contains(t, out, string(PaddleChar))

	x, y := g.toScreen(screen, core.NewPoint2D(10, 10))
	assert.Equal(t, '|', screen.Get(x, y))
	assert.Equal(t, core.ColorBrightGreen, screen.GetCell(x, y).Color)
}

func TestGameRenderTooSmall(t *testing.T) {
	g := New().WithConfig(config.DefaultPrismConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))
}

func TestSnapshotHashChangesWithState(t *testing.T) {
	g := newTestGame(t, config.DefaultPrismConfig(), prismLevel())
	s1 := g.Snapshot()

	g.AddProjectile(projectile.PaddleLaserBullet, core.NewPoint2D(10, 10))
	s2 := g.Snapshot()
	require.NotEqual(t, s1.Hash(), s2.Hash())

	g.Step(idle())
	s3 := g.Snapshot()
	assert.NotEqual(t, s2.Hash(), s3.Hash())
	assert.Equal(t, 1, s3.ProjectileCount)
	assert.Len(t, s3.ProjectileData, projectileFields)
}

func containsProjectile(g *Game, p *projectile.Projectile) bool {
	for _, q := range g.Projectiles() {
		if q == p {
			return true
		}
	}
	return false
}
