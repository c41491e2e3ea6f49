package gallery

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/prism-arcade/internal/config"
	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/prism"
	"github.com/vovakirdan/prism-arcade/internal/projectile"
	"github.com/vovakirdan/prism-arcade/internal/registry"
)

// GameState constants
const (
	StateServe    = "serve"    // Waiting for the first shot
	StatePlaying  = "playing"  // Shots in flight
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels cleared
	StatePaused   = "paused"   // Game paused
)

// Layout in world units. One unit is one terminal row or two columns.
const (
	hudRows      = 2
	gridGap      = 1.0 // Empty rows between the HUD and the grid
	cellHeight   = 1.0
	paddleY      = 2.5
	paddleHeight = 1.0
)

// Projectile handles start above every cell handle so the two never collide.
const projectileIDBase core.EntityID = 1 << 20

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Stats counts notable events since the last reset.
type Stats struct {
	LasersFired      int
	TurretShots      int
	Splits           int
	Reflections      int
	Spawned          int // Children created by splits
	BricksDestroyed  int
	TurretsDestroyed int
	Absorbed         int // Hostile shots swallowed by the magnet
	LivesLost        int
}

type turret struct {
	row, col int
	cooldown float64 // Seconds until the next shot
}

// Game implements the prism gallery.
type Game struct {
	// Game objects
	paddle      *Paddle
	level       *Level
	levels      []*Level
	blocks      map[core.EntityID]*prism.Block
	turrets     []*turret
	projectiles []*projectile.Projectile
	dead        map[core.EntityID]bool

	factory  projectile.Table
	resolver prism.ResolverConfig
	rng      *Rand
	nextID   core.EntityID

	// Game state
	state      string
	score      int
	lives      int
	levelIndex int
	tickCount  int
	stats      Stats

	// Configuration
	runtime     core.RuntimeConfig
	cfg         config.PrismConfig
	cfgOverride *config.PrismConfig
	levelsFixed []*Level
	difficulty  *config.DifficultyManager
	dT          float64
	log         *log.Logger

	// Layout (computed from screen size)
	worldW         float64
	worldH         float64
	gridTop        float64
	cellW          float64
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new prism gallery instance.
func New() *Game {
	return &Game{log: log.New(io.Discard)}
}

// WithLogger sets the logger for gameplay events.
func (g *Game) WithLogger(l *log.Logger) *Game {
	if l != nil {
		g.log = l
	}
	return g
}

// WithConfig makes Reset use cfg instead of loading configuration files.
func (g *Game) WithConfig(cfg config.PrismConfig) *Game {
	g.cfgOverride = &cfg
	return g
}

// WithLevels makes Reset play the given levels instead of the configured ones.
func (g *Game) WithLevels(levels []*Level) *Game {
	g.levelsFixed = levels
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "prism"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Prism Gallery"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	overrides, err := g.cfg.KindOverrides()
	if err != nil {
		g.log.Warn("ignoring projectile overrides", "err", err)
		overrides = nil
	}
	g.factory = projectile.DefaultTable(overrides)
	g.resolver = prism.ResolverConfig{ThresholdDegrees: g.cfg.Physics.RefractThresholdDeg}

	tickRate := runtime.TickRate
	if g.cfg.Physics.TickRate > 0 {
		tickRate = g.cfg.Physics.TickRate
	}
	g.dT = core.RuntimeConfig{TickRate: tickRate}.DeltaT()
	g.rng = NewRand(runtime.Seed)
	g.levels = g.loadLevels()

	// Calculate layout
	g.worldW = float64(runtime.ScreenW) / 2
	g.worldH = float64(runtime.ScreenH - hudRows)
	g.gridTop = g.worldH - gridGap

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = hudRows + int(gridGap) + g.tallestLevel() + 6
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Initialize game state
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = 0
	g.tickCount = 0
	g.stats = Stats{}
	g.nextID = projectileIDBase
	g.dead = make(map[core.EntityID]bool)

	g.paddle = &Paddle{
		X:             g.worldW / 2,
		Y:             paddleY,
		Width:         g.cfg.Paddle.Width,
		Height:        paddleHeight,
		magnetCharges: g.cfg.Paddle.MagnetCharges,
	}

	g.loadLevel(g.levelIndex)
	g.state = StateServe
}

func (g *Game) loadConfig() config.PrismConfig {
	var cfg config.PrismConfig
	if g.cfgOverride != nil {
		cfg = *g.cfgOverride
	} else {
		loaded, err := config.LoadPrism(configPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
			loaded = config.DefaultPrismConfig()
		}
		cfg = loaded
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPrismPreset(&cfg, difficultyPreset)
	}

	if err := cfg.Validate(); err != nil {
		g.log.Warn("invalid config, using defaults", "err", err)
		cfg = config.DefaultPrismConfig()
	}
	return cfg
}

func (g *Game) loadLevels() []*Level {
	if len(g.levelsFixed) > 0 {
		return g.levelsFixed
	}
	if path := g.cfg.Gameplay.LevelFile; path != "" {
		levels, err := LoadLevelFile(path)
		if err == nil {
			return levels
		}
		g.log.Warn("using built-in levels", "err", err)
	}
	return BuiltinLevels()
}

func (g *Game) tallestLevel() int {
	tallest := 0
	for _, l := range g.levels {
		tallest = core.Max(tallest, l.Height)
	}
	return tallest
}

// loadLevel loads a level by index and rebuilds prisms and turrets.
func (g *Game) loadLevel(index int) {
	g.level = g.levels[index%len(g.levels)].Clone()
	g.cellW = 1
	if g.level.Width > 0 {
		g.cellW = g.worldW / float64(g.level.Width)
	}

	g.projectiles = g.projectiles[:0]
	clear(g.dead)
	g.blocks = make(map[core.EntityID]*prism.Block)
	g.turrets = g.turrets[:0]

	for row := 0; row < g.level.Height; row++ {
		for col := 0; col < g.level.Width; col++ {
			cell := &g.level.Cells[row][col]
			switch cell.Type {
			case CellPrism:
				g.blocks[g.cellID(row, col)] = g.buildBlock(row, col)
			case CellTurret:
				cell.HP = g.cfg.Turrets.HP
				cell.Points = g.cfg.Gameplay.TurretPoints
				interval := g.difficulty.TurretFireInterval(g.cfg.Turrets.FireEvery, g.progress())
				g.turrets = append(g.turrets, &turret{
					row:      row,
					col:      col,
					cooldown: interval * g.rng.Range(0.5, 1),
				})
			case CellBrick, CellHard:
				// Level maps score a plain brick at 10; brick_points rescales that.
				cell.Points = cell.Points * g.cfg.Gameplay.BrickPoints / 10
			}
		}
	}

	g.log.Debug("level loaded", "id", g.level.ID, "prisms", len(g.blocks), "turrets", len(g.turrets))
}

// buildBlock creates the prism block at (row, col) with its neighbors filled in.
func (g *Game) buildBlock(row, col int) *prism.Block {
	blk := prism.NewBlock(g.cellID(row, col), g.cellCenter(row, col), g.cellW, cellHeight)
	for _, d := range prism.Directions() {
		dx, dy := d.Offset()
		r, c := row-dy, col+dx
		if g.level.InBounds(r, c) && g.level.Cells[r][c].Blocking() {
			blk.SetNeighbor(d, prism.Neighbor{ID: g.cellID(r, c), Bounds: prism.Solid})
		}
	}
	return blk
}

// cellID returns the handle of a grid cell. Handles start at 1.
func (g *Game) cellID(row, col int) core.EntityID {
	return core.EntityID(1 + row*g.level.Width + col) //#nosec G115 -- grid indices are small and positive
}

// cellCenter returns the world position of a cell's center.
func (g *Game) cellCenter(row, col int) core.Point2D {
	return core.NewPoint2D(
		(float64(col)+0.5)*g.cellW,
		g.gridTop-(float64(row)+0.5)*cellHeight,
	)
}

// cellAt returns the grid cell containing pos; ok is false off the grid.
func (g *Game) cellAt(pos core.Point2D) (row, col int, ok bool) {
	col = int(math.Floor(pos.X / g.cellW))
	row = int(math.Floor((g.gridTop - pos.Y) / cellHeight))
	return row, col, g.level.InBounds(row, col)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateServe {
		g.movePaddle(in)
		if in.Has(core.ActionFire) {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.paddle.update(g.dT) {
		g.log.Debug("paddle respawned", "tick", g.tickCount)
	}
	g.updatePaddle(in)
	g.updateTurrets()
	g.stepProjectiles()

	if g.state == StatePlaying && g.level.CountAlive() == 0 {
		g.handleLevelClear()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) movePaddle(in core.InputFrame) {
	step := g.cfg.Paddle.Speed * g.dT
	if in.Has(core.ActionLeft) {
		g.paddle.move(-step, g.worldW)
	}
	if in.Has(core.ActionRight) {
		g.paddle.move(step, g.worldW)
	}
}

// updatePaddle handles movement, the magnet and firing.
func (g *Game) updatePaddle(in core.InputFrame) {
	if g.paddle.Removed() {
		return
	}
	g.movePaddle(in)

	if in.Has(core.ActionMagnet) {
		ticks := int(math.Round(g.cfg.Paddle.MagnetSeconds / g.dT))
		if g.paddle.activateMagnet(ticks) {
			g.log.Debug("magnet on", "tick", g.tickCount, "charges", g.paddle.MagnetCharges())
		}
	}

	if in.Has(core.ActionFire) && g.paddle.fireCooldown <= 0 {
		g.fireLaser()
	}
}

func (g *Game) fireLaser() {
	pos := core.NewPoint2D(g.paddle.X, g.paddle.Y+g.paddle.Height/2+g.cfg.Lasers.Height/2)
	g.AddProjectile(projectile.PaddleLaserBullet, pos)
	g.paddle.fireCooldown = g.cfg.Lasers.Cooldown
	g.stats.LasersFired++
}

// updateTurrets counts down turret timers and fires at the paddle. Turrets
// hold fire while the paddle is out of play.
func (g *Game) updateTurrets() {
	if g.paddle.Removed() {
		return
	}
	for _, t := range g.turrets {
		if !g.level.Cells[t.row][t.col].Alive {
			continue
		}
		t.cooldown -= g.dT
		if t.cooldown > 0 {
			continue
		}
		g.fireTurret(t)
		t.cooldown = g.difficulty.TurretFireInterval(g.cfg.Turrets.FireEvery, g.progress())
	}
}

func (g *Game) fireTurret(t *turret) {
	origin := g.cellCenter(t.row, t.col).Add(core.NewVector2D(0, -cellHeight/2))
	p := g.AddProjectile(projectile.LaserTurretBullet, origin)

	dir := core.Normalize(g.paddle.Center().Sub(origin))
	if dir.IsZero() {
		dir = p.GetVelocityDirection()
	}
	p.SetVelocity(dir, g.difficulty.TurretBulletSpeed(g.cfg.Turrets.BulletSpeed, g.progress()))
	g.stats.TurretShots++
}

// AddProjectile creates a projectile of the given kind at pos and takes
// ownership of it. Projectiles added while a tick is being resolved are not
// processed until the next tick.
func (g *Game) AddProjectile(kind projectile.Kind, pos core.Point2D) *projectile.Projectile {
	p := g.factory.Create(kind, pos)
	g.register(p)
	return p
}

func (g *Game) register(p *projectile.Projectile) {
	p.SetID(g.nextID)
	g.nextID++
	g.projectiles = append(g.projectiles, p)
}

// GetPlayerPaddle returns the paddle collaborator for magnet steering.
func (g *Game) GetPlayerPaddle() projectile.Paddle {
	if g.paddle == nil {
		return nil
	}
	return g.paddle
}

// PauseState reports which parts of the game are paused.
func (g *Game) PauseState() projectile.PauseState {
	if g.state == StatePaused {
		return projectile.PauseGame
	}
	return projectile.PauseNone
}

// loseLife handles the paddle being hit by a hostile shot.
func (g *Game) loseLife() {
	g.lives--
	g.stats.LivesLost++

	// Clear every hostile shot so the respawn is safe
	for _, p := range g.projectiles {
		if p.IsHostile() {
			g.dead[p.ID()] = true
		}
	}

	if g.lives <= 0 {
		g.state = StateGameOver
		g.log.Info("game over", "score", g.score, "tick", g.tickCount)
		return
	}

	g.paddle.knockOut(g.cfg.Gameplay.RespawnTicks)
	g.paddle.magnetCharges = g.cfg.Paddle.MagnetCharges
	g.log.Debug("paddle hit", "lives", g.lives, "tick", g.tickCount)
}

// handleLevelClear handles when every destructible piece is gone.
func (g *Game) handleLevelClear() {
	g.log.Info("level cleared", "level", g.level.ID, "score", g.score, "tick", g.tickCount)
	g.levelIndex++

	if g.levelIndex >= len(g.levels) {
		g.state = StateWin
		return
	}

	g.loadLevel(g.levelIndex)
	g.paddle.fireCooldown = 0
	g.state = StateServe
}

// progress reports the run's progress to the difficulty curve.
func (g *Game) progress() config.Progress {
	return config.Progress{Score: g.score, Ticks: g.tickCount, LevelsCleared: g.levelIndex}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Stats returns event counters since the last reset.
func (g *Game) Stats() Stats { return g.stats }

// Phase returns the state name (serve, playing, paused, gameover, win).
func (g *Game) Phase() string { return g.state }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// TickCount returns the number of simulated ticks.
func (g *Game) TickCount() int { return g.tickCount }

// Level returns the level being played.
func (g *Game) Level() *Level { return g.level }

// Paddle returns the player's paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Projectiles returns the live projectiles. The slice must not be modified.
func (g *Game) Projectiles() []*projectile.Projectile { return g.projectiles }

// Block returns the prism block at (row, col), if any.
func (g *Game) Block(row, col int) (*prism.Block, bool) {
	if !g.level.InBounds(row, col) {
		return nil, false
	}
	blk, ok := g.blocks[g.cellID(row, col)]
	return blk, ok
}

// Register the game with the registry
func init() {
	registry.Register("prism", func() registry.Game {
		return New()
	})
}
