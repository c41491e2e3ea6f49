package gallery

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the complete game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	PaddleX    float64
	Score      int
	Lives      int
	LevelIndex int
	State      string
	NextID     uint32

	PaddleRemoved bool
	MagnetCharges int
	MagnetTicks   int

	// Projectile state (each projectile is 8 values: ID, Kind, X, Y, DirX, DirY, Speed, Tag)
	ProjectileCount int
	ProjectileData  []float64

	// Cell states (flattened: row*width + col = index)
	// Each cell is 2 ints: Alive, HP
	CellData []int

	// Turret cooldowns in grid order
	TurretData []float64

	RNGState uint64
}

const projectileFields = 8

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	cellData := make([]int, g.level.Width*g.level.Height*2)
	for row := 0; row < g.level.Height; row++ {
		for col := 0; col < g.level.Width; col++ {
			idx := (row*g.level.Width + col) * 2
			cell := g.level.Cells[row][col]
			if cell.Alive {
				cellData[idx] = 1
			}
			cellData[idx+1] = cell.HP
		}
	}

	projData := make([]float64, 0, len(g.projectiles)*projectileFields)
	for _, p := range g.projectiles {
		pos := p.GetPosition()
		dir := p.GetVelocityDirection()
		projData = append(projData,
			float64(p.ID()),
			float64(p.GetType()),
			pos.X, pos.Y,
			dir.X, dir.Y,
			p.GetVelocityMagnitude(),
			float64(p.LastThingCollidedWith()),
		)
	}

	turretData := make([]float64, len(g.turrets))
	for i, t := range g.turrets {
		turretData[i] = t.cooldown
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:    g.paddle.X,
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		State:      g.state,
		NextID:     uint32(g.nextID),

		PaddleRemoved: g.paddle.removed,
		MagnetCharges: g.paddle.magnetCharges,
		MagnetTicks:   g.paddle.magnetTicks,

		ProjectileCount: len(g.projectiles),
		ProjectileData:  projData,
		CellData:        cellData,
		TurretData:      turretData,

		RNGState: g.rng.State(),
	}
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := xxhash.New()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	writeInt := func(v int) { writeU64(uint64(v)) } //#nosec G115 -- hash computation
	writeFloat := func(v float64) { writeU64(math.Float64bits(v)) }

	writeU64(snap.Tick)
	writeFloat(snap.PaddleX)
	writeInt(snap.Score)
	writeInt(snap.Lives)
	writeInt(snap.LevelIndex)
	_, _ = h.WriteString(snap.State)
	writeU64(uint64(snap.NextID))
	if snap.PaddleRemoved {
		writeU64(1)
	} else {
		writeU64(0)
	}
	writeInt(snap.MagnetCharges)
	writeInt(snap.MagnetTicks)

	writeInt(snap.ProjectileCount)
	for _, v := range snap.ProjectileData {
		writeFloat(v)
	}
	for _, v := range snap.CellData {
		writeInt(v)
	}
	for _, v := range snap.TurretData {
		writeFloat(v)
	}
	writeU64(snap.RNGState)

	return h.Sum64()
}

// StateHash fingerprints the current state for replay checks.
func (g *Game) StateHash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}
