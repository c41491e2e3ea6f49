package gallery

import (
	"math"

	"github.com/vovakirdan/prism-arcade/internal/core"
	"github.com/vovakirdan/prism-arcade/internal/prism"
	"github.com/vovakirdan/prism-arcade/internal/projectile"
)

// stepProjectiles runs one tick of projectile motion and collision.
// Every projectile that existed when the tick started moves first, then each
// of them is resolved. Projectiles spawned during resolution are appended and
// wait for the next tick.
func (g *Game) stepProjectiles() {
	live := len(g.projectiles)

	for i := 0; i < live; i++ {
		g.projectiles[i].Tick(g.dT, g)
	}

	for i := 0; i < live; i++ {
		p := g.projectiles[i]
		if g.dead[p.ID()] {
			continue
		}
		if g.collide(p) {
			g.dead[p.ID()] = true
		}
	}

	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		if !g.dead[p.ID()] {
			kept = append(kept, p)
		}
	}
	// Drop references held past the new length
	for i := len(kept); i < len(g.projectiles); i++ {
		g.projectiles[i] = nil
	}
	g.projectiles = kept
	clear(g.dead)
}

// collide resolves one projectile against the playfield. Returns true when
// the projectile is used up.
func (g *Game) collide(p *projectile.Projectile) bool {
	if g.outOfBounds(p.GetPosition()) {
		return true
	}
	if p.IsHostile() && g.hitPaddle(p) {
		return true
	}
	if g.resolvePrisms(p) {
		return true
	}
	return g.hitCell(p)
}

func (g *Game) outOfBounds(pos core.Point2D) bool {
	return pos.X < 0 || pos.X > g.worldW || pos.Y < 0 || pos.Y > g.worldH
}

// hitPaddle checks a hostile projectile against the paddle. With the magnet
// on, the shot is absorbed for points; otherwise the player loses a life.
func (g *Game) hitPaddle(p *projectile.Projectile) bool {
	if g.paddle.Removed() || !g.paddle.Contains(p.GetPosition(), p.Width()/2) {
		return false
	}
	if g.paddle.MagnetActive() {
		g.score += g.cfg.Gameplay.AbsorbPoints
		g.stats.Absorbed++
		g.log.Debug("absorbed", "id", p.ID(), "kind", p.GetType())
		return true
	}
	g.loseLife()
	return true
}

// resolvePrisms runs the prism resolver for every block the projectile
// overlaps: the block whose cell holds its center, and any neighboring block
// whose faces its bounding lines cross. Returns true when a split replaced
// the projectile with its children.
func (g *Game) resolvePrisms(p *projectile.Projectile) bool {
	if len(g.blocks) == 0 || !p.IsRefractable() {
		return false
	}

	row, col, inGrid := g.cellAt(p.GetPosition())
	bounds := p.BuildBoundingLines()

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if !g.level.InBounds(r, c) {
				continue
			}
			blk, ok := g.blocks[g.cellID(r, c)]
			if !ok {
				continue
			}
			home := inGrid && dr == 0 && dc == 0
			if !home && !blk.CollisionCheck(bounds) {
				continue
			}

			out := prism.Resolve(p, blk, g.resolver)
			switch out.Action {
			case prism.ActionSplit:
				g.stats.Splits++
				for _, child := range out.Spawns {
					g.register(child)
					g.stats.Spawned++
				}
				g.log.Debug("split", "id", p.ID(), "block", blk.ID, "zone", out.Zone,
					"angle", out.Angle, "children", len(out.Spawns))
				return true
			case prism.ActionReflect:
				g.stats.Reflections++
				g.log.Debug("reflect", "id", p.ID(), "block", blk.ID, "zone", out.Zone, "angle", out.Angle)
				bounds = p.BuildBoundingLines()
			}
		}
	}
	return false
}

// hitCell applies the projectile to the grid cell under its center.
// Hostile shots fly over bricks and turrets; everything stops at solids.
func (g *Game) hitCell(p *projectile.Projectile) bool {
	row, col, ok := g.cellAt(p.GetPosition())
	if !ok {
		return false
	}
	cell := &g.level.Cells[row][col]
	if !cell.Alive {
		return false
	}

	switch cell.Type {
	case CellSolid:
		return true
	case CellBrick, CellHard, CellTurret:
		if p.IsHostile() {
			return false
		}
		g.damageCell(row, col, p.Damage())
		return true
	}
	return false
}

// damageCell removes hit points from a destructible cell. Fractional damage
// from split shots still counts as one hit.
func (g *Game) damageCell(row, col int, damage float64) {
	cell := &g.level.Cells[row][col]
	hits := int(math.Ceil(damage - core.Epsilon))
	if hits < 1 {
		hits = 1
	}
	cell.HP -= hits
	if cell.HP > 0 {
		return
	}

	cell.Alive = false
	g.score += cell.Points
	if cell.Type == CellTurret {
		g.stats.TurretsDestroyed++
	} else {
		g.stats.BricksDestroyed++
	}
	g.log.Debug("destroyed", "type", cell.Type, "row", row, "col", col, "score", g.score)
	g.openNeighbors(row, col)
}

// openNeighbors tells the prism blocks around a destroyed cell that the side
// facing it is open again.
func (g *Game) openNeighbors(row, col int) {
	for _, d := range prism.Directions() {
		dx, dy := d.Offset()
		r, c := row-dy, col+dx
		if !g.level.InBounds(r, c) {
			continue
		}
		blk, ok := g.blocks[g.cellID(r, c)]
		if !ok {
			continue
		}
		// The destroyed cell sits in the opposite slot as seen from the block.
		if back, ok := prism.DirectionFromOffset(-dx, -dy); ok {
			blk.ClearNeighbor(back)
		}
	}
}
