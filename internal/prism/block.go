// Package prism implements prism blocks: indestructible diamond-shaped level
// pieces that split laser projectiles hitting a flat face head-on and reflect
// those striking a corner face at an angle.
package prism

import (
	"github.com/vovakirdan/prism-arcade/internal/core"
)

// Direction names one of the eight neighbor slots around a block.
type Direction int

const (
	Left Direction = iota
	Right
	Top
	Bottom
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	numDirections
)

var directionNames = [numDirections]string{
	"left", "right", "top", "bottom",
	"top_left", "top_right", "bottom_left", "bottom_right",
}

// String returns the slot name.
func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "unknown"
	}
	return directionNames[d]
}

// Offset returns the grid step (dx, dy) toward the neighbor, y up.
func (d Direction) Offset() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Top:
		return 0, 1
	case Bottom:
		return 0, -1
	case TopLeft:
		return -1, 1
	case TopRight:
		return 1, 1
	case BottomLeft:
		return -1, -1
	case BottomRight:
		return 1, -1
	}
	return 0, 0
}

// DirectionFromOffset is the inverse of Offset.
func DirectionFromOffset(dx, dy int) (Direction, bool) {
	for _, d := range Directions() {
		ox, oy := d.Offset()
		if ox == dx && oy == dy {
			return d, true
		}
	}
	return 0, false
}

// Directions returns all eight neighbor slots.
func Directions() []Direction {
	return []Direction{Left, Right, Top, Bottom, TopLeft, TopRight, BottomLeft, BottomRight}
}

// BoundsType describes whether a neighbor closes off the side it sits on.
type BoundsType int

const (
	NoBounds BoundsType = iota // Empty cell or something projectiles pass into
	Solid
)

// Neighbor is what a block knows about an adjacent level piece.
type Neighbor struct {
	ID     core.EntityID
	Bounds BoundsType
}

// Block is a prism block occupying one level cell.
type Block struct {
	ID     core.EntityID
	Center core.Point2D
	Width  float64
	Height float64

	neighbors [numDirections]Neighbor
	bounds    core.BoundingLines
}

// NewBlock creates a block with every neighbor open, so all four diamond
// faces are present.
func NewBlock(id core.EntityID, center core.Point2D, width, height float64) *Block {
	b := &Block{
		ID:     id,
		Center: center,
		Width:  width,
		Height: height,
	}
	b.rebuildBounds()
	return b
}

// Neighbor returns the neighbor in the given slot.
func (b *Block) Neighbor(d Direction) Neighbor {
	return b.neighbors[d]
}

// SetNeighbor stores a neighbor and recomputes the bounding lines.
func (b *Block) SetNeighbor(d Direction, n Neighbor) {
	b.neighbors[d] = n
	b.rebuildBounds()
}

// ClearNeighbor opens the given slot, e.g. after the neighbor was destroyed.
func (b *Block) ClearNeighbor(d Direction) {
	b.SetNeighbor(d, Neighbor{})
}

// BoundingLines returns the faces that can currently be hit.
func (b *Block) BoundingLines() core.BoundingLines {
	return b.bounds
}

// CollisionCheck reports whether any of other's lines cross this block's faces.
func (b *Block) CollisionCheck(other core.BoundingLines) bool {
	return b.bounds.CollisionCheck(other)
}

func (b *Block) open(dirs ...Direction) bool {
	for _, d := range dirs {
		if b.neighbors[d].Bounds == NoBounds {
			return true
		}
	}
	return false
}

// rebuildBounds lays out the diamond whose vertices sit at the cell's edge
// midpoints. A face is kept only when one of the three neighbors on its side
// is open.
func (b *Block) rebuildBounds() {
	hw, hh := b.Width/2, b.Height/2
	top := b.Center.Add(core.NewVector2D(0, hh))
	right := b.Center.Add(core.NewVector2D(hw, 0))
	bottom := b.Center.Add(core.NewVector2D(0, -hh))
	left := b.Center.Add(core.NewVector2D(-hw, 0))

	faces := []struct {
		seg    core.Segment
		normal core.Vector2D
		side   [3]Direction
	}{
		{core.NewSegment(top, right), core.NewVector2D(hh, hw), [3]Direction{Top, TopRight, Right}},
		{core.NewSegment(right, bottom), core.NewVector2D(hh, -hw), [3]Direction{Right, BottomRight, Bottom}},
		{core.NewSegment(bottom, left), core.NewVector2D(-hh, -hw), [3]Direction{Bottom, BottomLeft, Left}},
		{core.NewSegment(left, top), core.NewVector2D(-hh, hw), [3]Direction{Left, TopLeft, Top}},
	}

	b.bounds = core.BoundingLines{}
	for _, f := range faces {
		if b.open(f.side[:]...) {
			b.bounds.AddBound(f.seg, core.Normalize(f.normal))
		}
	}
}
