package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

func TestNewBlockHasFullDiamond(t *testing.T) {
	blk := NewBlock(1, core.NewPoint2D(5, 5), 2, 2)
	bl := blk.BoundingLines()
	require.Equal(t, 4, bl.NumLines())

	for i := 0; i < bl.NumLines(); i++ {
		seg := bl.Line(i)
		n := bl.Normal(i)
		assert.InDelta(t, 1, core.Magnitude(n), tol)
		assert.InDelta(t, 0, core.Dot(n, seg.Direction()), tol)

		// Outward: the normal points away from the center.
		mid := core.NewPoint2D((seg.P1.X+seg.P2.X)/2, (seg.P1.Y+seg.P2.Y)/2)
		assert.Greater(t, core.Dot(n, mid.Sub(blk.Center)), 0.0)
	}

	// Vertices sit on the cell edge midpoints.
	assert.Equal(t, core.NewPoint2D(5, 6), bl.Line(0).P1)
	assert.Equal(t, core.NewPoint2D(6, 5), bl.Line(0).P2)
}

func TestBlockFacesFollowNeighbors(t *testing.T) {
	solid := Neighbor{ID: 9, Bounds: Solid}

	tests := []struct {
		name   string
		closed []Direction
		want   int
	}{
		{"all open", nil, 4},
		{"one side closed still has diagonals open", []Direction{Top}, 4},
		{"top right side closed", []Direction{Top, TopRight, Right}, 3},
		{"top half closed", []Direction{Left, TopLeft, Top, TopRight, Right}, 2},
		{"surrounded", Directions(), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			blk := NewBlock(1, core.NewPoint2D(0, 0), 2, 2)
			for _, d := range tc.closed {
				blk.SetNeighbor(d, solid)
			}
			assert.Equal(t, tc.want, blk.BoundingLines().NumLines())
		})
	}
}

func TestBlockReopensWhenNeighborCleared(t *testing.T) {
	blk := NewBlock(1, core.NewPoint2D(0, 0), 2, 2)
	for _, d := range Directions() {
		blk.SetNeighbor(d, Neighbor{ID: 2, Bounds: Solid})
	}
	require.True(t, blk.BoundingLines().IsEmpty())

	blk.ClearNeighbor(BottomLeft)
	bl := blk.BoundingLines()
	require.Equal(t, 1, bl.NumLines())
	assert.InDelta(t, -1/core.Sqrt2, bl.Normal(0).X, tol)
	assert.InDelta(t, -1/core.Sqrt2, bl.Normal(0).Y, tol)
	assert.Equal(t, NoBounds, blk.Neighbor(BottomLeft).Bounds)
}

func TestBlockCollisionCheck(t *testing.T) {
	blk := NewBlock(1, core.NewPoint2D(0, 0), 2, 2)
	crossing := core.NewBoundingLines(
		[]core.Segment{core.NewSegment(core.NewPoint2D(-0.1, -2), core.NewPoint2D(-0.1, -0.5))},
		[]core.Vector2D{{}},
	)
	inside := core.NewBoundingLines(
		[]core.Segment{core.NewSegment(core.NewPoint2D(0, -0.2), core.NewPoint2D(0, 0.2))},
		[]core.Vector2D{{}},
	)
	assert.True(t, blk.CollisionCheck(crossing))
	assert.False(t, blk.CollisionCheck(inside))
}

func TestDirectionOffsets(t *testing.T) {
	for _, d := range Directions() {
		dx, dy := d.Offset()
		assert.False(t, dx == 0 && dy == 0, d.String())
	}
	assert.Equal(t, "unknown", Direction(42).String())
}

func TestDirectionFromOffset(t *testing.T) {
	for _, d := range Directions() {
		dx, dy := d.Offset()
		got, ok := DirectionFromOffset(dx, dy)
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := DirectionFromOffset(0, 0)
	assert.False(t, ok)
	_, ok = DirectionFromOffset(2, 0)
	assert.False(t, ok)
}
