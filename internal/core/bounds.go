package core

import "fmt"

// Segment is a line segment between two points.
type Segment struct {
	P1, P2 Point2D
}

// NewSegment creates a segment from p1 to p2.
func NewSegment(p1, p2 Point2D) Segment {
	return Segment{P1: p1, P2: p2}
}

// Direction returns the (unnormalized) vector from P1 to P2.
func (s Segment) Direction() Vector2D {
	return s.P2.Sub(s.P1)
}

// Intersects reports whether two segments share at least one point.
// Collinear overlapping segments count as intersecting.
func (s Segment) Intersects(other Segment) bool {
	d1 := orientation(other.P1, other.P2, s.P1)
	d2 := orientation(other.P1, other.P2, s.P2)
	d3 := orientation(s.P1, s.P2, other.P1)
	d4 := orientation(s.P1, s.P2, other.P2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(other.P1, other.P2, s.P1):
		return true
	case d2 == 0 && onSegment(other.P1, other.P2, s.P2):
		return true
	case d3 == 0 && onSegment(s.P1, s.P2, other.P1):
		return true
	case d4 == 0 && onSegment(s.P1, s.P2, other.P2):
		return true
	}
	return false
}

// orientation returns the sign of the turn a -> b -> c, snapped to 0 within Epsilon.
func orientation(a, b, c Point2D) float64 {
	v := Cross(b.Sub(a), c.Sub(a))
	if v > -Epsilon && v < Epsilon {
		return 0
	}
	return v
}

// onSegment assumes c is collinear with a-b.
func onSegment(a, b, c Point2D) bool {
	return c.X >= min(a.X, b.X)-Epsilon && c.X <= max(a.X, b.X)+Epsilon &&
		c.Y >= min(a.Y, b.Y)-Epsilon && c.Y <= max(a.Y, b.Y)+Epsilon
}

// BoundingLines is an ordered collection of (segment, outward normal) pairs
// describing a collision boundary. Projectile bounds carry zero normals since
// only their segments take part in intersection tests.
type BoundingLines struct {
	Lines   []Segment
	Normals []Vector2D
}

// NewBoundingLines pairs lines with normals. Panics when the counts differ.
func NewBoundingLines(lines []Segment, normals []Vector2D) BoundingLines {
	if len(lines) != len(normals) {
		panic(fmt.Sprintf("core: %d bounding lines but %d normals", len(lines), len(normals)))
	}
	return BoundingLines{Lines: lines, Normals: normals}
}

// AddBound appends a line with its normal.
func (b *BoundingLines) AddBound(line Segment, normal Vector2D) {
	b.Lines = append(b.Lines, line)
	b.Normals = append(b.Normals, normal)
}

// NumLines returns the number of segments.
func (b BoundingLines) NumLines() int {
	return len(b.Lines)
}

// IsEmpty reports whether there are no segments.
func (b BoundingLines) IsEmpty() bool {
	return len(b.Lines) == 0
}

// Line returns the i-th segment.
func (b BoundingLines) Line(i int) Segment {
	return b.Lines[i]
}

// Normal returns the i-th normal.
func (b BoundingLines) Normal(i int) Vector2D {
	return b.Normals[i]
}

// CollisionCheck reports whether any segment of b intersects any segment of other.
func (b BoundingLines) CollisionCheck(other BoundingLines) bool {
	for _, l1 := range b.Lines {
		for _, l2 := range other.Lines {
			if l1.Intersects(l2) {
				return true
			}
		}
	}
	return false
}

// CollisionIndex returns the index of the first segment of b hit by any segment
// of other, or -1 when nothing intersects.
func (b BoundingLines) CollisionIndex(other BoundingLines) int {
	for i, l1 := range b.Lines {
		for _, l2 := range other.Lines {
			if l1.Intersects(l2) {
				return i
			}
		}
	}
	return -1
}
