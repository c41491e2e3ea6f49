package projectile

import (
	"fmt"
	"math"

	"github.com/vovakirdan/prism-arcade/internal/core"
)

// rectBounds builds the left and right side lines of a beam-like projectile.
// Front and back edges are omitted: only side contact matters for these shapes.
func rectBounds(p *Projectile) core.BoundingLines {
	halfW := p.rightVec.Scale(p.width / 2)
	halfH := p.velocityDir.Scale(p.height / 2)

	back := p.position.Add(halfH.Negate())
	front := p.position.Add(halfH)

	left := core.NewSegment(back.Add(halfW.Negate()), front.Add(halfW.Negate()))
	right := core.NewSegment(back.Add(halfW), front.Add(halfW))

	return core.NewBoundingLines(
		[]core.Segment{left, right},
		[]core.Vector2D{{}, {}},
	)
}

// orbBounds approximates a round projectile with a regular hexagon whose first
// vertex points along the direction of travel.
func orbBounds(p *Projectile) core.BoundingLines {
	if math.Abs(p.width-p.height) > core.Epsilon {
		panic(fmt.Sprintf("projectile: %s must be round, got %.3fx%.3f", p.kind, p.width, p.height))
	}

	radius := p.width / 2
	spoke := p.velocityDir.Scale(radius)
	if p.velocityDir.IsZero() {
		spoke = core.NewVector2D(0, radius)
	}

	var verts [6]core.Point2D
	for i := range verts {
		verts[i] = p.position.Add(core.Rotate(float64(i)*60, spoke))
	}

	lines := make([]core.Segment, 0, len(verts))
	for i := range verts {
		lines = append(lines, core.NewSegment(verts[i], verts[(i+1)%len(verts)]))
	}
	return core.NewBoundingLines(lines, make([]core.Vector2D, len(lines)))
}
