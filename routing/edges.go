package routing

import (
	"math"

	"cabling/core"
)

// DetermineOptimalEdges chooses which border a cable should leave the source
// node from and which border it should enter the target node on, based on
// the relative position of the two node centers.
func DetermineOptimalEdges(source, target core.Node) (core.Edge, core.Edge) {
	dx := target.X - source.X
	dy := target.Y - source.Y

	// Nearly level nodes connect side to side, nearly stacked nodes connect
	// top to bottom, regardless of which separation is larger.
	if math.Abs(dy) < alignmentThreshold && math.Abs(dx) >= alignmentThreshold {
		if dx > 0 {
			return core.EdgeRight, core.EdgeLeft
		}
		return core.EdgeLeft, core.EdgeRight
	}
	if math.Abs(dx) < alignmentThreshold && math.Abs(dy) >= alignmentThreshold {
		if dy > 0 {
			return core.EdgeBottom, core.EdgeTop
		}
		return core.EdgeTop, core.EdgeBottom
	}

	// Otherwise the dominant axis decides. Ties go to top/bottom.
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return core.EdgeRight, core.EdgeLeft
		}
		return core.EdgeLeft, core.EdgeRight
	}
	if dy > 0 {
		return core.EdgeBottom, core.EdgeTop
	}
	return core.EdgeTop, core.EdgeBottom
}

// CalculateConnectionPoint returns the exact border point where the cable at
// position index (of total cables sharing this edge) attaches. Cables spread
// evenly over a limited span around the edge midpoint; the perpendicular
// coordinate is always pinned to the border itself.
func CalculateConnectionPoint(node core.Node, edge core.Edge, index, total int, forceCenter bool) core.Point {
	mid := node.EdgeMidpoint(edge)
	if forceCenter || total <= 1 {
		return mid
	}

	edgeLength := node.Width
	if edge.IsHorizontal() {
		edgeLength = node.Height
	}
	span := math.Min(edgeSpanRatio*edgeLength, edgeSpanMax)
	spacing := (2 * span) / float64(total+1)
	offset := float64(index+1)*spacing - span

	if edge.IsHorizontal() {
		return core.Point{X: mid.X, Y: mid.Y + offset}
	}
	return core.Point{X: mid.X + offset, Y: mid.Y}
}
