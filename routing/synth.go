package routing

import "cabling/core"

// Routing constants. Distances are canvas units.
const (
	// alignmentThreshold is the center offset below which two nodes are
	// treated as level (or stacked) when choosing edges.
	alignmentThreshold = 20.0

	// exitDistance is how far a cable travels straight out from its border
	// point before it is allowed to turn.
	exitDistance = 32.0

	// obstaclePadding expands node rectangles during intersection tests.
	obstaclePadding = 5.0

	// detourPadding and detourClearance control how far a detour swings
	// around an obstructing node.
	detourPadding   = 20.0
	detourClearance = 10.0

	// channelSnapMinLength is the minimum segment extent worth snapping
	// onto a channel.
	channelSnapMinLength = 30.0

	// channelPasses caps the opportunistic snapping loop.
	channelPasses = 3

	// spacingBucket is the perpendicular-position rounding used when
	// grouping parallel segments, and cableSpacing the offset between
	// members of a group.
	spacingBucket = 5.0
	cableSpacing  = 3.0

	// edgeSpanRatio and edgeSpanMax bound the usable span when spreading
	// several cables along one edge.
	edgeSpanRatio = 0.4
	edgeSpanMax   = 30.0
)

// exitPoint steps perpendicular to the given edge, away from the node.
func exitPoint(p core.Point, edge core.Edge) core.Point {
	switch edge {
	case core.EdgeTop:
		return core.Point{X: p.X, Y: p.Y - exitDistance}
	case core.EdgeBottom:
		return core.Point{X: p.X, Y: p.Y + exitDistance}
	case core.EdgeLeft:
		return core.Point{X: p.X - exitDistance, Y: p.Y}
	default: // right
		return core.Point{X: p.X + exitDistance, Y: p.Y}
	}
}

// GenerateOrthogonalRoute builds the initial minimal-bend path between two
// border points. Both ends first travel straight out from their edge; the
// exit and approach stubs are then joined with one corner when the edges
// face different axes, or an S/U jog when they share an axis.
func GenerateOrthogonalRoute(sourcePoint, targetPoint core.Point, sourceEdge, targetEdge core.Edge) []core.Point {
	exit := exitPoint(sourcePoint, sourceEdge)
	approach := exitPoint(targetPoint, targetEdge)

	var corner core.Point
	if sourceEdge.IsHorizontal() == targetEdge.IsHorizontal() {
		// Same orientation class: jog across at the exit's coordinate,
		// then run to the approach on its own axis.
		if sourceEdge.IsHorizontal() {
			corner = core.Point{X: exit.X, Y: approach.Y}
		} else {
			corner = core.Point{X: approach.X, Y: exit.Y}
		}
	} else {
		// L-shaped joint: one axis from the exit, the other from the approach.
		if sourceEdge.IsHorizontal() {
			corner = core.Point{X: approach.X, Y: exit.Y}
		} else {
			corner = core.Point{X: exit.X, Y: approach.Y}
		}
	}

	return []core.Point{sourcePoint, exit, corner, approach, targetPoint}
}
