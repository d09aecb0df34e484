package routing

import (
	"cabling/core"
	"cabling/geometry"
)

// AvoidObstacles walks a route segment by segment and swings any segment that
// cuts through a node around that node. The route's own endpoint nodes are
// never treated as obstacles. Detection is first-match in node list order,
// and a detoured segment is not re-checked against the remaining nodes.
func AvoidObstacles(route []core.Point, allNodes []core.Node, sourceID, targetID string) []core.Point {
	route = EnsureOrthogonalRoute(route)
	if len(route) < 2 {
		return route
	}

	obstacles := make([]core.Node, 0, len(allNodes))
	for _, n := range allNodes {
		if n.ID == sourceID || n.ID == targetID {
			continue
		}
		obstacles = append(obstacles, n)
	}

	result := make([]core.Point, 0, len(route))
	result = append(result, route[0])
	for i := 0; i < len(route)-1; i++ {
		start, end := route[i], route[i+1]

		detoured := false
		for _, node := range obstacles {
			padded := geometry.NodeRect(node).Expand(obstaclePadding)
			if !geometry.SegmentIntersectsRect(start, end, padded) {
				continue
			}
			detour := createSimpleDetour(start, end, node)
			result = append(result, detour[1:]...)
			detoured = true
			break
		}
		if !detoured {
			result = append(result, end)
		}
	}

	return SimplifyRoute(result)
}

// createSimpleDetour replaces the segment start-end with a rectangular bypass
// around node. Horizontal segments swing above or below depending on which
// side of the node's center they run; vertical segments swing left or right.
func createSimpleDetour(start, end core.Point, node core.Node) []core.Point {
	expanded := geometry.NodeRect(node).Expand(detourPadding)

	if start.Y == end.Y { // horizontal segment
		detourY := expanded.MaxY + detourClearance
		if start.Y <= node.Y {
			detourY = expanded.MinY - detourClearance
		}
		return []core.Point{
			start,
			{X: start.X, Y: detourY},
			{X: end.X, Y: detourY},
			end,
		}
	}

	// vertical segment
	detourX := expanded.MaxX + detourClearance
	if start.X <= node.X {
		detourX = expanded.MinX - detourClearance
	}
	return []core.Point{
		start,
		{X: detourX, Y: start.Y},
		{X: detourX, Y: end.Y},
		end,
	}
}
