// Package routing computes orthogonal cable routes between rectangular nodes.
//
// Each connection is routed independently (edge selection, path synthesis,
// obstacle avoidance, channel handling, normalization); the finished cable
// set is then passed once through the cross-cable spacer. The engine is a
// pure function of its input snapshot: it keeps no state between passes and
// never mutates its inputs, so it can be re-run from scratch whenever a node
// moves.
package routing

import (
	"math"

	"cabling/core"
)

// Router routes connections over a fixed set of nodes and channels.
type Router struct {
	nodes    []core.Node
	channels []core.Channel
}

// NewRouter creates a router for the given canvas snapshot.
func NewRouter(nodes []core.Node, channels []core.Channel) *Router {
	return &Router{nodes: nodes, channels: channels}
}

// edgeUse tracks which cables attach to a given node edge, in input order.
type edgeUse struct {
	nodeID string
	edge   core.Edge
}

// plannedCable is a connection with resolved nodes and chosen edges.
type plannedCable struct {
	conn       core.Connection
	source     core.Node
	target     core.Node
	sourceEdge core.Edge
	targetEdge core.Edge
}

// GenerateCableRoutes routes every connection and returns the spaced cable
// set. Connections referencing unknown nodes are skipped silently; unknown
// forced-channel ids are ignored but still echoed on the output cable.
func (r *Router) GenerateCableRoutes(connections []core.Connection) []core.Cable {
	nodeByID := make(map[string]core.Node, len(r.nodes))
	for _, n := range r.nodes {
		nodeByID[n.ID] = n
	}

	// First pass: resolve endpoints and choose edges, recording how many
	// cables share each node edge so connection points can be spread.
	planned := make([]plannedCable, 0, len(connections))
	edgeCables := make(map[edgeUse][]string)
	for _, conn := range connections {
		source, okS := nodeByID[conn.SourceNodeID]
		target, okT := nodeByID[conn.TargetNodeID]
		if !okS || !okT {
			continue
		}
		sourceEdge, targetEdge := DetermineOptimalEdges(source, target)
		planned = append(planned, plannedCable{
			conn:       conn,
			source:     source,
			target:     target,
			sourceEdge: sourceEdge,
			targetEdge: targetEdge,
		})
		srcUse := edgeUse{nodeID: source.ID, edge: sourceEdge}
		tgtUse := edgeUse{nodeID: target.ID, edge: targetEdge}
		edgeCables[srcUse] = append(edgeCables[srcUse], conn.ID)
		edgeCables[tgtUse] = append(edgeCables[tgtUse], conn.ID)
	}

	// Second pass: route each cable.
	cables := make([]core.Cable, 0, len(planned))
	for _, p := range planned {
		// Purely horizontal links look wrong with spread endpoints, so
		// cables between level nodes attach dead center.
		forceCenter := p.sourceEdge.IsHorizontal() && p.targetEdge.IsHorizontal() &&
			math.Abs(p.source.Y-p.target.Y) < alignmentThreshold

		srcIdx, srcTotal := edgePosition(edgeCables[edgeUse{p.source.ID, p.sourceEdge}], p.conn.ID)
		tgtIdx, tgtTotal := edgePosition(edgeCables[edgeUse{p.target.ID, p.targetEdge}], p.conn.ID)
		sourcePoint := CalculateConnectionPoint(p.source, p.sourceEdge, srcIdx, srcTotal, forceCenter)
		targetPoint := CalculateConnectionPoint(p.target, p.targetEdge, tgtIdx, tgtTotal, forceCenter)

		var route []core.Point
		if len(p.conn.ForcedChannels) > 0 {
			route = ApplyForcedChannels(sourcePoint, targetPoint, p.conn.ForcedChannels, r.channels)
		} else {
			route = GenerateOrthogonalRoute(sourcePoint, targetPoint, p.sourceEdge, p.targetEdge)
			route = AvoidObstacles(route, r.nodes, p.source.ID, p.target.ID)
			route = UseChannelsForRoute(route, r.channels)
		}

		route = EnsureOrthogonalRoute(route)
		route = PreserveConnectionPoints(route, sourcePoint, targetPoint)
		route = SimplifyRoute(route)

		cables = append(cables, core.Cable{
			ID:             p.conn.ID,
			Name:           p.conn.Name,
			SourceNodeID:   p.conn.SourceNodeID,
			TargetNodeID:   p.conn.TargetNodeID,
			SourceEdge:     p.sourceEdge,
			TargetEdge:     p.targetEdge,
			ForcedChannels: p.conn.ForcedChannels,
			Route:          route,
		})
	}

	return ApplySpacingToCables(cables, r.channels)
}

// RouteLayout is a convenience wrapper routing a complete input snapshot.
func RouteLayout(layout core.Layout) []core.Cable {
	return NewRouter(layout.Nodes, layout.Channels).GenerateCableRoutes(layout.Connections)
}

// edgePosition returns the position of cableID within the ordered cable list
// of one node edge, and the total number of cables on that edge.
func edgePosition(cableIDs []string, cableID string) (index, total int) {
	for i, id := range cableIDs {
		if id == cableID {
			return i, len(cableIDs)
		}
	}
	return 0, len(cableIDs)
}
