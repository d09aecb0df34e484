package routing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cabling/core"
)

func testLayout() core.Layout {
	return core.Layout{
		Nodes: []core.Node{
			node("a", 250, 100, 100, 70),
			node("b", 120, 400, 100, 70),
			node("c", 600, 100, 100, 70),
			node("d", 420, 100, 60, 60), // sits between a and c
		},
		Channels: []core.Channel{
			{ID: "busH", Orientation: core.Horizontal, Position: 50, Start: 0, End: 800},
			{ID: "busV", Orientation: core.Vertical, Position: 700, Start: 0, End: 600},
		},
		Connections: []core.Connection{
			{ID: "k1", Name: "feed", SourceNodeID: "a", TargetNodeID: "b"},
			{ID: "k2", SourceNodeID: "a", TargetNodeID: "c"},
			{ID: "k3", SourceNodeID: "a", TargetNodeID: "b", ForcedChannels: []string{"busH"}},
		},
	}
}

func TestGenerateCableRoutes_Invariants(t *testing.T) {
	layout := testLayout()
	cables := RouteLayout(layout)

	if len(cables) != len(layout.Connections) {
		t.Fatalf("cable count = %d, want %d", len(cables), len(layout.Connections))
	}

	nodeByID := map[string]core.Node{}
	for _, n := range layout.Nodes {
		nodeByID[n.ID] = n
	}

	for _, c := range cables {
		t.Run(c.ID, func(t *testing.T) {
			if len(c.Route) < 2 {
				t.Fatalf("route too short: %v", c.Route)
			}
			assertOrthogonal(t, c.Route)

			// Endpoints must sit exactly on the chosen borders.
			src := nodeByID[c.SourceNodeID]
			tgt := nodeByID[c.TargetNodeID]
			first, last := c.Route[0], c.Route[len(c.Route)-1]
			if !onEdge(first, src, c.SourceEdge) {
				t.Errorf("first point %v not on %s edge of %s", first, c.SourceEdge, src.ID)
			}
			if !onEdge(last, tgt, c.TargetEdge) {
				t.Errorf("last point %v not on %s edge of %s", last, c.TargetEdge, tgt.ID)
			}
		})
	}
}

func onEdge(p core.Point, n core.Node, e core.Edge) bool {
	switch e {
	case core.EdgeTop:
		return p.Y == n.Y-n.Height/2
	case core.EdgeBottom:
		return p.Y == n.Y+n.Height/2
	case core.EdgeLeft:
		return p.X == n.X-n.Width/2
	case core.EdgeRight:
		return p.X == n.X+n.Width/2
	}
	return false
}

func TestGenerateCableRoutes_Idempotent(t *testing.T) {
	layout := testLayout()

	first := RouteLayout(layout)
	second := RouteLayout(layout)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("routing is not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateCableRoutes_ObstacleClearance(t *testing.T) {
	a := node("a", 0, 0, 40, 40)
	b := node("b", 150, 0, 40, 40)
	c := node("c", 300, 0, 40, 40)

	router := NewRouter([]core.Node{a, b, c}, nil)
	cables := router.GenerateCableRoutes([]core.Connection{
		{ID: "k", SourceNodeID: "a", TargetNodeID: "c"},
	})

	if len(cables) != 1 {
		t.Fatalf("cable count = %d, want 1", len(cables))
	}
	assertOrthogonal(t, cables[0].Route)
	assertClearsNode(t, cables[0].Route, b)
}

func TestGenerateCableRoutes_ForcedChannelContainment(t *testing.T) {
	layout := testLayout()
	cables := RouteLayout(layout)

	var forced *core.Cable
	for i := range cables {
		if cables[i].ID == "k3" {
			forced = &cables[i]
		}
	}
	if forced == nil {
		t.Fatal("forced cable missing from output")
	}

	found := false
	for _, p := range forced.Route {
		if p.Y == 50 {
			found = true
		}
	}
	if !found {
		t.Errorf("forced cable never touches channel busH at y=50: %v", forced.Route)
	}
	if diff := cmp.Diff([]string{"busH"}, forced.ForcedChannels); diff != "" {
		t.Errorf("forced channel list not echoed (-want +got):\n%s", diff)
	}
}

func TestGenerateCableRoutes_UnknownNodeSkipped(t *testing.T) {
	router := NewRouter([]core.Node{node("a", 0, 0, 40, 40)}, nil)
	cables := router.GenerateCableRoutes([]core.Connection{
		{ID: "bad", SourceNodeID: "a", TargetNodeID: "ghost"},
		{ID: "worse", SourceNodeID: "ghost", TargetNodeID: "a"},
	})
	if len(cables) != 0 {
		t.Errorf("cables for unresolved connections: %v", cables)
	}
}

func TestGenerateCableRoutes_UnknownForcedChannelIgnored(t *testing.T) {
	nodes := []core.Node{
		node("a", 0, 0, 40, 40),
		node("b", 200, 0, 40, 40),
	}
	router := NewRouter(nodes, nil)
	cables := router.GenerateCableRoutes([]core.Connection{
		{ID: "k", SourceNodeID: "a", TargetNodeID: "b", ForcedChannels: []string{"ghost"}},
	})

	if len(cables) != 1 {
		t.Fatalf("cable count = %d, want 1", len(cables))
	}
	assertOrthogonal(t, cables[0].Route)
	if cables[0].Route[0] != (core.Point{X: 20, Y: 0}) {
		t.Errorf("source point = %v, want (20, 0)", cables[0].Route[0])
	}
	if got := cables[0].Route[len(cables[0].Route)-1]; got != (core.Point{X: 180, Y: 0}) {
		t.Errorf("target point = %v, want (180, 0)", got)
	}
}

func TestGenerateCableRoutes_SharedEdgeSpreads(t *testing.T) {
	// Two plain cables from a to b leave a's bottom edge at distinct points.
	nodes := []core.Node{
		node("a", 0, 0, 100, 100),
		node("b", 0, 400, 100, 100),
	}
	router := NewRouter(nodes, nil)
	cables := router.GenerateCableRoutes([]core.Connection{
		{ID: "k1", SourceNodeID: "a", TargetNodeID: "b"},
		{ID: "k2", SourceNodeID: "a", TargetNodeID: "b"},
	})

	if len(cables) != 2 {
		t.Fatalf("cable count = %d, want 2", len(cables))
	}
	p1, p2 := cables[0].Route[0], cables[1].Route[0]
	if p1.Y != 50 || p2.Y != 50 {
		t.Errorf("source points not on bottom border: %v, %v", p1, p2)
	}
	if p1.X == p2.X {
		t.Errorf("shared-edge cables not spread: both at %v", p1)
	}
}

func TestGenerateCableRoutes_LevelNodesCenterCables(t *testing.T) {
	// Level left/right links force-center rather than spreading.
	nodes := []core.Node{
		node("a", 0, 0, 40, 40),
		node("b", 200, 5, 40, 40),
	}
	router := NewRouter(nodes, nil)
	cables := router.GenerateCableRoutes([]core.Connection{
		{ID: "k1", SourceNodeID: "a", TargetNodeID: "b"},
	})

	c := cables[0]
	if c.SourceEdge != core.EdgeRight || c.TargetEdge != core.EdgeLeft {
		t.Fatalf("edges = (%s, %s), want (right, left)", c.SourceEdge, c.TargetEdge)
	}
	if got := c.Route[0]; got != (core.Point{X: 20, Y: 0}) {
		t.Errorf("source point = %v, want edge center (20, 0)", got)
	}
	if got := c.Route[len(c.Route)-1]; got != (core.Point{X: 180, Y: 5}) {
		t.Errorf("target point = %v, want edge center (180, 5)", got)
	}
}
