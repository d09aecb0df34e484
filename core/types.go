// Package core contains the fundamental types used throughout the cabling router.
package core

// Point represents a 2D coordinate on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge identifies one of the four borders of a node.
type Edge string

const (
	EdgeTop    Edge = "top"
	EdgeRight  Edge = "right"
	EdgeBottom Edge = "bottom"
	EdgeLeft   Edge = "left"
)

// IsHorizontal returns true if cables leave this edge travelling horizontally.
func (e Edge) IsHorizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// Orientation describes the axis a channel runs along.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Node represents a piece of equipment on the canvas. The rectangle is
// axis-aligned and centered at (X, Y). Positions are owned by the caller and
// may change between routing passes; routes are always recomputed from scratch.
type Node struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the node.
func (n Node) Center() Point {
	return Point{X: n.X, Y: n.Y}
}

// EdgeMidpoint returns the midpoint of one of the node's four borders.
func (n Node) EdgeMidpoint(e Edge) Point {
	switch e {
	case EdgeTop:
		return Point{X: n.X, Y: n.Y - n.Height/2}
	case EdgeBottom:
		return Point{X: n.X, Y: n.Y + n.Height/2}
	case EdgeLeft:
		return Point{X: n.X - n.Width/2, Y: n.Y}
	case EdgeRight:
		return Point{X: n.X + n.Width/2, Y: n.Y}
	default:
		return n.Center()
	}
}

// Channel is a shared corridor cables may be forced through or snapped onto.
// It is a line segment, not a full-canvas line: Position is the fixed
// coordinate on the perpendicular axis, Start/End bound its own axis.
type Channel struct {
	ID          string      `json:"id"`
	Orientation Orientation `json:"orientation"`
	Position    float64     `json:"position"`
	Start       float64     `json:"start"`
	End         float64     `json:"end"`
}

// Connection is a routing request between two nodes.
type Connection struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	SourceNodeID   string   `json:"sourceNodeId"`
	TargetNodeID   string   `json:"targetNodeId"`
	ForcedChannels []string `json:"forcedChannels,omitempty"`
}

// Cable is a routed connection. Route is an orthogonal polyline whose first
// point sits exactly on the source node's border and whose last point sits
// exactly on the target node's border.
type Cable struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	SourceNodeID   string   `json:"sourceNodeId"`
	TargetNodeID   string   `json:"targetNodeId"`
	SourceEdge     Edge     `json:"sourceEdge"`
	TargetEdge     Edge     `json:"targetEdge"`
	ForcedChannels []string `json:"forcedChannels,omitempty"`
	Route          []Point  `json:"route"`
}

// Layout is a complete routing input snapshot.
type Layout struct {
	Nodes       []Node       `json:"nodes"`
	Channels    []Channel    `json:"channels"`
	Connections []Connection `json:"connections"`
}
