// Package geometry provides the rectangle and segment primitives the router
// is built on. Only axis-aligned rectangles and orthogonal segments are
// supported; diagonal segments never intersect anything here.
package geometry

import (
	"math"

	"cabling/core"
)

// Rect is an axis-aligned rectangle given by its extreme coordinates.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// NodeRect returns the bounding rectangle of a node (centered at X, Y).
func NodeRect(n core.Node) Rect {
	return Rect{
		MinX: n.X - n.Width/2,
		MinY: n.Y - n.Height/2,
		MaxX: n.X + n.Width/2,
		MaxY: n.Y + n.Height/2,
	}
}

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		MinX: r.MinX - pad,
		MinY: r.MinY - pad,
		MaxX: r.MaxX + pad,
		MaxY: r.MaxY + pad,
	}
}

// Contains reports whether a point lies inside the rectangle (inclusive).
func (r Rect) Contains(p core.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return (r.MinX + r.MaxX) / 2 }

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 { return (r.MinY + r.MaxY) / 2 }

// SegmentIntersectsRect reports whether the orthogonal segment a-b passes
// through the rectangle. A horizontal segment intersects when its y lies
// within the vertical bounds and its x extent overlaps the horizontal
// bounds; vertical segments are symmetric. Non-orthogonal segments never
// intersect.
func SegmentIntersectsRect(a, b core.Point, r Rect) bool {
	switch {
	case a.Y == b.Y: // horizontal
		if a.Y < r.MinY || a.Y > r.MaxY {
			return false
		}
		lo, hi := math.Min(a.X, b.X), math.Max(a.X, b.X)
		return lo <= r.MaxX && hi >= r.MinX
	case a.X == b.X: // vertical
		if a.X < r.MinX || a.X > r.MaxX {
			return false
		}
		lo, hi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		return lo <= r.MaxY && hi >= r.MinY
	default:
		return false
	}
}

// RoundTo rounds v to the nearest multiple of step.
func RoundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}
