package routing

import (
	"math"

	"cabling/core"
)

// EnsureOrthogonalRoute returns a route in which every consecutive pair of
// points shares an x or y coordinate. Diagonal pairs are split with one
// intermediate point, moving along the dominant axis first (ties favour
// horizontal). Coincident consecutive points are dropped.
func EnsureOrthogonalRoute(route []core.Point) []core.Point {
	if len(route) < 2 {
		return route
	}

	result := make([]core.Point, 0, len(route))
	result = append(result, route[0])
	for _, p := range route[1:] {
		last := result[len(result)-1]
		if p == last {
			continue
		}
		if p.X != last.X && p.Y != last.Y {
			dx := math.Abs(p.X - last.X)
			dy := math.Abs(p.Y - last.Y)
			if dx >= dy {
				result = append(result, core.Point{X: p.X, Y: last.Y})
			} else {
				result = append(result, core.Point{X: last.X, Y: p.Y})
			}
		}
		result = append(result, p)
	}
	return result
}

// PreserveConnectionPoints pins the first and last points of a route to the
// exact connection points. If pinning breaks the orthogonality of the
// adjacent segment, the neighbouring point is adjusted along the dominant
// axis of the remaining delta.
func PreserveConnectionPoints(route []core.Point, source, target core.Point) []core.Point {
	if len(route) < 2 {
		return []core.Point{source, target}
	}

	result := make([]core.Point, len(route))
	copy(result, route)

	result[0] = source
	if second := result[1]; second.X != source.X && second.Y != source.Y {
		if math.Abs(second.X-source.X) >= math.Abs(second.Y-source.Y) {
			result[1] = core.Point{X: second.X, Y: source.Y}
		} else {
			result[1] = core.Point{X: source.X, Y: second.Y}
		}
	}

	last := len(result) - 1
	result[last] = target
	if prev := result[last-1]; prev.X != target.X && prev.Y != target.Y {
		if math.Abs(prev.X-target.X) >= math.Abs(prev.Y-target.Y) {
			result[last-1] = core.Point{X: prev.X, Y: target.Y}
		} else {
			result[last-1] = core.Point{X: target.X, Y: prev.Y}
		}
	}

	return result
}

// SimplifyRoute removes redundant interior points: duplicates of their
// predecessor and points strictly collinear with both neighbours along a
// shared axis. Points whose removal would leave a diagonal segment are kept.
func SimplifyRoute(route []core.Point) []core.Point {
	if len(route) < 3 {
		return route
	}

	result := make([]core.Point, 0, len(route))
	result = append(result, route[0])
	for i := 1; i < len(route)-1; i++ {
		prev := result[len(result)-1]
		cur := route[i]
		next := route[i+1]
		if cur == prev {
			continue
		}
		sameX := prev.X == cur.X && cur.X == next.X
		sameY := prev.Y == cur.Y && cur.Y == next.Y
		if sameX || sameY {
			continue
		}
		result = append(result, cur)
	}
	if last := route[len(route)-1]; last != result[len(result)-1] {
		result = append(result, last)
	}
	return result
}
