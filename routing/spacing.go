package routing

import (
	"math"
	"sort"

	"cabling/core"
	"cabling/geometry"
)

// segmentRef identifies one orthogonal segment of one cable's route.
type segmentRef struct {
	cable      int
	point      int // index of the segment's first point
	pos        float64
	start, end float64
}

// bucketKey groups parallel segments by orientation and rounded position.
type bucketKey struct {
	horizontal bool
	pos        float64
}

// ApplySpacingToCables de-overlaps collinear segments across cables: segments
// with the same orientation and (rounded) perpendicular position that overlap
// along their own axis are fanned out symmetrically around their shared
// coordinate, cableSpacing units apart. Routes are copied before mutation so
// the caller's cables are left untouched; every adjusted route is
// re-orthogonalized at the end. The channel set is part of the spacing
// interface but grouping is purely positional, so it is not consulted.
func ApplySpacingToCables(cables []core.Cable, channels []core.Channel) []core.Cable {
	_ = channels

	spaced := make([]core.Cable, len(cables))
	for i, c := range cables {
		spaced[i] = c
		spaced[i].Route = make([]core.Point, len(c.Route))
		copy(spaced[i].Route, c.Route)
	}

	// Read phase: collect every orthogonal, non-degenerate segment.
	buckets := make(map[bucketKey][]segmentRef)
	for ci := range spaced {
		route := spaced[ci].Route
		for pi := 0; pi < len(route)-1; pi++ {
			a, b := route[pi], route[pi+1]
			if a == b {
				continue
			}
			switch {
			case a.Y == b.Y:
				key := bucketKey{horizontal: true, pos: geometry.RoundTo(a.Y, spacingBucket)}
				buckets[key] = append(buckets[key], segmentRef{
					cable: ci, point: pi, pos: a.Y,
					start: math.Min(a.X, b.X), end: math.Max(a.X, b.X),
				})
			case a.X == b.X:
				key := bucketKey{horizontal: false, pos: geometry.RoundTo(a.X, spacingBucket)}
				buckets[key] = append(buckets[key], segmentRef{
					cable: ci, point: pi, pos: a.X,
					start: math.Min(a.Y, b.Y), end: math.Max(a.Y, b.Y),
				})
			}
		}
	}

	keys := make([]bucketKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].horizontal != keys[j].horizontal {
			return keys[i].horizontal
		}
		return keys[i].pos < keys[j].pos
	})

	// Write phase: fan out each overlapping cluster.
	for _, key := range keys {
		segs := buckets[key]
		sort.Slice(segs, func(i, j int) bool {
			if segs[i].start != segs[j].start {
				return segs[i].start < segs[j].start
			}
			if segs[i].cable != segs[j].cable {
				return segs[i].cable < segs[j].cable
			}
			return segs[i].point < segs[j].point
		})

		cluster := []segmentRef{}
		maxEnd := math.Inf(-1)
		flush := func() {
			offsetCluster(spaced, cluster, key.horizontal)
			cluster = cluster[:0]
			maxEnd = math.Inf(-1)
		}
		for _, seg := range segs {
			if len(cluster) > 0 && seg.start > maxEnd {
				flush()
			}
			cluster = append(cluster, seg)
			maxEnd = math.Max(maxEnd, seg.end)
		}
		flush()
	}

	for i := range spaced {
		spaced[i].Route = EnsureOrthogonalRoute(spaced[i].Route)
	}
	return spaced
}

// offsetCluster shifts each segment of a cluster perpendicular to its axis,
// symmetrically around the shared coordinate.
func offsetCluster(cables []core.Cable, cluster []segmentRef, horizontal bool) {
	n := len(cluster)
	if n < 2 {
		return
	}
	for i, seg := range cluster {
		offset := cableSpacing * (float64(i) - float64(n-1)/2)
		route := cables[seg.cable].Route
		if horizontal {
			route[seg.point].Y += offset
			route[seg.point+1].Y += offset
		} else {
			route[seg.point].X += offset
			route[seg.point+1].X += offset
		}
	}
}
