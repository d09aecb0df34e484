package routing

import (
	"math"

	"cabling/core"
)

// channelIndex builds an id lookup for channels.
func channelIndex(channels []core.Channel) map[string]core.Channel {
	byID := make(map[string]core.Channel, len(channels))
	for _, ch := range channels {
		byID[ch.ID] = ch
	}
	return byID
}

// ApplyForcedChannels routes a cable through an explicit ordered channel
// list. Each forced channel contributes a single orthogonal step that moves
// the running point onto the channel's fixed coordinate; unknown channel ids
// are skipped silently. The result is orthogonal, endpoint-pinned and
// simplified.
func ApplyForcedChannels(sourcePoint, targetPoint core.Point, forcedChannels []string, channels []core.Channel) []core.Point {
	byID := channelIndex(channels)

	route := []core.Point{sourcePoint}
	current := sourcePoint
	lastVertical := false
	for _, id := range forcedChannels {
		ch, ok := byID[id]
		if !ok {
			continue
		}
		if ch.Orientation == core.Vertical {
			current.X = ch.Position
			lastVertical = true
		} else {
			current.Y = ch.Position
			lastVertical = false
		}
		route = append(route, current)
	}

	// Final alignment step towards the target before the target point itself.
	if lastVertical {
		current.Y = targetPoint.Y
	} else {
		current.X = targetPoint.X
	}
	route = append(route, current, targetPoint)

	route = EnsureOrthogonalRoute(route)
	route = PreserveConnectionPoints(route, sourcePoint, targetPoint)
	return SimplifyRoute(route)
}

// UseChannelsForRoute opportunistically snaps long free segments onto nearby
// compatible channels. It runs up to channelPasses passes, re-orthogonalizing
// at the start of each, and stops early when a pass changes nothing. Channel
// selection is first match in channel list order; scanning resumes after the
// inserted detour points rather than restarting. Best effort only: the
// outcome depends on segment scan order.
func UseChannelsForRoute(route []core.Point, channels []core.Channel) []core.Point {
	for pass := 0; pass < channelPasses; pass++ {
		route = EnsureOrthogonalRoute(route)
		changed := false

		for i := 0; i < len(route)-1; i++ {
			a, b := route[i], route[i+1]
			dx := math.Abs(b.X - a.X)
			dy := math.Abs(b.Y - a.Y)
			if dx < channelSnapMinLength && dy < channelSnapMinLength {
				continue
			}
			horizontal := dx >= dy

			for _, ch := range channels {
				if horizontal != (ch.Orientation == core.Horizontal) {
					continue
				}

				var perpA, perpB, tanLo, tanHi float64
				if horizontal {
					perpA, perpB = a.Y, b.Y
					tanLo, tanHi = math.Min(a.X, b.X), math.Max(a.X, b.X)
				} else {
					perpA, perpB = a.X, b.X
					tanLo, tanHi = math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
				}

				// The channel must sit between the segment's perpendicular
				// coordinates, and the segment must fit inside the channel's
				// extent.
				if ch.Position < math.Min(perpA, perpB) || ch.Position > math.Max(perpA, perpB) {
					continue
				}
				if tanLo < ch.Start || tanHi > ch.End {
					continue
				}

				var via1, via2 core.Point
				if horizontal {
					via1 = core.Point{X: a.X, Y: ch.Position}
					via2 = core.Point{X: b.X, Y: ch.Position}
				} else {
					via1 = core.Point{X: ch.Position, Y: a.Y}
					via2 = core.Point{X: ch.Position, Y: b.Y}
				}
				if via1 == a && via2 == b {
					// Already on the channel; a detour would only add
					// zero-length segments.
					break
				}

				detour := make([]core.Point, 0, len(route)+2)
				detour = append(detour, route[:i+1]...)
				detour = append(detour, via1, via2)
				detour = append(detour, route[i+1:]...)
				route = detour
				i += 2
				changed = true
				break
			}
		}

		if !changed {
			break
		}
	}
	return route
}
