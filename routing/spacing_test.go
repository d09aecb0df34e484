package routing

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cabling/core"
)

func cableWithRoute(id string, route ...core.Point) core.Cable {
	return core.Cable{ID: id, Route: route}
}

func TestApplySpacingToCables_FansOutOverlappingSegments(t *testing.T) {
	// Three cables share the same horizontal run at y=100.
	cables := []core.Cable{
		cableWithRoute("c1", core.Point{X: 0, Y: 100}, core.Point{X: 200, Y: 100}),
		cableWithRoute("c2", core.Point{X: 50, Y: 100}, core.Point{X: 250, Y: 100}),
		cableWithRoute("c3", core.Point{X: 20, Y: 100}, core.Point{X: 180, Y: 100}),
	}

	spaced := ApplySpacingToCables(cables, nil)

	ys := make([]float64, 0, 3)
	for _, c := range spaced {
		if len(c.Route) < 2 {
			t.Fatalf("cable %s lost its route: %v", c.ID, c.Route)
		}
		if c.Route[0].Y != c.Route[1].Y {
			t.Fatalf("cable %s segment no longer horizontal: %v", c.ID, c.Route)
		}
		ys = append(ys, c.Route[0].Y)
	}
	sort.Float64s(ys)

	want := []float64{97, 100, 103}
	if diff := cmp.Diff(want, ys); diff != "" {
		t.Errorf("spaced positions mismatch (-want +got):\n%s", diff)
	}

	// Symmetric around the shared coordinate.
	if mean := (ys[0] + ys[1] + ys[2]) / 3; mean != 100 {
		t.Errorf("offsets not symmetric: mean = %v", mean)
	}
}

func TestApplySpacingToCables_EvenGroupSplitsSymmetrically(t *testing.T) {
	cables := []core.Cable{
		cableWithRoute("c1", core.Point{X: 0, Y: 100}, core.Point{X: 0, Y: 300}),
		cableWithRoute("c2", core.Point{X: 0, Y: 150}, core.Point{X: 0, Y: 250}),
	}

	spaced := ApplySpacingToCables(cables, nil)

	xs := []float64{spaced[0].Route[0].X, spaced[1].Route[0].X}
	sort.Float64s(xs)
	if xs[0] != -1.5 || xs[1] != 1.5 {
		t.Errorf("two-cable offsets = %v, want [-1.5 1.5]", xs)
	}
}

func TestApplySpacingToCables_NonOverlappingLeftAlone(t *testing.T) {
	cables := []core.Cable{
		cableWithRoute("c1", core.Point{X: 0, Y: 100}, core.Point{X: 50, Y: 100}),
		cableWithRoute("c2", core.Point{X: 60, Y: 100}, core.Point{X: 120, Y: 100}),
	}

	spaced := ApplySpacingToCables(cables, nil)

	for i, c := range spaced {
		if c.Route[0].Y != 100 || c.Route[1].Y != 100 {
			t.Errorf("cable %d moved despite no overlap: %v", i, c.Route)
		}
	}
}

func TestApplySpacingToCables_SingleCableUntouched(t *testing.T) {
	in := []core.Cable{
		cableWithRoute("only",
			core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 0}, core.Point{X: 100, Y: 100}),
	}

	spaced := ApplySpacingToCables(in, nil)
	if diff := cmp.Diff(in[0].Route, spaced[0].Route); diff != "" {
		t.Errorf("single cable modified (-want +got):\n%s", diff)
	}
}

func TestApplySpacingToCables_DoesNotMutateInput(t *testing.T) {
	cables := []core.Cable{
		cableWithRoute("c1", core.Point{X: 0, Y: 100}, core.Point{X: 200, Y: 100}),
		cableWithRoute("c2", core.Point{X: 0, Y: 100}, core.Point{X: 200, Y: 100}),
	}

	_ = ApplySpacingToCables(cables, nil)

	for _, c := range cables {
		if c.Route[0].Y != 100 || c.Route[1].Y != 100 {
			t.Errorf("input cable %s mutated: %v", c.ID, c.Route)
		}
	}
}

func TestApplySpacingToCables_BucketRounding(t *testing.T) {
	// Position 101 rounds to the 100 bucket, so the two coincident cables
	// there are spaced; position 110 rounds elsewhere and stays put.
	cables := []core.Cable{
		cableWithRoute("c1", core.Point{X: 0, Y: 101}, core.Point{X: 200, Y: 101}),
		cableWithRoute("c2", core.Point{X: 0, Y: 101}, core.Point{X: 200, Y: 101}),
		cableWithRoute("c3", core.Point{X: 0, Y: 110}, core.Point{X: 200, Y: 110}),
	}

	spaced := ApplySpacingToCables(cables, nil)

	if spaced[2].Route[0].Y != 110 {
		t.Errorf("cable in separate bucket moved: %v", spaced[2].Route)
	}
	gap := math.Abs(spaced[1].Route[0].Y - spaced[0].Route[0].Y)
	if gap != cableSpacing {
		t.Errorf("bucketed cables gap = %v, want %v", gap, cableSpacing)
	}
}
