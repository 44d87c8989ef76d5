package placement

import (
	"math"
	"reflect"
	"testing"

	"github.com/darkstore/rackplan/pkg/catalog"
	"github.com/darkstore/rackplan/pkg/errors"
	"github.com/darkstore/rackplan/pkg/geometry"
)

const eps = 1e-9

func mustRacks(t *testing.T, count int, kind catalog.Kind) []catalog.Rack {
	t.Helper()
	racks, err := catalog.Default().NewRacks(count, kind)
	if err != nil {
		t.Fatal(err)
	}
	return racks
}

// openLayout is the sample floor without obstacles, for tests that need
// an unobstructed grid.
func openLayout() catalog.Layout {
	l := catalog.SampleLayout()
	l.Constraints = nil
	return l
}

func TestOptimizeEmptyInput(t *testing.T) {
	sol, err := New().Optimize(catalog.SampleLayout(), nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol.Placements) != 0 {
		t.Errorf("placements = %d, want 0", len(sol.Placements))
	}
	if sol.Score != 0 {
		t.Errorf("score = %v, want 0", sol.Score)
	}
}

func TestOptimizeInvalidLayout(t *testing.T) {
	bad := catalog.Layout{Floor: geometry.Dimensions{Width: 0, Height: 30}}
	_, err := New().Optimize(bad, mustRacks(t, 1, catalog.KindStandard), 0)
	if !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("error = %v, want INVALID_LAYOUT", err)
	}
}

func TestOptimizeSingleRack(t *testing.T) {
	layout := openLayout()
	sol, err := New().Optimize(layout, mustRacks(t, 1, catalog.KindStandard), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol.Placements) != 1 {
		t.Fatalf("placements = %d, want 1", len(sol.Placements))
	}

	p := sol.Placements[0]

	// The committed position must sit on the rack's candidate grid.
	stride := 1.2 + DefaultMinAisleWidth
	if ix := p.Pos.X / stride; math.Abs(ix-math.Round(ix)) > eps {
		t.Errorf("x = %v is not grid aligned (stride %v)", p.Pos.X, stride)
	}
	strideY := 2.4 + DefaultMinAisleWidth
	if iy := p.Pos.Y / strideY; math.Abs(iy-math.Round(iy)) > eps {
		t.Errorf("y = %v is not grid aligned (stride %v)", p.Pos.Y, strideY)
	}

	want := (1.2 * 2.4) / (20 * 30)
	if math.Abs(sol.LayoutEfficiency-want) > eps {
		t.Errorf("LayoutEfficiency = %v, want %v", sol.LayoutEfficiency, want)
	}

	// The quick score prefers the cell nearest the entrance at (19,1).
	if p.Pos.X != 15 || p.Pos.Y != 0 {
		t.Errorf("position = (%v,%v), want (15,0)", p.Pos.X, p.Pos.Y)
	}
}

func TestOptimizeOversizedRackIsSkipped(t *testing.T) {
	layout := catalog.SampleLayout()
	giant := catalog.Rack{
		ID:       "bulk_giant",
		Kind:     catalog.KindBulk,
		Dims:     geometry.Dimensions{Width: 25, Height: 25},
		Capacity: 100,
	}
	racks := append([]catalog.Rack{giant}, mustRacks(t, 2, catalog.KindStandard)...)

	sol, err := New().Optimize(layout, racks, 5)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range sol.Placements {
		if p.Rack.ID == "bulk_giant" {
			t.Error("oversized rack was placed")
		}
	}
	if len(sol.Placements) == 0 {
		t.Error("smaller racks should still be placed")
	}
}

func TestOptimizeInvariants(t *testing.T) {
	layout := catalog.SampleLayout()
	racks := mustRacks(t, 15, catalog.KindStandard)
	racks = append(racks, mustRacks(t, 8, catalog.KindHighDensity)...)
	racks = append(racks, mustRacks(t, 4, catalog.KindFreezer)...)
	racks = append(racks, mustRacks(t, 3, catalog.KindBulk)...)

	opt := New()
	sol, err := opt.Optimize(layout, racks, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol.Placements) == 0 {
		t.Fatal("no racks placed in reference scenario")
	}

	if sol.Score < 0 || sol.Score > 100 {
		t.Errorf("score = %v outside [0,100]", sol.Score)
	}

	for i, p := range sol.Placements {
		if !geometry.InBounds(layout.Floor, p.Pos, p.Rack.Dims) {
			t.Errorf("rack %s at (%v,%v) leaves the floor", p.Rack.ID, p.Pos.X, p.Pos.Y)
		}
		for _, c := range layout.Constraints {
			if geometry.Overlaps(p.Pos, p.Rack.Dims, c.Pos, c.Dims) {
				t.Errorf("rack %s overlaps obstacle %s", p.Rack.ID, c.Name)
			}
		}
		for _, q := range sol.Placements[i+1:] {
			if geometry.Overlaps(p.Pos, p.Rack.Dims, q.Pos, q.Rack.Dims) {
				t.Errorf("racks %s and %s overlap", p.Rack.ID, q.Rack.ID)
			}
		}
	}

	// Exact area identity for the placed set.
	var area float64
	for _, p := range sol.Placements {
		area += p.Rack.Dims.Area()
	}
	if want := area / layout.Floor.Area(); math.Abs(sol.LayoutEfficiency-want) > eps {
		t.Errorf("LayoutEfficiency = %v, want %v", sol.LayoutEfficiency, want)
	}
}

func TestOptimizeAisleClearance(t *testing.T) {
	layout := openLayout()
	opt := New()
	sol, err := opt.Optimize(layout, mustRacks(t, 6, catalog.KindStandard), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(sol.Placements) < 2 {
		t.Fatalf("placements = %d, want at least 2", len(sol.Placements))
	}

	minAisle := opt.MinAisleWidth()
	for i, a := range sol.Placements {
		for _, b := range sol.Placements[i+1:] {
			gapX := edgeGap(a.Pos.X, a.Rack.Dims.Width, b.Pos.X, b.Rack.Dims.Width)
			gapY := edgeGap(a.Pos.Y, a.Rack.Dims.Height, b.Pos.Y, b.Rack.Dims.Height)
			// Racks that face each other along an axis must keep at
			// least the aisle width between their nearest edges.
			if gapY < 0 && gapX < minAisle-eps {
				t.Errorf("racks %s and %s: horizontal gap %.2f < %.2f", a.Rack.ID, b.Rack.ID, gapX, minAisle)
			}
			if gapX < 0 && gapY < minAisle-eps {
				t.Errorf("racks %s and %s: vertical gap %.2f < %.2f", a.Rack.ID, b.Rack.ID, gapY, minAisle)
			}
		}
	}
}

// edgeGap returns the distance between the nearest edges of two spans;
// negative means the spans overlap.
func edgeGap(a, aw, b, bw float64) float64 {
	if a < b {
		return b - (a + aw)
	}
	return a - (b + bw)
}

func TestOptimizeObstacleExclusion(t *testing.T) {
	layout := catalog.SampleLayout()
	office := layout.Constraints[0]

	sol, err := New().Optimize(layout, mustRacks(t, 10, catalog.KindStandard), 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range sol.Placements {
		if geometry.Overlaps(p.Pos, p.Rack.Dims, office.Pos, office.Dims) {
			t.Errorf("rack %s overlaps the office footprint", p.Rack.ID)
		}
	}
}

func TestOptimizeDeterminism(t *testing.T) {
	layout := catalog.SampleLayout()
	build := func() []catalog.Rack {
		racks := mustRacks(t, 8, catalog.KindStandard)
		return append(racks, mustRacks(t, 3, catalog.KindFreezer)...)
	}

	a, err := New().Optimize(layout, build(), 50)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New().Optimize(layout, build(), 50)
	if err != nil {
		t.Fatal(err)
	}

	if a.Score != b.Score {
		t.Errorf("scores differ: %v vs %v", a.Score, b.Score)
	}
	if !reflect.DeepEqual(a.Placements, b.Placements) {
		t.Error("placements differ between identical runs")
	}

	// More attempts cannot change a deterministic result.
	c, err := New().Optimize(layout, build(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if a.Score != c.Score || !reflect.DeepEqual(a.Placements, c.Placements) {
		t.Error("result depends on attempt count despite deterministic search")
	}
}

func TestOptimizeDoesNotMutateInput(t *testing.T) {
	layout := catalog.SampleLayout()
	racks := mustRacks(t, 5, catalog.KindStandard)
	snapshot := make([]catalog.Rack, len(racks))
	copy(snapshot, racks)

	if _, err := New().Optimize(layout, racks, 1); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(racks, snapshot) {
		t.Error("input rack slice was modified")
	}
}

func TestOptimizeOrderSignificant(t *testing.T) {
	layout := openLayout()
	std := mustRacks(t, 2, catalog.KindStandard)
	bulk := mustRacks(t, 2, catalog.KindBulk)

	ab, err := New().Optimize(layout, append(append([]catalog.Rack{}, std...), bulk...), 1)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := New().Optimize(layout, append(append([]catalog.Rack{}, bulk...), std...), 1)
	if err != nil {
		t.Fatal(err)
	}

	// Caller order is the placement order; the first rack of each run
	// claims the best cell for its own footprint.
	if len(ab.Placements) == 0 || len(ba.Placements) == 0 {
		t.Fatal("expected placements in both runs")
	}
	if ab.Placements[0].Rack.Kind != catalog.KindStandard {
		t.Errorf("first placed kind = %v, want standard", ab.Placements[0].Rack.Kind)
	}
	if ba.Placements[0].Rack.Kind != catalog.KindBulk {
		t.Errorf("first placed kind = %v, want bulk", ba.Placements[0].Rack.Kind)
	}
}
