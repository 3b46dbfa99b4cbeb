package histogram

import (
	"math"
	"testing"
)

func TestEdgesEqualWidth(t *testing.T) {
	edges := Edges(0, 10, 4)
	want := []float64{0, 2.5, 5, 7.5, 10}
	if len(edges) != len(want) {
		t.Fatalf("expected %d edges, got %d", len(want), len(edges))
	}
	for i := range want {
		if math.Abs(edges[i]-want[i]) > 1e-12 {
			t.Errorf("edge %d: got %g, want %g", i, edges[i], want[i])
		}
	}
}

func TestCountScenario(t *testing.T) {
	// bins=4, values [1,1,2,2,2,3,4,4,4,4] -> 4 bins covering [1,4],
	// counts summing to 10.
	values := []float64{1, 1, 2, 2, 2, 3, 4, 4, 4, 4}
	bins := Count(values, Edges(1, 4, 4))
	if len(bins) != 4 {
		t.Fatalf("expected 4 bins, got %d", len(bins))
	}
	sum := 0
	for _, b := range bins {
		sum += b.Count
	}
	if sum != 10 {
		t.Errorf("bin counts sum to %d, want 10", sum)
	}
	if bins[0].Lower != 1 || bins[3].Upper != 4 {
		t.Errorf("bins should cover [1,4], got [%g,%g]", bins[0].Lower, bins[3].Upper)
	}
}

func TestCountLastBinClosed(t *testing.T) {
	bins := Count([]float64{0, 5, 10}, Edges(0, 10, 2))
	// 10 equals the final edge and must land in the last bin.
	if bins[1].Count != 2 { // 5 and 10
		t.Errorf("last bin: got %d, want 2", bins[1].Count)
	}
	if bins[0].Count != 1 {
		t.Errorf("first bin: got %d, want 1", bins[0].Count)
	}
}

func TestCountHalfOpenBoundary(t *testing.T) {
	bins := Count([]float64{5}, Edges(0, 10, 2))
	// 5 sits exactly on the interior edge: it belongs to [5, 10].
	if bins[0].Count != 0 || bins[1].Count != 1 {
		t.Errorf("interior edge value misbinned: %+v", bins)
	}
}

func TestCountIgnoresNonFiniteAndOutOfRange(t *testing.T) {
	values := []float64{math.NaN(), math.Inf(1), -1, 11, 5}
	bins := Count(values, Edges(0, 10, 2))
	sum := 0
	for _, b := range bins {
		sum += b.Count
	}
	if sum != 1 {
		t.Errorf("expected only the in-range finite value counted, got %d", sum)
	}
}

func TestCountSumEqualsFiniteCount(t *testing.T) {
	values := []float64{1, 2, 3, math.NaN(), 4, 5}
	lo, hi, ok := Extent([][]float64{values})
	if !ok {
		t.Fatal("expected finite extent")
	}
	bins := Count(values, Edges(lo, hi, 3))
	sum := 0
	for _, b := range bins {
		sum += b.Count
	}
	if sum != 5 {
		t.Errorf("sum of counts %d should equal finite value count 5", sum)
	}
}

func TestBarSeriesShape(t *testing.T) {
	bins := []Bin{{Lower: 0, Upper: 1, Count: 3}, {Lower: 1, Upper: 2, Count: 0}}
	s := BarSeries(bins)
	if !s.Line {
		t.Error("bar series should have line mode enabled")
	}
	if len(s.Points) != 6 {
		t.Fatalf("expected 3 points per bin, got %d", len(s.Points))
	}
	// First bar rises to its count at the midpoint and returns to baseline.
	if s.Points[0].Y != 0 || s.Points[1].Y != 3 || s.Points[2].Y != 0 {
		t.Errorf("unexpected bar outline: %v", s.Points[:3])
	}
	if s.Points[1].X != 0.5 {
		t.Errorf("bar should sit at the bin midpoint, got %g", s.Points[1].X)
	}
}

func TestExtentEmpty(t *testing.T) {
	if _, _, ok := Extent([][]float64{{math.NaN()}, {}}); ok {
		t.Error("expected no extent for all-NaN input")
	}
}
