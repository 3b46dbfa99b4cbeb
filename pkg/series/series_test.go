package series

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeDefaultIndex(t *testing.T) {
	got, err := Normalize(nil, [][]float64{{10, 20, 30}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 series, got %d", len(got))
	}
	want := []Point{{0, 10}, {1, 20}, {2, 30}}
	if len(got[0].Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got[0].Points))
	}
	for i, p := range got[0].Points {
		if p != want[i] {
			t.Errorf("point %d: got %v, want %v", i, p, want[i])
		}
	}
}

func TestNormalizeDropsNaNPairsTogether(t *testing.T) {
	nan := math.NaN()
	xs := [][]float64{{0, nan, 2, 3}}
	ys := [][]float64{{1, 2, nan, 4}}
	got, err := Normalize(xs, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pts := got[0].Points
	if len(pts) != 2 {
		t.Fatalf("expected 2 retained points, got %d: %v", len(pts), pts)
	}
	// Rows 1 and 2 are dropped entirely; order of the rest is preserved.
	if pts[0] != (Point{0, 1}) || pts[1] != (Point{3, 4}) {
		t.Errorf("unexpected points: %v", pts)
	}
}

func TestNormalizeRetainedCount(t *testing.T) {
	nan := math.NaN()
	ys := [][]float64{{1, nan, 3, nan, 5}}
	got, err := Normalize(nil, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Input length minus rows with NaN in either coordinate.
	if len(got[0].Points) != 3 {
		t.Errorf("expected 3 points, got %d", len(got[0].Points))
	}
	for _, p := range got[0].Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Errorf("retained point has NaN coordinate: %v", p)
		}
	}
}

func TestNormalizeShapeError(t *testing.T) {
	xs := [][]float64{{1, 2}, {1, 2, 3}}
	ys := [][]float64{{1, 2}, {1, 2}}
	_, err := Normalize(xs, ys)
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	var shapeErr *ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected *ShapeError, got %T", err)
	}
	if shapeErr.Series != 1 || shapeErr.XLen != 3 || shapeErr.YLen != 2 {
		t.Errorf("unexpected error fields: %+v", shapeErr)
	}
}

func TestNormalizeEmptyAndAllNaN(t *testing.T) {
	nan := math.NaN()
	got, err := Normalize(nil, [][]float64{{}, {nan, nan}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 series, got %d", len(got))
	}
	for i, s := range got {
		if len(s.Points) != 0 {
			t.Errorf("series %d: expected no points, got %d", i, len(s.Points))
		}
	}
}

func TestNormalizeMultipleSeries(t *testing.T) {
	ys := [][]float64{{1, 2, 3}, {4, 5}}
	got, err := Normalize(nil, ys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 series, got %d", len(got))
	}
	if len(got[0].Points) != 3 || len(got[1].Points) != 2 {
		t.Errorf("unexpected point counts: %d, %d", len(got[0].Points), len(got[1].Points))
	}
	// Each series gets its own index sequence.
	if got[1].Points[0] != (Point{0, 4}) {
		t.Errorf("second series should restart index at 0, got %v", got[1].Points[0])
	}
}

func TestNormalizeDropsInfinities(t *testing.T) {
	inf := math.Inf(1)
	got, err := Normalize(nil, [][]float64{{1, inf, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[0].Points) != 2 {
		t.Errorf("infinities should be dropped, got %d points", len(got[0].Points))
	}
}
