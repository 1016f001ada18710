package geometry

import (
	"testing"

	"orthorouter/core"
)

func TestPointNearPolyline(t *testing.T) {
	poly := []core.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}

	tests := []struct {
		name string
		p    core.Point
		tol  int
		want bool
	}{
		{"exactly on horizontal run", core.Point{X: 50, Y: 0}, 2, true},
		{"within tolerance of horizontal run", core.Point{X: 50, Y: 2}, 2, true},
		{"outside tolerance of horizontal run", core.Point{X: 50, Y: 3}, 2, false},
		{"exactly on vertical run", core.Point{X: 100, Y: 50}, 2, true},
		{"beyond the run's endpoint", core.Point{X: 150, Y: 0}, 2, false},
		{"far from every segment", core.Point{X: 50, Y: 50}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointNearPolyline(poly, tt.p, tt.tol); got != tt.want {
				t.Errorf("PointNearPolyline(%v, tol=%d) = %v, want %v", tt.p, tt.tol, got, tt.want)
			}
		})
	}
}

func TestPointNearPolylineEmpty(t *testing.T) {
	if PointNearPolyline(nil, core.Point{X: 0, Y: 0}, 2) {
		t.Error("expected false for empty polyline")
	}
	if PointNearPolyline([]core.Point{{X: 0, Y: 0}}, core.Point{X: 0, Y: 0}, 2) {
		t.Error("expected false for a single-point polyline (no segments)")
	}
}
