package geometry

import "orthorouter/core"

// PointNearPolyline reports whether p lies within tolerance of any segment
// of points, an orthogonal polyline of alternating horizontal and vertical
// runs. The router uses this to keep a new trial line from landing back on
// a route that has already been committed earlier in the same solve pass.
func PointNearPolyline(points []core.Point, p core.Point, tolerance int) bool {
	for i := 0; i+1 < len(points); i++ {
		if pointNearSegment(points[i], points[i+1], p, tolerance) {
			return true
		}
	}
	return false
}

func pointNearSegment(a, b, p core.Point, tolerance int) bool {
	if a.Y == b.Y {
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		return Abs(p.Y-a.Y) <= tolerance && p.X >= lo-tolerance && p.X <= hi+tolerance
	}
	if a.X == b.X {
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		return Abs(p.X-a.X) <= tolerance && p.Y >= lo-tolerance && p.Y <= hi+tolerance
	}
	return false
}
