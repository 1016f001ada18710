package router

import (
	"orthorouter/core"
	"orthorouter/geometry"
)

// Connection is an opaque reference the owning editor attaches to a path.
// The router never inspects it; it exists only so a user path's child
// sub-paths can carry the same connection identity back to the caller.
type Connection interface{}

// OrthogonalPath is either a user path — created by the caller, possibly
// with bend points and therefore possibly decomposed into child
// sub-paths — or a child sub-path: one leg between two successive
// waypoints of a user path, with no bend points of its own and IsChild
// set.
type OrthogonalPath struct {
	Start, End         core.Point
	Bendpoints         []core.Point
	ForbiddenDirection core.Direction
	Points             []core.Point
	Dirty              bool
	IsChild            bool
	Connection         Connection
}

// NewOrthogonalPath creates a user path attached to conn, dirty by
// default so it is picked up by the next Solve.
func NewOrthogonalPath(conn Connection) *OrthogonalPath {
	return &OrthogonalPath{Connection: conn, Dirty: true}
}

// SetStartPoint moves the path's start and marks it dirty.
func (p *OrthogonalPath) SetStartPoint(pt core.Point) {
	p.Start = pt
	p.Dirty = true
}

// SetEndPoint moves the path's end and marks it dirty.
func (p *OrthogonalPath) SetEndPoint(pt core.Point) {
	p.End = pt
	p.Dirty = true
}

// SetBendpoints replaces the path's mandatory waypoints and marks it
// dirty; the router will regenerate its child sub-paths on the next
// Solve if the count of bend points changed.
func (p *OrthogonalPath) SetBendpoints(bp []core.Point) {
	p.Bendpoints = bp
	p.Dirty = true
}

// SetForbiddenDirection sets the half-plane child trials must not spawn
// into and marks the path dirty.
func (p *OrthogonalPath) SetForbiddenDirection(d core.Direction) {
	p.ForbiddenDirection = d
	p.Dirty = true
}

// UpdateForbiddenDirection sets the receiver's forbidden direction from
// predecessorStart, the start point of the child sub-path immediately
// before it in the chain (whose end is this child's own start): the
// receiver must not immediately spawn back toward it, or it would
// double back into the segment that just arrived here.
func (p *OrthogonalPath) UpdateForbiddenDirection(predecessorStart core.Point) {
	dx := predecessorStart.X - p.Start.X
	dy := predecessorStart.Y - p.Start.Y
	switch {
	case dx == 0 && dy == 0:
		p.ForbiddenDirection = core.DirectionNone
	case geometry.Abs(dx) >= geometry.Abs(dy):
		if dx > 0 {
			p.ForbiddenDirection = core.Right
		} else {
			p.ForbiddenDirection = core.Left
		}
	default:
		if dy > 0 {
			p.ForbiddenDirection = core.Down
		} else {
			p.ForbiddenDirection = core.Up
		}
	}
	p.Dirty = true
}
