package router

import "orthorouter/core"

// UpdateManager is the notification hook a ClientArea exposes. The router
// calls PerformUpdate when a path endpoint falls outside the client
// area's current bounds at the moment of routing — advisory only, routing
// proceeds regardless.
type UpdateManager interface {
	PerformUpdate()
}

// ClientArea is the viewport the router must stay within: the owning
// figure supplies the bounding rectangle trial lines may not extend past,
// and the update hook the router notifies when it can't honor that bound
// for a given path's endpoints.
type ClientArea interface {
	Bounds() core.Rectangle
	UpdateManager() UpdateManager
}

// StaticClientArea is a ClientArea with a fixed rectangle and no update
// hook — the shape most tests and the demo CLI need.
type StaticClientArea struct {
	Rect core.Rectangle
}

func (c StaticClientArea) Bounds() core.Rectangle    { return c.Rect }
func (c StaticClientArea) UpdateManager() UpdateManager { return nil }
