package router

import (
	"orthorouter/core"
	"orthorouter/geometry"
)

// STEP_SIZE in the source algorithm: increasing it trades routing
// accuracy for speed by skipping candidate positions between trials.
const stepSize = 5

// Worst case the line search can become slow; if this many trial lines
// have been created without a solution, give up and connect the
// endpoints directly rather than hang.
const maxLineCount = 200000

// previousPathTolerance is how close (in either axis) a candidate trial
// point may come to an already-routed polyline before it is rejected as
// a duplicate of existing geometry.
const previousPathTolerance = 2

// Router holds the obstacle book, the client-area viewport and every
// path it has been asked to route. It is not safe for concurrent use:
// Solve mutates shared per-path state (Points, Dirty) without locking.
type Router struct {
	spacing    int
	obstacles  *obstacleBook
	clientArea ClientArea

	workingPaths []*OrthogonalPath
	userPaths    []*OrthogonalPath
	childPaths   map[*OrthogonalPath][]*OrthogonalPath
}

// NewRouter returns a Router with the source algorithm's default
// spacing of 15 and an empty, zero-sized client area — call
// SetClientArea before the first Solve.
func NewRouter() *Router {
	return &Router{
		spacing:    15,
		obstacles:  newObstacleBook(15),
		clientArea: StaticClientArea{},
		childPaths: make(map[*OrthogonalPath][]*OrthogonalPath),
	}
}

// SetClientArea sets the viewport trial lines default their unbounded
// edge to.
func (r *Router) SetClientArea(ca ClientArea) {
	r.clientArea = ca
}

// SetSpacing sets the clearance every trial line keeps from an obstacle
// it is not itself anchored inside. Panics if spacing is negative.
func (r *Router) SetSpacing(spacing int) {
	if spacing < 0 {
		panic(errNegativeSpacing)
	}
	r.spacing = spacing
	r.obstacles.setSpacing(spacing)
}

// AddObstacle registers a rectangle trial lines must route clear of.
func (r *Router) AddObstacle(rect core.Rectangle) {
	r.obstacles.add(rect)
}

// RemoveObstacle unregisters rect, reporting whether it was present.
func (r *Router) RemoveObstacle(rect core.Rectangle) bool {
	return r.obstacles.remove(rect)
}

// UpdateObstacle replaces old with updated, removing old first (if
// present) and then adding updated unconditionally — matching the
// source router, a stale caller-side rectangle simply fails to remove
// and the new bounds are still tracked.
func (r *Router) UpdateObstacle(old, updated core.Rectangle) {
	r.obstacles.update(old, updated)
}

// AddPath registers path for routing on the next Solve.
func (r *Router) AddPath(path *OrthogonalPath) {
	r.workingPaths = append(r.workingPaths, path)
	r.userPaths = append(r.userPaths, path)
}

// RemovePath unregisters path along with any child sub-paths it was
// decomposed into.
func (r *Router) RemovePath(path *OrthogonalPath) {
	r.userPaths = removePathFrom(r.userPaths, path)
	r.workingPaths = removePathFrom(r.workingPaths, path)
	if children, ok := r.childPaths[path]; ok {
		for _, child := range children {
			r.workingPaths = removePathFrom(r.workingPaths, child)
		}
		delete(r.childPaths, path)
	}
}

func removePathFrom(list []*OrthogonalPath, path *OrthogonalPath) []*OrthogonalPath {
	for i, p := range list {
		if p == path {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Solve routes every dirty working path and returns the current set of
// user paths (each with Points populated, either directly or — for a
// path with bend points — recombined from its child sub-paths).
func (r *Router) Solve() []*OrthogonalPath {
	pointSet := make(map[core.Point]bool)
	r.updateChildPaths()
	for _, path := range r.workingPaths {
		if !path.Dirty {
			continue
		}
		path.Points = r.solvePath(path, pointSet)
		path.Dirty = false
	}
	r.recombineChildrenPaths()
	out := make([]*OrthogonalPath, len(r.userPaths))
	copy(out, r.userPaths)
	return out
}

// updateChildPaths keeps each dirty user path's child sub-paths in sync
// with its current bend point count, then propagates fresh start/end
// points and forbidden directions down to those children.
func (r *Router) updateChildPaths() {
	for _, path := range r.userPaths {
		if !path.Dirty {
			continue
		}
		children, existed := r.childPaths[path]
		previousCount := 1
		if existed {
			previousCount = len(children)
		}
		newCount := len(path.Bendpoints) + 1
		if previousCount != newCount {
			children = r.regenerateChildPaths(path, children, previousCount, newCount)
		}
		r.refreshChildrenEndpoints(path, children)
	}
}

// regenerateChildPaths grows or shrinks path's child list to newCount
// entries, keeping the working-path set in sync: a path with exactly
// one leg lives in workingPaths directly and has no children; a path
// with more than one leg is pulled out of workingPaths in favor of its
// children.
func (r *Router) regenerateChildPaths(path *OrthogonalPath, children []*OrthogonalPath, currentCount, newCount int) []*OrthogonalPath {
	if currentCount == 1 {
		r.workingPaths = removePathFrom(r.workingPaths, path)
		currentCount = 0
		children = nil
	} else if newCount == 1 {
		for _, child := range children {
			r.workingPaths = removePathFrom(r.workingPaths, child)
		}
		r.workingPaths = append(r.workingPaths, path)
		delete(r.childPaths, path)
		return nil
	}

	for currentCount < newCount {
		child := NewOrthogonalPath(path.Connection)
		child.IsChild = true
		children = append(children, child)
		r.workingPaths = append(r.workingPaths, child)
		currentCount++
	}
	for currentCount > newCount {
		child := children[len(children)-1]
		children = children[:len(children)-1]
		r.workingPaths = removePathFrom(r.workingPaths, child)
		currentCount--
	}

	r.childPaths[path] = children
	return children
}

// refreshChildrenEndpoints walks path's waypoints — start, each bend
// point, end — assigning each consecutive pair to one child, and sets
// every interior child's forbidden direction from its predecessor's
// start point so it does not immediately spawn back the way it came.
func (r *Router) refreshChildrenEndpoints(path *OrthogonalPath, children []*OrthogonalPath) {
	if len(children) > 0 && len(children) != len(path.Bendpoints)+1 {
		panic(errInvalidChildCount)
	}
	previous := path.Start
	for i, child := range children {
		var next core.Point
		if i < len(path.Bendpoints) {
			next = path.Bendpoints[i]
		} else {
			next = path.End
		}
		child.SetStartPoint(previous)
		child.SetEndPoint(next)
		previous = next
	}
	for i := 1; i < len(children)-1; i++ {
		children[i].UpdateForbiddenDirection(children[i-1].Start)
	}
}

// recombineChildrenPaths rebuilds each split user path's Points from
// its children's, dropping the duplicate bend point each pair of
// adjacent children shares.
func (r *Router) recombineChildrenPaths() {
	for path, children := range r.childPaths {
		if len(children) == 0 {
			continue
		}
		var points []core.Point
		for _, child := range children {
			if len(child.Points) == 0 {
				continue
			}
			points = append(points, child.Points[:len(child.Points)-1]...)
		}
		last := children[len(children)-1]
		if len(last.Points) > 0 {
			points = append(points, last.Points[len(last.Points)-1])
		}
		path.Points = points
	}
}

// searchResult is one candidate solution: two trial lines, from
// opposing endpoints, that intersect — plus the Manhattan length of the
// polyline that traceback would produce from them, used to pick the
// shortest candidate found in a generation. firstID always names the
// source-origin trial and secondID the target-origin one, regardless of
// which of the two was the newly spawned child, so tracebackPoints
// always returns points in source-to-target order.
type searchResult struct {
	firstID, secondID int
	length            int
}

// solvePath runs one path's line search to completion: seed trial
// lines from both endpoints, then expand generation by generation,
// spawning a perpendicular child from every trial line of the previous
// generation, until some generation yields an intersection between a
// source-side and target-side trial. Every candidate intersection found
// within one generation is considered before returning the shortest.
func (r *Router) solvePath(path *OrthogonalPath, pointSet map[core.Point]bool) []core.Point {
	if path.Start == path.End {
		return []core.Point{path.Start, path.End}
	}

	bounds := r.clientArea.Bounds()
	if !bounds.Contains(path.Start, 0) || !bounds.Contains(path.End, 0) {
		if um := r.clientArea.UpdateManager(); um != nil {
			um.PerformUpdate()
		}
	}

	arena := newTrialArena()
	lm := newLayerMap()
	r.seedTrials(arena, lm, path, bounds)

	lineCount := 0
	for iter := 0; lineCount < maxLineCount; iter++ {
		lm.ensure(iter + 1)
		sizeBefore := arena.len()
		var best *searchResult
		for bucket := 0; bucket < bucketCount; bucket++ {
			for _, id := range lm.layers[iter][bucket] {
				parent := *arena.get(id)
				candidates, exceeded := r.spawnChildren(arena, lm, pointSet, id, parent, iter+1, &lineCount)
				for _, c := range candidates {
					c := c
					if best == nil || c.length < best.length {
						best = &c
					}
				}
				if exceeded {
					return []core.Point{path.Start, path.End}
				}
			}
		}
		if best != nil {
			points := tracebackPoints(arena, best.firstID, best.secondID)
			commitPoints(pointSet, points)
			return points
		}
		// A generation that adds no new trial lines can never make
		// progress — every remaining position was already rejected or
		// out of span. The reference search has no such guard and
		// would spin against a fully enclosed endpoint; fall back
		// directly rather than loop forever.
		if arena.len() == sizeBefore {
			return []core.Point{path.Start, path.End}
		}
	}
	return []core.Point{path.Start, path.End}
}

// seedTrials builds the search's generation-0 trial lines: horizontal
// trials from both endpoints always, plus vertical trials from both
// endpoints when path is a child sub-path — a deliberate narrowing of
// the classic algorithm so that a whole (non-split) user path's own
// first hop is always horizontal.
func (r *Router) seedTrials(arena *trialArena, lm *layerMap, path *OrthogonalPath, bounds core.Rectangle) {
	lm.ensure(0)
	horizStart := newSeedTrial(r.obstacles, r.spacing, bounds, path.Start, true, false, path.ForbiddenDirection)
	horizFinish := newSeedTrial(r.obstacles, r.spacing, bounds, path.End, false, false, path.ForbiddenDirection)
	if path.IsChild {
		vertStart := newSeedTrial(r.obstacles, r.spacing, bounds, path.Start, true, true, path.ForbiddenDirection)
		vertFinish := newSeedTrial(r.obstacles, r.spacing, bounds, path.End, false, true, path.ForbiddenDirection)
		lm.file(0, bucketSrcVert, arena.add(vertStart))
		lm.file(0, bucketTgtVert, arena.add(vertFinish))
	}
	lm.file(0, bucketSrcHoriz, arena.add(horizStart))
	lm.file(0, bucketTgtHoriz, arena.add(horizFinish))
}

// spawnChildren steps candidate positions away from parent along its
// own axis in both directions — starting just past its forbidden range
// where it has one, otherwise from its own origin — building a child
// trial at each valid position and testing it for an intersection.
func (r *Router) spawnChildren(arena *trialArena, lm *layerMap, pointSet map[core.Point]bool, parentID int, parent TrialLine, iter int, lineCount *int) ([]searchResult, bool) {
	var candidates []searchResult
	from := parent.axisFrom()

	low := from
	if parent.hasForbiddenStart {
		low = parent.forbiddenStart - 1
	}
	for pos := low; pos >= parent.start; pos -= stepSize {
		*lineCount++
		if cand, ok := r.tryCreateTrial(arena, lm, pointSet, parentID, parent, iter, pos); ok {
			candidates = append(candidates, cand)
		}
		if *lineCount > maxLineCount {
			return candidates, true
		}
	}

	high := from
	if parent.hasForbiddenFinish {
		high = parent.forbiddenFinish + 1
	}
	for pos := high; pos < parent.finish; pos += stepSize {
		*lineCount++
		if cand, ok := r.tryCreateTrial(arena, lm, pointSet, parentID, parent, iter, pos); ok {
			candidates = append(candidates, cand)
		}
		if *lineCount > maxLineCount {
			return candidates, true
		}
	}

	return candidates, false
}

// tryCreateTrial builds and files the child trial at pos, rejecting it
// outright if its origin is already committed or lies on a path routed
// earlier in this same Solve pass. A filed trial is tested against
// every opposing trial line filed so far, this generation included; a
// found intersection whose point was already committed is discarded
// too, but the trial itself remains filed for later generations to find.
func (r *Router) tryCreateTrial(arena *trialArena, lm *layerMap, pointSet map[core.Point]bool, parentID int, parent TrialLine, iter, pos int) (searchResult, bool) {
	point := childPoint(parent, pos)
	if pointSet[point] || r.pointOnPreviousPath(point) {
		return searchResult{}, false
	}

	child := newChildTrial(r.obstacles, r.spacing, r.clientArea.Bounds(), parentID, parent, pos)
	id := arena.add(child)
	lm.file(iter, bucketOf(child.vertical, child.fromSource), id)

	oppID, ok := r.findIntersection(arena, lm, iter, child)
	if !ok {
		return searchResult{}, false
	}
	ipoint := interceptionPoint(child, *arena.get(oppID))
	if pointSet[ipoint] {
		return searchResult{}, false
	}
	sourceID, targetID := id, oppID
	if !child.fromSource {
		sourceID, targetID = oppID, id
	}
	length := pathLength(tracebackPoints(arena, sourceID, targetID))
	return searchResult{firstID: sourceID, secondID: targetID, length: length}, true
}

// pointOnPreviousPath reports whether p lies near any already-routed
// working path's polyline — including ones routed earlier in the same
// Solve pass, since their Points are already updated by the time later
// paths search.
func (r *Router) pointOnPreviousPath(p core.Point) bool {
	for _, wp := range r.workingPaths {
		if wp.Points != nil && geometry.PointNearPolyline(wp.Points, p, previousPathTolerance) {
			return true
		}
	}
	return false
}

// findIntersection searches every trial line filed opposite t's
// orientation and polarity, from the generation just filed (uptoIter)
// back to the seed generation, for one that intersects t.
func (r *Router) findIntersection(arena *trialArena, lm *layerMap, uptoIter int, t TrialLine) (int, bool) {
	bucket := opposingBucket(t.vertical, t.fromSource)
	for i := uptoIter; i >= 0; i-- {
		if i >= len(lm.layers) {
			continue
		}
		for _, id := range lm.layers[i][bucket] {
			if intersects(t, *arena.get(id)) {
				return id, true
			}
		}
	}
	return 0, false
}

// tracebackPoints walks first's parent chain back to its seed, then
// second's, joining them through their interception point. Callers must
// pass the source-origin trial as first and the target-origin trial as
// second — tracebackPoints has no way to tell them apart itself — so the
// result comes back in source-to-target order. It does not touch
// pointSet — callers commit the winning candidate's points themselves,
// so a candidate discarded in favor of a shorter one never pollutes it.
func tracebackPoints(arena *trialArena, firstID, secondID int) []core.Point {
	var points []core.Point
	var last *core.Point

	id := firstID
	for id != noParent {
		t := arena.get(id)
		if last == nil || *last != t.from {
			points = append(points, t.from)
		}
		from := t.from
		last = &from
		id = t.parent
	}
	reversePoints(points)

	ipoint := interceptionPoint(*arena.get(firstID), *arena.get(secondID))
	points = append(points, ipoint)
	last = &ipoint

	id = secondID
	for id != noParent {
		t := arena.get(id)
		if *last != t.from {
			points = append(points, t.from)
		}
		from := t.from
		last = &from
		id = t.parent
	}
	return points
}

func reversePoints(points []core.Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

func pathLength(points []core.Point) int {
	total := 0
	for i := 0; i+1 < len(points); i++ {
		total += geometry.ManhattanDistance(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y)
	}
	return total
}

func commitPoints(pointSet map[core.Point]bool, points []core.Point) {
	for _, p := range points {
		pointSet[p] = true
	}
}
