package router

import "orthorouter/core"

// noParent marks a TrialLine created as a search seed: it has no
// predecessor to walk back to during traceback.
const noParent = -1

// TrialLine is one axis-aligned ray from a parent line. It is immutable
// once constructed, except for the search bookkeeping that files it into a
// layer bucket. Instances live in a trialArena for the lifetime of a
// single solvePath call.
type TrialLine struct {
	from       core.Point
	vertical   bool
	fromSource bool

	// start, finish bound the line's valid span along its own axis,
	// inclusive/exclusive: [start, finish). They are cut by obstacles and
	// otherwise default to the client-area edge.
	start, finish int

	// hasForbiddenStart/hasForbiddenFinish gate a sub-interval of
	// [start, finish) that child trials must not be spawned from —
	// either because it falls inside the line's own starting figure, or
	// because the path's forbidden direction excludes it.
	hasForbiddenStart, hasForbiddenFinish   bool
	forbiddenStart, forbiddenFinish int

	// parent is the arena index of the trial that spawned this one, or
	// noParent for a seed.
	parent int
}

// axisFrom returns from's coordinate along the line's own axis: Y for a
// vertical line, X for a horizontal one.
func (t TrialLine) axisFrom() int {
	if t.vertical {
		return t.from.Y
	}
	return t.from.X
}

// transverse returns from's coordinate along the perpendicular axis — the
// axis a perpendicular line's span is measured along.
func (t TrialLine) transverse() int {
	if t.vertical {
		return t.from.X
	}
	return t.from.Y
}

// childPoint computes the from point of a would-be child spawned from
// position pos along parent's axis, before the child is actually built —
// used both to construct the child and to test it against the
// anti-collision rules first.
func childPoint(parent TrialLine, pos int) core.Point {
	if parent.vertical {
		return core.Point{X: parent.from.X, Y: pos}
	}
	return core.Point{X: pos, Y: parent.from.Y}
}

// newSeedTrial builds one of the two (or four) starting trial lines for a
// path endpoint: cut by obstacles as a starting line (obstacles containing
// the origin are ignored, since the origin is expected to lie inside its
// own figure), then given a forbidden range from any obstacle that does
// contain the origin and from the path's forbidden direction.
func newSeedTrial(book *obstacleBook, spacing int, clientArea core.Rectangle, from core.Point, fromSource, vertical bool, forbiddenDirection core.Direction) TrialLine {
	t := TrialLine{from: from, vertical: vertical, fromSource: fromSource, parent: noParent}
	t.cutByObstacles(book, spacing, true, clientArea)
	t.calculateForbiddenRange(book, spacing, forbiddenDirection)
	return t
}

// newChildTrial builds a trial spawned from parent at position pos along
// parent's axis. Its orientation is the negation of parent's, it inherits
// parent's source/target polarity, and — unlike a seed — obstacles
// containing its origin cut it rather than being ignored. Child trials
// never carry a forbidden range.
func newChildTrial(book *obstacleBook, spacing int, clientArea core.Rectangle, parentID int, parent TrialLine, pos int) TrialLine {
	t := TrialLine{
		from:       childPoint(parent, pos),
		vertical:   !parent.vertical,
		fromSource: parent.fromSource,
		parent:     parentID,
	}
	t.cutByObstacles(book, spacing, false, clientArea)
	return t
}

// containsOffset reports whether t.from lies inside ob, expanded by
// offset on every side.
func (t TrialLine) containsOffset(ob core.Rectangle, offset int) bool {
	return ob.Contains(t.from, offset)
}

// onBand reports whether ob's spacing-padded band along the transverse
// axis contains t.from — i.e. whether ob lies "on" this line at all.
func (t TrialLine) onBand(ob core.Rectangle, spacing int) bool {
	if t.vertical {
		return ob.Left-spacing <= t.from.X && ob.Right+spacing > t.from.X
	}
	return ob.Top-spacing <= t.from.Y && ob.Bottom+spacing > t.from.Y
}

// cutByObstacles tightens [start, finish) against every obstacle that lies
// on this line's band. For a starting line, an obstacle that contains the
// origin (within the spacing-padded box) is skipped rather than cut,
// since the origin is expected to sit inside its own figure. Whatever of
// start/finish obstacle-cutting leaves unset defaults to the client-area
// edge.
func (t *TrialLine) cutByObstacles(book *obstacleBook, spacing int, startingLine bool, clientArea core.Rectangle) {
	hasStart, hasFinish := false, false
	for _, ob := range book.near(t.from, t.vertical, clientArea) {
		if t.containsOffset(ob, spacing) {
			if startingLine {
				continue
			}
			hasStart, hasFinish = t.cut(ob, spacing, hasStart, hasFinish)
		}
		if t.onBand(ob, spacing) {
			hasStart, hasFinish = t.cut(ob, spacing, hasStart, hasFinish)
		}
	}
	if !hasFinish {
		if t.vertical {
			t.finish = clientArea.Bottom
		} else {
			t.finish = clientArea.Right
		}
	}
	if !hasStart {
		if t.vertical {
			t.start = clientArea.Top
		} else {
			t.start = clientArea.Left
		}
	}
}

// cut narrows the line's span against a single obstacle's extent along
// the line's axis: an obstacle wholly before from (from past its far edge)
// raises start, one starting at or after from lowers finish. hasStart/hasFinish track whether start/finish have
// been assigned yet (the client-area default only applies to whichever
// one obstacle-cutting never touched).
func (t *TrialLine) cut(ob core.Rectangle, spacing int, hasStart, hasFinish bool) (bool, bool) {
	from := t.axisFrom()
	var lo, hi int
	if t.vertical {
		lo, hi = ob.Top, ob.Bottom
	} else {
		lo, hi = ob.Left, ob.Right
	}
	if from > hi {
		if !hasStart || t.start < hi+spacing {
			t.start = hi + spacing
			hasStart = true
		}
	}
	if from <= lo {
		if !hasFinish || t.finish > lo-spacing {
			t.finish = lo - spacing
			hasFinish = true
		}
	}
	return hasStart, hasFinish
}

// calculateForbiddenRange sets the sub-interval of [start, finish) that
// child trials must not spawn from: the span of any obstacle (offset 0 —
// the line's own starting figure) that contains the origin, and/or the
// half-plane excluded by forbiddenDirection.
func (t *TrialLine) calculateForbiddenRange(book *obstacleBook, spacing int, forbiddenDirection core.Direction) {
	for _, ob := range book.containing(t.from) {
		if t.vertical {
			t.forbiddenStart, t.hasForbiddenStart = ob.Top-spacing, true
			t.forbiddenFinish, t.hasForbiddenFinish = ob.Bottom+spacing, true
		} else {
			t.forbiddenStart, t.hasForbiddenStart = ob.Left-spacing, true
			t.forbiddenFinish, t.hasForbiddenFinish = ob.Right+spacing, true
		}
	}
	switch forbiddenDirection {
	case core.Down:
		if t.vertical {
			t.forbiddenStart, t.hasForbiddenStart = t.from.Y+spacing, true
		}
	case core.Up:
		if t.vertical {
			t.forbiddenFinish, t.hasForbiddenFinish = t.from.Y-spacing, true
		}
	case core.Left:
		if !t.vertical {
			t.forbiddenStart, t.hasForbiddenStart = t.from.X-spacing, true
		}
	case core.Right:
		if !t.vertical {
			t.forbiddenFinish, t.hasForbiddenFinish = t.from.X+spacing, true
		}
	}
}

// intersects reports whether t and o meet: they must be perpendicular and
// of opposing source/target polarity, t's transverse coordinate must fall
// within o's span, and o's transverse coordinate must fall within t's.
func intersects(t, o TrialLine) bool {
	if t.vertical == o.vertical || t.fromSource == o.fromSource {
		return false
	}
	tv, ov := t.transverse(), o.transverse()
	return tv >= o.start && tv < o.finish && ov >= t.start && ov < t.finish
}

// interceptionPoint computes the point where t crosses o, given they
// intersect: (t.from.X, o.from.Y) if t is vertical, else (o.from.X, t.from.Y).
func interceptionPoint(t, o TrialLine) core.Point {
	if t.vertical {
		return core.Point{X: t.from.X, Y: o.from.Y}
	}
	return core.Point{X: o.from.X, Y: t.from.Y}
}
