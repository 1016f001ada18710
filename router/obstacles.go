package router

import (
	"github.com/dhconnelly/rtreego"

	"orthorouter/core"
)

// obstacleBook is the mutable set of rectangular obstacles the search
// engine cuts trial lines against. It keeps a flat slice for the rare
// full scan and an R-tree — the same broad-phase structure
// `arenaserver/collision` builds over moving obstacles in the bytearena
// corpus — to narrow "which obstacles are anywhere near this line/point"
// before the exact interval checks in TrialLine run.
type obstacleBook struct {
	spacing int
	rects   []core.Rectangle
	spatial map[core.Rectangle]*obstacleSpatial
	tree    *rtreego.Rtree
}

type obstacleSpatial struct {
	rect core.Rectangle
	bb   rtreego.Rect
}

func (s *obstacleSpatial) Bounds() rtreego.Rect { return s.bb }

func newObstacleBook(spacing int) *obstacleBook {
	return &obstacleBook{
		spacing: spacing,
		spatial: make(map[core.Rectangle]*obstacleSpatial),
		tree:    rtreego.NewTree(2, 25, 50),
	}
}

// paddedBounds returns ob's bounds expanded by spacing on every side, as
// an rtreego.Rect. rtreego rejects a rect with a non-positive side length,
// which a degenerate (zero-area) obstacle could produce even after
// padding only if spacing is also zero; guard with a unit fallback so a
// pathological obstacle never panics the tree.
func paddedBounds(r core.Rectangle, spacing int) rtreego.Rect {
	width := float64(r.Width() + 2*spacing)
	height := float64(r.Height() + 2*spacing)
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	bb, err := rtreego.NewRect(
		rtreego.Point{float64(r.Left - spacing), float64(r.Top - spacing)},
		[]float64{width, height},
	)
	if err != nil {
		bb, _ = rtreego.NewRect(rtreego.Point{float64(r.Left), float64(r.Top)}, []float64{1, 1})
	}
	return bb
}

func (b *obstacleBook) add(r core.Rectangle) {
	if _, exists := b.spatial[r]; exists {
		return
	}
	s := &obstacleSpatial{rect: r, bb: paddedBounds(r, b.spacing)}
	b.spatial[r] = s
	b.rects = append(b.rects, r)
	b.tree.Insert(s)
}

func (b *obstacleBook) remove(r core.Rectangle) bool {
	s, ok := b.spatial[r]
	if !ok {
		return false
	}
	delete(b.spatial, r)
	b.tree.Delete(s)
	for i, rr := range b.rects {
		if rr == r {
			b.rects = append(b.rects[:i], b.rects[i+1:]...)
			break
		}
	}
	return true
}

// update removes old (if present — it need not be, matching the source
// router's remove-then-add semantics) and unconditionally adds new.
func (b *obstacleBook) update(old, newRect core.Rectangle) {
	b.remove(old)
	b.add(newRect)
}

// setSpacing rebuilds the tree with every obstacle's bounds re-padded to
// the new spacing.
func (b *obstacleBook) setSpacing(spacing int) {
	if spacing == b.spacing {
		return
	}
	b.spacing = spacing
	rects := b.rects
	b.rects = nil
	b.spatial = make(map[core.Rectangle]*obstacleSpatial)
	b.tree = rtreego.NewTree(2, 25, 50)
	for _, r := range rects {
		b.add(r)
	}
}

func (b *obstacleBook) all() []core.Rectangle {
	return b.rects
}

// near returns every obstacle whose spacing-padded bounds could plausibly
// cut a line through from with the given orientation: a query strip
// covering the transverse band across the whole client area, narrowed by
// the R-tree instead of scanning the entire book on every cut.
func (b *obstacleBook) near(from core.Point, vertical bool, clientArea core.Rectangle) []core.Rectangle {
	if len(b.rects) == 0 {
		return nil
	}
	var p rtreego.Point
	var lengths []float64
	if vertical {
		p = rtreego.Point{float64(from.X - b.spacing), float64(clientArea.Top - b.spacing)}
		lengths = []float64{float64(2*b.spacing + 1), float64(clientArea.Height() + 2*b.spacing + 1)}
	} else {
		p = rtreego.Point{float64(clientArea.Left - b.spacing), float64(from.Y - b.spacing)}
		lengths = []float64{float64(clientArea.Width() + 2*b.spacing + 1), float64(2*b.spacing + 1)}
	}
	bb, err := rtreego.NewRect(p, lengths)
	if err != nil {
		return b.rects
	}
	return b.spatialResults(b.tree.SearchIntersect(bb))
}

// containing returns every obstacle that contains p exactly (offset 0),
// narrowed first to obstacles anywhere near p within the book's spacing.
func (b *obstacleBook) containing(p core.Point) []core.Rectangle {
	if len(b.rects) == 0 {
		return nil
	}
	bb, err := rtreego.NewRect(
		rtreego.Point{float64(p.X - b.spacing), float64(p.Y - b.spacing)},
		[]float64{float64(2*b.spacing + 1), float64(2*b.spacing + 1)},
	)
	if err != nil {
		return b.rects
	}
	hits := b.spatialResults(b.tree.SearchIntersect(bb))
	out := hits[:0]
	for _, r := range hits {
		if r.Contains(p, 0) {
			out = append(out, r)
		}
	}
	return out
}

func (b *obstacleBook) spatialResults(hits []rtreego.Spatial) []core.Rectangle {
	out := make([]core.Rectangle, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*obstacleSpatial).rect)
	}
	return out
}
