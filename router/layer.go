package router

// The four buckets a layer partitions its trials into: orientation crossed
// with source/target polarity. Only a perpendicular, opposite-polarity
// pair of buckets may ever intersect.
const (
	bucketSrcVert = iota
	bucketSrcHoriz
	bucketTgtVert
	bucketTgtHoriz
	bucketCount
)

// layerBucket holds the arena ids of every trial line created in one
// iteration with one (orientation, polarity) combination.
type layerBucket []int

// layer is one iteration's four buckets.
type layer [bucketCount]layerBucket

// layerMap is a path's per-solve search state: iteration number to its
// four buckets. Iteration 0 holds the seed trials; iteration n+1 holds
// every trial spawned from iteration n.
type layerMap struct {
	layers []layer
}

func newLayerMap() *layerMap {
	return &layerMap{}
}

// ensure grows the map so layer iter exists (as an empty layer, if new).
func (m *layerMap) ensure(iter int) {
	for len(m.layers) <= iter {
		m.layers = append(m.layers, layer{})
	}
}

func (m *layerMap) file(iter, bucket, id int) {
	m.layers[iter][bucket] = append(m.layers[iter][bucket], id)
}

// bucketOf returns the bucket a trial of the given orientation/polarity
// belongs in.
func bucketOf(vertical, fromSource bool) int {
	switch {
	case vertical && fromSource:
		return bucketSrcVert
	case !vertical && fromSource:
		return bucketSrcHoriz
	case vertical && !fromSource:
		return bucketTgtVert
	default:
		return bucketTgtHoriz
	}
}

// opposingBucket returns the bucket a trial of the given orientation and
// polarity must search for an intersection: perpendicular orientation,
// opposite polarity.
func opposingBucket(vertical, fromSource bool) int {
	return bucketOf(!vertical, !fromSource)
}
