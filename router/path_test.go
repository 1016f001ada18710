package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orthorouter/core"
)

func TestOrthogonalPathSettersMarkDirty(t *testing.T) {
	p := NewOrthogonalPath(nil)
	p.Dirty = false

	p.SetStartPoint(core.Point{X: 1, Y: 2})
	require.True(t, p.Dirty)
	p.Dirty = false

	p.SetEndPoint(core.Point{X: 3, Y: 4})
	require.True(t, p.Dirty)
	p.Dirty = false

	p.SetBendpoints([]core.Point{{X: 5, Y: 5}})
	require.True(t, p.Dirty)
}

func TestUpdateForbiddenDirectionPicksDominantAxis(t *testing.T) {
	p := &OrthogonalPath{Start: core.Point{X: 10, Y: 10}}

	p.UpdateForbiddenDirection(core.Point{X: 20, Y: 10})
	require.Equal(t, core.Right, p.ForbiddenDirection)

	p.UpdateForbiddenDirection(core.Point{X: 0, Y: 10})
	require.Equal(t, core.Left, p.ForbiddenDirection)

	p.UpdateForbiddenDirection(core.Point{X: 10, Y: 20})
	require.Equal(t, core.Down, p.ForbiddenDirection)

	p.UpdateForbiddenDirection(core.Point{X: 10, Y: 0})
	require.Equal(t, core.Up, p.ForbiddenDirection)

	p.UpdateForbiddenDirection(core.Point{X: 10, Y: 10})
	require.Equal(t, core.DirectionNone, p.ForbiddenDirection)
}
