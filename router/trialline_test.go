package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orthorouter/core"
)

func TestCutByObstaclesDefaultsToClientArea(t *testing.T) {
	book := newObstacleBook(5)
	bounds := core.NewRectangle(0, 0, 100, 100)
	tl := newSeedTrial(book, 5, bounds, core.Point{X: 10, Y: 10}, true, false, core.DirectionNone)

	require.Equal(t, bounds.Left, tl.start)
	require.Equal(t, bounds.Right, tl.finish)
}

func TestCutByObstaclesTightensAroundObstacle(t *testing.T) {
	book := newObstacleBook(5)
	book.add(core.NewRectangle(50, 0, 20, 100))
	bounds := core.NewRectangle(0, 0, 100, 100)

	tl := newSeedTrial(book, 5, bounds, core.Point{X: 10, Y: 10}, true, false, core.DirectionNone)

	require.Equal(t, 45, tl.finish)
}

func TestCutByObstaclesIgnoresOwnFigureForStartingLine(t *testing.T) {
	book := newObstacleBook(5)
	origin := core.NewRectangle(0, 0, 20, 20)
	book.add(origin)
	bounds := core.NewRectangle(0, 0, 100, 100)

	tl := newSeedTrial(book, 5, bounds, core.Point{X: 10, Y: 10}, true, false, core.DirectionNone)

	require.Equal(t, bounds.Left, tl.start)
	require.Equal(t, bounds.Right, tl.finish)
}

func TestChildTrialIsCutByObstacleOnItsBand(t *testing.T) {
	book := newObstacleBook(5)
	book.add(core.NewRectangle(0, 0, 20, 20))
	bounds := core.NewRectangle(0, 0, 100, 100)

	parent := newSeedTrial(book, 5, bounds, core.Point{X: 30, Y: 30}, true, false, core.DirectionNone)
	child := newChildTrial(book, 5, bounds, 0, parent, 10)

	require.True(t, child.vertical)
	require.Equal(t, core.Point{X: 10, Y: 30}, child.from)
	require.Equal(t, 25, child.start)
}

func TestCalculateForbiddenRangeFromDirection(t *testing.T) {
	book := newObstacleBook(5)
	bounds := core.NewRectangle(0, 0, 100, 100)

	tl := newSeedTrial(book, 5, bounds, core.Point{X: 10, Y: 10}, true, true, core.Down)

	require.True(t, tl.hasForbiddenStart)
	require.Equal(t, 15, tl.forbiddenStart)
	require.False(t, tl.hasForbiddenFinish)
}

func TestIntersectsRequiresPerpendicularOpposingLines(t *testing.T) {
	book := newObstacleBook(5)
	bounds := core.NewRectangle(0, 0, 100, 100)

	source := newSeedTrial(book, 5, bounds, core.Point{X: 10, Y: 10}, true, true, core.DirectionNone)
	sameOrientation := newSeedTrial(book, 5, bounds, core.Point{X: 10, Y: 50}, true, true, core.DirectionNone)
	require.False(t, intersects(source, sameOrientation))

	samePolarity := newSeedTrial(book, 5, bounds, core.Point{X: 50, Y: 10}, true, false, core.DirectionNone)
	require.False(t, intersects(source, samePolarity))

	target := newSeedTrial(book, 5, bounds, core.Point{X: 50, Y: 60}, false, false, core.DirectionNone)
	require.True(t, intersects(source, target))
	require.Equal(t, core.Point{X: 10, Y: 60}, interceptionPoint(source, target))
}
