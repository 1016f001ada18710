package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orthorouter/core"
)

func TestObstacleBookAddRemove(t *testing.T) {
	book := newObstacleBook(5)
	rect := core.NewRectangle(10, 10, 20, 20)

	book.add(rect)
	require.Len(t, book.all(), 1)

	require.True(t, book.remove(rect))
	require.Empty(t, book.all())
	require.False(t, book.remove(rect))
}

func TestObstacleBookUpdateSurvivesMissingOld(t *testing.T) {
	book := newObstacleBook(5)
	stale := core.NewRectangle(0, 0, 10, 10)
	fresh := core.NewRectangle(50, 50, 10, 10)

	book.update(stale, fresh)

	require.Equal(t, []core.Rectangle{fresh}, book.all())
}

func TestObstacleBookContaining(t *testing.T) {
	book := newObstacleBook(5)
	rect := core.NewRectangle(10, 10, 20, 20)
	book.add(rect)

	require.Equal(t, []core.Rectangle{rect}, book.containing(core.Point{X: 15, Y: 15}))
	require.Empty(t, book.containing(core.Point{X: 100, Y: 100}))
}

func TestObstacleBookNearFindsObstacleOnBand(t *testing.T) {
	book := newObstacleBook(5)
	rect := core.NewRectangle(50, 0, 20, 100)
	book.add(rect)
	bounds := core.NewRectangle(0, 0, 100, 100)

	found := book.near(core.Point{X: 10, Y: 10}, false, bounds)
	require.Equal(t, []core.Rectangle{rect}, found)

	notFound := book.near(core.Point{X: 10, Y: 500}, false, bounds)
	require.Empty(t, notFound)
}

func TestObstacleBookSetSpacingRebuildsTree(t *testing.T) {
	book := newObstacleBook(5)
	rect := core.NewRectangle(50, 0, 20, 100)
	book.add(rect)
	bounds := core.NewRectangle(0, 0, 100, 100)

	book.setSpacing(1)

	require.Equal(t, 1, book.spacing)
	require.Equal(t, []core.Rectangle{rect}, book.near(core.Point{X: 10, Y: 10}, false, bounds))
}
