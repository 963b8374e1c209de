package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupIndexFindCompressesPath(t *testing.T) {
	g := newGroupIndex()
	a, b, c := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0}

	g.newSingleton(a)
	g.newSingleton(b)
	g.newSingleton(c)
	g.unite(a, b)
	g.unite(b, c)

	root := g.find(c)
	assert.Equal(t, root, g.find(a))
	assert.Equal(t, root, g.find(b))
	assert.Equal(t, 3, g.size(a))
}

func TestGroupIndexUniteTieBreakKeepsFirstArgRoot(t *testing.T) {
	g := newGroupIndex()
	a, b := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}

	g.newSingleton(a)
	g.newSingleton(b)
	g.unite(a, b)

	assert.Equal(t, a, g.find(b))
}

func TestGroupIndexUniteMergesLibertiesAndRoster(t *testing.T) {
	g := newGroupIndex()
	a, b := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}

	g.newSingleton(a)
	g.addLiberty(a, Point{X: 0, Y: 1})
	g.newSingleton(b)
	g.addLiberty(b, Point{X: 1, Y: 1})

	g.unite(a, b)

	assert.Equal(t, 2, g.libertyCount(a))
	assert.Len(t, g.members(a), 2)
}

func TestGroupIndexUniteNoOpOnSameComponent(t *testing.T) {
	g := newGroupIndex()
	a, b := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}

	g.newSingleton(a)
	g.newSingleton(b)
	g.unite(a, b)
	before := g.find(a)
	g.unite(a, b)
	assert.Equal(t, before, g.find(a))
}

func TestGroupIndexDissolveSurvivesRandomizedMemberOrder(t *testing.T) {
	// Regression test: dissolve must not call find() on any member while
	// removing others, since a captured group's root might be visited
	// before or after its other members depending on map iteration order.
	g := newGroupIndex()
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	for _, p := range pts {
		g.newSingleton(p)
	}
	g.unite(pts[0], pts[1])
	g.unite(pts[1], pts[2])
	g.unite(pts[2], pts[3])

	root := g.find(pts[0])
	g.dissolve(root)

	for _, p := range pts {
		_, ok := g.parent[p]
		assert.False(t, ok, "point %v should have no parent entry after dissolve", p)
	}
	_, ok := g.group[root]
	assert.False(t, ok)
	_, ok = g.liberties[root]
	assert.False(t, ok)
}

func TestGroupIndexClearSingleStone(t *testing.T) {
	g := newGroupIndex()
	p := Point{X: 0, Y: 0}
	g.newSingleton(p)
	g.addLiberty(p, Point{X: 1, Y: 0})

	g.clear(p)

	_, ok := g.parent[p]
	assert.False(t, ok)
	_, ok = g.group[p]
	assert.False(t, ok)
}

func TestGroupIndexCloneIsIndependent(t *testing.T) {
	g := newGroupIndex()
	a, b := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}
	g.newSingleton(a)
	g.addLiberty(a, Point{X: 0, Y: 1})
	g.newSingleton(b)

	clone := g.clone()
	clone.unite(a, b)

	assert.Equal(t, 1, g.size(a))
	assert.Equal(t, 2, clone.size(a))
}
