// File: astar/frontier_test.go
package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/grid"
)

// TestFrontier_Order checks f ascending, then h ascending, then FIFO.
func TestFrontier_Order(t *testing.T) {
	fr := newFrontier(8)
	fr.push(0, 10, 4) // seq 0
	fr.push(1, 8, 8)  // seq 1
	fr.push(2, 10, 2) // seq 2
	fr.push(3, 8, 8)  // seq 3, ties with 1
	fr.push(4, 12, 0) // seq 4

	var got []nodeID
	for fr.len() > 0 {
		got = append(got, fr.pop())
	}
	assert.Equal(t, []nodeID{1, 3, 2, 0, 4}, got)
}

// TestNodePool_AllocAndRelease verifies handles and predecessor links.
func TestNodePool_AllocAndRelease(t *testing.T) {
	p := newNodePool(2)
	root := p.alloc(0, 0, 0, 5, noParent)
	child := p.alloc(1, 0, 1, 4, root)
	require.Equal(t, nodeID(0), root)
	require.Equal(t, nodeID(1), child)

	n := p.at(child)
	assert.Equal(t, root, n.parent)
	assert.Equal(t, 5, n.f())
	assert.Equal(t, grid.Pt(1, 0), n.point())
	assert.Equal(t, 2, p.len())

	p.release()
	assert.Zero(t, p.len())
}

// TestVisitedSet keys cells by y*W+x.
func TestVisitedSet(t *testing.T) {
	g, err := grid.New(grid.WithSize(4, 3))
	require.NoError(t, err)
	v := newVisitedSet(g.Width() * g.Height())

	v.add(g.Index(3, 2))
	assert.True(t, v.has(11))
	assert.False(t, v.has(g.Index(2, 2)))
}

// TestWalkBack rebuilds goal→start order from a hand-made chain and reverses it.
func TestWalkBack(t *testing.T) {
	g, err := grid.New(grid.WithSize(3, 3))
	require.NoError(t, err)
	r := newRunner(g, grid.Pt(0, 0), grid.Pt(2, 1), DefaultOptions())

	a := r.pool.alloc(0, 0, 0, 3, noParent)
	b := r.pool.alloc(1, 0, 1, 2, a)
	_ = r.pool.alloc(0, 1, 1, 2, a) // sibling, not on the chain
	c := r.pool.alloc(2, 0, 2, 1, b)
	d := r.pool.alloc(2, 1, 3, 0, c)

	chain := r.walkBack(d)
	want := []grid.Point{{X: 2, Y: 1}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, want, chain)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}, reversed(chain))

	assert.Equal(t, []grid.Point{{X: 0, Y: 0}}, r.walkBack(a))
}

// TestResult_Interior strips the endpoints.
func TestResult_Interior(t *testing.T) {
	assert.Nil(t, Result{Path: []grid.Point{{X: 0, Y: 0}}}.Interior())
	assert.Nil(t, Result{Path: []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}}.Interior())
	assert.Equal(t, []grid.Point{{X: 0, Y: 1}}, Result{Path: []grid.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}}.Interior())
}
