package astar

import "github.com/katalvlaran/lvroute/grid"

// nodeID is a handle into a nodePool. Handles stay valid for the whole run
// and span the full int range, so large boards cannot wrap them.
type nodeID int

// noParent marks the root of the predecessor tree.
const noParent nodeID = -1

// node is one cell reached during search.
// g is the step count from the start, h the Manhattan estimate to the goal.
type node struct {
	x, y   int
	g, h   int
	parent nodeID
}

// f is the total estimate g + h used for frontier ordering.
func (n *node) f() int { return n.g + n.h }

// point returns the node's cell coordinate.
func (n *node) point() grid.Point { return grid.Point{X: n.x, Y: n.y} }

// nodePool owns every node created during a single run. The frontier and the
// predecessor links refer to nodes by nodeID only; all nodes are dropped
// together by release.
type nodePool struct {
	nodes []node
}

// newNodePool preallocates room for capHint nodes.
func newNodePool(capHint int) *nodePool {
	return &nodePool{nodes: make([]node, 0, capHint)}
}

// alloc appends a node and returns its handle.
func (p *nodePool) alloc(x, y, g, h int, parent nodeID) nodeID {
	p.nodes = append(p.nodes, node{x: x, y: y, g: g, h: h, parent: parent})
	return nodeID(len(p.nodes) - 1)
}

// at returns the node behind id. The pointer is only valid until the next alloc.
func (p *nodePool) at(id nodeID) *node {
	return &p.nodes[id]
}

// len reports how many nodes have been allocated.
func (p *nodePool) len() int { return len(p.nodes) }

// release drops all nodes at once.
func (p *nodePool) release() {
	p.nodes = nil
}
