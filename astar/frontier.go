package astar

import "container/heap"

// frontierItem is a non-owning reference to a pooled node plus the keys it
// is ordered by.
type frontierItem struct {
	id  nodeID
	f   int    // g + h
	h   int    // heuristic estimate, first tie-break
	seq uint64 // insertion sequence, second tie-break
}

// frontierPQ is a min-heap of frontierItem ordered by f ascending; equal f
// prefers the lower h (closer to the goal), then the earlier insertion.
// Duplicate entries for one cell are allowed and discarded lazily on pop.
type frontierPQ []frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less defines the ordering: smaller f, then smaller h, then FIFO.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier wraps frontierPQ with a monotonically increasing insertion counter.
type frontier struct {
	pq  frontierPQ
	seq uint64
}

func newFrontier(capHint int) *frontier {
	fr := &frontier{pq: make(frontierPQ, 0, capHint)}
	heap.Init(&fr.pq)
	return fr
}

// push inserts a node handle with its ordering keys.
func (fr *frontier) push(id nodeID, f, h int) {
	heap.Push(&fr.pq, frontierItem{id: id, f: f, h: h, seq: fr.seq})
	fr.seq++
}

// pop extracts the handle with the smallest key.
func (fr *frontier) pop() nodeID {
	return heap.Pop(&fr.pq).(frontierItem).id
}

func (fr *frontier) len() int { return fr.pq.Len() }

// visitedSet records finalized cells by row-major key y*W+x.
type visitedSet []bool

func newVisitedSet(cells int) visitedSet { return make(visitedSet, cells) }

func (v visitedSet) has(key int) bool { return v[key] }

func (v visitedSet) add(key int) { v[key] = true }
