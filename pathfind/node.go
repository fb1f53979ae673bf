package pathfind

import "github.com/aurelien-rainone/assertgo"

// nodeState tracks where a grid cell sits in a Dijkstra search: never
// reached, sitting in the open heap, or settled.
type nodeState uint8

const (
	stateUnvisited nodeState = iota
	stateOpen
	stateClosed
)

// node is the generalization of the teacher's DtNode (node.go): instead of
// indexing a navmesh polygon reference, it indexes a grid cell directly by
// its position. Total is the accumulated path cost from the search origin
// and doubles as the binary heap's priority key, exactly as in DtNode.
type node struct {
	x, y   int
	total  float64
	parent int // key of the parent in the owning pool's nodes map, or -1.
	state  nodeState
}

// nodePool owns one node per grid cell, allocated lazily. Because grid
// cells are densely addressable by x+y*stride there is no need for the
// teacher's hash-bucket indirection (DtNodePool.Node); a map keyed by that
// same canonical id suffices.
type nodePool struct {
	stride int
	nodes  map[int]*node
}

func newNodePool(stride int) *nodePool {
	return &nodePool{stride: stride, nodes: make(map[int]*node)}
}

func (p *nodePool) id(x, y int) int { return x + y*p.stride }

// get returns the node for (x, y), allocating it the first time it is
// touched by a search.
func (p *nodePool) get(x, y int) *node {
	id := p.id(x, y)
	n, ok := p.nodes[id]
	if !ok {
		n = &node{x: x, y: y, parent: -1, state: stateUnvisited}
		p.nodes[id] = n
	}
	return n
}

// nodeQueue is a binary min-heap ordered by node.total, a direct port of
// the teacher's DtNodeQueue (nodequeue.go) generalized from *DtNode to
// *node.
type nodeQueue struct {
	heap []*node
}

func newNodeQueue(capacityHint int) *nodeQueue {
	assert.True(capacityHint >= 0, "nodeQueue capacity hint must be >= 0")
	return &nodeQueue{heap: make([]*node, 0, capacityHint)}
}

func (q *nodeQueue) bubbleUp(i int, n *node) {
	parent := (i - 1) / 2
	for i > 0 && q.heap[parent].total > n.total {
		q.heap[i] = q.heap[parent]
		i = parent
		parent = (i - 1) / 2
	}
	q.heap[i] = n
}

func (q *nodeQueue) trickleDown(i int, n *node) {
	child := i*2 + 1
	for child < len(q.heap) {
		if child+1 < len(q.heap) && q.heap[child].total > q.heap[child+1].total {
			child++
		}
		q.heap[i] = q.heap[child]
		i = child
		child = i*2 + 1
	}
	q.bubbleUp(i, n)
}

func (q *nodeQueue) empty() bool { return len(q.heap) == 0 }

func (q *nodeQueue) push(n *node) {
	q.heap = append(q.heap, nil)
	q.bubbleUp(len(q.heap)-1, n)
}

func (q *nodeQueue) pop() *node {
	top := q.heap[0]
	last := q.heap[len(q.heap)-1]
	q.heap = q.heap[:len(q.heap)-1]
	if len(q.heap) > 0 {
		q.trickleDown(0, last)
	}
	return top
}

// modify restores heap order after n.total has decreased, the same linear
// scan the teacher's DtNodeQueue.modify performs.
func (q *nodeQueue) modify(n *node) {
	for i, m := range q.heap {
		if m == n {
			q.bubbleUp(i, n)
			return
		}
	}
}
