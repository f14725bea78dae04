package lattice

import "container/heap"

// openItem is one entry of the open-set priority queue: a nodeID keyed by
// its current priority. It mirrors the gonum graph/path aStarPriorityQueue
// pattern -- a container/heap.Interface implementation with an index kept
// on the element itself (here, stateNode.heapIndex) so a handle (the
// nodeID) can be decrease-keyed or erased in O(log n) without a linear
// search.
type openItem struct {
	id  nodeID
	key float64
}

// openQueue is the updatable priority queue of open nodes: the handle of a
// pushed entry is its nodeID (positions are looked up through the node's
// own heapIndex field rather than a separate position table),
// decrease-key and erase operate in O(log n), and handles stay valid
// across unrelated pushes/pops so long as the referenced node remains in
// the heap.
type openQueue struct {
	items []openItem
	nodes []*stateNode // arena reference, for updating heapIndex on Swap
}

func newOpenQueue(nodes []*stateNode) *openQueue {
	return &openQueue{nodes: nodes}
}

func (q *openQueue) Len() int { return len(q.items) }

func (q *openQueue) Less(i, j int) bool { return q.items[i].key < q.items[j].key }

func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.nodes[q.items[i].id].heapIndex = i
	q.nodes[q.items[j].id].heapIndex = j
}

func (q *openQueue) Push(x interface{}) {
	it := x.(openItem)
	q.nodes[it.id].heapIndex = len(q.items)
	q.items = append(q.items, it)
}

func (q *openQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	it := old[n-1]
	q.items = old[:n-1]
	q.nodes[it.id].heapIndex = -1
	return it
}

// push inserts id with priority key and marks it open.
func (q *openQueue) push(id nodeID, key float64) {
	heap.Push(q, openItem{id: id, key: key})
	n := q.nodes[id]
	n.iterationOpened = true
	n.iterationClosed = false
}

// updateKey changes id's priority in place. id must currently be open.
func (q *openQueue) updateKey(id nodeID, key float64) {
	idx := q.nodes[id].heapIndex
	q.items[idx].key = key
	heap.Fix(q, idx)
}

// erase removes id from the open set. id must currently be open.
func (q *openQueue) erase(id nodeID) {
	idx := q.nodes[id].heapIndex
	heap.Remove(q, idx)
}

// empty reports whether the open set has no nodes.
func (q *openQueue) empty() bool { return len(q.items) == 0 }

// top returns the lowest-key node without removing it.
func (q *openQueue) top() (nodeID, float64) {
	it := q.items[0]
	return it.id, it.key
}

// topKey returns the lowest key currently in the queue, or infinity if empty.
func (q *openQueue) topKey(infinity float64) float64 {
	if q.empty() {
		return infinity
	}
	_, key := q.top()
	return key
}

// pop removes and returns the lowest-key node.
func (q *openQueue) pop() nodeID {
	it := heap.Pop(q).(openItem)
	return it.id
}

// clear empties the queue without touching node bookkeeping; callers that
// want to reset iterationOpened/heapIndex must do so themselves (see
// StateSpace.GetSubStateSpace, which rebuilds both from scratch).
func (q *openQueue) clear() {
	q.items = q.items[:0]
}
