package lattice

import "math"

// nodeID is a dense, stable index into StateSpace's node arena. It is the
// "handle" the hash map and the priority queue share (neighbours refer to
// each other by Key, resolved through the hash map) --
// the arena-plus-index scheme the design notes prefer over reference
// counted node pointers, since it sidesteps dangling heap handles and
// makes handle validity an O(1) bounds check.
type nodeID int32

// noNode is the sentinel "no node" handle, used for an unset goal node.
// Unexplored successor slots use the empty Key instead.
const noNode nodeID = -1

// stateNode is one record per discovered lattice cell.
type stateNode struct {
	id    nodeID
	key   Key
	coord Waypoint

	t   float64
	g   float64
	rhs float64
	h   float64

	iterationOpened bool
	iterationClosed bool
	heapIndex       int // position in the open queue's backing slice, -1 if absent

	predKey        []Key
	predActionID   []int
	predActionCost []float64

	succKey        []Key
	succActionCost []float64
}

func newStateNode(id nodeID, key Key, coord Waypoint) *stateNode {
	return &stateNode{
		id:        id,
		key:       key,
		coord:     coord,
		g:         math.Inf(1),
		rhs:       math.Inf(1),
		heapIndex: -1,
	}
}

// inOpenSet reports whether the node currently has a live heap handle.
func (n *stateNode) inOpenSet() bool {
	return n.iterationOpened && !n.iterationClosed
}

// ensureSuccSized (re)sizes the successor arrays to numActions, resetting
// every slot to the empty-Key / +Inf sentinel. The driver must call this
// exactly once per expansion, before refilling from Environment.Successors,
// so that an action omitted from this call's successor list reverts to the
// sentinel rather than keeping a stale value from a previous expansion.
func (n *stateNode) ensureSuccSized(numActions int) {
	if len(n.succKey) == numActions {
		for i := range n.succKey {
			n.succKey[i] = Key{}
			n.succActionCost[i] = math.Inf(1)
		}
		return
	}
	n.succKey = make([]Key, numActions)
	n.succActionCost = make([]float64, numActions)
	for i := range n.succActionCost {
		n.succActionCost[i] = math.Inf(1)
	}
}

// setSucc records the edge from n to the node keyed by succ via actionID.
func (n *stateNode) setSucc(actionID int, succ Key, cost float64) {
	n.succKey[actionID] = succ
	n.succActionCost[actionID] = cost
}

// appendOrUpdatePred appends a new incoming edge from parentKey, or
// overwrites the existing one if parentKey is already recorded. In-degree
// is bounded by |U| and typically small, so the linear scan warrants no
// asymptotic improvement.
func (n *stateNode) appendOrUpdatePred(parentKey Key, actionID int, cost float64) {
	for i, k := range n.predKey {
		if k == parentKey {
			n.predActionID[i] = actionID
			n.predActionCost[i] = cost
			return
		}
	}
	n.predKey = append(n.predKey, parentKey)
	n.predActionID = append(n.predActionID, actionID)
	n.predActionCost = append(n.predActionCost, cost)
}

// clearPreds drops all incoming-edge bookkeeping; successor arrays and
// action costs are left untouched, matching getSubStateSpace's reset step.
func (n *stateNode) clearPreds() {
	n.predKey = n.predKey[:0]
	n.predActionID = n.predActionID[:0]
	n.predActionCost = n.predActionCost[:0]
}

// locallyConsistent reports the LPA* g == rhs invariant.
func (n *stateNode) locallyConsistent() bool {
	return n.g == n.rhs
}

// lpaKey returns min(g, rhs) + eps*h, the LPA* priority-queue key.
func (n *stateNode) lpaKey(eps float64) float64 {
	return math.Min(n.g, n.rhs) + eps*n.h
}

// aKey returns g + eps*h, the weighted-A* priority-queue key.
func (n *stateNode) aKey(eps float64) float64 {
	return n.g + eps*n.h
}
