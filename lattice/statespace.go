package lattice

import (
	"container/heap"
	"math"

	"github.com/pkg/errors"

	"github.com/lkm1321/mpl-go/logging"
	"github.com/lkm1321/mpl-go/metrics"
)

// Edge identifies one incoming edge of a node: the node's Key and the
// index of the predecessor slot in that node's predKey/predActionID/
// predActionCost arrays.
type Edge struct {
	Key     Key
	PredIdx int
}

// Violation describes one integrity problem found by CheckValidation.
type Violation struct {
	Key     Key
	Message string
}

// StateSpace is the persistent explicit graph of discovered lattice nodes:
// the Key->node map, the open-set priority queue, the inflation factor and
// time step, and the incremental-replanning bookkeeping (goal placeholder,
// best_child_ chain).
type StateSpace struct {
	nodes []*stateNode // arena; index is nodeID
	hm    map[Key]nodeID
	open  *openQueue

	eps float64
	dt  float64

	numActions int

	goalNode      nodeID
	needResetGoal bool

	bestChild []nodeID

	logger  logging.Logger
	metrics metrics.Sink
}

// NewStateSpace builds an empty StateSpace for an environment with
// numActions actions, inflation factor eps, and time step dt.
func NewStateSpace(numActions int, eps, dt float64, logger logging.Logger, sink metrics.Sink) *StateSpace {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	ss := &StateSpace{
		hm:         make(map[Key]nodeID),
		eps:        eps,
		dt:         dt,
		numActions: numActions,
		goalNode:   noNode,
		logger:     logger.Named("statespace"),
		metrics:    sink,
	}
	ss.open = newOpenQueue(ss.nodes)
	return ss
}

// getOrCreateNode returns the node for key, creating and arena-appending it
// if absent. The caller is responsible for filling in t, g, rhs, and h on a
// freshly created node.
func (ss *StateSpace) getOrCreateNode(key Key, coord Waypoint) (*stateNode, bool) {
	if id, ok := ss.hm[key]; ok {
		return ss.nodes[id], false
	}
	id := nodeID(len(ss.nodes))
	n := newStateNode(id, key, coord)
	ss.nodes = append(ss.nodes, n)
	ss.open.nodes = ss.nodes
	ss.hm[key] = id
	return n, true
}

func (ss *StateSpace) nodeByKey(key Key) (*stateNode, bool) {
	id, ok := ss.hm[key]
	if !ok {
		return nil, false
	}
	return ss.nodes[id], true
}

// updateNode is the LPA* "UpdateVertex" heart of incremental maintenance.
// If n is not the start node (rhs != 0), its rhs is recomputed as the min
// over predecessors of g(pred) + edge cost, skipping predecessors missing
// from hm. If n is currently open it is pulled out of the queue; if it is
// now locally inconsistent (g != rhs) it is reinserted with the combined
// LPA* key and its advisory t is set from the minimizing predecessor's t.
func (ss *StateSpace) updateNode(n *stateNode) {
	parentT := n.t - ss.dt

	if n.rhs != 0 {
		n.rhs = math.Inf(1)
		for i, pk := range n.predKey {
			pred, ok := ss.nodeByKey(pk)
			if !ok {
				continue
			}
			if candidate := pred.g + n.predActionCost[i]; candidate < n.rhs {
				n.rhs = candidate
				parentT = pred.t
			}
		}
	}

	if math.IsNaN(n.rhs) {
		ss.logger.Warnw("updateNode: computed NaN rhs, clamping to +Inf", "key", n.key)
		n.rhs = math.Inf(1)
	}

	if n.inOpenSet() {
		ss.open.erase(n.id)
		n.iterationClosed = true
	}

	if n.g != n.rhs {
		n.t = parentT + ss.dt
		ss.open.push(n.id, n.lpaKey(ss.eps))
		n.iterationClosed = false
	}
}

// IncreaseCost invalidates each affected incoming edge -- setting its cost
// to +Inf, relaxing the target through updateNode, and mirroring +Inf into
// the source node's successor slot -- and marks the goal placeholder for
// reset so the next LPAstar call re-derives it.
func (ss *StateSpace) IncreaseCost(affected []Edge) error {
	if len(affected) == 0 {
		return nil
	}
	ss.needResetGoal = true
	for _, e := range affected {
		n, ok := ss.nodeByKey(e.Key)
		if !ok || e.PredIdx < 0 || e.PredIdx >= len(n.predKey) {
			return errors.Wrapf(ErrEdgeNotFound, "key=%v predIdx=%d", e.Key, e.PredIdx)
		}
		n.predActionCost[e.PredIdx] = math.Inf(1)
		ss.updateNode(n)

		parentKey := n.predKey[e.PredIdx]
		actionID := n.predActionID[e.PredIdx]
		if parent, ok := ss.nodeByKey(parentKey); ok {
			parent.succActionCost[actionID] = math.Inf(1)
		}
	}
	ss.metrics.AddIncrementalEdits("increase", len(affected))
	return nil
}

// DecreaseCost re-evaluates each affected edge's primitive via
// env.ForwardAction; if the primitive is collision-free its cost is
// recomputed as pr.Cost(wi) + w*dt, the target is relaxed through
// updateNode, and the source's successor slot is mirrored. Marks the goal
// placeholder for reset.
func (ss *StateSpace) DecreaseCost(affected []Edge, env Environment) error {
	if len(affected) == 0 {
		return nil
	}
	ss.needResetGoal = true
	for _, e := range affected {
		n, ok := ss.nodeByKey(e.Key)
		if !ok || e.PredIdx < 0 || e.PredIdx >= len(n.predKey) {
			return errors.Wrapf(ErrEdgeNotFound, "key=%v predIdx=%d", e.Key, e.PredIdx)
		}
		parentKey := n.predKey[e.PredIdx]
		actionID := n.predActionID[e.PredIdx]
		parent, ok := ss.nodeByKey(parentKey)
		if !ok {
			return errors.Wrapf(ErrEdgeNotFound, "missing parent for key=%v predIdx=%d", e.Key, e.PredIdx)
		}

		prim, err := env.ForwardAction(parent.coord, actionID)
		if err != nil {
			return err
		}
		if !env.IsFree(prim) {
			continue
		}

		cost := prim.Cost(env.WeightIndex()) + env.Weight()*env.TimeStep()
		n.predActionCost[e.PredIdx] = cost
		ss.updateNode(n)
		parent.succActionCost[actionID] = cost
	}
	ss.metrics.AddIncrementalEdits("decrease", len(affected))
	return nil
}

// CheckValidation audits the graph's structural invariants: every non-empty
// successor Key must resolve in hm, and no hm entry may be nil. It reports
// violations without modifying state.
func (ss *StateSpace) CheckValidation() []Violation {
	var violations []Violation
	for key, id := range ss.hm {
		n := ss.nodes[id]
		if n == nil {
			violations = append(violations, Violation{Key: key, Message: "nil arena entry"})
			continue
		}
		if math.IsNaN(n.g) || math.IsNaN(n.rhs) {
			violations = append(violations, Violation{Key: key, Message: "NaN on a cost path (g or rhs)"})
		}
		for _, succKey := range n.succKey {
			if succKey.Empty() {
				continue
			}
			if _, ok := ss.hm[succKey]; !ok {
				violations = append(violations, Violation{Key: key, Message: "successor key not present in state space"})
			}
		}
	}
	for _, v := range violations {
		ss.logger.Warnw("state space integrity violation", "key", v.Key, "message", v.Message)
	}
	return violations
}

// GetSubStateSpace commits the prefix of the previously recovered
// trajectory up to timeStep in best_child_, and prunes the graph to only
// the sub-graph forward-reachable from that committed node, following
// graph_search.cpp's procedure: reset every node's g/rhs/predecessors
// (iterationClosed is deliberately left untouched -- it still records
// whether the real search settled this node), reseed the committed node
// with its pre-saved g, Dijkstra-expand forward over successor edges using
// scratch bookkeeping private to this sweep, replace hm with the visited
// set, and repopulate the open queue with every visited node the original
// search never closed (moving g into rhs so the next LPAstar call sees
// them as inconsistent). A node the original search did settle is left
// out of the queue entirely -- its absolute g is now stale, but hm no
// longer reaches it through anything other than a future fresh start, at
// which point the driver resets it from scratch.
func (ss *StateSpace) GetSubStateSpace(timeStep int) error {
	if len(ss.bestChild) == 0 {
		return ErrEmptyStateSpace
	}
	if timeStep < 0 || timeStep >= len(ss.bestChild) {
		return errors.Errorf("lattice: time step %d out of range [0, %d)", timeStep, len(ss.bestChild))
	}

	committed := ss.nodes[ss.bestChild[timeStep]]
	committed.clearPreds()
	committed.t = 0
	initG := committed.g

	for _, n := range ss.nodes {
		if n == nil {
			ss.logger.Warnw("nil arena entry during getSubStateSpace; skipping it")
			continue
		}
		n.g = math.Inf(1)
		n.rhs = math.Inf(1)
		n.iterationOpened = false
		n.heapIndex = -1
		n.clearPreds()
	}
	committed.g = initG

	dijkstra := newOpenQueue(ss.nodes)
	dijkstraOpened := make(map[nodeID]bool)
	heap.Push(dijkstra, openItem{id: committed.id, key: committed.g})
	dijkstraOpened[committed.id] = true

	visited := make(map[Key]nodeID)

	for dijkstra.Len() > 0 {
		curr := ss.nodes[heap.Pop(dijkstra).(openItem).id]
		visited[curr.key] = curr.id

		for actionID, succKey := range curr.succKey {
			if succKey.Empty() || succKey == curr.key {
				continue
			}
			succID, ok := ss.hm[succKey]
			if !ok {
				ss.logger.Warnw("getSubStateSpace: successor not present in state space", "key", succKey)
				continue
			}
			succ := ss.nodes[succID]

			succ.predKey = append(succ.predKey, curr.key)
			succ.predActionCost = append(succ.predActionCost, curr.succActionCost[actionID])
			succ.predActionID = append(succ.predActionID, actionID)

			tentative := curr.g + curr.succActionCost[actionID]
			if tentative < succ.g || !dijkstraOpened[succ.id] {
				succ.t = curr.t + ss.dt
				succ.g = tentative
				if dijkstraOpened[succ.id] {
					dijkstra.items[succ.heapIndex].key = tentative
					heap.Fix(dijkstra, succ.heapIndex)
				} else {
					heap.Push(dijkstra, openItem{id: succ.id, key: tentative})
					dijkstraOpened[succ.id] = true
				}
			}
		}
	}

	ss.hm = visited
	ss.open.clear()
	ss.open.nodes = ss.nodes

	for _, id := range visited {
		n := ss.nodes[id]
		if n.iterationClosed {
			continue
		}
		n.rhs = n.g
		n.g = math.Inf(1)
		ss.open.push(id, n.lpaKey(ss.eps))
	}

	ss.needResetGoal = true
	return nil
}
