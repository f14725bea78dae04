package lattice

import "math"

// Trajectory is the sequence of motion primitives recovered by backward
// best-parent traversal, in forward (start-to-goal) order.
type Trajectory []Primitive

// recoverTraj walks the predecessor chain backward from terminal, at each
// step picking the predecessor minimising pred.g + pred_action_cost, tying
// toward the predecessor with the larger g (a deeper branch, i.e. later
// commitment). It stops when a node has no predecessors or when it reaches
// startKey, reconstructs each edge's Primitive via env.ForwardAction, and
// records the forward-order node chain into best_child_ for later use by
// GetSubStateSpace.
//
// If at some step no predecessor has a finite candidate cost, recovery
// stops there and returns the partial trajectory built so far -- this is a
// diagnostic condition (trace-back dead-end), not a fatal error.
func (ss *StateSpace) recoverTraj(terminal nodeID, env Environment, startKey Key) (Trajectory, error) {
	var prims []Primitive
	var chain []nodeID

	curr := terminal
	for len(ss.nodes[curr].predKey) > 0 {
		n := ss.nodes[curr]

		bestIdx := -1
		bestRHS := math.Inf(1)
		bestParentG := math.Inf(1)
		for i, pk := range n.predKey {
			parent, ok := ss.hm[pk]
			if !ok {
				continue
			}
			parentNode := ss.nodes[parent]
			candidate := parentNode.g + n.predActionCost[i]
			if candidate < bestRHS {
				bestRHS = candidate
				bestParentG = parentNode.g
				bestIdx = i
			} else if !math.IsInf(n.predActionCost[i], 1) && candidate == bestRHS {
				if parentNode.g > bestParentG {
					bestParentG = parentNode.g
					bestIdx = i
				}
			}
		}

		if bestIdx < 0 {
			ss.logger.Warnw("trace-back dead-end: no predecessor with finite candidate cost",
				"key", n.key, "numPredecessors", len(n.predKey))
			break
		}

		parentKey := n.predKey[bestIdx]
		actionID := n.predActionID[bestIdx]
		parentID := ss.hm[parentKey]
		parentNode := ss.nodes[parentID]

		prim, err := env.ForwardAction(parentNode.coord, actionID)
		if err != nil {
			return nil, err
		}
		prims = append(prims, prim)
		chain = append(chain, parentID)

		curr = parentID
		if ss.nodes[curr].key == startKey {
			break
		}
	}

	reverse(prims)
	reverse(chain)
	ss.bestChild = chain

	return Trajectory(prims), nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
