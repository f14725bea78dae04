package lattice

import (
	"context"
	"math"
)

// astar runs a forward weighted-A* search with f = g + eps*h over a
// persistent graph, honoring a dynamics time field t purely as a bound and
// heuristic-evaluation input.
//
// If the open queue is empty this starts a fresh search from startCoord;
// otherwise it resumes from whatever queue state a prior call left behind,
// which is what makes max_expand a genuine, resumable cancellation bound
// rather than a wasted search.
func (ss *StateSpace) astar(
	ctx context.Context,
	startCoord Waypoint,
	startKey Key,
	env Environment,
	maxExpand int,
	maxT float64,
) (cost float64, traj Trajectory, expansions int, err error) {
	ss.bestChild = nil

	if env.IsGoal(startCoord) {
		return 0, nil, 0, nil
	}

	if ss.open.empty() {
		start, _ := ss.getOrCreateNode(startKey, startCoord)
		start.t = 0
		start.g = 0
		start.h = env.Heuristic(startCoord, start.t)
		ss.open.push(start.id, start.aKey(ss.eps))
	}

	numActions := env.NumActions()

	var curr *stateNode
	for {
		select {
		case <-ctx.Done():
			return math.Inf(1), nil, expansions, ctx.Err()
		default:
		}

		expansions++
		curr = ss.nodes[ss.open.pop()]
		curr.iterationClosed = true

		succCoords, succKeys, succCosts, succActionIDs := env.Successors(curr.coord)
		curr.ensureSuccSized(numActions)

		for s, succKey := range succKeys {
			succ, isNew := ss.getOrCreateNode(succKey, succCoords[s])
			if isNew {
				succ.t = curr.t + ss.dt
				succ.h = env.Heuristic(succCoords[s], succ.t)
			}

			if succ.key == curr.key {
				continue
			}

			succ.appendOrUpdatePred(curr.key, succActionIDs[s], succCosts[s])
			curr.setSucc(succActionIDs[s], succKey, succCosts[s])

			tentativeG := curr.g + succCosts[s]
			if tentativeG >= succ.g {
				continue
			}

			succ.g = tentativeG
			succ.t = curr.t + ss.dt
			fval := succ.aKey(ss.eps)

			switch {
			case succ.inOpenSet():
				ss.open.updateKey(succ.id, fval)
			case succ.iterationOpened && succ.iterationClosed:
				ss.logger.Warnw("consistency violation: re-entered closed set with lower g",
					"key", succ.key, "g", succ.g)
			default:
				ss.open.push(succ.id, fval)
			}
		}

		if env.IsGoal(curr.coord) {
			break
		}
		if maxT > 0 && curr.t >= maxT && !math.IsInf(curr.g, 1) {
			break
		}
		if maxExpand > 0 && expansions >= maxExpand {
			return math.Inf(1), nil, expansions, ErrInfeasiblePlan
		}
		if ss.open.empty() {
			return math.Inf(1), nil, expansions, ErrInfeasiblePlan
		}
	}

	pcost := curr.g
	traj, err = ss.recoverTraj(curr.id, env, startKey)
	if err != nil {
		return math.Inf(1), nil, expansions, err
	}
	return pcost, traj, expansions, nil
}
