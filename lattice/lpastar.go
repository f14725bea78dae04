package lattice

import (
	"context"
	"math"
)

// newPlaceholder appends a goal placeholder to the arena without
// registering it in hm -- it exists only so LPAstar's stop predicate has a
// uniform g/rhs pair to compare against before any real goal is found.
func (ss *StateSpace) newPlaceholder() *stateNode {
	id := nodeID(len(ss.nodes))
	n := newStateNode(id, Key{}, Waypoint{})
	ss.nodes = append(ss.nodes, n)
	ss.open.nodes = ss.nodes
	return n
}

// lpastar runs Lifelong Planning A*: it maintains g and rhs per node, the
// open set holding exactly the locally-inconsistent nodes keyed by
// min(g,rhs)+eps*h, and stops once the top-of-queue key is no smaller than
// min(goal.g,goal.rhs) and the goal is itself locally consistent. Unlike
// astar, the start node begins with g=+Inf, rhs=0 so relaxation flows
// outward from the rhs=0 source.
func (ss *StateSpace) lpastar(
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
		start.g = math.Inf(1)
		start.rhs = 0
		start.h = env.Heuristic(startCoord, start.t)
		ss.open.push(start.id, start.lpaKey(ss.eps))
	}

	if ss.needResetGoal {
		ss.goalNode = noNode
		ss.needResetGoal = false
	}
	if ss.goalNode == noNode {
		ss.goalNode = ss.newPlaceholder().id
	}
	goal := ss.nodes[ss.goalNode]

	numActions := env.NumActions()
	curr := ss.nodes[ss.hm[startKey]]

	for ss.open.topKey(math.Inf(1)) < math.Min(goal.g, goal.rhs) || goal.rhs != goal.g {
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

		var deferred []*stateNode
		for s, succKey := range succKeys {
			succ, isNew := ss.getOrCreateNode(succKey, succCoords[s])
			if isNew {
				succ.h = env.Heuristic(succCoords[s], curr.t+ss.dt)
			}

			if succ.key == curr.key {
				continue
			}

			curr.setSucc(succActionIDs[s], succKey, succCosts[s])
			succ.appendOrUpdatePred(curr.key, succActionIDs[s], succCosts[s])

			deferred = append(deferred, succ)
		}

		if curr.g > curr.rhs {
			curr.g = curr.rhs
		} else {
			curr.g = math.Inf(1)
			deferred = append(deferred, curr)
		}

		if maxT > 0 && curr.t >= maxT && !math.IsInf(curr.rhs, 1) {
			break
		}

		for _, n := range deferred {
			ss.updateNode(n)
		}

		if env.IsGoal(curr.coord) {
			break
		}
		if maxExpand > 0 && expansions >= maxExpand {
			return math.Inf(1), nil, expansions, ErrInfeasiblePlan
		}
		if ss.open.empty() {
			return math.Inf(1), nil, expansions, ErrInfeasiblePlan
		}
	}

	if curr.iterationClosed && expansions == 0 {
		curr = ss.nodes[ss.goalNode]
	}
	ss.goalNode = curr.id

	pcost := curr.g
	traj, err = ss.recoverTraj(curr.id, env, startKey)
	if err != nil {
		return math.Inf(1), nil, expansions, err
	}
	return pcost, traj, expansions, nil
}
