package lattice

import "math"

// edgeSpec is one directed edge of a small explicit test graph: node ids
// are encoded directly as the Waypoint's first position component and
// hashed into a Key via NewKey, so the test graphs need no real dynamics.
type edgeSpec struct {
	to       int
	actionID int
	cost     float64
}

// graphEnv is a deterministic Environment backed by an explicit adjacency
// list, used to exercise the scenarios from the testable-properties
// section: unit line graphs, branch-with-tie graphs, and incremental
// edit/restore round trips.
type graphEnv struct {
	adj        map[int][]edgeSpec
	numActions int
	goal       int
	heur       map[int]float64 // defaults to 0 (admissible, trivially consistent)
	blocked    map[[2]int]bool // (from,to) pairs currently infeasible
}

func newGraphEnv(numActions, goal int) *graphEnv {
	return &graphEnv{
		adj:        make(map[int][]edgeSpec),
		numActions: numActions,
		goal:       goal,
		heur:       make(map[int]float64),
		blocked:    make(map[[2]int]bool),
	}
}

func (g *graphEnv) addEdge(from, to, actionID int, cost float64) {
	g.adj[from] = append(g.adj[from], edgeSpec{to: to, actionID: actionID, cost: cost})
}

func testKey(id int) Key {
	return NewKey([]float64{float64(id)}, []float64{1})
}

func testWaypoint(id int) Waypoint {
	var wp Waypoint
	wp.Position[0] = float64(id)
	return wp
}

func idOf(wp Waypoint) int { return int(wp.Position[0]) }

func (g *graphEnv) IsGoal(coord Waypoint) bool { return idOf(coord) == g.goal }

func (g *graphEnv) Heuristic(coord Waypoint, t float64) float64 {
	return g.heur[idOf(coord)]
}

func (g *graphEnv) Successors(coord Waypoint) ([]Waypoint, []Key, []float64, []int) {
	id := idOf(coord)
	edges := g.adj[id]
	coords := make([]Waypoint, 0, len(edges))
	keys := make([]Key, 0, len(edges))
	costs := make([]float64, 0, len(edges))
	actionIDs := make([]int, 0, len(edges))
	for _, e := range edges {
		cost := e.cost
		if g.blocked[[2]int{id, e.to}] {
			cost = math.Inf(1)
		}
		coords = append(coords, testWaypoint(e.to))
		keys = append(keys, testKey(e.to))
		costs = append(costs, cost)
		actionIDs = append(actionIDs, e.actionID)
	}
	return coords, keys, costs, actionIDs
}

// testPrimitive is the opaque Primitive payload: it just remembers which
// edge produced it and that edge's nominal (uncollided) cost.
type testPrimitive struct {
	from, to int
	cost     float64
}

func (p testPrimitive) Cost(wi int) float64 { return p.cost }

func (g *graphEnv) ForwardAction(coord Waypoint, actionID int) (Primitive, error) {
	id := idOf(coord)
	for _, e := range g.adj[id] {
		if e.actionID == actionID {
			return testPrimitive{from: id, to: e.to, cost: e.cost}, nil
		}
	}
	return nil, ErrEdgeNotFound
}

func (g *graphEnv) IsFree(p Primitive) bool {
	tp := p.(testPrimitive)
	return !g.blocked[[2]int{tp.from, tp.to}]
}

func (g *graphEnv) NumActions() int { return g.numActions }
func (g *graphEnv) TimeStep() float64 { return 1 }
func (g *graphEnv) Weight() float64 { return 0 }
func (g *graphEnv) WeightIndex() int { return 0 }

// lineGraph builds a unit-cost line 0 -> 1 -> ... -> n with a single action
// per node (|U|=1), goal at node n.
func lineGraph(n int) *graphEnv {
	g := newGraphEnv(1, n)
	for i := 0; i < n; i++ {
		g.addEdge(i, i+1, 0, 1)
	}
	return g
}

// branchGraph builds the scenario-3 tie graph: two equal-cost paths from 0
// to 3 via 1 (g=1, cost 2 onward) and 2 (g=2, cost 1 onward).
func branchGraph() *graphEnv {
	g := newGraphEnv(2, 3)
	g.addEdge(0, 1, 0, 1)
	g.addEdge(0, 2, 1, 2)
	g.addEdge(1, 3, 0, 2)
	g.addEdge(2, 3, 0, 1)
	return g
}
