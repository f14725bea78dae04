package lattice

import (
	"context"
	"testing"

	"go.viam.com/test"

	"github.com/lkm1321/mpl-go/logging"
	"github.com/lkm1321/mpl-go/metrics"
)

func newTestStateSpace(numActions int) *StateSpace {
	return NewStateSpace(numActions, 1.0, 1.0, logging.NewNopLogger(), metrics.NopSink{})
}

func TestAstarStartIsGoal(t *testing.T) {
	env := lineGraph(0)
	ss := newTestStateSpace(env.NumActions())

	cost, traj, expansions, err := ss.astar(context.Background(), testWaypoint(0), testKey(0), env, 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, float64(0))
	test.That(t, len(traj), test.ShouldEqual, 0)
	test.That(t, expansions, test.ShouldEqual, 0)
}

func TestAstarUnitLineGraph(t *testing.T) {
	env := lineGraph(5)
	ss := newTestStateSpace(env.NumActions())

	cost, traj, _, err := ss.astar(context.Background(), testWaypoint(0), testKey(0), env, 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, float64(5))
	test.That(t, len(traj), test.ShouldEqual, 5)
}

func TestAstarBranchWithTiePrefersDeeperPredecessor(t *testing.T) {
	env := branchGraph()
	ss := newTestStateSpace(env.NumActions())

	cost, traj, _, err := ss.astar(context.Background(), testWaypoint(0), testKey(0), env, 0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, float64(3))
	test.That(t, len(traj), test.ShouldEqual, 2)

	// the recovered path must be 0 -> 2 -> 3: the tie-break prefers node 2
	// (g=2) as the penultimate node over node 1 (g=1).
	p0 := traj[0].(testPrimitive)
	p1 := traj[1].(testPrimitive)
	test.That(t, p0.from, test.ShouldEqual, 0)
	test.That(t, p0.to, test.ShouldEqual, 2)
	test.That(t, p1.from, test.ShouldEqual, 2)
	test.That(t, p1.to, test.ShouldEqual, 3)
}

func TestAstarMaxExpandBoundIsInfeasible(t *testing.T) {
	env := lineGraph(10)
	ss := newTestStateSpace(env.NumActions())

	_, _, expansions, err := ss.astar(context.Background(), testWaypoint(0), testKey(0), env, 2, 0)
	test.That(t, err, test.ShouldEqual, ErrInfeasiblePlan)
	test.That(t, expansions, test.ShouldEqual, 2)
}

func TestAstarMaxTBoundStopsEarlyWithFiniteCost(t *testing.T) {
	env := lineGraph(10)
	ss := newTestStateSpace(env.NumActions())

	cost, traj, _, err := ss.astar(context.Background(), testWaypoint(0), testKey(0), env, 0, 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cost, test.ShouldEqual, float64(3))
	test.That(t, len(traj), test.ShouldEqual, 3)
}

func TestAstarContextCancellation(t *testing.T) {
	env := lineGraph(1000)
	ss := newTestStateSpace(env.NumActions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, _, err := ss.astar(ctx, testWaypoint(0), testKey(0), env, 0, 0)
	test.That(t, err, test.ShouldNotBeNil)
}
