package lattice

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Plan dispatches to Astar or LPAstar per opts.PlannerType, returning the
// finite recovered cost and trajectory on success, or math.Inf(1) and
// ErrInfeasiblePlan (or a context error) on failure. It tags the call with
// a plan ID for log correlation and records one duration observation and
// one expansion-count observation through StateSpace's metrics sink.
func Plan(
	ctx context.Context,
	startCoord Waypoint,
	startKey Key,
	env Environment,
	ss *StateSpace,
	opts PlannerOptions,
) (cost float64, traj Trajectory, err error) {
	planID := uuid.New().String()
	logger := ss.logger.Named("plan").Named(planID)
	started := time.Now()

	var expansions int
	switch opts.PlannerType {
	case LPAstarPlanner:
		cost, traj, expansions, err = ss.lpastar(ctx, startCoord, startKey, env, opts.MaxExpand, opts.MaxT)
	default:
		cost, traj, expansions, err = ss.astar(ctx, startCoord, startKey, env, opts.MaxExpand, opts.MaxT)
	}

	elapsed := time.Since(started)
	ss.metrics.ObservePlanDuration(opts.PlannerType.String(), elapsed.Seconds())
	ss.metrics.AddExpansions(opts.PlannerType.String(), expansions)
	ss.metrics.SetOpenSetSize(ss.open.Len())

	if err != nil {
		logger.Warnw("plan did not complete",
			"planner", opts.PlannerType.String(), "expansions", expansions, "elapsed", elapsed, "error", err)
		return cost, traj, err
	}

	logger.Infow("plan complete",
		"planner", opts.PlannerType.String(), "cost", cost, "expansions", expansions,
		"steps", len(traj), "elapsed", elapsed)
	return cost, traj, nil
}
