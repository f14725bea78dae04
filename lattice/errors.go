package lattice

import "github.com/pkg/errors"

// ErrInfeasiblePlan is returned when the open queue is exhausted or the
// expansion cap is hit before a goal or time bound was reached. The
// returned cost is +Inf and the trajectory is empty; this is non-fatal,
// the caller may widen MaxExpand/MaxT and retry.
var ErrInfeasiblePlan = errors.New("lattice: no feasible plan found")

// ErrMissingStartNode describes a startKey that does not correspond to any
// node the StateSpace currently tracks. No function in this package returns
// it: on an empty open queue the drivers create the start node themselves.
var ErrMissingStartNode = errors.New("lattice: start node not present in state space")

// ErrEdgeNotFound is returned by IncreaseCost/DecreaseCost when an
// (key, predIdx) pair references a predecessor slot that does not exist.
var ErrEdgeNotFound = errors.New("lattice: referenced predecessor edge does not exist")

// ErrEmptyStateSpace is returned by GetSubStateSpace when there is no
// previously recovered trajectory to commit a prefix of.
var ErrEmptyStateSpace = errors.New("lattice: no recovered trajectory to commit a prefix of")
