package lattice

// PlannerType selects which top-level search algorithm Plan dispatches to.
type PlannerType int

const (
	// AstarPlanner runs a fresh-or-resumed weighted A* search.
	AstarPlanner PlannerType = iota
	// LPAstarPlanner runs the incremental Lifelong Planning A* search,
	// reusing g/rhs values left over from a prior call or incremental edit.
	LPAstarPlanner
)

func (t PlannerType) String() string {
	switch t {
	case AstarPlanner:
		return "astar"
	case LPAstarPlanner:
		return "lpastar"
	default:
		return "unknown"
	}
}

// PlannerOptions configures a Plan call, grounded on the reference
// implementation's plannerOptions: the heuristic inflation factor, the
// discrete time step, and the two termination bounds. Plan reads only
// PlannerType, MaxExpand and MaxT; a StateSpace uses the eps and dt passed
// to NewStateSpace, so Epsilon and Dt take effect only when a caller hands
// them to NewStateSpace.
type PlannerOptions struct {
	// Epsilon is eps >= 1, the heuristic inflation factor.
	Epsilon float64
	// Dt is the discrete time-layer step new nodes advance by.
	Dt float64
	// MaxExpand caps the number of pops from the open queue; 0 means
	// unbounded.
	MaxExpand int
	// MaxT caps the time layer a search will expand past; 0 means
	// unbounded.
	MaxT float64
	// PlannerType selects Astar or LPAstar.
	PlannerType PlannerType
}

// Option mutates a PlannerOptions under construction.
type Option func(*PlannerOptions)

// DefaultPlannerOptions returns an uninflated (Epsilon=1), unbounded
// (MaxExpand=0, MaxT=0) weighted-A* configuration with Dt=1.
func DefaultPlannerOptions() PlannerOptions {
	return PlannerOptions{
		Epsilon:     1.0,
		Dt:          1.0,
		MaxExpand:   0,
		MaxT:        0,
		PlannerType: AstarPlanner,
	}
}

// NewPlannerOptions builds a PlannerOptions starting from the defaults and
// applying opts in order.
func NewPlannerOptions(opts ...Option) PlannerOptions {
	o := DefaultPlannerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEpsilon sets the heuristic inflation factor.
func WithEpsilon(eps float64) Option {
	return func(o *PlannerOptions) { o.Epsilon = eps }
}

// WithDt sets the discrete time-layer step.
func WithDt(dt float64) Option {
	return func(o *PlannerOptions) { o.Dt = dt }
}

// WithMaxExpand sets the expansion-count cap.
func WithMaxExpand(n int) Option {
	return func(o *PlannerOptions) { o.MaxExpand = n }
}

// WithMaxT sets the time-layer cap.
func WithMaxT(t float64) Option {
	return func(o *PlannerOptions) { o.MaxT = t }
}

// WithPlannerType selects which algorithm Plan dispatches to.
func WithPlannerType(pt PlannerType) Option {
	return func(o *PlannerOptions) { o.PlannerType = pt }
}
