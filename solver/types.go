// Package solver - status taxonomy, solver surface and sentinels.
package solver

import "errors"

// Sentinel errors returned by backend constructors.
var (
	// ErrDimensionMismatch indicates that the cost vector, constraint
	// matrix and right-hand side passed to NewSimplex do not agree in size.
	ErrDimensionMismatch = errors.New("solver: dimension mismatch between c, A and b")

	// ErrEmptyProblem indicates that NewSimplex was given no variables or
	// no constraints.
	ErrEmptyProblem = errors.New("solver: empty problem")
)

// Fixed policy constants. Both are inherited calibration values: changing
// either changes solve-success behavior observably.
const (
	// MaxAttempts is the total number of solve attempts RetryPolicy makes
	// before returning an abnormal status to the caller.
	MaxAttempts = 3

	// FeasibilityTolerance is the relaxed feasibility tolerance backends
	// are constructed with — looser than solver defaults, because an
	// approximately feasible solution beats no solution.
	FeasibilityTolerance = 1e-1

	// ParamRandomSeed is the solver parameter the retry policy reseeds
	// between attempts.
	ParamRandomSeed = "random_seed"
)

// Status is the outcome of one solve attempt.
type Status int

const (
	// NotSolved means no solve attempt has produced a verdict yet.
	NotSolved Status = iota

	// Optimal means the solver proved optimality of the returned point.
	Optimal

	// Feasible means the solver found a feasible but not proven-optimal
	// point (e.g. an iteration-limited run).
	Feasible

	// Infeasible means the solver proved no feasible point exists.
	Infeasible

	// Unbounded means the objective improves without bound.
	Unbounded

	// Abnormal means the solver failed numerically short of proving
	// infeasibility or unboundedness. Abnormal is retryable and is
	// returned as a value, never escalated to an error.
	Abnormal
)

// statusNames is indexed by Status.
var statusNames = [...]string{
	NotSolved:  "not_solved",
	Optimal:    "optimal",
	Feasible:   "feasible",
	Infeasible: "infeasible",
	Unbounded:  "unbounded",
	Abnormal:   "abnormal",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Retryable reports whether a fresh seed and another attempt can change
// the verdict: only Abnormal qualifies. Success and definitive verdicts
// (Infeasible, Unbounded) are final.
func (s Status) Retryable() bool { return s == Abnormal }

// Solver is the surface of the external LP engine this package drives.
//
// Implementations are expected to be deterministic for a fixed parameter
// set: two Solve calls without an intervening SetParameter must agree.
type Solver interface {
	// Solve runs one synchronous solve attempt and reports its outcome.
	Solve() Status

	// SetParameter adjusts a named solver-specific parameter before the
	// next attempt. Unknown names are ignored.
	SetParameter(name string, value float64)
}
