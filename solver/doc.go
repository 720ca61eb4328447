// Package solver wraps the external linear-programming solve in a
// robustness layer: a status taxonomy, a reseed-and-retry policy for
// numerically abnormal results, and a gonum-backed simplex backend.
//
// A production-chain model regularly produces LPs that sit right on the
// edge of numerical stability: near-degenerate bases, coefficients spanning
// many orders of magnitude. Real solvers occasionally give up on such
// instances with an "abnormal" verdict that is neither infeasibility nor
// unboundedness — just arithmetic bad luck. Experience says a different
// random perturbation very often sails through, so the policy here retries
// with a fresh seed instead of surfacing the failure immediately.
//
// Key components:
//
//   - Status: the solve outcome taxonomy (NotSolved, Optimal, Feasible,
//     Infeasible, Unbounded, Abnormal). Abnormal is a VALUE, not an error:
//     after retries are exhausted it is still returned to the caller, never
//     escalated.
//
//   - Solver: the one-method-plus-knob surface of the external LP engine —
//     Solve() Status and SetParameter(name, value).
//
//   - RetryPolicy: drives a Solver for up to MaxAttempts attempts,
//     reseeding ParamRandomSeed from its own deterministic RNG after every
//     abnormal result. Any other status returns immediately. Per-attempt
//     wall-clock durations are logged for diagnostics; timing is not part
//     of the correctness contract.
//
//   - Simplex: a concrete Solver over gonum's optimize/convex/lp for
//     standard-form problems (minimize cᵀx subject to Ax = b, x ≥ 0),
//     constructed with the deliberately relaxed FeasibilityTolerance — an
//     approximately feasible solution beats no solution in an interactive
//     planner.
//
// Determinism:
//
//   - The policy owns its RNG; seed 0 selects a fixed default seed, so two
//     policies built alike emit identical reseed sequences. No time-based
//     randomness anywhere.
//
// Concurrency:
//
//   - RetryPolicy.Run blocks synchronously for the duration of each
//     attempt — the only latency-bearing operation in this module, and the
//     one worth offloading to a background goroutine. Neither RetryPolicy
//     nor Simplex is internally synchronized; offloading callers serialize
//     access themselves.
//
// Example:
//
//	s, _ := solver.NewSimplex(c, a, b)
//	p := solver.NewRetryPolicy(1, logger)
//	switch p.Run(s) {
//	case solver.Optimal:
//	    use(s.Point())
//	case solver.Abnormal:
//	    // still a normal outcome: keep the previous plan, warn the user
//	}
package solver
