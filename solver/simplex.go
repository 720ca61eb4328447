// Package solver - gonum-backed simplex backend.
//
// Simplex adapts gonum's optimize/convex/lp to the Solver surface for
// standard-form problems: minimize cᵀx subject to Ax = b, x ≥ 0.
//
// Design notes:
//   - The feasibility tolerance is fixed at construction to the relaxed
//     FeasibilityTolerance and never tuned per retry.
//   - gonum's simplex takes no random seed, so ParamRandomSeed drives a
//     tiny deterministic perturbation of the cost vector instead — the
//     classic anti-degeneracy jitter. A fresh seed genuinely changes the
//     arithmetic path, which is exactly what reseed-and-retry needs; the
//     reported objective value is always recomputed against the true cost.
//   - Verdict mapping: nil error ⇒ Optimal; lp.ErrInfeasible ⇒ Infeasible;
//     lp.ErrUnbounded ⇒ Unbounded; everything else (singular basis, Bland
//     cycling, zero rows/columns, …) ⇒ Abnormal.
package solver

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// perturbScale bounds the relative cost jitter applied per unit of
// coefficient magnitude. Far below FeasibilityTolerance, so the perturbed
// optimum stays within the accepted slack.
const perturbScale = 1e-9

// perturbStream namespaces the seed mixing for cost jitter.
const perturbStream uint64 = 0x70657274 // "pert"

// Simplex solves one standard-form LP instance. Not synchronized; not safe
// for concurrent use.
type Simplex struct {
	c []float64
	a *mat.Dense
	b []float64

	tol  float64
	seed int64

	status Status
	value  float64
	point  []float64
}

// NewSimplex builds a backend for minimize cᵀx subject to Ax = b, x ≥ 0.
// The inputs are copied; the instance is immutable except for parameters
// and solve results.
//
// Errors: ErrEmptyProblem, ErrDimensionMismatch.
//
// Complexity: O(rows·cols) for the copies.
func NewSimplex(c []float64, a mat.Matrix, b []float64) (*Simplex, error) {
	if a == nil || len(c) == 0 || len(b) == 0 {
		return nil, ErrEmptyProblem
	}

	var rows, cols = a.Dims()
	if len(c) != cols || len(b) != rows {
		return nil, ErrDimensionMismatch
	}

	var s = &Simplex{
		c:      append([]float64(nil), c...),
		a:      mat.DenseCopyOf(a),
		b:      append([]float64(nil), b...),
		tol:    FeasibilityTolerance,
		status: NotSolved,
	}

	return s, nil
}

// SetParameter implements Solver. ParamRandomSeed selects the cost-jitter
// seed for subsequent attempts; unknown names are ignored.
func (s *Simplex) SetParameter(name string, value float64) {
	if name == ParamRandomSeed {
		s.seed = int64(value)
	}
}

// Solve implements Solver: one synchronous simplex run.
//
// Complexity: the simplex iteration count is instance-dependent; each
// iteration is polynomial in the constraint dimensions.
func (s *Simplex) Solve() Status {
	var cost = s.c
	if s.seed != 0 {
		cost = s.perturbedCost()
	}

	var _, x, err = lp.Simplex(cost, s.a, s.b, s.tol, nil)
	switch {
	case err == nil:
		s.status = Optimal
		s.point = x
		// Report the objective under the true cost, not the jittered one.
		s.value = floats.Dot(s.c, x)
	case errors.Is(err, lp.ErrInfeasible):
		s.status = Infeasible
	case errors.Is(err, lp.ErrUnbounded):
		s.status = Unbounded
	default:
		s.status = Abnormal
	}

	return s.status
}

// Status returns the verdict of the last Solve (NotSolved before any).
func (s *Simplex) Status() Status { return s.status }

// Value returns the objective value of the last optimal solve.
func (s *Simplex) Value() float64 { return s.value }

// Point returns the solution vector of the last optimal solve (nil before
// one). The slice is owned by the backend; callers must not mutate it.
func (s *Simplex) Point() []float64 { return s.point }

// perturbedCost returns a jittered copy of the cost vector, deterministic
// in the current seed: c'_i = c_i + ε·max(1, |c_i|)·u_i with u_i ∈ [-½, ½).
func (s *Simplex) perturbedCost() []float64 {
	var (
		rng  = rand.New(rand.NewSource(deriveSeed(s.seed, perturbStream)))
		cost = make([]float64, len(s.c))
		i    int
	)
	for i = range s.c {
		cost[i] = s.c[i] + perturbScale*math.Max(1, math.Abs(s.c[i]))*(rng.Float64()-0.5)
	}

	return cost
}
