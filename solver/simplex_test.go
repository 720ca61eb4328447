package solver_test

import (
	"testing"

	"github.com/petebuffon/yafc/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// boundedLP builds a tiny standard-form instance with a known optimum:
//
//	minimize  -x1 - x2
//	s.t.      x1 + x3 = 1
//	          x2 + x4 = 1
//	          x ≥ 0
//
// Optimum: x1 = x2 = 1, objective -2.
func boundedLP(t *testing.T) *solver.Simplex {
	t.Helper()

	c := []float64{-1, -1, 0, 0}
	a := mat.NewDense(2, 4, []float64{
		1, 0, 1, 0,
		0, 1, 0, 1,
	})
	b := []float64{1, 1}

	s, err := solver.NewSimplex(c, a, b)
	require.NoError(t, err)

	return s
}

// TestSimplex_Optimal verifies the happy path and the solution accessors.
func TestSimplex_Optimal(t *testing.T) {
	s := boundedLP(t)

	require.Equal(t, solver.Optimal, s.Solve())
	assert.Equal(t, solver.Optimal, s.Status())
	assert.InDelta(t, -2, s.Value(), 1e-8)

	p := s.Point()
	require.Len(t, p, 4)
	assert.InDelta(t, 1, p[0], 1e-8)
	assert.InDelta(t, 1, p[1], 1e-8)
}

// TestSimplex_Infeasible verifies the infeasibility mapping: x = -1 with
// x ≥ 0 has no solution.
func TestSimplex_Infeasible(t *testing.T) {
	s, err := solver.NewSimplex(
		[]float64{1},
		mat.NewDense(1, 1, []float64{1}),
		[]float64{-1},
	)
	require.NoError(t, err)

	assert.Equal(t, solver.Infeasible, s.Solve())
}

// TestSimplex_Unbounded verifies the unboundedness mapping: minimize -x1
// with only x2 constrained.
func TestSimplex_Unbounded(t *testing.T) {
	s, err := solver.NewSimplex(
		[]float64{-1, 0},
		mat.NewDense(1, 2, []float64{0, 1}),
		[]float64{1},
	)
	require.NoError(t, err)

	assert.Equal(t, solver.Unbounded, s.Solve())
}

// TestSimplex_SeedPerturbation verifies that a reseed changes the
// arithmetic path without moving the reported optimum beyond tolerance.
func TestSimplex_SeedPerturbation(t *testing.T) {
	s := boundedLP(t)

	require.Equal(t, solver.Optimal, s.Solve())
	unseeded := s.Value()

	s.SetParameter(solver.ParamRandomSeed, 12345)
	require.Equal(t, solver.Optimal, s.Solve(), "jittered instance still solves")
	assert.InDelta(t, unseeded, s.Value(), 1e-6, "objective reported under the true cost")

	// Unknown parameters are ignored.
	s.SetParameter("presolve", 1)
	assert.Equal(t, solver.Optimal, s.Solve())
}

// TestSimplex_RetryPolicyIntegration runs the real backend under the retry
// policy: a clean instance returns optimal on the first attempt.
func TestSimplex_RetryPolicyIntegration(t *testing.T) {
	s := boundedLP(t)
	p := solver.NewRetryPolicy(7, nil)

	assert.Equal(t, solver.Optimal, p.Run(s))
	assert.InDelta(t, -2, s.Value(), 1e-8)
}

// TestNewSimplex_Validation verifies the constructor sentinels.
func TestNewSimplex_Validation(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 1})

	_, err := solver.NewSimplex(nil, a, []float64{1})
	assert.ErrorIs(t, err, solver.ErrEmptyProblem)

	_, err = solver.NewSimplex([]float64{1, 1}, nil, []float64{1})
	assert.ErrorIs(t, err, solver.ErrEmptyProblem)

	_, err = solver.NewSimplex([]float64{1}, a, []float64{1})
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch, "c shorter than A's columns")

	_, err = solver.NewSimplex([]float64{1, 1}, a, []float64{1, 1})
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch, "b longer than A's rows")
}
