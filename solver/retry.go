// Package solver - the reseed-and-retry policy.
package solver

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy drives a Solver through up to MaxAttempts attempts, reseeding
// ParamRandomSeed from its own deterministic generator after every abnormal
// result.
//
// The policy owns its RNG and logger; there is no process-wide state. Not
// synchronized: callers offloading Run to a background goroutine serialize
// access to one policy instance themselves.
type RetryPolicy struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewRetryPolicy builds a policy with a deterministic reseed stream.
// seed==0 selects the fixed default seed (reproducible defaults); log may
// be nil, in which case attempts are not logged.
func NewRetryPolicy(seed int64, log *zap.Logger) *RetryPolicy {
	if log == nil {
		log = zap.NewNop()
	}

	return &RetryPolicy{rng: rngFromSeed(seed), log: log}
}

// Run invokes s.Solve up to MaxAttempts times.
//
// Contracts:
//   - Any status other than Abnormal returns immediately — success and
//     definitive verdicts (Infeasible, Unbounded) are final.
//   - After an abnormal attempt, ParamRandomSeed is reseeded with a fresh
//     draw from the policy RNG and the solve is retried.
//   - After MaxAttempts abnormal attempts the Abnormal status is RETURNED,
//     not escalated: it is a normal (if undesirable) outcome the caller
//     must branch on.
//   - A nil s returns NotSolved.
//
// Each attempt's wall-clock duration is logged for diagnostics; timing is
// not part of the correctness contract.
//
// Complexity: up to MaxAttempts blocking solves; O(1) beyond them.
func (p *RetryPolicy) Run(s Solver) Status {
	if s == nil {
		return NotSolved
	}

	var (
		status  Status
		attempt int
		start   time.Time
	)
	for attempt = 1; attempt <= MaxAttempts; attempt++ {
		start = time.Now()
		status = s.Solve()
		p.log.Debug("solve attempt finished",
			zap.Int("attempt", attempt),
			zap.Stringer("status", status),
			zap.Duration("elapsed", time.Since(start)))

		if !status.Retryable() {
			return status
		}
		if attempt < MaxAttempts {
			// Int31 keeps the seed exactly representable as a float64
			// for solvers that store parameters as doubles.
			var seed = int64(p.rng.Int31())
			s.SetParameter(ParamRandomSeed, float64(seed))
			p.log.Warn("abnormal solve result, reseeding",
				zap.Int("attempt", attempt),
				zap.Int64("seed", seed))
		}
	}

	return status
}
