// Package yafc is the decision-support core of a production-chain planner:
// the deterministic machinery that sits between a linear-programming
// optimizer and an interactive UI and decides "which candidate wins by
// default", "how do we show this number", and "what do we do when the
// solver wobbles".
//
// 🚀 What is yafc?
//
//	A small, deterministic library that brings together:
//		• Milestone ordering: rank recipes, goods and crafters by unlock progress
//		• Composite comparators: milestone rank first, caller metric second
//		• Favourites bias: user choices progressively reshape future defaults
//		• Auto-selection: reduce any candidate set to a single best default
//		• Magnitude codec: format and re-parse amounts from femto- to tera-scale
//		• Solver retry: reseed-and-retry around numerically abnormal LP results
//
// ✨ Why choose yafc?
//
//   - Deterministic – fixed seeds, stable orderings, no time-based randomness
//   - Explicit state – comparators and retry policies own their state; no
//     hidden module-level singletons
//   - Pure Go core – the only heavy lifting (the LP solve itself) lives
//     behind a one-method interface
//   - Honest contracts – weak spots (empty-set reduction, abnormal solver
//     results) are documented, not papered over
//
// Under the hood, everything is organized under three subpackages:
//
//	magnitude/ — scaled-amount formatter and parser (µ/K/M/G/T buckets)
//	ordering/  — milestone ranks, comparators, favourites, pick-best reduction
//	solver/    — solve status taxonomy, retry policy, gonum simplex backend
//
// Quick sketch of the data flow:
//
//	candidates ──ordering.Reduce──▶ default choice ──user override──▶
//	    Favourites.RecordUse ──▶ future defaults shift
//
//	optimizer ──solver.RetryPolicy.Run──▶ status (reseed on abnormal)
//
//	computed amounts ──magnitude.Codec──▶ "1.5K", "2.5MW", "45%" ──▶ edits
//	    re-enter through magnitude.Codec.Parse
//
// The windowing toolkit, the game-data catalog and the recipe graph are
// external collaborators; this module never constructs them and only reads
// the identities and costs they publish.
package yafc
