// Package ordering decides which candidate wins by default.
//
// A production-chain planner constantly faces sets of interchangeable
// candidates: several recipes produce the same good, several crafters run
// the same recipe. Whenever the optimizer or the UI needs a single default,
// this package supplies the deterministic, milestone-aware partial order
// that breaks the tie — and the favourites bias that lets the user's own
// choices progressively reshape future defaults.
//
// Building blocks:
//
//   - Index — milestone rank lookup. The game-data catalog assigns each
//     unlocked object an unsigned milestone value; Rank folds it into a
//     comparable key, smaller = unlocked earlier = preferred. Objects the
//     catalog never milestoned rank as MaxRank and sort after everything.
//
//   - Comparator[T] — a total, consistent binary relation. Comparators are
//     first-class values: several may coexist for one object category
//     ("goods by cost", "goods by cost per fuel value").
//
//   - Milestone[T] — the composite default ordering: milestone rank first,
//     a caller-supplied secondary metric second. Missing (zero-valued)
//     operands always sort last.
//
//   - Favourites[T] — a decorator that owns its base comparator plus a
//     private usage-bump table. RecordUse(x) makes x outrank anything used
//     less often, overriding the base ordering entirely; milestone and cost
//     only matter among objects with identical usage history.
//
//   - Reduce / ReduceOrdered — single-pass pick-the-minimum reducers over a
//     candidate slice.
//
// ⚠ Weak contract, on purpose: Reduce over an empty slice returns the
// type's zero value rather than failing. Callers relying on "a candidate
// exists" must check emptiness themselves; the zero value means
// "no candidate", nothing more.
//
// Concurrency:
//
//   - Index is read-only after construction and safe to share.
//   - Milestone comparators are stateless beyond their Index and safe to
//     share for reading.
//   - Favourites is NOT synchronized: RecordUse is the single expected
//     writer, Compare only reads. Offload to one goroutine or serialize.
//
// Example:
//
//	ix := ordering.NewIndex(values, lockedMask)
//	byCost, _ := ordering.NewMilestone(ix, func(a, b *Recipe) int {
//	    return cmp.Compare(a.Cost, b.Cost)
//	})
//	fav, _ := ordering.NewFavourites[*Recipe](byCost)
//	best := ordering.Reduce(candidates, fav) // zero value ⇒ no candidate
//	fav.RecordUse(chosen)                    // user override feeds back
package ordering
