// Package ordering - pick-the-minimum reduction.
package ordering

import "cmp"

// Reduce returns the element of items that precedes all others under c:
// a single pass keeping a running best, replaced whenever
// c.Compare(best, element) > 0.
//
// ⚠ Weak contract, kept deliberately: an empty items slice (or a nil
// comparator) returns the zero value of T instead of an error. The zero
// value means "no candidate" and nothing else — callers relying on a
// candidate existing must check emptiness beforehand.
//
// Complexity: O(len(items)) comparisons, zero allocations.
func Reduce[T any](items []T, c Comparator[T]) T {
	var best T
	if len(items) == 0 || c == nil {
		return best
	}

	best = items[0]
	var i int
	for i = 1; i < len(items); i++ {
		if c.Compare(best, items[i]) > 0 {
			best = items[i]
		}
	}

	return best
}

// ReduceOrdered is Reduce for types with a natural order: the comparator-
// omitted path, picking the minimum under cmp.Less. Same weak empty
// contract as Reduce.
//
// Complexity: O(len(items)), zero allocations.
func ReduceOrdered[T cmp.Ordered](items []T) T {
	var best T
	if len(items) == 0 {
		return best
	}

	best = items[0]
	var i int
	for i = 1; i < len(items); i++ {
		if cmp.Less(items[i], best) {
			best = items[i]
		}
	}

	return best
}
