// Package ordering - the favourites decorator.
//
// Favourites lets user choices progressively influence future defaults:
// every explicit pick bumps the chosen object, and bumped objects outrank
// anything used less often. The base ordering only matters among objects
// with identical usage history.
package ordering

import "cmp"

// Favourites decorates a base comparator with a usage-frequency override.
// The decorator exclusively owns its bump table; the table grows only via
// RecordUse, never shrinks, and is not persisted here.
//
// Not synchronized: RecordUse is the single expected writer, Compare only
// reads. Callers sharing one instance across goroutines serialize access.
type Favourites[T Keyed] struct {
	base  Comparator[T]
	bumps map[ID]int
}

// NewFavourites wraps base with an empty bump table.
//
// Errors: ErrNilBase.
func NewFavourites[T Keyed](base Comparator[T]) (*Favourites[T], error) {
	if base == nil {
		return nil, ErrNilBase
	}

	return &Favourites[T]{base: base, bumps: make(map[ID]int)}, nil
}

// RecordUse bumps x's usage count by exactly 1. No upper bound, no decay.
// A missing (zero-valued) x is ignored.
//
// Complexity: O(1).
func (f *Favourites[T]) RecordUse(x T) {
	var zero T
	if x == zero {
		return
	}

	f.bumps[x.ObjectID()]++
}

// Uses returns x's current usage count (0 for never-used or missing x).
func (f *Favourites[T]) Uses(x T) int {
	var zero T
	if x == zero {
		return 0
	}

	return f.bumps[x.ObjectID()]
}

// Compare orders x and y by usage count descending — the object used more
// often comes first, overriding the base comparator entirely. Equal counts
// (including both zero) delegate to the base. Missing operands delegate to
// the base as well, which sorts them last.
//
// Complexity: O(1) plus the base comparison.
func (f *Favourites[T]) Compare(x, y T) int {
	var zero T
	if x == zero || y == zero {
		return f.base.Compare(x, y)
	}

	if c := cmp.Compare(f.bumps[y.ObjectID()], f.bumps[x.ObjectID()]); c != 0 {
		return c
	}

	return f.base.Compare(x, y)
}
