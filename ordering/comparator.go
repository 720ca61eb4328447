// Package ordering - the milestone-composite comparator.
package ordering

import "cmp"

// Milestone is the default composite ordering over one object category:
// milestone rank ascending first, the caller's secondary metric second.
// It is stateless beyond its Index and safe to share for reading.
type Milestone[T Keyed] struct {
	index     *Index
	secondary CompareFunc[T]
}

// NewMilestone builds the composite comparator from a rank index and a
// secondary comparison over two non-missing operands.
//
// Errors: ErrNilIndex, ErrNilSecondary.
func NewMilestone[T Keyed](ix *Index, secondary CompareFunc[T]) (*Milestone[T], error) {
	if ix == nil {
		return nil, ErrNilIndex
	}
	if secondary == nil {
		return nil, ErrNilSecondary
	}

	return &Milestone[T]{index: ix, secondary: secondary}, nil
}

// Compare orders x and y:
//  1. Missing (zero-valued) operands sort last; two missing operands tie.
//  2. Differing milestone ranks decide, ascending.
//  3. Equal ranks delegate to the secondary comparison.
//
// The result is a total order over any finite set of one category, provided
// the secondary comparison is itself a total order.
//
// Complexity: O(1) plus the secondary comparison.
func (m *Milestone[T]) Compare(x, y T) int {
	// Missing operands never reach the rank lookup or the secondary:
	// the secondary's contract only covers non-missing values.
	var zero T
	if x == zero {
		if y == zero {
			return 0
		}
		return 1
	}
	if y == zero {
		return -1
	}

	if c := cmp.Compare(m.index.Rank(x.ObjectID()), m.index.Rank(y.ObjectID())); c != 0 {
		return c
	}

	return m.secondary(x, y)
}
