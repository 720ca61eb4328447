// Package ordering - identities, comparator contracts and sentinels.
package ordering

import "errors"

// Sentinel errors returned by comparator constructors.
var (
	// ErrNilIndex indicates that a nil *Index was passed to NewMilestone.
	ErrNilIndex = errors.New("ordering: milestone index is nil")

	// ErrNilSecondary indicates that no secondary comparison function was
	// passed to NewMilestone; the composite needs one to break rank ties.
	ErrNilSecondary = errors.New("ordering: secondary comparison is nil")

	// ErrNilBase indicates that a nil base comparator was passed to
	// NewFavourites; the decorator delegates every usage tie to its base.
	ErrNilBase = errors.New("ordering: base comparator is nil")
)

// ID is an opaque, stable catalog identity of a domain object (recipe, good,
// crafting entity). The catalog owns identities; this package only reads
// them.
type ID uint64

// Object is anything carrying a catalog identity.
type Object interface {
	// ObjectID returns the stable catalog identity of the object.
	ObjectID() ID
}

// Keyed constrains comparator operands: objects whose zero value marks
// "missing" (typically pointer types, zero = nil). comparable lets the
// comparators detect missing operands without reflection.
type Keyed interface {
	Object
	comparable
}

// Comparator is a pure binary relation over two values of one category:
// negative ⇒ x comes first, positive ⇒ y comes first, zero ⇒ tie.
//
// Implementations must be total and consistent — no two calls with the same
// pair may disagree.
type Comparator[T any] interface {
	Compare(x, y T) int
}

// CompareFunc adapts an ordinary comparison function to the Comparator
// interface, so ad-hoc orderings need no named type:
//
//	byCost := ordering.CompareFunc[*Good](func(a, b *Good) int {
//	    return cmp.Compare(a.Cost, b.Cost)
//	})
type CompareFunc[T any] func(x, y T) int

// Compare implements Comparator by calling f.
func (f CompareFunc[T]) Compare(x, y T) int { return f(x, y) }
