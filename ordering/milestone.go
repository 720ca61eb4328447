// Package ordering - milestone rank lookup.
//
// The surrounding application populates milestone values once during
// game-data load; from this package's point of view the mapping is frozen.
// Rank folds a value into a comparable key so that objects unlocked earlier
// carry smaller keys.
package ordering

// MaxRank is the rank of objects the catalog never milestoned; it sorts
// after every real rank.
const MaxRank = ^uint64(0)

// Index holds the frozen milestone value table and the locked-milestone
// bitmask. Read-only after construction; safe to share between goroutines.
type Index struct {
	values     map[ID]uint64
	lockedMask uint64
}

// NewIndex builds a rank index from the catalog's milestone values and the
// locked bitmask. The value map is copied; later catalog mutation does not
// leak into an existing Index.
//
// Complexity: O(len(values)).
func NewIndex(values map[ID]uint64, lockedMask uint64) *Index {
	var own = make(map[ID]uint64, len(values))
	var (
		id ID
		v  uint64
	)
	for id, v = range values {
		own[id] = v
	}

	return &Index{values: own, lockedMask: lockedMask}
}

// Rank returns the milestone order key of id: (value-1) & lockedMask,
// smaller = unlocked earlier = preferred. Ids absent from the table rank as
// MaxRank and therefore sort after all milestoned objects.
//
// Stable: repeated calls with the same id always agree.
//
// Complexity: O(1).
func (ix *Index) Rank(id ID) uint64 {
	var v, ok = ix.values[id]
	if !ok {
		return MaxRank
	}

	return (v - 1) & ix.lockedMask
}

// Contains reports whether the catalog assigned id a milestone value.
func (ix *Index) Contains(id ID) bool {
	var _, ok = ix.values[id]
	return ok
}

// Len returns the number of milestoned ids in the index.
func (ix *Index) Len() int { return len(ix.values) }
