package ordering_test

import (
	"cmp"

	"github.com/petebuffon/yafc/ordering"
)

// item is the minimal catalog object used across the ordering tests:
// an identity plus a cost metric for secondary comparisons.
type item struct {
	id   ordering.ID
	cost float64
}

// ObjectID implements ordering.Object.
func (it *item) ObjectID() ordering.ID { return it.id }

// byCost is the canonical secondary comparison used by the tests.
func byCost(a, b *item) int { return cmp.Compare(a.cost, b.cost) }

// testIndex builds a small rank index:
//
//	id 1 → value 1 (rank 0), id 2 → value 2 (rank 1), id 3 → value 8 (rank 7)
//
// with an all-ones locked mask, so ranks equal value-1 verbatim.
func testIndex() *ordering.Index {
	return ordering.NewIndex(map[ordering.ID]uint64{
		1: 1,
		2: 2,
		3: 8,
	}, ^uint64(0))
}
