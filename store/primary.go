package store

import (
	"github.com/google/btree"
)

// primaryIndex keeps products ordered by id.
type primaryIndex struct {
	Btree *btree.BTreeG[*product]
}

func newPrimaryIndex() *primaryIndex {
	return &primaryIndex{
		Btree: btree.NewG(32, func(a, b *product) bool {
			return a.id < b.id
		}),
	}
}

func (i *primaryIndex) get(id int64) (*product, bool) {
	return i.Btree.Get(&product{id: id})
}

func (i *primaryIndex) put(p *product) {
	i.Btree.ReplaceOrInsert(p)
}

func (i *primaryIndex) remove(id int64) {
	i.Btree.Delete(&product{id: id})
}

func (i *primaryIndex) len() int {
	return i.Btree.Len()
}

// ascendRange visits products with low <= id <= high in ascending order
// until f returns false.
func (i *primaryIndex) ascendRange(low, high int64, f func(p *product) bool) {
	if low > high {
		return
	}
	i.Btree.AscendGreaterOrEqual(&product{id: low}, func(p *product) bool {
		if p.id > high {
			return false
		}
		return f(p)
	})
}
