package store

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/btree"

	"github.com/fulldump/mds/money"
	"github.com/fulldump/mds/utils"
)

// secondaryIndex is the inverted index tag -> products. Empty postings are
// dropped so a tag without products has no entry.
type secondaryIndex struct {
	postings map[int64]*posting
}

// posting holds the products of one tag twice: as an id set and ordered by
// price, so min, max and price ranges do not scan every product of the tag.
type posting struct {
	ids    *roaring64.Bitmap
	prices *btree.BTreeG[priceKey]
}

type priceKey struct {
	price money.Money
	id    int64
}

func lessPriceKey(a, b priceKey) bool {
	if c := a.price.Compare(b.price); c != 0 {
		return c < 0
	}
	return a.id < b.id
}

// idKey maps signed ids to bitmap keys preserving their order.
func idKey(id int64) uint64 {
	return uint64(id) ^ (1 << 63)
}

func keyId(key uint64) int64 {
	return int64(key ^ (1 << 63))
}

func newSecondaryIndex() *secondaryIndex {
	return &secondaryIndex{
		postings: map[int64]*posting{},
	}
}

func (s *secondaryIndex) add(tag, id int64, price money.Money) {
	p, exists := s.postings[tag]
	if !exists {
		p = &posting{
			ids:    roaring64.New(),
			prices: btree.NewG(16, lessPriceKey),
		}
		s.postings[tag] = p
	}
	p.ids.Add(idKey(id))
	p.prices.ReplaceOrInsert(priceKey{price: price, id: id})
}

func (s *secondaryIndex) remove(tag, id int64, price money.Money) {
	p, exists := s.postings[tag]
	if !exists {
		return
	}
	p.ids.Remove(idKey(id))
	p.prices.Delete(priceKey{price: price, id: id})
	if p.ids.IsEmpty() {
		delete(s.postings, tag)
	}
}

func (s *secondaryIndex) min(tag int64) (money.Money, bool) {
	p, exists := s.postings[tag]
	if !exists {
		return money.Zero, false
	}
	k, ok := p.prices.Min()
	return k.price, ok
}

func (s *secondaryIndex) max(tag int64) (money.Money, bool) {
	p, exists := s.postings[tag]
	if !exists {
		return money.Zero, false
	}
	k, ok := p.prices.Max()
	return k.price, ok
}

func (s *secondaryIndex) countRange(tag int64, low, high money.Money) int {
	p, exists := s.postings[tag]
	if !exists || high.Less(low) {
		return 0
	}
	count := 0
	p.prices.AscendGreaterOrEqual(priceKey{price: low, id: math.MinInt64}, func(k priceKey) bool {
		if high.Less(k.price) {
			return false
		}
		count++
		return true
	})
	return count
}

// ids returns the ids carrying tag in ascending order.
func (s *secondaryIndex) ids(tag int64) []int64 {
	result := []int64{}
	p, exists := s.postings[tag]
	if !exists {
		return result
	}
	it := p.ids.Iterator()
	for it.HasNext() {
		result = append(result, keyId(it.Next()))
	}
	return result
}

// tags returns the indexed tags in ascending order.
func (s *secondaryIndex) tags() []int64 {
	return utils.GetKeys(s.postings)
}
