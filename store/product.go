package store

import (
	"slices"

	"github.com/fulldump/mds/money"
)

// Product is a read-only snapshot of a stored product.
type Product struct {
	Id    int64       `json:"id"`
	Price money.Money `json:"price"`
	Tags  []int64     `json:"tags"`
}

type product struct {
	id    int64
	price money.Money
	tags  []int64 // sorted, unique
}

func (p *product) snapshot() Product {
	return Product{
		Id:    p.id,
		Price: p.price,
		Tags:  slices.Clone(p.tags),
	}
}

// normalizeTags returns a sorted copy of tags without duplicates.
func normalizeTags(tags []int64) []int64 {
	result := append([]int64{}, tags...)
	slices.Sort(result)
	return slices.Compact(result)
}

func sumTags(tags []int64) (int64, bool) {
	var sum int64
	for _, tag := range tags {
		var ok bool
		sum, ok = money.AddInt64(sum, tag)
		if !ok {
			return sum, false
		}
	}
	return sum, true
}
