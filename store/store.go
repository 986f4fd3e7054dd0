// Package store implements an in-memory product index with a primary index
// by id and a secondary inverted index by description tag.
//
// A Store is not safe for concurrent use; callers that share one must
// serialize access.
package store

import (
	"fmt"
	"slices"

	"github.com/fulldump/mds/money"
)

var ErrOverflow = money.ErrOverflow

type Store struct {
	primary   *primaryIndex
	secondary *secondaryIndex
}

func New() *Store {
	return &Store{
		primary:   newPrimaryIndex(),
		secondary: newSecondaryIndex(),
	}
}

// reindex is the single update path for a stored product: stale postings go
// away, then tags and price are swapped, then fresh postings are added.
func (s *Store) reindex(p *product, tags []int64, price money.Money) {
	for _, tag := range p.tags {
		s.secondary.remove(tag, p.id, p.price)
	}
	p.tags = tags
	p.price = price
	for _, tag := range p.tags {
		s.secondary.add(tag, p.id, p.price)
	}
}

// Insert adds a new product or updates an existing one. An existing product
// keeps its tags when tags is empty; its price is always overwritten.
// Returns true when the product is new.
func (s *Store) Insert(id int64, price money.Money, tags []int64) bool {

	p, exists := s.primary.get(id)
	if !exists {
		p = &product{id: id}
		s.primary.put(p)
		s.reindex(p, normalizeTags(tags), price)
		return true
	}

	newTags := p.tags
	if len(tags) > 0 {
		newTags = normalizeTags(tags)
	}
	s.reindex(p, newTags, price)

	return false
}

// Delete removes a product and returns the sum of its tags, or 0 when id
// does not exist. If the sum does not fit in an int64 the product is still
// removed and ErrOverflow is returned with the wrapped sum.
func (s *Store) Delete(id int64) (int64, error) {

	p, exists := s.primary.get(id)
	if !exists {
		return 0, nil
	}

	sum, ok := sumTags(p.tags)

	s.reindex(p, nil, p.price)
	s.primary.remove(id)

	if !ok {
		return sum, fmt.Errorf("delete %d: sum of tags: %w", id, ErrOverflow)
	}

	return sum, nil
}

// RemoveNames removes names from the tags of product id and returns the sum
// of the tags actually removed. Both the product and the tag index lose
// them.
func (s *Store) RemoveNames(id int64, names []int64) (int64, error) {

	p, exists := s.primary.get(id)
	if !exists {
		return 0, nil
	}

	names = normalizeTags(names)

	keep := make([]int64, 0, len(p.tags))
	removed := []int64{}
	for _, tag := range p.tags {
		if _, found := slices.BinarySearch(names, tag); found {
			removed = append(removed, tag)
			continue
		}
		keep = append(keep, tag)
	}

	if len(removed) == 0 {
		return 0, nil
	}

	sum, ok := sumTags(removed)

	s.reindex(p, keep, p.price)

	if !ok {
		return sum, fmt.Errorf("remove names from %d: sum of tags: %w", id, ErrOverflow)
	}

	return sum, nil
}

// PriceHike raises by rate the price of every product with low <= id <= high
// and returns the sum of the increases. Fractional pennies are discarded per
// product. Nothing changes when any amount overflows.
func (s *Store) PriceHike(low, high int64, rate money.Rate) (money.Money, error) {

	type update struct {
		p     *product
		price money.Money
	}

	updates := []update{}
	total := money.Zero
	var err error

	s.primary.ascendRange(low, high, func(p *product) bool {
		var hike int64
		hike, err = rate.Apply(p.price.TotalCents())
		if err != nil {
			err = fmt.Errorf("price hike %d: %w", p.id, err)
			return false
		}
		increase := money.FromCents(hike)

		var price money.Money
		price, err = p.price.Add(increase)
		if err != nil {
			err = fmt.Errorf("price hike %d: %w", p.id, err)
			return false
		}

		total, err = total.Add(increase)
		if err != nil {
			err = fmt.Errorf("price hike total: %w", err)
			return false
		}

		updates = append(updates, update{p: p, price: price})
		return true
	})
	if err != nil {
		return money.Zero, err
	}

	for _, u := range updates {
		s.reindex(u.p, u.p.tags, u.price)
	}

	return total, nil
}

// Find returns the price of product id, or zero when it does not exist.
func (s *Store) Find(id int64) money.Money {
	p, exists := s.primary.get(id)
	if !exists {
		return money.Zero
	}
	return p.price
}

// FindMinPrice returns the lowest price among products tagged with tag, or
// zero when there is none.
func (s *Store) FindMinPrice(tag int64) money.Money {
	price, _ := s.secondary.min(tag)
	return price
}

// FindMaxPrice returns the highest price among products tagged with tag, or
// zero when there is none.
func (s *Store) FindMaxPrice(tag int64) money.Money {
	price, _ := s.secondary.max(tag)
	return price
}

// FindPriceRange counts the products tagged with tag whose price is within
// [low, high].
func (s *Store) FindPriceRange(tag int64, low, high money.Money) int {
	return s.secondary.countRange(tag, low, high)
}

// FindProductIdsInRange returns the ids within [low, high] in ascending order.
func (s *Store) FindProductIdsInRange(low, high int64) []int64 {
	ids := []int64{}
	s.primary.ascendRange(low, high, func(p *product) bool {
		ids = append(ids, p.id)
		return true
	})
	return ids
}

func (s *Store) Len() int {
	return s.primary.len()
}

// Get returns a copy of product id.
func (s *Store) Get(id int64) (Product, bool) {
	p, exists := s.primary.get(id)
	if !exists {
		return Product{}, false
	}
	return p.snapshot(), true
}

// Tags returns the sorted tags of product id, nil when it does not exist.
func (s *Store) Tags(id int64) []int64 {
	p, exists := s.primary.get(id)
	if !exists {
		return nil
	}
	return slices.Clone(p.tags)
}

// TagIds returns the ids of the products tagged with tag in ascending order.
func (s *Store) TagIds(tag int64) []int64 {
	return s.secondary.ids(tag)
}

// Traverse walks products with low <= id <= high in ascending order until f
// returns false.
func (s *Store) Traverse(low, high int64, f func(p Product) bool) {
	s.primary.ascendRange(low, high, func(p *product) bool {
		return f(p.snapshot())
	})
}
