// Package driver runs a textual command stream against a product store.
//
// Input is a sequence of whitespace separated commands:
//
//	Insert <id> <price> <tag>* 0
//	Find <id>
//	Delete <id>
//	FindMinPrice <tag>
//	FindMaxPrice <tag>
//	FindPriceRange <tag> <low> <high>
//	PriceHike <low> <high> <rate>
//	RemoveNames <id> <tag>* 0
//	FindProductIdsInRange <low> <high>
//	End
package driver

import (
	"fmt"
	"io"
	"time"

	"github.com/fulldump/mds/money"
	"github.com/fulldump/mds/store"
)

type Result struct {
	Line    int    `json:"line"`
	Command string `json:"command"`
	Value   any    `json:"value"`
}

type Summary struct {
	Commands int    `json:"commands"`
	Checksum int64  `json:"checksum"`
	Elapsed  string `json:"elapsed"`
}

type Writer interface {
	Write(r *Result) error
	Summary(s *Summary) error
}

type Driver struct {
	Store  *store.Store
	Writer Writer

	commands int
	checksum int64
}

func New(s *store.Store, w Writer) *Driver {
	return &Driver{
		Store:  s,
		Writer: w,
	}
}

// Checksum accumulates every result: money adds its total cents, integers
// their value and id lists their length. It wraps on overflow.
func (d *Driver) Checksum() int64 {
	return d.checksum
}

// Run executes commands from r until the input ends or an End command is
// found. The summary is written only when every command succeeded.
func (d *Driver) Run(r io.Reader) error {

	t0 := time.Now()

	s, err := newScanner(r)
	if err != nil {
		return err
	}

	for !s.done() {
		name, _ := s.next()
		if name.text == "End" {
			break
		}

		value, err := d.execute(name.text, s)
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", name.line, name.text, err)
		}

		d.commands++
		d.accumulate(value)

		err = d.Writer.Write(&Result{
			Line:    name.line,
			Command: name.text,
			Value:   value,
		})
		if err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	return d.Writer.Summary(&Summary{
		Commands: d.commands,
		Checksum: d.checksum,
		Elapsed:  time.Since(t0).String(),
	})
}

func (d *Driver) execute(name string, s *scanner) (any, error) {

	switch name {
	case "Insert":
		id, err := s.int64()
		if err != nil {
			return nil, err
		}
		price, err := s.money()
		if err != nil {
			return nil, err
		}
		tags, err := s.list()
		if err != nil {
			return nil, err
		}
		if d.Store.Insert(id, price, tags) {
			return int64(1), nil
		}
		return int64(0), nil

	case "Find":
		id, err := s.int64()
		if err != nil {
			return nil, err
		}
		return d.Store.Find(id), nil

	case "Delete":
		id, err := s.int64()
		if err != nil {
			return nil, err
		}
		return d.Store.Delete(id)

	case "FindMinPrice":
		tag, err := s.int64()
		if err != nil {
			return nil, err
		}
		return d.Store.FindMinPrice(tag), nil

	case "FindMaxPrice":
		tag, err := s.int64()
		if err != nil {
			return nil, err
		}
		return d.Store.FindMaxPrice(tag), nil

	case "FindPriceRange":
		tag, err := s.int64()
		if err != nil {
			return nil, err
		}
		low, err := s.money()
		if err != nil {
			return nil, err
		}
		high, err := s.money()
		if err != nil {
			return nil, err
		}
		return int64(d.Store.FindPriceRange(tag, low, high)), nil

	case "PriceHike":
		low, err := s.int64()
		if err != nil {
			return nil, err
		}
		high, err := s.int64()
		if err != nil {
			return nil, err
		}
		rate, err := s.rate()
		if err != nil {
			return nil, err
		}
		return d.Store.PriceHike(low, high, rate)

	case "RemoveNames":
		id, err := s.int64()
		if err != nil {
			return nil, err
		}
		names, err := s.list()
		if err != nil {
			return nil, err
		}
		return d.Store.RemoveNames(id, names)

	case "FindProductIdsInRange":
		low, err := s.int64()
		if err != nil {
			return nil, err
		}
		high, err := s.int64()
		if err != nil {
			return nil, err
		}
		return d.Store.FindProductIdsInRange(low, high), nil
	}

	return nil, fmt.Errorf("unknown command")
}

func (d *Driver) accumulate(value any) {
	switch v := value.(type) {
	case money.Money:
		d.checksum += v.TotalCents()
	case int64:
		d.checksum += v
	case []int64:
		d.checksum += int64(len(v))
	}
}
