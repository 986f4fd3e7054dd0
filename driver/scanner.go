package driver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fulldump/mds/money"
)

type token struct {
	text string
	line int
}

// scanner splits a command stream into whitespace separated tokens. Lines
// starting with "#" or "//" are skipped.
type scanner struct {
	tokens []token
	pos    int
}

func newScanner(r io.Reader) (*scanner, error) {

	s := &scanner{}

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 64*1024), 16*1024*1024)
	line := 0
	for lines.Scan() {
		line++
		text := strings.TrimSpace(lines.Text())
		if strings.HasPrefix(text, "#") || strings.HasPrefix(text, "//") {
			continue
		}
		for _, field := range strings.Fields(text) {
			s.tokens = append(s.tokens, token{text: field, line: line})
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return s, nil
}

func (s *scanner) done() bool {
	return s.pos >= len(s.tokens)
}

func (s *scanner) next() (token, error) {
	if s.done() {
		return token{}, io.ErrUnexpectedEOF
	}
	t := s.tokens[s.pos]
	s.pos++
	return t, nil
}

func (s *scanner) int64() (int64, error) {
	t, err := s.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(t.text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("integer %q: %w", t.text, err)
	}
	return v, nil
}

func (s *scanner) money() (money.Money, error) {
	t, err := s.next()
	if err != nil {
		return money.Zero, err
	}
	m, err := money.Parse(t.text)
	if err != nil {
		return money.Zero, err
	}
	return m, nil
}

func (s *scanner) rate() (money.Rate, error) {
	t, err := s.next()
	if err != nil {
		return money.Rate{}, err
	}
	r, err := money.ParseRate(t.text)
	if err != nil {
		return money.Rate{}, err
	}
	return r, nil
}

// list reads integers up to a terminating 0.
func (s *scanner) list() ([]int64, error) {
	result := []int64{}
	for {
		v, err := s.int64()
		if err != nil {
			return nil, err
		}
		if v == 0 {
			return result, nil
		}
		result = append(result, v)
	}
}
