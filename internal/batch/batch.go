// Package batch compares flight identifier pairs read from CSV input.
package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cv/flt/flights"
	"github.com/jszwec/csvutil"
)

// ErrNoPairs is returned when the input holds no pairs to compare.
var ErrNoPairs = errors.New("no pairs in input")

// Pair is one row of batch input. The CSV header must name columns a and b;
// other columns are ignored.
type Pair struct {
	A string `csv:"a"`
	B string `csv:"b"`
}

// Summary counts the outcome of a batch.
type Summary struct {
	Total int
	Equal int
}

// ReadPairs decodes pairs from r.
func ReadPairs(r io.Reader) ([]Pair, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if errors.Is(err, io.EOF) {
		return nil, ErrNoPairs
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	dec.DisallowMissingColumns = true

	var pairs []Pair
	err = dec.Decode(&pairs)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding pairs: %w", err)
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}
	return pairs, nil
}

// ReadFile decodes pairs from the file at path, or from stdin when path is "-".
func ReadFile(path string) ([]Pair, error) {
	if path == "-" {
		return ReadPairs(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pairs file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ReadPairs(f)
}

// CompareAll explains every pair, in input order.
func CompareAll(pairs []Pair) []flights.Result {
	results := make([]flights.Result, len(pairs))
	for i, p := range pairs {
		results[i] = flights.Explain(p.A, p.B)
	}
	return results
}

// Summarize counts total and equal results.
func Summarize(results []flights.Result) Summary {
	s := Summary{Total: len(results)}
	for i := range results {
		if results[i].Equal {
			s.Equal++
		}
	}
	return s
}
