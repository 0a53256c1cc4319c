package stats

import (
	"cmp"
	"errors"
	"slices"
)

// ErrNoData is returned by aggregates that are undefined on an empty collection
var ErrNoData = errors.New("no data")

// Count is one entry of a frequency table
type Count[T any] struct {
	Value T
	Count int
}

// Mode returns the most frequent value.
// When several values share the highest count the smallest one wins.
func Mode[T cmp.Ordered](values []T) (T, error) {
	return ModeFunc(values, cmp.Less[T])
}

// ModeFunc is Mode for values that are not cmp.Ordered; less breaks ties
func ModeFunc[T comparable](values []T, less func(a, b T) bool) (T, error) {
	var mode T
	if len(values) == 0 {
		return mode, ErrNoData
	}

	freq := make(map[T]int)
	for _, v := range values {
		freq[v]++
	}

	maxFreq := 0
	for v, f := range freq {
		if f > maxFreq || (f == maxFreq && less(v, mode)) {
			maxFreq = f
			mode = v
		}
	}
	return mode, nil
}

// ValueCounts returns the frequency of each distinct value, highest count first.
// Equal counts are ordered by value.
func ValueCounts[T cmp.Ordered](values []T) []Count[T] {
	freq := make(map[T]int)
	for _, v := range values {
		freq[v]++
	}

	counts := make([]Count[T], 0, len(freq))
	for v, f := range freq {
		counts = append(counts, Count[T]{Value: v, Count: f})
	}
	slices.SortFunc(counts, func(a, b Count[T]) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return counts
}

// Min returns the smallest value
func Min[T cmp.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrNoData
	}
	return slices.Min(values), nil
}

// Max returns the largest value
func Max[T cmp.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrNoData
	}
	return slices.Max(values), nil
}

// Summarize folds values into a Running state.
// An empty input yields ErrNoData; the sum of nothing is still reported as 0.
func Summarize(values []float64) (Running, error) {
	var r Running
	for _, v := range values {
		r.Add(v)
	}
	if r.Count == 0 {
		return r, ErrNoData
	}
	return r, nil
}
