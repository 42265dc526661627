// Package stats derives per-axis summary statistics from a set of document
// records.
package stats

import (
	"errors"
	"sort"

	"github.com/hsivonen/udhrlen/model"
)

// ErrNoRecords is returned when a summary is requested over zero records.
// Statistics over an empty set are meaningless; the corpus selection is
// misconfigured.
var ErrNoRecords = errors.New("stats: no records to summarize")

// Summary holds the aggregate statistics of one metric axis.
type Summary struct {
	// Median is the upper median: the value at index n/2 of the sorted
	// sequence, not an interpolated midpoint.
	Median int
	// Mean is the integer-truncating average. Switching to floating-point
	// averaging would change rendered output and must not happen silently.
	Mean int
	// Min is the smallest value.
	Min int
	// Max is the largest value.
	Max int
	// MaxExcl is the largest value after dropping the single top extreme,
	// so one outsized document cannot dominate the color scale. Equals Max
	// when only one record exists.
	MaxExcl int
}

// Summaries holds one Summary per metric axis, indexed by model.Axis.
type Summaries [len(model.Axes)]Summary

// Get returns the summary for the given axis.
func (s Summaries) Get(a model.Axis) Summary {
	return s[a]
}

// Summarize derives the per-axis summaries from records. The record slice is
// never reordered; each axis sorts its own copy of the values, since a
// record's rank differs from axis to axis and the caller's per-document
// association must stay intact for rendering.
func Summarize(records []model.Record) (Summaries, error) {
	var out Summaries
	if len(records) == 0 {
		return out, ErrNoRecords
	}

	for _, axis := range model.Axes {
		values := make([]int, len(records))
		total := 0
		for i, rec := range records {
			v := rec.Counts.Get(axis)
			values[i] = v
			total += v
		}
		sort.Ints(values)

		s := Summary{
			Median: values[len(values)/2],
			Mean:   total / len(values),
			Min:    values[0],
			Max:    values[len(values)-1],
		}
		s.MaxExcl = s.Max
		if len(values) > 1 {
			s.MaxExcl = values[len(values)-2]
		}
		out[axis] = s
	}

	return out, nil
}
