package stats

import (
	"errors"
	"testing"

	"github.com/hsivonen/udhrlen/model"
)

// uniformRecord builds a record with the same value on every axis.
func uniformRecord(v int) model.Record {
	return model.Record{
		Counts: model.Counts{UTF8: v, UTF16: v, UTF32: v, Graphemes: v, Width: v},
	}
}

// TestSummarizeThreeRecords tests the canonical 10/20/30 scenario on every
// axis.
func TestSummarizeThreeRecords(t *testing.T) {
	records := []model.Record{uniformRecord(30), uniformRecord(10), uniformRecord(20)}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	for _, axis := range model.Axes {
		s := summaries.Get(axis)
		if s.Median != 20 {
			t.Errorf("%s: expected median 20, got %d", axis, s.Median)
		}
		if s.Mean != 20 {
			t.Errorf("%s: expected mean 20, got %d", axis, s.Mean)
		}
		if s.Min != 10 {
			t.Errorf("%s: expected min 10, got %d", axis, s.Min)
		}
		if s.Max != 30 {
			t.Errorf("%s: expected max 30, got %d", axis, s.Max)
		}
		if s.MaxExcl != 20 {
			t.Errorf("%s: expected max-excluding-outlier 20, got %d", axis, s.MaxExcl)
		}
	}
}

// TestSummarizeEmpty tests that an empty record set is an explicit error.
func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("expected ErrNoRecords, got %v", err)
	}
}

// TestSummarizeSingleRecord tests that one record yields that record's
// value for every statistic.
func TestSummarizeSingleRecord(t *testing.T) {
	summaries, err := Summarize([]model.Record{uniformRecord(7)})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	s := summaries.Get(model.UTF8)
	if s.Median != 7 || s.Mean != 7 || s.Min != 7 || s.Max != 7 || s.MaxExcl != 7 {
		t.Errorf("expected all statistics 7, got %+v", s)
	}
}

// TestSummarizeUpperMedian tests that an even-sized set uses the upper
// median, not an interpolated midpoint.
func TestSummarizeUpperMedian(t *testing.T) {
	records := []model.Record{
		uniformRecord(1), uniformRecord(2), uniformRecord(3), uniformRecord(4),
	}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if got := summaries.Get(model.Graphemes).Median; got != 3 {
		t.Errorf("expected upper median 3, got %d", got)
	}
}

// TestSummarizeTruncatingMean tests that the mean truncates rather than
// rounds.
func TestSummarizeTruncatingMean(t *testing.T) {
	records := []model.Record{uniformRecord(1), uniformRecord(2)}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if got := summaries.Get(model.UTF16).Mean; got != 1 {
		t.Errorf("expected truncated mean 1, got %d", got)
	}
}

// TestSummarizeMaxExclDuplicateTop tests that a duplicated maximum keeps
// the outlier-damped maximum equal to the maximum.
func TestSummarizeMaxExclDuplicateTop(t *testing.T) {
	records := []model.Record{uniformRecord(5), uniformRecord(5), uniformRecord(1)}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	s := summaries.Get(model.Width)
	if s.Max != 5 || s.MaxExcl != 5 {
		t.Errorf("expected max 5 and max-excluding-outlier 5, got %+v", s)
	}
}

// TestSummarizeIndependentAxes tests that each axis sorts independently:
// a record's rank on one axis says nothing about its rank on another.
func TestSummarizeIndependentAxes(t *testing.T) {
	records := []model.Record{
		{Counts: model.Counts{UTF8: 1, UTF16: 1, UTF32: 1, Graphemes: 1, Width: 9}},
		{Counts: model.Counts{UTF8: 2, UTF16: 2, UTF32: 2, Graphemes: 2, Width: 8}},
		{Counts: model.Counts{UTF8: 3, UTF16: 3, UTF32: 3, Graphemes: 3, Width: 7}},
	}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if got := summaries.Get(model.UTF8).Median; got != 2 {
		t.Errorf("expected UTF-8 median 2, got %d", got)
	}
	if got := summaries.Get(model.Width).Median; got != 8 {
		t.Errorf("expected width median 8, got %d", got)
	}
	if got := summaries.Get(model.Width).Min; got != 7 {
		t.Errorf("expected width min 7, got %d", got)
	}
	if got := summaries.Get(model.Width).MaxExcl; got != 8 {
		t.Errorf("expected width max-excluding-outlier 8, got %d", got)
	}

	// The caller's slice must keep its original order.
	if records[0].Counts.UTF8 != 1 || records[2].Counts.Width != 7 {
		t.Error("Summarize reordered the caller's records")
	}
}

// TestSummarizeOrderingInvariant tests min <= median <= max and
// maxExcl <= max over an arbitrary set.
func TestSummarizeOrderingInvariant(t *testing.T) {
	records := []model.Record{
		uniformRecord(42), uniformRecord(7), uniformRecord(19),
		uniformRecord(23), uniformRecord(7), uniformRecord(100),
	}

	summaries, err := Summarize(records)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	for _, axis := range model.Axes {
		s := summaries.Get(axis)
		if s.Min > s.Median || s.Median > s.Max {
			t.Errorf("%s: ordering violated: %+v", axis, s)
		}
		if s.MaxExcl > s.Max {
			t.Errorf("%s: max-excluding-outlier above max: %+v", axis, s)
		}
	}

	// Two distinct top values: the damped maximum must be strictly below.
	s := summaries.Get(model.UTF8)
	if s.MaxExcl >= s.Max {
		t.Errorf("expected max-excluding-outlier < max, got %+v", s)
	}
}
