package udhrlen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hsivonen/udhrlen/catalog"
	"github.com/hsivonen/udhrlen/extract"
	"github.com/hsivonen/udhrlen/metrics"
	"github.com/hsivonen/udhrlen/model"
	"github.com/hsivonen/udhrlen/report"
	"github.com/hsivonen/udhrlen/stats"
)

// ErrEmptyCorpus is returned when no catalog entry passes the inclusion
// gate. Statistics over zero documents are meaningless, so this is surfaced
// as a configuration error before any arithmetic runs.
var ErrEmptyCorpus = errors.New("udhrlen: no documents passed the inclusion gate")

// indexFilename is the catalog document inside the corpus root.
const indexFilename = "index.xml"

// Report provides a fluent interface for building one comparison report.
// Each configuration method returns a new Report instance, making a
// configured value safe to share and re-terminate.
//
// Documents are processed strictly one at a time; each file handle is
// closed before the next document opens. Any malformed document, missing
// file, or catalog inconsistency fails the whole run - a partially measured
// corpus would silently corrupt every statistic.
type Report struct {
	// Source
	corpusRoot string

	// Configuration
	options ReportOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Report with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (r *Report) clone() *Report {
	return &Report{
		corpusRoot: r.corpusRoot,
		options:    r.options.clone(),
		err:        r.err,
		warnings:   append([]Warning(nil), r.warnings...),
	}
}

// Stages overrides the review-stage allow-list used by the inclusion gate.
// The default admits stages 4 and 5.
//
// Example:
//
//	warnings, err := udhrlen.Open("corpus").Stages("5").HTML(os.Stdout)
func (r *Report) Stages(stages ...string) *Report {
	newR := r.clone()
	if len(stages) == 0 {
		newR.err = errors.New("udhrlen: at least one review stage required")
		return newR
	}
	newR.options.stages = append([]string(nil), stages...)
	return newR
}

// Records processes every gated document and returns one measured record
// per translation, in catalog order, plus any warnings gathered on the way.
func (r *Report) Records() ([]model.Record, []Warning, error) {
	if r.err != nil {
		return nil, r.warnings, r.err
	}

	stages := r.options.stages
	if stages == nil {
		stages = catalog.DefaultStages
	}

	entries, err := catalog.LoadFile(filepath.Join(r.corpusRoot, indexFilename), stages)
	if err != nil {
		return nil, r.warnings, err
	}
	if len(entries) == 0 {
		return nil, r.warnings, ErrEmptyCorpus
	}

	warnings := append([]Warning(nil), r.warnings...)
	records := make([]model.Record, 0, len(entries))
	for _, entry := range entries {
		if entry.Script == "" {
			warnings = append(warnings, Warning{
				Code:    entry.Code,
				Message: "entry has no script tag",
			})
		}

		body, err := extractFile(filepath.Join(r.corpusRoot, entry.Filename()))
		if err != nil {
			return nil, warnings, err
		}

		records = append(records, model.Record{
			Name:   entry.Name,
			Code:   entry.Code,
			Script: entry.Script,
			Counts: metrics.Measure(body),
		})
	}

	return records, warnings, nil
}

// Summaries processes the corpus and returns the per-axis aggregate
// statistics.
func (r *Report) Summaries() (stats.Summaries, []Warning, error) {
	records, warnings, err := r.Records()
	if err != nil {
		return stats.Summaries{}, warnings, err
	}
	summaries, err := stats.Summarize(records)
	return summaries, warnings, err
}

// HTML processes the corpus and writes the comparison table as HTML markup.
func (r *Report) HTML(w io.Writer) ([]Warning, error) {
	records, warnings, err := r.Records()
	if err != nil {
		return warnings, err
	}
	summaries, err := stats.Summarize(records)
	if err != nil {
		return warnings, err
	}
	return warnings, report.WriteHTML(w, records, summaries)
}

// Text processes the corpus and writes the comparison as a plain terminal
// table.
func (r *Report) Text(w io.Writer) ([]Warning, error) {
	records, warnings, err := r.Records()
	if err != nil {
		return warnings, err
	}
	summaries, err := stats.Summarize(records)
	if err != nil {
		return warnings, err
	}
	return warnings, report.WriteText(w, records, summaries)
}

// extractFile reads and extracts one document. The handle is closed before
// the next document opens.
func extractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("udhrlen: opening document: %w", err)
	}
	defer f.Close()

	body, err := extract.Body(f)
	if err != nil {
		return "", fmt.Errorf("udhrlen: %s: %w", filepath.Base(path), err)
	}
	return body, nil
}
