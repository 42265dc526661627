// Package catalog parses the UDHR corpus index and decides which
// translations a report covers.
package catalog

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
)

// Catalog errors.
var (
	ErrMissingName = errors.New("catalog: included entry has no name")
	ErrMissingCode = errors.New("catalog: included entry has no file code")
)

// DefaultStages is the inclusion gate used when the caller does not override
// it: only translations whose review stage reached 4 or 5 are complete
// enough to compare.
var DefaultStages = []string{"4", "5"}

// Entry describes one translation admitted by the stage gate.
type Entry struct {
	// Name is the display name, NFC-normalized.
	Name string
	// Code is the file code; the document lives in udhr_<code>.xml.
	Code string
	// Script is the ISO 15924 script tag. May be empty.
	Script string
	// Stage is the review-stage marker that admitted the entry.
	Stage string
}

// Filename returns the corpus-relative document filename for the entry.
func (e Entry) Filename() string {
	return "udhr_" + e.Code + ".xml"
}

// LoadFile opens and parses the index document at path. See Load.
func LoadFile(path string, stages []string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening index: %w", err)
	}
	defer f.Close()
	return Load(f, stages)
}

// Load parses the corpus index and returns the entries that pass the stage
// gate, in index order. stages is the allow-list of review-stage markers; an
// entry carrying any other marker, or none, is excluded. Every included
// entry must carry a non-empty name and file code.
func Load(r io.Reader, stages []string) ([]Entry, error) {
	decoder := xml.NewDecoder(r)
	var entries []Entry

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: parsing index at offset %d: %w", decoder.InputOffset(), err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "udhr" {
			continue
		}

		var entry Entry
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "n":
				entry.Name = norm.NFC.String(attr.Value)
			case "f":
				entry.Code = attr.Value
			case "iso15924":
				entry.Script = attr.Value
			case "stage":
				entry.Stage = attr.Value
			}
		}
		if !included(entry.Stage, stages) {
			continue
		}
		if entry.Name == "" {
			return nil, ErrMissingName
		}
		if entry.Code == "" {
			return nil, ErrMissingCode
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func included(stage string, stages []string) bool {
	for _, s := range stages {
		if stage == s {
			return true
		}
	}
	return false
}
