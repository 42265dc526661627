// Package extract pulls the measurable body text out of a UDHR translation
// document.
package extract

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MalformedError reports a document whose structure cannot be trusted for
// measurement: an unparseable token stream or inconsistent exclusion-region
// nesting. Extraction never returns partial text; a partially excluded body
// would silently corrupt every downstream statistic.
type MalformedError struct {
	// Offset is the byte offset reported by the decoder.
	Offset int64
	// Reason describes the inconsistency when Err is nil.
	Reason string
	// Err is the underlying decoder error, if any.
	Err error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract: malformed document at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("extract: malformed document at offset %d: %s", e.Offset, e.Reason)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// region identifies an excludable span of the document.
type region int

const (
	regionPreamble region = iota
	regionNote
)

func (r region) String() string {
	if r == regionPreamble {
		return "preamble"
	}
	return "note"
}

// regionFor maps an element's local name to its exclusion region.
func regionFor(name string) (region, bool) {
	switch name {
	case "preamble":
		return regionPreamble, true
	case "note":
		return regionNote, true
	}
	return 0, false
}

// state tracks which exclusion regions are currently open. A region never
// nests within itself in a well-formed document, so entering an open region
// or leaving a closed one is an illegal transition.
type state struct {
	open [2]bool
}

func (s *state) enter(r region) error {
	if s.open[r] {
		return fmt.Errorf("%s region opened twice", r)
	}
	s.open[r] = true
	return nil
}

func (s *state) leave(r region) error {
	if !s.open[r] {
		return fmt.Errorf("%s region closed while not open", r)
	}
	s.open[r] = false
	return nil
}

func (s *state) excluding() bool {
	return s.open[regionPreamble] || s.open[regionNote]
}

// Body reads one translation document and returns its body text normalized
// to NFC. Text inside <preamble> or <note> elements is excluded, as is any
// fragment consisting entirely of ASCII whitespace. A document with an
// unparseable token stream or inconsistent region nesting yields a
// *MalformedError.
func Body(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var accu strings.Builder
	var st state

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", &MalformedError{Offset: decoder.InputOffset(), Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			if reg, ok := regionFor(t.Name.Local); ok {
				if err := st.enter(reg); err != nil {
					return "", &MalformedError{Offset: decoder.InputOffset(), Reason: err.Error()}
				}
			}
		case xml.EndElement:
			if reg, ok := regionFor(t.Name.Local); ok {
				if err := st.leave(reg); err != nil {
					return "", &MalformedError{Offset: decoder.InputOffset(), Reason: err.Error()}
				}
			}
		case xml.CharData:
			if st.excluding() || asciiSpace(t) {
				continue
			}
			accu.Write(t)
		}
	}

	return norm.NFC.String(accu.String()), nil
}

// asciiSpace reports whether every byte of b is ASCII whitespace
// (space, tab, line feed, form feed, carriage return).
func asciiSpace(b []byte) bool {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}
