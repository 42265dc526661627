package model

// Axis identifies one of the five size metrics measured for every document.
type Axis int

const (
	// UTF8 counts 8-bit code units.
	UTF8 Axis = iota
	// UTF16 counts 16-bit code units; astral code points take two.
	UTF16
	// UTF32 counts Unicode scalar values.
	UTF32
	// Graphemes counts extended grapheme clusters.
	Graphemes
	// Width counts East-Asian-width-aware display columns.
	Width
)

// Axes lists every metric axis in report column order.
var Axes = [...]Axis{UTF8, UTF16, UTF32, Graphemes, Width}

// String returns the column heading used for the axis.
func (a Axis) String() string {
	switch a {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	case Graphemes:
		return "EGC"
	case Width:
		return "EAW"
	default:
		return "Unknown"
	}
}

// Counts holds the five size measurements of one normalized text snapshot.
// All five fields must come from the same snapshot; mixing measurements of
// different texts in one Counts value makes the report meaningless.
type Counts struct {
	UTF8      int
	UTF16     int
	UTF32     int
	Graphemes int
	Width     int
}

// Get returns the count for the given axis.
func (c Counts) Get(a Axis) int {
	switch a {
	case UTF8:
		return c.UTF8
	case UTF16:
		return c.UTF16
	case UTF32:
		return c.UTF32
	case Graphemes:
		return c.Graphemes
	case Width:
		return c.Width
	default:
		return 0
	}
}

// Record is one processed document: catalog metadata plus the measurements
// of its extracted body text. A Record is immutable once created.
type Record struct {
	// Name is the display name from the catalog, NFC-normalized.
	Name string
	// Code is the corpus file code. Empty for synthetic summary rows.
	Code string
	// Script is the ISO 15924 script tag. May be empty.
	Script string
	// Counts holds the five size measurements.
	Counts Counts
}
