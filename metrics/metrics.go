// Package metrics measures the size of a normalized Unicode string under
// five models of "character".
package metrics

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/hsivonen/udhrlen/model"
)

// Measure computes the five size metrics for s. The computations are
// independent: each one reads s directly and none observes another's
// result. Any string is valid input.
func Measure(s string) model.Counts {
	return model.Counts{
		UTF8:      len(s),
		UTF16:     utf16Len(s),
		UTF32:     utf8.RuneCountInString(s),
		Graphemes: uniseg.GraphemeClusterCount(s),
		Width:     runewidth.StringWidth(s),
	}
}

// utf16Len counts 16-bit code units: one per BMP code point, two for the
// surrogate pair encoding a code point above U+FFFF.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
