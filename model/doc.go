// Package model provides the data types shared by the measurement pipeline.
//
// The central type is [Record]: one processed translation document with its
// catalog metadata and the five size measurements taken from a single
// snapshot of its normalized body text. Records are created once by the
// extraction pipeline and never mutated afterwards.
//
// The five measurements are addressed uniformly through the [Axis]
// enumeration, which also fixes the column order of the rendered report:
//
//   - [UTF8] - 8-bit code units
//   - [UTF16] - 16-bit code units (surrogate pairs count as 2)
//   - [UTF32] - Unicode scalar values
//   - [Graphemes] - extended grapheme clusters
//   - [Width] - East-Asian-width-aware display columns
package model
