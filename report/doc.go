// Package report renders the comparison table from measured records and
// their per-axis summaries.
//
// Two renderers share the same row model: [WriteHTML] produces the
// color-coded HTML table, [WriteText] a plain terminal table. Body rows are
// ordered by ascending UTF-8 count; footer rows carry the Min, Median, Mean,
// outlier-damped Max and Max summaries.
//
// The color scale is part of the renderer contract: every count cell is
// compared against its axis median, taking hue 0 when the count exceeds the
// median and hue 120 otherwise, with saturation growing on a nonlinear curve
// that exaggerates small relative differences. Note that the hue direction
// comes from the magnitude ordering of the pair while the printed deviation
// percent comes from their arithmetic difference; the two can disagree at
// the boundary, and the renderer intentionally keeps both as computed.
package report
