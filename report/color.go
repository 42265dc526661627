package report

import "math"

// Colorize maps a (baseline, value) pair to the HSL hue and saturation of a
// comparison cell. Values above the baseline take hue 0, values at or below
// it hue 120. Saturation follows (1-ratio)^0.75 scaled to a percentage,
// where ratio is the smaller of the pair divided by the larger; the curve
// exaggerates small relative differences and compresses large ones. Equal
// values yield zero saturation.
func Colorize(baseline, value int) (hue int, saturation float64) {
	var factor float64
	if baseline < value {
		hue = 0
		factor = float64(baseline) / float64(value)
	} else {
		hue = 120
		factor = float64(value) / float64(baseline)
	}
	return hue, math.Pow(1-factor, 0.75) * 100
}

// DeviationPercent returns how far value sits from median as a percentage of
// the median: negative below it, positive above it, exactly zero at it.
func DeviationPercent(value, median int) float64 {
	return (float64(value) - float64(median)) / float64(median) * 100
}
