package udhrlen

import "strings"

// Warning describes a non-fatal observation made while processing the
// corpus. Warnings never change the computed numbers.
type Warning struct {
	// Code is the file code of the document the warning concerns.
	Code string
	// Message describes the observation.
	Message string
}

// FormatWarnings joins warnings into a single printable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Code + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}
