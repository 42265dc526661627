// Package udhrlen generates a size comparison report over the Universal
// Declaration of Human Rights translation corpus published by unicode.org.
//
// Every translation that passes the corpus review-stage gate is measured
// under five notions of "character" (UTF-8 and UTF-16 code units, code
// points, extended grapheme clusters, display columns), and the results are
// rendered as a single table with per-metric medians, means, extremes and a
// deviation color scale.
//
// Basic usage:
//
//	warnings, err := udhrlen.Open("/path/to/udhr").HTML(os.Stdout)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", udhrlen.FormatWarnings(warnings))
//	}
//
// For finer-grained access the subpackages catalog, extract, metrics, stats
// and report are also available.
package udhrlen

// Open points a report at a UDHR corpus directory: the directory holding
// index.xml and the udhr_<code>.xml translation documents.
//
// Example:
//
//	warnings, err := udhrlen.Open("corpus").HTML(os.Stdout)
func Open(corpusRoot string) *Report {
	return &Report{
		corpusRoot: corpusRoot,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or
// tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
