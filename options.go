package udhrlen

// ReportOptions holds configuration for one report run.
type ReportOptions struct {
	// Review-stage allow-list; nil means catalog.DefaultStages.
	stages []string
}

// defaultOptions returns the default report options.
func defaultOptions() ReportOptions {
	return ReportOptions{
		stages: nil,
	}
}

// clone creates a deep copy of ReportOptions.
func (o ReportOptions) clone() ReportOptions {
	newOpts := ReportOptions{}
	if o.stages != nil {
		newOpts.stages = make([]string, len(o.stages))
		copy(newOpts.stages, o.stages)
	}
	return newOpts
}
