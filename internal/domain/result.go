package domain

// ValidationResult is the outcome of checking one comparison file
// against the reference file.
type ValidationResult struct {
	File            string
	TotalEntries    int
	EmptyValues     int
	SameValueAsMain int
	MissingEntries  int
	Errors          []string
	Warnings        []string
}

// Failed reports whether the file has missing or empty entries.
// Same-value duplicates alone never fail a file.
func (r ValidationResult) Failed() bool {
	return r.EmptyValues > 0 || r.MissingEntries > 0
}

// Healthy returns the number of keys that are present, non-empty and translated.
func (r ValidationResult) Healthy() int {
	return r.TotalEntries - r.MissingEntries - r.EmptyValues - r.SameValueAsMain
}

// RunSummary aggregates the results of one verification run.
type RunSummary struct {
	ReferenceFile string
	Results       []ValidationResult
}

// Passed reports whether no comparison file failed.
func (s RunSummary) Passed() bool {
	for _, r := range s.Results {
		if r.Failed() {
			return false
		}
	}
	return true
}

// FailedFiles lists the comparison files that failed, in run order.
func (s RunSummary) FailedFiles() []string {
	var out []string
	for _, r := range s.Results {
		if r.Failed() {
			out = append(out, r.File)
		}
	}
	return out
}
