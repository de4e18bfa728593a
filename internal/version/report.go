package version

import "fmt"

// Report accumulates the findings of one validation pass. Fix mode builds a
// fresh Report for the re-validation, so passes never share state.
type Report struct {
	Errors   []string
	Warnings []string
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// Errorf records a consistency error
func (r *Report) Errorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Warnf records a consistency warning
func (r *Report) Warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// OK reports whether the pass finished without errors. Warnings alone do
// not fail a run.
func (r *Report) OK() bool {
	return len(r.Errors) == 0
}
