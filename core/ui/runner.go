// Package ui - Live progress for chart generation runs
package ui

import (
	"fmt"
	"sync"
)

// RunReporter shows chart generation progress. It satisfies the engine's
// Observer interface.
type RunReporter struct {
	w        *Writer
	mu       sync.Mutex
	bar      *ProgressBar
	written  []string
	skipped  []string
	warnings []string
}

// NewRunReporter creates a reporter writing to w
func NewRunReporter(w *Writer) *RunReporter {
	return &RunReporter{w: w}
}

// Planned starts the progress bar for total artifacts
func (r *RunReporter) Planned(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bar = r.w.NewProgressBar(total, "Rendering")
	r.bar.Update(0)
}

// ArtifactWritten records a stored artifact
func (r *RunReporter) ArtifactWritten(name, location string, size int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.written = append(r.written, fmt.Sprintf("%s → %s (%s)", name, location, formatBytes(size)))
	if r.bar != nil {
		r.bar.Increment()
	}
}

// ChartSkipped records a chart left out for lack of data
func (r *RunReporter) ChartSkipped(name, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = append(r.skipped, fmt.Sprintf("%s: %s", name, reason))
	if r.bar != nil {
		r.bar.Increment()
	}
}

// Warning records a non-fatal data problem
func (r *RunReporter) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, msg)
}

// Finish closes the progress bar and lists what happened
func (r *RunReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.Done()
		r.bar = nil
	}

	for _, line := range r.written {
		r.w.Success("%s", line)
	}
	for _, line := range r.skipped {
		r.w.Info("skipped %s", line)
	}
	for _, line := range r.warnings {
		r.w.Warning("%s", line)
	}
}

// Counts returns the number of written and skipped artifacts and warnings
func (r *RunReporter) Counts() (written, skipped, warnings int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.written), len(r.skipped), len(r.warnings)
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
