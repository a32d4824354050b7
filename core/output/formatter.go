// Package output provides output formatting interfaces.
// This package produces human and machine-readable reports of the
// economy aggregations.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"resource-economy/core/analysis"
	"resource-economy/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given summary
	Render(w io.Writer, summary *analysis.Summary) error
}

// FormatterRegistry manages formatter registration
type FormatterRegistry interface {
	// Register adds a formatter to the registry
	Register(formatter Formatter) error

	// GetFormatter returns a formatter for a format type
	GetFormatter(format Format) (Formatter, bool)

	// GetAll returns all registered formatters
	GetAll() []Formatter
}

// Registry is the default FormatterRegistry
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates a registry holding the built-in formatters
func NewRegistry(noColor bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(&CLIFormatter{NoColor: noColor})
	_ = r.Register(&JSONFormatter{Indent: true})
	_ = r.Register(&MarkdownFormatter{})
	return r
}

// Register implements FormatterRegistry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter for %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// GetFormatter implements FormatterRegistry
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// GetAll implements FormatterRegistry
func (r *Registry) GetAll() []Formatter {
	all := make([]Formatter, 0, len(r.formatters))
	for _, f := range r.formatters {
		all = append(all, f)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Format() < all[j].Format() })
	return all
}

// Formats lists the registered format names
func (r *Registry) Formats() []string {
	var names []string
	for _, f := range r.GetAll() {
		names = append(names, string(f.Format()))
	}
	return names
}

// Lookup returns the formatter for a format name
func (r *Registry) Lookup(name string) (Formatter, error) {
	f, ok := r.GetFormatter(Format(strings.ToLower(name)))
	if !ok {
		return nil, errors.Validation(fmt.Sprintf("unknown format %q (available: %s)",
			name, strings.Join(r.Formats(), ", ")))
	}
	return f, nil
}
