package output

import (
	"encoding/json"
	"io"

	"resource-economy/core/analysis"
)

// JSONFormatter writes the summary as JSON. Prices are decimal strings.
type JSONFormatter struct {
	Indent bool
}

// Format implements Formatter
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render implements Formatter
func (f *JSONFormatter) Render(w io.Writer, summary *analysis.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(summary)
}
