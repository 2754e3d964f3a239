package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic is one structural problem found while expanding a case
// list. It implements error; expansion is fail-fast, so the first
// diagnostic raised aborts the whole batch.
type Diagnostic struct {
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Template is the name template being expanded (if any).
	Template string
	// RecordIndex is the position of the offending record in the input
	// list, or -1 when the problem is not tied to one record.
	RecordIndex int
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// New creates a diagnostic with the given code and formatted message.
func New(code, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:        code,
		Message:     fmt.Sprintf(format, args...),
		RecordIndex: -1,
	}
}

// WithTemplate attaches the name template being expanded.
func (d *Diagnostic) WithTemplate(template string) *Diagnostic {
	d.Template = template
	return d
}

// WithRecord attaches the offending record's position in the input list.
func (d *Diagnostic) WithRecord(index int) *Diagnostic {
	d.RecordIndex = index
	return d
}

// WithSuggestions attaches potential fixes.
func (d *Diagnostic) WithSuggestions(suggestions ...string) *Diagnostic {
	d.Suggestions = append(d.Suggestions, suggestions...)
	return d
}

// Error returns the formatted diagnostic string.
func (d *Diagnostic) Error() string {
	var b strings.Builder

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	if d.RecordIndex >= 0 {
		fmt.Fprintf(&b, "record %d: ", d.RecordIndex)
	}

	b.WriteString(d.Message)

	if d.Template != "" {
		fmt.Fprintf(&b, " (template: %q)", d.Template)
	}

	for _, s := range d.Suggestions {
		b.WriteString("\n  ")
		b.WriteString(s)
	}

	return b.String()
}

// CodeOf returns the diagnostic code carried by err, or "" when err is
// not a Diagnostic.
func CodeOf(err error) string {
	// Diagnostics are never wrapped inside the core.
	if d, ok := err.(*Diagnostic); ok {
		return d.Code
	}

	return ""
}
