// Package rostererror defines the typed errors surfaced when a roster
// cannot be turned into provisioning tables. Every error here is terminal
// for the run: no partial output is ever produced.
package rostererror

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required roster headers absent from the
// input. Every missing column is listed, not just the first.
type MissingColumnsError struct {
	FilePath string
	Columns  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns in %s: %s",
		e.FilePath, strings.Join(e.Columns, ", "))
}

// EncodingError reports that no supported text encoding could decode a
// delimited input file.
type EncodingError struct {
	FilePath string
	Tried    []string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unrecognized encoding in %s: tried %s",
		e.FilePath, strings.Join(e.Tried, ", "))
}

// Violation is one failed fixed-width digit check: the 1-based row index
// and the offending value as read.
type Violation struct {
	Row   int
	Value string
}

// FieldValidationError reports every row whose value failed the
// fixed-width digit check for one field. Both identifier fields are
// checked independently, so a run can surface two of these at once.
type FieldValidationError struct {
	Field      string
	Width      int
	Violations []Violation
}

func (e *FieldValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = fmt.Sprintf("row %d: %q", v.Row, v.Value)
	}
	return fmt.Sprintf("%s must be exactly %d digits (%s)",
		e.Field, e.Width, strings.Join(parts, "; "))
}

// ParseError reports a low-level failure while reading the input file
// itself (malformed CSV, unreadable workbook).
type ParseError struct {
	FilePath string
	Stage    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to read %s (%s): %v", e.FilePath, e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
