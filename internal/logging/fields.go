// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldFiles      = "files"

	// Dump configuration fields.
	FieldRadix     = "radix"
	FieldSelect    = "select"
	FieldLineWidth = "line_width"
	FieldBreakOn   = "break_on"
	FieldAddress   = "address"
	FieldText      = "text"
	FieldColored   = "colored"

	// Statistics fields.
	FieldLines    = "lines"
	FieldBytes    = "bytes"
	FieldConsumed = "consumed"
	FieldElapsed  = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
