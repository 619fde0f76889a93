package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/godump/pkg/config"
)

// wideLineWarning is the line width above which a warning is emitted.
const wideLineWarning = 4096

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the key of the invalid field (e.g., "line_width").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Err is the underlying error from pkg/config, if any.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error so errors.Is matches config sentinels.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration layer for errors and warnings.
// Unset fields are not checked.
func Validate(f *config.File) *ValidationResult {
	result := &ValidationResult{}
	if f == nil {
		return result
	}

	if f.Radix != nil {
		if _, err := config.ParseRadix(*f.Radix); err != nil {
			result.addError(KeyRadix, *f.Radix, err)
		}
	}

	if f.Select != nil {
		sel, err := config.ParseRange(*f.Select)
		if err != nil {
			result.addError(KeySelect, *f.Select, err)
		} else if start, stop, bounded := sel.Bounds(); bounded && start >= stop {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   KeySelect,
				Value:   *f.Select,
				Message: fmt.Sprintf("range %s selects no bytes", *f.Select),
			})
		}
	}

	if f.LineWidth != nil {
		switch width := *f.LineWidth; {
		case width < 1:
			result.addError(KeyLineWidth, width,
				fmt.Errorf("%w: %d (must be at least 1)", config.ErrInvalidLineWidth, width))
		case width > wideLineWarning:
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   KeyLineWidth,
				Value:   width,
				Message: fmt.Sprintf("line width %d is unusually large", width),
			})
		}
	}

	for i, v := range f.BreakOn {
		if v < 0 || v > 0xff {
			result.addError(fmt.Sprintf("%s[%d]", KeyBreakOn, i), v,
				fmt.Errorf("%w: %d (must be 0..255)", config.ErrInvalidBreakByte, v))
		}
	}

	if f.Color != nil && !f.Color.IsValid() {
		result.addError(KeyColor, *f.Color,
			fmt.Errorf("%w: %q (expected auto, always or never)", config.ErrInvalidColorMode, *f.Color))
	}

	return result
}

func (r *ValidationResult) addError(field string, value any, err error) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: err.Error(),
		Err:     err,
	})
}

// ValidateWithFile validates a layer and includes the file path in findings.
func ValidateWithFile(f *config.File, filePath string) *ValidationResult {
	result := Validate(f)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
