// Package errors provides a lightweight structured error type (CratedocError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a cratedoc error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Build and processing errors
	CategoryTool       ErrorCategory = "tool"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// CratedocError is a structured error with category, severity, and context
type CratedocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CratedocError
type ContextFields map[string]any

// Error implements the error interface
func (e *CratedocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *CratedocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *CratedocError) WithContext(key string, value any) *CratedocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CratedocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *CratedocError {
	return &CratedocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CratedocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CratedocError {
	return &CratedocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}
