package spdx

import "fmt"

// RegistryErrorType represents the type of registry error.
type RegistryErrorType int

const (
	// RegistryNotFound indicates the registry file was not found.
	RegistryNotFound RegistryErrorType = iota
	// RegistryInvalid indicates the registry document could not be parsed.
	RegistryInvalid
	// RegistryEntryInvalid indicates a license entry is missing a required field.
	RegistryEntryInvalid
	// SchemaWriteFailed indicates the enum schema artifact could not be written.
	SchemaWriteFailed
)

// RegistryError represents a fatal license-registry error.
// Registry errors are startup-time conditions: classification never
// produces one.
type RegistryError struct {
	// Type is the error type.
	Type RegistryErrorType
	// Message is the error message.
	Message string
	// Source is the registry file path or document name.
	Source string
	// Entry is the zero-based index of the offending license entry (-1 if not entry-specific).
	Entry int
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Entry >= 0 {
		if e.Cause != nil {
			return fmt.Sprintf("license registry error in %s [entry %d]: %s: %v", e.Source, e.Entry, e.Message, e.Cause)
		}
		return fmt.Sprintf("license registry error in %s [entry %d]: %s", e.Source, e.Entry, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("license registry error in %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("license registry error in %s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying cause error.
func (e *RegistryError) Unwrap() error {
	return e.Cause
}

// NewRegistryError creates a new RegistryError.
func NewRegistryError(typ RegistryErrorType, source, message string) *RegistryError {
	return &RegistryError{
		Type:    typ,
		Source:  source,
		Entry:   -1,
		Message: message,
	}
}

// NewRegistryErrorWithEntry creates a new RegistryError for a specific license entry.
func NewRegistryErrorWithEntry(typ RegistryErrorType, source string, entry int, message string) *RegistryError {
	return &RegistryError{
		Type:    typ,
		Source:  source,
		Entry:   entry,
		Message: message,
	}
}

// NewRegistryErrorWithCause creates a new RegistryError with a cause.
func NewRegistryErrorWithCause(typ RegistryErrorType, source, message string, cause error) *RegistryError {
	return &RegistryError{
		Type:    typ,
		Source:  source,
		Entry:   -1,
		Message: message,
		Cause:   cause,
	}
}
