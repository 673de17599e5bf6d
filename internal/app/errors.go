package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// BuildFailed indicates the site build failed.
	BuildFailed AppErrorType = iota
	// RegistryCheckFailed indicates the SPDX registry check failed.
	RegistryCheckFailed
	// ScaffoldFailed indicates page scaffolding failed.
	ScaffoldFailed
	// ValidationFailed indicates option validation failed.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewBuildError creates a build error.
func NewBuildError(message string, cause error) *AppError {
	return NewAppError(BuildFailed, message, cause)
}

// NewRegistryCheckError creates a registry check error.
func NewRegistryCheckError(message string, cause error) *AppError {
	return NewAppError(RegistryCheckFailed, message, cause)
}

// NewScaffoldError creates a scaffold error.
func NewScaffoldError(message string, cause error) *AppError {
	return NewAppError(ScaffoldFailed, message, cause)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}
