package catalog

import (
	"fmt"
	"strings"
)

// CatalogueErrorType represents the type of catalogue error.
type CatalogueErrorType int

const (
	// CatalogueNotFound indicates the catalogue file was not found.
	CatalogueNotFound CatalogueErrorType = iota
	// CatalogueInvalid indicates the catalogue document could not be parsed.
	CatalogueInvalid
	// UnknownNodeType indicates a node carries an unrecognized type string.
	UnknownNodeType
	// MissingParent indicates a reference node has no parent to derive its ID from.
	MissingParent
	// MissingField indicates a node lacks a field required for ID derivation.
	MissingField
	// EmptyIdentifier indicates a derived ID sanitized down to nothing.
	EmptyIdentifier
)

// CatalogueError represents a fatal catalogue error.
// Normalization errors abort the whole pass; no partially normalized
// tree is valid.
type CatalogueError struct {
	// Type is the error type.
	Type CatalogueErrorType
	// Message is the error message.
	Message string
	// Source is the catalogue file path or document name (load errors).
	Source string
	// NodeType is the offending node's type string (normalization errors).
	NodeType string
	// Path is the breadcrumb of node identifiers from the root to the
	// offending node.
	Path []string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *CatalogueError) Error() string {
	var b strings.Builder
	b.WriteString("catalogue error")
	if e.Source != "" {
		fmt.Fprintf(&b, " in %s", e.Source)
	}
	if len(e.Path) > 0 {
		fmt.Fprintf(&b, " at %s", strings.Join(e.Path, " > "))
	}
	if e.NodeType != "" {
		fmt.Fprintf(&b, " [type: %s]", e.NodeType)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause error.
func (e *CatalogueError) Unwrap() error {
	return e.Cause
}

// NewCatalogueError creates a new CatalogueError for a load failure.
func NewCatalogueError(typ CatalogueErrorType, source, message string) *CatalogueError {
	return &CatalogueError{
		Type:    typ,
		Source:  source,
		Message: message,
	}
}

// NewCatalogueErrorWithCause creates a new CatalogueError with a cause.
func NewCatalogueErrorWithCause(typ CatalogueErrorType, source, message string, cause error) *CatalogueError {
	return &CatalogueError{
		Type:    typ,
		Source:  source,
		Message: message,
		Cause:   cause,
	}
}

// newNormalizeError creates a CatalogueError for a node encountered
// during normalization, carrying the breadcrumb to the offending node.
func newNormalizeError(typ CatalogueErrorType, nodeType string, path []string, message string) *CatalogueError {
	// Copy the breadcrumb; the walk reuses its slice.
	crumb := make([]string, len(path))
	copy(crumb, path)
	return &CatalogueError{
		Type:     typ,
		NodeType: nodeType,
		Path:     crumb,
		Message:  message,
	}
}
