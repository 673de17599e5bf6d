package site

import "fmt"

// SiteErrorType represents the type of site-generation error.
type SiteErrorType int

const (
	// PageDiscoveryFailed indicates the template directory could not be scanned.
	PageDiscoveryFailed SiteErrorType = iota
	// PageInvalid indicates a page template or its frontmatter could not be parsed.
	PageInvalid
	// RenderFailed indicates template execution failed.
	RenderFailed
	// MinifyFailed indicates output minification failed.
	MinifyFailed
	// WriteFailed indicates the output file could not be written.
	WriteFailed
)

// SiteError represents a site-generation error.
type SiteError struct {
	// Type is the error type.
	Type SiteErrorType
	// Message is the error message.
	Message string
	// Page is the page template path, if page-specific.
	Page string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Page != "" {
		if e.Cause != nil {
			return fmt.Sprintf("site error in %s: %s: %v", e.Page, e.Message, e.Cause)
		}
		return fmt.Sprintf("site error in %s: %s", e.Page, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("site error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("site error: %s", e.Message)
}

// Unwrap returns the underlying cause error.
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// newSiteError creates a new SiteError.
func newSiteError(typ SiteErrorType, page, message string, cause error) *SiteError {
	return &SiteError{
		Type:    typ,
		Page:    page,
		Message: message,
		Cause:   cause,
	}
}
