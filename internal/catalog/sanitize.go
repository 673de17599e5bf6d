package catalog

import (
	"regexp"
	"strings"
)

var (
	// Characters removed from identifiers: reserved or unsafe in URLs
	// and HTML attribute values.
	forbiddenIDChars = regexp.MustCompile("[<>#\"%{}|\\\\^~\\[\\]`;/?:@=&]")
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// SanitizeID derives a URL/HTML-safe identifier from a human-readable
// string: trims and lowercases, deletes forbidden characters, and
// collapses every whitespace run into a single underscore. Empty input
// yields an empty string.
func SanitizeID(value string) string {
	if value == "" {
		return ""
	}

	value = strings.ToLower(strings.TrimSpace(value))
	value = forbiddenIDChars.ReplaceAllString(value, "")
	value = whitespaceRun.ReplaceAllString(value, "_")
	return value
}
