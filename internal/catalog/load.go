package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/catsite/catsite/internal/debug"
)

// Document is the top-level shape of a catalogue data file.
type Document struct {
	// Contents is the root node sequence, in display order.
	Contents []*Node `yaml:"contents"`
}

// LoadCatalogue loads a catalogue data file.
// A malformed document or a missing top-level contents sequence is a
// fatal error.
func LoadCatalogue(path string) (*Document, error) {
	debug.Debug("[catalog] Loading catalogue: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewCatalogueErrorWithCause(CatalogueNotFound, path, "catalogue file not found", err)
		}
		return nil, NewCatalogueErrorWithCause(CatalogueInvalid, path, "failed to read catalogue file", err)
	}
	return ParseCatalogue(data, path)
}

// ParseCatalogue parses a YAML catalogue document.
// The source argument is used only for error context.
func ParseCatalogue(data []byte, source string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewCatalogueErrorWithCause(CatalogueInvalid, source, "invalid YAML syntax", err)
	}
	if doc.Contents == nil {
		return nil, NewCatalogueError(CatalogueInvalid, source, "missing required top-level field: contents")
	}

	debug.Debug("[catalog] Catalogue loaded: %d root node(s)", len(doc.Contents))
	return &doc, nil
}
