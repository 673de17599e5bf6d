// Package spdx loads the SPDX license registry and classifies license
// identifiers as FOSS or not.
//
// The registry is loaded once at startup from the SPDX license list JSON
// document and is immutable afterward. Classification is a pure lookup
// over the loaded table; unknown identifiers are defined behavior, not
// errors.
package spdx

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/catsite/catsite/internal/debug"
)

// License represents one entry from the SPDX license registry.
type License struct {
	// LicenseID is the unique short code (e.g., "MIT").
	LicenseID string
	// Name is the human-readable long name.
	Name string
	// IsOsiApproved indicates OSI approval.
	IsOsiApproved bool
	// IsFsfLibre indicates the FSF considers the license libre.
	IsFsfLibre bool
	// IsDeprecated indicates the license ID is deprecated by SPDX.
	IsDeprecated bool
}

// Registry is an immutable mapping of SPDX license IDs to their records.
// Construct one with LoadRegistry or ParseRegistry; the zero value is an
// empty registry that classifies everything as non-FOSS.
type Registry struct {
	byID map[string]License
}

// licenseListDoc mirrors the wire shape of the SPDX license list document.
type licenseListDoc struct {
	Licenses []licenseEntry `json:"licenses"`
}

type licenseEntry struct {
	LicenseID             string `json:"licenseId"`
	Name                  string `json:"name"`
	IsOsiApproved         bool   `json:"isOsiApproved"`
	IsFsfLibre            bool   `json:"isFsfLibre"`
	IsDeprecatedLicenseID bool   `json:"isDeprecatedLicenseId"`
}

// LoadRegistry loads the SPDX license registry from a JSON file.
// A malformed document or an entry missing licenseId or name is a fatal
// error; there is no partial registry.
func LoadRegistry(path string) (*Registry, error) {
	debug.Debug("[spdx] Loading license registry: %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewRegistryErrorWithCause(RegistryNotFound, path, "registry file not found", err)
		}
		return nil, NewRegistryErrorWithCause(RegistryInvalid, path, "failed to read registry file", err)
	}
	return ParseRegistry(data, path)
}

// ParseRegistry parses the SPDX license list document.
// The source argument is used only for error context.
func ParseRegistry(data []byte, source string) (*Registry, error) {
	var doc licenseListDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, NewRegistryErrorWithCause(RegistryInvalid, source, "invalid JSON syntax", err)
	}
	if doc.Licenses == nil {
		return nil, NewRegistryError(RegistryInvalid, source, "missing required top-level field: licenses")
	}

	byID := make(map[string]License, len(doc.Licenses))
	for i, entry := range doc.Licenses {
		if entry.LicenseID == "" {
			return nil, NewRegistryErrorWithEntry(RegistryEntryInvalid, source, i, "missing required field: licenseId")
		}
		if entry.Name == "" {
			return nil, NewRegistryErrorWithEntry(RegistryEntryInvalid, source, i, "missing required field: name")
		}
		// Duplicate IDs: the later entry wins.
		byID[entry.LicenseID] = License{
			LicenseID:     entry.LicenseID,
			Name:          entry.Name,
			IsOsiApproved: entry.IsOsiApproved,
			IsFsfLibre:    entry.IsFsfLibre,
			IsDeprecated:  entry.IsDeprecatedLicenseID,
		}
	}

	debug.Debug("[spdx] Registry loaded: %d license record(s)", len(byID))
	return &Registry{byID: byID}, nil
}

// NewRegistry creates a registry from pre-built license records.
// Intended for tests that need fixture registries without a JSON document.
func NewRegistry(licenses ...License) *Registry {
	byID := make(map[string]License, len(licenses))
	for _, l := range licenses {
		byID[l.LicenseID] = l
	}
	return &Registry{byID: byID}
}

// Lookup returns the license record for an ID.
func (r *Registry) Lookup(id string) (License, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// Len returns the number of license records in the registry.
func (r *Registry) Len() int {
	return len(r.byID)
}

// IDs returns all known license IDs sorted lexicographically.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
