package spdx

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/catsite/catsite/internal/debug"
)

// Enum schema constants.
const (
	schemaDialect     = "https://json-schema.org/draft/2020-12/schema"
	schemaID          = "spdx_licenses.schema.json"
	schemaTitle       = "SPDX License IDs"
	schemaDescription = "Generated SPDX licenseId enum."
)

// EnumSchema is the JSON Schema document listing every known license ID
// as an allowed enumeration value.
type EnumSchema struct {
	Schema      string   `json:"$schema"`
	ID          string   `json:"$id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Enum        []string `json:"enum"`
}

// GenerateEnumSchema renders the enum schema for a registry.
// The output is deterministic: IDs are sorted lexicographically, the
// document is two-space indented with HTML escaping disabled and a
// trailing newline, so regenerating from an unchanged registry is
// byte-identical.
func GenerateEnumSchema(r *Registry) ([]byte, error) {
	schema := EnumSchema{
		Schema:      schemaDialect,
		ID:          schemaID,
		Title:       schemaTitle,
		Description: schemaDescription,
		Type:        "string",
		Enum:        r.IDs(),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(schema); err != nil {
		return nil, NewRegistryErrorWithCause(SchemaWriteFailed, schemaID, "failed to marshal enum schema", err)
	}
	return buf.Bytes(), nil
}

// WriteEnumSchema generates the enum schema and writes it to path,
// creating parent directories as needed.
func WriteEnumSchema(path string, r *Registry) error {
	data, err := GenerateEnumSchema(r)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return NewRegistryErrorWithCause(SchemaWriteFailed, path, "failed to create schema directory", err)
		}
	}

	debug.Debug("[spdx] Writing enum schema: %s (%d bytes, %d ID(s))", path, len(data), r.Len())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewRegistryErrorWithCause(SchemaWriteFailed, path, "failed to write enum schema", err)
	}
	return nil
}
