package app

import (
	"context"

	"github.com/catsite/catsite/internal/debug"
	"github.com/catsite/catsite/internal/spdx"
)

// CheckSPDXOptions contains options for the SPDX registry check.
type CheckSPDXOptions struct {
	// ConfigPath is the project configuration file ("" means
	// catsite.json in the current directory).
	ConfigPath string
	// RegistryPath overrides the configured registry path when set.
	RegistryPath string
	// SchemaPath overrides the configured schema output path when set.
	SchemaPath string
}

// CheckSPDXResult summarizes a completed registry check.
type CheckSPDXResult struct {
	// Loaded is the number of license records loaded.
	Loaded int
	// SchemaPath is where the enum schema artifact was written.
	SchemaPath string
}

// CheckSPDX loads the SPDX license registry and regenerates the license
// enum schema artifact. Any malformed registry content is fatal; the
// schema is only written from a fully loaded registry.
func CheckSPDX(ctx context.Context, opts CheckSPDXOptions) (*CheckSPDXResult, error) {
	debug.DebugSection("[app] CheckSPDX start")

	cfg, _, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, NewRegistryCheckError("failed to load configuration", err)
	}

	registryPath := cfg.Paths.Registry
	if opts.RegistryPath != "" {
		registryPath = opts.RegistryPath
	}
	schemaPath := cfg.Paths.Schema
	if opts.SchemaPath != "" {
		schemaPath = opts.SchemaPath
	}
	debug.DebugValue("[app] Registry path", registryPath)
	debug.DebugValue("[app] Schema path", schemaPath)

	registry, err := spdx.LoadRegistry(registryPath)
	if err != nil {
		return nil, NewRegistryCheckError("failed to load license registry", err)
	}

	if err := spdx.WriteEnumSchema(schemaPath, registry); err != nil {
		return nil, NewRegistryCheckError("failed to write enum schema", err)
	}

	debug.Debug("[app] CheckSPDX complete: %d record(s)", registry.Len())
	return &CheckSPDXResult{
		Loaded:     registry.Len(),
		SchemaPath: schemaPath,
	}, nil
}
