package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput   = "output"
	FlagConfig   = "config"
	FlagForce    = "force"
	FlagTitle    = "title"
	FlagNoMinify = "no-minify"
	FlagRegistry = "registry"
	FlagSchema   = "schema"
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"

	// Flag descriptions
	DescOutput   = "Output directory for generated pages"
	DescConfig   = "Path to catsite.json project config"
	DescForce    = "Overwrite existing files"
	DescTitle    = "Page title for the frontmatter"
	DescNoMinify = "Skip HTML minification"
	DescRegistry = "Path to the SPDX license list JSON"
	DescSchema   = "Output path for the license enum schema"
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
)

// resolveConfigPath picks the config path for an operation: the --config
// flag wins, otherwise the app layer falls back to catsite.json in the
// current directory.
func resolveConfigPath() string {
	return globalConfig
}
