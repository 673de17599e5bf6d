package config

// DefaultConfigFile is the project configuration file name.
const DefaultConfigFile = "catsite.json"

// DefaultConfig returns the default configuration, matching the
// conventional project layout.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name: "Software Catalogue",
		},
		Paths: PathsConfig{
			Templates: "templates",
			Data:      "data",
			Output:    "docs",
			Registry:  "resources/spdx_license_list.json",
			Schema:    "schemas/spdx_licenses.schema.json",
		},
		Render: RenderConfig{
			PageGlob: "*.html.tmpl",
		},
	}
}
