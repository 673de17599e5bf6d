package config

// Config represents the catsite project configuration (catsite.json).
type Config struct {
	// Site holds site-wide metadata exposed to page templates.
	Site SiteConfig `json:"site"`
	// Paths holds the project directory and file layout.
	Paths PathsConfig `json:"paths"`
	// Render holds page rendering and minification settings.
	Render RenderConfig `json:"render"`
	// Output holds display and logging settings.
	Output OutputConfig `json:"output"`
}

// SiteConfig represents site-wide metadata.
type SiteConfig struct {
	// Name is the site name.
	Name string `json:"name"`
	// BaseURL is the site base URL, without a trailing slash.
	BaseURL string `json:"base_url,omitempty"`
}

// PathsConfig represents the project layout.
type PathsConfig struct {
	// Templates is the page template directory.
	Templates string `json:"templates"`
	// Data is the catalogue data directory (used by scaffolding).
	Data string `json:"data"`
	// Output is the directory generated pages are written to.
	Output string `json:"output"`
	// Registry is the SPDX license list JSON file.
	Registry string `json:"registry"`
	// Schema is the output path for the generated license enum schema.
	Schema string `json:"schema"`
}

// RenderConfig represents rendering settings.
type RenderConfig struct {
	// PageGlob matches page template files inside the templates directory.
	PageGlob string `json:"page_glob"`
	// Minify enables HTML minification of rendered pages. Unset means on.
	Minify *bool `json:"minify,omitempty"`
	// MinifyCSS enables minification of inline CSS (requires Minify).
	MinifyCSS *bool `json:"minify_css,omitempty"`
	// MinifyJS enables minification of inline JavaScript (requires Minify).
	MinifyJS *bool `json:"minify_js,omitempty"`
}

// MinifyEnabled reports whether HTML minification is on.
func (r RenderConfig) MinifyEnabled() bool {
	return r.Minify == nil || *r.Minify
}

// MinifyCSSEnabled reports whether inline CSS minification is on.
func (r RenderConfig) MinifyCSSEnabled() bool {
	return r.MinifyCSS == nil || *r.MinifyCSS
}

// MinifyJSEnabled reports whether inline JavaScript minification is on.
func (r RenderConfig) MinifyJSEnabled() bool {
	return r.MinifyJS == nil || *r.MinifyJS
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output. Unset means on.
	Color *bool `json:"color,omitempty"`
	// Verbose enables verbose logging output.
	Verbose bool `json:"verbose"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet"`
}

// ColorEnabled reports whether colored output is on.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}
