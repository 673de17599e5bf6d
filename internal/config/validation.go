package config

import "strings"

// ValidateConfig validates a configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return NewConfigError(ConfigValidationFailed, "", "configuration is nil")
	}

	if strings.TrimSpace(cfg.Site.Name) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "site.name", "site name cannot be empty")
	}
	if strings.HasSuffix(cfg.Site.BaseURL, "/") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "site.base_url", "base URL must not end with a slash")
	}

	if cfg.Paths.Templates == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "paths.templates", "templates directory cannot be empty")
	}
	if cfg.Paths.Output == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "paths.output", "output directory cannot be empty")
	}
	if cfg.Paths.Registry == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "paths.registry", "registry path cannot be empty")
	}
	if cfg.Paths.Schema == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "paths.schema", "schema path cannot be empty")
	}

	if cfg.Render.PageGlob == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "render.page_glob", "page glob cannot be empty")
	}
	if strings.ContainsAny(cfg.Render.PageGlob, "/\\") {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "render.page_glob", "page glob must not contain path separators")
	}

	return nil
}
