// Package app implements the catsite operations behind the CLI
// commands: building the site, checking the SPDX registry, and
// scaffolding new pages.
package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/catsite/catsite/internal/catalog"
	"github.com/catsite/catsite/internal/config"
	"github.com/catsite/catsite/internal/debug"
	"github.com/catsite/catsite/internal/markup"
	"github.com/catsite/catsite/internal/site"
	"github.com/catsite/catsite/internal/spdx"
)

// BuildOptions contains options for a site build.
type BuildOptions struct {
	// ConfigPath is the project configuration file ("" means
	// catsite.json in the current directory).
	ConfigPath string
	// OutputDir overrides the configured output directory when set.
	OutputDir string
	// NoMinify disables minification regardless of configuration.
	NoMinify bool
}

// BuiltPage describes one generated page.
type BuiltPage struct {
	// Template is the page template path.
	Template string
	// Data is the catalogue data file path.
	Data string
	// Output is the written output file path.
	Output string
	// Bytes is the size of the written output.
	Bytes int
}

// BuildResult summarizes a completed build.
type BuildResult struct {
	// Pages are the generated pages, in build order.
	Pages []BuiltPage
	// LicenseCount is the number of loaded license records.
	LicenseCount int
}

// Build runs the full pipeline: load config and license registry,
// discover pages, and for each page load its catalogue, normalize the
// tree, render, minify, and write. The first fatal error aborts the
// build; the failing page is never written.
func Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	debug.DebugSection("[app] Build start")

	cfg, configPath, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, NewBuildError("failed to load configuration", err)
	}
	if opts.OutputDir != "" {
		cfg.Paths.Output = opts.OutputDir
	}
	if opts.NoMinify {
		off := false
		cfg.Render.Minify = &off
	}
	debug.DebugValue("[app] Config file", configPath)
	debug.DebugValue("[app] Templates dir", cfg.Paths.Templates)
	debug.DebugValue("[app] Output dir", cfg.Paths.Output)

	registry, err := spdx.LoadRegistry(cfg.Paths.Registry)
	if err != nil {
		return nil, NewBuildError("failed to load license registry", err)
	}

	pages, err := site.DiscoverPages(cfg.Paths.Templates, cfg.Render.PageGlob)
	if err != nil {
		return nil, NewBuildError("failed to discover pages", err)
	}

	normalizer := catalog.NewNormalizer(registry, markup.NewRenderer())
	renderer := site.NewRenderer()
	writer := site.NewFileWriter()
	var minifier *site.Minifier
	if cfg.Render.MinifyEnabled() {
		minifier = site.NewMinifier(site.MinifyOptions{
			CSS: cfg.Render.MinifyCSSEnabled(),
			JS:  cfg.Render.MinifyJSEnabled(),
		})
	}

	now := time.Now()
	result := &BuildResult{LicenseCount: registry.Len()}

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, NewBuildError("build canceled", err)
		}

		built, err := buildPage(page, cfg, normalizer, renderer, minifier, writer, now)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, *built)
	}

	debug.Debug("[app] Build complete: %d page(s)", len(result.Pages))
	return result, nil
}

// buildPage generates one page.
func buildPage(
	page *site.Page,
	cfg *config.Config,
	normalizer catalog.Normalizer,
	renderer site.Renderer,
	minifier *site.Minifier,
	writer site.Writer,
	now time.Time,
) (*BuiltPage, error) {
	debug.DebugSection("[app] Page " + page.Name)

	dataPath := page.DataPath()
	if dataPath == "" {
		return nil, NewBuildError("page "+page.Path+" names no data file in its frontmatter", nil)
	}

	doc, err := catalog.LoadCatalogue(dataPath)
	if err != nil {
		return nil, NewBuildError("failed to load catalogue for "+page.Name, err)
	}

	contents, err := normalizer.Normalize(doc.Contents, nil)
	if err != nil {
		return nil, NewBuildError("failed to normalize catalogue for "+page.Name, err)
	}

	rendered, err := renderer.Render(page, &site.Context{
		Contents: contents,
		Page: site.PageInfo{
			Template:    page.Path,
			Data:        dataPath,
			Title:       page.Meta.Title,
			Description: page.Meta.Description,
		},
		Site: site.SiteInfo{
			Name:    cfg.Site.Name,
			BaseURL: cfg.Site.BaseURL,
		},
		Now: now,
	})
	if err != nil {
		return nil, NewBuildError("failed to render "+page.Name, err)
	}

	if minifier != nil {
		rendered, err = minifier.Minify(page.Name, rendered)
		if err != nil {
			return nil, NewBuildError("failed to minify "+page.Name, err)
		}
	}

	outputPath := filepath.Join(cfg.Paths.Output, page.OutputName())
	if err := writer.WriteFile(outputPath, rendered); err != nil {
		return nil, NewBuildError("failed to write "+page.OutputName(), err)
	}

	return &BuiltPage{
		Template: page.Path,
		Data:     dataPath,
		Output:   outputPath,
		Bytes:    len(rendered),
	}, nil
}

// loadConfig loads and validates the project configuration, resolving
// relative paths against the config file's directory.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		path = config.DefaultConfigFile
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadOrDefault(path)
	if err != nil {
		return nil, path, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, path, err
	}
	config.ResolvePaths(cfg, path)
	return cfg, path, nil
}
