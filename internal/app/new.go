package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/catsite/catsite/internal/catalog"
	"github.com/catsite/catsite/internal/debug"
)

// NewPageOptions contains options for scaffolding a page.
type NewPageOptions struct {
	// ConfigPath is the project configuration file ("" means
	// catsite.json in the current directory).
	ConfigPath string
	// Name is the page name; becomes <name>.html.tmpl and <name>.yaml.
	Name string
	// Title is the page title written into the frontmatter.
	Title string
	// Force overwrites existing files.
	Force bool
}

// NewPageResult lists the files a scaffold created.
type NewPageResult struct {
	// TemplatePath is the created page template.
	TemplatePath string
	// DataPath is the created catalogue data file.
	DataPath string
}

var pageNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

const starterTemplate = `---
title: %[1]s
data: %[2]s
---
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{.Page.Title}} - {{.Site.Name}}</title>
</head>
<body>
  <h1>{{.Page.Title}}</h1>
  {{range .Contents}}{{template "node" .}}{{end}}
  <footer>Generated {{rfc3339 .Now}}</footer>
</body>
</html>

{{define "node"}}
<section id="{{.ID}}">
  <h2>{{if .Publisher}}{{.Publisher}} {{end}}{{.Name}}</h2>
  {{if .Foss}}<span class="badge">FOSS</span>{{end}}
  {{if .Comment}}<p>{{.Comment}}</p>{{end}}
  {{range .Contents}}{{template "node" .}}{{end}}
</section>
{{end}}
`

const starterData = `contents:
  - type: folder
    name: Examples
    contents:
      - publisher: Example Corp
        name: Example App
        licenses: [MIT]
        comment: Replace this with real entries.
`

// NewPage scaffolds a page template and its catalogue data file.
func NewPage(ctx context.Context, opts NewPageOptions) (*NewPageResult, error) {
	debug.DebugSection("[app] NewPage start")

	if err := validateNewPageOptions(opts); err != nil {
		return nil, NewValidationError("invalid page options", err)
	}

	cfg, _, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, NewScaffoldError("failed to load configuration", err)
	}

	title := opts.Title
	if title == "" {
		title = opts.Name
	}

	templatePath := filepath.Join(cfg.Paths.Templates, opts.Name+".html.tmpl")
	dataPath := filepath.Join(cfg.Paths.Data, opts.Name+".yaml")
	debug.DebugValue("[app] Template path", templatePath)
	debug.DebugValue("[app] Data path", dataPath)

	if !opts.Force {
		for _, path := range []string{templatePath, dataPath} {
			if _, err := os.Stat(path); err == nil {
				return nil, NewScaffoldError(
					fmt.Sprintf("%s already exists (use --force to overwrite)", path), nil)
			}
		}
	}

	// The data reference in the frontmatter is relative to the template
	// directory.
	relData, err := filepath.Rel(cfg.Paths.Templates, dataPath)
	if err != nil {
		relData = dataPath
	}

	if err := writeScaffold(templatePath, fmt.Sprintf(starterTemplate, title, filepath.ToSlash(relData))); err != nil {
		return nil, err
	}
	if err := writeScaffold(dataPath, starterData); err != nil {
		return nil, err
	}

	debug.Debug("[app] NewPage complete: %s", opts.Name)
	return &NewPageResult{
		TemplatePath: templatePath,
		DataPath:     dataPath,
	}, nil
}

// validateNewPageOptions validates scaffold options.
func validateNewPageOptions(opts NewPageOptions) error {
	if opts.Name == "" {
		return fmt.Errorf("page name cannot be empty")
	}
	if !pageNamePattern.MatchString(opts.Name) {
		return fmt.Errorf("page name %q must be lowercase letters, digits, hyphens, or underscores", opts.Name)
	}
	// A name that resolves to nothing would produce unreachable IDs in
	// the generated data.
	if catalog.SanitizeID(opts.Name) == "" {
		return fmt.Errorf("page name %q sanitizes to an empty identifier", opts.Name)
	}
	return nil
}

func writeScaffold(path, content string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return NewScaffoldError("failed to create directory "+dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return NewScaffoldError("failed to write "+path, err)
	}
	return nil
}
