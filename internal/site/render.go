package site

import (
	"bytes"
	"html/template"
	"time"

	"github.com/catsite/catsite/internal/catalog"
	"github.com/catsite/catsite/internal/debug"
)

// SiteInfo is site-wide metadata available to every page template.
type SiteInfo struct {
	// Name is the site name.
	Name string
	// BaseURL is the site base URL, without a trailing slash.
	BaseURL string
}

// PageInfo describes the page being rendered, for display in footers
// and edit links.
type PageInfo struct {
	// Template is the page template path.
	Template string
	// Data is the catalogue data file path.
	Data string
	// Title is the page title from the frontmatter.
	Title string
	// Description is the page description from the frontmatter.
	Description string
}

// Context is the data a page template renders against.
type Context struct {
	// Contents is the normalized catalogue tree.
	Contents []*catalog.Node
	// Page describes the page being rendered.
	Page PageInfo
	// Site is site-wide metadata.
	Site SiteInfo
	// Now is the build timestamp.
	Now time.Time
}

// Renderer executes page templates.
type Renderer interface {
	// Render executes a page's template body against a context.
	Render(page *Page, ctx *Context) ([]byte, error)
}

// TemplateRenderer implements Renderer on html/template.
// Contextual autoescaping applies to everything in the context except
// fields already typed template.HTML (the normalized markup fields).
type TemplateRenderer struct {
	funcs template.FuncMap
}

// NewRenderer creates a TemplateRenderer with the stock helper funcs.
func NewRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		funcs: template.FuncMap{
			"rfc3339": func(t time.Time) string { return t.Format(time.RFC3339) },
			"year":    func(t time.Time) int { return t.Year() },
		},
	}
}

// Render executes a page's template body against a context.
func (r *TemplateRenderer) Render(page *Page, ctx *Context) ([]byte, error) {
	debug.Debug("[site] Rendering page: %s", page.Name)

	tmpl, err := template.New(page.Name).Funcs(r.funcs).Parse(page.Content)
	if err != nil {
		return nil, newSiteError(PageInvalid, page.Path, "invalid template syntax", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, newSiteError(RenderFailed, page.Path, "template execution failed", err)
	}

	debug.Debug("[site] Rendered %s: %d bytes", page.Name, buf.Len())
	return buf.Bytes(), nil
}
