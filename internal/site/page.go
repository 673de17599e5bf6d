// Package site turns page templates plus normalized catalogue trees into
// minified HTML files.
package site

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/catsite/catsite/internal/debug"
)

// PageMeta is the YAML frontmatter of a page template.
type PageMeta struct {
	// Title is the page title, available to the template.
	Title string `yaml:"title"`
	// Description is an optional page description.
	Description string `yaml:"description"`
	// Data is the catalogue data file for this page, relative to the
	// template's directory.
	Data string `yaml:"data"`
}

// Page is one discovered page template.
type Page struct {
	// Name is the template file name (e.g., "index.html.tmpl").
	Name string
	// Path is the full template file path.
	Path string
	// Meta is the parsed frontmatter.
	Meta PageMeta
	// Content is the template body with the frontmatter stripped.
	Content string
}

// OutputName returns the output file name for the page: the template
// name with its ".tmpl" suffix removed (e.g., "index.html").
func (p *Page) OutputName() string {
	return strings.TrimSuffix(p.Name, ".tmpl")
}

// DataPath resolves the page's catalogue data file against the
// template's directory. Returns "" when the frontmatter names no data
// file.
func (p *Page) DataPath() string {
	if p.Meta.Data == "" {
		return ""
	}
	if filepath.IsAbs(p.Meta.Data) {
		return p.Meta.Data
	}
	return filepath.Join(filepath.Dir(p.Path), p.Meta.Data)
}

// LoadPage loads one page template and parses its frontmatter.
func LoadPage(path string) (*Page, error) {
	debug.Debug("[site] Loading page template: %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, newSiteError(PageInvalid, path, "failed to open page template", err)
	}
	defer func() { _ = f.Close() }()

	var meta PageMeta
	body, err := frontmatter.Parse(f, &meta)
	if err != nil {
		return nil, newSiteError(PageInvalid, path, "invalid page frontmatter", err)
	}

	return &Page{
		Name:    filepath.Base(path),
		Path:    path,
		Meta:    meta,
		Content: string(body),
	}, nil
}

// DiscoverPages finds all page templates in dir matching glob and loads
// them, sorted by file name for a stable build order.
func DiscoverPages(dir, glob string) ([]*Page, error) {
	pattern := filepath.Join(dir, glob)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, newSiteError(PageDiscoveryFailed, "", "invalid page glob: "+pattern, err)
	}
	sort.Strings(matches)

	pages := make([]*Page, 0, len(matches))
	for _, match := range matches {
		page, err := LoadPage(match)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	debug.Debug("[site] Discovered %d page(s) in %s", len(pages), dir)
	return pages, nil
}
