package site

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/catsite/catsite/internal/catalog"
)

func TestRender(t *testing.T) {
	renderer := NewRenderer()

	t.Run("context fields are in scope", func(t *testing.T) {
		page := &Page{
			Name:    "index.html.tmpl",
			Path:    "templates/index.html.tmpl",
			Content: `<h1>{{.Site.Name}} - {{.Page.Title}}</h1>{{range .Contents}}<p id="{{.ID}}">{{.Name}}</p>{{end}}`,
		}
		ctx := &Context{
			Contents: []*catalog.Node{
				{ID: "games", Type: catalog.TypeFolder, Name: "Games"},
			},
			Page: PageInfo{Title: "Catalogue"},
			Site: SiteInfo{Name: "Softdex"},
			Now:  time.Now(),
		}

		out, err := renderer.Render(page, ctx)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		got := string(out)
		if !strings.Contains(got, "<h1>Softdex - Catalogue</h1>") {
			t.Errorf("Missing site/page header: %q", got)
		}
		if !strings.Contains(got, `<p id="games">Games</p>`) {
			t.Errorf("Missing node markup: %q", got)
		}
	})

	t.Run("plain fields are escaped", func(t *testing.T) {
		page := &Page{Name: "p.html.tmpl", Content: `{{range .Contents}}{{.Name}}{{end}}`}
		ctx := &Context{Contents: []*catalog.Node{{Name: "a <b> c"}}}

		out, err := renderer.Render(page, ctx)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if strings.Contains(string(out), "<b>") {
			t.Errorf("Expected name to be escaped, got %q", out)
		}
	})

	t.Run("pre-escaped markup is not re-escaped", func(t *testing.T) {
		page := &Page{Name: "p.html.tmpl", Content: `{{range .Contents}}{{.Comment}}{{end}}`}
		ctx := &Context{Contents: []*catalog.Node{{Comment: template.HTML("<del>old</del>")}}}

		out, err := renderer.Render(page, ctx)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if string(out) != "<del>old</del>" {
			t.Errorf("Expected markup to pass through, got %q", out)
		}
	})

	t.Run("helper funcs", func(t *testing.T) {
		page := &Page{Name: "p.html.tmpl", Content: `{{year .Now}}`}
		ctx := &Context{Now: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

		out, err := renderer.Render(page, ctx)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if string(out) != "2024" {
			t.Errorf("year helper = %q, want 2024", out)
		}
	})

	t.Run("invalid template syntax", func(t *testing.T) {
		page := &Page{Name: "p.html.tmpl", Path: "p.html.tmpl", Content: `{{range}`}
		_, err := renderer.Render(page, &Context{})
		if err == nil {
			t.Fatal("Expected error for invalid template syntax")
		}
		siteErr, ok := err.(*SiteError)
		if !ok {
			t.Fatalf("Expected *SiteError, got %T", err)
		}
		if siteErr.Type != PageInvalid {
			t.Errorf("Expected PageInvalid, got %v", siteErr.Type)
		}
	})
}
