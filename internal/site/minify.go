package site

import (
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"

	"github.com/catsite/catsite/internal/debug"
)

// MinifyOptions controls which embedded content types get minified
// alongside the HTML itself.
type MinifyOptions struct {
	// CSS minifies inline <style> blocks and style attributes.
	CSS bool
	// JS minifies inline <script> blocks.
	JS bool
}

var scriptMediaTypes = regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$")

// Minifier minifies rendered page output.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a Minifier for HTML pages. The HTML minifier is
// conservative: end tags, attribute quotes and document tags survive,
// so minified pages keep the structure the templates wrote.
func NewMinifier(opts MinifyOptions) *Minifier {
	m := minify.New()
	m.Add("text/html", &html.Minifier{
		KeepEndTags:      true,
		KeepQuotes:       true,
		KeepDocumentTags: true,
	})
	if opts.CSS {
		m.AddFunc("text/css", css.Minify)
	}
	if opts.JS {
		m.AddFuncRegexp(scriptMediaTypes, js.Minify)
	}
	return &Minifier{m: m}
}

// Minify minifies a rendered HTML document.
func (mn *Minifier) Minify(page string, rendered []byte) ([]byte, error) {
	out, err := mn.m.Bytes("text/html", rendered)
	if err != nil {
		return nil, newSiteError(MinifyFailed, page, "minification failed", err)
	}
	debug.Debug("[site] Minified %s: %d -> %d bytes", page, len(rendered), len(out))
	return out, nil
}
