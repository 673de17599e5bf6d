// Package markup renders the lightweight inline markup allowed in
// catalogue text fields into safe, pre-escaped HTML.
package markup

import (
	"github.com/frustra/bbcode"
)

// Renderer converts markup text into safe HTML.
// Output is fully escaped: literal HTML in the input never survives as
// markup, so results can be marked pre-escaped for the template layer.
type Renderer interface {
	// Render converts markup text into safe HTML.
	Render(input string) string
}

// BBCodeRenderer implements Renderer on a bbcode compiler.
// On top of the compiler's stock tags it supports strikethrough spelled
// either [s] or [del], both rendering to an HTML <del> wrapper.
type BBCodeRenderer struct {
	compiler bbcode.Compiler
}

// NewRenderer creates a BBCodeRenderer with the catalogue tag set.
func NewRenderer() *BBCodeRenderer {
	compiler := bbcode.NewCompiler(true, true)

	del := func(node *bbcode.BBCodeNode) (*bbcode.HTMLTag, bool) {
		out := bbcode.NewHTMLTag("")
		out.Name = "del"
		return out, true
	}
	compiler.SetTag("s", del)
	compiler.SetTag("del", del)

	return &BBCodeRenderer{compiler: compiler}
}

// Render converts markup text into safe HTML.
func (r *BBCodeRenderer) Render(input string) string {
	return r.compiler.Compile(input)
}
