package markup

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	t.Run("strikethrough short spelling", func(t *testing.T) {
		got := r.Render("[s]discontinued[/s]")
		if got != "<del>discontinued</del>" {
			t.Errorf("Render([s]) = %q, want <del>discontinued</del>", got)
		}
	})

	t.Run("strikethrough long spelling", func(t *testing.T) {
		got := r.Render("[del]discontinued[/del]")
		if got != "<del>discontinued</del>" {
			t.Errorf("Render([del]) = %q, want <del>discontinued</del>", got)
		}
	})

	t.Run("plain text passes through", func(t *testing.T) {
		got := r.Render("no markup here")
		if got != "no markup here" {
			t.Errorf("Render(plain) = %q", got)
		}
	})

	t.Run("raw HTML is escaped", func(t *testing.T) {
		got := r.Render("<script>alert(1)</script>")
		if strings.Contains(got, "<script>") {
			t.Errorf("Expected raw HTML to be escaped, got %q", got)
		}
	})

	t.Run("stock tags still work", func(t *testing.T) {
		got := r.Render("[b]bold[/b]")
		if got != "<b>bold</b>" {
			t.Errorf("Render([b]) = %q, want <b>bold</b>", got)
		}
	})

	t.Run("escaped text inside strikethrough", func(t *testing.T) {
		got := r.Render("[s]a && b[/s]")
		if !strings.HasPrefix(got, "<del>") || !strings.HasSuffix(got, "</del>") {
			t.Fatalf("Expected <del> wrapper, got %q", got)
		}
		if strings.Contains(got, "&&") {
			t.Errorf("Expected ampersands to be escaped, got %q", got)
		}
	})
}
