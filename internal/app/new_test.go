package app

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestNewPage(t *testing.T) {
	t.Run("scaffolds template and data", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeProject(t, root)

		result, err := NewPage(context.Background(), NewPageOptions{
			ConfigPath: configPath,
			Name:       "games",
			Title:      "Games",
		})
		if err != nil {
			t.Fatalf("NewPage failed: %v", err)
		}

		tmpl, err := os.ReadFile(result.TemplatePath)
		if err != nil {
			t.Fatalf("Failed to read scaffolded template: %v", err)
		}
		if !strings.Contains(string(tmpl), "title: Games") {
			t.Errorf("Template missing title frontmatter: %s", tmpl)
		}
		if !strings.Contains(string(tmpl), "data: ../data/games.yaml") {
			t.Errorf("Template missing data reference: %s", tmpl)
		}

		data, err := os.ReadFile(result.DataPath)
		if err != nil {
			t.Fatalf("Failed to read scaffolded data: %v", err)
		}
		if !strings.Contains(string(data), "contents:") {
			t.Errorf("Data missing contents tree: %s", data)
		}
	})

	t.Run("scaffolded page builds", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeProject(t, root)

		if _, err := NewPage(context.Background(), NewPageOptions{
			ConfigPath: configPath,
			Name:       "extras",
		}); err != nil {
			t.Fatalf("NewPage failed: %v", err)
		}

		result, err := Build(context.Background(), BuildOptions{ConfigPath: configPath})
		if err != nil {
			t.Fatalf("Build of scaffolded page failed: %v", err)
		}
		if len(result.Pages) != 2 {
			t.Errorf("Expected 2 pages after scaffolding, got %d", len(result.Pages))
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeProject(t, root)
		opts := NewPageOptions{ConfigPath: configPath, Name: "games"}

		if _, err := NewPage(context.Background(), opts); err != nil {
			t.Fatalf("NewPage failed: %v", err)
		}
		if _, err := NewPage(context.Background(), opts); err == nil {
			t.Fatal("Expected error when scaffolding over existing files")
		}

		opts.Force = true
		if _, err := NewPage(context.Background(), opts); err != nil {
			t.Errorf("NewPage with force failed: %v", err)
		}
	})

	t.Run("rejects invalid names", func(t *testing.T) {
		root := t.TempDir()
		configPath := writeProject(t, root)

		for _, name := range []string{"", "Has Spaces", "UPPER", "../escape", "-leading"} {
			if _, err := NewPage(context.Background(), NewPageOptions{
				ConfigPath: configPath,
				Name:       name,
			}); err == nil {
				t.Errorf("Expected error for page name %q", name)
			}
		}
	})
}
