package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/catsite/catsite/internal/app"
)

// TestE2E_CompleteWorkflow drives the full spdx -> build -> new -> build
// pipeline against a fixture site.
func TestE2E_CompleteWorkflow(t *testing.T) {
	tempDir := t.TempDir()
	configPath := copySiteToTemp(t, "simple-site", tempDir)
	siteDir := filepath.Dir(configPath)

	// Step 1: Check the SPDX registry and regenerate the enum schema
	t.Log("Step 1: Running SPDX registry check")
	checkResult, err := app.CheckSPDX(context.Background(), app.CheckSPDXOptions{
		ConfigPath: configPath,
	})
	if err != nil {
		t.Fatalf("CheckSPDX failed: %v", err)
	}
	if checkResult.Loaded != 3 {
		t.Errorf("Loaded = %d, want 3", checkResult.Loaded)
	}

	schema := readOutput(t, filepath.Join(siteDir, "schemas", "spdx_licenses.schema.json"))
	if !strings.Contains(schema, `"$id": "spdx_licenses.schema.json"`) {
		t.Errorf("schema missing $id, got:\n%s", schema)
	}
	for _, id := range []string{"Beerware", "GPL-3.0-only", "MIT"} {
		if !strings.Contains(schema, `"`+id+`"`) {
			t.Errorf("schema missing license id %q", id)
		}
	}

	// Step 2: Build the site without minification
	t.Log("Step 2: Running build")
	plainDir := filepath.Join(tempDir, "out-plain")
	buildResult, err := app.Build(context.Background(), app.BuildOptions{
		ConfigPath: configPath,
		OutputDir:  plainDir,
		NoMinify:   true,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(buildResult.Pages) != 1 {
		t.Fatalf("built %d page(s), want 1", len(buildResult.Pages))
	}
	if buildResult.LicenseCount != 3 {
		t.Errorf("LicenseCount = %d, want 3", buildResult.LicenseCount)
	}

	html := readOutput(t, filepath.Join(plainDir, "index.html"))
	for _, want := range []string{
		`id="games"`,
		`id="acme-quest"`,
		`id="acme-quest_hd-ref-acme-quest"`,
		`id="evil_corp-tracker"`,
		"<del>cancelled</del>",
		"Simple Catalogue",
	} {
		t.Run("output contains "+want, func(t *testing.T) {
			if !strings.Contains(html, want) {
				t.Errorf("index.html missing %q", want)
			}
		})
	}
	if got := strings.Count(html, "FOSS"); got != 1 {
		t.Errorf("FOSS badge count = %d, want 1 (Quest only)", got)
	}

	// Step 3: Build again with minification and compare sizes
	t.Log("Step 3: Running minified build")
	minDir := filepath.Join(tempDir, "out-min")
	minResult, err := app.Build(context.Background(), app.BuildOptions{
		ConfigPath: configPath,
		OutputDir:  minDir,
	})
	if err != nil {
		t.Fatalf("minified Build failed: %v", err)
	}
	if minResult.Pages[0].Bytes >= buildResult.Pages[0].Bytes {
		t.Errorf("minified size %d not smaller than plain size %d",
			minResult.Pages[0].Bytes, buildResult.Pages[0].Bytes)
	}

	// Step 4: Scaffold a new page and rebuild
	t.Log("Step 4: Scaffolding a new page")
	newResult, err := app.NewPage(context.Background(), app.NewPageOptions{
		ConfigPath: configPath,
		Name:       "about",
		Title:      "About",
	})
	if err != nil {
		t.Fatalf("NewPage failed: %v", err)
	}
	for _, path := range []string{newResult.TemplatePath, newResult.DataPath} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("scaffold file missing: %v", err)
		}
	}

	rebuildResult, err := app.Build(context.Background(), app.BuildOptions{
		ConfigPath: configPath,
		OutputDir:  plainDir,
		NoMinify:   true,
	})
	if err != nil {
		t.Fatalf("Build after scaffold failed: %v", err)
	}
	if len(rebuildResult.Pages) != 2 {
		t.Fatalf("built %d page(s) after scaffold, want 2", len(rebuildResult.Pages))
	}

	about := readOutput(t, filepath.Join(plainDir, "about.html"))
	if !strings.Contains(about, "About") {
		t.Errorf("about.html missing page title, got:\n%s", about)
	}
}

// TestE2E_BrokenCatalogueAbortsBuild checks that a bad node type fails
// the build and leaves no output for the failing page.
func TestE2E_BrokenCatalogueAbortsBuild(t *testing.T) {
	tempDir := t.TempDir()
	configPath := copySiteToTemp(t, "simple-site", tempDir)
	siteDir := filepath.Dir(configPath)

	broken := `contents:
  - type: widget
    name: Mystery
`
	dataPath := filepath.Join(siteDir, "data", "apps.yaml")
	if err := os.WriteFile(dataPath, []byte(broken), 0644); err != nil {
		t.Fatalf("failed to overwrite data file: %v", err)
	}

	outDir := filepath.Join(tempDir, "out")
	_, err := app.Build(context.Background(), app.BuildOptions{
		ConfigPath: configPath,
		OutputDir:  outDir,
	})
	if err == nil {
		t.Fatal("expected build error for unknown node type")
	}
	if !strings.Contains(err.Error(), "widget") {
		t.Errorf("error should name the bad type, got: %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(outDir, "index.html")); !os.IsNotExist(statErr) {
		t.Error("failing page should not be written")
	}
}
