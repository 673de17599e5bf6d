package app

import (
	"os"
	"path/filepath"
	"testing"
)

// writeProjectFile writes a file under the project root, creating
// parent directories.
func writeProjectFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

const fixtureRegistryJSON = `{
  "licenses": [
    {"licenseId": "MIT", "name": "MIT License", "isOsiApproved": true},
    {"licenseId": "Beerware", "name": "Beerware License"}
  ]
}`

const fixtureCatalogueYAML = `contents:
  - type: folder
    name: Games
    contents:
      - publisher: Acme
        name: Quest
        licenses: [MIT]
        comment: "[s]abandoned[/s]"
      - publisher: Evil Corp
        name: Trap
        licenses: [Proprietary]
`

const fixturePageTemplate = `---
title: Catalogue
data: ../data/apps.yaml
---
<!DOCTYPE html>
<html>
<head><title>{{.Page.Title}} - {{.Site.Name}}</title></head>
<body>
{{range .Contents}}{{template "node" .}}{{end}}
</body>
</html>
{{define "node"}}
<section id="{{.ID}}">
  <h2>{{.Name}}</h2>
  {{if .Foss}}<span>FOSS</span>{{end}}
  {{if .Comment}}<p>{{.Comment}}</p>{{end}}
  {{range .Contents}}{{template "node" .}}{{end}}
</section>
{{end}}
`

// writeProject lays out a minimal buildable project and returns its
// config path.
func writeProject(t *testing.T, root string) string {
	t.Helper()
	writeProjectFile(t, root, "resources/spdx_license_list.json", fixtureRegistryJSON)
	writeProjectFile(t, root, "data/apps.yaml", fixtureCatalogueYAML)
	writeProjectFile(t, root, "templates/index.html.tmpl", fixturePageTemplate)
	return writeProjectFile(t, root, "catsite.json", `{"site": {"name": "Test Site"}}`)
}
