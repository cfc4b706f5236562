package scaffold

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/carton/internal/models"
)

// Data is what templates are rendered with.
type Data struct {
	Project string
	Kind    models.ProjectKind
	Version string
}

// NewData returns the render data for a fresh project.
func NewData(name string, kind models.ProjectKind) Data {
	m := models.NewManifest(name, kind)
	return Data{
		Project: m.Name,
		Kind:    m.Kind,
		Version: m.Version,
	}
}

var leftoverActionPattern = regexp.MustCompile(`\{\{[^}]*\}\}`)

// Render executes src with data. The result is trimmed and ends with a
// single newline.
func Render(name, src string, data Data) (string, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(src)
	if err != nil {
		return "", fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execute %q: %w", name, err)
	}

	out := strings.TrimSpace(buf.String())
	if loc := leftoverActionPattern.FindString(out); loc != "" {
		return "", fmt.Errorf("template %q left %q unexpanded", name, loc)
	}
	return out + "\n", nil
}

// RenderedFile is a template resolved against one project.
type RenderedFile struct {
	Path    string
	Content string
}

// RenderAll renders destination paths and bodies of templates.
func RenderAll(templates []Template, data Data) ([]RenderedFile, error) {
	files := make([]RenderedFile, 0, len(templates))
	for _, t := range templates {
		dest, err := Render(t.Name+":path", t.Path, data)
		if err != nil {
			return nil, err
		}
		body, err := Render(t.Name, t.Body, data)
		if err != nil {
			return nil, err
		}
		files = append(files, RenderedFile{
			Path:    strings.TrimSpace(dest),
			Content: body,
		})
	}
	return files, nil
}
