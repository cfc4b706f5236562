// Package scaffold renders the embedded project templates and writes them
// into a new project directory.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/jakoblorz/carton/internal/models"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Template is one file of a project layout. Path and Body are both
// text/template sources rendered with the same Data.
type Template struct {
	Name  string
	Path  string
	Kinds []models.ProjectKind
	Body  string
}

type templateMatter struct {
	Path  string   `yaml:"path"`
	Kinds []string `yaml:"kinds"`
}

// AppliesTo reports whether the template is part of kind's layout.
func (t Template) AppliesTo(kind models.ProjectKind) bool {
	for _, k := range t.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Load parses every template in fsys. Each file must open with a front
// matter block naming its destination path and the kinds it belongs to.
func Load(fsys fs.FS) ([]Template, error) {
	names, err := fs.Glob(fsys, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	templates := make([]Template, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		tmpl, err := parseTemplate(path.Base(name), data)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

func parseTemplate(name string, data []byte) (Template, error) {
	var matter templateMatter
	body, err := frontmatter.MustParse(bytes.NewReader(data), &matter)
	if err != nil {
		return Template{}, fmt.Errorf("failed to parse frontmatter of template %s: %w", name, err)
	}
	if matter.Path == "" {
		return Template{}, fmt.Errorf("template %s has no destination path", name)
	}
	if len(matter.Kinds) == 0 {
		return Template{}, fmt.Errorf("template %s applies to no project kind", name)
	}

	kinds := make([]models.ProjectKind, 0, len(matter.Kinds))
	for _, raw := range matter.Kinds {
		kind, err := models.ParseProjectKind(raw)
		if err != nil {
			return Template{}, fmt.Errorf("template %s: %w", name, err)
		}
		kinds = append(kinds, kind)
	}

	return Template{
		Name:  strings.TrimSuffix(name, ".tmpl"),
		Path:  matter.Path,
		Kinds: kinds,
		Body:  string(body),
	}, nil
}

// Builtin returns the templates compiled into the binary.
func Builtin() ([]Template, error) {
	return Load(embedded)
}

// ForKind returns the templates of kind's layout.
func ForKind(templates []Template, kind models.ProjectKind) []Template {
	var selected []Template
	for _, t := range templates {
		if t.AppliesTo(kind) {
			selected = append(selected, t)
		}
	}
	return selected
}
