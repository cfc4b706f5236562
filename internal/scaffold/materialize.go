package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/models"
)

// Materializer writes a rendered template set under a project root.
type Materializer struct {
	fs        filesystem.FileSystem
	templates []Template
}

// NewMaterializer creates a Materializer over the built-in templates.
func NewMaterializer(fs filesystem.FileSystem) (*Materializer, error) {
	templates, err := Builtin()
	if err != nil {
		return nil, err
	}
	return &Materializer{fs: fs, templates: templates}, nil
}

// Materialize renders kind's layout for name and writes it below root,
// creating parent directories as needed. It returns the written paths
// relative to root in write order. Files written before a failure are left
// in place.
func (m *Materializer) Materialize(root string, kind models.ProjectKind, name string) ([]string, error) {
	files, err := RenderAll(ForKind(m.templates, kind), NewData(name, kind))
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		dest := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := m.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}
		if err := m.fs.WriteFile(dest, []byte(f.Content), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
		written = append(written, f.Path)
	}
	return written, nil
}
