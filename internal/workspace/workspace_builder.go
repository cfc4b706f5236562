package workspace

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/models"
)

// ProjectBuilder helps create test projects on a mock filesystem
type ProjectBuilder struct {
	fs   *filesystem.MockFileSystem
	root string
}

// NewProjectBuilder creates a new ProjectBuilder whose working directory is root
func NewProjectBuilder(root string) *ProjectBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &ProjectBuilder{
		fs:   fs,
		root: root,
	}
}

// WithManifest writes a well-formed manifest
func (pb *ProjectBuilder) WithManifest(name string, kind models.ProjectKind) *ProjectBuilder {
	content := fmt.Sprintf("name: %q\nkind: %s\nversion: %s\n", name, kind, models.DefaultVersion)
	return pb.WithRawManifest(content)
}

// WithRawManifest writes the manifest verbatim
func (pb *ProjectBuilder) WithRawManifest(content string) *ProjectBuilder {
	pb.fs.AddFile(ManifestPath(pb.root), []byte(content))
	return pb
}

// AddFile adds a file relative to the project root
func (pb *ProjectBuilder) AddFile(rel, content string) *ProjectBuilder {
	pb.fs.AddFile(filepath.Join(pb.root, rel), []byte(content))
	return pb
}

// Configured marks a profile's build directory as already set up
func (pb *ProjectBuilder) Configured(profile models.Profile) *ProjectBuilder {
	pb.fs.AddFile(filepath.Join(TargetDir(pb.root), profile.String(), "build.ninja"), nil)
	return pb
}

// Build returns the filesystem
func (pb *ProjectBuilder) Build() *filesystem.MockFileSystem {
	return pb.fs
}
