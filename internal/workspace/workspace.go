package workspace

import (
	"fmt"
	"path/filepath"
	"regexp"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/models"
)

// Workspace is the carton project rooted at the working directory.
//
// Detection never walks up the directory tree: build state, the compile
// database link and the artifact paths are all relative to the directory
// the command runs in, so a parent project would be the wrong root.
type Workspace struct {
	fs       filesystem.FileSystem
	RootPath string
	Manifest *models.Manifest
}

// New creates a new Workspace instance.
func New(fs filesystem.FileSystem) *Workspace {
	return &Workspace{fs: fs}
}

// Detect loads the project at the current directory.
func (w *Workspace) Detect() error {
	root, err := w.fs.Getwd()
	if err != nil {
		return cerrors.Wrap(cerrors.IOFailed, err, "failed to get working directory")
	}

	manifest, err := ReadManifest(w.fs, root)
	if err != nil {
		return err
	}

	w.RootPath = root
	w.Manifest = manifest
	return nil
}

// IsProject reports whether the current directory holds a valid manifest.
func (w *Workspace) IsProject() bool {
	root, err := w.fs.Getwd()
	if err != nil {
		return false
	}
	_, err = ReadManifest(w.fs, root)
	return err == nil
}

// ReadManifest reads and validates the manifest in root.
func ReadManifest(fs filesystem.FileSystem, root string) (*models.Manifest, error) {
	path := ManifestPath(root)
	if !fs.Exists(path) {
		if found, ok := findFileUp(fs, root, ManifestFile); ok {
			return nil, cerrors.New(cerrors.NotAProject,
				"not in a carton project: %s not found in %s (a manifest exists at %s; run carton from that project's root)",
				ManifestFile, root, found)
		}
		if fs.Exists(filepath.Join(root, BuildDescription)) {
			return nil, cerrors.New(cerrors.NotAProject,
				"not in a carton project: %s not found in %s (%s alone is not enough)",
				ManifestFile, root, BuildDescription)
		}
		return nil, cerrors.New(cerrors.NotAProject, "not in a carton project: %s not found in %s", ManifestFile, root)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.IOFailed, err, "failed to read %s", path)
	}

	return ParseManifest(path, data)
}

var projectNamePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.+-]*$`)

// ValidateProjectName checks that name can be used as a directory, a file
// stem and a meson target name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name is empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%q is not a project name", name)
	}
	if len(name) > 64 {
		return fmt.Errorf("project name %q is longer than 64 characters", name)
	}
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("project name %q may only contain letters, digits, '_', '.', '+' and '-' and must not start with '.', '+' or '-'", name)
	}
	return nil
}
