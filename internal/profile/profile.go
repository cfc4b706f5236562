// Package profile maps build profiles onto their build directories.
//
// A build directory's existence is the only record of whether meson has
// configured it. Nothing else is cached, so removing the directory by hand
// or through clean is enough to force configuration on the next build.
package profile

import (
	"path/filepath"

	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/jakoblorz/carton/internal/workspace"
)

// Layout is where a profile's build state lives and how meson is told about it.
type Layout struct {
	Profile models.Profile

	// Dir is the build directory relative to the project root.
	Dir string

	// BuildType is passed to meson as -Dbuildtype.
	BuildType string
}

// Resolve maps a profile to its layout. It does no I/O.
func Resolve(p models.Profile) Layout {
	return Layout{
		Profile:   p,
		Dir:       filepath.Join(workspace.TargetDirName, p.String()),
		BuildType: p.String(),
	}
}

// CompileDatabase is the database meson generates inside the build directory.
func (l Layout) CompileDatabase() string {
	return filepath.Join(l.Dir, workspace.CompileDatabaseFile)
}

// Artifact is the executable meson builds for a binary project.
func (l Layout) Artifact(projectName string) string {
	return filepath.Join(l.Dir, "src", projectName)
}

// TestLog is where meson test writes its full log.
func (l Layout) TestLog() string {
	return filepath.Join(l.Dir, "meson-logs", "testlog.txt")
}

// IsConfigured reports whether dir exists as a directory under root.
func IsConfigured(fs filesystem.FileSystem, root, dir string) bool {
	info, err := fs.Stat(filepath.Join(root, dir))
	return err == nil && info.IsDir()
}
