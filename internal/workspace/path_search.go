package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/carton/internal/filesystem"
)

// findFileUp looks for filename in the parents of startDir, excluding startDir
// itself. It only feeds error hints; projects are never detected this way.
func findFileUp(fs filesystem.FileSystem, startDir, filename string) (string, bool) {
	dir := filepath.Clean(startDir)

	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent

		candidate := filepath.Join(dir, filename)
		if fs.Exists(candidate) {
			return candidate, true
		}
	}
}
