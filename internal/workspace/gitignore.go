package workspace

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/denormal/go-gitignore"
	"github.com/jakoblorz/carton/internal/filesystem"
)

// GitIgnoreFile is the ignore file checked at the project root.
const GitIgnoreFile = ".gitignore"

// buildOutputs are the generated paths that should never be committed.
var buildOutputs = []struct {
	path  string
	isDir bool
}{
	{TargetDirName, true},
	{CompileDatabaseFile, false},
}

// UnignoredBuildOutputs returns the generated paths that root's .gitignore
// does not ignore. A missing .gitignore leaves all of them unignored.
func UnignoredBuildOutputs(fs filesystem.FileSystem, root string) ([]string, error) {
	ignore, err := loadRootGitIgnore(fs, root)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, out := range buildOutputs {
		if ignore != nil {
			if match := ignore.Relative(out.path, out.isDir); match != nil && match.Ignore() {
				continue
			}
		}
		missing = append(missing, out.path)
	}
	return missing, nil
}

func loadRootGitIgnore(fs filesystem.FileSystem, root string) (gitignore.GitIgnore, error) {
	ignorePath := filepath.Join(root, GitIgnoreFile)
	if !fs.Exists(ignorePath) {
		return nil, nil
	}

	data, err := fs.ReadFile(ignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}

	return gitignore.New(bytes.NewReader(data), root, nil), nil
}
