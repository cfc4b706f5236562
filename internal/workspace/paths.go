package workspace

import "path/filepath"

const (
	ManifestFile        = "carton.yaml"
	BuildDescription    = "meson.build"
	TargetDirName       = "target"
	CompileDatabaseFile = "compile_commands.json"
)

// ManifestPath returns the manifest location for a project root.
func ManifestPath(root string) string {
	return filepath.Join(root, ManifestFile)
}

// TargetDir returns the directory holding every profile's build state.
func TargetDir(root string) string {
	return filepath.Join(root, TargetDirName)
}

// CompileDatabaseLink returns the location of the top-level symlink.
func CompileDatabaseLink(root string) string {
	return filepath.Join(root, CompileDatabaseFile)
}
