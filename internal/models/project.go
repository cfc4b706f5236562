package models

import "fmt"

// ProjectKind represents the template a project was created from.
type ProjectKind string

const (
	KindBinary  ProjectKind = "bin"
	KindLibrary ProjectKind = "lib"
)

// ParseProjectKind parses the manifest spelling of a kind.
func ParseProjectKind(s string) (ProjectKind, error) {
	switch ProjectKind(s) {
	case KindBinary:
		return KindBinary, nil
	case KindLibrary:
		return KindLibrary, nil
	}
	return "", fmt.Errorf("unsupported project kind %q (expected %q or %q)", s, KindBinary, KindLibrary)
}

// Describe returns the word used in user-facing messages.
func (k ProjectKind) Describe() string {
	switch k {
	case KindLibrary:
		return "library"
	default:
		return "binary (application)"
	}
}

// Runnable reports whether projects of this kind produce an executable.
func (k ProjectKind) Runnable() bool {
	return k == KindBinary
}

// Manifest is the metadata file that marks a directory as a carton project.
type Manifest struct {
	// Name is the project identifier; it names the executable or library.
	Name string

	// Kind selects between the application and library layouts.
	Kind ProjectKind

	// Version is optional and informational.
	Version string
}

// NewManifest creates a new Manifest instance
func NewManifest(name string, kind ProjectKind) *Manifest {
	return &Manifest{
		Name:    name,
		Kind:    kind,
		Version: DefaultVersion,
	}
}

// DefaultVersion is written into new manifests and build descriptions.
const DefaultVersion = "0.1.0"
