package git

import (
	"context"
)

// GitClient provides an abstraction over git operations for testability
//
// Only the two operations project creation needs are exposed: checking
// whether a directory already belongs to a work tree, and initializing a
// fresh repository.
type GitClient interface {
	// IsInsideWorkTree reports whether dir is inside an existing git work tree.
	IsInsideWorkTree(dir string) (bool, error)

	// Init creates an empty repository in dir.
	Init(dir string) error

	// WithContext returns a client bound to ctx.
	WithContext(ctx context.Context) GitClient
}
