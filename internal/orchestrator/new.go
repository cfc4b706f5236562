package orchestrator

import (
	"context"
	"path/filepath"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/jakoblorz/carton/internal/workspace"
	"go.uber.org/zap"
)

// NewProject creates a project of kind at path. The project is named after
// the last path segment. A partially written tree is left in place when a
// write fails. Version control setup never fails the operation.
func (o *Orchestrator) NewProject(ctx context.Context, kind models.ProjectKind, path string) error {
	root, err := o.absPath(path)
	if err != nil {
		return err
	}

	if o.fs.Exists(root) {
		return cerrors.New(cerrors.PathExists, "destination `%s` already exists", path)
	}

	name := filepath.Base(root)
	if err := workspace.ValidateProjectName(name); err != nil {
		return cerrors.Wrap(cerrors.InvalidProjectName, err, "cannot create a project at `%s`", path)
	}

	materializer, err := o.materializer()
	if err != nil {
		return cerrors.Wrap(cerrors.IOFailed, err, "failed to load project templates")
	}

	if err := o.fs.MkdirAll(root, 0755); err != nil {
		return cerrors.Wrap(cerrors.IOFailed, err, "failed to create `%s`", path)
	}

	written, err := materializer.Materialize(root, kind, name)
	if err != nil {
		return cerrors.Wrap(cerrors.IOFailed, err, "failed to write project files into `%s`", path)
	}
	o.logger.Debug("Materialized templates",
		zap.String("root", root),
		zap.String("kind", string(kind)),
		zap.Strings("files", written))

	o.initVCS(ctx, root)

	tui.Status(o.stdout, "Created", "%s `%s` package", kind.Describe(), name)
	return nil
}

// initVCS creates a git repository at root unless root already lives in a
// work tree. Failures are reported as warnings.
func (o *Orchestrator) initVCS(ctx context.Context, root string) {
	if o.git == nil {
		return
	}
	client := o.git.WithContext(ctx)

	inside, err := client.IsInsideWorkTree(root)
	if err != nil {
		tui.Warn(o.stderr, "skipping version control setup: %v", err)
		return
	}
	if inside {
		o.logger.Debug("Destination is inside a git work tree, not initializing", zap.String("root", root))
		return
	}

	if err := client.Init(root); err != nil {
		tui.Warn(o.stderr, "failed to initialize version control: %v", err)
	}
}

func (o *Orchestrator) absPath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	wd, err := o.fs.Getwd()
	if err != nil {
		return "", cerrors.Wrap(cerrors.IOFailed, err, "failed to get working directory")
	}
	return filepath.Join(wd, path), nil
}
