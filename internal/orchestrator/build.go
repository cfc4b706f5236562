package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/linker"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/jakoblorz/carton/internal/profile"
	"github.com/jakoblorz/carton/internal/toolchain"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/jakoblorz/carton/internal/workspace"
	"go.uber.org/zap"
)

// Build configures the profile's build directory if it does not exist yet,
// compiles it and points compile_commands.json at its database.
func (o *Orchestrator) Build(ctx context.Context, p models.Profile) error {
	ws, err := o.detect()
	if err != nil {
		return err
	}
	return o.build(ctx, ws, profile.Resolve(p))
}

// Test runs the test suite in the debug build directory, building it first
// when it has never been configured.
func (o *Orchestrator) Test(ctx context.Context) error {
	ws, err := o.detect()
	if err != nil {
		return err
	}

	layout := profile.Resolve(models.ProfileDebug)
	if !profile.IsConfigured(o.fs, ws.RootPath, layout.Dir) {
		if err := o.build(ctx, ws, layout); err != nil {
			return err
		}
	}

	tui.Status(o.stdout, "Testing", "%s (%s)", describe(ws.Manifest), layout.Dir)
	status, err := o.runner.RunTests(ctx, ws.RootPath, layout.Dir)
	if err != nil {
		return cerrors.Wrap(cerrors.TestsFailed, err, "failed to run meson test")
	}
	if status != 0 {
		return cerrors.ToolFailure(cerrors.TestsFailed, string(toolchain.StageTest), status,
			"test failed (exit status: %d), see %s for the full log", status, layout.TestLog())
	}
	return nil
}

// Run builds a binary project and executes its artifact with args. The
// artifact's non-zero exit status is carried by the returned error.
func (o *Orchestrator) Run(ctx context.Context, p models.Profile, args []string) error {
	ws, err := o.detect()
	if err != nil {
		return err
	}
	if !ws.Manifest.Kind.Runnable() {
		return cerrors.New(cerrors.NotRunnable,
			"a bin target must be available for `carton run`: `%s` is a %s",
			ws.Manifest.Name, ws.Manifest.Kind.Describe())
	}

	layout := profile.Resolve(p)
	if err := o.build(ctx, ws, layout); err != nil {
		return err
	}

	artifact := layout.Artifact(ws.Manifest.Name)
	invocation := strings.Join(append([]string{artifact}, args...), " ")
	tui.Status(o.stdout, "Running", "`%s`", invocation)

	status, err := o.runner.Exec(ctx, ws.RootPath, artifact, args)
	if err != nil {
		return cerrors.Wrap(cerrors.ArtifactFailed, err, "could not execute process `%s`", invocation)
	}
	if status != 0 {
		return cerrors.ToolFailure(cerrors.ArtifactFailed, string(toolchain.StageRun), status,
			"process didn't exit successfully: `%s` (exit status: %d)", invocation, status)
	}
	return nil
}

func (o *Orchestrator) detect() (*workspace.Workspace, error) {
	ws := workspace.New(o.fs)
	if err := ws.Detect(); err != nil {
		return nil, err
	}
	return ws, nil
}

func (o *Orchestrator) build(ctx context.Context, ws *workspace.Workspace, layout profile.Layout) error {
	start := time.Now()
	root := ws.RootPath

	configured := profile.IsConfigured(o.fs, root, layout.Dir)
	o.logger.Debug("Resolved profile",
		zap.String("profile", layout.Profile.String()),
		zap.String("dir", layout.Dir),
		zap.Bool("configured", configured))

	if !configured {
		tui.Status(o.stdout, "Configuring", "%s (%s)", describe(ws.Manifest), layout.Dir)
		status, err := o.runner.Configure(ctx, root, layout.Dir, layout.BuildType)
		if err != nil {
			return cerrors.Wrap(cerrors.ConfigureFailed, err, "failed to run meson setup for %s", layout.Dir)
		}
		if status != 0 {
			return cerrors.ToolFailure(cerrors.ConfigureFailed, string(toolchain.StageConfigure), status,
				"meson setup for %s failed (exit status: %d)", layout.Dir, status)
		}
	}

	tui.Status(o.stdout, "Compiling", "%s (%s)", describe(ws.Manifest), root)
	status, err := o.runner.Compile(ctx, root, layout.Dir)
	if err != nil {
		return cerrors.Wrap(cerrors.CompileFailed, err, "failed to run ninja in %s", layout.Dir)
	}
	if status != 0 {
		return cerrors.ToolFailure(cerrors.CompileFailed, string(toolchain.StageCompile), status,
			"could not compile `%s` (exit status: %d)", ws.Manifest.Name, status)
	}

	link := workspace.CompileDatabaseLink(root)
	if err := linker.Relink(o.fs, layout.CompileDatabase(), link); err != nil {
		return err
	}
	o.logger.Debug("Relinked compile database",
		zap.String("link", link),
		zap.String("target", layout.CompileDatabase()))

	tui.Status(o.stdout, "Finished", "`%s` profile %s target(s) in %.2fs",
		layout.Profile, layout.Profile.Description(), time.Since(start).Seconds())
	return nil
}

func describe(m *models.Manifest) string {
	if m.Version == "" {
		return m.Name
	}
	return fmt.Sprintf("%s v%s", m.Name, strings.TrimPrefix(m.Version, "v"))
}
