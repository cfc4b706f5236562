package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.uber.org/zap"
)

var _ Runner = (*OSRunner)(nil)

// OSRunner implements Runner by spawning real processes
type OSRunner struct {
	programs Programs
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	logger   *zap.Logger
}

// Option configures an OSRunner.
type Option func(*OSRunner)

// WithPrograms overrides the meson and ninja executables.
func WithPrograms(p Programs) Option {
	return func(r *OSRunner) {
		r.programs = p
	}
}

// WithStdio overrides where child processes read and write.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *OSRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger sets the logger used for invocation traces.
func WithLogger(logger *zap.Logger) Option {
	return func(r *OSRunner) {
		r.logger = logger
	}
}

// NewOSRunner creates a runner that forwards the process's own stdio
func NewOSRunner(options ...Option) *OSRunner {
	r := &OSRunner{
		programs: DefaultPrograms,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *OSRunner) Configure(ctx context.Context, root, dir, buildType string) (int, error) {
	return r.run(ctx, root, false, r.programs.Meson, "setup", fmt.Sprintf("-Dbuildtype=%s", buildType), dir)
}

func (r *OSRunner) Compile(ctx context.Context, root, dir string) (int, error) {
	return r.run(ctx, root, false, r.programs.Ninja, "-C", dir)
}

func (r *OSRunner) RunTests(ctx context.Context, root, dir string) (int, error) {
	return r.run(ctx, root, false, r.programs.Meson, "test", "-C", dir)
}

func (r *OSRunner) Exec(ctx context.Context, root, path string, args []string) (int, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	return r.run(ctx, root, true, path, args...)
}

// run starts name in root and waits for it. Only the artifact gets stdin;
// meson and ninja never read it.
func (r *OSRunner) run(ctx context.Context, root string, withStdin bool, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = root
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if withStdin {
		cmd.Stdin = r.stdin
	}

	r.logger.Debug("Spawning process",
		zap.String("program", name),
		zap.Strings("args", args),
		zap.String("dir", root))

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status := exitErr.ExitCode()
		r.logger.Debug("Process exited", zap.String("program", name), zap.Int("status", status))
		if status < 0 {
			return status, fmt.Errorf("%s terminated abnormally: %w", name, err)
		}
		return status, nil
	}

	return -1, fmt.Errorf("failed to start %s: %w", name, err)
}
