// Package orchestrator implements carton's commands on top of the project
// locator, profile store, tool runner and compile database linker.
//
// Every operation re-reads the filesystem; nothing is remembered between
// invocations. The presence of target/<profile> is the only record of
// whether meson has configured a profile.
package orchestrator

import (
	"io"
	"os"

	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/git"
	"github.com/jakoblorz/carton/internal/scaffold"
	"github.com/jakoblorz/carton/internal/toolchain"
	"go.uber.org/zap"
)

// Orchestrator runs carton's commands
type Orchestrator struct {
	fs     filesystem.FileSystem
	runner toolchain.Runner
	git    git.GitClient
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithOutput sets where progress lines and warnings are written.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(o *Orchestrator) {
		o.stdout = stdout
		o.stderr = stderr
	}
}

// New creates an Orchestrator
func New(fs filesystem.FileSystem, runner toolchain.Runner, gitClient git.GitClient, options ...Option) *Orchestrator {
	o := &Orchestrator{
		fs:     fs,
		runner: runner,
		git:    gitClient,
		logger: zap.NewNop(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, option := range options {
		option(o)
	}
	return o
}

func (o *Orchestrator) materializer() (*scaffold.Materializer, error) {
	return scaffold.NewMaterializer(o.fs)
}
