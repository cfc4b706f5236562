package cli

import (
	"fmt"
	"os"

	"github.com/jakoblorz/carton/internal/filesystem"
	"github.com/jakoblorz/carton/internal/git"
	"github.com/jakoblorz/carton/internal/logging"
	"github.com/jakoblorz/carton/internal/models"
	"github.com/jakoblorz/carton/internal/orchestrator"
	"github.com/jakoblorz/carton/internal/toolchain"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// KindPrompter asks the user which template to create.
type KindPrompter interface {
	Run(path string) (models.ProjectKind, error)
}

// app holds what every command shares. Values that depend on global flags
// are filled in by init once cobra has parsed them.
type app struct {
	fs         filesystem.FileSystem
	git        git.GitClient
	runner     toolchain.Runner
	lookPath   toolchain.LookPathFunc
	prompt     KindPrompter
	isTerminal func() bool
	version    string

	verbose bool
	logger  *zap.Logger
}

// Option configures the root command's dependencies.
type Option func(*app)

// WithRunner replaces the process runner.
func WithRunner(runner toolchain.Runner) Option {
	return func(a *app) {
		a.runner = runner
	}
}

// WithLookPath replaces the PATH lookup used by doctor.
func WithLookPath(lookPath toolchain.LookPathFunc) Option {
	return func(a *app) {
		a.lookPath = lookPath
	}
}

// WithPrompt replaces the interactive kind prompt and reports stdin as a
// terminal.
func WithPrompt(prompt KindPrompter) Option {
	return func(a *app) {
		a.prompt = prompt
		a.isTerminal = func() bool { return true }
	}
}

// WithVersion sets the string printed by --version.
func WithVersion(version string) Option {
	return func(a *app) {
		a.version = version
	}
}

func newApp(fs filesystem.FileSystem, gitClient git.GitClient, options ...Option) *app {
	a := &app{
		fs:     fs,
		git:    gitClient,
		prompt: tui.NewKindPrompt(),
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		version: "dev",
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *app) init() error {
	logger, err := logging.New(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if a.runner == nil {
		a.runner = toolchain.NewOSRunner(toolchain.WithLogger(logger))
	}
	return nil
}

func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) orchestrator(cmd *cobra.Command) *orchestrator.Orchestrator {
	return orchestrator.New(a.fs, a.runner, a.git,
		orchestrator.WithLogger(a.logger),
		orchestrator.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()))
}
