// Package toolchain runs meson, ninja and built artifacts on behalf of the
// orchestrator.
package toolchain

import (
	"context"
)

// Stage names a step that delegates to an external process.
type Stage string

const (
	StageConfigure Stage = "configure"
	StageCompile   Stage = "compile"
	StageTest      Stage = "test"
	StageRun       Stage = "run"
)

// Runner provides an abstraction over external tool invocations for testability
//
// Every method blocks until the child exits and forwards its output live.
// The returned status is the child's exit status; a non-nil error means the
// child could not be started or did not exit normally. Nothing is retried.
type Runner interface {
	// Configure runs meson setup for dir with the given buildtype.
	Configure(ctx context.Context, root, dir, buildType string) (int, error)

	// Compile runs ninja in dir.
	Compile(ctx context.Context, root, dir string) (int, error)

	// RunTests runs meson test in dir.
	RunTests(ctx context.Context, root, dir string) (int, error)

	// Exec runs a built artifact with forwarded arguments and stdin.
	Exec(ctx context.Context, root, path string, args []string) (int, error)
}

// Programs are the executables the runner invokes.
type Programs struct {
	Meson string
	Ninja string
}

// DefaultPrograms resolves meson and ninja through PATH.
var DefaultPrograms = Programs{
	Meson: "meson",
	Ninja: "ninja",
}
