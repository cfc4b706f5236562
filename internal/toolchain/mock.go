package toolchain

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/jakoblorz/carton/internal/filesystem"
)

// Call records one invocation of the mock runner.
type Call struct {
	Stage     Stage
	Root      string
	Dir       string
	BuildType string
	Path      string
	Args      []string
}

// MockRunner implements Runner for testing. When given a filesystem it
// creates the state meson would: configure produces the build directory and
// its compile database.
type MockRunner struct {
	mu    sync.Mutex
	fs    *filesystem.MockFileSystem
	calls []Call

	// ExitStatus programs a stage to exit non-zero
	ExitStatus map[Stage]int

	// Errors programs a stage to fail to start
	Errors map[Stage]error
}

// NewMockRunner creates a new MockRunner. fs may be nil.
func NewMockRunner(fs *filesystem.MockFileSystem) *MockRunner {
	return &MockRunner{
		fs:         fs,
		ExitStatus: make(map[Stage]int),
		Errors:     make(map[Stage]error),
	}
}

func (m *MockRunner) record(call Call) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, call)
	if err, ok := m.Errors[call.Stage]; ok {
		return -1, err
	}
	return m.ExitStatus[call.Stage], nil
}

func (m *MockRunner) Configure(ctx context.Context, root, dir, buildType string) (int, error) {
	status, err := m.record(Call{Stage: StageConfigure, Root: root, Dir: dir, BuildType: buildType})
	if err != nil || status != 0 {
		return status, err
	}

	if m.fs != nil {
		buildDir := filepath.Join(root, dir)
		m.fs.AddFile(filepath.Join(buildDir, "build.ninja"), []byte("# generated\n"))
		m.fs.AddFile(filepath.Join(buildDir, "compile_commands.json"), []byte("[]\n"))
	}
	return 0, nil
}

func (m *MockRunner) Compile(ctx context.Context, root, dir string) (int, error) {
	return m.record(Call{Stage: StageCompile, Root: root, Dir: dir})
}

func (m *MockRunner) RunTests(ctx context.Context, root, dir string) (int, error) {
	return m.record(Call{Stage: StageTest, Root: root, Dir: dir})
}

func (m *MockRunner) Exec(ctx context.Context, root, path string, args []string) (int, error) {
	return m.record(Call{Stage: StageRun, Root: root, Path: path, Args: append([]string(nil), args...)})
}

// Calls returns every recorded invocation in order
func (m *MockRunner) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Count returns how many times a stage was invoked
func (m *MockRunner) Count(stage Stage) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.calls {
		if c.Stage == stage {
			n++
		}
	}
	return n
}

// Stages returns the invoked stages in order
func (m *MockRunner) Stages() []Stage {
	m.mu.Lock()
	defer m.mu.Unlock()

	stages := make([]Stage, len(m.calls))
	for i, c := range m.calls {
		stages[i] = c.Stage
	}
	return stages
}

// Reset forgets recorded calls
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
