package git

import (
	"context"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MockGitClient implements GitClient for testing. It tracks repository
// roots in memory; a directory is inside a work tree when it equals or is
// nested below one of them.
type MockGitClient struct {
	mu    sync.RWMutex
	repos map[string]bool
	ctx   context.Context

	// Hooks for testing error scenarios
	InitError             error
	IsInsideWorkTreeError error
}

// NewMockGitClient creates a new MockGitClient with no repositories
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		repos: make(map[string]bool),
		ctx:   context.Background(),
	}
}

// WithContext returns the same mock; state is shared
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctx = ctx
	return m
}

// AddRepo registers dir as an existing repository root
func (m *MockGitClient) AddRepo(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repos[filepath.Clean(dir)] = true
}

func (m *MockGitClient) IsInsideWorkTree(dir string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.IsInsideWorkTreeError != nil {
		return false, m.IsInsideWorkTreeError
	}

	dir = filepath.Clean(dir)
	for root := range m.repos {
		if dir == root || strings.HasPrefix(dir, root+string(filepath.Separator)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockGitClient) Init(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InitError != nil {
		return m.InitError
	}
	m.repos[filepath.Clean(dir)] = true
	return nil
}

// Repos returns the registered repository roots, sorted
func (m *MockGitClient) Repos() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	repos := make([]string, 0, len(m.repos))
	for root := range m.repos {
		repos = append(repos, root)
	}
	sort.Strings(repos)
	return repos
}
