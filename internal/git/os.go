package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// OSGitClient implements GitClient using real git commands
type OSGitClient struct {
	ctx     context.Context
	program string
}

// NewOSGitClient creates a new OSGitClient
func NewOSGitClient() *OSGitClient {
	return &OSGitClient{
		ctx:     context.Background(),
		program: "git",
	}
}

// WithContext returns a new client with the given context
func (g *OSGitClient) WithContext(ctx context.Context) GitClient {
	return &OSGitClient{
		ctx:     ctx,
		program: g.program,
	}
}

// IsInsideWorkTree asks git whether dir belongs to a work tree. A missing git
// binary is an error; a plain "not a git repository" answer is not.
func (g *OSGitClient) IsInsideWorkTree(dir string) (bool, error) {
	cmd := exec.CommandContext(g.ctx, g.program, "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("failed to run git rev-parse: %w", err)
	}

	return strings.TrimSpace(out.String()) == "true", nil
}

// Init runs git init in dir
func (g *OSGitClient) Init(dir string) error {
	cmd := exec.CommandContext(g.ctx, g.program, "init", "--quiet")
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to initialize git repository in %s: %w: %s", dir, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}
