// Package git wraps the git CLI.
//
// All operations shell out to git and parse its textual output only
// superficially (line splitting). Commands run with -C <dir> so the
// process working directory never changes.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/bump/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// Check verifies that git is available in PATH
func Check() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// Client runs git commands through a cmd.Runner.
type Client struct {
	run cmd.Runner
}

// NewClient creates a git client. A nil runner uses os/exec.
func NewClient(r cmd.Runner) *Client {
	if r == nil {
		r = cmd.Exec()
	}
	return &Client{run: r}
}

// gitArgs prepends -C <dir> to args if dir is non-empty.
func gitArgs(dir string, args []string) []string {
	if dir == "" {
		return args
	}
	return append([]string{"-C", dir}, args...)
}

func (c *Client) git(ctx context.Context, dir string, args ...string) error {
	return c.run.Run(ctx, "", "git", gitArgs(dir, args)...)
}

func (c *Client) gitOutput(ctx context.Context, dir string, args ...string) ([]byte, error) {
	return c.run.Output(ctx, "", "git", gitArgs(dir, args)...)
}

// Remotes lists the configured remote names for a repository.
func (c *Client) Remotes(ctx context.Context, repoPath string) ([]string, error) {
	out, err := c.gitOutput(ctx, repoPath, "remote")
	if err != nil {
		return nil, fmt.Errorf("list remotes: %w", err)
	}
	var remotes []string
	for _, line := range strings.Split(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			remotes = append(remotes, line)
		}
	}
	return remotes, nil
}

// RemoteURL returns the fetch URL for a remote.
func (c *Client) RemoteURL(ctx context.Context, repoPath, remote string) (string, error) {
	out, err := c.gitOutput(ctx, repoPath, "remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("get url for remote %s: %w", remote, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Clone clones url into dir.
func (c *Client) Clone(ctx context.Context, url, dir string) error {
	return c.git(ctx, "", "clone", url, dir)
}

// CreateBranch creates and checks out a new branch.
func (c *Client) CreateBranch(ctx context.Context, repoPath, branch string) error {
	return c.git(ctx, repoPath, "checkout", "-b", branch)
}

// AddAll stages all changes in the working tree.
func (c *Client) AddAll(ctx context.Context, repoPath string) error {
	return c.git(ctx, repoPath, "add", "-A")
}

// Commit records staged changes with the given message.
func (c *Client) Commit(ctx context.Context, repoPath, message string) error {
	return c.git(ctx, repoPath, "commit", "-m", message)
}

// Push pushes branch to remote, establishing upstream tracking.
func (c *Client) Push(ctx context.Context, repoPath, remote, branch string) error {
	return c.git(ctx, repoPath, "push", "-u", remote, branch)
}
