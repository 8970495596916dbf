// Package github wraps the gh CLI for pull request creation.
package github

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/raphi011/bump/internal/cmd"
)

// ErrGHNotFound indicates gh CLI is not installed or not in PATH
var ErrGHNotFound = fmt.Errorf("gh not found: please install GitHub CLI (https://cli.github.com)")

// ErrNoToken indicates no GitHub token is present in the environment
var ErrNoToken = fmt.Errorf("no GitHub token: set GH_TOKEN or GITHUB_TOKEN")

// Check verifies that the gh CLI is available and a token is present in
// the environment. Runs before any repository is touched.
func Check() error {
	if _, err := exec.LookPath("gh"); err != nil {
		return ErrGHNotFound
	}
	if os.Getenv("GH_TOKEN") == "" && os.Getenv("GITHUB_TOKEN") == "" {
		return ErrNoToken
	}
	return nil
}

// CreatePRParams contains parameters for creating a pull request.
type CreatePRParams struct {
	Title string
	Body  string
	Base  string // base branch (empty = repo default)
	Draft bool
}

// Client runs gh commands through a cmd.Runner.
type Client struct {
	run cmd.Runner
}

// NewClient creates a gh client. A nil runner uses os/exec.
func NewClient(r cmd.Runner) *Client {
	if r == nil {
		r = cmd.Exec()
	}
	return &Client{run: r}
}

// CreatePR creates a pull request for the currently checked out branch
// of the repository at dir and returns its URL. gh prints the created
// PR's URL as the last line of its standard output.
func (c *Client) CreatePR(ctx context.Context, dir string, params CreatePRParams) (string, error) {
	args := []string{"pr", "create",
		"--title", params.Title,
		"--body", params.Body,
	}
	if params.Base != "" {
		args = append(args, "--base", params.Base)
	}
	if params.Draft {
		args = append(args, "--draft")
	}

	out, err := c.run.Output(ctx, dir, "gh", args...)
	if err != nil {
		return "", fmt.Errorf("gh pr create: %w", err)
	}

	url := lastLine(string(out))
	if url == "" {
		return "", fmt.Errorf("gh pr create returned no URL")
	}
	return url, nil
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
