package gomod

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/bump/internal/cmd"
)

// Tools runs the go tool's dependency mutation commands in a module
// directory.
type Tools struct {
	run cmd.Runner
}

// NewTools creates a Tools. A nil runner uses os/exec.
func NewTools(r cmd.Runner) *Tools {
	return &Tools{run: runner(r)}
}

// Get sets module to version in the manifest (go get module@version).
// The version string is passed through verbatim.
func (t *Tools) Get(ctx context.Context, dir, module, version string) error {
	if err := t.run.Run(ctx, dir, "go", "get", fmt.Sprintf("%s@%s", module, version)); err != nil {
		return fmt.Errorf("go get %s@%s: %w", module, version, err)
	}
	return nil
}

// Tidy reconciles go.mod and go.sum with the dependency graph.
func (t *Tools) Tidy(ctx context.Context, dir string) error {
	if err := t.run.Run(ctx, dir, "go", "mod", "tidy"); err != nil {
		return fmt.Errorf("go mod tidy: %w", err)
	}
	return nil
}

// Vendor regenerates the vendor directory.
func (t *Tools) Vendor(ctx context.Context, dir string) error {
	if err := t.run.Run(ctx, dir, "go", "mod", "vendor"); err != nil {
		return fmt.Errorf("go mod vendor: %w", err)
	}
	return nil
}

// HasVendor reports whether dir contains a vendor directory.
func HasVendor(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "vendor"))
	return err == nil && info.IsDir()
}
