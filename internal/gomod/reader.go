// Package gomod wraps the go CLI for module manifest inspection and
// dependency upgrades.
package gomod

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/raphi011/bump/internal/cmd"
)

// ErrNoManifest indicates the repository has no go.mod file.
var ErrNoManifest = fmt.Errorf("no go.mod found")

// ErrNotRequired indicates the module is not declared as a dependency.
var ErrNotRequired = fmt.Errorf("module not required")

// VersionReader reports the version of a module currently required by
// the manifest in dir.
type VersionReader interface {
	Version(ctx context.Context, dir, module string) (string, error)
}

// NewVersionReader picks the introspection-backed reader when the go
// tool is available, falling back to the best-effort line scanner.
// The choice is made once at startup.
func NewVersionReader(r cmd.Runner) VersionReader {
	if _, err := exec.LookPath("go"); err == nil {
		return &EditReader{run: runner(r)}
	}
	return &ScanReader{}
}

func runner(r cmd.Runner) cmd.Runner {
	if r == nil {
		return cmd.Exec()
	}
	return r
}

func manifestPath(dir string) (string, error) {
	path := filepath.Join(dir, "go.mod")
	if _, err := os.Stat(path); err != nil {
		return "", ErrNoManifest
	}
	return path, nil
}

// EditReader reads dependency versions through go mod edit -json.
// This is the authoritative strategy: the go tool parses the manifest
// itself and reports the require list as JSON.
type EditReader struct {
	run cmd.Runner
}

// NewEditReader creates an EditReader. A nil runner uses os/exec.
func NewEditReader(r cmd.Runner) *EditReader {
	return &EditReader{run: runner(r)}
}

func (e *EditReader) Version(ctx context.Context, dir, module string) (string, error) {
	if _, err := manifestPath(dir); err != nil {
		return "", err
	}

	out, err := e.run.Output(ctx, dir, "go", "mod", "edit", "-json")
	if err != nil {
		return "", fmt.Errorf("go mod edit -json: %w", err)
	}

	var manifest struct {
		Module struct {
			Path string
		}
		Require []struct {
			Path    string
			Version string
		}
	}
	if err := json.Unmarshal(out, &manifest); err != nil {
		return "", fmt.Errorf("parse go mod edit output: %w", err)
	}

	for _, req := range manifest.Require {
		if req.Path != module {
			continue
		}
		if req.Version == "" {
			return "", fmt.Errorf("module %s has no version in manifest", module)
		}
		return req.Version, nil
	}
	return "", ErrNotRequired
}

// ScanReader reads dependency versions with a line-oriented scan of
// go.mod. Best effort only: it understands single-line requires and
// require ( ... ) groups, but not every manifest syntax. Prefer
// EditReader whenever the go tool is installed.
type ScanReader struct{}

func (s *ScanReader) Version(ctx context.Context, dir, module string) (string, error) {
	path, err := manifestPath(dir)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	inRequire := false
	for _, line := range strings.Split(string(data), "\n") {
		if idx := strings.Index(line, "//"); idx != -1 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if inRequire {
			if fields[0] == ")" {
				inRequire = false
				continue
			}
		} else {
			if fields[0] != "require" {
				// Skips module/go/replace/exclude declarations, so the
				// module's own identity is never mistaken for a
				// requirement.
				continue
			}
			fields = fields[1:]
			if len(fields) == 1 && fields[0] == "(" {
				inRequire = true
				continue
			}
		}

		if len(fields) >= 2 && fields[0] == module {
			return fields[1], nil
		}
	}
	return "", ErrNotRequired
}
