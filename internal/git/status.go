package git

import (
	"context"
	"strings"
)

// StatusEntry is one line of git status --porcelain output.
type StatusEntry struct {
	Staged   byte // index status code
	Unstaged byte // working tree status code
	Path     string
}

// Modified reports whether the entry is a plain in-place modification,
// with no add/delete/rename/untracked component.
func (e StatusEntry) Modified() bool {
	ok := func(c byte) bool { return c == 'M' || c == ' ' }
	return ok(e.Staged) && ok(e.Unstaged) && !(e.Staged == ' ' && e.Unstaged == ' ')
}

// Status returns the porcelain status of the working tree.
func (c *Client) Status(ctx context.Context, repoPath string) ([]StatusEntry, error) {
	out, err := c.gitOutput(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseStatus(string(out)), nil
}

// parseStatus parses porcelain v1 output: two status characters, a
// space, then the path. Renames carry "old -> new"; the new path is
// kept since that is what exists in the working tree.
func parseStatus(out string) []StatusEntry {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		path := line[3:]
		if idx := strings.Index(path, " -> "); idx != -1 {
			path = path[idx+4:]
		}
		path = strings.Trim(path, `"`)
		entries = append(entries, StatusEntry{
			Staged:   line[0],
			Unstaged: line[1],
			Path:     path,
		})
	}
	return entries
}
