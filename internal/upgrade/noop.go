package upgrade

import "github.com/raphi011/bump/internal/git"

// noopPaths are the low-significance bookkeeping files whose in-place
// modification alone is not worth a pull request.
var noopPaths = map[string]bool{
	"go.mod":             true,
	"go.sum":             true,
	"vendor/modules.txt": true,
}

// IsNoop reports whether a status consists only of in-place
// modifications to bookkeeping files. Any added, deleted, renamed or
// untracked entry, or any path outside the allow-list, disqualifies
// the change.
func IsNoop(entries []git.StatusEntry) bool {
	if len(entries) == 0 {
		return false
	}
	for _, e := range entries {
		if !noopPaths[e.Path] || !e.Modified() {
			return false
		}
	}
	return true
}
