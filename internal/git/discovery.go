package git

import (
	"os"
	"path/filepath"
	"sort"
)

// FindRepositories walks the tree rooted at root and returns the paths
// of all git repository roots, in depth-first lexicographic order.
// Once a repository root is found its subtree is not descended into, so
// nested repositories are never reported. Unreadable directories are
// skipped silently.
func FindRepositories(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var repos []string
	walk(root, &repos)
	return repos, nil
}

func walk(dir string, repos *[]string) {
	if isGitRepo(dir) {
		*repos = append(*repos, dir)
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		walk(filepath.Join(dir, entry.Name()), repos)
	}
}

// isGitRepo checks if a path is a git repository (has .git dir or file)
func isGitRepo(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree)
	return info.IsDir() || info.Mode().IsRegular()
}
