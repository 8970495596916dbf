package git

import (
	"os"
	"path/filepath"
	"testing"
)

// mkRepo creates dir and a .git subdirectory underneath it.
func mkRepo(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestFindRepositories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkRepo(t, filepath.Join(root, "b-repo"))
	mkRepo(t, filepath.Join(root, "a-group", "inner"))
	if err := os.MkdirAll(filepath.Join(root, "z-empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	repos, err := FindRepositories(root)
	if err != nil {
		t.Fatalf("FindRepositories = %v", err)
	}

	want := []string{
		filepath.Join(root, "a-group", "inner"),
		filepath.Join(root, "b-repo"),
	}
	if len(repos) != len(want) {
		t.Fatalf("found %d repos %v, want %d", len(repos), repos, len(want))
	}
	for i := range want {
		if repos[i] != want[i] {
			t.Errorf("repos[%d] = %q, want %q", i, repos[i], want[i])
		}
	}
}

func TestFindRepositories_NestedNotDescended(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outer := filepath.Join(root, "outer")
	mkRepo(t, outer)
	mkRepo(t, filepath.Join(outer, "vendor", "nested"))

	repos, err := FindRepositories(root)
	if err != nil {
		t.Fatalf("FindRepositories = %v", err)
	}
	if len(repos) != 1 || repos[0] != outer {
		t.Errorf("repos = %v, want only %q", repos, outer)
	}
}

func TestFindRepositories_RootIsRepo(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkRepo(t, root)
	mkRepo(t, filepath.Join(root, "sub"))

	repos, err := FindRepositories(root)
	if err != nil {
		t.Fatalf("FindRepositories = %v", err)
	}
	if len(repos) != 1 || repos[0] != root {
		t.Errorf("repos = %v, want only the root", repos)
	}
}

func TestFindRepositories_GitFile(t *testing.T) {
	t.Parallel()

	// Worktrees have a .git file instead of a directory.
	root := t.TempDir()
	wt := filepath.Join(root, "worktree")
	if err := os.MkdirAll(wt, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: elsewhere\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	repos, err := FindRepositories(root)
	if err != nil {
		t.Fatalf("FindRepositories = %v", err)
	}
	if len(repos) != 1 || repos[0] != wt {
		t.Errorf("repos = %v, want %q", repos, wt)
	}
}

func TestFindRepositories_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := FindRepositories(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("FindRepositories on missing root = nil, want error")
	}
}
