package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `search_root = "/home/dev/src"
draft = true
plain_prompt = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom = %v", err)
	}
	if cfg.SearchRoot != "/home/dev/src" {
		t.Errorf("SearchRoot = %q", cfg.SearchRoot)
	}
	if !cfg.Draft {
		t.Error("Draft = false, want true")
	}
	if !cfg.PlainPrompt {
		t.Error("PlainPrompt = false, want true")
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("search_root = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom invalid file = nil, want error")
	}
}
