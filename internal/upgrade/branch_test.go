package upgrade

import (
	"strings"
	"testing"
	"time"
)

func TestBranchName(t *testing.T) {
	t.Parallel()

	ts := time.Unix(1700000000, 0)
	got := BranchName("example.com/lib", "v1.3.0", ts)
	want := "upgrade_example.com_lib_to_v1.3.0_1700000000"
	if got != want {
		t.Errorf("BranchName = %q, want %q", got, want)
	}
}

func TestBranchName_Deterministic(t *testing.T) {
	t.Parallel()

	ts := time.Unix(1700000000, 500)
	a := BranchName("example.com/lib", "v1.3.0", ts)
	b := BranchName("example.com/lib", "v1.3.0", ts)
	if a != b {
		t.Errorf("same inputs gave %q and %q", a, b)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"simple", "simple"},
		{"with space", "with_space"},
		{"user@host", "user_host"},
		{"a/b/c", "a_b_c"},
		{"v1.3.0", "v1.3.0"},
		{"MiXed123.ok", "MiXed123.ok"},
		{"tab\there", "tab_here"},
	}
	for _, tt := range tests {
		if got := sanitize(tt.in); got != tt.want {
			t.Errorf("sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitize_OnlyAllowedChars(t *testing.T) {
	t.Parallel()

	got := sanitize("weird!@#$%^&*() input/with:chars")
	for _, r := range got {
		ok := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '_'
		if !ok {
			t.Errorf("sanitize output contains %q", r)
		}
	}
	if !strings.Contains(got, "_") {
		t.Error("expected replacements in output")
	}
}
