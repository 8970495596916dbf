package github

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeRunner struct {
	out  []byte
	err  error
	dir  string
	args []string
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	f.dir, f.args = dir, append([]string{name}, args...)
	return f.err
}

func (f *fakeRunner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	f.dir, f.args = dir, append([]string{name}, args...)
	return f.out, f.err
}

func TestCreatePR(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{out: []byte("Creating pull request for branch into main\nhttps://github.com/acme/svc/pull/42\n")}
	c := NewClient(f)

	url, err := c.CreatePR(context.Background(), "/clone", CreatePRParams{
		Title: "Upgrade lib to v1.3.0",
		Body:  "body",
	})
	if err != nil {
		t.Fatalf("CreatePR = %v", err)
	}
	if url != "https://github.com/acme/svc/pull/42" {
		t.Errorf("url = %q", url)
	}
	if f.dir != "/clone" {
		t.Errorf("ran in %q, want /clone", f.dir)
	}

	cmdline := strings.Join(f.args, " ")
	if strings.Contains(cmdline, "--base") || strings.Contains(cmdline, "--draft") {
		t.Errorf("unexpected optional flags in %q", cmdline)
	}
}

func TestCreatePR_BaseAndDraft(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{out: []byte("https://github.com/acme/svc/pull/7\n")}
	c := NewClient(f)

	_, err := c.CreatePR(context.Background(), "/clone", CreatePRParams{
		Title: "t",
		Body:  "b",
		Base:  "release-1.0",
		Draft: true,
	})
	if err != nil {
		t.Fatalf("CreatePR = %v", err)
	}

	cmdline := strings.Join(f.args, " ")
	if !strings.Contains(cmdline, "--base release-1.0") {
		t.Errorf("missing --base in %q", cmdline)
	}
	if !strings.Contains(cmdline, "--draft") {
		t.Errorf("missing --draft in %q", cmdline)
	}
}

func TestCreatePR_Failure(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("pull request create failed: HTTP 422")
	c := NewClient(&fakeRunner{err: wantErr})

	_, err := c.CreatePR(context.Background(), "/clone", CreatePRParams{Title: "t"})
	if !errors.Is(err, wantErr) {
		t.Errorf("CreatePR error = %v, want wrapped %v", err, wantErr)
	}
}

func TestCreatePR_EmptyOutput(t *testing.T) {
	t.Parallel()

	c := NewClient(&fakeRunner{out: []byte("\n\n")})
	_, err := c.CreatePR(context.Background(), "/clone", CreatePRParams{Title: "t"})
	if err == nil {
		t.Error("CreatePR = nil error on empty output")
	}
}

func TestLastLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/pr/1\n", "https://example.com/pr/1"},
		{"noise\nmore noise\nhttps://example.com/pr/2", "https://example.com/pr/2"},
		{"", ""},
		{"   \n \n", ""},
	}
	for _, tt := range tests {
		if got := lastLine(tt.in); got != tt.want {
			t.Errorf("lastLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
