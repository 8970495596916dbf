package git

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner records invocations and serves canned output, keyed by the
// joined command line.
type fakeRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) key(dir, name string, args []string) string {
	parts := append([]string{name}, args...)
	k := strings.Join(parts, " ")
	f.calls = append(f.calls, k)
	return k
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	return f.errs[f.key(dir, name, args)]
}

func (f *fakeRunner) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	k := f.key(dir, name, args)
	if err := f.errs[k]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[k]), nil
}

func TestRemotes(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{outputs: map[string]string{
		"git -C /repo remote": "origin\nupstream\n",
	}}
	c := NewClient(f)

	remotes, err := c.Remotes(context.Background(), "/repo")
	if err != nil {
		t.Fatalf("Remotes = %v", err)
	}
	if len(remotes) != 2 || remotes[0] != "origin" || remotes[1] != "upstream" {
		t.Errorf("Remotes = %v", remotes)
	}
}

func TestRemotes_None(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{outputs: map[string]string{"git -C /repo remote": "\n"}}
	c := NewClient(f)

	remotes, err := c.Remotes(context.Background(), "/repo")
	if err != nil {
		t.Fatalf("Remotes = %v", err)
	}
	if len(remotes) != 0 {
		t.Errorf("Remotes = %v, want none", remotes)
	}
}

func TestRemoteURL(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{outputs: map[string]string{
		"git -C /repo remote get-url origin": "git@github.com:acme/svc.git\n",
	}}
	c := NewClient(f)

	url, err := c.RemoteURL(context.Background(), "/repo", "origin")
	if err != nil {
		t.Fatalf("RemoteURL = %v", err)
	}
	if url != "git@github.com:acme/svc.git" {
		t.Errorf("RemoteURL = %q", url)
	}
}

func TestRemoteURL_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("no such remote 'origin'")
	f := &fakeRunner{errs: map[string]error{
		"git -C /repo remote get-url origin": wantErr,
	}}
	c := NewClient(f)

	_, err := c.RemoteURL(context.Background(), "/repo", "origin")
	if !errors.Is(err, wantErr) {
		t.Errorf("RemoteURL error = %v, want wrapped %v", err, wantErr)
	}
}

func TestPush_Args(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{}
	c := NewClient(f)

	if err := c.Push(context.Background(), "/clone", "origin", "upgrade_lib_to_v1.3.0_1700000000"); err != nil {
		t.Fatalf("Push = %v", err)
	}
	want := "git -C /clone push -u origin upgrade_lib_to_v1.3.0_1700000000"
	if len(f.calls) != 1 || f.calls[0] != want {
		t.Errorf("calls = %v, want [%q]", f.calls, want)
	}
}

func TestClone_Args(t *testing.T) {
	t.Parallel()

	f := &fakeRunner{}
	c := NewClient(f)

	if err := c.Clone(context.Background(), "git@github.com:acme/svc.git", "/tmp/scratch"); err != nil {
		t.Fatalf("Clone = %v", err)
	}
	want := "git clone git@github.com:acme/svc.git /tmp/scratch"
	if len(f.calls) != 1 || f.calls[0] != want {
		t.Errorf("calls = %v, want [%q]", f.calls, want)
	}
}
