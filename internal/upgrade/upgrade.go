// Package upgrade implements the dependency upgrade pipeline: discover
// repositories, bump the dependency in a scratch clone, and open a pull
// request for the change.
package upgrade

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/atotto/clipboard"

	"github.com/raphi011/bump/internal/cmd"
	"github.com/raphi011/bump/internal/git"
	"github.com/raphi011/bump/internal/github"
	"github.com/raphi011/bump/internal/gomod"
	"github.com/raphi011/bump/internal/log"
	"github.com/raphi011/bump/internal/output"
	"github.com/raphi011/bump/internal/ui/prompt"
)

// Config is the immutable per-run configuration. Constructed once from
// flags and passed explicitly; nothing reads it from global state.
type Config struct {
	Module         string // module path as declared in go.mod
	Version        string // target version, passed verbatim to go get
	SearchRoot     string // discovery root
	TargetBranch   string // base branch for the PR (empty = repo default)
	Reference      string // free-text reference included in the PR body
	Draft          bool   // open the PR as a draft
	UpgradeAll     bool   // skip the per-repository confirmation
	AlwaysSkipNoop bool   // never ask about no-op changes, always skip
}

// errSkipRepo marks expected, repository-local skip conditions. The run
// continues with the next repository; nothing was mutated.
var errSkipRepo = errors.New("repository skipped")

func skipf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, errSkipRepo)...)
}

// Runner drives the pipeline. Zero-value fields are filled in by
// NewRunner; tests construct it with fakes.
type Runner struct {
	Config   Config
	Git      *git.Client
	GitHub   *github.Client
	Tools    *gomod.Tools
	Versions gomod.VersionReader
	Choose   prompt.Chooser

	// OpenURL opens a URL in the user's browser. Failures are
	// surfaced but never fatal. Nil disables.
	OpenURL func(url string) error

	// CopyURL copies a URL to the clipboard, best effort. Nil disables.
	CopyURL func(url string) error

	// now stamps branch names; overridden in tests.
	now func() time.Time
}

// NewRunner wires a Runner with real collaborators.
func NewRunner(cfg Config, r cmd.Runner, choose prompt.Chooser, openURL func(string) error) *Runner {
	return &Runner{
		Config:   cfg,
		Git:      git.NewClient(r),
		GitHub:   github.NewClient(r),
		Tools:    gomod.NewTools(r),
		Versions: gomod.NewVersionReader(r),
		Choose:   choose,
		OpenURL:  openURL,
		CopyURL:  clipboard.WriteAll,
		now:      time.Now,
	}
}

// Run processes every repository under the search root, strictly
// sequentially. Skip conditions advance to the next repository; any
// hard failure aborts the run.
func (r *Runner) Run(ctx context.Context) error {
	l := log.FromContext(ctx)

	repos, err := git.FindRepositories(r.Config.SearchRoot)
	if err != nil {
		return fmt.Errorf("scan %s: %w", r.Config.SearchRoot, err)
	}
	l.Debug("discovery", "root", r.Config.SearchRoot, "repos", len(repos))

	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := r.processRepo(ctx, repo)
		if errors.Is(err, errSkipRepo) {
			l.Printf("%s: %v\n", repo, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", repo, err)
		}
	}
	return nil
}

// processRepo runs the skip checks against the user's working copy.
// All of them happen before any mutation, so a skip leaves nothing
// behind.
func (r *Runner) processRepo(ctx context.Context, repoPath string) error {
	current, err := r.Versions.Version(ctx, repoPath, r.Config.Module)
	switch {
	case errors.Is(err, gomod.ErrNoManifest):
		return skipf("no manifest")
	case errors.Is(err, gomod.ErrNotRequired):
		return skipf("does not require %s", r.Config.Module)
	case err != nil:
		return err
	}

	if current == r.Config.Version {
		return skipf("already at %s", r.Config.Version)
	}

	if !r.Config.UpgradeAll {
		q := fmt.Sprintf("Upgrade %s from %s to %s in %s?",
			r.Config.Module, current, r.Config.Version, repoPath)
		choice, err := r.Choose.Choose(q, []string{"upgrade", "skip"})
		if err != nil {
			return err
		}
		if choice.Cancelled || choice.Index != 0 {
			return skipf("declined")
		}
	}

	return r.upgrade(ctx, repoPath)
}

// upgrade performs the mutation in a scratch clone of the repository's
// remote. The clone is removed on every path; the user's working copy
// is never touched, and the remote is only mutated by the final push.
func (r *Runner) upgrade(ctx context.Context, repoPath string) error {
	l := log.FromContext(ctx)
	cfg := r.Config

	remotes, err := r.Git.Remotes(ctx, repoPath)
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		return fmt.Errorf("no remote configured")
	}
	remote := remotes[0]
	if len(remotes) > 1 {
		// Known limitation: the first listed remote wins.
		l.Debug("multiple remotes", "using", remote, "count", len(remotes))
	}

	remoteURL, err := r.Git.RemoteURL(ctx, repoPath, remote)
	if err != nil {
		return err
	}

	scratch, err := os.MkdirTemp("", "bump-*")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	l.Printf("Cloning %s...\n", remoteURL)
	if err := r.Git.Clone(ctx, remoteURL, scratch); err != nil {
		return fmt.Errorf("clone %s: %w", remoteURL, err)
	}

	// The clone may be ahead of the working copy (different branch
	// checked out, newer history), so re-read the version from it.
	current, err := r.Versions.Version(ctx, scratch, cfg.Module)
	switch {
	case errors.Is(err, gomod.ErrNoManifest), errors.Is(err, gomod.ErrNotRequired):
		return skipf("clone does not require %s", cfg.Module)
	case err != nil:
		return err
	}
	if current == cfg.Version {
		return skipf("clone already at %s", cfg.Version)
	}

	branch := BranchName(cfg.Module, cfg.Version, r.now())
	if err := r.Git.CreateBranch(ctx, scratch, branch); err != nil {
		return err
	}

	l.Printf("Upgrading %s %s -> %s...\n", cfg.Module, current, cfg.Version)
	if err := r.Tools.Get(ctx, scratch, cfg.Module, cfg.Version); err != nil {
		return err
	}
	if err := r.Tools.Tidy(ctx, scratch); err != nil {
		return err
	}
	if gomod.HasVendor(scratch) {
		if err := r.Tools.Vendor(ctx, scratch); err != nil {
			return err
		}
		// Vendoring can alter indirect dependency bookkeeping.
		if err := r.Tools.Tidy(ctx, scratch); err != nil {
			return err
		}
	}

	entries, err := r.Git.Status(ctx, scratch)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return skipf("upgrade produced no changes")
	}
	if IsNoop(entries) {
		if cfg.AlwaysSkipNoop {
			return skipf("only bookkeeping files changed")
		}
		q := fmt.Sprintf("Only bookkeeping files changed in %s. Open a PR anyway?", repoPath)
		choice, err := r.Choose.Choose(q, []string{"upgrade", "skip"})
		if err != nil {
			return err
		}
		if choice.Cancelled || choice.Index != 0 {
			return skipf("only bookkeeping files changed")
		}
	}

	if err := r.Git.AddAll(ctx, scratch); err != nil {
		return err
	}
	message := fmt.Sprintf("Upgrade %s to %s", cfg.Module, cfg.Version)
	if err := r.Git.Commit(ctx, scratch, message); err != nil {
		return err
	}

	l.Printf("Pushing %s...\n", branch)
	if err := r.Git.Push(ctx, scratch, remote, branch); err != nil {
		return err
	}

	return r.publish(ctx, scratch, current)
}

// publish opens the pull request. The branch is already pushed, so a
// failure here leaves an unreviewed branch behind; that is surfaced as
// a hard error rather than auto-corrected.
func (r *Runner) publish(ctx context.Context, clone, currentVersion string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)
	cfg := r.Config

	title := fmt.Sprintf("Upgrade %s to %s", path.Base(cfg.Module), cfg.Version)
	url, err := r.GitHub.CreatePR(ctx, clone, github.CreatePRParams{
		Title: title,
		Body:  PRBody(cfg, currentVersion),
		Base:  cfg.TargetBranch,
		Draft: cfg.Draft,
	})
	if err != nil {
		return fmt.Errorf("create PR (branch is already pushed): %w", err)
	}

	out.Successf("Created %s", url)

	if r.CopyURL != nil {
		if err := r.CopyURL(url); err != nil {
			l.Debug("clipboard copy failed", "err", err)
		}
	}
	if r.OpenURL != nil {
		if err := r.OpenURL(url); err != nil {
			l.Printf("could not open browser: %v\n", err)
		}
	}
	return nil
}

// PRBody renders the pull request description.
func PRBody(cfg Config, currentVersion string) string {
	reference := cfg.Reference
	if reference == "" {
		reference = "-"
	}
	return fmt.Sprintf(`Automated dependency upgrade created with bump.

| | |
| --- | --- |
| Module | %s |
| Current version | %s |
| Upgraded version | %s |
| Reference | %s |
`, cfg.Module, currentVersion, cfg.Version, reference)
}
