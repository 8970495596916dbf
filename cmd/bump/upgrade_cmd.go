package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/bump/internal/github"
	"github.com/raphi011/bump/internal/log"
	"github.com/raphi011/bump/internal/ui/prompt"
	"github.com/raphi011/bump/internal/upgrade"
)

func newUpgradeCmd() *cobra.Command {
	var (
		moduleName     string
		moduleVersion  string
		searchRoot     string
		targetBranch   string
		reference      string
		draft          bool
		upgradeAll     bool
		alwaysSkipNoop bool
		plain          bool
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the dependency and open pull requests",
		Args:  cobra.NoArgs,
		Long: `Upgrade a module dependency in every repository under the search root.

Each repository is processed to completion before the next begins:
confirm, clone the remote into a scratch directory, bump the dependency,
tidy, commit, push a new branch and open a pull request. Repositories
that do not require the module, or already have the target version, are
skipped.

Requires the gh CLI and a GH_TOKEN or GITHUB_TOKEN in the environment.`,
		Example: `  bump upgrade -m example.com/lib -V v1.3.0
  bump upgrade -m example.com/lib -V v1.3.0 --search-root ~/src
  bump upgrade -m example.com/lib -V v1.3.0 --upgrade-all --draft
  bump upgrade -m example.com/lib -V v1.3.0 --target-branch release-1.0 --reference JIRA-123`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			// Preflight: fail before any repository is scanned.
			if err := github.Check(); err != nil {
				return err
			}

			// Config file supplies defaults; explicit flags win.
			if !cmd.Flags().Changed("search-root") && cfg.SearchRoot != "" {
				searchRoot = cfg.SearchRoot
			}
			if !cmd.Flags().Changed("draft") && cfg.Draft {
				draft = true
			}
			if cfg.PlainPrompt {
				plain = true
			}

			l.Debug("upgrade", "module", moduleName, "version", moduleVersion, "root", searchRoot)

			runner := upgrade.NewRunner(upgrade.Config{
				Module:         moduleName,
				Version:        moduleVersion,
				SearchRoot:     searchRoot,
				TargetBranch:   targetBranch,
				Reference:      reference,
				Draft:          draft,
				UpgradeAll:     upgradeAll,
				AlwaysSkipNoop: alwaysSkipNoop,
			}, nil, prompt.New(plain), openBrowser)

			return runner.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&moduleName, "module-name", "m", "", "Module path as declared in go.mod")
	cmd.Flags().StringVarP(&moduleVersion, "module-version", "V", "", "Target version, passed verbatim to go get")
	cmd.Flags().StringVarP(&searchRoot, "search-root", "d", ".", "Directory to scan for repositories")
	cmd.Flags().StringVar(&targetBranch, "target-branch", "", "Base branch for the pull request")
	cmd.Flags().StringVar(&reference, "reference", "", "Free-text reference included in the PR body")
	cmd.Flags().BoolVar(&draft, "draft", false, "Open the pull request as a draft")
	cmd.Flags().BoolVar(&upgradeAll, "upgrade-all", false, "Upgrade every repository without prompting")
	cmd.Flags().BoolVar(&alwaysSkipNoop, "always-skip-if-no-change", false, "Skip repositories where only bookkeeping files changed, without asking")
	cmd.Flags().BoolVar(&plain, "plain", false, "Use plain line-read prompts instead of the picker")

	cmd.MarkFlagRequired("module-name")
	cmd.MarkFlagRequired("module-version")
	cmd.MarkFlagDirname("search-root")

	return cmd
}
