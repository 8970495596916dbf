package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/bump/internal/git"
	"github.com/raphi011/bump/internal/gomod"
	"github.com/raphi011/bump/internal/log"
	"github.com/raphi011/bump/internal/output"
	"github.com/raphi011/bump/internal/ui/styles"
)

func newScanCmd() *cobra.Command {
	var (
		moduleName string
		searchRoot string
		showAll    bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List repositories that depend on the module",
		Args:  cobra.NoArgs,
		Long: `Scan the search root for git repositories and report the version of
the module each one currently requires. Read-only: nothing is cloned,
mutated or pushed, and no gh authentication is needed.`,
		Example: `  bump scan -m example.com/lib
  bump scan -m example.com/lib -d ~/src
  bump scan -m example.com/lib --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			if !cmd.Flags().Changed("search-root") && cfg.SearchRoot != "" {
				searchRoot = cfg.SearchRoot
			}

			repos, err := git.FindRepositories(searchRoot)
			if err != nil {
				return fmt.Errorf("scan %s: %w", searchRoot, err)
			}
			l.Debug("scan", "root", searchRoot, "repos", len(repos))

			reader := gomod.NewVersionReader(nil)
			found := 0
			for _, repo := range repos {
				version, err := reader.Version(ctx, repo, moduleName)
				switch {
				case errors.Is(err, gomod.ErrNoManifest), errors.Is(err, gomod.ErrNotRequired):
					if showAll {
						out.Printf("%s  %s\n", repo, styles.MutedStyle.Render("-"))
					}
					continue
				case err != nil:
					return fmt.Errorf("%s: %w", repo, err)
				}
				found++
				out.Printf("%s  %s\n", repo, styles.PrimaryStyle.Render(version))
			}

			l.Printf("%d of %d repositories require %s\n", found, len(repos), moduleName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&moduleName, "module-name", "m", "", "Module path as declared in go.mod")
	cmd.Flags().StringVarP(&searchRoot, "search-root", "d", ".", "Directory to scan for repositories")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Also list repositories that do not require the module")

	cmd.MarkFlagRequired("module-name")
	cmd.MarkFlagDirname("search-root")

	return cmd
}
