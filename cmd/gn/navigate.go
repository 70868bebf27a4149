package main

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/gn/internal/config"
	"github.com/raphi011/gn/internal/fzf"
	"github.com/raphi011/gn/internal/log"
	"github.com/raphi011/gn/internal/output"
	"github.com/raphi011/gn/internal/scan"
	"github.com/raphi011/gn/internal/ui"
)

var (
	navForce bool
	navPath  string
	navDepth int
	navNoFzf bool
	navCopy  bool
)

func addNavigateFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&navForce, "force", "f", false, "Ignore the cache and rescan")
	cmd.Flags().StringVarP(&navPath, "path", "p", "", "Override the search base path")
	cmd.Flags().IntVarP(&navDepth, "depth", "d", 0, "Override the maximum scan depth")
	cmd.Flags().BoolVar(&navNoFzf, "no-fzf", false, "Use the built-in selector even when fzf is installed")
	cmd.Flags().BoolVarP(&navCopy, "copy", "y", false, "Also copy the selected path to the clipboard")
}

// runNavigate is the default action: discover repositories, let the
// user pick one and print its path on stdout.
func runNavigate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if navPath != "" {
		cfg.Search.BasePath = navPath
	}
	if navDepth > 0 {
		cfg.Search.MaxDepth = navDepth
	}

	repos, err := resolveRepos(ctx, cfg, navForce)
	if err != nil {
		return err
	}
	if len(repos) == 0 {
		l.Infof("No git repositories found under %s\n", cfg.Search.BasePath)
		return nil
	}

	path, ok, err := selectRepo(ctx, cfg, repos)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}

	if navCopy {
		if err := clipboard.WriteAll(path); err != nil {
			l.Warnf("copy to clipboard failed: %v\n", err)
		}
	}

	out.Println(path)
	return nil
}

// selectRepo runs fzf when available, otherwise the built-in selector.
// Both render on stderr so the chosen path can be captured from stdout.
func selectRepo(ctx context.Context, cfg config.Config, repos []scan.Repo) (string, bool, error) {
	if !navNoFzf && fzf.Available(ctx) {
		bin, err := os.Executable()
		if err != nil {
			// fzf re-invokes the binary for previews; fall back to the
			// name on PATH.
			bin = "gn"
		}
		return fzf.Select(ctx, repos, fzf.UIOptions{
			Prompt:              cfg.UI.Prompt,
			Header:              cfg.UI.Header,
			PreviewWidthPercent: cfg.UI.PreviewWidthPercent,
			Layout:              cfg.UI.Layout,
			HeightPercent:       cfg.UI.HeightPercent,
			ShowBorder:          cfg.UI.ShowBorder,
		}, bin)
	}

	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return "", false, fmt.Errorf("interactive selection needs a terminal; use \"gn list\" for scripting")
	}
	return ui.Select(repos, cfg.UI.Prompt)
}
