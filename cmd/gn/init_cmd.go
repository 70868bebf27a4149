package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gn/internal/output"
	"github.com/raphi011/gn/internal/shell"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "init <shell>",
		Short:     "Print the shell integration script",
		GroupID:   GroupUtility,
		Args:      cobra.ExactArgs(1),
		ValidArgs: shell.Supported(),
		Long: `Print a shell snippet that wraps gn in a function which cd's to
the selected repository. The binary itself cannot change the parent
shell's working directory.`,
		Example: `  eval "$(gn init zsh)"        # in ~/.zshrc
  eval "$(gn init bash)"       # in ~/.bashrc
  gn init fish | source        # in config.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := shell.InitScript(args[0])
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("%s", script)
			return nil
		},
	}
}
