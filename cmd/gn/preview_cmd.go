package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/raphi011/gn/internal/output"
	"github.com/raphi011/gn/internal/preview"
)

// newPreviewCmd is the hidden command fzf runs for its preview pane.
func newPreviewCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:     "preview <path>",
		Short:   "Print the metadata preview for one repository",
		GroupID: GroupCore,
		Hidden:  true,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// fzf reads the preview through a pipe, so color detection
			// would strip everything. Force ANSI unless told otherwise.
			if noColor || os.Getenv("NO_COLOR") != "" {
				lipgloss.SetColorProfile(termenv.Ascii)
			} else {
				lipgloss.SetColorProfile(termenv.ANSI)
			}

			text, err := preview.Render(args[0], cfg.PreviewOptions())
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	return cmd
}
