package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gn/internal/output"
	"github.com/raphi011/gn/internal/scan"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered repositories",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List all git repositories under the configured base path.

Output is one repository per line as "name<TAB>path", in the same
order the selector shows them. Use --json for structured output.`,
		Example: `  gn list                      # name<TAB>path lines
  gn list --json               # JSON array of {name, path}
  gn list -f                   # Ignore the cache and rescan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			repos, err := resolveRepos(ctx, cfg, force)
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				if err := enc.Encode(repos); err != nil {
					return fmt.Errorf("encode repositories: %w", err)
				}
				return nil
			}

			if len(repos) > 0 {
				out.Println(scan.FormatTSV(repos))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Ignore the cache and rescan")

	return cmd
}
