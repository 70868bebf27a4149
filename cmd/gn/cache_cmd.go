package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/gn/internal/log"
	"github.com/raphi011/gn/internal/output"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Short:   "Inspect and clear the scan cache",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
	}

	cmd.AddCommand(newCacheInfoCmd())
	cmd.AddCommand(newCacheClearCmd())

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache location, entry count and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := openStore(ctx, cfg)
			if store == nil {
				out.Println("Cache is disabled")
				return nil
			}

			entries, err := store.Entries()
			if err != nil {
				return err
			}
			size, err := store.TotalSize()
			if err != nil {
				return err
			}

			out.Printf("Directory: %s\n", store.Dir())
			out.Printf("Entries:   %d\n", len(entries))
			out.Printf("Size:      %d bytes\n", size)
			out.Printf("TTL:       %ds\n", cfg.Cache.TTLSeconds)
			return nil
		},
	}
}

func newCacheClearCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached scan results",
		Args:  cobra.NoArgs,
		Example: `  gn cache clear               # Remove every cache entry
  gn cache clear --dry-run     # Show what would be removed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store := openStore(ctx, cfg)
			if store == nil {
				out.Println("Cache is disabled")
				return nil
			}

			if dryRun {
				entries, err := store.Entries()
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					out.Println("Nothing to remove")
					return nil
				}
				for _, entry := range entries {
					out.Printf("Would remove %s\n", filepath.Base(entry))
				}
				return nil
			}

			if err := store.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			l.Infof("Cache cleared\n")
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List entries without removing them")

	return cmd
}
