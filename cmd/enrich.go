package cmd

import (
	"github.com/spf13/cobra"

	"github.com/litmap-app/litmap/internal/enrichcmd"
)

func newEnrichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Book collection enrichment tools",
		Long: `Enrichment tools for reading history collections.

Supports running the full pipeline (bibliographic backfill, book-setting
detection, author country resolution), refreshing author geography on its own,
and offline country detection over arbitrary text.`,
	}

	// Add enrich subcommands
	cmd.AddCommand(enrichcmd.NewRunCmd())
	cmd.AddCommand(enrichcmd.NewAuthorsCmd())
	cmd.AddCommand(enrichcmd.NewDetectCmd())

	return cmd
}
