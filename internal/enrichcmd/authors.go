package enrichcmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/dataset"
	"github.com/litmap-app/litmap/internal/resolver"
	"github.com/litmap-app/litmap/internal/wikidata"
)

// NewAuthorsCmd creates the authors command for author-geography-only refresh
func NewAuthorsCmd() *cobra.Command {
	var input string
	var output string
	var sampleSize int
	var concurrency int

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Refresh author countries only, skipping bibliographic lookups",
		Long: `Resolves author countries through Wikidata for every read book in the
collection, rebuilding each book's author country set from scratch. Each
unique author is looked up at most once per run. Bibliographic metadata and
book-setting countries are left alone.`,
		Example: `  # Refresh author geography in place
  litmap enrich authors --input books.jsonl --output books.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("collection file not found: %s", input)
			}

			books, err := loadBooks(input, sampleSize)
			if err != nil {
				return err
			}
			slog.Info("Collection loaded", "books", len(books))

			vocab, err := countries.NewVocabulary()
			if err != nil {
				return fmt.Errorf("failed to build country vocabulary: %w", err)
			}

			authorResolver := resolver.New(wikidata.NewClient(), vocab)
			authorResolver.Concurrency = concurrency

			resolved, summary := authorResolver.ResolveForBooks(cmd.Context(), books)

			if output == "" {
				output = defaultOutputPath(input)
			}
			if err := dataset.Save(resolved, output); err != nil {
				return fmt.Errorf("failed to save collection: %w", err)
			}

			printSummary(summary)
			fmt.Printf("\nCollection saved to: %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to book collection file (.jsonl or .parquet, required)")
	cmd.Flags().StringVar(&output, "output", "", "Path for output (defaults to input format with _enriched suffix)")
	cmd.Flags().IntVar(&sampleSize, "sample", -1, "Number of books to process (-1 for all)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Parallel author lookups")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}
