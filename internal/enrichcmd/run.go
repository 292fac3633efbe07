// Package enrichcmd implements the enrich subcommands of the litmap CLI.
package enrichcmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/dataset"
	"github.com/litmap-app/litmap/internal/enrich"
	"github.com/litmap-app/litmap/internal/googlebooks"
	"github.com/litmap-app/litmap/internal/models"
	"github.com/litmap-app/litmap/internal/openlibrary"
	"github.com/litmap-app/litmap/internal/places"
	"github.com/litmap-app/litmap/internal/resolver"
	"github.com/litmap-app/litmap/internal/results"
	"github.com/litmap-app/litmap/internal/wikidata"
)

// NewRunCmd creates the run command for the full enrichment pipeline
func NewRunCmd() *cobra.Command {
	var input string
	var output string
	var sampleSize int
	var delay time.Duration
	var concurrency int
	var extractor string
	var extractorModel string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full enrichment pipeline over a book collection",
		Long: `Loads a book collection (JSONL or Parquet), fills in missing bibliographic
metadata from Google Books, detects book-setting countries from OpenLibrary
subjects, resolves author countries through Wikidata, and writes the enriched
collection back out along with a YAML run report.`,
		Example: `  # Enrich a Goodreads export converted to JSONL
  litmap enrich run --input books.jsonl --output books_enriched.jsonl

  # Dry run over the first 5 books with a faster delay
  litmap enrich run --input books.jsonl --sample 5 --delay 200ms

  # Supplement keyword detection with Gemini place extraction
  litmap enrich run --input books.jsonl --extractor gemini --extractor-model gemini-2.0-flash`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(input); os.IsNotExist(err) {
				return fmt.Errorf("collection file not found: %s", input)
			}
			return executeRun(cmd, input, output, sampleSize, delay, concurrency, extractor, extractorModel)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to book collection file (.jsonl or .parquet, required)")
	cmd.Flags().StringVar(&output, "output", "", "Path for enriched output (defaults to input format with _enriched suffix)")
	cmd.Flags().IntVar(&sampleSize, "sample", -1, "Number of books to process (-1 for all)")
	cmd.Flags().DurationVar(&delay, "delay", time.Second, "Delay between successive book lookups")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Parallel author lookups")
	cmd.Flags().StringVar(&extractor, "extractor", "", "Optional LLM place extractor (gemini or ollama)")
	cmd.Flags().StringVar(&extractorModel, "extractor-model", "", "Model name for the place extractor")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func executeRun(cmd *cobra.Command, input, output string, sampleSize int, delay time.Duration, concurrency int, extractor, extractorModel string) error {
	slog.Info("Starting enrichment run", "input", input, "delay", delay)

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

	service := enrich.NewService(googlebooks.NewClient(), openlibrary.NewClient(), authorResolver, vocab)
	service.Delay = delay

	if extractor != "" {
		provider, err := places.ForName(extractor)
		if err != nil {
			return err
		}
		service.Extractor = provider
		service.ExtractorModel = extractorModel
	}

	enriched := service.Enrich(cmd.Context(), books)
	summary := service.Summarize(enriched)

	if output == "" {
		output = defaultOutputPath(input)
	}
	if err := dataset.Save(enriched, output); err != nil {
		return fmt.Errorf("failed to save enriched collection: %w", err)
	}

	reportPath, err := results.SaveToYAML(input, output, enriched, summary, vocab)
	if err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}

	printSummary(summary)
	fmt.Printf("\nEnriched collection saved to: %s\n", output)
	fmt.Printf("Run report saved to: %s\n", reportPath)

	return nil
}

// defaultOutputPath derives books_enriched.jsonl from books.jsonl, keeping
// the input format.
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_enriched" + ext
}

func loadBooks(input string, sampleSize int) ([]models.Book, error) {
	loader := dataset.NewLoader(input)
	if sampleSize > 0 {
		books, err := loader.LoadSample(sampleSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load collection sample: %w", err)
		}
		return books, nil
	}
	books, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	return books, nil
}

func printSummary(summary models.Summary) {
	fmt.Printf("\n=== Enrichment Summary ===\n")
	fmt.Printf("Total books:               %d\n", summary.TotalBooks)
	fmt.Printf("Read books:                %d\n", summary.ReadBooks)
	fmt.Printf("Read books with author:    %d\n", summary.ReadBooksWithAuthor)
	fmt.Printf("Read books with countries: %d\n", summary.ReadBooksWithCountries)
	fmt.Printf("Authors looked up:         %d\n", summary.AuthorsLookedUp)
	fmt.Printf("Authors with countries:    %d\n", summary.AuthorsWithCountries)
	fmt.Printf("Multi-country authors:     %d\n", summary.MultiCountryAuthors)
	fmt.Printf("Distinct countries:        %d\n", summary.DistinctCountries)
}
