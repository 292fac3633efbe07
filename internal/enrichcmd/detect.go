package enrichcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/litmap-app/litmap/internal/countries"
)

// NewDetectCmd creates the detect command for offline country detection
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [text]",
		Short: "Detect country mentions and demonyms in text, fully offline",
		Example: `  # Detect countries in a book description
  litmap enrich detect "A Colombian novelist chronicles life in Macondo"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			vocab, err := countries.NewVocabulary()
			if err != nil {
				return fmt.Errorf("failed to build country vocabulary: %w", err)
			}

			seen := make(map[string]bool)
			found := 0
			for _, name := range append(vocab.DetectFromText(text), vocab.DetectNationality(text)...) {
				code := vocab.ToISO2(name)
				if code == "" || seen[code] {
					continue
				}
				seen[code] = true
				found++
				fmt.Printf("%s  %s (%s)\n", vocab.Flag(code), name, code)
			}

			if found == 0 {
				fmt.Println("No countries detected")
			}
			return nil
		},
	}

	return cmd
}
