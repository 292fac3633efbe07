// Package results writes enrichment run reports to YAML.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/models"
)

// RunConfig represents the configuration section of the run YAML
type RunConfig struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output,omitempty"`
	Books     int    `yaml:"books"`
	Timestamp string `yaml:"timestamp"`
}

// CountryCount represents one country row in the report, ordered by how many
// read books it covers
type CountryCount struct {
	Code      string `yaml:"code"`
	Name      string `yaml:"name"`
	Flag      string `yaml:"flag"`
	ReadBooks int    `yaml:"readbooks"`
}

// RunReport represents the complete enrichment run report
type RunReport struct {
	Config    RunConfig      `yaml:"config"`
	Summary   models.Summary `yaml:"summary"`
	Countries []CountryCount `yaml:"countries"`
}

// SaveToYAML saves an enrichment run report to a YAML file in runs/ directory
func SaveToYAML(input, output string, books []models.Book, summary models.Summary, vocab *countries.Vocabulary) (string, error) {
	if err := os.MkdirAll("runs", 0755); err != nil {
		return "", fmt.Errorf("failed to create runs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	report := RunReport{
		Config: RunConfig{
			Input:     input,
			Output:    output,
			Books:     len(books),
			Timestamp: timestamp,
		},
		Summary:   summary,
		Countries: CountReadBooks(books, vocab),
	}

	filename := fmt.Sprintf("runs/litmap-%s.yaml", timestamp)

	data, err := yaml.Marshal(&report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	return absPath, nil
}

// CountReadBooks tallies, per country, how many read books have that country
// among their author countries. Rows are sorted by count descending, then by
// name, and carry the map-friendly render name and flag emoji.
func CountReadBooks(books []models.Book, vocab *countries.Vocabulary) []CountryCount {
	counts := make(map[string]int)
	for i := range books {
		if !books[i].IsRead() {
			continue
		}
		for _, code := range books[i].AuthorCountries {
			counts[code]++
		}
	}

	rows := make([]CountryCount, 0, len(counts))
	for code, n := range counts {
		rows = append(rows, CountryCount{
			Code:      code,
			Name:      vocab.CanonicalToRenderName(vocab.DisplayName(code)),
			Flag:      vocab.Flag(code),
			ReadBooks: n,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ReadBooks != rows[j].ReadBooks {
			return rows[i].ReadBooks > rows[j].ReadBooks
		}
		return rows[i].Name < rows[j].Name
	})

	return rows
}
