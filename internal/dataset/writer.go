package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/litmap-app/litmap/internal/models"
)

// Save writes books to path as JSONL or Parquet, chosen by file extension.
func Save(books []models.Book, path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return saveParquet(books, path)
	case ".jsonl", ".json":
		return saveJSONL(books, path)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func saveJSONL(books []models.Book, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	for i := range books {
		if err := enc.Encode(&books[i]); err != nil {
			return fmt.Errorf("failed to encode book %d: %w", i, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}

	slog.Debug("Wrote JSONL file", "path", path, "books", len(books))
	return nil
}

func saveParquet(books []models.Book, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.Book](file)
	if _, err := writer.Write(books); err != nil {
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	slog.Debug("Wrote Parquet file", "path", path, "books", len(books))
	return nil
}
