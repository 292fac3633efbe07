// Package enrich drives the per-book enrichment pipeline: bibliographic
// backfill, subject-based country detection and author country resolution.
package enrich

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/litmap-app/litmap/internal/authors"
	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/googlebooks"
	"github.com/litmap-app/litmap/internal/models"
	"github.com/litmap-app/litmap/internal/places"
)

// BibliographicFetcher fills missing bibliographic fields.
type BibliographicFetcher interface {
	ByISBN(ctx context.Context, isbn string) *googlebooks.Partial
	Search(ctx context.Context, title, author string) *googlebooks.Partial
}

// SubjectFetcher returns free-text subject and place strings for a book.
type SubjectFetcher interface {
	SubjectPlaces(ctx context.Context, isbn, title string) []string
}

// AuthorResolver resolves one author display name to ISO2 codes and reports
// author-level totals over everything resolved so far.
type AuthorResolver interface {
	ResolveAuthor(ctx context.Context, name string) []string
	Stats() (lookedUp, withCountries, multiCountry int)
}

// Service orchestrates enrichment for a book collection. Books are processed
// strictly in input order, one at a time, with a fixed delay between
// successive lookups to stay inside external API quotas.
type Service struct {
	books    BibliographicFetcher
	subjects SubjectFetcher
	resolver AuthorResolver
	vocab    *countries.Vocabulary

	// Extractor, when set, supplements keyword detection with LLM place
	// extraction over the book description.
	Extractor      places.Provider
	ExtractorModel string

	// Delay is the pause between successive enriched books. Sleep is
	// injectable so tests can observe the delay without waiting it out.
	Delay time.Duration
	Sleep func(time.Duration)
}

// NewService creates an enrichment service with the default 1s inter-book
// delay.
func NewService(books BibliographicFetcher, subjects SubjectFetcher, resolver AuthorResolver, vocab *countries.Vocabulary) *Service {
	return &Service{
		books:    books,
		subjects: subjects,
		resolver: resolver,
		vocab:    vocab,
		Delay:    time.Second,
		Sleep:    time.Sleep,
	}
}

// Enrich returns the full book list in input order with missing fields
// filled in. Already-complete books pass through untouched, so running
// Enrich twice over an enriched list changes nothing and issues no lookups.
// A failure on one book never aborts the rest.
func (s *Service) Enrich(ctx context.Context, bookList []models.Book) []models.Book {
	out := make([]models.Book, len(bookList))
	copy(out, bookList)

	processed := 0
	for i := range out {
		book := &out[i]
		if !book.NeedsEnrichment() {
			slog.Debug("Book already enriched", "title", book.Title)
			continue
		}

		if processed > 0 {
			s.Sleep(s.Delay)
		}
		processed++

		slog.Info("Enriching book", "title", book.Title, "progress", i+1, "total", len(out))
		s.enrichBook(ctx, book)
	}

	slog.Info("Enrichment complete", "books", len(out), "enriched", processed)
	return out
}

// enrichBook fills one book in place, leaving whatever fields were already
// present untouched when a lookup fails.
func (s *Service) enrichBook(ctx context.Context, book *models.Book) {
	book.ISBN13 = models.CleanISBN(book.ISBN13)

	s.fillBibliographic(ctx, book)

	if len(book.BookCountries) == 0 {
		book.BookCountries = s.detectBookCountries(ctx, book)
	}
	if len(book.AuthorCountries) == 0 {
		book.AuthorCountries = s.resolveAuthorCountries(ctx, book)
	}
}

// fillBibliographic merges fetched metadata over the book, filling only
// missing fields. ISBN lookup first, title+author search when the ISBN is
// absent or the year is still unknown.
func (s *Service) fillBibliographic(ctx context.Context, book *models.Book) {
	if book.ISBN13 != "" {
		if partial := s.books.ByISBN(ctx, book.ISBN13); partial != nil {
			fillMissing(book, partial)
		} else {
			slog.Warn("ISBN lookup returned no data", "title", book.Title, "isbn", book.ISBN13)
		}
	}

	if book.ISBN13 == "" || book.YearPublished == 0 {
		if partial := s.books.Search(ctx, book.Title, book.Authors); partial != nil {
			fillMissing(book, partial)
		} else {
			slog.Warn("Title search returned no data", "title", book.Title)
		}
	}
}

// fillMissing copies fetched fields into the book wherever the book has no
// value yet. Existing values are never overwritten.
func fillMissing(book *models.Book, partial *googlebooks.Partial) {
	if book.ISBN13 == "" {
		book.ISBN13 = models.CleanISBN(partial.ISBN13)
	}
	if book.YearPublished == 0 {
		book.YearPublished = partial.YearPublished
	}
	if book.NumberOfPages == 0 {
		book.NumberOfPages = partial.NumberOfPages
	}
	if book.Language == "" {
		book.Language = partial.Language
	}
	if book.Publisher == "" {
		book.Publisher = partial.Publisher
	}
	if book.Subtitle == "" {
		book.Subtitle = partial.Subtitle
	}
	if book.Description == "" {
		book.Description = partial.Description
	}
	if book.CoverImage == "" {
		book.CoverImage = partial.CoverImage
	}
}

// detectBookCountries derives the countries a book is about from subject and
// place strings, plus LLM-extracted places when an extractor is configured.
func (s *Service) detectBookCountries(ctx context.Context, book *models.Book) []string {
	text := strings.Join(s.subjects.SubjectPlaces(ctx, book.ISBN13, book.Title), "; ")

	if s.Extractor != nil && book.Description != "" {
		extracted, err := s.Extractor.ExtractPlaces(ctx, places.Config{
			Model:       s.ExtractorModel,
			Temperature: 0.1,
			Text:        book.Description,
		})
		if err != nil {
			slog.Warn("Place extraction failed", "title", book.Title, "error", err)
		} else if len(extracted) > 0 {
			text += "; " + strings.Join(extracted, "; ")
		}
	}

	return s.namesToCodes(s.vocab.DetectFromText(text))
}

// resolveAuthorCountries unions the resolved countries of every author on
// the book, falling back to demonym detection over the description when the
// knowledge graph knows none of them.
func (s *Service) resolveAuthorCountries(ctx context.Context, book *models.Book) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, name := range authors.Split(book.Authors) {
		for _, code := range s.resolver.ResolveAuthor(ctx, name) {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}

	if len(codes) == 0 && book.Description != "" {
		codes = s.namesToCodes(s.vocab.DetectNationality(book.Description))
		if len(codes) > 0 {
			slog.Debug("Author countries from demonym fallback", "title", book.Title, "countries", codes)
		}
	}

	sort.Strings(codes)
	return codes
}

// Summarize tallies an enrichment run: book-level counts from the book list,
// author-level counts from the resolver's lookup history.
func (s *Service) Summarize(books []models.Book) models.Summary {
	summary := models.Summary{TotalBooks: len(books)}

	countrySet := make(map[string]bool)
	for i := range books {
		book := &books[i]
		if !book.IsRead() {
			continue
		}
		summary.ReadBooks++
		if book.HasAuthors() {
			summary.ReadBooksWithAuthor++
		}
		if len(book.AuthorCountries) > 0 {
			summary.ReadBooksWithCountries++
			for _, code := range book.AuthorCountries {
				countrySet[code] = true
			}
		}
	}
	summary.DistinctCountries = len(countrySet)

	summary.AuthorsLookedUp, summary.AuthorsWithCountries, summary.MultiCountryAuthors = s.resolver.Stats()
	return summary
}

func (s *Service) namesToCodes(names []string) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, name := range names {
		code := s.vocab.ToISO2(name)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
