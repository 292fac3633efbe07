// Package resolver assigns ISO country codes to authors by orchestrating
// knowledge-graph lookups with per-run memoization.
package resolver

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/litmap-app/litmap/internal/authors"
	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/models"
)

// KnowledgeGraph looks up the plain-text country names associated with an
// author display name.
type KnowledgeGraph interface {
	AuthorCountries(ctx context.Context, name string) ([]string, error)
}

// Resolver resolves author names to ISO2 country codes. The cache is keyed by
// normalized display name and lives for the resolver's lifetime: entries are
// added once and never overwritten, and empty results are cached too, so each
// unique name costs at most one lookup chain per run.
//
// Two distinct people sharing a display name share one cache entry. That is
// an accepted identity-resolution limitation, not something the resolver
// tries to fix.
type Resolver struct {
	kg    KnowledgeGraph
	vocab *countries.Vocabulary

	// Concurrency bounds parallel author lookups in ResolveForBooks.
	Concurrency int

	mu    sync.Mutex
	cache map[string][]string
}

// New creates a resolver with a fresh cache.
func New(kg KnowledgeGraph, vocab *countries.Vocabulary) *Resolver {
	return &Resolver{
		kg:          kg,
		vocab:       vocab,
		Concurrency: 4,
		cache:       make(map[string][]string),
	}
}

// ResolveAuthor returns the sorted ISO2 codes for one author display name.
// A cache hit never touches the network. Lookup failures are logged and
// cached as an empty result; they never propagate.
func (r *Resolver) ResolveAuthor(ctx context.Context, displayName string) []string {
	key := authors.Normalize(displayName)
	if key == "" {
		return nil
	}

	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		return cached
	}

	names, err := r.kg.AuthorCountries(ctx, displayName)
	if err != nil {
		slog.Warn("Author country lookup failed", "author", displayName, "error", err)
		names = nil
	}

	codes := r.toCodes(names)
	if len(names) > 0 && len(codes) == 0 {
		slog.Debug("No country names mapped to ISO codes", "author", displayName, "names", names)
	}

	r.mu.Lock()
	// First write wins; concurrent lookups for the same name converge to the
	// same value anyway.
	if existing, ok := r.cache[key]; ok {
		codes = existing
	} else {
		r.cache[key] = codes
	}
	r.mu.Unlock()

	return codes
}

// toCodes maps country names through the vocabulary, dropping anything
// unmappable, and returns sorted deduplicated ISO2 codes.
func (r *Resolver) toCodes(names []string) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, name := range names {
		code := r.vocab.ToISO2(name)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ResolveForBooks populates AuthorCountries for every book and reports a
// resolution summary. Unique author names across read books are resolved
// exactly once, concurrently; the batch returns only after every lookup has
// completed. Unread and author-less books contribute no lookup workload but
// still pass through, with BookCountries cleared on unread entries and
// AuthorCountries rebuilt from whatever names they carry.
func (r *Resolver) ResolveForBooks(ctx context.Context, books []models.Book) ([]models.Book, models.Summary) {
	summary := models.Summary{TotalBooks: len(books)}

	// Unique normalized names that constitute the lookup workload.
	workload := make(map[string]string) // normalized -> display name
	for i := range books {
		book := &books[i]
		if !book.IsRead() {
			continue
		}
		summary.ReadBooks++
		if !book.HasAuthors() {
			continue
		}
		summary.ReadBooksWithAuthor++
		for _, name := range authors.Split(book.Authors) {
			workload[authors.Normalize(name)] = name
		}
	}

	slog.Info("Resolving author countries", "books", len(books), "unique_authors", len(workload))

	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)
	for _, displayName := range workload {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			r.ResolveAuthor(ctx, name)
		}(displayName)
	}
	wg.Wait()

	// Rebuild every book's author countries from the cache.
	out := make([]models.Book, len(books))
	copy(out, books)

	countrySet := make(map[string]bool)
	for i := range out {
		book := &out[i]
		book.AuthorCountries = r.unionForAuthors(book.Authors)
		if !book.IsRead() {
			book.BookCountries = nil
			continue
		}
		if len(book.AuthorCountries) > 0 {
			summary.ReadBooksWithCountries++
			for _, code := range book.AuthorCountries {
				countrySet[code] = true
			}
		}
	}

	summary.AuthorsLookedUp = len(workload)
	summary.DistinctCountries = len(countrySet)
	for key := range workload {
		r.mu.Lock()
		codes := r.cache[key]
		r.mu.Unlock()
		if len(codes) > 0 {
			summary.AuthorsWithCountries++
		}
		if len(codes) > 1 {
			summary.MultiCountryAuthors++
		}
	}

	slog.Info("Author resolution complete",
		"authors_looked_up", summary.AuthorsLookedUp,
		"authors_with_countries", summary.AuthorsWithCountries,
		"distinct_countries", summary.DistinctCountries)

	return out, summary
}

// Stats reports author-level cache totals: names looked up, names that
// resolved to at least one country, and names spanning more than one.
func (r *Resolver) Stats() (lookedUp, withCountries, multiCountry int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, codes := range r.cache {
		lookedUp++
		if len(codes) > 0 {
			withCountries++
		}
		if len(codes) > 1 {
			multiCountry++
		}
	}
	return lookedUp, withCountries, multiCountry
}

// unionForAuthors merges the cached country sets of every name in a raw
// authors field. Names outside the batch workload (appearing only on unread
// books) read as empty rather than triggering a lookup.
func (r *Resolver) unionForAuthors(rawAuthors string) []string {
	names := authors.Split(rawAuthors)
	if len(names) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var union []string
	for _, name := range names {
		key := authors.Normalize(name)
		r.mu.Lock()
		codes := r.cache[key]
		r.mu.Unlock()
		for _, code := range codes {
			if !seen[code] {
				seen[code] = true
				union = append(union, code)
			}
		}
	}
	sort.Strings(union)
	return union
}
