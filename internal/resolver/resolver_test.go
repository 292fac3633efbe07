package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/models"
)

// fakeGraph is a KnowledgeGraph stub with per-name responses and call
// counting.
type fakeGraph struct {
	mu        sync.Mutex
	responses map[string][]string
	errors    map[string]error
	calls     map[string]int
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		responses: make(map[string][]string),
		errors:    make(map[string]error),
		calls:     make(map[string]int),
	}
}

func (f *fakeGraph) AuthorCountries(_ context.Context, name string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	if err, ok := f.errors[name]; ok {
		return nil, err
	}
	return f.responses[name], nil
}

func (f *fakeGraph) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func newTestResolver(t *testing.T, kg KnowledgeGraph) *Resolver {
	t.Helper()
	vocab, err := countries.NewVocabulary()
	require.NoError(t, err)
	return New(kg, vocab)
}

func TestResolveAuthorMapsAndSorts(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Vladimir Nabokov"] = []string{"United States", "Russia"}
	r := newTestResolver(t, kg)

	codes := r.ResolveAuthor(context.Background(), "Vladimir Nabokov")
	assert.Equal(t, []string{"RU", "US"}, codes)
}

func TestResolveAuthorDropsUnmappableNames(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Fantasy Person"] = []string{"Narnia", "Colombia"}
	r := newTestResolver(t, kg)

	codes := r.ResolveAuthor(context.Background(), "Fantasy Person")
	assert.Equal(t, []string{"CO"}, codes)
}

func TestResolveAuthorCachesResults(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Chinua Achebe"] = []string{"Nigeria"}
	r := newTestResolver(t, kg)

	first := r.ResolveAuthor(context.Background(), "Chinua Achebe")
	second := r.ResolveAuthor(context.Background(), "  chinua achebe ")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, kg.callCount("Chinua Achebe"), "second call should hit the cache")
}

func TestResolveAuthorCachesEmptyResults(t *testing.T) {
	kg := newFakeGraph()
	kg.errors["Unlucky Author"] = errors.New("network down")
	r := newTestResolver(t, kg)

	codes := r.ResolveAuthor(context.Background(), "Unlucky Author")
	assert.Empty(t, codes)

	r.ResolveAuthor(context.Background(), "Unlucky Author")
	assert.Equal(t, 1, kg.callCount("Unlucky Author"), "failed lookup should be cached as empty")
}

func TestResolveForBooksSharedAuthor(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Haruki Murakami"] = []string{"Japan"}
	r := newTestResolver(t, kg)

	books := []models.Book{
		{Title: "Kafka on the Shore", Authors: "Haruki Murakami", ReadStatus: models.StatusRead},
		{Title: "Norwegian Wood", Authors: "Haruki Murakami", ReadStatus: models.StatusRead},
	}

	enriched, summary := r.ResolveForBooks(context.Background(), books)
	require.Len(t, enriched, 2)
	assert.Equal(t, []string{"JP"}, enriched[0].AuthorCountries)
	assert.Equal(t, enriched[0].AuthorCountries, enriched[1].AuthorCountries)
	assert.Equal(t, 1, kg.callCount("Haruki Murakami"), "shared author must be looked up once")
	assert.Equal(t, 1, summary.AuthorsLookedUp)
	assert.Equal(t, 2, summary.ReadBooksWithCountries)
	assert.Equal(t, 1, summary.DistinctCountries)
}

func TestResolveForBooksPartialFailure(t *testing.T) {
	kg := newFakeGraph()
	kg.errors["Author A"] = errors.New("boom")
	kg.responses["Author B"] = []string{"Kenya"}
	r := newTestResolver(t, kg)

	books := []models.Book{
		{Title: "First", Authors: "Author A", ReadStatus: models.StatusRead},
		{Title: "Second", Authors: "Author B", ReadStatus: models.StatusRead},
	}

	enriched, summary := r.ResolveForBooks(context.Background(), books)
	assert.Empty(t, enriched[0].AuthorCountries)
	assert.Equal(t, []string{"KE"}, enriched[1].AuthorCountries)
	assert.Equal(t, 2, summary.AuthorsLookedUp)
	assert.Equal(t, 1, summary.AuthorsWithCountries)
}

func TestResolveForBooksCoAuthors(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Terry Pratchett"] = []string{"United Kingdom"}
	kg.responses["Neil Gaiman"] = []string{"United Kingdom", "United States"}
	r := newTestResolver(t, kg)

	books := []models.Book{
		{Title: "Good Omens", Authors: "Terry Pratchett & Neil Gaiman", ReadStatus: models.StatusRead},
	}

	enriched, summary := r.ResolveForBooks(context.Background(), books)
	assert.Equal(t, []string{"GB", "US"}, enriched[0].AuthorCountries)
	assert.Equal(t, 2, summary.AuthorsLookedUp)
	assert.Equal(t, 1, summary.MultiCountryAuthors)
	assert.Equal(t, 2, summary.DistinctCountries)
}

func TestResolveForBooksSkipsUnreadWorkload(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Read Author"] = []string{"France"}
	kg.responses["Unread Author"] = []string{"Spain"}
	r := newTestResolver(t, kg)

	books := []models.Book{
		{Title: "Finished", Authors: "Read Author", ReadStatus: models.StatusRead},
		{Title: "Someday", Authors: "Unread Author", ReadStatus: models.StatusToRead,
			BookCountries: []string{"ES"}},
	}

	enriched, summary := r.ResolveForBooks(context.Background(), books)
	assert.Equal(t, 0, kg.callCount("Unread Author"), "unread books contribute no lookups")
	assert.Empty(t, enriched[1].AuthorCountries)
	assert.Empty(t, enriched[1].BookCountries, "unread books have book countries cleared")
	assert.Equal(t, []string{"FR"}, enriched[0].AuthorCountries)
	assert.Equal(t, 1, summary.ReadBooks)
	assert.Equal(t, 2, summary.TotalBooks)
}

func TestResolveForBooksMissingAuthors(t *testing.T) {
	kg := newFakeGraph()
	r := newTestResolver(t, kg)

	books := []models.Book{
		{Title: "Anonymous Work", ReadStatus: models.StatusRead},
	}

	enriched, summary := r.ResolveForBooks(context.Background(), books)
	assert.Empty(t, enriched[0].AuthorCountries)
	assert.Equal(t, 1, summary.ReadBooks)
	assert.Equal(t, 0, summary.ReadBooksWithAuthor)
	assert.Equal(t, 0, summary.AuthorsLookedUp)
}

func TestResolveForBooksEndToEnd(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Gabriel García Márquez"] = []string{"Colombia"}
	r := newTestResolver(t, kg)

	books := []models.Book{
		{
			Title:         "One Hundred Years of Solitude",
			Authors:       "Gabriel García Márquez",
			ISBN13:        "9780060883287",
			YearPublished: 1967,
			ReadStatus:    models.StatusRead,
		},
	}

	enriched, summary := r.ResolveForBooks(context.Background(), books)
	assert.Equal(t, []string{"CO"}, enriched[0].AuthorCountries)
	assert.Equal(t, 1, summary.AuthorsWithCountries)
	assert.Equal(t, 1, summary.DistinctCountries)
}

func TestStats(t *testing.T) {
	kg := newFakeGraph()
	kg.responses["Vladimir Nabokov"] = []string{"Russia", "United States"}
	kg.responses["Chinua Achebe"] = []string{"Nigeria"}
	r := newTestResolver(t, kg)

	r.ResolveAuthor(context.Background(), "Vladimir Nabokov")
	r.ResolveAuthor(context.Background(), "Chinua Achebe")
	r.ResolveAuthor(context.Background(), "Total Unknown")

	lookedUp, withCountries, multiCountry := r.Stats()
	assert.Equal(t, 3, lookedUp)
	assert.Equal(t, 2, withCountries)
	assert.Equal(t, 1, multiCountry)
}
