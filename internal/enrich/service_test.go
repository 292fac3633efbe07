package enrich

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litmap-app/litmap/internal/countries"
	"github.com/litmap-app/litmap/internal/googlebooks"
	"github.com/litmap-app/litmap/internal/models"
)

type fakeBooks struct {
	byISBN     map[string]*googlebooks.Partial
	byTitle    map[string]*googlebooks.Partial
	isbnCalls  int
	titleCalls int
}

func (f *fakeBooks) ByISBN(_ context.Context, isbn string) *googlebooks.Partial {
	f.isbnCalls++
	return f.byISBN[isbn]
}

func (f *fakeBooks) Search(_ context.Context, title, _ string) *googlebooks.Partial {
	f.titleCalls++
	return f.byTitle[title]
}

type fakeSubjects struct {
	places map[string][]string
	calls  int
}

func (f *fakeSubjects) SubjectPlaces(_ context.Context, isbn, title string) []string {
	f.calls++
	if p, ok := f.places[isbn]; ok {
		return p
	}
	return f.places[title]
}

type fakeResolver struct {
	countries map[string][]string
	calls     int
}

func (f *fakeResolver) ResolveAuthor(_ context.Context, name string) []string {
	f.calls++
	return f.countries[name]
}

func (f *fakeResolver) Stats() (lookedUp, withCountries, multiCountry int) {
	for _, codes := range f.countries {
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

func newTestService(t *testing.T, books *fakeBooks, subjects *fakeSubjects, resolver *fakeResolver) (*Service, *[]time.Duration) {
	t.Helper()
	vocab, err := countries.NewVocabulary()
	require.NoError(t, err)

	svc := NewService(books, subjects, resolver, vocab)
	var sleeps []time.Duration
	svc.Sleep = func(d time.Duration) { sleeps = append(sleeps, d) }
	return svc, &sleeps
}

func TestEnrichFillsMissingFields(t *testing.T) {
	books := &fakeBooks{byISBN: map[string]*googlebooks.Partial{
		"9780060883287": {
			YearPublished: 1967,
			NumberOfPages: 417,
			Language:      "en",
			Publisher:     "Harper",
			Description:   "The multi-generational story of the Buendia family in Macondo.",
		},
	}}
	subjects := &fakeSubjects{places: map[string][]string{
		"9780060883287": {"Colombia", "Magic realism"},
	}}
	resolver := &fakeResolver{countries: map[string][]string{
		"Gabriel Garcia Marquez": {"CO"},
	}}
	svc, _ := newTestService(t, books, subjects, resolver)

	out := svc.Enrich(context.Background(), []models.Book{{
		Title:      "One Hundred Years of Solitude",
		Authors:    "Gabriel Garcia Marquez",
		ISBN13:     `="9780060883287"`,
		ReadStatus: models.StatusRead,
	}})

	require.Len(t, out, 1)
	book := out[0]
	assert.Equal(t, "9780060883287", book.ISBN13)
	assert.Equal(t, 1967, book.YearPublished)
	assert.Equal(t, 417, book.NumberOfPages)
	assert.Equal(t, "Harper", book.Publisher)
	assert.Equal(t, []string{"CO"}, book.BookCountries)
	assert.Equal(t, []string{"CO"}, book.AuthorCountries)
	assert.Equal(t, 0, books.titleCalls, "ISBN lookup succeeded, search should not run")
}

func TestEnrichNeverOverwritesExistingFields(t *testing.T) {
	books := &fakeBooks{byISBN: map[string]*googlebooks.Partial{
		"9780143124870": {
			YearPublished: 2013,
			NumberOfPages: 477,
			Publisher:     "Penguin",
		},
	}}
	svc, _ := newTestService(t, books, &fakeSubjects{}, &fakeResolver{})

	out := svc.Enrich(context.Background(), []models.Book{{
		Title:      "Americanah",
		Authors:    "Chimamanda Ngozi Adichie",
		ISBN13:     "9780143124870",
		Publisher:  "Fourth Estate",
		ReadStatus: models.StatusRead,
	}})

	assert.Equal(t, "Fourth Estate", out[0].Publisher, "existing publisher must survive the merge")
	assert.Equal(t, 2013, out[0].YearPublished)
	assert.Equal(t, 477, out[0].NumberOfPages)
}

func TestEnrichFallsBackToTitleSearch(t *testing.T) {
	books := &fakeBooks{byTitle: map[string]*googlebooks.Partial{
		"Things Fall Apart": {
			ISBN13:        "9780385474542",
			YearPublished: 1958,
		},
	}}
	svc, _ := newTestService(t, books, &fakeSubjects{}, &fakeResolver{})

	out := svc.Enrich(context.Background(), []models.Book{{
		Title:      "Things Fall Apart",
		Authors:    "Chinua Achebe",
		ReadStatus: models.StatusRead,
	}})

	assert.Equal(t, "9780385474542", out[0].ISBN13)
	assert.Equal(t, 1958, out[0].YearPublished)
	assert.Equal(t, 0, books.isbnCalls)
	assert.Equal(t, 1, books.titleCalls)
}

func TestEnrichIsIdempotent(t *testing.T) {
	books := &fakeBooks{}
	subjects := &fakeSubjects{}
	resolver := &fakeResolver{}
	svc, sleeps := newTestService(t, books, subjects, resolver)

	complete := []models.Book{{
		Title:           "Kafka on the Shore",
		Authors:         "Haruki Murakami",
		ISBN13:          "9781400079278",
		YearPublished:   2002,
		BookCountries:   []string{"JP"},
		AuthorCountries: []string{"JP"},
		ReadStatus:      models.StatusRead,
	}}

	out := svc.Enrich(context.Background(), complete)

	assert.Equal(t, complete, out)
	assert.Zero(t, books.isbnCalls)
	assert.Zero(t, books.titleCalls)
	assert.Zero(t, subjects.calls)
	assert.Zero(t, resolver.calls)
	assert.Empty(t, *sleeps, "no lookups, no throttling")
}

func TestEnrichDelaysBetweenBooks(t *testing.T) {
	svc, sleeps := newTestService(t, &fakeBooks{}, &fakeSubjects{}, &fakeResolver{})
	svc.Delay = 250 * time.Millisecond

	incomplete := []models.Book{
		{Title: "Book One", Authors: "A", ReadStatus: models.StatusRead},
		{Title: "Book Two", Authors: "B", ReadStatus: models.StatusRead},
		{Title: "Book Three", Authors: "C", ReadStatus: models.StatusRead},
	}

	svc.Enrich(context.Background(), incomplete)

	require.Len(t, *sleeps, 2, "delay runs between books, not before the first")
	for _, d := range *sleeps {
		assert.Equal(t, 250*time.Millisecond, d)
	}
}

func TestEnrichContainsPerBookFailures(t *testing.T) {
	// The first book gets nothing from any fetcher; the second still
	// enriches fully.
	books := &fakeBooks{byISBN: map[string]*googlebooks.Partial{
		"9780385474542": {YearPublished: 1958},
	}}
	subjects := &fakeSubjects{places: map[string][]string{
		"9780385474542": {"Nigeria"},
	}}
	resolver := &fakeResolver{countries: map[string][]string{
		"Chinua Achebe": {"NG"},
	}}
	svc, _ := newTestService(t, books, subjects, resolver)

	out := svc.Enrich(context.Background(), []models.Book{
		{Title: "Obscure Zine", Authors: "Unknown", ReadStatus: models.StatusRead},
		{Title: "Things Fall Apart", Authors: "Chinua Achebe", ISBN13: "9780385474542", ReadStatus: models.StatusRead},
	})

	require.Len(t, out, 2)
	assert.Equal(t, "Obscure Zine", out[0].Title)
	assert.Empty(t, out[0].BookCountries)
	assert.Equal(t, []string{"NG"}, out[1].BookCountries)
	assert.Equal(t, []string{"NG"}, out[1].AuthorCountries)
}

func TestEnrichCoAuthorUnion(t *testing.T) {
	resolver := &fakeResolver{countries: map[string][]string{
		"Neil Gaiman":     {"GB"},
		"Terry Pratchett": {"GB"},
	}}
	svc, _ := newTestService(t, &fakeBooks{}, &fakeSubjects{}, resolver)

	out := svc.Enrich(context.Background(), []models.Book{{
		Title:      "Good Omens",
		Authors:    "Neil Gaiman and Terry Pratchett",
		ReadStatus: models.StatusRead,
	}})

	assert.Equal(t, []string{"GB"}, out[0].AuthorCountries)
	assert.Equal(t, 2, resolver.calls, "both co-authors resolved")
}

func TestEnrichDemonymFallback(t *testing.T) {
	books := &fakeBooks{byTitle: map[string]*googlebooks.Partial{
		"The Wind-Up Bird Chronicle": {
			YearPublished: 1994,
			Description:   "A surreal novel by the acclaimed Japanese writer.",
		},
	}}
	svc, _ := newTestService(t, books, &fakeSubjects{}, &fakeResolver{})

	out := svc.Enrich(context.Background(), []models.Book{{
		Title:      "The Wind-Up Bird Chronicle",
		Authors:    "Haruki Murakami",
		ReadStatus: models.StatusRead,
	}})

	assert.Equal(t, []string{"JP"}, out[0].AuthorCountries,
		"demonym in description backfills when the knowledge graph is silent")
}

func TestSummarize(t *testing.T) {
	resolver := &fakeResolver{countries: map[string][]string{
		"Gabriel Garcia Marquez": {"CO"},
		"Vladimir Nabokov":       {"RU", "US"},
		"Anonymous":              {},
	}}
	svc, _ := newTestService(t, &fakeBooks{}, &fakeSubjects{}, resolver)

	summary := svc.Summarize([]models.Book{
		{Title: "A", Authors: "Gabriel Garcia Marquez", ReadStatus: models.StatusRead, AuthorCountries: []string{"CO"}},
		{Title: "B", Authors: "Vladimir Nabokov", ReadStatus: models.StatusRead, AuthorCountries: []string{"RU", "US"}},
		{Title: "C", Authors: "Anonymous", ReadStatus: models.StatusRead},
		{Title: "D", ReadStatus: models.StatusRead},
		{Title: "E", Authors: "Someone", ReadStatus: models.StatusToRead, AuthorCountries: []string{"FR"}},
	})

	assert.Equal(t, 5, summary.TotalBooks)
	assert.Equal(t, 4, summary.ReadBooks)
	assert.Equal(t, 3, summary.ReadBooksWithAuthor)
	assert.Equal(t, 2, summary.ReadBooksWithCountries)
	assert.Equal(t, 3, summary.DistinctCountries, "CO, RU, US; unread FR excluded")
	assert.Equal(t, 3, summary.AuthorsLookedUp)
	assert.Equal(t, 2, summary.AuthorsWithCountries)
	assert.Equal(t, 1, summary.MultiCountryAuthors)
}

func TestEnrichPreservesOrder(t *testing.T) {
	svc, _ := newTestService(t, &fakeBooks{}, &fakeSubjects{}, &fakeResolver{})

	in := []models.Book{
		{Title: "Zeta", Authors: "Z", ReadStatus: models.StatusRead},
		{Title: "Alpha", Authors: "A", ReadStatus: models.StatusToRead, ISBN13: "9780000000001", YearPublished: 2000, BookCountries: []string{"FR"}, AuthorCountries: []string{"FR"}},
		{Title: "Mu", Authors: "M", ReadStatus: models.StatusRead},
	}

	out := svc.Enrich(context.Background(), in)

	require.Len(t, out, 3)
	assert.Equal(t, "Zeta", out[0].Title)
	assert.Equal(t, "Alpha", out[1].Title)
	assert.Equal(t, "Mu", out[2].Title)
	assert.Equal(t, in[1], out[1], "already-enriched book passes through untouched")
}
