package models

import "time"

// ReadStatus indicates whether a book was finished or is still on the shelf.
// Only read books participate in country aggregation, but to-read entries
// flow through the pipeline unchanged.
type ReadStatus string

const (
	StatusRead   ReadStatus = "read"
	StatusToRead ReadStatus = "to_read"
)

// Source identifies which reading-history export a book came from.
type Source string

const (
	SourceGoodreads  Source = "goodreads"
	SourceStoryGraph Source = "storygraph"
)

// Book represents one reading-list entry with its bibliographic metadata and
// the country attribution produced by the pipeline. BookCountries and
// AuthorCountries hold deduplicated, sorted ISO 3166-1 alpha-2 codes, never
// raw country names.
type Book struct {
	Title   string `json:"title" parquet:"title"`
	Authors string `json:"authors" parquet:"authors"`

	ISBN13        string `json:"isbn13,omitempty" parquet:"isbn13"`
	YearPublished int    `json:"year_published,omitempty" parquet:"year_published"`
	NumberOfPages int    `json:"number_of_pages,omitempty" parquet:"number_of_pages"`
	Language      string `json:"language,omitempty" parquet:"language"`
	Publisher     string `json:"publisher,omitempty" parquet:"publisher"`
	Subtitle      string `json:"subtitle,omitempty" parquet:"subtitle"`
	Description   string `json:"description,omitempty" parquet:"description"`
	CoverImage    string `json:"cover_image,omitempty" parquet:"cover_image"`

	BookCountries   []string `json:"book_countries,omitempty" parquet:"book_countries,list"`
	AuthorCountries []string `json:"author_countries,omitempty" parquet:"author_countries,list"`

	ReadStatus ReadStatus `json:"read_status" parquet:"read_status"`
	Source     Source     `json:"source,omitempty" parquet:"source"`

	// Raw holds the original export row for debugging. Not consumed by the
	// pipeline and not carried into parquet output.
	Raw map[string]string `json:"raw,omitempty" parquet:"-"`
}

// IsRead reports whether the book counts toward country aggregation.
func (b *Book) IsRead() bool {
	return b.ReadStatus == StatusRead
}

// HasAuthors reports whether the authors field carries any usable text.
func (b *Book) HasAuthors() bool {
	return b.Authors != ""
}

// NeedsEnrichment reports whether any of the fields the pipeline can fill are
// still missing. Fully populated books pass through the orchestrator untouched.
func (b *Book) NeedsEnrichment() bool {
	return b.ISBN13 == "" ||
		b.YearPublished == 0 ||
		len(b.BookCountries) == 0 ||
		len(b.AuthorCountries) == 0
}

// Summary captures the outcome of one author-resolution batch.
type Summary struct {
	TotalBooks             int `json:"total_books" yaml:"total_books"`
	ReadBooks              int `json:"read_books" yaml:"read_books"`
	ReadBooksWithAuthor    int `json:"read_books_with_author" yaml:"read_books_with_author"`
	ReadBooksWithCountries int `json:"read_books_with_countries" yaml:"read_books_with_countries"`
	AuthorsLookedUp        int `json:"authors_looked_up" yaml:"authors_looked_up"`
	AuthorsWithCountries   int `json:"authors_with_countries" yaml:"authors_with_countries"`
	DistinctCountries      int `json:"distinct_countries" yaml:"distinct_countries"`
	MultiCountryAuthors    int `json:"multi_country_authors" yaml:"multi_country_authors"`
}

// EnrichmentRun is one stored enrichment cycle, kept in memory by the serve API
// so a client can re-fetch results after upload.
type EnrichmentRun struct {
	ID        string    `json:"id"`
	Books     []Book    `json:"books"`
	Summary   Summary   `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
