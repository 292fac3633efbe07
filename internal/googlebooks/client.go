// Package googlebooks fills missing bibliographic fields from the Google
// Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1"

// Client queries the Google Books volumes API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Google Books client. GOOGLE_BOOKS_URL overrides the
// API base URL, which the tests use to point at a local server.
func NewClient() *Client {
	baseURL := os.Getenv("GOOGLE_BOOKS_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Partial is the narrow best-effort result of one bibliographic lookup. Zero
// values mean "no data"; the orchestrator only fills fields the book is
// missing.
type Partial struct {
	Title         string
	Subtitle      string
	Description   string
	Publisher     string
	YearPublished int
	NumberOfPages int
	Language      string
	CoverImage    string
	ISBN13        string
}

// volumesResponse mirrors the slice of the volumes API response we consume.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			Title               string            `json:"title"`
			Subtitle            string            `json:"subtitle"`
			Description         string            `json:"description"`
			Publisher           string            `json:"publisher"`
			PublishedDate       string            `json:"publishedDate"`
			PageCount           int               `json:"pageCount"`
			Language            string            `json:"language"`
			ImageLinks          map[string]string `json:"imageLinks"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// ByISBN looks a volume up by ISBN-13. Returns nil on any failure; lookup
// failures are logged, never propagated.
func (c *Client) ByISBN(ctx context.Context, isbn string) *Partial {
	if isbn == "" {
		return nil
	}
	return c.query(ctx, "isbn:"+isbn)
}

// Search looks a volume up by title and author text search. Used only when
// no ISBN is available or the ISBN lookup came back incomplete.
func (c *Client) Search(ctx context.Context, title, author string) *Partial {
	if title == "" {
		return nil
	}
	q := fmt.Sprintf("intitle:%q", title)
	if author != "" {
		q += fmt.Sprintf(" inauthor:%q", author)
	}
	return c.query(ctx, q)
}

func (c *Client) query(ctx context.Context, q string) *Partial {
	endpoint := fmt.Sprintf("%s/volumes?q=%s&maxResults=1", c.BaseURL, url.QueryEscape(q))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		slog.Warn("Failed to build Google Books request", "query", q, "error", err)
		return nil
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Warn("Google Books request failed", "query", q, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Google Books API returned non-OK status", "query", q, "status", resp.StatusCode)
		return nil
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("Failed to decode Google Books response", "query", q, "error", err)
		return nil
	}

	if len(result.Items) == 0 {
		slog.Debug("No Google Books volume found", "query", q)
		return nil
	}

	info := result.Items[0].VolumeInfo
	partial := &Partial{
		Title:         info.Title,
		Subtitle:      info.Subtitle,
		Description:   info.Description,
		Publisher:     info.Publisher,
		YearPublished: yearFromDate(info.PublishedDate),
		NumberOfPages: info.PageCount,
		Language:      info.Language,
	}

	if link, ok := info.ImageLinks["thumbnail"]; ok {
		partial.CoverImage = link
	} else if link, ok := info.ImageLinks["smallThumbnail"]; ok {
		partial.CoverImage = link
	}

	for _, id := range info.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			partial.ISBN13 = id.Identifier
			break
		}
	}

	return partial
}

// yearFromDate extracts the year from a volumes publishedDate, which may be
// "1967", "1967-05" or "1967-05-30".
func yearFromDate(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(strings.TrimSpace(date[:4]))
	if err != nil {
		return 0
	}
	return year
}
