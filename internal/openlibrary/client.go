// Package openlibrary retrieves subject and place strings for a book from the
// Open Library Books API, used to detect which countries a book is about.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultBaseURL = "https://openlibrary.org"

// Client queries the Open Library Books and search APIs.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an Open Library client. OPEN_LIBRARY_URL overrides the
// base URL for tests.
func NewClient() *Client {
	baseURL := os.Getenv("OPEN_LIBRARY_URL")
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

// booksResponse mirrors the jscmd=data shape of the Books API, keyed by
// "ISBN:<isbn>".
type booksResponse map[string]struct {
	Subjects []struct {
		Name string `json:"name"`
	} `json:"subjects"`
	SubjectPlaces []struct {
		Name string `json:"name"`
	} `json:"subject_places"`
}

// searchResponse mirrors the subject fields of the search API.
type searchResponse struct {
	Docs []struct {
		Subject []string `json:"subject"`
		Place   []string `json:"place"`
	} `json:"docs"`
}

// SubjectPlaces returns free-text subject and place strings for a book,
// keyed by ISBN when available, falling back to a title search. Returns an
// empty slice on any failure; failures are logged, never propagated.
func (c *Client) SubjectPlaces(ctx context.Context, isbn, title string) []string {
	if isbn != "" {
		if subjects := c.byISBN(ctx, isbn); len(subjects) > 0 {
			return subjects
		}
	}
	if title != "" {
		return c.byTitle(ctx, title)
	}
	return nil
}

func (c *Client) byISBN(ctx context.Context, isbn string) []string {
	endpoint := fmt.Sprintf("%s/api/books?bibkeys=ISBN:%s&format=json&jscmd=data", c.BaseURL, url.QueryEscape(isbn))

	var result booksResponse
	if !c.getJSON(ctx, endpoint, &result) {
		return nil
	}

	book, ok := result["ISBN:"+isbn]
	if !ok {
		slog.Debug("No Open Library record for ISBN", "isbn", isbn)
		return nil
	}

	var out []string
	for _, place := range book.SubjectPlaces {
		if place.Name != "" {
			out = append(out, place.Name)
		}
	}
	for _, subject := range book.Subjects {
		if subject.Name != "" {
			out = append(out, subject.Name)
		}
	}
	return out
}

func (c *Client) byTitle(ctx context.Context, title string) []string {
	endpoint := fmt.Sprintf("%s/search.json?title=%s&limit=1", c.BaseURL, url.QueryEscape(title))

	var result searchResponse
	if !c.getJSON(ctx, endpoint, &result) {
		return nil
	}

	if len(result.Docs) == 0 {
		slog.Debug("No Open Library search result", "title", title)
		return nil
	}

	doc := result.Docs[0]
	out := make([]string, 0, len(doc.Place)+len(doc.Subject))
	out = append(out, doc.Place...)
	out = append(out, doc.Subject...)
	return out
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		slog.Warn("Failed to build Open Library request", "url", endpoint, "error", err)
		return false
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		slog.Warn("Open Library request failed", "url", endpoint, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Open Library API returned non-OK status", "url", endpoint, "status", resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		slog.Warn("Failed to decode Open Library response", "url", endpoint, "error", err)
		return false
	}
	return true
}
