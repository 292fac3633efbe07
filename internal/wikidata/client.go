// Package wikidata resolves an author's countries through the Wikidata
// action API: entity search, then the nationality claim, falling back to the
// birthplace claim and the birthplace's country claim, then label lookup.
package wikidata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.wikidata.org"

// Wikidata property IDs.
const (
	propNationality = "P27"
	propBirthplace  = "P19"
	propCountry     = "P17"
)

// Client queries the Wikidata action API. This is the slowest and most
// failure-prone fetcher in the pipeline (up to four dependent round trips per
// author); callers are expected to cache results by author name.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Wikidata client. WIKIDATA_URL overrides the base URL
// for tests.
func NewClient() *Client {
	baseURL := os.Getenv("WIKIDATA_URL")
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

type searchResponse struct {
	Search []struct {
		ID string `json:"id"`
	} `json:"search"`
}

type claimsResponse struct {
	Claims map[string][]struct {
		Mainsnak struct {
			Datavalue struct {
				Value struct {
					ID string `json:"id"`
				} `json:"value"`
			} `json:"datavalue"`
		} `json:"mainsnak"`
	} `json:"claims"`
}

type entitiesResponse struct {
	Entities map[string]struct {
		Labels map[string]struct {
			Value string `json:"value"`
		} `json:"labels"`
	} `json:"entities"`
}

// AuthorCountries resolves an author display name to plain-text country
// names. The fallback chain is: nationality claim, then birthplace claim,
// then the birthplace's country claim. Returns an empty slice when the author
// is unknown or carries no usable claims; returns an error only for transport
// or decoding failures. No retries.
func (c *Client) AuthorCountries(ctx context.Context, name string) ([]string, error) {
	entityID, err := c.searchEntity(ctx, name)
	if err != nil {
		return nil, err
	}
	if entityID == "" {
		slog.Debug("No Wikidata entity for author", "author", name)
		return nil, nil
	}

	countryIDs, err := c.claimValues(ctx, entityID, propNationality)
	if err != nil {
		return nil, err
	}

	if len(countryIDs) == 0 {
		countryIDs, err = c.birthplaceCountries(ctx, entityID)
		if err != nil {
			return nil, err
		}
	}

	if len(countryIDs) == 0 {
		slog.Debug("No nationality or birthplace claims", "author", name, "entity", entityID)
		return nil, nil
	}

	return c.labels(ctx, countryIDs)
}

// birthplaceCountries follows P19 to the birthplace entity, then that
// entity's P17 country claim.
func (c *Client) birthplaceCountries(ctx context.Context, entityID string) ([]string, error) {
	placeIDs, err := c.claimValues(ctx, entityID, propBirthplace)
	if err != nil {
		return nil, err
	}
	if len(placeIDs) == 0 {
		return nil, nil
	}

	var countryIDs []string
	for _, placeID := range placeIDs {
		ids, err := c.claimValues(ctx, placeID, propCountry)
		if err != nil {
			return nil, err
		}
		countryIDs = append(countryIDs, ids...)
	}
	return countryIDs, nil
}

func (c *Client) searchEntity(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/w/api.php?action=wbsearchentities&search=%s&language=en&type=item&limit=1&format=json",
		c.BaseURL, url.QueryEscape(name),
	)

	var result searchResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}
	if len(result.Search) == 0 {
		return "", nil
	}
	return result.Search[0].ID, nil
}

func (c *Client) claimValues(ctx context.Context, entityID, property string) ([]string, error) {
	endpoint := fmt.Sprintf(
		"%s/w/api.php?action=wbgetclaims&entity=%s&property=%s&format=json",
		c.BaseURL, url.QueryEscape(entityID), property,
	)

	var result claimsResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	var ids []string
	for _, claim := range result.Claims[property] {
		if id := claim.Mainsnak.Datavalue.Value.ID; id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// labels resolves entity IDs to their English labels. IDs without an English
// label are dropped.
func (c *Client) labels(ctx context.Context, entityIDs []string) ([]string, error) {
	endpoint := fmt.Sprintf(
		"%s/w/api.php?action=wbgetentities&ids=%s&props=labels&languages=en&format=json",
		c.BaseURL, url.QueryEscape(strings.Join(entityIDs, "|")),
	)

	var result entitiesResponse
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	var names []string
	for _, id := range entityIDs {
		entity, ok := result.Entities[id]
		if !ok {
			continue
		}
		if label, ok := entity.Labels["en"]; ok && label.Value != "" {
			names = append(names, label.Value)
		}
	}
	return names, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikidata API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
