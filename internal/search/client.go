package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/octobees/product-advisor/internal/config"
	"github.com/octobees/product-advisor/internal/listing"
)

// Fetcher issues product searches against the listing endpoint.
type Fetcher interface {
	Search(ctx context.Context, query string, minPrice, maxPrice float64) ([]listing.Listing, error)
}

// Client queries the real-time product search API.
type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	apiHost  string
	country  string
}

// NewClient builds a search client from configuration.
// If `client == nil`, a default client with the configured timeout is used.
func NewClient(client *http.Client, cfg *config.Config) *Client {
	if client == nil {
		client = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		client:   client,
		endpoint: cfg.SearchEndpoint,
		apiKey:   cfg.SearchAPIKey,
		apiHost:  cfg.SearchHost,
		country:  cfg.SearchCountry,
	}
}

// Search fetches candidate listings for the query within the price bounds.
// A non-2xx status is fatal for the request. A missing products array in an
// otherwise successful response yields an empty slice, not an error. The GET
// is idempotent, so a transport error or 5xx is retried exactly once.
func (c *Client) Search(ctx context.Context, query string, minPrice, maxPrice float64) ([]listing.Listing, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("country", c.country)
	params.Set("sort_by", "RELEVANCE")
	params.Set("product_condition", "ALL")
	params.Set("is_prime", "false")
	params.Set("deals_and_discounts", "NONE")
	params.Set("min_price", strconv.FormatFloat(minPrice, 'f', -1, 64))
	params.Set("max_price", strconv.FormatFloat(maxPrice, 'f', -1, 64))

	reqURL := c.endpoint + "?" + params.Encode()

	listings, retryable, err := c.fetch(ctx, reqURL)
	if err != nil && retryable {
		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		listings, _, err = c.fetch(ctx, reqURL)
	}
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (c *Client) fetch(ctx context.Context, reqURL string) (listings []listing.Listing, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create search request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errMsg := extractAPIError(resp.Body)
		return nil, resp.StatusCode >= 500, fmt.Errorf("search API status %d: %s", resp.StatusCode, errMsg)
	}

	var payload struct {
		Data struct {
			Products []listing.Listing `json:"products"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil && err != io.EOF {
		return nil, false, fmt.Errorf("could not decode search response: %w", err)
	}
	if payload.Data.Products == nil {
		return []listing.Listing{}, false, nil
	}
	return payload.Data.Products, false, nil
}

func extractAPIError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return "search API returned an error"
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(data)
}

var _ Fetcher = (*Client)(nil)
