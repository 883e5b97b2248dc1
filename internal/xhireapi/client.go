// Package xhireapi provides the client for the first-party aggregator backend.
// When configured, that backend is the authoritative and exclusive source of
// tweets; it is assumed to perform any enrichment upstream.
package xhireapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/naman/xhire/internal/jobs"
	"github.com/naman/xhire/internal/types"
)

// errNotFound signals a 404 on a single-tweet lookup, which means absent
// rather than unavailable.
var errNotFound = errors.New("tweet not found")

// Config configures the client. Endpoint is the API root; an empty endpoint
// yields an unconfigured client.
type Config struct {
	Endpoint   string
	HTTPClient *http.Client
}

// Client talks to the first-party aggregator API.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a first-party API client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		http:     httpClient,
	}
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Status fetches the upstream availability flags. Any failure degrades to
// all-false rather than propagating.
func (c *Client) Status(ctx context.Context) types.APIStatus {
	if !c.Configured() {
		return types.APIStatus{}
	}

	body, err := c.get(ctx, "/status", nil)
	if err != nil {
		log.Printf("[xhireapi] status check failed: %v", err)
		return types.APIStatus{}
	}

	var status types.APIStatus
	if err := json.Unmarshal(body, &status); err != nil {
		log.Printf("[xhireapi] invalid status response: %v", err)
		return types.APIStatus{}
	}
	return status
}

// GetTweets lists tweets from the aggregator with the filters encoded as
// query parameters.
func (c *Client) GetTweets(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error) {
	if !c.Configured() {
		return nil, &jobs.NotConfiguredError{Source: "XHire API"}
	}

	body, err := c.get(ctx, "/tweets", filterParams(filters))
	if err != nil {
		return nil, err
	}

	var tweets []types.Tweet
	if err := json.Unmarshal(body, &tweets); err != nil {
		return nil, &jobs.MalformedResponseError{Source: "XHire API", Message: "invalid tweets response JSON", Cause: err}
	}
	return tweets, nil
}

// GetTweetByID fetches one tweet. Returns (nil, nil) when absent.
func (c *Client) GetTweetByID(ctx context.Context, id string) (*types.Tweet, error) {
	if !c.Configured() {
		return nil, &jobs.NotConfiguredError{Source: "XHire API"}
	}

	body, err := c.get(ctx, "/tweets/"+url.PathEscape(id), nil)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tweet types.Tweet
	if err := json.Unmarshal(body, &tweet); err != nil {
		return nil, &jobs.MalformedResponseError{Source: "XHire API", Message: "invalid tweet response JSON", Cause: err}
	}
	return &tweet, nil
}

func filterParams(filters types.FilterOptions) url.Values {
	params := url.Values{}
	for _, jobType := range filters.JobTypes {
		params.Add("jobType", jobType)
	}
	for _, role := range filters.Roles {
		params.Add("roles", role)
	}
	if filters.DateRange != "" {
		params.Set("dateRange", filters.DateRange)
	}
	if filters.VerifiedOnly {
		params.Set("verifiedOnly", strconv.FormatBool(filters.VerifiedOnly))
	}
	if filters.RawQuery != "" {
		params.Set("query", filters.RawQuery)
	}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	return params
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.endpoint + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &jobs.SourceUnavailableError{Source: "XHire API", Kind: jobs.FailureNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &jobs.SourceUnavailableError{Source: "XHire API", Kind: jobs.FailureNetwork, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &jobs.SourceUnavailableError{Source: "XHire API", Kind: jobs.FailureNetwork, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		kind := jobs.FailureUpstream
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = jobs.FailureAuth
		case http.StatusTooManyRequests:
			kind = jobs.FailureRateLimit
		}
		return nil, &jobs.SourceUnavailableError{
			Source:  "XHire API",
			Kind:    kind,
			Message: fmt.Sprintf("upstream returned status %d", resp.StatusCode),
		}
	}

	return body, nil
}
