// Package twitter provides the social source adapter: it translates filter
// criteria into recent-search queries against the Twitter v2 API and maps the
// results into normalized tweets.
package twitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/naman/xhire/internal/jobs"
	"github.com/naman/xhire/internal/types"
)

// errNotFound signals a 404 on a single-tweet lookup, which means absent
// rather than unavailable.
var errNotFound = errors.New("tweet not found")

// DefaultBaseURL is the Twitter v2 API root. During browser-based development
// the original client prefixed this with a local CORS proxy; the proxy remains
// available via the proxy subcommand but is not needed for server-side calls.
const DefaultBaseURL = "https://api.twitter.com/2"

const (
	// maxResults caps each search; full pagination is deliberately not attempted.
	maxResults = 25

	searchTweetFields = "created_at,entities,author_id,public_metrics"
	searchUserFields  = "name,username,profile_image_url,verified"
	authorExpansion   = "author_id"

	// minTokenLength is the basic sanity check applied to the bearer token.
	// Anything shorter is treated as not configured.
	minTokenLength = 20
)

// Config configures the adapter. HTTPClient is injected so tests can
// substitute a fake transport.
type Config struct {
	BearerToken string
	BaseURL     string
	HTTPClient  *http.Client
}

// Client is the social source adapter.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Twitter adapter. A missing or too-short bearer token
// yields a client that reports itself as not configured; calls then fail with
// NotConfiguredError without touching the network.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		token:   cfg.BearerToken,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    httpClient,
	}
}

// Configured reports whether a plausible bearer token is present.
func (c *Client) Configured() bool {
	return len(c.token) > minTokenLength
}

// TweetURL returns the canonical link back to a tweet.
func TweetURL(username, tweetID string) string {
	return fmt.Sprintf("https://twitter.com/%s/status/%s", username, tweetID)
}

// Upstream record shapes. Parsing into explicit structs (rather than untyped
// maps) means a shape mismatch surfaces as a MalformedResponseError instead of
// a silent zero value.
type tweetRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
	AuthorID  string `json:"author_id"`
}

type userRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
	Verified        bool   `json:"verified"`
}

type searchResponse struct {
	Data     []tweetRecord `json:"data"`
	Includes struct {
		Users []userRecord `json:"users"`
	} `json:"includes"`
}

type lookupResponse struct {
	Data     *tweetRecord `json:"data"`
	Includes struct {
		Users []userRecord `json:"users"`
	} `json:"includes"`
}

// Search executes a recent-search query built from the filters and returns the
// normalized tweets. An empty result is returned as an empty slice, distinct
// from the NotConfiguredError raised when no credential is present.
func (c *Client) Search(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error) {
	if !c.Configured() {
		return nil, &jobs.NotConfiguredError{Source: "Twitter API"}
	}

	params := url.Values{}
	params.Set("query", BuildQuery(filters))
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("tweet.fields", searchTweetFields)
	params.Set("user.fields", searchUserFields)
	params.Set("expansions", authorExpansion)
	if start := filters.StartTime(time.Now()); !start.IsZero() {
		params.Set("start_time", start.UTC().Format(time.RFC3339))
	}

	body, err := c.get(ctx, "/tweets/search/recent", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &jobs.MalformedResponseError{Source: "Twitter API", Message: "invalid search response JSON", Cause: err}
	}
	if len(resp.Data) == 0 {
		return []types.Tweet{}, nil
	}

	// Join each tweet to its author via the expansion includes. Tweets whose
	// author cannot be resolved are dropped, not error'd: without an author
	// there is no valid tweet URL.
	usersByID := make(map[string]userRecord, len(resp.Includes.Users))
	for _, user := range resp.Includes.Users {
		usersByID[user.ID] = user
	}

	tweets := make([]types.Tweet, 0, len(resp.Data))
	for _, rec := range resp.Data {
		user, ok := usersByID[rec.AuthorID]
		if !ok {
			continue
		}
		tweets = append(tweets, mapTweet(rec, user))
	}

	// VerifiedOnly is applied authoritatively here, after mapping, rather than
	// trusted to the upstream query.
	if filters.VerifiedOnly {
		verified := tweets[:0]
		for _, tweet := range tweets {
			if tweet.User.Verified {
				verified = append(verified, tweet)
			}
		}
		tweets = verified
	}

	return tweets, nil
}

// GetByID fetches a single tweet with its author joined in one round trip.
// Returns (nil, nil) when the tweet or its author cannot be found.
func (c *Client) GetByID(ctx context.Context, id string) (*types.Tweet, error) {
	if !c.Configured() {
		return nil, &jobs.NotConfiguredError{Source: "Twitter API"}
	}

	params := url.Values{}
	params.Set("tweet.fields", "created_at,entities")
	params.Set("user.fields", searchUserFields)
	params.Set("expansions", authorExpansion)

	body, err := c.get(ctx, "/tweets/"+id, params)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var resp lookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &jobs.MalformedResponseError{Source: "Twitter API", Message: "invalid lookup response JSON", Cause: err}
	}
	if resp.Data == nil || len(resp.Includes.Users) == 0 {
		return nil, nil
	}

	tweet := mapTweet(*resp.Data, resp.Includes.Users[0])
	return &tweet, nil
}

// TestConnection issues a minimal search to verify the credential works.
func (c *Client) TestConnection(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}
	params := url.Values{}
	params.Set("query", "twitter")
	params.Set("max_results", "10")
	_, err := c.get(ctx, "/tweets/search/recent", params)
	return err == nil
}

func mapTweet(rec tweetRecord, user userRecord) types.Tweet {
	createdAt, _ := time.Parse(time.RFC3339, rec.CreatedAt)
	return types.Tweet{
		ID:        rec.ID,
		Text:      rec.Text,
		CreatedAt: createdAt,
		User: types.User{
			ID:              user.ID,
			Name:            user.Name,
			Username:        user.Username,
			ProfileImageURL: user.ProfileImageURL,
			Verified:        user.Verified,
		},
		TweetURL: TweetURL(user.Username, rec.ID),
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &jobs.SourceUnavailableError{Source: "Twitter API", Kind: jobs.FailureNetwork, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &jobs.SourceUnavailableError{Source: "Twitter API", Kind: jobs.FailureNetwork, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &jobs.SourceUnavailableError{Source: "Twitter API", Kind: jobs.FailureNetwork, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &jobs.SourceUnavailableError{
			Source:  "Twitter API",
			Kind:    classifyStatus(resp.StatusCode, body),
			Message: fmt.Sprintf("upstream returned status %d", resp.StatusCode),
		}
	}

	return body, nil
}

// classifyStatus maps an HTTP failure to a diagnostic kind. The cross-origin
// kind covers refusals from an intermediary CORS proxy, which answer 400 or 403
// with an explanation mentioning the missing required header.
func classifyStatus(status int, body []byte) jobs.FailureKind {
	switch status {
	case http.StatusUnauthorized:
		return jobs.FailureAuth
	case http.StatusTooManyRequests:
		return jobs.FailureRateLimit
	case http.StatusBadRequest, http.StatusForbidden:
		text := strings.ToLower(string(body))
		if strings.Contains(text, "origin") || strings.Contains(text, "x-requested-with") || strings.Contains(text, "cors") {
			return jobs.FailureCORS
		}
		if status == http.StatusForbidden {
			return jobs.FailureAuth
		}
		return jobs.FailureUpstream
	}
	return jobs.FailureUpstream
}
