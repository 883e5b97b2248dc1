// Package types provides type definitions for structured data used throughout the xhire system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// NotSpecified is the placeholder value for summary fields the model could not extract.
// It distinguishes "no data extracted" from an explicitly empty string.
const NotSpecified = "Not specified"

// User is the author of a job-posting tweet. It is populated once from the
// upstream record and never mutated afterwards.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profile_image_url"`
	Verified        bool   `json:"verified"`
}

// Summary holds the AI-extracted structured fields for a job posting.
// When present it is always fully populated: fields the model could not
// extract carry NotSpecified, never an empty string or missing key.
type Summary struct {
	Role       string `json:"role"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	HowToApply string `json:"how_to_apply"`
	Salary     string `json:"salary"`
}

// PlaceholderSummary returns a Summary with every field set to NotSpecified.
// Used when enrichment fails or the model response cannot be parsed.
func PlaceholderSummary() *Summary {
	return &Summary{
		Role:       NotSpecified,
		Company:    NotSpecified,
		Location:   NotSpecified,
		HowToApply: NotSpecified,
		Salary:     NotSpecified,
	}
}

// Tweet is the normalized job posting all sources are translated into.
// ID is stable across repeated fetches of the same underlying post, which is
// what makes bookmarks and deduplication work.
type Tweet struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"user"`
	TweetURL  string    `json:"tweet_url"`
	AISummary *Summary  `json:"ai_summary,omitempty"`
}

// Date range values accepted by FilterOptions.DateRange.
const (
	DateRange24h = "24h"
	DateRange7d  = "7d"
	DateRange30d = "30d"
)

// FilterOptions describes one search request. It is an immutable value built
// by the caller on every interaction; nothing persists it.
type FilterOptions struct {
	JobTypes     []string `json:"jobType,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	DateRange    string   `json:"dateRange,omitempty"`
	VerifiedOnly bool     `json:"verifiedOnly,omitempty"`

	// RawQuery, when set, is sent to the search upstream verbatim and the
	// structured fields above are ignored for query construction.
	RawQuery string `json:"query,omitempty"`

	// Search is a free-text term applied by the static fallback source only.
	Search string `json:"search,omitempty"`
}

// StartTime converts the date range into an absolute lower bound relative to now.
// Returns the zero time when no range is set.
func (f FilterOptions) StartTime(now time.Time) time.Time {
	switch f.DateRange {
	case DateRange24h:
		return now.Add(-24 * time.Hour)
	case DateRange7d:
		return now.AddDate(0, 0, -7)
	case DateRange30d:
		return now.AddDate(0, 0, -30)
	}
	return time.Time{}
}

// APIStatus reports which upstream adapters are usable. It is advisory UI
// state, recomputed on demand.
type APIStatus struct {
	Twitter bool `json:"twitter"`
	Gemini  bool `json:"gemini"`
}
