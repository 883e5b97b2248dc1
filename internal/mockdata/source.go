// Package mockdata provides the static fallback source: a small fixed set of
// job-posting tweets used when no real upstream is configured or every real
// upstream fails for a request.
package mockdata

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/naman/xhire/internal/types"
)

// Latency bounds for the simulated upstream delay. The fallback deliberately
// takes noticeable but bounded time so loading states behave the same no
// matter which source answers.
const (
	listDelayMin = 500 * time.Millisecond
	listDelayMax = 1000 * time.Millisecond
	getDelayMin  = 200 * time.Millisecond
	getDelayMax  = 500 * time.Millisecond
)

// Source serves the fixed tweet set.
type Source struct {
	delayScale float64
	now        func() time.Time
}

// Option configures a Source.
type Option func(*Source)

// WithoutDelay disables the simulated latency. Intended for tests.
func WithoutDelay() Option {
	return func(s *Source) { s.delayScale = 0 }
}

// WithClock substitutes the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// NewSource creates the fallback source.
func NewSource(opts ...Option) *Source {
	s := &Source{delayScale: 1, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the fixture tweets matching the filters, newest first.
func (s *Source) List(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error) {
	if err := s.sleep(ctx, listDelayMin, listDelayMax); err != nil {
		return nil, err
	}

	now := s.now()
	results := make([]types.Tweet, 0, len(fixtureSpecs))
	for _, tweet := range fixtures(now) {
		if matches(tweet, filters, now) {
			results = append(results, tweet)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results, nil
}

// GetByID returns the fixture tweet with the given id, or nil when absent.
func (s *Source) GetByID(ctx context.Context, id string) (*types.Tweet, error) {
	if err := s.sleep(ctx, getDelayMin, getDelayMax); err != nil {
		return nil, err
	}

	for _, tweet := range fixtures(s.now()) {
		if tweet.ID == id {
			return &tweet, nil
		}
	}
	return nil, nil
}

// matches applies the same predicate logic the real sources use, over text and
// summary fields of the fixture.
func matches(tweet types.Tweet, filters types.FilterOptions, now time.Time) bool {
	text := strings.ToLower(tweet.Text)

	if filters.Search != "" {
		term := strings.ToLower(filters.Search)
		inRole := tweet.AISummary != nil && strings.Contains(strings.ToLower(tweet.AISummary.Role), term)
		if !strings.Contains(text, term) &&
			!strings.Contains(strings.ToLower(tweet.User.Name), term) &&
			!inRole {
			return false
		}
	}

	if len(filters.JobTypes) > 0 && !matchesJobType(text, filters.JobTypes) {
		return false
	}

	if len(filters.Roles) > 0 {
		found := false
		for _, role := range filters.Roles {
			term := strings.ToLower(role)
			if strings.Contains(text, term) {
				found = true
				break
			}
			if tweet.AISummary != nil && strings.Contains(strings.ToLower(tweet.AISummary.Role), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if start := filters.StartTime(now); !start.IsZero() && tweet.CreatedAt.Before(start) {
		return false
	}

	if filters.VerifiedOnly && !tweet.User.Verified {
		return false
	}

	return true
}

func matchesJobType(text string, jobTypes []string) bool {
	for _, jobType := range jobTypes {
		switch jobType {
		case "Remote":
			if strings.Contains(text, "remote") {
				return true
			}
		case "Internship":
			if strings.Contains(text, "intern") {
				return true
			}
		case "Freelance":
			if strings.Contains(text, "freelance") || strings.Contains(text, "contract") {
				return true
			}
		case "Full-time":
			if strings.Contains(text, "full-time") || strings.Contains(text, "full time") {
				return true
			}
		}
	}
	return false
}

// sleep simulates upstream latency, honoring context cancellation.
func (s *Source) sleep(ctx context.Context, min, max time.Duration) error {
	if s.delayScale == 0 {
		return ctx.Err()
	}
	delay := min + time.Duration(rand.Int63n(int64(max-min)))
	delay = time.Duration(float64(delay) * s.delayScale)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
