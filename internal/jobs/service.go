// Package jobs implements the retrieval orchestrator: the single entry point
// callers use to fetch job postings, with the source-selection and fallback
// policy between the first-party aggregator, the Twitter adapter, the Gemini
// enricher, and the static mock data.
package jobs

import (
	"context"
	"log"
	"sync"

	"github.com/naman/xhire/internal/types"
)

// SocialSource is the Twitter adapter as seen by the orchestrator.
type SocialSource interface {
	Search(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error)
	GetByID(ctx context.Context, id string) (*types.Tweet, error)
	Configured() bool
}

// Aggregator is the optional first-party backend. When configured it is
// authoritative and exclusive: no other source is consulted.
type Aggregator interface {
	GetTweets(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error)
	GetTweetByID(ctx context.Context, id string) (*types.Tweet, error)
	Status(ctx context.Context) types.APIStatus
	Configured() bool
}

// Enricher attaches AI summaries to tweets. Implementations never fail; they
// degrade to placeholder summaries.
type Enricher interface {
	Summarize(ctx context.Context, tweet types.Tweet) *types.Summary
	SummarizeAll(ctx context.Context, tweets []types.Tweet) []types.Tweet
}

// Fallback is the static mock source consulted when no real source can answer.
type Fallback interface {
	List(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error)
	GetByID(ctx context.Context, id string) (*types.Tweet, error)
}

// ServiceConfig wires the orchestrator's collaborators. Aggregator, Social,
// and Enricher may be nil when the corresponding credential is absent.
type ServiceConfig struct {
	Aggregator Aggregator
	Social     SocialSource
	Enricher   Enricher
	Fallback   Fallback
}

// Service is the retrieval orchestrator.
type Service struct {
	aggregator Aggregator
	social     SocialSource
	enricher   Enricher
	fallback   Fallback

	// status is advisory UI state. Concurrent refreshes are last-writer-wins.
	mu     sync.Mutex
	status types.APIStatus
}

// NewService creates the orchestrator. The initial availability reflects local
// configuration flags; callers needing the first-party view call
// RefreshAvailability.
func NewService(cfg ServiceConfig) *Service {
	s := &Service{
		aggregator: cfg.Aggregator,
		social:     cfg.Social,
		enricher:   cfg.Enricher,
		fallback:   cfg.Fallback,
	}
	s.status = s.localStatus()
	return s
}

// GetTweets fetches tweets for the filters, evaluated in strict priority order:
//
//  1. First-party aggregator, when configured. Its output is returned as-is;
//     the backend is assumed to enrich upstream.
//  2. Twitter adapter, when configured. Failures and empty results both fall
//     back to mock data for this call (an empty real result is
//     indistinguishable from a misconfigured query during development).
//     Non-empty results are enriched when Gemini is configured.
//  3. Mock data, never enriched.
//
// Upstream failures are absorbed; an error surfaces only when the final mock
// fallback also fails.
func (s *Service) GetTweets(ctx context.Context, filters types.FilterOptions) ([]types.Tweet, error) {
	if s.aggregatorConfigured() {
		tweets, err := s.aggregator.GetTweets(ctx, filters)
		if err != nil {
			log.Printf("[jobs] XHire API failed, falling back to mock data: %v", err)
			return s.fallback.List(ctx, filters)
		}
		return tweets, nil
	}

	if s.socialConfigured() {
		tweets, err := s.social.Search(ctx, filters)
		if err != nil {
			log.Printf("[jobs] Twitter API failed, falling back to mock data: %v", err)
			return s.fallback.List(ctx, filters)
		}
		if len(tweets) == 0 {
			log.Printf("[jobs] Twitter API returned no tweets, falling back to mock data")
			return s.fallback.List(ctx, filters)
		}
		if s.enricher != nil {
			return s.enricher.SummarizeAll(ctx, tweets), nil
		}
		return tweets, nil
	}

	return s.fallback.List(ctx, filters)
}

// GetTweetByID fetches a single tweet through the same waterfall. A tweet from
// the Twitter path without a summary is enriched individually when Gemini is
// configured.
func (s *Service) GetTweetByID(ctx context.Context, id string) (*types.Tweet, error) {
	if s.aggregatorConfigured() {
		tweet, err := s.aggregator.GetTweetByID(ctx, id)
		if err != nil {
			log.Printf("[jobs] XHire API failed for tweet %s, falling back to mock data: %v", id, err)
			return s.fallback.GetByID(ctx, id)
		}
		return tweet, nil
	}

	if s.socialConfigured() {
		tweet, err := s.social.GetByID(ctx, id)
		if err != nil {
			log.Printf("[jobs] Twitter API failed for tweet %s, falling back to mock data: %v", id, err)
			return s.fallback.GetByID(ctx, id)
		}
		if tweet == nil {
			return s.fallback.GetByID(ctx, id)
		}
		if s.enricher != nil && tweet.AISummary == nil {
			tweet.AISummary = s.enricher.Summarize(ctx, *tweet)
		}
		return tweet, nil
	}

	return s.fallback.GetByID(ctx, id)
}

// Availability returns the cached availability state.
func (s *Service) Availability() types.APIStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// RefreshAvailability recomputes the availability state: from the first-party
// status endpoint when configured, else from local configuration flags. It
// never fails; the first-party client degrades to all-false internally.
func (s *Service) RefreshAvailability(ctx context.Context) types.APIStatus {
	status := s.localStatus()
	if s.aggregatorConfigured() {
		status = s.aggregator.Status(ctx)
	}

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
	return status
}

func (s *Service) aggregatorConfigured() bool {
	return s.aggregator != nil && s.aggregator.Configured()
}

func (s *Service) socialConfigured() bool {
	return s.social != nil && s.social.Configured()
}

func (s *Service) localStatus() types.APIStatus {
	return types.APIStatus{
		Twitter: s.socialConfigured(),
		Gemini:  s.enricher != nil,
	}
}
