package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naman/xhire/internal/types"
)

// --- fakes ---

type fakeSocial struct {
	configured  bool
	tweets      []types.Tweet
	tweet       *types.Tweet
	err         error
	searchCalls int
	getCalls    int
}

func (f *fakeSocial) Search(_ context.Context, _ types.FilterOptions) ([]types.Tweet, error) {
	f.searchCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tweets, nil
}

func (f *fakeSocial) GetByID(_ context.Context, _ string) (*types.Tweet, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tweet, nil
}

func (f *fakeSocial) Configured() bool { return f.configured }

type fakeAggregator struct {
	configured  bool
	tweets      []types.Tweet
	tweet       *types.Tweet
	status      types.APIStatus
	err         error
	listCalls   int
	getCalls    int
	statusCalls int
}

func (f *fakeAggregator) GetTweets(_ context.Context, _ types.FilterOptions) ([]types.Tweet, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tweets, nil
}

func (f *fakeAggregator) GetTweetByID(_ context.Context, _ string) (*types.Tweet, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tweet, nil
}

func (f *fakeAggregator) Status(_ context.Context) types.APIStatus {
	f.statusCalls++
	return f.status
}

func (f *fakeAggregator) Configured() bool { return f.configured }

type fakeEnricher struct {
	summarizeCalls    int
	summarizeAllCalls int
}

func (f *fakeEnricher) Summarize(_ context.Context, _ types.Tweet) *types.Summary {
	f.summarizeCalls++
	return &types.Summary{Role: "Engineer", Company: "Acme", Location: "Remote", HowToApply: "DM", Salary: types.NotSpecified}
}

func (f *fakeEnricher) SummarizeAll(_ context.Context, tweets []types.Tweet) []types.Tweet {
	f.summarizeAllCalls++
	results := make([]types.Tweet, len(tweets))
	for i, tweet := range tweets {
		if tweet.AISummary == nil {
			tweet.AISummary = &types.Summary{Role: "Engineer", Company: "Acme", Location: "Remote", HowToApply: "DM", Salary: types.NotSpecified}
		}
		results[i] = tweet
	}
	return results
}

type fakeFallback struct {
	tweets    []types.Tweet
	tweet     *types.Tweet
	err       error
	listCalls int
	getCalls  int
}

func (f *fakeFallback) List(_ context.Context, _ types.FilterOptions) ([]types.Tweet, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tweets, nil
}

func (f *fakeFallback) GetByID(_ context.Context, _ string) (*types.Tweet, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.tweet, nil
}

func tweet(id string) types.Tweet {
	return types.Tweet{ID: id, Text: "hiring", TweetURL: "https://twitter.com/u/status/" + id}
}

// --- GetTweets waterfall ---

func TestGetTweets_AggregatorIsExclusive(t *testing.T) {
	aggregator := &fakeAggregator{configured: true, tweets: []types.Tweet{tweet("a1")}}
	social := &fakeSocial{configured: true, tweets: []types.Tweet{tweet("t1")}}
	enricher := &fakeEnricher{}
	fallback := &fakeFallback{}

	service := NewService(ServiceConfig{
		Aggregator: aggregator,
		Social:     social,
		Enricher:   enricher,
		Fallback:   fallback,
	})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Equal(t, "a1", tweets[0].ID)

	// Aggregator output is returned as-is: no other source or enrichment runs.
	assert.Equal(t, 1, aggregator.listCalls)
	assert.Zero(t, social.searchCalls)
	assert.Zero(t, enricher.summarizeAllCalls)
	assert.Zero(t, enricher.summarizeCalls)
	assert.Zero(t, fallback.listCalls)
	assert.Nil(t, tweets[0].AISummary)
}

func TestGetTweets_SocialResultsAreEnriched(t *testing.T) {
	social := &fakeSocial{configured: true, tweets: []types.Tweet{tweet("t1"), tweet("t2")}}
	enricher := &fakeEnricher{}
	fallback := &fakeFallback{}

	service := NewService(ServiceConfig{Social: social, Enricher: enricher, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, 1, enricher.summarizeAllCalls)
	for _, result := range tweets {
		require.NotNil(t, result.AISummary)
		assert.NotEmpty(t, result.AISummary.Role)
		assert.NotEmpty(t, result.AISummary.Company)
		assert.NotEmpty(t, result.AISummary.Location)
		assert.NotEmpty(t, result.AISummary.HowToApply)
		assert.NotEmpty(t, result.AISummary.Salary)
	}
	assert.Zero(t, fallback.listCalls)
}

func TestGetTweets_SocialWithoutEnricher(t *testing.T) {
	social := &fakeSocial{configured: true, tweets: []types.Tweet{tweet("t1")}}
	fallback := &fakeFallback{}

	service := NewService(ServiceConfig{Social: social, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Nil(t, tweets[0].AISummary)
}

func TestGetTweets_NotConfiguredFallsBackToMock(t *testing.T) {
	social := &fakeSocial{configured: true, err: &NotConfiguredError{Source: "Twitter API"}}
	enricher := &fakeEnricher{}
	mockTweets := []types.Tweet{tweet("m1"), tweet("m2")}
	fallback := &fakeFallback{tweets: mockTweets}

	service := NewService(ServiceConfig{Social: social, Enricher: enricher, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)

	// Exactly the fallback output, never enriched.
	assert.Equal(t, mockTweets, tweets)
	assert.Equal(t, 1, fallback.listCalls)
	assert.Zero(t, enricher.summarizeAllCalls)
}

func TestGetTweets_EmptySocialResultFallsBackToMock(t *testing.T) {
	social := &fakeSocial{configured: true, tweets: []types.Tweet{}}
	mockTweets := []types.Tweet{tweet("m1")}
	fallback := &fakeFallback{tweets: mockTweets}

	service := NewService(ServiceConfig{Social: social, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	assert.Equal(t, mockTweets, tweets)
	assert.Equal(t, 1, social.searchCalls)
	assert.Equal(t, 1, fallback.listCalls)
}

func TestGetTweets_SocialFailureFallsBackToMock(t *testing.T) {
	social := &fakeSocial{configured: true, err: &SourceUnavailableError{Source: "Twitter API", Kind: FailureRateLimit, Message: "429"}}
	fallback := &fakeFallback{tweets: []types.Tweet{tweet("m1")}}

	service := NewService(ServiceConfig{Social: social, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, tweets, 1)
}

func TestGetTweets_AggregatorFailureFallsBackToMock(t *testing.T) {
	aggregator := &fakeAggregator{configured: true, err: errors.New("boom")}
	fallback := &fakeFallback{tweets: []types.Tweet{tweet("m1")}}

	service := NewService(ServiceConfig{Aggregator: aggregator, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, tweets, 1)
	assert.Equal(t, 1, fallback.listCalls)
}

func TestGetTweets_NothingConfiguredUsesMock(t *testing.T) {
	enricher := &fakeEnricher{}
	fallback := &fakeFallback{tweets: []types.Tweet{tweet("m1")}}

	service := NewService(ServiceConfig{Enricher: enricher, Fallback: fallback})

	tweets, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.NoError(t, err)
	assert.Len(t, tweets, 1)
	assert.Nil(t, tweets[0].AISummary)
	assert.Zero(t, enricher.summarizeAllCalls)
}

func TestGetTweets_ErrorSurfacesWhenFallbackAlsoFails(t *testing.T) {
	social := &fakeSocial{configured: true, err: &SourceUnavailableError{Source: "Twitter API", Kind: FailureNetwork, Message: "down"}}
	fallback := &fakeFallback{err: errors.New("fallback broken")}

	service := NewService(ServiceConfig{Social: social, Fallback: fallback})

	_, err := service.GetTweets(context.Background(), types.FilterOptions{})
	require.Error(t, err)
}

// --- GetTweetByID ---

func TestGetTweetByID_AggregatorPath(t *testing.T) {
	want := tweet("a1")
	aggregator := &fakeAggregator{configured: true, tweet: &want}
	social := &fakeSocial{configured: true}
	enricher := &fakeEnricher{}

	service := NewService(ServiceConfig{
		Aggregator: aggregator,
		Social:     social,
		Enricher:   enricher,
		Fallback:   &fakeFallback{},
	})

	got, err := service.GetTweetByID(context.Background(), "a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a1", got.ID)
	assert.Zero(t, social.getCalls)
	assert.Zero(t, enricher.summarizeCalls)
}

func TestGetTweetByID_SocialEnrichesSingleTweet(t *testing.T) {
	found := tweet("t1")
	social := &fakeSocial{configured: true, tweet: &found}
	enricher := &fakeEnricher{}

	service := NewService(ServiceConfig{Social: social, Enricher: enricher, Fallback: &fakeFallback{}})

	got, err := service.GetTweetByID(context.Background(), "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.AISummary)
	assert.Equal(t, 1, enricher.summarizeCalls)
}

func TestGetTweetByID_SocialMissFallsBackToMock(t *testing.T) {
	social := &fakeSocial{configured: true, tweet: nil}
	mockTweet := tweet("m1")
	fallback := &fakeFallback{tweet: &mockTweet}

	service := NewService(ServiceConfig{Social: social, Fallback: fallback})

	got, err := service.GetTweetByID(context.Background(), "m1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, 1, fallback.getCalls)
}

func TestGetTweetByID_PreexistingSummaryNotReenriched(t *testing.T) {
	found := tweet("t1")
	found.AISummary = types.PlaceholderSummary()
	social := &fakeSocial{configured: true, tweet: &found}
	enricher := &fakeEnricher{}

	service := NewService(ServiceConfig{Social: social, Enricher: enricher, Fallback: &fakeFallback{}})

	got, err := service.GetTweetByID(context.Background(), "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Zero(t, enricher.summarizeCalls)
	assert.Equal(t, types.NotSpecified, got.AISummary.Role)
}

// --- availability ---

func TestAvailability_LocalFlags(t *testing.T) {
	tests := []struct {
		name     string
		social   *fakeSocial
		enricher Enricher
		want     types.APIStatus
	}{
		{
			name:     "both configured",
			social:   &fakeSocial{configured: true},
			enricher: &fakeEnricher{},
			want:     types.APIStatus{Twitter: true, Gemini: true},
		},
		{
			name:   "social only",
			social: &fakeSocial{configured: true},
			want:   types.APIStatus{Twitter: true},
		},
		{
			name: "nothing configured",
			want: types.APIStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := ServiceConfig{Enricher: tt.enricher, Fallback: &fakeFallback{}}
			if tt.social != nil {
				cfg.Social = tt.social
			}
			service := NewService(cfg)
			assert.Equal(t, tt.want, service.Availability())
		})
	}
}

func TestRefreshAvailability_UsesAggregatorStatus(t *testing.T) {
	aggregator := &fakeAggregator{configured: true, status: types.APIStatus{Twitter: true, Gemini: true}}
	service := NewService(ServiceConfig{Aggregator: aggregator, Fallback: &fakeFallback{}})

	status := service.RefreshAvailability(context.Background())
	assert.Equal(t, types.APIStatus{Twitter: true, Gemini: true}, status)
	assert.Equal(t, 1, aggregator.statusCalls)
	assert.Equal(t, status, service.Availability())
}
