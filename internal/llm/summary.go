package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/naman/xhire/internal/types"
)

// maxConcurrentSummaries bounds the fan-out when summarizing a batch.
const maxConcurrentSummaries = 4

// jsonObjectPattern locates the JSON object inside a model response that may
// carry surrounding prose despite the JSON response MIME type.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// Summarizer extracts structured job summaries from tweet text.
//
// Enrichment is strictly best-effort: every failure path (API error, malformed
// JSON, schema mismatch) degrades to the all-"Not specified" placeholder and
// never surfaces an error to the caller.
type Summarizer struct {
	client Client
}

// NewSummarizer creates a summarizer backed by the given client.
func NewSummarizer(client Client) *Summarizer {
	return &Summarizer{client: client}
}

// BuildSummaryPrompt constructs the extraction instruction embedding the
// tweet's raw text.
func BuildSummaryPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Please analyze this job posting tweet and extract the following information:\n")
	sb.WriteString("1. Job Role/Position\n")
	sb.WriteString("2. Company Name\n")
	sb.WriteString("3. Location (Remote/Hybrid/On-site, and city/country if mentioned)\n")
	sb.WriteString("4. How to Apply (e.g., DM, email, link, etc.)\n")
	sb.WriteString("5. Salary (if mentioned)\n\n")
	sb.WriteString(fmt.Sprintf("Tweet: %q\n\n", text))
	sb.WriteString("Format the response as a JSON object with these fields:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"role\": \"extracted job role\",\n")
	sb.WriteString("  \"company\": \"extracted company name\",\n")
	sb.WriteString("  \"location\": \"extracted location\",\n")
	sb.WriteString("  \"how_to_apply\": \"extracted application method\",\n")
	sb.WriteString("  \"salary\": \"extracted salary information or 'Not specified'\"\n")
	sb.WriteString("}\n\n")
	sb.WriteString("If any information is not available, use \"Not specified\" as the value.\n")
	return sb.String()
}

// Summarize extracts the five-field summary for one tweet. It never returns an
// error; degraded extraction yields the placeholder summary.
func (s *Summarizer) Summarize(ctx context.Context, tweet types.Tweet) *types.Summary {
	text, err := s.client.GenerateJSON(ctx, BuildSummaryPrompt(tweet.Text))
	if err != nil {
		log.Printf("[llm] summary generation failed for tweet %s: %v", tweet.ID, err)
		return types.PlaceholderSummary()
	}
	return ParseSummary(text)
}

// ParseSummary parses a model response into a fully populated Summary.
// Malformed or schema-invalid responses yield the placeholder summary; fields
// the model left out are filled with the "Not specified" marker so the result
// is never partially populated.
func ParseSummary(text string) *types.Summary {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		log.Printf("[llm] no JSON object found in model response")
		return types.PlaceholderSummary()
	}

	if err := ValidateSummaryJSON(match); err != nil {
		log.Printf("[llm] model response failed schema validation: %v", err)
		return types.PlaceholderSummary()
	}

	var payload struct {
		Role       string `json:"role"`
		Company    string `json:"company"`
		Location   string `json:"location"`
		HowToApply string `json:"how_to_apply"`
		Salary     string `json:"salary"`
	}
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		log.Printf("[llm] failed to parse model response JSON: %v", err)
		return types.PlaceholderSummary()
	}

	return &types.Summary{
		Role:       orNotSpecified(payload.Role),
		Company:    orNotSpecified(payload.Company),
		Location:   orNotSpecified(payload.Location),
		HowToApply: orNotSpecified(payload.HowToApply),
		Salary:     orNotSpecified(payload.Salary),
	}
}

// SummarizeAll attaches a summary to every tweet. Tweets already carrying a
// summary pass through unmodified. Enrichment calls are issued concurrently up
// to a bound; the returned slice preserves input order and length exactly.
func (s *Summarizer) SummarizeAll(ctx context.Context, tweets []types.Tweet) []types.Tweet {
	results := make([]types.Tweet, len(tweets))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentSummaries)
	for i, tweet := range tweets {
		if tweet.AISummary != nil {
			results[i] = tweet
			continue
		}
		group.Go(func() error {
			enriched := tweet
			enriched.AISummary = s.Summarize(ctx, tweet)
			results[i] = enriched
			return nil
		})
	}
	_ = group.Wait() // workers never return errors; degradation happens per tweet

	return results
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return types.NotSpecified
	}
	return value
}
