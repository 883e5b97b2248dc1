package twitter

import (
	"fmt"
	"strings"

	"github.com/naman/xhire/internal/types"
)

// baseQuery matches tweets suggestive of hiring, excluding retweets, English only.
const baseQuery = `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en`

// jobTypeTerm translates a job type filter value into search terms.
// Unknown values produce no term rather than an error.
func jobTypeTerm(jobType string) string {
	switch jobType {
	case "Remote":
		return "remote"
	case "Internship":
		return "(intern OR internship)"
	case "Freelance":
		return "(freelance OR contract)"
	case "Full-time":
		return `("full-time" OR "full time" OR permanent)`
	}
	return ""
}

// BuildQuery composes the recent-search query for the given filters.
// A RawQuery override is used verbatim and the structured fields are ignored.
func BuildQuery(filters types.FilterOptions) string {
	if filters.RawQuery != "" {
		return filters.RawQuery
	}

	query := baseQuery

	var jobTypeTerms []string
	for _, jobType := range filters.JobTypes {
		if term := jobTypeTerm(jobType); term != "" {
			jobTypeTerms = append(jobTypeTerms, term)
		}
	}
	if len(jobTypeTerms) > 0 {
		query += fmt.Sprintf(" (%s)", strings.Join(jobTypeTerms, " OR "))
	}

	var roleTerms []string
	for _, role := range filters.Roles {
		roleTerms = append(roleTerms, fmt.Sprintf("%q", strings.ToLower(role)))
	}
	if len(roleTerms) > 0 {
		query += fmt.Sprintf(" (%s)", strings.Join(roleTerms, " OR "))
	}

	return query
}
