package twitter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naman/xhire/internal/types"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name    string
		filters types.FilterOptions
		want    string
	}{
		{
			name:    "no filters uses base query",
			filters: types.FilterOptions{},
			want:    `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en`,
		},
		{
			name:    "single job type",
			filters: types.FilterOptions{JobTypes: []string{"Remote"}},
			want:    `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en (remote)`,
		},
		{
			name:    "multiple job types joined with OR",
			filters: types.FilterOptions{JobTypes: []string{"Internship", "Freelance"}},
			want:    `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en ((intern OR internship) OR (freelance OR contract))`,
		},
		{
			name:    "full-time expands to phrase variants",
			filters: types.FilterOptions{JobTypes: []string{"Full-time"}},
			want:    `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en (("full-time" OR "full time" OR permanent))`,
		},
		{
			name:    "unknown job type is skipped",
			filters: types.FilterOptions{JobTypes: []string{"Volunteer"}},
			want:    `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en`,
		},
		{
			name:    "roles are quoted and lowercased",
			filters: types.FilterOptions{Roles: []string{"Frontend Engineer", "Data Scientist"}},
			want:    `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en ("frontend engineer" OR "data scientist")`,
		},
		{
			name: "job types and roles combined",
			filters: types.FilterOptions{
				JobTypes: []string{"Remote"},
				Roles:    []string{"Designer"},
			},
			want: `("hiring" OR "looking for" OR "job opening") -is:retweet lang:en (remote) ("designer")`,
		},
		{
			name: "raw query overrides everything verbatim",
			filters: types.FilterOptions{
				JobTypes: []string{"Remote"},
				Roles:    []string{"Designer"},
				RawQuery: "golang hiring -is:retweet",
			},
			want: "golang hiring -is:retweet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.filters))
		})
	}
}
