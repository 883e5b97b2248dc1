package mockdata

import (
	"time"

	"github.com/naman/xhire/internal/types"
)

// fixtureSpec pairs a tweet template with its age relative to "now" so the
// fixtures always fall inside realistic date windows.
type fixtureSpec struct {
	age   time.Duration
	tweet types.Tweet
}

var fixtureSpecs = []fixtureSpec{
	{
		age: 2 * time.Hour,
		tweet: types.Tweet{
			ID:   "1",
			Text: "We're hiring a Frontend Engineer at TechStartup! Looking for someone with React, TypeScript, and CSS skills. Remote position with competitive salary. DM for details.",
			User: types.User{
				ID:              "100",
				Name:            "Tech Startup Recruiter",
				Username:        "techstartup",
				ProfileImageURL: "https://via.placeholder.com/48",
				Verified:        true,
			},
			AISummary: &types.Summary{
				Role:       "Frontend Engineer",
				Company:    "TechStartup",
				Location:   "Remote",
				HowToApply: "DM for details",
				Salary:     "Competitive",
			},
			TweetURL: "https://twitter.com/techstartup/status/1",
		},
	},
	{
		age: 5 * time.Hour,
		tweet: types.Tweet{
			ID:   "2",
			Text: "We're expanding our product team @BigCorp! Hiring a Product Manager with 3+ years experience in SaaS. Based in SF but open to remote for the right candidate. Apply at jobs.bigcorp.com",
			User: types.User{
				ID:              "101",
				Name:            "BigCorp Careers",
				Username:        "bigcorp_jobs",
				ProfileImageURL: "https://via.placeholder.com/48",
				Verified:        true,
			},
			AISummary: &types.Summary{
				Role:       "Product Manager",
				Company:    "BigCorp",
				Location:   "San Francisco (Remote possible)",
				HowToApply: "Apply at jobs.bigcorp.com",
				Salary:     types.NotSpecified,
			},
			TweetURL: "https://twitter.com/bigcorp_jobs/status/2",
		},
	},
	{
		age: 12 * time.Hour,
		tweet: types.Tweet{
			ID:   "3",
			Text: "Exciting internship opportunity for CS students! Our AI team is looking for summer interns with Python experience. Paid position. Apply by May 1st. #hiring #internship",
			User: types.User{
				ID:              "102",
				Name:            "AI Research Lab",
				Username:        "airesearch",
				ProfileImageURL: "https://via.placeholder.com/48",
				Verified:        false,
			},
			AISummary: &types.Summary{
				Role:       "AI Intern",
				Company:    "AI Research Lab",
				Location:   types.NotSpecified,
				HowToApply: "Not specified in tweet",
				Salary:     "Paid",
			},
			TweetURL: "https://twitter.com/airesearch/status/3",
		},
	},
	{
		age: 18 * time.Hour,
		tweet: types.Tweet{
			ID:   "4",
			Text: "Freelance opportunity: Looking for a graphic designer for a 3-month project. Experience with brand identity and packaging design required. Remote work, competitive rates. Email portfolio to jobs@designagency.com",
			User: types.User{
				ID:              "103",
				Name:            "Design Agency",
				Username:        "designagency",
				ProfileImageURL: "https://via.placeholder.com/48",
				Verified:        false,
			},
			AISummary: &types.Summary{
				Role:       "Freelance Graphic Designer",
				Company:    "Design Agency",
				Location:   "Remote",
				HowToApply: "Email portfolio to jobs@designagency.com",
				Salary:     "Competitive rates",
			},
			TweetURL: "https://twitter.com/designagency/status/4",
		},
	},
	{
		age: 24 * time.Hour,
		tweet: types.Tweet{
			ID:   "5",
			Text: "HIRING: Senior Backend Developer with experience in Node.js and PostgreSQL. Full-time position with benefits and flexible work arrangements. Apply here: example.com/careers #jobs #hiring #nodejs",
			User: types.User{
				ID:              "104",
				Name:            "Web Solutions Inc",
				Username:        "websolutions",
				ProfileImageURL: "https://via.placeholder.com/48",
				Verified:        true,
			},
			AISummary: &types.Summary{
				Role:       "Senior Backend Developer",
				Company:    "Web Solutions Inc",
				Location:   "Flexible",
				HowToApply: "Apply at example.com/careers",
				Salary:     "Not specified (includes benefits)",
			},
			TweetURL: "https://twitter.com/websolutions/status/5",
		},
	},
	{
		age: 30 * time.Hour,
		tweet: types.Tweet{
			ID:   "6",
			Text: "Remote position: Content Writer needed for our marketing team. Must have experience in SaaS industry. Full-time with health benefits and 401k. DM for details or apply at jobs.saascompany.com",
			User: types.User{
				ID:              "105",
				Name:            "SaaS Company",
				Username:        "saascompany",
				ProfileImageURL: "https://via.placeholder.com/48",
				Verified:        false,
			},
			AISummary: &types.Summary{
				Role:       "Content Writer",
				Company:    "SaaS Company",
				Location:   "Remote",
				HowToApply: "DM or apply at jobs.saascompany.com",
				Salary:     "Not specified (includes benefits)",
			},
			TweetURL: "https://twitter.com/saascompany/status/6",
		},
	},
}

// fixtures materializes the fixture tweets with timestamps relative to now.
func fixtures(now time.Time) []types.Tweet {
	tweets := make([]types.Tweet, len(fixtureSpecs))
	for i, spec := range fixtureSpecs {
		tweet := spec.tweet
		tweet.CreatedAt = now.Add(-spec.age)
		tweets[i] = tweet
	}
	return tweets
}
