package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/naman/xhire/internal/types"
)

var (
	searchJobTypes []string
	searchRoles    []string
	searchRange    string
	searchVerified bool
	searchQuery    string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run one job search and print the results as JSON",
	Long:  `Fetch job-posting tweets through the configured sources and print them to stdout.`,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVar(&searchJobTypes, "job-type", nil, "Job type filters (Remote, Internship, Freelance, Full-time)")
	searchCmd.Flags().StringSliceVar(&searchRoles, "role", nil, "Role filters")
	searchCmd.Flags().StringVar(&searchRange, "date-range", "", "Date window: 24h, 7d, or 30d")
	searchCmd.Flags().BoolVar(&searchVerified, "verified-only", false, "Only postings from verified accounts")
	searchCmd.Flags().StringVar(&searchQuery, "query", "", "Raw search query, used verbatim instead of the structured filters")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, closeService, err := newJobService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeService()

	tweets, err := service.GetTweets(cmd.Context(), types.FilterOptions{
		JobTypes:     searchJobTypes,
		Roles:        searchRoles,
		DateRange:    searchRange,
		VerifiedOnly: searchVerified,
		RawQuery:     searchQuery,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(tweets)
}
