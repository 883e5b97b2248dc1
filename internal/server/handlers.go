package server

import (
	"net/http"
	"strings"

	"github.com/naman/xhire/internal/types"
)

// parseFilters builds filter criteria from request query parameters.
// Both repeated parameters (?jobType=a&jobType=b) and comma-separated values
// (?jobType=a,b) are accepted.
func parseFilters(r *http.Request) types.FilterOptions {
	query := r.URL.Query()
	return types.FilterOptions{
		JobTypes:     splitParam(query["jobType"]),
		Roles:        splitParam(query["roles"]),
		DateRange:    query.Get("dateRange"),
		VerifiedOnly: query.Get("verifiedOnly") == "true",
		RawQuery:     query.Get("query"),
		Search:       query.Get("search"),
	}
}

func splitParam(values []string) []string {
	var result []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}
	return result
}

// handleListTweets returns job-posting tweets for the requested filters.
func (s *Server) handleListTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := s.jobs.GetTweets(r.Context(), parseFilters(r))
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if tweets == nil {
		tweets = []types.Tweet{}
	}
	s.jsonResponse(w, http.StatusOK, tweets)
}

// handleGetTweet returns one tweet by id, or 404 when absent everywhere.
func (s *Server) handleGetTweet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tweet, err := s.jobs.GetTweetByID(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}
	if tweet == nil {
		s.errorResponse(w, http.StatusNotFound, "tweet not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, tweet)
}

// handleStatus returns the cached source availability state.
func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.jobs.Availability())
}

// handleRefreshStatus recomputes and returns the availability state.
func (s *Server) handleRefreshStatus(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.jobs.RefreshAvailability(r.Context()))
}

// handleListBookmarks returns the bookmarked ids in insertion order.
func (s *Server) handleListBookmarks(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.bookmarks.List())
}

// handleAddBookmark records a bookmark. Idempotent.
func (s *Server) handleAddBookmark(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.bookmarks.Add(id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "bookmarked": true})
}

// handleRemoveBookmark deletes a bookmark. Idempotent.
func (s *Server) handleRemoveBookmark(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.bookmarks.Remove(id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "bookmarked": false})
}
