package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pedro-boudoux/sublet-app/services"
)

// CandidateProvider builds discovery-feed pages.
type CandidateProvider interface {
	GetCandidates(ctx context.Context, userID, location string, limit int) (*services.CandidatePage, error)
}

// FeedController serves the discovery feed.
type FeedController struct {
	Feed CandidateProvider
}

// NewFeedController initializes the controller
func NewFeedController(feed CandidateProvider) *FeedController {
	return &FeedController{Feed: feed}
}

// HandleGetCandidates returns the next batch of un-swiped candidates for a
// user. Looking users get listings; offering users get looking users.
func (c *FeedController) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondMissingFields(w, []string{"userId"})
		return
	}

	location := r.URL.Query().Get("location")
	limit := services.DefaultCandidateLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	page, err := c.Feed.GetCandidates(r.Context(), userID, location, limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var candidates interface{}
	if page.Type == "listings" {
		candidates = page.Listings
	} else {
		candidates = page.Accounts
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
		"type":       page.Type,
		"count":      page.Count(),
		"filters":    page.Filters,
	})
}
