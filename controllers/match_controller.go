package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/services"
)

// MatchLister is what the match endpoints need from the match service.
type MatchLister interface {
	ListMatchesForUser(ctx context.Context, userID string) ([]services.MatchSummary, error)
	GetMatchDetail(ctx context.Context, matchID string) (*services.MatchDetail, error)
}

// MatchController handles the match read surface.
type MatchController struct {
	Matches MatchLister
}

// NewMatchController initializes the controller
func NewMatchController(matches MatchLister) *MatchController {
	return &MatchController{Matches: matches}
}

// HandleListMatches returns the caller's matches, most recent activity
// first.
func (c *MatchController) HandleListMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, KindMissingField, "userId query parameter is required")
		return
	}

	matches, err := c.Matches.ListMatchesForUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"matches": matches,
		"count":   len(matches),
	})
}

// HandleGetMatch fetches a single match with both participants
// hydrated.
func (c *MatchController) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	detail, err := c.Matches.GetMatchDetail(r.Context(), matchID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, detail)
}
