package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/models"
	"github.com/pedro-boudoux/sublet-app/services"
)

// SavedShelf is what the saved-listing endpoints need from the saved
// listing service.
type SavedShelf interface {
	SaveListing(ctx context.Context, userID, listingID string) (*models.SavedListing, error)
	ListSaved(ctx context.Context, userID string) ([]services.SavedListingView, error)
	DeleteSaved(ctx context.Context, userID, listingID string) error
}

// SavedController handles the saved-listings shelf.
type SavedController struct {
	Saved SavedShelf
}

// NewSavedController initializes the controller
func NewSavedController(saved SavedShelf) *SavedController {
	return &SavedController{Saved: saved}
}

type saveListingRequest struct {
	UserID    string `json:"userId"`
	ListingID string `json:"listingId"`
}

func (r saveListingRequest) missingFields() []string {
	var missing []string
	if r.UserID == "" {
		missing = append(missing, "userId")
	}
	if r.ListingID == "" {
		missing = append(missing, "listingId")
	}
	return missing
}

// HandleSaveListing bookmarks a listing for a user.
func (c *SavedController) HandleSaveListing(w http.ResponseWriter, r *http.Request) {
	var request saveListingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if missing := request.missingFields(); len(missing) > 0 {
		respondMissingFields(w, missing)
		return
	}

	saved, err := c.Saved.SaveListing(r.Context(), request.UserID, request.ListingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

// HandleListSaved returns a user's saved listings with listing details.
func (c *SavedController) HandleListSaved(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, KindMissingField, "userId query parameter is required")
		return
	}

	saved, err := c.Saved.ListSaved(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"saved": saved,
		"count": len(saved),
	})
}

// HandleDeleteSaved removes a bookmark.
func (c *SavedController) HandleDeleteSaved(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, KindMissingField, "userId query parameter is required")
		return
	}

	if err := c.Saved.DeleteSaved(r.Context(), userID, listingID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Listing removed from saved"})
}
