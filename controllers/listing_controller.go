package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/models"
)

// ListingCatalog is what the listing endpoints need from the listing
// service.
type ListingCatalog interface {
	CreateListing(ctx context.Context, listing models.Listing) (*models.Listing, error)
	GetListing(ctx context.Context, id string) (*models.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Listing, error)
	ListRecent(ctx context.Context, limit int) ([]models.Listing, error)
	UpdateListing(ctx context.Context, id string, updates map[string]interface{}) (*models.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

// ListingController handles listing CRUD.
type ListingController struct {
	Listings ListingCatalog
}

// NewListingController initializes the controller
func NewListingController(listings ListingCatalog) *ListingController {
	return &ListingController{Listings: listings}
}

type createListingRequest struct {
	OwnerID       string   `json:"ownerId"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	AvailableDate string   `json:"availableDate"`
	Location      string   `json:"location"`
	DistanceTo    string   `json:"distanceTo"`
	Type          string   `json:"type"`
	Amenities     []string `json:"amenities"`
	LifestyleTags []string `json:"lifestyleTags"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
}

func (r createListingRequest) missingFields() []string {
	var missing []string
	if r.OwnerID == "" {
		missing = append(missing, "ownerId")
	}
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Price == 0 {
		missing = append(missing, "price")
	}
	if r.Location == "" {
		missing = append(missing, "location")
	}
	if r.Type == "" {
		missing = append(missing, "type")
	}
	return missing
}

// HandleCreateListing creates a new listing.
func (c *ListingController) HandleCreateListing(w http.ResponseWriter, r *http.Request) {
	var request createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if missing := request.missingFields(); len(missing) > 0 {
		respondMissingFields(w, missing)
		return
	}

	listing, err := c.Listings.CreateListing(r.Context(), models.Listing{
		OwnerID:       request.OwnerID,
		Title:         request.Title,
		Price:         request.Price,
		AvailableDate: request.AvailableDate,
		Location:      request.Location,
		DistanceTo:    request.DistanceTo,
		Type:          request.Type,
		Amenities:     request.Amenities,
		LifestyleTags: request.LifestyleTags,
		Images:        request.Images,
		Description:   request.Description,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, listing)
}

// HandleGetListing fetches a listing by id.
func (c *ListingController) HandleGetListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	listing, err := c.Listings.GetListing(r.Context(), listingID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// HandleListListings returns listings for an owner when ownerId is
// given, otherwise the most recent listings.
func (c *ListingController) HandleListListings(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID != "" {
		listings, err := c.Listings.ListByOwner(r.Context(), ownerID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"listings": listings,
			"count":    len(listings),
		})
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, KindInvalidBody, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	listings, err := c.Listings.ListRecent(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"listings": listings,
		"count":    len(listings),
	})
}

// HandleUpdateListing applies a partial listing update.
func (c *ListingController) HandleUpdateListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if len(updates) == 0 {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "no fields to update")
		return
	}

	listing, err := c.Listings.UpdateListing(r.Context(), listingID, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// HandleDeleteListing removes a listing.
func (c *ListingController) HandleDeleteListing(w http.ResponseWriter, r *http.Request) {
	listingID := mux.Vars(r)["listingId"]

	if err := c.Listings.DeleteListing(r.Context(), listingID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Listing deleted"})
}
