package controllers

import (
	"context"
	"net/http"
)

// LocationSource is what the location endpoint needs from the location
// service.
type LocationSource interface {
	ListLocations(ctx context.Context) ([]string, error)
}

// LocationController serves the known-locations list used by search
// filters.
type LocationController struct {
	Locations LocationSource
}

// NewLocationController initializes the controller
func NewLocationController(locations LocationSource) *LocationController {
	return &LocationController{Locations: locations}
}

// HandleListLocations returns every distinct location seen across
// listings and search preferences.
func (c *LocationController) HandleListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := c.Locations.ListLocations(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}
