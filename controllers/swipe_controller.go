package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pedro-boudoux/sublet-app/services"
)

// SwipeRecorder is what the swipe endpoints need from the swipe service.
type SwipeRecorder interface {
	RecordSwipe(ctx context.Context, swiperID, swipedID, swipedType, direction string) (*services.SwipeResult, error)
	ResetSwipes(ctx context.Context, userID string) (int, error)
}

// SwipeController handles swipe recording and the administrative reset.
type SwipeController struct {
	Swipes SwipeRecorder
}

// NewSwipeController initializes the controller
func NewSwipeController(swipes SwipeRecorder) *SwipeController {
	return &SwipeController{Swipes: swipes}
}

type createSwipeRequest struct {
	SwiperID   string `json:"swiperId"`
	SwipedID   string `json:"swipedId"`
	SwipedType string `json:"swipedType"`
	Direction  string `json:"direction"`
}

func (r createSwipeRequest) missingFields() []string {
	var missing []string
	if r.SwiperID == "" {
		missing = append(missing, "swiperId")
	}
	if r.SwipedID == "" {
		missing = append(missing, "swipedId")
	}
	if r.SwipedType == "" {
		missing = append(missing, "swipedType")
	}
	if r.Direction == "" {
		missing = append(missing, "direction")
	}
	return missing
}

// HandleCreateSwipe records a swipe and reports whether it produced a match.
func (c *SwipeController) HandleCreateSwipe(w http.ResponseWriter, r *http.Request) {
	var request createSwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if missing := request.missingFields(); len(missing) > 0 {
		respondMissingFields(w, missing)
		return
	}

	result, err := c.Swipes.RecordSwipe(r.Context(), request.SwiperID, request.SwipedID, request.SwipedType, request.Direction)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// HandleResetSwipes purges a user's swipe history.
func (c *SwipeController) HandleResetSwipes(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondMissingFields(w, []string{"userId"})
		return
	}

	deleted, err := c.Swipes.ResetSwipes(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Swipes reset successfully",
		"deletedCount": deleted,
	})
}
