package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/pedro-boudoux/sublet-app/services"
)

// Stable machine-readable error kinds. Clients branch on these; the message
// is for humans only.
const (
	KindMissingField       = "missing_field"
	KindInvalidDirection   = "invalid_direction"
	KindInvalidSwipedType  = "invalid_swiped_type"
	KindInvalidMode        = "invalid_mode"
	KindInvalidListingType = "invalid_type"
	KindInvalidMimeType    = "invalid_mime_type"
	KindSelfSwipe          = "self_swipe"
	KindDuplicateSwipe     = "duplicate_swipe"
	KindNotFound           = "not_found"
	KindAlreadySaved       = "already_saved"
	KindNotParticipant     = "not_participant"
	KindActiveListing      = "active_listing"
	KindInvalidBody        = "invalid_body"
	KindInternal           = "internal"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, errorResponse{Error: kind, Message: message})
}

// respondServiceError maps service sentinels onto statuses and kinds.
// Unknown errors become a generic 500 with no internals leaked.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDirection):
		respondError(w, http.StatusBadRequest, KindInvalidDirection, err.Error())
	case errors.Is(err, services.ErrInvalidSwipedType):
		respondError(w, http.StatusBadRequest, KindInvalidSwipedType, err.Error())
	case errors.Is(err, services.ErrInvalidMode):
		respondError(w, http.StatusBadRequest, KindInvalidMode, err.Error())
	case errors.Is(err, services.ErrInvalidListingType):
		respondError(w, http.StatusBadRequest, KindInvalidListingType, err.Error())
	case errors.Is(err, services.ErrInvalidMimeType):
		respondError(w, http.StatusBadRequest, KindInvalidMimeType, err.Error())
	case errors.Is(err, services.ErrSelfSwipe):
		respondError(w, http.StatusBadRequest, KindSelfSwipe, err.Error())
	case errors.Is(err, services.ErrDuplicateSwipe):
		respondError(w, http.StatusConflict, KindDuplicateSwipe, err.Error())
	case errors.Is(err, services.ErrAlreadySaved):
		respondError(w, http.StatusConflict, KindAlreadySaved, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, KindNotFound, "resource not found")
	case errors.Is(err, services.ErrNotParticipant):
		respondError(w, http.StatusForbidden, KindNotParticipant, err.Error())
	case errors.Is(err, services.ErrActiveListing):
		respondError(w, http.StatusConflict, KindActiveListing, err.Error())
	default:
		log.Printf("Internal error: %v", err)
		respondError(w, http.StatusInternalServerError, KindInternal, "internal server error")
	}
}

// respondMissingFields reports the fields a request body left empty.
func respondMissingFields(w http.ResponseWriter, fields []string) {
	msg := "missing required fields: "
	for i, f := range fields {
		if i > 0 {
			msg += ", "
		}
		msg += f
	}
	respondError(w, http.StatusBadRequest, KindMissingField, msg)
}
