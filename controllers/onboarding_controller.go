package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/pedro-boudoux/sublet-app/services"
)

// maxVoiceUploadBytes caps the audio payload at 10 MB.
const maxVoiceUploadBytes = 10 << 20

// VoiceOnboarder is what the onboarding endpoint needs from the
// onboarding service.
type VoiceOnboarder interface {
	VoiceOnboarding(ctx context.Context, audio []byte, mimeType string) (*services.OnboardingResult, error)
}

// OnboardingController handles voice-driven profile onboarding.
type OnboardingController struct {
	Onboarding VoiceOnboarder
}

// NewOnboardingController initializes the controller
func NewOnboardingController(onboarding VoiceOnboarder) *OnboardingController {
	return &OnboardingController{Onboarding: onboarding}
}

// HandleVoiceOnboarding accepts a raw audio body, transcribes it, and
// returns the transcription alongside the extracted profile draft.
func (c *OnboardingController) HandleVoiceOnboarding(w http.ResponseWriter, r *http.Request) {
	mimeType := r.Header.Get("Content-Type")
	if mimeType == "" {
		respondError(w, http.StatusBadRequest, KindMissingField, "Content-Type header is required")
		return
	}

	audio, err := io.ReadAll(io.LimitReader(r.Body, maxVoiceUploadBytes+1))
	if err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "failed to read audio payload")
		return
	}
	if len(audio) == 0 {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "audio payload is empty")
		return
	}
	if len(audio) > maxVoiceUploadBytes {
		respondError(w, http.StatusRequestEntityTooLarge, KindInvalidBody, "audio payload exceeds 10MB limit")
		return
	}

	result, err := c.Onboarding.VoiceOnboarding(r.Context(), audio, mimeType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
