package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterOnboardingRoutes sets up the voice onboarding route under /api/onboarding
func RegisterOnboardingRoutes(r *mux.Router, onboarding controllers.VoiceOnboarder) {
	controller := controllers.NewOnboardingController(onboarding)

	r.HandleFunc("/api/onboarding/voice", controller.HandleVoiceOnboarding).Methods("POST")
}
