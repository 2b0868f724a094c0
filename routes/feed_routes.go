package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterFeedRoutes sets up the candidate feed route under /api/candidates
func RegisterFeedRoutes(r *mux.Router, feed controllers.CandidateProvider) {
	controller := controllers.NewFeedController(feed)

	r.HandleFunc("/api/candidates", controller.HandleGetCandidates).Methods("GET")
}
