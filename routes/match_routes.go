package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterMatchRoutes sets up routes for match retrieval under /api/matches
func RegisterMatchRoutes(r *mux.Router, matches controllers.MatchLister) {
	controller := controllers.NewMatchController(matches)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("", controller.HandleListMatches).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.HandleGetMatch).Methods("GET")
}
