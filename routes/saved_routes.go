package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterSavedRoutes sets up routes for saved listings under /api/saved
func RegisterSavedRoutes(r *mux.Router, saved controllers.SavedShelf) {
	controller := controllers.NewSavedController(saved)

	savedRouter := r.PathPrefix("/api/saved").Subrouter()

	savedRouter.HandleFunc("", controller.HandleSaveListing).Methods("POST")
	savedRouter.HandleFunc("", controller.HandleListSaved).Methods("GET")
	savedRouter.HandleFunc("/{listingId}", controller.HandleDeleteSaved).Methods("DELETE")
}
