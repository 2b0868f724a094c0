package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterLocationRoutes sets up the locations route under /api/locations
func RegisterLocationRoutes(r *mux.Router, locations controllers.LocationSource) {
	controller := controllers.NewLocationController(locations)

	r.HandleFunc("/api/locations", controller.HandleListLocations).Methods("GET")
}
