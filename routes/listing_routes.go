package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterListingRoutes sets up routes for listing operations under /api/listings
func RegisterListingRoutes(r *mux.Router, listings controllers.ListingCatalog) {
	controller := controllers.NewListingController(listings)

	listingRouter := r.PathPrefix("/api/listings").Subrouter()

	listingRouter.HandleFunc("", controller.HandleCreateListing).Methods("POST")
	listingRouter.HandleFunc("", controller.HandleListListings).Methods("GET")
	listingRouter.HandleFunc("/{listingId}", controller.HandleGetListing).Methods("GET")
	listingRouter.HandleFunc("/{listingId}", controller.HandleUpdateListing).Methods("PATCH")
	listingRouter.HandleFunc("/{listingId}", controller.HandleDeleteListing).Methods("DELETE")
}
