package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterSwipeRoutes sets up routes for swipe operations under /api/swipes
func RegisterSwipeRoutes(r *mux.Router, swipes controllers.SwipeRecorder) {
	controller := controllers.NewSwipeController(swipes)

	swipeRouter := r.PathPrefix("/api/swipes").Subrouter()

	swipeRouter.HandleFunc("", controller.HandleCreateSwipe).Methods("POST")
	swipeRouter.HandleFunc("/reset", controller.HandleResetSwipes).Methods("DELETE")
}
