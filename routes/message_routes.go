package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterMessageRoutes sets up routes for in-match messaging under /api/matches/{matchId}/messages
func RegisterMessageRoutes(r *mux.Router, messages controllers.Messenger) {
	controller := controllers.NewMessageController(messages)

	messageRouter := r.PathPrefix("/api/matches/{matchId}/messages").Subrouter()

	messageRouter.HandleFunc("", controller.HandleCreateMessage).Methods("POST")
	messageRouter.HandleFunc("", controller.HandleListMessages).Methods("GET")
}
