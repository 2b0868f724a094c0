package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterUserRoutes sets up routes for account operations under /api/users
func RegisterUserRoutes(r *mux.Router, accounts controllers.AccountDirectory) {
	controller := controllers.NewAccountController(accounts)

	userRouter := r.PathPrefix("/api/users").Subrouter()

	userRouter.HandleFunc("", controller.HandleCreateAccount).Methods("POST")
	userRouter.HandleFunc("/identity/{identityRef}", controller.HandleGetAccountByIdentity).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleGetAccount).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleUpdateAccount).Methods("PATCH")
	userRouter.HandleFunc("/{userId}", controller.HandleDeleteAccount).Methods("DELETE")
}
