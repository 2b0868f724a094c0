package routes

import (
	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/controllers"
)

// RegisterS3Routes sets up routes for presigned uploads under /api/uploads
func RegisterS3Routes(r *mux.Router, s3 controllers.UploadURLIssuer) {
	controller := controllers.NewS3Controller(s3)

	uploadRouter := r.PathPrefix("/api/uploads").Subrouter()

	uploadRouter.HandleFunc("", controller.HandleGenerateUploadURL).Methods("POST")
	uploadRouter.HandleFunc("/read-url", controller.HandleGenerateReadURL).Methods("GET")
}
