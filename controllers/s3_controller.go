package controllers

import (
	"context"
	"encoding/json"
	"net/http"
)

// UploadURLIssuer is what the upload endpoint needs from the S3
// service.
type UploadURLIssuer interface {
	GenerateUploadURL(ctx context.Context, prefix, fileName, fileType string) (string, string, error)
	GenerateReadURL(ctx context.Context, key string) (string, error)
}

// S3Controller issues presigned URLs for direct-to-bucket image
// uploads.
type S3Controller struct {
	S3 UploadURLIssuer
}

// NewS3Controller initializes the controller
func NewS3Controller(s3 UploadURLIssuer) *S3Controller {
	return &S3Controller{S3: s3}
}

type uploadURLRequest struct {
	Prefix   string `json:"prefix"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (r uploadURLRequest) missingFields() []string {
	var missing []string
	if r.FileName == "" {
		missing = append(missing, "fileName")
	}
	if r.FileType == "" {
		missing = append(missing, "fileType")
	}
	return missing
}

// HandleGenerateUploadURL returns a presigned PUT URL for an image
// upload.
func (c *S3Controller) HandleGenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var request uploadURLRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if missing := request.missingFields(); len(missing) > 0 {
		respondMissingFields(w, missing)
		return
	}
	if request.Prefix == "" {
		request.Prefix = "uploads"
	}

	url, key, err := c.S3.GenerateUploadURL(r.Context(), request.Prefix, request.FileName, request.FileType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"uploadUrl": url,
		"key":       key,
	})
}

// HandleGenerateReadURL returns a presigned GET URL for a stored
// object.
func (c *S3Controller) HandleGenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, KindMissingField, "key query parameter is required")
		return
	}

	url, err := c.S3.GenerateReadURL(r.Context(), key)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
