package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pedro-boudoux/sublet-app/models"
)

// Messenger is what the message endpoints need from the message
// service.
type Messenger interface {
	CreateMessage(ctx context.Context, matchID, senderID, content string) (*models.Message, error)
	ListMessages(ctx context.Context, matchID string) ([]models.Message, error)
}

// MessageController handles in-match messaging.
type MessageController struct {
	Messages Messenger
}

// NewMessageController initializes the controller
func NewMessageController(messages Messenger) *MessageController {
	return &MessageController{Messages: messages}
}

type createMessageRequest struct {
	SenderID string `json:"senderId"`
	Content  string `json:"content"`
}

func (r createMessageRequest) missingFields() []string {
	var missing []string
	if r.SenderID == "" {
		missing = append(missing, "senderId")
	}
	if r.Content == "" {
		missing = append(missing, "content")
	}
	return missing
}

// HandleCreateMessage appends a message to a match conversation.
func (c *MessageController) HandleCreateMessage(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	var request createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, http.StatusBadRequest, KindInvalidBody, "invalid JSON in request body")
		return
	}
	if missing := request.missingFields(); len(missing) > 0 {
		respondMissingFields(w, missing)
		return
	}

	message, err := c.Messages.CreateMessage(r.Context(), matchID, request.SenderID, request.Content)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, message)
}

// HandleListMessages returns a match's messages, oldest first.
func (c *MessageController) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	messages, err := c.Messages.ListMessages(r.Context(), matchID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"messages": messages,
		"count":    len(messages),
	})
}
