package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-boudoux/sublet-app/models"
	"github.com/pedro-boudoux/sublet-app/services"
)

type messengerStub struct {
	message  *models.Message
	messages []models.Message
	err      error
	gotMatch string
	gotUser  string
}

func (s *messengerStub) CreateMessage(_ context.Context, matchID, senderID, content string) (*models.Message, error) {
	s.gotMatch = matchID
	s.gotUser = senderID
	return s.message, s.err
}

func (s *messengerStub) ListMessages(_ context.Context, matchID string) ([]models.Message, error) {
	s.gotMatch = matchID
	return s.messages, s.err
}

func messageRouter(stub *messengerStub) *mux.Router {
	r := mux.NewRouter()
	controller := NewMessageController(stub)
	r.HandleFunc("/api/matches/{matchId}/messages", controller.HandleCreateMessage).Methods("POST")
	r.HandleFunc("/api/matches/{matchId}/messages", controller.HandleListMessages).Methods("GET")
	return r
}

func TestHandleCreateMessage(t *testing.T) {
	stub := &messengerStub{message: &models.Message{ID: "m1", MatchID: "match-1", SenderID: "alice", Content: "hi"}}
	router := messageRouter(stub)

	body := `{"senderId":"alice","content":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/matches/match-1/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "match-1", stub.gotMatch)
	assert.Equal(t, "alice", stub.gotUser)

	var message models.Message
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&message))
	assert.Equal(t, "m1", message.ID)
}

func TestHandleCreateMessageNonParticipant(t *testing.T) {
	router := messageRouter(&messengerStub{err: services.ErrNotParticipant})

	body := `{"senderId":"mallory","content":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/matches/match-1/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, KindNotParticipant, decodeError(t, rec).Error)
}

func TestHandleCreateMessageMissingContent(t *testing.T) {
	router := messageRouter(&messengerStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/matches/match-1/messages", strings.NewReader(`{"senderId":"alice"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "content")
}

func TestHandleListMessages(t *testing.T) {
	stub := &messengerStub{messages: []models.Message{
		{ID: "m1", Content: "hi"},
		{ID: "m2", Content: "hey"},
	}}
	router := messageRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/matches/match-1/messages", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "match-1", stub.gotMatch)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, float64(2), payload["count"])
}
