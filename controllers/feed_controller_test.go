package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-boudoux/sublet-app/models"
	"github.com/pedro-boudoux/sublet-app/services"
)

type candidateProviderStub struct {
	page        *services.CandidatePage
	err         error
	gotUserID   string
	gotLocation string
	gotLimit    int
}

func (s *candidateProviderStub) GetCandidates(_ context.Context, userID, location string, limit int) (*services.CandidatePage, error) {
	s.gotUserID = userID
	s.gotLocation = location
	s.gotLimit = limit
	return s.page, s.err
}

func TestHandleGetCandidatesListings(t *testing.T) {
	stub := &candidateProviderStub{page: &services.CandidatePage{
		Type: "listings",
		Listings: []models.Listing{
			{ID: "l1", OwnerID: "host-a"},
			{ID: "l2", OwnerID: "host-b"},
		},
		Filters: services.FeedFilters{Location: "Guelph, On", Limit: 20},
	}}
	controller := NewFeedController(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates?userId=seeker&location=Guelph,+On", nil)
	rec := httptest.NewRecorder()

	controller.HandleGetCandidates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "seeker", stub.gotUserID)
	assert.Equal(t, "Guelph, On", stub.gotLocation)
	assert.Equal(t, services.DefaultCandidateLimit, stub.gotLimit)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "listings", payload["type"])
	assert.Equal(t, float64(2), payload["count"])
	assert.Len(t, payload["candidates"], 2)
}

func TestHandleGetCandidatesUsers(t *testing.T) {
	stub := &candidateProviderStub{page: &services.CandidatePage{
		Type:     "users",
		Accounts: []models.Account{{ID: "seeker-a"}},
		Filters:  services.FeedFilters{Limit: 5},
	}}
	controller := NewFeedController(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates?userId=host&limit=5", nil)
	rec := httptest.NewRecorder()

	controller.HandleGetCandidates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, stub.gotLimit)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "users", payload["type"])
	assert.Equal(t, float64(1), payload["count"])
}

func TestHandleGetCandidatesRequiresUserID(t *testing.T) {
	controller := NewFeedController(&candidateProviderStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rec := httptest.NewRecorder()

	controller.HandleGetCandidates(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindMissingField, decodeError(t, rec).Error)
}

func TestHandleGetCandidatesUnknownUser(t *testing.T) {
	controller := NewFeedController(&candidateProviderStub{err: services.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/candidates?userId=nobody", nil)
	rec := httptest.NewRecorder()

	controller.HandleGetCandidates(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, KindNotFound, decodeError(t, rec).Error)
}
