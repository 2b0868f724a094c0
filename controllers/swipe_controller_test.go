package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-boudoux/sublet-app/services"
)

type swipeRecorderStub struct {
	result       *services.SwipeResult
	err          error
	resetCount   int
	resetErr     error
	gotSwiperID  string
	gotSwipedID  string
	gotType      string
	gotDirection string
	gotResetUser string
}

func (s *swipeRecorderStub) RecordSwipe(_ context.Context, swiperID, swipedID, swipedType, direction string) (*services.SwipeResult, error) {
	s.gotSwiperID = swiperID
	s.gotSwipedID = swipedID
	s.gotType = swipedType
	s.gotDirection = direction
	return s.result, s.err
}

func (s *swipeRecorderStub) ResetSwipes(_ context.Context, userID string) (int, error) {
	s.gotResetUser = userID
	return s.resetCount, s.resetErr
}

func decodeError(t *testing.T, body *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(body.Body).Decode(&resp))
	return resp
}

func TestHandleCreateSwipe(t *testing.T) {
	matchID := "match-1"
	stub := &swipeRecorderStub{result: &services.SwipeResult{
		SwipeID: "swipe-1",
		Matched: true,
		MatchID: &matchID,
	}}
	controller := NewSwipeController(stub)

	body := `{"swiperId":"alice","swipedId":"bob","swipedType":"user","direction":"like"}`
	req := httptest.NewRequest(http.MethodPost, "/api/swipes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	controller.HandleCreateSwipe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", stub.gotSwiperID)
	assert.Equal(t, "bob", stub.gotSwipedID)
	assert.Equal(t, "user", stub.gotType)
	assert.Equal(t, "like", stub.gotDirection)

	var result services.SwipeResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "swipe-1", result.SwipeID)
	assert.True(t, result.Matched)
	require.NotNil(t, result.MatchID)
	assert.Equal(t, "match-1", *result.MatchID)
}

func TestHandleCreateSwipeNoMatchHasNullMatchID(t *testing.T) {
	stub := &swipeRecorderStub{result: &services.SwipeResult{SwipeID: "swipe-1"}}
	controller := NewSwipeController(stub)

	body := `{"swiperId":"alice","swipedId":"bob","swipedType":"user","direction":"like"}`
	req := httptest.NewRequest(http.MethodPost, "/api/swipes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	controller.HandleCreateSwipe(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, false, payload["matched"])
	assert.Contains(t, payload, "matchId")
	assert.Nil(t, payload["matchId"])
}

func TestHandleCreateSwipeMissingFields(t *testing.T) {
	controller := NewSwipeController(&swipeRecorderStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/swipes", strings.NewReader(`{"swiperId":"alice"}`))
	rec := httptest.NewRecorder()

	controller.HandleCreateSwipe(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, KindMissingField, resp.Error)
	assert.Contains(t, resp.Message, "swipedId")
	assert.Contains(t, resp.Message, "direction")
}

func TestHandleCreateSwipeInvalidJSON(t *testing.T) {
	controller := NewSwipeController(&swipeRecorderStub{})

	req := httptest.NewRequest(http.MethodPost, "/api/swipes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	controller.HandleCreateSwipe(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindInvalidBody, decodeError(t, rec).Error)
}

func TestHandleCreateSwipeServiceErrors(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantKind   string
	}{
		{services.ErrSelfSwipe, http.StatusBadRequest, KindSelfSwipe},
		{services.ErrInvalidDirection, http.StatusBadRequest, KindInvalidDirection},
		{services.ErrInvalidSwipedType, http.StatusBadRequest, KindInvalidSwipedType},
		{services.ErrDuplicateSwipe, http.StatusConflict, KindDuplicateSwipe},
	}

	body := `{"swiperId":"alice","swipedId":"bob","swipedType":"user","direction":"like"}`
	for _, tc := range cases {
		controller := NewSwipeController(&swipeRecorderStub{err: tc.err})

		req := httptest.NewRequest(http.MethodPost, "/api/swipes", strings.NewReader(body))
		rec := httptest.NewRecorder()
		controller.HandleCreateSwipe(rec, req)

		assert.Equal(t, tc.wantStatus, rec.Code, "error %v", tc.err)
		assert.Equal(t, tc.wantKind, decodeError(t, rec).Error, "error %v", tc.err)
	}
}

func TestHandleResetSwipes(t *testing.T) {
	stub := &swipeRecorderStub{resetCount: 7}
	controller := NewSwipeController(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/swipes/reset?userId=alice", nil)
	rec := httptest.NewRecorder()

	controller.HandleResetSwipes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", stub.gotResetUser)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Equal(t, "Swipes reset successfully", payload["message"])
	assert.Equal(t, float64(7), payload["deletedCount"])
}

func TestHandleResetSwipesRequiresUserID(t *testing.T) {
	controller := NewSwipeController(&swipeRecorderStub{})

	req := httptest.NewRequest(http.MethodDelete, "/api/swipes/reset", nil)
	rec := httptest.NewRecorder()

	controller.HandleResetSwipes(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, KindMissingField, decodeError(t, rec).Error)
}
