package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedro-boudoux/sublet-app/models"
)

type transcriberStub struct {
	text string
	err  error
}

func (s transcriberStub) Transcribe(context.Context, []byte, string) (string, error) {
	return s.text, s.err
}

type extractorStub struct {
	profile *models.ExtractedProfile
	err     error
	gotText string
}

func (s *extractorStub) ExtractProfile(_ context.Context, transcription string) (*models.ExtractedProfile, error) {
	s.gotText = transcription
	return s.profile, s.err
}

func TestElevenLabsTranscribe(t *testing.T) {
	var gotKey, gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("xi-api-key")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model_id")

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "hi, I'm Sam and I need a room in Guelph"}`))
	}))
	defer server.Close()

	client := NewElevenLabsClient("test-key")
	client.BaseURL = server.URL

	text, err := client.Transcribe(context.Background(), []byte("fake-audio"), "audio/webm")
	require.NoError(t, err)

	assert.Equal(t, "hi, I'm Sam and I need a room in Guelph", text)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "scribe_v1", gotModel)
}

func TestElevenLabsTranscribeAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "invalid api key"}`))
	}))
	defer server.Close()

	client := NewElevenLabsClient("bad-key")
	client.BaseURL = server.URL

	_, err := client.Transcribe(context.Background(), []byte("fake-audio"), "audio/webm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestVoiceOnboarding(t *testing.T) {
	extractor := &extractorStub{profile: &models.ExtractedProfile{
		FullName:       "Sam Doe",
		Age:            22,
		SearchLocation: "Guelph, On",
		Mode:           models.ModeLooking,
		LifestyleTags:  []string{"Student"},
	}}
	svc := &OnboardingService{
		Transcriber: transcriberStub{text: "I'm Sam, 22, looking in Guelph"},
		Extractor:   extractor,
	}

	result, err := svc.VoiceOnboarding(context.Background(), []byte("fake-audio"), "audio/webm")
	require.NoError(t, err)

	assert.Equal(t, "I'm Sam, 22, looking in Guelph", result.Transcription)
	assert.Equal(t, "I'm Sam, 22, looking in Guelph", extractor.gotText)
	assert.Equal(t, "Sam Doe", result.Profile.FullName)
	assert.Equal(t, models.ModeLooking, result.Profile.Mode)
}

func TestVoiceOnboardingEmptyTranscription(t *testing.T) {
	svc := &OnboardingService{
		Transcriber: transcriberStub{text: "   "},
		Extractor:   &extractorStub{},
	}

	_, err := svc.VoiceOnboarding(context.Background(), []byte("fake-audio"), "audio/webm")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestVoiceOnboardingTranscriberFailure(t *testing.T) {
	boom := errors.New("speech-to-text down")
	svc := &OnboardingService{
		Transcriber: transcriberStub{err: boom},
		Extractor:   &extractorStub{},
	}

	_, err := svc.VoiceOnboarding(context.Background(), []byte("fake-audio"), "audio/webm")
	assert.ErrorIs(t, err, boom)
}
