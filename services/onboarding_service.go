package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pedro-boudoux/sublet-app/models"
)

const profileExtractionInstruction = `Extract profile information from this transcription. Return ONLY valid JSON:
{
  "fullName": "extracted name or null",
  "age": extracted_number_or_null,
  "gender": "Male" or "Female" or "Other" or null,
  "searchLocation": "City, XX format (e.g. Oshawa, ON or Austin, TX) or null",
  "mode": "looking" or "offering" or null,
  "bio": "2-3 sentence summary",
  "lifestyleTags": ["matched tags from list"]
}

IMPORTANT:
- searchLocation must ALWAYS be formatted as "City, XX" where XX is the 2-letter state/province code (e.g. "Toronto, ON", "New York, NY", "Vancouver, BC").
- gender should be inferred from context clues, name, or pronouns used. If unclear, set to null.

Available lifestyle tags: Non-Smoker, Very Clean, Social Drinker, Dog Lover, Cat Lover,
Pet Friendly, Early Bird, Night Owl, Works from Home, Quiet, Social, Student, Professional

Bio is first-person perspective.`

// TranscriptionClient turns recorded audio into text.
type TranscriptionClient interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// ProfileExtractor turns a transcription into a structured profile.
type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, transcription string) (*models.ExtractedProfile, error)
}

// ElevenLabsClient calls the ElevenLabs speech-to-text REST API.
type ElevenLabsClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewElevenLabsClient builds a transcription client with sane timeouts.
func NewElevenLabsClient(apiKey string) *ElevenLabsClient {
	return &ElevenLabsClient{
		APIKey:     apiKey,
		BaseURL:    "https://api.elevenlabs.io",
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Transcribe uploads the audio as multipart form data and returns the
// transcription text.
func (c *ElevenLabsClient) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "recording.webm")
	if err != nil {
		return "", fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio payload: %w", err)
	}
	if err := writer.WriteField("model_id", "scribe_v1"); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/speech-to-text", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("speech-to-text request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("speech-to-text API error: %d - %s", resp.StatusCode, string(detail))
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	return parsed.Text, nil
}

// GeminiExtractor uses Gemini structured-JSON output to pull profile fields
// out of a transcription.
type GeminiExtractor struct {
	client *genai.Client
}

// NewGeminiExtractor creates the Gemini client.
func NewGeminiExtractor(apiKey string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiExtractor{client: client}, nil
}

// Close releases the underlying client.
func (g *GeminiExtractor) Close() {
	if g.client != nil {
		if err := g.client.Close(); err != nil {
			log.Printf("Error closing GenAI client: %v", err)
		}
	}
}

// ExtractProfile asks Gemini for the structured profile JSON.
func (g *GeminiExtractor) ExtractProfile(ctx context.Context, transcription string) (*models.ExtractedProfile, error) {
	model := g.client.GenerativeModel("gemini-2.0-flash")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(profileExtractionInstruction)},
	}
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf("Transcription: %q", transcription)))
	if err != nil {
		return nil, fmt.Errorf("gemini extraction request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}
	if raw.Len() == 0 {
		return nil, fmt.Errorf("gemini returned empty response")
	}

	var profile models.ExtractedProfile
	if err := json.Unmarshal([]byte(raw.String()), &profile); err != nil {
		return nil, fmt.Errorf("failed to parse extracted profile: %w", err)
	}
	if profile.LifestyleTags == nil {
		profile.LifestyleTags = []string{}
	}
	return &profile, nil
}

// OnboardingService chains speech-to-text and profile extraction for
// voice-driven onboarding. Entirely outside the swipe/match core; a failure
// here never touches ledger or match state.
type OnboardingService struct {
	Transcriber TranscriptionClient
	Extractor   ProfileExtractor
}

// OnboardingResult carries both the raw transcription (shown to the user
// for correction) and the extracted profile.
type OnboardingResult struct {
	Transcription string                   `json:"transcription"`
	Profile       *models.ExtractedProfile `json:"profile"`
}

// VoiceOnboarding transcribes the audio and extracts a profile from it.
func (os *OnboardingService) VoiceOnboarding(ctx context.Context, audio []byte, mimeType string) (*OnboardingResult, error) {
	transcription, err := os.Transcriber.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcription) == "" {
		return nil, fmt.Errorf("transcription came back empty")
	}

	profile, err := os.Extractor.ExtractProfile(ctx, transcription)
	if err != nil {
		return nil, err
	}
	return &OnboardingResult{Transcription: transcription, Profile: profile}, nil
}
