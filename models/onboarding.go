package models

// ExtractedProfile is the structured profile pulled out of a voice-onboarding
// transcription. Absent fields come back as zero values; the client decides
// what to prefill.
type ExtractedProfile struct {
	FullName       string   `json:"fullName"`
	Age            int      `json:"age"`
	Gender         string   `json:"gender"`
	SearchLocation string   `json:"searchLocation"`
	Mode           string   `json:"mode"`
	Bio            string   `json:"bio"`
	LifestyleTags  []string `json:"lifestyleTags"`
}
