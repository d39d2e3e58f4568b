package models

// Emotion label constants
const (
	EmotionHappy     = "Happy"
	EmotionSad       = "Sad"
	EmotionAngry     = "Angry"
	EmotionExcited   = "Excited"
	EmotionAnxious   = "Anxious"
	EmotionConfident = "Confident"
	EmotionNeutral   = "Neutral"
)

// AnalysisRequest is the body accepted by POST /analyze.
// Text is a pointer so a missing field can be told apart from an empty string.
type AnalysisRequest struct {
	Text *string `json:"text"`
}

// AnalysisResult is the outcome of running the detector over a piece of text.
type AnalysisResult struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	Emoji      string  `json:"emoji"`
}

// HealthResponse is the payload of GET /healthz.
type HealthResponse struct {
	Keywords int `json:"keywords"`
}
