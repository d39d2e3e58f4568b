// Package detector assigns a coarse emotion to a piece of text using a fixed
// keyword table. The earlier the first keyword appears, the higher the
// confidence.
package detector

import (
	"math"
	"strings"
	"unicode"

	"emotiondetector/internal/models"
)

// DefaultConfidence is reported when no keyword matches.
const DefaultConfidence = 0.5

// tokenPunctuation is trimmed from both ends of every token before lookup.
const tokenPunctuation = ".,!?"

// Detect returns the emotion of the first keyword found in text.
//
// Confidence is 1.0 for a match on the first token and falls linearly
// toward 0.5 as the match moves to the end of the input, rounded to two
// decimals. Text without a keyword is Neutral with confidence 0.5.
func Detect(text string) models.AnalysisResult {
	emotion := models.EmotionNeutral
	confidence := DefaultConfidence

	tokens := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	n := len(tokens)
	for i, token := range tokens {
		label, ok := keywordTable[strings.Trim(token, tokenPunctuation)]
		if !ok {
			continue
		}
		emotion = label
		confidence = round2(1.0 - (float64(i)/float64(n))*0.5)
		break
	}

	return models.AnalysisResult{
		Emotion:    emotion,
		Confidence: confidence,
		Emoji:      EmojiFor(emotion),
	}
}

// isSeparator reports whether r splits tokens: Unicode white space plus the
// file, group, record and unit separators U+001C..U+001F.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
