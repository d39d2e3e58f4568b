package handlers

import (
	"sort"

	"emotiondetector/internal/detector"
	"emotiondetector/internal/models"
)

// EmotionOption is one recognized label shown on the index page.
type EmotionOption struct {
	Label string
	Emoji string
}

// recognizedEmotions lists every label the detector can return, sorted by name,
// with Neutral last.
func recognizedEmotions() []EmotionOption {
	seen := make(map[string]bool)
	var labels []string
	for _, label := range detector.Keywords() {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	labels = append(labels, models.EmotionNeutral)

	options := make([]EmotionOption, 0, len(labels))
	for _, label := range labels {
		options = append(options, EmotionOption{Label: label, Emoji: detector.EmojiFor(label)})
	}
	return options
}
