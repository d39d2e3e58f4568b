package detector

import "emotiondetector/internal/models"

const neutralEmoji = "😐"

// keywordTable maps a lowercase word to the emotion it signals.
// Several words may share a label. Never written after init.
var keywordTable = map[string]string{
	"happy":     models.EmotionHappy,
	"joy":       models.EmotionHappy,
	"good":      models.EmotionHappy,
	"great":     models.EmotionHappy,
	"sad":       models.EmotionSad,
	"unhappy":   models.EmotionSad,
	"depressed": models.EmotionSad,
	"angry":     models.EmotionAngry,
	"mad":       models.EmotionAngry,
	"furious":   models.EmotionAngry,
	"excited":   models.EmotionExcited,
	"nervous":   models.EmotionAnxious,
	"worried":   models.EmotionAnxious,
	"anxious":   models.EmotionAnxious,
	"confident": models.EmotionConfident,
}

var emojiTable = map[string]string{
	models.EmotionHappy:     "😄",
	models.EmotionSad:       "😢",
	models.EmotionAngry:     "😠",
	models.EmotionExcited:   "🤩",
	models.EmotionAnxious:   "😰",
	models.EmotionConfident: "💪",
	models.EmotionNeutral:   neutralEmoji,
}

// Keywords returns a copy of the keyword table.
func Keywords() map[string]string {
	out := make(map[string]string, len(keywordTable))
	for k, v := range keywordTable {
		out[k] = v
	}
	return out
}

// EmojiFor returns the emoji for an emotion label, falling back to the
// neutral face for labels it does not know.
func EmojiFor(emotion string) string {
	if e, ok := emojiTable[emotion]; ok {
		return e
	}
	return neutralEmoji
}
