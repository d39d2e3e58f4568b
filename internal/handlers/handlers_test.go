package handlers

import "testing"

func TestRecognizedEmotions(t *testing.T) {
	got := recognizedEmotions()

	want := []EmotionOption{
		{"Angry", "😠"},
		{"Anxious", "😰"},
		{"Confident", "💪"},
		{"Excited", "🤩"},
		{"Happy", "😄"},
		{"Sad", "😢"},
		{"Neutral", "😐"},
	}

	if len(got) != len(want) {
		t.Fatalf("recognizedEmotions() returned %d options, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("option %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
