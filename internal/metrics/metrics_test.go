package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"emotiondetector/internal/models"
)

func TestRecordDetection(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.RecordDetection(models.AnalysisResult{Emotion: "Happy", Confidence: 1.0, Emoji: "😄"})
	r.RecordDetection(models.AnalysisResult{Emotion: "Happy", Confidence: 0.67, Emoji: "😄"})
	r.RecordDetection(models.AnalysisResult{Emotion: "Neutral", Confidence: 0.5, Emoji: "😐"})

	if got := testutil.ToFloat64(r.detections.WithLabelValues("Happy", OutcomeMatched)); got != 2 {
		t.Errorf("Happy/matched = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.detections.WithLabelValues("Neutral", OutcomeNoKeyword)); got != 1 {
		t.Errorf("Neutral/no_keyword = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.confidence); got != 1 {
		t.Errorf("confidence histogram series = %d, want 1", got)
	}
}

func TestRecordRejected(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.RecordRejected()
	r.RecordRejected()

	if got := testutil.ToFloat64(r.rejected); got != 2 {
		t.Errorf("rejected = %v, want 2", got)
	}
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	// Must not panic.
	r.RecordDetection(models.AnalysisResult{Emotion: "Sad", Confidence: 0.63})
	r.RecordRejected()
}
