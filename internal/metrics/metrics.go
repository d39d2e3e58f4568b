package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"emotiondetector/internal/models"
)

// Match outcome label values
const (
	OutcomeMatched   = "matched"
	OutcomeNoKeyword = "no_keyword"
)

// Recorder tracks detection outcomes. A nil Recorder is valid and records nothing.
type Recorder struct {
	detections *prometheus.CounterVec
	confidence prometheus.Histogram
	rejected   prometheus.Counter
}

// NewRecorder creates the detection collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		detections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emotion_detections_total",
			Help: "Total analyzed texts by detected emotion and match outcome",
		}, []string{"emotion", "outcome"}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "emotion_detection_confidence",
			Help:    "Confidence reported for analyzed texts",
			Buckets: prometheus.LinearBuckets(0.5, 0.1, 6),
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "emotion_requests_rejected_total",
			Help: "Total analyze requests rejected as malformed",
		}),
	}
	reg.MustRegister(r.detections, r.confidence, r.rejected)
	return r
}

// RecordDetection counts one detector result.
func (r *Recorder) RecordDetection(result models.AnalysisResult) {
	if r == nil {
		return
	}
	outcome := OutcomeMatched
	if result.Emotion == models.EmotionNeutral {
		outcome = OutcomeNoKeyword
	}
	r.detections.WithLabelValues(result.Emotion, outcome).Inc()
	r.confidence.Observe(result.Confidence)
}

// RecordRejected counts one malformed analyze request.
func (r *Recorder) RecordRejected() {
	if r == nil {
		return
	}
	r.rejected.Inc()
}
