package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"emotiondetector/internal/detector"
	"emotiondetector/internal/metrics"
	"emotiondetector/internal/models"
)

// AnalyzeHandler runs the keyword detector over submitted text.
type AnalyzeHandler struct {
	recorder *metrics.Recorder
}

// NewAnalyzeHandler creates a new analyze handler. recorder may be nil.
func NewAnalyzeHandler(recorder *metrics.Recorder) *AnalyzeHandler {
	return &AnalyzeHandler{recorder: recorder}
}

// Analyze decodes {"text": "..."} and responds with the detected emotion.
// The result is returned bare, not wrapped in the success envelope.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var body models.AnalysisRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		h.recorder.RecordRejected()
		slog.Debug("rejected analyze request", "request_id", requestid.FromContext(c), "error", err)

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "text" {
			return jsonError(c, fiber.StatusBadRequest, "text must be a string")
		}
		return jsonError(c, fiber.StatusBadRequest, "invalid JSON body")
	}
	if body.Text == nil {
		h.recorder.RecordRejected()
		return jsonError(c, fiber.StatusBadRequest, "text is required")
	}

	result := detector.Detect(*body.Text)
	h.recorder.RecordDetection(result)

	return c.JSON(result)
}
