package api

import (
	"github.com/gofiber/fiber/v3"

	"emotiondetector/internal/detector"
	"emotiondetector/internal/models"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	keywords int
}

// NewHealthHandler creates a new API health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{keywords: len(detector.Keywords())}
}

// Check reports that the process is serving and how many keywords it knows.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return jsonSuccess(c, models.HealthResponse{Keywords: h.keywords})
}
