package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// IndexHandler serves the reflection form.
type IndexHandler struct {
	title    string
	emotions []EmotionOption
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler(title string) *IndexHandler {
	return &IndexHandler{title: title, emotions: recognizedEmotions()}
}

// Show renders the form page.
func (h *IndexHandler) Show(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":       h.title,
		"Emotions":    h.emotions,
		"AnalyzePath": "/analyze",
	})
}
