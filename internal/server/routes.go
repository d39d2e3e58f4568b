package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"emotiondetector/internal/handlers"
	"emotiondetector/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes() {
	analyzeHandler := api.NewAnalyzeHandler(s.Recorder)
	healthHandler := api.NewHealthHandler()
	indexHandler := handlers.NewIndexHandler("Emotion Detector")

	s.App.Get("/", indexHandler.Show)
	s.App.Post("/analyze", analyzeHandler.Analyze)

	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{
		Registry: s.Registry,
	})))
}
