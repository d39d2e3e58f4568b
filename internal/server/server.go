package server

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	redisstore "github.com/gofiber/storage/redis/v3"
	"github.com/gofiber/template/html/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"emotiondetector/internal/config"
	"emotiondetector/internal/handlers/api"
	"emotiondetector/internal/metrics"
	"emotiondetector/internal/validation"
	"emotiondetector/web"
)

// allMethods is every method the CORS policy permits for the trusted origin.
var allMethods = []string{
	fiber.MethodGet,
	fiber.MethodHead,
	fiber.MethodPost,
	fiber.MethodPut,
	fiber.MethodPatch,
	fiber.MethodDelete,
	fiber.MethodOptions,
}

// Server wraps the Fiber app and configuration.
type Server struct {
	App      *fiber.App
	Cfg      *config.Config
	Registry *prometheus.Registry
	Recorder *metrics.Recorder

	storage fiber.Storage // nil unless rate limiting is backed by Redis
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) (*Server, error) {
	if valid, msg := validation.ValidateOrigin(cfg.CORSOrigin); !valid {
		return nil, fmt.Errorf("invalid CORS_ORIGIN %q: %s", cfg.CORSOrigin, msg)
	}
	corsOrigin := validation.NormalizeOrigin(cfg.CORSOrigin)

	views, err := fs.Sub(web.FS, "views")
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.Reload(cfg.IsDev())

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			}

			return c.Status(code).JSON(api.ErrorBody(message))
		},
	})

	// Global middleware
	app.Use(recoverer.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New())

	// CORS middleware - exactly one trusted origin, credentials allowed.
	// AllowHeaders is left empty so requested headers are reflected back.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     allMethods,
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	var storage fiber.Storage
	if cfg.RedisURL != "" {
		storage, err = newLimiterStorage(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Println("Rate limiter using Redis storage")
	}

	// Rate limiting middleware - per IP, probes exempt
	app.Use(limiter.New(limiter.Config{
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Minute,
		Storage:    storage,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	}))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Server{
		App:      app,
		Cfg:      cfg,
		Registry: registry,
		Recorder: metrics.NewRecorder(registry),
		storage:  storage,
	}, nil
}

// Start starts the server with the configured address and TLS settings.
func (s *Server) Start() error {
	if s.Cfg.TLSEnabled {
		tlsConfig, err := buildTLSConfig(s.Cfg)
		if err != nil {
			return err
		}
		listenConfig := fiber.ListenConfig{
			CertFile:      s.Cfg.TLSCertFile,
			CertKeyFile:   s.Cfg.TLSKeyFile,
			TLSConfigFunc: func(tc *tls.Config) { *tc = *tlsConfig },
		}
		if s.Cfg.IsMTLSEnabled() {
			log.Printf("Starting server with mTLS on %s", s.Cfg.ServerAddr)
		} else {
			log.Printf("Starting server with TLS on %s", s.Cfg.ServerAddr)
		}
		return s.App.Listen(s.Cfg.ServerAddr, listenConfig)
	}
	return s.App.Listen(s.Cfg.ServerAddr)
}

// Shutdown gracefully shuts down the server and releases limiter storage.
func (s *Server) Shutdown() error {
	err := s.App.Shutdown()
	if s.storage != nil {
		if closeErr := s.storage.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close limiter storage: %w", closeErr))
		}
	}
	return err
}

// newLimiterStorage connects Redis-backed limiter storage. The storage
// constructor panics on a bad URL or failed ping; both come back as errors.
func newLimiterStorage(url string) (storage fiber.Storage, err error) {
	if _, err := redis.ParseURL(url); err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			storage = nil
			err = fmt.Errorf("failed to connect limiter storage: %v", r)
		}
	}()

	return redisstore.New(redisstore.Config{URL: url}), nil
}

// buildTLSConfig creates a TLS config for mTLS if CA file is provided.
func buildTLSConfig(cfg *config.Config) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if cfg.TLSCAFile != "" {
		caCert, err := os.ReadFile(cfg.TLSCAFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA file: %w", err)
		}

		caCertPool := x509.NewCertPool()
		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, errors.New("failed to parse CA certificate")
		}

		tlsConfig.ClientCAs = caCertPool
		tlsConfig.ClientAuth = tls.RequireAndVerifyClientCert
	}

	return tlsConfig, nil
}
