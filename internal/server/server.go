// Package server exposes the study engine over HTTP.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/muratdeveli03/kelime-uygulama/internal/auth"
	"github.com/muratdeveli03/kelime-uygulama/internal/config"
	"github.com/muratdeveli03/kelime-uygulama/internal/importer"
	"github.com/muratdeveli03/kelime-uygulama/internal/study"
	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// Server wires the HTTP API to the underlying services
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	auth     *auth.Service
	study    *study.Service
	importer *importer.Importer
}

// New builds the Fiber app with all routes registered
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		auth:     auth.NewService(cfg.AdminPasswordHash, []byte(cfg.JWTSecret)),
		study:    study.NewService(),
		importer: importer.New(),
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	s.app.Use(logger.New())
	s.app.Use(cors.New())

	s.registerRoutes()
	return s
}

// Listen starts serving on the configured address
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.ListenAddr)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Post("/auth/student", s.handleStudentLogin)
	api.Post("/auth/admin", s.handleAdminLogin)

	api.Get("/study/:code/next-word", s.handleNextWord)
	api.Post("/study/answer", s.handleSubmitAnswer)

	api.Get("/student/:code/stats", s.handleStudentStats)
	api.Get("/student/:code/words", s.handleStudentWords)

	admin := api.Group("/admin", s.requireAdmin)
	admin.Post("/upload-students", s.handleUploadStudents)
	admin.Post("/upload-words", s.handleUploadWords)
}

// errorHandler maps the shared error taxonomy onto HTTP status codes
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidInput):
		code = fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		code = fiber.StatusUnauthorized
	default:
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
