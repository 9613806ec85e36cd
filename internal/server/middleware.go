package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// requireAdmin guards the upload endpoints with the admin JWT
func (s *Server) requireAdmin(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return fmt.Errorf("missing bearer token: %w", models.ErrUnauthorized)
	}
	if err := s.auth.VerifyAdminToken(token); err != nil {
		return err
	}
	return c.Next()
}
