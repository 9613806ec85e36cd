// Package auth covers the two login paths: student code lookup and the
// admin password check that mints a JWT for the upload endpoints.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/muratdeveli03/kelime-uygulama/internal/database"
	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// Service verifies student and admin credentials
type Service struct {
	students          *database.StudentRepository
	adminPasswordHash string // hex-encoded SHA-256
	jwtSecret         []byte
	tokenTTL          time.Duration
}

// NewService creates an auth service
func NewService(adminPasswordHash string, jwtSecret []byte) *Service {
	return &Service{
		students:          database.NewStudentRepository(),
		adminPasswordHash: adminPasswordHash,
		jwtSecret:         jwtSecret,
		tokenTTL:          24 * time.Hour,
	}
}

// AuthenticateStudent looks a student up by login code
func (s *Service) AuthenticateStudent(code string) (*models.Student, error) {
	if code == "" {
		return nil, fmt.Errorf("empty student code: %w", models.ErrInvalidInput)
	}
	return s.students.GetByCode(code)
}

// AuthenticateAdmin checks the admin password and returns a signed token
func (s *Service) AuthenticateAdmin(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	got := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(got), []byte(s.adminPasswordHash)) != 1 {
		return "", fmt.Errorf("invalid admin password: %w", models.ErrUnauthorized)
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, nil
}

// VerifyAdminToken validates a token from the Authorization header
func (s *Service) VerifyAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return fmt.Errorf("invalid token: %w", models.ErrUnauthorized)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return fmt.Errorf("not an admin token: %w", models.ErrUnauthorized)
	}
	return nil
}
