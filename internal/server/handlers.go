package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

func (s *Server) handleStudentLogin(c *fiber.Ctx) error {
	type loginRequest struct {
		Code string `json:"code" form:"code"`
	}
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("invalid request body: %w", models.ErrInvalidInput)
	}

	student, err := s.auth.AuthenticateStudent(req.Code)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"student": fiber.Map{
			"code":        student.Code,
			"name":        student.Name,
			"class_level": student.ClassLevel,
		},
	})
}

func (s *Server) handleAdminLogin(c *fiber.Ctx) error {
	type loginRequest struct {
		Password string `json:"password" form:"password"`
	}
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("invalid request body: %w", models.ErrInvalidInput)
	}

	token, err := s.auth.AuthenticateAdmin(req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Admin authenticated successfully",
		"token":   token,
	})
}

func (s *Server) handleNextWord(c *fiber.Ctx) error {
	today, err := s.studyDate(c)
	if err != nil {
		return err
	}
	next, err := s.study.GetNextWord(c.Params("code"), today)
	if err != nil {
		return err
	}
	return c.JSON(next)
}

func (s *Server) handleSubmitAnswer(c *fiber.Ctx) error {
	type answerRequest struct {
		StudentCode string `json:"student_code"`
		WordID      string `json:"word_id"`
		Answer      string `json:"answer"`
	}
	var req answerRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("invalid request body: %w", models.ErrInvalidInput)
	}

	today, err := s.studyDate(c)
	if err != nil {
		return err
	}
	result, err := s.study.SubmitAnswer(req.StudentCode, req.WordID, req.Answer, today)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (s *Server) handleStudentStats(c *fiber.Ctx) error {
	today, err := s.studyDate(c)
	if err != nil {
		return err
	}
	stats, err := s.study.Stats(c.Params("code"), today)
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (s *Server) handleStudentWords(c *fiber.Ctx) error {
	words, err := s.study.Words(c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(words)
}

func (s *Server) handleUploadStudents(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fmt.Errorf("file is required: %w", models.ErrInvalidInput)
	}
	f, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %v", err)
	}
	defer f.Close()

	result, err := s.importer.ImportStudents(f, file.Filename)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":          true,
		"students_added":   result.Added,
		"students_updated": result.Updated,
		"skipped":          result.Skipped,
		"errors":           result.Errors,
	})
}

func (s *Server) handleUploadWords(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return fmt.Errorf("file is required: %w", models.ErrInvalidInput)
	}
	f, err := file.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %v", err)
	}
	defer f.Close()

	result, err := s.importer.ImportWords(f, file.Filename)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"words_added":   result.Added,
		"words_updated": result.Updated,
		"skipped":       result.Skipped,
		"errors":        result.Errors,
	})
}

// studyDate resolves "today" for a request: the optional ?date=YYYY-MM-DD
// override (used by tests and the UI date picker), otherwise the current day
// in the configured timezone
func (s *Server) studyDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return s.cfg.Today(), nil
	}
	t, err := models.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", raw, models.ErrInvalidInput)
	}
	return t, nil
}
