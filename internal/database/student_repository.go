package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// StudentRepository handles database operations for students
type StudentRepository struct{}

// NewStudentRepository creates a new repository instance
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// GetByCode returns a student by login code
func (r *StudentRepository) GetByCode(code string) (*models.Student, error) {
	var student models.Student
	query := DB.Rebind("SELECT * FROM students WHERE code = ?")
	err := DB.Get(&student, query, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("student %q: %w", code, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %v", err)
	}
	return &student, nil
}

// GetAll returns all students ordered by code
func (r *StudentRepository) GetAll() ([]models.Student, error) {
	var students []models.Student
	err := DB.Select(&students, "SELECT * FROM students ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %v", err)
	}
	return students, nil
}

// Upsert inserts a student or updates name and class level when the code
// already exists. Returns true when a new row was created.
func (r *StudentRepository) Upsert(student *models.Student) (bool, error) {
	var existing string
	query := DB.Rebind("SELECT code FROM students WHERE code = ?")
	err := DB.QueryRow(query, student.Code).Scan(&existing)

	if errors.Is(err, sql.ErrNoRows) {
		query = DB.Rebind(`
			INSERT INTO students (code, name, class_level)
			VALUES (?, ?, ?)
		`)
		if _, err := DB.Exec(query, student.Code, student.Name, student.ClassLevel); err != nil {
			return false, fmt.Errorf("failed to create student: %v", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check student: %v", err)
	}

	query = DB.Rebind(`
		UPDATE students SET name = ?, class_level = ?, updated_at = CURRENT_TIMESTAMP
		WHERE code = ?
	`)
	if _, err := DB.Exec(query, student.Name, student.ClassLevel, student.Code); err != nil {
		return false, fmt.Errorf("failed to update student: %v", err)
	}
	return false, nil
}
