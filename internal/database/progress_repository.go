package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// ProgressRepository handles database operations for progress entries
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// Get returns the progress entry for a student and word
func (r *ProgressRepository) Get(studentCode, wordID string) (*models.ProgressEntry, error) {
	var entry models.ProgressEntry
	query := DB.Rebind("SELECT * FROM progress WHERE student_code = ? AND word_id = ?")
	err := DB.Get(&entry, query, studentCode, wordID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress for %s/%s: %w", studentCode, wordID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get progress: %v", err)
	}
	return &entry, nil
}

// GetOrCreate returns the progress entry for a student and word,
// materializing a box-1 never-studied entry on first access
func (r *ProgressRepository) GetOrCreate(studentCode, wordID string) (*models.ProgressEntry, error) {
	entry, err := r.Get(studentCode, wordID)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	// A concurrent call may have created the row between the read and the
	// insert; DO NOTHING lets the re-read below pick up whoever won.
	query := DB.Rebind(`
		INSERT INTO progress (student_code, word_id, box, last_studied_on)
		VALUES (?, ?, ?, NULL)
		ON CONFLICT (student_code, word_id) DO NOTHING
	`)
	if _, err := DB.Exec(query, studentCode, wordID, models.MinBox); err != nil {
		return nil, fmt.Errorf("failed to create progress: %v", err)
	}
	return r.Get(studentCode, wordID)
}

// ListForStudent returns all progress entries for a student
func (r *ProgressRepository) ListForStudent(studentCode string) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	query := DB.Rebind("SELECT * FROM progress WHERE student_code = ? ORDER BY word_id")
	err := DB.Select(&entries, query, studentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %v", err)
	}
	return entries, nil
}

// Update writes the box and last-studied date of an existing entry
func (r *ProgressRepository) Update(entry *models.ProgressEntry) error {
	query := DB.Rebind(`
		UPDATE progress SET box = ?, last_studied_on = ?, updated_at = CURRENT_TIMESTAMP
		WHERE student_code = ? AND word_id = ?
	`)
	result, err := DB.Exec(query, entry.Box, entry.LastStudiedOn, entry.StudentCode, entry.WordID)
	if err != nil {
		return fmt.Errorf("failed to update progress: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %v", err)
	}
	if rows == 0 {
		return fmt.Errorf("progress for %s/%s: %w", entry.StudentCode, entry.WordID, models.ErrNotFound)
	}
	return nil
}

// CountForStudent returns the number of progress entries for a student
func (r *ProgressRepository) CountForStudent(studentCode string) (int, error) {
	var count int
	query := DB.Rebind("SELECT COUNT(*) FROM progress WHERE student_code = ?")
	if err := DB.Get(&count, query, studentCode); err != nil {
		return 0, fmt.Errorf("failed to count progress: %v", err)
	}
	return count, nil
}

// CountStudiedOn returns how many of a student's words were studied on a date
func (r *ProgressRepository) CountStudiedOn(studentCode, date string) (int, error) {
	var count int
	query := DB.Rebind("SELECT COUNT(*) FROM progress WHERE student_code = ? AND last_studied_on = ?")
	if err := DB.Get(&count, query, studentCode, date); err != nil {
		return 0, fmt.Errorf("failed to count studied words: %v", err)
	}
	return count, nil
}

// BoxDistribution returns per-box entry counts for a student. Boxes with no
// entries are present with a zero count.
func (r *ProgressRepository) BoxDistribution(studentCode string) (map[int]int, error) {
	rows := []struct {
		Box   int `db:"box"`
		Count int `db:"count"`
	}{}
	query := DB.Rebind(`
		SELECT box, COUNT(*) AS count FROM progress
		WHERE student_code = ?
		GROUP BY box
		ORDER BY box
	`)
	if err := DB.Select(&rows, query, studentCode); err != nil {
		return nil, fmt.Errorf("failed to get box distribution: %v", err)
	}

	dist := make(map[int]int, models.MaxBox)
	for box := models.MinBox; box <= models.MaxBox; box++ {
		dist[box] = 0
	}
	for _, row := range rows {
		if row.Box < models.MinBox || row.Box > models.MaxBox {
			return nil, fmt.Errorf("box %d out of range for student %s", row.Box, studentCode)
		}
		dist[row.Box] = row.Count
	}
	return dist, nil
}
