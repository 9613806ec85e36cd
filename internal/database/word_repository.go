package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// WordRepository handles database operations for words
type WordRepository struct{}

// NewWordRepository creates a new repository instance
func NewWordRepository() *WordRepository {
	return &WordRepository{}
}

// GetByID returns a word by ID
func (r *WordRepository) GetByID(id string) (*models.Word, error) {
	var word models.Word
	query := DB.Rebind("SELECT * FROM words WHERE id = ?")
	err := DB.Get(&word, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %q: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word by ID: %v", err)
	}
	return &word, nil
}

// GetByClassLevel returns all words for a class level ordered by english term
func (r *WordRepository) GetByClassLevel(classLevel int) ([]models.Word, error) {
	var words []models.Word
	query := DB.Rebind("SELECT * FROM words WHERE class_level = ? ORDER BY english")
	err := DB.Select(&words, query, classLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to get words by class level: %v", err)
	}
	return words, nil
}

// CountByClassLevel returns the number of words assigned to a class level
func (r *WordRepository) CountByClassLevel(classLevel int) (int, error) {
	var count int
	query := DB.Rebind("SELECT COUNT(*) FROM words WHERE class_level = ?")
	if err := DB.Get(&count, query, classLevel); err != nil {
		return 0, fmt.Errorf("failed to count words: %v", err)
	}
	return count, nil
}

// Upsert inserts a word or, when (english, class_level) already exists,
// replaces its meanings (corrective admin re-import). Returns true when a
// new row was created.
func (r *WordRepository) Upsert(word *models.Word) (bool, error) {
	var existingID string
	query := DB.Rebind("SELECT id FROM words WHERE english = ? AND class_level = ?")
	err := DB.QueryRow(query, word.English, word.ClassLevel).Scan(&existingID)

	if errors.Is(err, sql.ErrNoRows) {
		if word.ID == "" {
			word.ID = uuid.NewString()
		}
		query = DB.Rebind(`
			INSERT INTO words (id, english, class_level, turkish_meanings)
			VALUES (?, ?, ?, ?)
		`)
		if _, err := DB.Exec(query, word.ID, word.English, word.ClassLevel, word.TurkishMeanings); err != nil {
			return false, fmt.Errorf("failed to create word: %v", err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check word: %v", err)
	}

	word.ID = existingID
	query = DB.Rebind(`
		UPDATE words SET turkish_meanings = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`)
	if _, err := DB.Exec(query, word.TurkishMeanings, word.ID); err != nil {
		return false, fmt.Errorf("failed to update word: %v", err)
	}
	return false, nil
}
