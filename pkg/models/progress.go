package models

// Leitner box bounds. A value outside this range anywhere in the store is
// corruption, not a grading outcome.
const (
	MinBox = 1
	MaxBox = 5
)

// ProgressEntry tracks one student's standing on one word. The next due date
// is always derived from Box and LastStudiedOn, never stored.
type ProgressEntry struct {
	ID            int     `json:"id" db:"id"`
	StudentCode   string  `json:"student_code" db:"student_code"`
	WordID        string  `json:"word_id" db:"word_id"`
	Box           int     `json:"box" db:"box"`
	LastStudiedOn *string `json:"last_studied_on" db:"last_studied_on"` // YYYY-MM-DD, nil = never studied
	CreatedAt     string  `json:"created_at" db:"created_at"`
	UpdatedAt     string  `json:"updated_at" db:"updated_at"`
}
