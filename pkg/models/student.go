package models

// Student represents a pupil identified by a login code
type Student struct {
	Code       string `json:"code" db:"code"`
	Name       string `json:"name" db:"name"`
	ClassLevel int    `json:"class_level" db:"class_level"`
	CreatedAt  string `json:"created_at" db:"created_at"`
	UpdatedAt  string `json:"updated_at" db:"updated_at"`
}
