package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Word represents an English word with its accepted Turkish meanings
type Word struct {
	ID              string      `json:"id" db:"id"`
	English         string      `json:"english" db:"english"`
	ClassLevel      int         `json:"class_level" db:"class_level"`
	TurkishMeanings MeaningList `json:"turkish_meanings" db:"turkish_meanings"`
	CreatedAt       string      `json:"created_at" db:"created_at"`
	UpdatedAt       string      `json:"updated_at" db:"updated_at"`
}

// MeaningList is an ordered set of accepted meanings, stored as a single
// semicolon-joined column. Order is preserved across a round trip.
type MeaningList []string

// Value implements driver.Valuer
func (m MeaningList) Value() (driver.Value, error) {
	return strings.Join(m, ";"), nil
}

// Scan implements sql.Scanner
func (m *MeaningList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MeaningList", src)
	}
	if raw == "" {
		*m = nil
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make(MeaningList, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	*m = out
	return nil
}
