package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStudentWord_UsesCanonicalDateFieldName(t *testing.T) {
	date := "2025-03-10"
	raw, err := json.Marshal(StudentWord{ID: "w1", English: "play", Box: 2, LastStudiedOn: &date})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"last_studied_on":"2025-03-10"`) {
		t.Fatalf("word-list view should use last_studied_on like every other surface, got %s", raw)
	}
}
