// Package grader compares a submitted free-text answer against a word's
// accepted meanings. Grading is deterministic and never touches progress
// state; the box transition is the caller's job.
package grader

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// Accepted meanings are Turkish, so lowering must use Turkish casing rules:
// "I" folds to "ı" and "İ" to "i". A language-agnostic ToLower would reject
// correct answers typed in caps.
var turkishLower = cases.Lower(language.Turkish)

// Result is the verdict for one submitted answer
type Result struct {
	IsCorrect      bool               `json:"is_correct"`
	MatchedMeaning string             `json:"matched_meaning,omitempty"`
	CorrectAnswers models.MeaningList `json:"correct_answers"`
}

// Grade checks a submitted answer against every accepted meaning of a word.
// The answer is correct when it equals any meaning after normalization.
func Grade(word *models.Word, answer string) (*Result, error) {
	normalized := Normalize(answer)
	if normalized == "" {
		return nil, fmt.Errorf("empty answer: %w", models.ErrInvalidInput)
	}

	result := &Result{CorrectAnswers: word.TurkishMeanings}
	for _, meaning := range word.TurkishMeanings {
		if Normalize(meaning) == normalized {
			result.IsCorrect = true
			result.MatchedMeaning = meaning
			break
		}
	}
	return result, nil
}

// Normalize trims the string, collapses inner whitespace runs to single
// spaces and lowercases with Turkish casing rules
func Normalize(s string) string {
	return turkishLower.String(strings.Join(strings.Fields(s), " "))
}
