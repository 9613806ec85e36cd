package grader

import (
	"errors"
	"testing"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

func play() *models.Word {
	return &models.Word{
		ID:              "w1",
		English:         "play",
		ClassLevel:      9,
		TurkishMeanings: models.MeaningList{"oynamak", "çalmak"},
	}
}

func TestGrade_ExactMatch(t *testing.T) {
	result, err := Grade(play(), "oynamak")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsCorrect {
		t.Error("exact meaning should be correct")
	}
	if result.MatchedMeaning != "oynamak" {
		t.Errorf("matched meaning: got %q, want %q", result.MatchedMeaning, "oynamak")
	}
}

func TestGrade_SecondMeaningAlsoAccepted(t *testing.T) {
	result, err := Grade(play(), "çalmak")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsCorrect {
		t.Error("any accepted meaning should be correct")
	}
}

func TestGrade_WrongAnswer(t *testing.T) {
	result, err := Grade(play(), "yanlış")
	if err != nil {
		t.Fatal(err)
	}
	if result.IsCorrect {
		t.Error("wrong answer graded as correct")
	}
	if result.MatchedMeaning != "" {
		t.Errorf("wrong answer should not match a meaning, got %q", result.MatchedMeaning)
	}
}

func TestGrade_AlwaysCarriesAcceptedMeanings(t *testing.T) {
	for _, answer := range []string{"oynamak", "yanlış"} {
		result, err := Grade(play(), answer)
		if err != nil {
			t.Fatal(err)
		}
		if len(result.CorrectAnswers) != 2 ||
			result.CorrectAnswers[0] != "oynamak" || result.CorrectAnswers[1] != "çalmak" {
			t.Errorf("answer %q: accepted meanings not carried in order: %v", answer, result.CorrectAnswers)
		}
	}
}

func TestGrade_WhitespaceAndCase(t *testing.T) {
	tests := []string{
		"  oynamak  ",
		"OYNAMAK",
		"Oynamak",
	}
	for _, answer := range tests {
		result, err := Grade(play(), answer)
		if err != nil {
			t.Fatalf("answer %q: %v", answer, err)
		}
		if !result.IsCorrect {
			t.Errorf("answer %q should be correct after normalization", answer)
		}
	}
}

func TestGrade_TurkishCasing(t *testing.T) {
	// Turkish has both a dotted and a dotless i with their own uppercase
	// forms. Uppercase submissions of meanings containing either must fold
	// back to the stored lowercase form.
	word := &models.Word{
		ID:              "w2",
		English:         "warm",
		TurkishMeanings: models.MeaningList{"ılık", "içten"},
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"ILIK", true},   // dotless I uppercase folds to ı
		{"İÇTEN", true},  // dotted İ folds to i
		{"ilik", false},  // dotted i is a different letter, not a casing variant
		{"ıçten", false}, // likewise for the dotless form
	}
	for _, tc := range tests {
		result, err := Grade(word, tc.answer)
		if err != nil {
			t.Fatalf("answer %q: %v", tc.answer, err)
		}
		if result.IsCorrect != tc.want {
			t.Errorf("answer %q: got correct=%v, want %v", tc.answer, result.IsCorrect, tc.want)
		}
	}
}

func TestGrade_MultiWordMeaning(t *testing.T) {
	word := &models.Word{
		ID:              "w3",
		English:         "give up",
		TurkishMeanings: models.MeaningList{"vaz geçmek"},
	}
	result, err := Grade(word, "  vaz   geçmek ")
	if err != nil {
		t.Fatal(err)
	}
	if !result.IsCorrect {
		t.Error("inner whitespace runs should collapse before comparison")
	}
}

func TestGrade_EmptyAnswerIsInvalidInput(t *testing.T) {
	for _, answer := range []string{"", "   ", "\t\n"} {
		_, err := Grade(play(), answer)
		if !errors.Is(err, models.ErrInvalidInput) {
			t.Errorf("answer %q: got %v, want ErrInvalidInput", answer, err)
		}
	}
}

func TestGrade_Idempotent(t *testing.T) {
	first, err := Grade(play(), "Çalmak")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Grade(play(), "Çalmak")
	if err != nil {
		t.Fatal(err)
	}
	if first.IsCorrect != second.IsCorrect || first.MatchedMeaning != second.MatchedMeaning {
		t.Error("grading the same answer twice gave different verdicts")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" Kitap ", "kitap"},
		{"IŞIK", "ışık"},
		{"İki  Kelime", "iki kelime"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
