// Package study orchestrates the spaced-repetition engine over the
// repositories: picking the next due word, grading submissions, applying box
// transitions and deriving dashboard statistics. The service keeps no state
// between calls; everything lives in the progress store.
package study

import (
	"fmt"
	"sync"
	"time"

	"github.com/muratdeveli03/kelime-uygulama/internal/database"
	"github.com/muratdeveli03/kelime-uygulama/internal/grader"
	"github.com/muratdeveli03/kelime-uygulama/internal/leitner"
	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// Service coordinates study sessions for all students
type Service struct {
	students *database.StudentRepository
	words    *database.WordRepository
	progress *database.ProgressRepository
	policy   *leitner.Policy

	// Submissions are serialized per student so two in-flight answers from
	// the same student cannot race on box state. Different students never
	// contend.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a study service with the default five-box policy
func NewService() *Service {
	return &Service{
		students: database.NewStudentRepository(),
		words:    database.NewWordRepository(),
		progress: database.NewProgressRepository(),
		policy:   leitner.DefaultPolicy(),
		locks:    make(map[string]*sync.Mutex),
	}
}

// NextWord is the study endpoint payload for one card
type NextWord struct {
	Completed      bool   `json:"completed"`
	Message        string `json:"message,omitempty"`
	WordID         string `json:"word_id,omitempty"`
	English        string `json:"english,omitempty"`
	CurrentBox     int    `json:"current_box,omitempty"`
	RemainingWords int    `json:"remaining_words,omitempty"`
}

// AnswerResult is the study endpoint payload for a graded submission
type AnswerResult struct {
	WordID         string             `json:"word_id"`
	English        string             `json:"english"`
	IsCorrect      bool               `json:"is_correct"`
	CorrectAnswers models.MeaningList `json:"correct_answers"`
	NewBox         int                `json:"new_box"`
	Message        string             `json:"message"`
}

// GetNextWord returns the single highest-priority due word for a student, or
// a completed result when nothing is due today
func (s *Service) GetNextWord(code string, today time.Time) (*NextWord, error) {
	due, wordsByID, err := s.dueEntries(code, today)
	if err != nil {
		return nil, err
	}

	if len(due) == 0 {
		return &NextWord{
			Completed: true,
			Message:   "Bugünlük çalışma tamamlandı! 🎉 Yarın tekrar gel!",
		}, nil
	}

	leitner.SortByPriority(due)
	next := due[0]
	word := wordsByID[next.WordID]
	return &NextWord{
		WordID:         word.ID,
		English:        word.English,
		CurrentBox:     next.Box,
		RemainingWords: len(due),
	}, nil
}

// SubmitAnswer grades an answer, applies the box transition and writes the
// new state through to the progress store. The verdict comes only from the
// grader; callers cannot assert correctness themselves.
func (s *Service) SubmitAnswer(code, wordID, answer string, today time.Time) (*AnswerResult, error) {
	lock := s.studentLock(code)
	lock.Lock()
	defer lock.Unlock()

	student, err := s.students.GetByCode(code)
	if err != nil {
		return nil, err
	}
	word, err := s.words.GetByID(wordID)
	if err != nil {
		return nil, err
	}
	// Cross-class words are never assigned, so from this student's point of
	// view the word does not exist. Grading it would materialize a progress
	// entry outside the student's class.
	if word.ClassLevel != student.ClassLevel {
		return nil, fmt.Errorf("word %q is not assigned to class %d: %w",
			wordID, student.ClassLevel, models.ErrNotFound)
	}

	verdict, err := grader.Grade(word, answer)
	if err != nil {
		return nil, err
	}

	entry, err := s.progress.GetOrCreate(code, wordID)
	if err != nil {
		return nil, err
	}
	if entry.Box < models.MinBox || entry.Box > models.MaxBox {
		return nil, fmt.Errorf("progress for %s/%s has box %d out of range", code, wordID, entry.Box)
	}

	oldBox := entry.Box
	updated := leitner.Apply(*entry, verdict.IsCorrect, today)
	if err := s.progress.Update(&updated); err != nil {
		return nil, err
	}

	var message string
	switch {
	case verdict.IsCorrect && updated.Box > oldBox:
		message = fmt.Sprintf("Doğru! Kelime %d. kutuya geçti! 📦✨", updated.Box)
	case verdict.IsCorrect:
		message = "Mükemmel! Kelime son kutuda kalıyor! 🏆"
	default:
		message = "Yanlış! Kelime 1. kutuya geri döndü. 📝"
	}

	return &AnswerResult{
		WordID:         word.ID,
		English:        word.English,
		IsCorrect:      verdict.IsCorrect,
		CorrectAnswers: verdict.CorrectAnswers,
		NewBox:         updated.Box,
		Message:        message,
	}, nil
}

// Stats derives the dashboard snapshot for a student
func (s *Service) Stats(code string, today time.Time) (*models.StudentStats, error) {
	due, _, err := s.dueEntries(code, today)
	if err != nil {
		return nil, err
	}

	total, err := s.progress.CountForStudent(code)
	if err != nil {
		return nil, err
	}
	studiedToday, err := s.progress.CountStudiedOn(code, models.FormatDate(today))
	if err != nil {
		return nil, err
	}
	dist, err := s.progress.BoxDistribution(code)
	if err != nil {
		return nil, err
	}

	boxes := make(map[string]int, models.MaxBox)
	for box, count := range dist {
		boxes[fmt.Sprintf("box_%d", box)] = count
	}

	return &models.StudentStats{
		TotalWords:        total,
		WordsStudiedToday: studiedToday,
		NextStudyWords:    len(due),
		BoxDistribution:   boxes,
	}, nil
}

// Words returns every word of the student's class with its current box,
// sorted by box
func (s *Service) Words(code string) ([]models.StudentWord, error) {
	student, err := s.students.GetByCode(code)
	if err != nil {
		return nil, err
	}
	words, err := s.words.GetByClassLevel(student.ClassLevel)
	if err != nil {
		return nil, err
	}
	entries, err := s.progress.ListForStudent(code)
	if err != nil {
		return nil, err
	}

	byWord := make(map[string]models.ProgressEntry, len(entries))
	for _, e := range entries {
		byWord[e.WordID] = e
	}

	result := make([]models.StudentWord, 0, len(words))
	for _, w := range words {
		sw := models.StudentWord{
			ID:              w.ID,
			English:         w.English,
			TurkishMeanings: w.TurkishMeanings,
			Box:             models.MinBox,
		}
		if e, ok := byWord[w.ID]; ok {
			sw.Box = e.Box
			sw.LastStudiedOn = e.LastStudiedOn
		}
		result = append(result, sw)
	}

	sortStudentWords(result)
	return result, nil
}

// dueEntries materializes progress rows for the student's class words and
// returns the entries due today, excluding anything already studied today
func (s *Service) dueEntries(code string, today time.Time) ([]models.ProgressEntry, map[string]models.Word, error) {
	student, err := s.students.GetByCode(code)
	if err != nil {
		return nil, nil, err
	}
	words, err := s.words.GetByClassLevel(student.ClassLevel)
	if err != nil {
		return nil, nil, err
	}

	todayStr := models.FormatDate(today)
	wordsByID := make(map[string]models.Word, len(words))
	var due []models.ProgressEntry

	for _, word := range words {
		wordsByID[word.ID] = word

		entry, err := s.progress.GetOrCreate(code, word.ID)
		if err != nil {
			return nil, nil, err
		}
		if entry.LastStudiedOn != nil && *entry.LastStudiedOn == todayStr {
			continue // one pass per word per day, whatever the verdict was
		}
		ok, err := s.policy.IsDue(entry, today)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			due = append(due, *entry)
		}
	}

	return due, wordsByID, nil
}

func (s *Service) studentLock(code string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[code] = lock
	}
	return lock
}
