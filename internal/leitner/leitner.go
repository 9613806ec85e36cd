// Package leitner implements the five-box spaced-repetition policy: a
// correct answer moves a word one box up (capped at box 5), an incorrect
// answer sends it back to box 1, and each box has a fixed review interval.
// All functions are pure; "today" is always passed in by the caller.
package leitner

import (
	"fmt"
	"time"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// Policy holds the per-box review intervals in days, indexed by box number.
type Policy struct {
	Intervals map[int]int
}

// DefaultPolicy returns the fixed interval schedule: words in low boxes come
// back quickly, words in high boxes rest longer.
func DefaultPolicy() *Policy {
	return &Policy{
		Intervals: map[int]int{
			1: 1,
			2: 2,
			3: 4,
			4: 7,
			5: 14,
		},
	}
}

// Interval returns the review interval in days for a box
func (p *Policy) Interval(box int) (int, error) {
	days, ok := p.Intervals[box]
	if !ok {
		return 0, fmt.Errorf("box %d out of range", box)
	}
	return days, nil
}

// IsDue reports whether an entry should be studied today. A never-studied
// entry is always due; otherwise the box interval must have elapsed since
// the last study date.
func (p *Policy) IsDue(entry *models.ProgressEntry, today time.Time) (bool, error) {
	interval, err := p.Interval(entry.Box)
	if err != nil {
		return false, err
	}
	if entry.LastStudiedOn == nil {
		return true, nil
	}
	last, err := models.ParseDate(*entry.LastStudiedOn)
	if err != nil {
		return false, fmt.Errorf("bad last_studied_on %q: %v", *entry.LastStudiedOn, err)
	}
	return daysBetween(last, today) >= interval, nil
}

// NextDue returns the derived date on which an entry becomes due. A
// never-studied entry is due on any date, so today is returned as-is.
func (p *Policy) NextDue(entry *models.ProgressEntry, today time.Time) (time.Time, error) {
	if entry.LastStudiedOn == nil {
		return truncateToDay(today), nil
	}
	interval, err := p.Interval(entry.Box)
	if err != nil {
		return time.Time{}, err
	}
	last, err := models.ParseDate(*entry.LastStudiedOn)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad last_studied_on %q: %v", *entry.LastStudiedOn, err)
	}
	return last.AddDate(0, 0, interval), nil
}

// Apply performs the box transition for a graded answer and stamps the study
// date. It returns a new entry and never mutates its input.
func Apply(entry models.ProgressEntry, correct bool, today time.Time) models.ProgressEntry {
	if correct {
		if entry.Box < models.MaxBox {
			entry.Box++
		}
	} else {
		entry.Box = models.MinBox
	}
	date := models.FormatDate(today)
	entry.LastStudiedOn = &date
	return entry
}

// daysBetween counts whole calendar days from a to b, ignoring clock time
func daysBetween(a, b time.Time) int {
	return int(truncateToDay(b).Sub(truncateToDay(a)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
