package leitner

import (
	"sort"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// SortByPriority orders due entries for presentation:
// 1. Lower boxes first (closest to being forgotten)
// 2. Within a box, never-studied entries first
// 3. Then oldest last-studied date first
// Ties fall back to word ID so the order is stable across calls.
func SortByPriority(entries []models.ProgressEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		if a.Box != b.Box {
			return a.Box < b.Box
		}

		// Never-studied counts as oldest
		if a.LastStudiedOn == nil && b.LastStudiedOn != nil {
			return true
		}
		if b.LastStudiedOn == nil && a.LastStudiedOn != nil {
			return false
		}
		if a.LastStudiedOn != nil && b.LastStudiedOn != nil && *a.LastStudiedOn != *b.LastStudiedOn {
			return *a.LastStudiedOn < *b.LastStudiedOn
		}

		return a.WordID < b.WordID
	})
}
