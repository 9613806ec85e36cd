package study

import (
	"sort"

	"github.com/muratdeveli03/kelime-uygulama/pkg/models"
)

// sortStudentWords orders the word-list view by box, then english term
func sortStudentWords(words []models.StudentWord) {
	sort.Slice(words, func(i, j int) bool {
		if words[i].Box != words[j].Box {
			return words[i].Box < words[j].Box
		}
		return words[i].English < words[j].English
	})
}
