package models

// StudentStats is the dashboard snapshot for one student
type StudentStats struct {
	TotalWords        int            `json:"total_words"`
	WordsStudiedToday int            `json:"words_studied_today"`
	NextStudyWords    int            `json:"next_study_words"`
	BoxDistribution   map[string]int `json:"box_distribution"` // box_1 .. box_5
}

// StudentWord pairs a word with the box it currently sits in for a student
type StudentWord struct {
	ID              string      `json:"id"`
	English         string      `json:"english"`
	TurkishMeanings MeaningList `json:"turkish_meanings"`
	Box             int         `json:"box"`
	LastStudiedOn   *string     `json:"last_studied_on,omitempty"`
}
