package model

import "time"

// VocabWordID uniquely identifies a saved vocabulary word
type VocabWordID string

// Difficulty buckets vocabulary words for filtering
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ValidDifficulty reports whether d is a known difficulty level
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// VocabularyWord is one entry in a user's saved word list
type VocabularyWord struct {
	ID         VocabWordID
	UserID     UserID
	Word       string
	Definition string
	Example    string
	Difficulty Difficulty
	Mastered   bool
	AddedAt    time.Time
}

// Definition is a dictionary entry for a word
type Definition struct {
	Word          string
	Pronunciation string
	PartOfSpeech  string
	Definition    string
	Example       string
	Synonyms      []string
	Antonyms      []string
}
