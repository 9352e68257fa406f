package vocab

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/clock"
	"github.com/vocabquest/vocabquest-go/internal/dependencies/random"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

const (
	// WordIDLength is the length of generated vocab word IDs
	WordIDLength = 12
	// WordIDAlphabet is the characters used in vocab word IDs
	WordIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ListFilter narrows ListWords results. Zero value matches everything.
type ListFilter struct {
	// Difficulty, when non-empty, keeps only words at that level
	Difficulty model.Difficulty
	// Mastered, when non-nil, keeps only words with that mastered flag
	Mastered *bool
}

// Service manages each user's saved vocabulary list
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// New creates a new VocabService
func New(storage storage.Storage, clock clock.Clock, random random.Random) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// AddWord saves a word to the user's vocabulary list
func (s *Service) AddWord(ctx context.Context, userID model.UserID, word, definition, example string, difficulty model.Difficulty) (*model.VocabularyWord, error) {
	word = strings.TrimSpace(word)
	if word == "" || !model.ValidDifficulty(difficulty) {
		return nil, model.ErrInvalidConfig
	}

	entry := &model.VocabularyWord{
		ID:         model.VocabWordID("w_" + s.random.String(WordIDLength, WordIDAlphabet)),
		UserID:     userID,
		Word:       word,
		Definition: definition,
		Example:    example,
		Difficulty: difficulty,
		AddedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveVocabWord(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetWord returns one saved word
func (s *Service) GetWord(ctx context.Context, userID model.UserID, id model.VocabWordID) (*model.VocabularyWord, error) {
	return s.storage.GetVocabWord(ctx, userID, id)
}

// ListWords returns the user's saved words matching the filter, most
// recently added first
func (s *Service) ListWords(ctx context.Context, userID model.UserID, filter ListFilter) ([]*model.VocabularyWord, error) {
	words, err := s.storage.ListVocabWords(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.VocabularyWord, 0, len(words))
	for _, w := range words {
		if filter.Difficulty != "" && w.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Mastered != nil && w.Mastered != *filter.Mastered {
			continue
		}
		filtered = append(filtered, w)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].AddedAt.After(filtered[j].AddedAt)
	})
	return filtered, nil
}

// SetMastered flips a word's mastered flag. Newly mastering a word
// increments the user's WordsLearned stat; unmastering decrements it.
func (s *Service) SetMastered(ctx context.Context, userID model.UserID, id model.VocabWordID, mastered bool) (*model.VocabularyWord, error) {
	word, err := s.storage.GetVocabWord(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if word.Mastered == mastered {
		return word, nil
	}

	word.Mastered = mastered
	if err := s.storage.SaveVocabWord(ctx, word); err != nil {
		return nil, err
	}

	if err := s.adjustWordsLearned(ctx, userID, mastered); err != nil {
		return nil, err
	}

	return word, nil
}

// RemoveWord deletes a word from the user's vocabulary list
func (s *Service) RemoveWord(ctx context.Context, userID model.UserID, id model.VocabWordID) error {
	word, err := s.storage.GetVocabWord(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteVocabWord(ctx, userID, id); err != nil {
		return err
	}

	// A mastered word leaving the list no longer counts as learned
	if word.Mastered {
		if err := s.adjustWordsLearned(ctx, userID, false); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) adjustWordsLearned(ctx context.Context, userID model.UserID, up bool) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		// Vocab lists can outlive a deleted profile; nothing to adjust
		if errors.Is(err, model.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if up {
		user.Stats.WordsLearned++
	} else if user.Stats.WordsLearned > 0 {
		user.Stats.WordsLearned--
	}

	return s.storage.SaveUser(ctx, user)
}

// Interface for dependency injection
type ServiceInterface interface {
	AddWord(ctx context.Context, userID model.UserID, word, definition, example string, difficulty model.Difficulty) (*model.VocabularyWord, error)
	GetWord(ctx context.Context, userID model.UserID, id model.VocabWordID) (*model.VocabularyWord, error)
	ListWords(ctx context.Context, userID model.UserID, filter ListFilter) ([]*model.VocabularyWord, error)
	SetMastered(ctx context.Context, userID model.UserID, id model.VocabWordID, mastered bool) (*model.VocabularyWord, error)
	RemoveWord(ctx context.Context, userID model.UserID, id model.VocabWordID) error
}

var _ ServiceInterface = (*Service)(nil)
