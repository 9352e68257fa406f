package vocab

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/mocks"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context

	user model.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random)
	s.ctx = context.Background()

	s.user = model.User{ID: "user-1", DisplayName: "Alice"}
	s.Require().NoError(s.storage.SaveUser(s.ctx, &s.user))
}

func (s *ServiceSuite) addWord(word string, difficulty model.Difficulty) *model.VocabularyWord {
	s.random.QueueString(word + "-id")
	entry, err := s.service.AddWord(s.ctx, s.user.ID, word, "a definition", "an example", difficulty)
	s.Require().NoError(err)
	return entry
}

// AddWord tests

func (s *ServiceSuite) TestAddWordSucceeds() {
	s.random.QueueString("ABC123")
	entry, err := s.service.AddWord(s.ctx, s.user.ID, "eloquent", "fluent", "she was eloquent", model.DifficultyMedium)
	s.Require().NoError(err)

	s.Equal(model.VocabWordID("w_ABC123"), entry.ID)
	s.Equal("eloquent", entry.Word)
	s.Equal(model.DifficultyMedium, entry.Difficulty)
	s.False(entry.Mastered)
	s.Equal(s.clock.Now(), entry.AddedAt)

	stored, err := s.storage.GetVocabWord(s.ctx, s.user.ID, entry.ID)
	s.Require().NoError(err)
	s.Equal("eloquent", stored.Word)
}

func (s *ServiceSuite) TestAddWordRejectsEmptyWord() {
	_, err := s.service.AddWord(s.ctx, s.user.ID, "   ", "def", "ex", model.DifficultyEasy)
	s.ErrorIs(err, model.ErrInvalidConfig)
}

func (s *ServiceSuite) TestAddWordRejectsUnknownDifficulty() {
	_, err := s.service.AddWord(s.ctx, s.user.ID, "word", "def", "ex", "impossible")
	s.ErrorIs(err, model.ErrInvalidConfig)
}

// ListWords tests

func (s *ServiceSuite) TestListWordsNewestFirst() {
	s.addWord("first", model.DifficultyEasy)
	s.clock.Advance(time.Minute)
	s.addWord("second", model.DifficultyEasy)

	words, err := s.service.ListWords(s.ctx, s.user.ID, ListFilter{})
	s.Require().NoError(err)
	s.Require().Len(words, 2)
	s.Equal("second", words[0].Word)
	s.Equal("first", words[1].Word)
}

func (s *ServiceSuite) TestListWordsFiltersByDifficulty() {
	s.addWord("easy-word", model.DifficultyEasy)
	s.addWord("hard-word", model.DifficultyHard)

	words, err := s.service.ListWords(s.ctx, s.user.ID, ListFilter{Difficulty: model.DifficultyHard})
	s.Require().NoError(err)
	s.Require().Len(words, 1)
	s.Equal("hard-word", words[0].Word)
}

func (s *ServiceSuite) TestListWordsFiltersByMastered() {
	kept := s.addWord("known", model.DifficultyEasy)
	s.addWord("learning", model.DifficultyEasy)
	_, err := s.service.SetMastered(s.ctx, s.user.ID, kept.ID, true)
	s.Require().NoError(err)

	mastered := true
	words, err := s.service.ListWords(s.ctx, s.user.ID, ListFilter{Mastered: &mastered})
	s.Require().NoError(err)
	s.Require().Len(words, 1)
	s.Equal("known", words[0].Word)
}

func (s *ServiceSuite) TestListWordsScopedToUser() {
	s.addWord("mine", model.DifficultyEasy)

	words, err := s.service.ListWords(s.ctx, "someone-else", ListFilter{})
	s.Require().NoError(err)
	s.Empty(words)
}

// SetMastered tests

func (s *ServiceSuite) TestSetMasteredUpdatesWordsLearned() {
	entry := s.addWord("eloquent", model.DifficultyMedium)

	word, err := s.service.SetMastered(s.ctx, s.user.ID, entry.ID, true)
	s.Require().NoError(err)
	s.True(word.Mastered)

	user, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(1, user.Stats.WordsLearned)
}

func (s *ServiceSuite) TestSetMasteredIsIdempotent() {
	entry := s.addWord("eloquent", model.DifficultyMedium)

	_, _ = s.service.SetMastered(s.ctx, s.user.ID, entry.ID, true)
	_, err := s.service.SetMastered(s.ctx, s.user.ID, entry.ID, true)
	s.Require().NoError(err)

	user, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(1, user.Stats.WordsLearned)
}

func (s *ServiceSuite) TestUnmasteringDecrementsWordsLearned() {
	entry := s.addWord("eloquent", model.DifficultyMedium)
	_, _ = s.service.SetMastered(s.ctx, s.user.ID, entry.ID, true)

	_, err := s.service.SetMastered(s.ctx, s.user.ID, entry.ID, false)
	s.Require().NoError(err)

	user, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(0, user.Stats.WordsLearned)
}

func (s *ServiceSuite) TestSetMasteredUnknownWord() {
	_, err := s.service.SetMastered(s.ctx, s.user.ID, "w_missing", true)
	s.ErrorIs(err, model.ErrVocabWordNotFound)
}

// RemoveWord tests

func (s *ServiceSuite) TestRemoveWordDeletes() {
	entry := s.addWord("eloquent", model.DifficultyMedium)

	s.Require().NoError(s.service.RemoveWord(s.ctx, s.user.ID, entry.ID))

	_, err := s.storage.GetVocabWord(s.ctx, s.user.ID, entry.ID)
	s.ErrorIs(err, model.ErrVocabWordNotFound)
}

func (s *ServiceSuite) TestRemoveMasteredWordAdjustsStats() {
	entry := s.addWord("eloquent", model.DifficultyMedium)
	_, _ = s.service.SetMastered(s.ctx, s.user.ID, entry.ID, true)

	s.Require().NoError(s.service.RemoveWord(s.ctx, s.user.ID, entry.ID))

	user, _ := s.storage.GetUser(s.ctx, s.user.ID)
	s.Equal(0, user.Stats.WordsLearned)
}

func (s *ServiceSuite) TestRemoveWordUnknown() {
	err := s.service.RemoveWord(s.ctx, s.user.ID, "w_missing")
	s.ErrorIs(err, model.ErrVocabWordNotFound)
}
