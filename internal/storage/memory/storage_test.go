package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:          "user-1",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserReturnsCopy() {
	user := &model.User{ID: "user-1", DisplayName: "Alice", Friends: []model.UserID{"user-2"}}
	_ = s.storage.SaveUser(s.ctx, user)

	first, _ := s.storage.GetUser(s.ctx, "user-1")
	first.DisplayName = "Changed"
	first.Friends[0] = "mutated"

	second, _ := s.storage.GetUser(s.ctx, "user-1")
	s.Equal("Alice", second.DisplayName)
	s.Equal(model.UserID("user-2"), second.Friends[0])
}

func (s *StorageSuite) TestListUsers() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", DisplayName: "Alice"})
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-2", DisplayName: "Bob"})

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 2)
}

func (s *StorageSuite) TestDeleteUserRemovesCredentials() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", DisplayName: "Alice"})
	_ = s.storage.SaveCredentials(s.ctx, &model.Credentials{
		UserID: "user-1",
		Email:  "alice@example.com",
	})

	err := s.storage.DeleteUser(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrUserNotFound)
	_, err = s.storage.GetCredentialsByEmail(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Credential tests

func (s *StorageSuite) TestGetCredentialsByEmailIsCaseInsensitive() {
	_ = s.storage.SaveCredentials(s.ctx, &model.Credentials{
		UserID:       "user-1",
		Email:        "Alice@Example.com",
		PasswordHash: "hash",
	})

	creds, err := s.storage.GetCredentialsByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), creds.UserID)
}

func (s *StorageSuite) TestGetCredentialsByEmailNotFound() {
	_, err := s.storage.GetCredentialsByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Room tests

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := &model.Room{
		ID:        "room-1",
		HostID:    "user-1",
		HostName:  "Alice",
		State:     model.GameStateWaiting,
		MaxRounds: 3,
		Players: []model.Player{
			{UserID: "user-1", DisplayName: "Alice", IsReady: true},
		},
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoom(s.ctx, "room-1")
	s.Require().NoError(err)
	s.Equal(room.ID, retrieved.ID)
	s.Len(retrieved.Players, 1)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestGetRoomReturnsSnapshot() {
	room := &model.Room{
		ID:    "room-1",
		State: model.GameStateWaiting,
		Players: []model.Player{
			{UserID: "user-1", DisplayName: "Alice"},
		},
	}
	_ = s.storage.SaveRoom(s.ctx, room)

	snapshot, _ := s.storage.GetRoom(s.ctx, "room-1")
	snapshot.Players[0].Score = 99
	snapshot.State = model.GameStatePlaying

	fresh, _ := s.storage.GetRoom(s.ctx, "room-1")
	s.Equal(0, fresh.Players[0].Score)
	s.Equal(model.GameStateWaiting, fresh.State)
}

func (s *StorageSuite) TestSaveRoomDetachesCallerCopy() {
	room := &model.Room{
		ID:      "room-1",
		Players: []model.Player{{UserID: "user-1"}},
	}
	_ = s.storage.SaveRoom(s.ctx, room)

	// Mutating the caller's struct after save must not leak into the store
	room.Players[0].Score = 50

	fresh, _ := s.storage.GetRoom(s.ctx, "room-1")
	s.Equal(0, fresh.Players[0].Score)
}

func (s *StorageSuite) TestListRooms() {
	_ = s.storage.SaveRoom(s.ctx, &model.Room{ID: "room-1"})
	_ = s.storage.SaveRoom(s.ctx, &model.Room{ID: "room-2"})

	rooms, err := s.storage.ListRooms(s.ctx)
	s.Require().NoError(err)
	s.Len(rooms, 2)
}

func (s *StorageSuite) TestDeleteRoom() {
	_ = s.storage.SaveRoom(s.ctx, &model.Room{ID: "room-1"})

	err := s.storage.DeleteRoom(s.ctx, "room-1")
	s.Require().NoError(err)

	_, err = s.storage.GetRoom(s.ctx, "room-1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// Vocabulary tests

func (s *StorageSuite) TestSaveAndListVocabWords() {
	_ = s.storage.SaveVocabWord(s.ctx, &model.VocabularyWord{
		ID: "w1", UserID: "user-1", Word: "Ephemeral", Difficulty: model.DifficultyHard,
	})
	_ = s.storage.SaveVocabWord(s.ctx, &model.VocabularyWord{
		ID: "w2", UserID: "user-1", Word: "Resilient", Difficulty: model.DifficultyEasy,
	})
	_ = s.storage.SaveVocabWord(s.ctx, &model.VocabularyWord{
		ID: "w3", UserID: "user-2", Word: "Ubiquitous", Difficulty: model.DifficultyMedium,
	})

	words, err := s.storage.ListVocabWords(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(words, 2)
}

func (s *StorageSuite) TestDeleteVocabWordNotFound() {
	err := s.storage.DeleteVocabWord(s.ctx, "user-1", "missing")
	s.ErrorIs(err, model.ErrVocabWordNotFound)
}

// Dictionary tests

func (s *StorageSuite) TestGetDefinitionIsCaseInsensitive() {
	err := s.storage.SaveDefinitions(s.ctx, []model.Definition{
		{Word: "Eloquent", PartOfSpeech: "adjective"},
	})
	s.Require().NoError(err)

	def, err := s.storage.GetDefinition(s.ctx, "ELOQUENT")
	s.Require().NoError(err)
	s.Equal("Eloquent", def.Word)
}

func (s *StorageSuite) TestGetDefinitionNotFound() {
	_, err := s.storage.GetDefinition(s.ctx, "zzz")
	s.ErrorIs(err, model.ErrWordNotFound)
}

// Friend request tests

func (s *StorageSuite) TestListFriendRequestsForUserCoversBothSides() {
	_ = s.storage.SaveFriendRequest(s.ctx, &model.FriendRequest{
		ID: "req-1", FromUserID: "user-1", ToUserID: "user-2", Status: model.FriendRequestPending,
	})
	_ = s.storage.SaveFriendRequest(s.ctx, &model.FriendRequest{
		ID: "req-2", FromUserID: "user-3", ToUserID: "user-1", Status: model.FriendRequestPending,
	})

	requests, err := s.storage.ListFriendRequestsForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(requests, 2)

	requests, err = s.storage.ListFriendRequestsForUser(s.ctx, "user-2")
	s.Require().NoError(err)
	s.Len(requests, 1)
}

func (s *StorageSuite) TestGetFriendRequestNotFound() {
	_, err := s.storage.GetFriendRequest(s.ctx, "missing")
	s.ErrorIs(err, model.ErrFriendRequestNotFound)
}
