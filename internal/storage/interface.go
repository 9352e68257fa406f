package storage

import (
	"context"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// Reads return copies that callers may hold across calls; writes
// replace the stored entity wholesale. Serialization of concurrent
// mutations to a single room is the game layer's responsibility, not
// the store's.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Credential operations
	SaveCredentials(ctx context.Context, creds *model.Credentials) error
	GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	ListRooms(ctx context.Context) ([]*model.Room, error)
	DeleteRoom(ctx context.Context, id model.RoomID) error

	// Vocabulary operations
	SaveVocabWord(ctx context.Context, word *model.VocabularyWord) error
	GetVocabWord(ctx context.Context, userID model.UserID, id model.VocabWordID) (*model.VocabularyWord, error)
	ListVocabWords(ctx context.Context, userID model.UserID) ([]*model.VocabularyWord, error)
	DeleteVocabWord(ctx context.Context, userID model.UserID, id model.VocabWordID) error

	// Dictionary operations
	SaveDefinitions(ctx context.Context, defs []model.Definition) error
	GetDefinition(ctx context.Context, word string) (*model.Definition, error)

	// Friend request operations
	SaveFriendRequest(ctx context.Context, req *model.FriendRequest) error
	GetFriendRequest(ctx context.Context, id model.FriendRequestID) (*model.FriendRequest, error)
	ListFriendRequestsForUser(ctx context.Context, userID model.UserID) ([]*model.FriendRequest, error)
}
