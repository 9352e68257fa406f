package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// All reads return deep copies so callers never observe a room or
// profile mid-mutation.
type Storage struct {
	mu sync.RWMutex

	users       map[model.UserID]*model.User
	credentials map[model.UserID]*model.Credentials
	emailIndex  map[string]model.UserID
	rooms       map[model.RoomID]*model.Room
	vocab       map[vocabKey]*model.VocabularyWord
	definitions map[string]*model.Definition
	requests    map[model.FriendRequestID]*model.FriendRequest
}

type vocabKey struct {
	userID model.UserID
	wordID model.VocabWordID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:       make(map[model.UserID]*model.User),
		credentials: make(map[model.UserID]*model.Credentials),
		emailIndex:  make(map[string]model.UserID),
		rooms:       make(map[model.RoomID]*model.Room),
		vocab:       make(map[vocabKey]*model.VocabularyWord),
		definitions: make(map[string]*model.Definition),
		requests:    make(map[model.FriendRequestID]*model.FriendRequest),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = copyUser(user)
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if creds, ok := s.credentials[id]; ok {
		delete(s.emailIndex, strings.ToLower(creds.Email))
	}
	delete(s.credentials, id)
	delete(s.users, id)
	return nil
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *creds
	s.credentials[creds.UserID] = &c
	s.emailIndex[strings.ToLower(creds.Email)] = creds.UserID
	return nil
}

func (s *Storage) GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.emailIndex[strings.ToLower(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	creds, ok := s.credentials[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	c := *creds
	return &c, nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.ID] = room.Clone()
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room.Clone(), nil
}

func (s *Storage) ListRooms(ctx context.Context) ([]*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]*model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		rooms = append(rooms, r.Clone())
	}
	return rooms, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
	return nil
}

// Vocabulary operations

func (s *Storage) SaveVocabWord(ctx context.Context, word *model.VocabularyWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := *word
	s.vocab[vocabKey{userID: word.UserID, wordID: word.ID}] = &w
	return nil
}

func (s *Storage) GetVocabWord(ctx context.Context, userID model.UserID, id model.VocabWordID) (*model.VocabularyWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	word, ok := s.vocab[vocabKey{userID: userID, wordID: id}]
	if !ok {
		return nil, model.ErrVocabWordNotFound
	}
	w := *word
	return &w, nil
}

func (s *Storage) ListVocabWords(ctx context.Context, userID model.UserID) ([]*model.VocabularyWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var words []*model.VocabularyWord
	for key, word := range s.vocab {
		if key.userID == userID {
			w := *word
			words = append(words, &w)
		}
	}
	return words, nil
}

func (s *Storage) DeleteVocabWord(ctx context.Context, userID model.UserID, id model.VocabWordID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := vocabKey{userID: userID, wordID: id}
	if _, ok := s.vocab[key]; !ok {
		return model.ErrVocabWordNotFound
	}
	delete(s.vocab, key)
	return nil
}

// Dictionary operations

func (s *Storage) SaveDefinitions(ctx context.Context, defs []model.Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range defs {
		d := copyDefinition(&defs[i])
		s.definitions[strings.ToLower(d.Word)] = d
	}
	return nil
}

func (s *Storage) GetDefinition(ctx context.Context, word string) (*model.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.definitions[strings.ToLower(word)]
	if !ok {
		return nil, model.ErrWordNotFound
	}
	return copyDefinition(def), nil
}

// Friend request operations

func (s *Storage) SaveFriendRequest(ctx context.Context, req *model.FriendRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[req.ID] = copyRequest(req)
	return nil
}

func (s *Storage) GetFriendRequest(ctx context.Context, id model.FriendRequestID) (*model.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, model.ErrFriendRequestNotFound
	}
	return copyRequest(req), nil
}

func (s *Storage) ListFriendRequestsForUser(ctx context.Context, userID model.UserID) ([]*model.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var requests []*model.FriendRequest
	for _, req := range s.requests {
		if req.ToUserID == userID || req.FromUserID == userID {
			requests = append(requests, copyRequest(req))
		}
	}
	return requests, nil
}

func copyUser(u *model.User) *model.User {
	c := *u
	c.Friends = make([]model.UserID, len(u.Friends))
	copy(c.Friends, u.Friends)
	return &c
}

func copyDefinition(d *model.Definition) *model.Definition {
	c := *d
	c.Synonyms = append([]string(nil), d.Synonyms...)
	c.Antonyms = append([]string(nil), d.Antonyms...)
	return &c
}

func copyRequest(r *model.FriendRequest) *model.FriendRequest {
	c := *r
	if r.ResolvedAt != nil {
		t := *r.ResolvedAt
		c.ResolvedAt = &t
	}
	return &c
}
