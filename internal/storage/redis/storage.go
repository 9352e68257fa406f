package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := userKey(user.ID)

	// Pipeline keeps the key and the all-users index in sync
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, usersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	keys, err := s.client.SMembers(ctx, usersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.User{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Entry removed since the index was read
		}
		var user model.User
		if err := json.Unmarshal([]byte(val.(string)), &user); err != nil {
			continue
		}
		users = append(users, &user)
	}
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	// Remove the email index entry first so sign-in lookups cannot
	// resolve to a deleted profile
	data, err := s.client.Get(ctx, credentialsKey(id)).Bytes()
	if err == nil {
		var creds model.Credentials
		if jsonErr := json.Unmarshal(data, &creds); jsonErr == nil {
			if delErr := s.client.Del(ctx, emailIndexKey(creds.Email)).Err(); delErr != nil {
				return delErr
			}
		}
	} else if !errors.Is(err, redis.Nil) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, credentialsKey(id))
	pipe.Del(ctx, userKey(id))
	pipe.SRem(ctx, usersIndexKey(), userKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

// Credential operations

func (s *Storage) SaveCredentials(ctx context.Context, creds *model.Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, credentialsKey(creds.UserID), data, 0)
	pipe.Set(ctx, emailIndexKey(creds.Email), string(creds.UserID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error) {
	userID, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	data, err := s.client.Get(ctx, credentialsKey(model.UserID(userID))).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Room operations

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	key := roomKey(room.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, s.cfg.RoomTTL)
	pipe.SAdd(ctx, roomsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) ListRooms(ctx context.Context) ([]*model.Room, error) {
	keys, err := s.client.SMembers(ctx, roomsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Room{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	rooms := make([]*model.Room, 0, len(values))
	staleKeys := make([]interface{}, 0)
	for i, val := range values {
		if val == nil {
			// Room expired; drop it from the index lazily
			staleKeys = append(staleKeys, keys[i])
			continue
		}
		var room model.Room
		if err := json.Unmarshal([]byte(val.(string)), &room); err != nil {
			continue
		}
		rooms = append(rooms, &room)
	}

	if len(staleKeys) > 0 {
		_ = s.client.SRem(ctx, roomsIndexKey(), staleKeys...).Err()
	}

	return rooms, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, id model.RoomID) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, roomKey(id))
	pipe.SRem(ctx, roomsIndexKey(), roomKey(id))
	_, err := pipe.Exec(ctx)
	return err
}

// Vocabulary operations

func (s *Storage) SaveVocabWord(ctx context.Context, word *model.VocabularyWord) error {
	data, err := json.Marshal(word)
	if err != nil {
		return err
	}

	key := vocabKey(word.UserID, word.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, vocabForUserIndexKey(word.UserID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetVocabWord(ctx context.Context, userID model.UserID, id model.VocabWordID) (*model.VocabularyWord, error) {
	data, err := s.client.Get(ctx, vocabKey(userID, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrVocabWordNotFound
		}
		return nil, err
	}

	var word model.VocabularyWord
	if err := json.Unmarshal(data, &word); err != nil {
		return nil, err
	}
	return &word, nil
}

func (s *Storage) ListVocabWords(ctx context.Context, userID model.UserID) ([]*model.VocabularyWord, error) {
	keys, err := s.client.SMembers(ctx, vocabForUserIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	words := make([]*model.VocabularyWord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var word model.VocabularyWord
		if err := json.Unmarshal([]byte(val.(string)), &word); err != nil {
			continue
		}
		words = append(words, &word)
	}
	return words, nil
}

func (s *Storage) DeleteVocabWord(ctx context.Context, userID model.UserID, id model.VocabWordID) error {
	key := vocabKey(userID, id)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return model.ErrVocabWordNotFound
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, vocabForUserIndexKey(userID), key)
	_, err = pipe.Exec(ctx)
	return err
}

// Dictionary operations

func (s *Storage) SaveDefinitions(ctx context.Context, defs []model.Definition) error {
	pipe := s.client.Pipeline()
	for i := range defs {
		data, err := json.Marshal(&defs[i])
		if err != nil {
			return err
		}
		pipe.Set(ctx, definitionKey(defs[i].Word), data, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetDefinition(ctx context.Context, word string) (*model.Definition, error) {
	data, err := s.client.Get(ctx, definitionKey(word)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordNotFound
		}
		return nil, err
	}

	var def model.Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// Friend request operations

func (s *Storage) SaveFriendRequest(ctx context.Context, req *model.FriendRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}

	key := friendRequestKey(req.ID)

	// Index under both participants so either side can list it
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, requestsForUserIndexKey(req.FromUserID), key)
	pipe.SAdd(ctx, requestsForUserIndexKey(req.ToUserID), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetFriendRequest(ctx context.Context, id model.FriendRequestID) (*model.FriendRequest, error) {
	data, err := s.client.Get(ctx, friendRequestKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrFriendRequestNotFound
		}
		return nil, err
	}

	var req model.FriendRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Storage) ListFriendRequestsForUser(ctx context.Context, userID model.UserID) ([]*model.FriendRequest, error) {
	keys, err := s.client.SMembers(ctx, requestsForUserIndexKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	requests := make([]*model.FriendRequest, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var req model.FriendRequest
		if err := json.Unmarshal([]byte(val.(string)), &req); err != nil {
			continue
		}
		requests = append(requests, &req)
	}
	return requests, nil
}
