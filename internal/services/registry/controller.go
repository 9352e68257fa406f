package registry

import (
	"context"
	"errors"
	"sort"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/clock"
	"github.com/vocabquest/vocabquest-go/internal/dependencies/random"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/roomlock"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

const (
	// RoomIDLength is the length of generated room identifiers
	RoomIDLength = 8
	// RoomIDAlphabet is the characters used in room IDs (avoid confusing chars)
	RoomIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// RoomFilter narrows ListRooms results. Zero value matches everything.
type RoomFilter struct {
	// State, when non-empty, keeps only rooms in that state
	State model.GameState
	// MemberID, when non-empty, keeps only rooms the user is a player in
	MemberID model.UserID
}

// Controller manages room membership and the pre-game lobby lifecycle
type Controller struct {
	storage storage.Storage
	locks   *roomlock.Keyed
	clock   clock.Clock
	random  random.Random
	events  model.EventSink
}

// NewController creates a new registry Controller
func NewController(
	storage storage.Storage,
	locks *roomlock.Keyed,
	clock clock.Clock,
	random random.Random,
	events model.EventSink,
) *Controller {
	return &Controller{
		storage: storage,
		locks:   locks,
		clock:   clock,
		random:  random,
		events:  events,
	}
}

// CreateRoom creates a new room with the given user as host.
// The host is seeded as the sole player and is implicitly ready.
func (c *Controller) CreateRoom(ctx context.Context, host model.User, name string, maxRounds int) (*model.Room, error) {
	if maxRounds < model.MinRounds || maxRounds > model.MaxRounds {
		return nil, model.ErrInvalidConfig
	}

	now := c.clock.Now()

	// Generate unique room ID
	var id model.RoomID
	for {
		id = model.RoomID(c.random.String(RoomIDLength, RoomIDAlphabet))
		_, err := c.storage.GetRoom(ctx, id)
		if errors.Is(err, model.ErrRoomNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	room := &model.Room{
		ID:       id,
		Name:     name,
		HostID:   host.ID,
		HostName: host.DisplayName,
		Players: []model.Player{
			{
				UserID:      host.ID,
				DisplayName: host.DisplayName,
				IsReady:     true,
				JoinedAt:    now,
			},
		},
		State:     model.GameStateWaiting,
		MaxRounds: maxRounds,
		Rounds:    []model.Round{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.publish(model.EventRoomCreated, room, host.ID)
	return room, nil
}

// GetRoom retrieves a room by ID
func (c *Controller) GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error) {
	return c.storage.GetRoom(ctx, id)
}

// ListRooms returns rooms matching the filter, newest first.
// Ties on creation time break on room ID so the order is stable.
func (c *Controller) ListRooms(ctx context.Context, filter RoomFilter) ([]*model.Room, error) {
	rooms, err := c.storage.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*model.Room, 0, len(rooms))
	for _, r := range rooms {
		if filter.State != "" && r.State != filter.State {
			continue
		}
		if filter.MemberID != "" && !r.HasPlayer(filter.MemberID) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		}
		return filtered[i].ID < filtered[j].ID
	})

	return filtered, nil
}

// JoinRoom adds a user to a room. Joining a room the user is already a
// member of is a no-op and returns the current room state, so clients
// can retry safely.
func (c *Controller) JoinRoom(ctx context.Context, id model.RoomID, user model.User) (*model.Room, error) {
	defer c.locks.Lock(id)()

	room, err := c.storage.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if room.HasPlayer(user.ID) {
		return room, nil
	}

	if room.State != model.GameStateWaiting {
		return nil, model.ErrRoomNotJoinable
	}
	if room.IsFull() {
		return nil, model.ErrRoomFull
	}

	now := c.clock.Now()
	room.Players = append(room.Players, model.Player{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		JoinedAt:    now,
	})
	room.UpdatedAt = now

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.publish(model.EventPlayerJoined, room, user.ID)
	return room, nil
}

// SetReady marks a player ready or not ready. Only meaningful while the
// room is waiting for the game to start.
func (c *Controller) SetReady(ctx context.Context, id model.RoomID, userID model.UserID, ready bool) (*model.Room, error) {
	defer c.locks.Lock(id)()

	room, err := c.storage.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if room.State != model.GameStateWaiting {
		return nil, model.ErrInvalidTransition
	}

	player := room.GetPlayer(userID)
	if player == nil {
		return nil, model.ErrPlayerNotInRoom
	}

	player.IsReady = ready
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.publish(model.EventPlayerReady, room, userID)
	return room, nil
}

// LeaveRoom removes a user from a room. The last player leaving deletes
// the room; a departing host hands the room to the longest-standing
// remaining player.
func (c *Controller) LeaveRoom(ctx context.Context, id model.RoomID, userID model.UserID) error {
	defer c.locks.Lock(id)()

	room, err := c.storage.GetRoom(ctx, id)
	if err != nil {
		return err
	}

	if !room.HasPlayer(userID) {
		return model.ErrPlayerNotInRoom
	}

	for i := range room.Players {
		if room.Players[i].UserID == userID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}

	if len(room.Players) == 0 {
		if err := c.storage.DeleteRoom(ctx, id); err != nil {
			return err
		}
		c.events.Publish(model.RoomEvent{
			Type:      model.EventPlayerLeft,
			RoomID:    id,
			UserID:    userID,
			Timestamp: c.clock.Now(),
		})
		return nil
	}

	if room.HostID == userID {
		room.HostID = room.Players[0].UserID
		room.HostName = room.Players[0].DisplayName
		// The promoted host inherits the host's implicit readiness
		if room.State == model.GameStateWaiting {
			room.Players[0].IsReady = true
		}
	}

	room.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.publish(model.EventPlayerLeft, room, userID)
	return nil
}

func (c *Controller) publish(t model.EventType, room *model.Room, userID model.UserID) {
	ev := model.RoomEvent{
		Type:      t,
		UserID:    userID,
		Timestamp: c.clock.Now(),
	}
	if room != nil {
		ev.RoomID = room.ID
		ev.Room = room.Clone()
	}
	c.events.Publish(ev)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, host model.User, name string, maxRounds int) (*model.Room, error)
	GetRoom(ctx context.Context, id model.RoomID) (*model.Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*model.Room, error)
	JoinRoom(ctx context.Context, id model.RoomID, user model.User) (*model.Room, error)
	SetReady(ctx context.Context, id model.RoomID, userID model.UserID, ready bool) (*model.Room, error)
	LeaveRoom(ctx context.Context, id model.RoomID, userID model.UserID) error
}

var _ ControllerInterface = (*Controller)(nil)
