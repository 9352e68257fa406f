package session

import (
	"context"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/game"
	"github.com/vocabquest/vocabquest-go/internal/services/registry"
	"github.com/vocabquest/vocabquest-go/internal/services/scoring"
)

// Service builds per-user session facades over the registry and game
// controllers. The facade is the single entry point presentation code
// talks to; handlers never reach into the controllers directly.
type Service struct {
	registry registry.ControllerInterface
	game     game.ControllerInterface
	notifier *Notifier
}

// NewService creates a new session Service
func NewService(
	registryController registry.ControllerInterface,
	gameController game.ControllerInterface,
	notifier *Notifier,
) *Service {
	return &Service{
		registry: registryController,
		game:     gameController,
		notifier: notifier,
	}
}

// For returns a facade bound to the given authenticated user
func (s *Service) For(user model.User) *Session {
	return &Session{
		user:    user,
		service: s,
	}
}

// Subscribe registers for a room's state-change events
func (s *Service) Subscribe(roomID model.RoomID) (<-chan model.RoomEvent, func()) {
	return s.notifier.Subscribe(roomID)
}

// Session is a facade over the room registry and round controller for
// one authenticated user. It carries the user explicitly; there is no
// ambient current-user state.
type Session struct {
	user    model.User
	service *Service
}

// User returns the authenticated user this session acts as
func (s *Session) User() model.User {
	return s.user
}

// CreateOrJoin joins the identified room, or creates a fresh one when
// roomID is empty. Rejoining a room the user is already in returns the
// current snapshot.
func (s *Session) CreateOrJoin(ctx context.Context, roomID model.RoomID, name string, maxRounds int) (*model.Room, error) {
	if roomID == "" {
		return s.service.registry.CreateRoom(ctx, s.user, name, maxRounds)
	}
	return s.service.registry.JoinRoom(ctx, roomID, s.user)
}

// Room returns a snapshot of the identified room
func (s *Session) Room(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	return s.service.registry.GetRoom(ctx, roomID)
}

// Rooms lists rooms matching the filter, newest first
func (s *Session) Rooms(ctx context.Context, filter registry.RoomFilter) ([]*model.Room, error) {
	return s.service.registry.ListRooms(ctx, filter)
}

// MyRooms lists the rooms this user is a player in
func (s *Session) MyRooms(ctx context.Context) ([]*model.Room, error) {
	return s.service.registry.ListRooms(ctx, registry.RoomFilter{MemberID: s.user.ID})
}

// Ready toggles this user's readiness in the room
func (s *Session) Ready(ctx context.Context, roomID model.RoomID, ready bool) (*model.Room, error) {
	return s.service.registry.SetReady(ctx, roomID, s.user.ID, ready)
}

// Leave removes this user from the room
func (s *Session) Leave(ctx context.Context, roomID model.RoomID) error {
	return s.service.registry.LeaveRoom(ctx, roomID, s.user.ID)
}

// Start begins the game; this user must be the host
func (s *Session) Start(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	return s.service.game.StartGame(ctx, roomID, s.user.ID)
}

// Submit records this user's answers for the current round
func (s *Session) Submit(ctx context.Context, roomID model.RoomID, answers model.CategoryAnswers) (*model.Room, error) {
	return s.service.game.SubmitAnswers(ctx, roomID, s.user.ID, answers)
}

// Tick closes the current round if its deadline has passed
func (s *Session) Tick(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	return s.service.game.Tick(ctx, roomID)
}

// EndRoundIfReady scores the round early if everyone has submitted
func (s *Session) EndRoundIfReady(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	return s.service.game.EndRoundIfReady(ctx, roomID)
}

// Reset returns a finished room to waiting; this user must be the host
func (s *Session) Reset(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	return s.service.game.ResetRoom(ctx, roomID, s.user.ID)
}

// Standings returns the room's standings, descending by score
func (s *Session) Standings(ctx context.Context, roomID model.RoomID) ([]scoring.Standing, error) {
	return s.service.game.Standings(ctx, roomID)
}
