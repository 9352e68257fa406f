package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/mocks"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/game"
	"github.com/vocabquest/vocabquest-go/internal/services/registry"
	"github.com/vocabquest/vocabquest-go/internal/services/roomlock"
	"github.com/vocabquest/vocabquest-go/internal/services/scoring"
	"github.com/vocabquest/vocabquest-go/internal/storage/memory"
	"github.com/vocabquest/vocabquest-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context

	host  *Session
	guest *Session
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	logger := testutil.NopLogger()
	notifier := NewNotifier(logger)
	locks := roomlock.New()

	registryController := registry.NewController(s.storage, locks, s.clock, s.random, notifier)
	gameController := game.NewController(s.storage, scoring.New(), locks, s.clock, s.random, logger, notifier)
	s.service = NewService(registryController, gameController, notifier)
	s.ctx = context.Background()

	hostUser := model.User{ID: "host-1", DisplayName: "Host"}
	guestUser := model.User{ID: "guest-1", DisplayName: "Guest"}
	s.Require().NoError(s.storage.SaveUser(s.ctx, &hostUser))
	s.Require().NoError(s.storage.SaveUser(s.ctx, &guestUser))
	s.host = s.service.For(hostUser)
	s.guest = s.service.For(guestUser)
}

func (s *ServiceSuite) TestCreateOrJoinWithoutIDCreatesRoom() {
	s.random.QueueString("ROOM1234")

	room, err := s.host.CreateOrJoin(s.ctx, "", "My Room", 3)
	s.Require().NoError(err)
	s.Equal(model.RoomID("ROOM1234"), room.ID)
	s.Equal(s.host.User().ID, room.HostID)
}

func (s *ServiceSuite) TestCreateOrJoinWithIDJoinsRoom() {
	s.random.QueueString("ROOM1234")
	room, _ := s.host.CreateOrJoin(s.ctx, "", "My Room", 3)

	joined, err := s.guest.CreateOrJoin(s.ctx, room.ID, "", 0)
	s.Require().NoError(err)
	s.Len(joined.Players, 2)
}

func (s *ServiceSuite) TestMyRoomsFiltersByMembership() {
	s.random.QueueString("ROOM0001", "ROOM0002")
	mine, _ := s.host.CreateOrJoin(s.ctx, "", "Mine", 3)
	_, _ = s.guest.CreateOrJoin(s.ctx, "", "Theirs", 3)

	rooms, err := s.host.MyRooms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rooms, 1)
	s.Equal(mine.ID, rooms[0].ID)
}

func (s *ServiceSuite) TestFullGameThroughFacade() {
	s.random.QueueString("ROOM1234")
	room, _ := s.host.CreateOrJoin(s.ctx, "", "Game Night", 1)
	_, _ = s.guest.CreateOrJoin(s.ctx, room.ID, "", 0)
	_, err := s.guest.Ready(s.ctx, room.ID, true)
	s.Require().NoError(err)

	s.random.QueueIntn(0) // letter A
	started, err := s.host.Start(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatePlaying, started.State)

	answers := model.CategoryAnswers{Names: "Amy", Animals: "Ant", Things: "Axe"}
	_, err = s.host.Submit(s.ctx, room.ID, answers)
	s.Require().NoError(err)
	finished, err := s.guest.Submit(s.ctx, room.ID, model.CategoryAnswers{Names: "Alice"})
	s.Require().NoError(err)

	s.Equal(model.GameStateFinished, finished.State)
	s.Equal(s.host.User().ID, finished.Winner)

	standings, err := s.host.Standings(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Equal(30, standings[0].Score)
	s.Equal(10, standings[1].Score)
}

func (s *ServiceSuite) TestMutationsNotifySubscribers() {
	s.random.QueueString("ROOM1234")
	room, _ := s.host.CreateOrJoin(s.ctx, "", "Room", 3)

	events, cancel := s.service.Subscribe(room.ID)
	defer cancel()

	joined, err := s.guest.CreateOrJoin(s.ctx, room.ID, "", 0)
	s.Require().NoError(err)

	select {
	case ev := <-events:
		s.Equal(model.EventPlayerJoined, ev.Type)
		s.Require().NotNil(ev.Room)
		s.Len(ev.Room.Players, len(joined.Players))
	default:
		s.Fail("expected a player_joined event")
	}
}

func (s *ServiceSuite) TestTimerExpiryNotifiesSubscribers() {
	s.random.QueueString("ROOM1234")
	room, _ := s.host.CreateOrJoin(s.ctx, "", "Room", 1)
	_, _ = s.guest.CreateOrJoin(s.ctx, room.ID, "", 0)
	_, _ = s.guest.Ready(s.ctx, room.ID, true)
	s.random.QueueIntn(0)
	_, err := s.host.Start(s.ctx, room.ID)
	s.Require().NoError(err)

	events, cancel := s.service.Subscribe(room.ID)
	defer cancel()

	s.clock.Advance(model.RoundDuration)
	s.Equal(1, s.clock.FireDue())

	select {
	case ev := <-events:
		s.Equal(model.EventGameFinished, ev.Type)
		s.Equal(model.GameStateFinished, ev.Room.State)
	default:
		s.Fail("expected a game_finished event from the round timer")
	}
}

func (s *ServiceSuite) TestCancelledSubscriberStopsReceiving() {
	s.random.QueueString("ROOM1234")
	room, _ := s.host.CreateOrJoin(s.ctx, "", "Room", 3)

	_, cancel := s.service.Subscribe(room.ID)
	s.Equal(1, s.service.notifier.SubscriberCount(room.ID))

	cancel()
	cancel() // safe to call twice
	s.Equal(0, s.service.notifier.SubscriberCount(room.ID))
}

func (s *ServiceSuite) TestSlowSubscriberDoesNotBlockMutations() {
	s.random.QueueString("ROOM1234")
	room, _ := s.host.CreateOrJoin(s.ctx, "", "Room", 3)

	_, cancel := s.service.Subscribe(room.ID)
	defer cancel()

	// Overflow the subscriber buffer without ever draining it
	for i := 0; i < subscriberBuffer+5; i++ {
		_, err := s.host.Ready(s.ctx, room.ID, i%2 == 0)
		s.Require().NoError(err)
	}
}
