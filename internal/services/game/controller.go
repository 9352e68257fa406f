package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vocabquest/vocabquest-go/internal/dependencies/clock"
	"github.com/vocabquest/vocabquest-go/internal/dependencies/random"
	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/roomlock"
	"github.com/vocabquest/vocabquest-go/internal/services/scoring"
	"github.com/vocabquest/vocabquest-go/internal/storage"
)

// Letters is the pool the round letter is drawn from
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Controller runs the round state machine: starting games, collecting
// submissions, scoring rounds, and expiring rounds whose timer runs
// out. Every mutation of a room happens under that room's lock, so a
// timer firing concurrently with a submission can never interleave.
type Controller struct {
	storage storage.Storage
	scoring scoring.ServiceInterface
	locks   *roomlock.Keyed
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
	events  model.EventSink

	mu     sync.Mutex
	timers map[model.RoomID]clock.Timer
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	scoringService scoring.ServiceInterface,
	locks *roomlock.Keyed,
	clk clock.Clock,
	random random.Random,
	logger *slog.Logger,
	events model.EventSink,
) *Controller {
	return &Controller{
		storage: storage,
		scoring: scoringService,
		locks:   locks,
		clock:   clk,
		random:  random,
		logger:  logger,
		events:  events,
		timers:  make(map[model.RoomID]clock.Timer),
	}
}

// StartGame transitions a waiting room into its first round. Only the
// host may start, and every player must be ready.
func (c *Controller) StartGame(ctx context.Context, roomID model.RoomID, userID model.UserID) (*model.Room, error) {
	defer c.locks.Lock(roomID)()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.State != model.GameStateWaiting {
		return nil, model.ErrInvalidTransition
	}
	if !room.IsHost(userID) {
		return nil, model.ErrNotHost
	}
	if !room.AllReady() {
		return nil, model.ErrPlayersNotReady
	}

	now := c.clock.Now()
	room.State = model.GameStatePlaying
	room.CurrentRound = 1
	room.StartedAt = &now
	c.beginRound(room, now)

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.scheduleExpiry(roomID, room.CurrentRound)
	c.logger.Info("game started",
		slog.String("room_id", string(roomID)),
		slog.Int("player_count", len(room.Players)),
		slog.Int("max_rounds", room.MaxRounds),
		slog.String("letter", room.CurrentLetter),
	)

	c.publish(model.EventGameStarted, room, userID)
	return room, nil
}

// SubmitAnswers records a player's answers for the current round.
// When the last player submits, the round is scored immediately and
// its expiry timer cancelled.
func (c *Controller) SubmitAnswers(ctx context.Context, roomID model.RoomID, userID model.UserID, answers model.CategoryAnswers) (*model.Room, error) {
	defer c.locks.Lock(roomID)()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.State != model.GameStatePlaying {
		return nil, model.ErrInvalidTransition
	}

	player := room.GetPlayer(userID)
	if player == nil {
		return nil, model.ErrPlayerNotInRoom
	}
	if player.Submitted {
		return nil, model.ErrDuplicateSubmission
	}

	now := c.clock.Now()
	submitted := answers
	submitted.SubmittedAt = &now
	player.CurrentAnswers = &submitted
	player.Submitted = true
	room.UpdatedAt = now

	if room.AllSubmitted() {
		c.cancelExpiry(roomID)
		if err := c.scoreRound(ctx, room, now); err != nil {
			return nil, err
		}
		return room, nil
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.publish(model.EventAnswersSubmitted, room, userID)
	return room, nil
}

// Tick checks the room's round deadline and, if it has passed, closes
// the round: players who never submitted are recorded with empty
// answers and score zero. Expiry timers call this path themselves;
// Tick exists for callers that poll instead.
func (c *Controller) Tick(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	defer c.locks.Lock(roomID)()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.State != model.GameStatePlaying {
		return room, nil
	}

	now := c.clock.Now()
	if now.Before(room.RoundEndsAt) {
		return room, nil
	}

	c.cancelExpiry(roomID)
	if err := c.closeRound(ctx, room, now); err != nil {
		return nil, err
	}
	return room, nil
}

// EndRoundIfReady scores the current round early if every player has
// already submitted. The submission path scores the round itself, so
// this is normally a no-op; it exists for callers reconciling state
// after a missed notification.
func (c *Controller) EndRoundIfReady(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	defer c.locks.Lock(roomID)()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.State != model.GameStatePlaying || !room.AllSubmitted() {
		return room, nil
	}

	c.cancelExpiry(roomID)
	if err := c.scoreRound(ctx, room, c.clock.Now()); err != nil {
		return nil, err
	}
	return room, nil
}

// ResetRoom returns a finished room to the waiting state for a rematch.
// Scores and round history are cleared; players other than the host
// must ready up again.
func (c *Controller) ResetRoom(ctx context.Context, roomID model.RoomID, userID model.UserID) (*model.Room, error) {
	defer c.locks.Lock(roomID)()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if room.State != model.GameStateFinished {
		return nil, model.ErrInvalidTransition
	}
	if !room.IsHost(userID) {
		return nil, model.ErrNotHost
	}

	now := c.clock.Now()
	room.State = model.GameStateWaiting
	room.CurrentRound = 1
	room.CurrentLetter = ""
	room.RoundEndsAt = time.Time{}
	room.Rounds = []model.Round{}
	room.Winner = ""
	room.StartedAt = nil
	room.FinishedAt = nil
	room.UpdatedAt = now
	for i := range room.Players {
		room.Players[i].Score = 0
		room.Players[i].IsReady = room.Players[i].UserID == room.HostID
		room.Players[i].Submitted = false
		room.Players[i].CurrentAnswers = nil
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.publish(model.EventRoomReset, room, userID)
	return room, nil
}

// Standings returns the room's current standings, descending by score
func (c *Controller) Standings(ctx context.Context, roomID model.RoomID) ([]scoring.Standing, error) {
	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return c.scoring.Standings(room.Players), nil
}

// beginRound draws the round letter and opens the submission window.
// Caller holds the room lock and saves the room afterwards.
func (c *Controller) beginRound(room *model.Room, now time.Time) {
	room.CurrentLetter = string(Letters[c.random.Intn(len(Letters))])
	room.RoundEndsAt = now.Add(model.RoundDuration)
	room.UpdatedAt = now
	for i := range room.Players {
		room.Players[i].Submitted = false
		room.Players[i].CurrentAnswers = nil
	}
}

// closeRound force-submits empty answers for stragglers, then scores
func (c *Controller) closeRound(ctx context.Context, room *model.Room, now time.Time) error {
	for i := range room.Players {
		p := &room.Players[i]
		if p.Submitted {
			continue
		}
		t := now
		p.CurrentAnswers = &model.CategoryAnswers{SubmittedAt: &t}
		p.Submitted = true
	}
	return c.scoreRound(ctx, room, now)
}

// scoreRound scores every player's answers for the current round,
// records the round, and either advances to the next round or finishes
// the game. Caller holds the room lock; all players have submitted.
func (c *Controller) scoreRound(ctx context.Context, room *model.Room, now time.Time) error {
	round := model.Round{
		RoundNumber:   room.CurrentRound,
		Letter:        room.CurrentLetter,
		PlayerAnswers: make(map[model.UserID]model.CategoryAnswers, len(room.Players)),
		Scores:        make(map[model.UserID]int, len(room.Players)),
		StartedAt:     room.RoundEndsAt.Add(-model.RoundDuration),
		FinishedAt:    now,
	}

	for i := range room.Players {
		p := &room.Players[i]
		answers := model.CategoryAnswers{}
		if p.CurrentAnswers != nil {
			answers = *p.CurrentAnswers
		}
		score := c.scoring.Score(answers, room.CurrentLetter)
		p.Score += score
		round.PlayerAnswers[p.UserID] = answers
		round.Scores[p.UserID] = score
	}

	room.Rounds = append(room.Rounds, round)

	c.logger.Info("round scored",
		slog.String("room_id", string(room.ID)),
		slog.Int("round", round.RoundNumber),
		slog.String("letter", round.Letter),
	)

	if room.CurrentRound < room.MaxRounds {
		room.CurrentRound++
		c.beginRound(room, now)
		if err := c.storage.SaveRoom(ctx, room); err != nil {
			return err
		}
		c.scheduleExpiry(room.ID, room.CurrentRound)
		c.publish(model.EventRoundScored, room, "")
		return nil
	}

	room.State = model.GameStateFinished
	room.CurrentLetter = ""
	room.FinishedAt = &now
	room.UpdatedAt = now
	room.Winner = c.scoring.Winner(room.Players)
	for i := range room.Players {
		room.Players[i].CurrentAnswers = nil
		room.Players[i].Submitted = false
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.updateStats(ctx, room)
	c.logger.Info("game finished",
		slog.String("room_id", string(room.ID)),
		slog.String("winner", string(room.Winner)),
	)

	c.publish(model.EventGameFinished, room, "")
	return nil
}

// updateStats folds the finished game into each player's lifetime
// stats. Stats are best-effort: a failed update is logged, never
// surfaced, since the game itself has already completed.
func (c *Controller) updateStats(ctx context.Context, room *model.Room) {
	for i := range room.Players {
		p := &room.Players[i]
		user, err := c.storage.GetUser(ctx, p.UserID)
		if err != nil {
			c.logger.Warn("failed to load user for stats update",
				slog.String("user_id", string(p.UserID)),
				slog.String("error", err.Error()),
			)
			continue
		}

		user.Stats.TotalGamesPlayed++
		user.Stats.TotalScore += p.Score
		if p.UserID == room.Winner {
			user.Stats.GamesWon++
			user.Stats.CurrentStreak++
			if user.Stats.CurrentStreak > user.Stats.LongestStreak {
				user.Stats.LongestStreak = user.Stats.CurrentStreak
			}
		} else {
			user.Stats.CurrentStreak = 0
		}
		user.LastActive = c.clock.Now()

		if err := c.storage.SaveUser(ctx, user); err != nil {
			c.logger.Warn("failed to save user stats",
				slog.String("user_id", string(p.UserID)),
				slog.String("error", err.Error()),
			)
		}
	}
}

// scheduleExpiry arms the round timer. The callback re-checks state
// and round number under the room lock, so a timer that loses the race
// with a final submission is a harmless no-op.
func (c *Controller) scheduleExpiry(roomID model.RoomID, round int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[roomID]; ok {
		t.Stop()
	}
	c.timers[roomID] = c.clock.AfterFunc(model.RoundDuration, func() {
		c.expireRound(roomID, round)
	})
}

// cancelExpiry stops the room's pending round timer, if any
func (c *Controller) cancelExpiry(roomID model.RoomID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[roomID]; ok {
		t.Stop()
		delete(c.timers, roomID)
	}
}

// expireRound is the timer callback for a round deadline
func (c *Controller) expireRound(roomID model.RoomID, round int) {
	ctx := context.Background()
	defer c.locks.Lock(roomID)()

	room, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		if !errors.Is(err, model.ErrRoomNotFound) {
			c.logger.Error("failed to load room on round expiry",
				slog.String("room_id", string(roomID)),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	// The round may have been scored, or the game reset, between the
	// timer firing and the lock being acquired
	if room.State != model.GameStatePlaying || room.CurrentRound != round {
		return
	}

	now := c.clock.Now()
	if now.Before(room.RoundEndsAt) {
		return
	}

	c.logger.Info("round expired",
		slog.String("room_id", string(roomID)),
		slog.Int("round", round),
	)

	if err := c.closeRound(ctx, room, now); err != nil {
		c.logger.Error("failed to close expired round",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
	}
}

func (c *Controller) publish(t model.EventType, room *model.Room, userID model.UserID) {
	c.events.Publish(model.RoomEvent{
		Type:      t,
		RoomID:    room.ID,
		UserID:    userID,
		Room:      room.Clone(),
		Timestamp: c.clock.Now(),
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, roomID model.RoomID, userID model.UserID) (*model.Room, error)
	SubmitAnswers(ctx context.Context, roomID model.RoomID, userID model.UserID, answers model.CategoryAnswers) (*model.Room, error)
	Tick(ctx context.Context, roomID model.RoomID) (*model.Room, error)
	EndRoundIfReady(ctx context.Context, roomID model.RoomID) (*model.Room, error)
	ResetRoom(ctx context.Context, roomID model.RoomID, userID model.UserID) (*model.Room, error)
	Standings(ctx context.Context, roomID model.RoomID) ([]scoring.Standing, error)
}

var _ ControllerInterface = (*Controller)(nil)
