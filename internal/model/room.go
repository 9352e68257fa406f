package model

import "time"

// RoomID uniquely identifies a game room
type RoomID string

// GameState represents the current phase of a room
type GameState string

const (
	GameStateWaiting  GameState = "waiting"  // Gathering players, accepting joins
	GameStatePlaying  GameState = "playing"  // Rounds in progress
	GameStateFinished GameState = "finished" // All rounds scored
)

const (
	// MaxRoomPlayers is the room capacity
	MaxRoomPlayers = 4
	// MinRounds and MaxRounds bound the configurable round count
	MinRounds = 1
	MaxRounds = 10
	// RoundDuration is the answer-collection window per round
	RoundDuration = 60 * time.Second
)

// Room represents a single instance of the Category Challenge game
type Room struct {
	ID       RoomID
	Name     string
	HostID   UserID
	HostName string

	// Players in join order; join order is the scoring tiebreak
	Players []Player

	State         GameState
	CurrentRound  int    // 1-indexed, only meaningful once playing
	MaxRounds     int    // Fixed at creation, within [MinRounds, MaxRounds]
	CurrentLetter string // Single uppercase letter, empty unless playing

	// RoundEndsAt is the deadline for the current round's submissions
	RoundEndsAt time.Time

	// Rounds holds the completed round records
	Rounds []Round

	// Winner is set when the room reaches the finished state.
	// Ties break toward the earlier joiner.
	Winner UserID

	CreatedAt  time.Time
	StartedAt  *time.Time
	FinishedAt *time.Time
	UpdatedAt  time.Time
}

// Player represents a participant within a room.
// Players are owned by their room; no player exists outside a room context.
type Player struct {
	UserID         UserID
	DisplayName    string
	Score          int // cumulative across rounds
	IsReady        bool
	Submitted      bool             // submitted this round
	CurrentAnswers *CategoryAnswers // in-progress or submitted answers, nil between rounds
	JoinedAt       time.Time
}

// CategoryAnswers holds one player's answers for a round
type CategoryAnswers struct {
	Names   string
	Animals string
	Places  string
	Things  string

	// SubmittedAt is set exactly once per round on submission
	SubmittedAt *time.Time
}

// Round is the historical record of one completed round
type Round struct {
	RoundNumber   int
	Letter        string
	PlayerAnswers map[UserID]CategoryAnswers
	Scores        map[UserID]int
	StartedAt     time.Time
	FinishedAt    time.Time
}

// GetPlayer returns the player with the given user ID, or nil if not present
func (r *Room) GetPlayer(id UserID) *Player {
	for i := range r.Players {
		if r.Players[i].UserID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// HasPlayer reports whether the given user is a member of the room
func (r *Room) HasPlayer(id UserID) bool {
	return r.GetPlayer(id) != nil
}

// IsFull reports whether the room is at capacity
func (r *Room) IsFull() bool {
	return len(r.Players) >= MaxRoomPlayers
}

// IsHost reports whether the given user is the room's host
func (r *Room) IsHost(id UserID) bool {
	return r.HostID == id
}

// AllSubmitted reports whether every player has submitted this round
func (r *Room) AllSubmitted() bool {
	for i := range r.Players {
		if !r.Players[i].Submitted {
			return false
		}
	}
	return true
}

// AllReady reports whether every player has marked themselves ready
func (r *Room) AllReady() bool {
	for i := range r.Players {
		if !r.Players[i].IsReady {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the room.
// Callers outside the mutation path only ever see clones.
func (r *Room) Clone() *Room {
	c := *r

	c.Players = make([]Player, len(r.Players))
	copy(c.Players, r.Players)
	for i := range c.Players {
		if a := c.Players[i].CurrentAnswers; a != nil {
			ac := *a
			if a.SubmittedAt != nil {
				t := *a.SubmittedAt
				ac.SubmittedAt = &t
			}
			c.Players[i].CurrentAnswers = &ac
		}
	}

	c.Rounds = make([]Round, len(r.Rounds))
	for i, rd := range r.Rounds {
		rc := rd
		rc.PlayerAnswers = make(map[UserID]CategoryAnswers, len(rd.PlayerAnswers))
		for k, v := range rd.PlayerAnswers {
			rc.PlayerAnswers[k] = v
		}
		rc.Scores = make(map[UserID]int, len(rd.Scores))
		for k, v := range rd.Scores {
			rc.Scores[k] = v
		}
		c.Rounds[i] = rc
	}

	if r.StartedAt != nil {
		t := *r.StartedAt
		c.StartedAt = &t
	}
	if r.FinishedAt != nil {
		t := *r.FinishedAt
		c.FinishedAt = &t
	}

	return &c
}
