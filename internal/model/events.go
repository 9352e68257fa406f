package model

import "time"

// EventType identifies the type of room event
type EventType string

const (
	EventRoomCreated      EventType = "room_created"
	EventPlayerJoined     EventType = "player_joined"
	EventPlayerLeft       EventType = "player_left"
	EventPlayerReady      EventType = "player_ready"
	EventGameStarted      EventType = "game_started"
	EventAnswersSubmitted EventType = "answers_submitted"
	EventRoundScored      EventType = "round_scored"
	EventGameFinished     EventType = "game_finished"
	EventRoomReset        EventType = "room_reset"
)

// RoomEvent is emitted after every successful room mutation.
// Room carries a snapshot taken after the mutation applied; consumers
// may hold it indefinitely without observing later changes.
type RoomEvent struct {
	Type      EventType
	RoomID    RoomID
	UserID    UserID // the player who triggered the change, if any
	Room      *Room
	Timestamp time.Time
}

// EventSink receives room events. Implementations must not block;
// controllers publish synchronously inside the mutation path.
type EventSink interface {
	Publish(event RoomEvent)
}

// NopSink discards all events
type NopSink struct{}

// Publish implements EventSink
func (NopSink) Publish(RoomEvent) {}
