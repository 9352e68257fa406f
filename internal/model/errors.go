package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrRoomNotJoinable = errors.New("room is not accepting new players")
	ErrInvalidConfig   = errors.New("invalid room configuration")
	ErrNotHost         = errors.New("user is not the room host")
	ErrPlayerNotInRoom = errors.New("user is not a player in this room")
	ErrPlayersNotReady = errors.New("not all players are ready")

	// Game errors
	ErrInvalidTransition   = errors.New("action not valid in current game state")
	ErrDuplicateSubmission = errors.New("answers already submitted this round")

	// Vocabulary errors
	ErrVocabWordNotFound = errors.New("vocabulary word not found")

	// Dictionary errors
	ErrWordNotFound = errors.New("word not found in dictionary")

	// Social errors
	ErrFriendRequestNotFound = errors.New("friend request not found")
	ErrSelfFriendRequest     = errors.New("cannot send a friend request to yourself")
	ErrAlreadyFriends        = errors.New("users are already friends")
	ErrRequestPending        = errors.New("a friend request is already pending")
	ErrRequestResolved       = errors.New("friend request has already been resolved")
)
