package model

import "time"

// FriendRequestID uniquely identifies a friend request
type FriendRequestID string

// FriendRequestStatus is the lifecycle state of a friend request
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestDeclined FriendRequestStatus = "declined"
)

// FriendRequest represents a pending or resolved friendship offer
type FriendRequest struct {
	ID           FriendRequestID
	FromUserID   UserID
	FromUserName string
	ToUserID     UserID
	Status       FriendRequestStatus
	CreatedAt    time.Time
	ResolvedAt   *time.Time
}
