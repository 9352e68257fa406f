package redis

import (
	"fmt"
	"strings"

	"github.com/vocabquest/vocabquest-go/internal/model"
)

// Key prefix for all application data
const keyPrefix = "vocabquest"

// userKey returns the Redis key for a User profile
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usersIndexKey returns the Redis key for the SET of all user keys
func usersIndexKey() string {
	return fmt.Sprintf("%s:idx:users", keyPrefix)
}

// credentialsKey returns the Redis key for a user's Credentials
func credentialsKey(id model.UserID) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> user_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, strings.ToLower(email))
}

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

// roomsIndexKey returns the Redis key for the SET of all room keys
func roomsIndexKey() string {
	return fmt.Sprintf("%s:idx:rooms", keyPrefix)
}

// vocabKey returns the Redis key for a saved vocabulary word
func vocabKey(userID model.UserID, id model.VocabWordID) string {
	return fmt.Sprintf("%s:vocab:%s:%s", keyPrefix, userID, id)
}

// vocabForUserIndexKey returns the Redis key for the SET of a user's vocab keys
func vocabForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:vocab_for_user:%s", keyPrefix, userID)
}

// definitionKey returns the Redis key for a dictionary Definition
func definitionKey(word string) string {
	return fmt.Sprintf("%s:definition:%s", keyPrefix, strings.ToLower(word))
}

// friendRequestKey returns the Redis key for a FriendRequest
func friendRequestKey(id model.FriendRequestID) string {
	return fmt.Sprintf("%s:friend_request:%s", keyPrefix, id)
}

// requestsForUserIndexKey returns the Redis key for the SET of requests involving a user
func requestsForUserIndexKey(userID model.UserID) string {
	return fmt.Sprintf("%s:idx:requests_for_user:%s", keyPrefix, userID)
}
