package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents an account holder's profile
type User struct {
	ID          UserID
	Email       string
	DisplayName string
	Stats       UserStats
	Friends     []UserID
	CreatedAt   time.Time
	LastActive  time.Time
}

// UserStats tracks a user's lifetime learning and game activity
type UserStats struct {
	TotalGamesPlayed int
	GamesWon         int
	WordsLearned     int
	CurrentStreak    int
	LongestStreak    int
	TotalScore       int
}

// IsFriend reports whether the given user is in this user's friends list
func (u *User) IsFriend(id UserID) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}

// Credentials extends User with authentication data
// Stored separately for security (password hash never travels with the profile)
type Credentials struct {
	UserID       UserID
	Email        string // login email (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
