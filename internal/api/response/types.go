package response

import (
	"time"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/auth"
	"github.com/vocabquest/vocabquest-go/internal/services/scoring"
)

// UserStats represents lifetime stats in API responses
type UserStats struct {
	TotalGamesPlayed int `json:"total_games_played"`
	GamesWon         int `json:"games_won"`
	WordsLearned     int `json:"words_learned"`
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
	TotalScore       int `json:"total_score"`
}

// User represents a user profile in API responses
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Stats       UserStats `json:"stats"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:          string(u.ID),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Stats:       UserStats(u.Stats),
		CreatedAt:   u.CreatedAt,
	}
}

// PublicUserFromModel converts a model.User, omitting the email.
// Used wherever one user's profile is shown to another.
func PublicUserFromModel(u *model.User) User {
	user := UserFromModel(u)
	user.Email = ""
	return user
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Player represents a room participant in API responses
type Player struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Score       int       `json:"score"`
	IsReady     bool      `json:"is_ready"`
	Submitted   bool      `json:"submitted"`
	JoinedAt    time.Time `json:"joined_at"`
}

// PlayerFromModel converts a model.Player to a response Player.
// Answers are deliberately omitted; nobody sees another player's
// answers until the round record is published.
func PlayerFromModel(p *model.Player) Player {
	return Player{
		UserID:      string(p.UserID),
		DisplayName: p.DisplayName,
		Score:       p.Score,
		IsReady:     p.IsReady,
		Submitted:   p.Submitted,
		JoinedAt:    p.JoinedAt,
	}
}

// CategoryAnswers represents one player's round answers
type CategoryAnswers struct {
	Names   string `json:"names"`
	Animals string `json:"animals"`
	Places  string `json:"places"`
	Things  string `json:"things"`
}

// Round represents a completed round in API responses
type Round struct {
	RoundNumber int                        `json:"round_number"`
	Letter      string                     `json:"letter"`
	Answers     map[string]CategoryAnswers `json:"answers"`
	Scores      map[string]int             `json:"scores"`
	StartedAt   time.Time                  `json:"started_at"`
	FinishedAt  time.Time                  `json:"finished_at"`
}

// RoundFromModel converts a model.Round
func RoundFromModel(r model.Round) Round {
	answers := make(map[string]CategoryAnswers, len(r.PlayerAnswers))
	for uid, a := range r.PlayerAnswers {
		answers[string(uid)] = CategoryAnswers{
			Names:   a.Names,
			Animals: a.Animals,
			Places:  a.Places,
			Things:  a.Things,
		}
	}
	scores := make(map[string]int, len(r.Scores))
	for uid, s := range r.Scores {
		scores[string(uid)] = s
	}
	return Round{
		RoundNumber: r.RoundNumber,
		Letter:      r.Letter,
		Answers:     answers,
		Scores:      scores,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}
}

// Room represents a room in API responses
type Room struct {
	ID            string     `json:"id"`
	Name          string     `json:"name,omitempty"`
	HostID        string     `json:"host_id"`
	HostName      string     `json:"host_name"`
	State         string     `json:"state"`
	Players       []Player   `json:"players"`
	CurrentRound  int        `json:"current_round"`
	MaxRounds     int        `json:"max_rounds"`
	CurrentLetter string     `json:"current_letter,omitempty"`
	RoundEndsAt   *time.Time `json:"round_ends_at,omitempty"`
	Rounds        []Round    `json:"rounds,omitempty"`
	Winner        *string    `json:"winner,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// RoomFromModel converts a model.Room
func RoomFromModel(r *model.Room) Room {
	players := make([]Player, len(r.Players))
	for i := range r.Players {
		players[i] = PlayerFromModel(&r.Players[i])
	}

	rounds := make([]Round, len(r.Rounds))
	for i, rd := range r.Rounds {
		rounds[i] = RoundFromModel(rd)
	}

	var roundEndsAt *time.Time
	if r.State == model.GameStatePlaying {
		t := r.RoundEndsAt
		roundEndsAt = &t
	}

	var winner *string
	if r.Winner != "" {
		w := string(r.Winner)
		winner = &w
	}

	return Room{
		ID:            string(r.ID),
		Name:          r.Name,
		HostID:        string(r.HostID),
		HostName:      r.HostName,
		State:         string(r.State),
		Players:       players,
		CurrentRound:  r.CurrentRound,
		MaxRounds:     r.MaxRounds,
		CurrentLetter: r.CurrentLetter,
		RoundEndsAt:   roundEndsAt,
		Rounds:        rounds,
		Winner:        winner,
		CreatedAt:     r.CreatedAt,
		StartedAt:     r.StartedAt,
		FinishedAt:    r.FinishedAt,
	}
}

// RoomList is the response for listing rooms
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// RoomListFromModels converts a slice of rooms
func RoomListFromModels(rooms []*model.Room) RoomList {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = RoomFromModel(r)
	}
	return RoomList{Rooms: out}
}

// Standing is one row of a room's standings
type Standing struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

// StandingsFromModel converts scoring standings
func StandingsFromModel(standings []scoring.Standing) []Standing {
	out := make([]Standing, len(standings))
	for i, s := range standings {
		out[i] = Standing{
			UserID:      string(s.UserID),
			DisplayName: s.DisplayName,
			Score:       s.Score,
		}
	}
	return out
}

// Definition represents a dictionary entry in API responses
type Definition struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	PartOfSpeech  string   `json:"part_of_speech,omitempty"`
	Definition    string   `json:"definition"`
	Example       string   `json:"example,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
}

// DefinitionFromModel converts a model.Definition
func DefinitionFromModel(d *model.Definition) Definition {
	return Definition{
		Word:          d.Word,
		Pronunciation: d.Pronunciation,
		PartOfSpeech:  d.PartOfSpeech,
		Definition:    d.Definition,
		Example:       d.Example,
		Synonyms:      d.Synonyms,
		Antonyms:      d.Antonyms,
	}
}

// VocabWord represents a saved vocabulary word in API responses
type VocabWord struct {
	ID         string    `json:"id"`
	Word       string    `json:"word"`
	Definition string    `json:"definition,omitempty"`
	Example    string    `json:"example,omitempty"`
	Difficulty string    `json:"difficulty"`
	Mastered   bool      `json:"mastered"`
	AddedAt    time.Time `json:"added_at"`
}

// VocabWordFromModel converts a model.VocabularyWord
func VocabWordFromModel(w *model.VocabularyWord) VocabWord {
	return VocabWord{
		ID:         string(w.ID),
		Word:       w.Word,
		Definition: w.Definition,
		Example:    w.Example,
		Difficulty: string(w.Difficulty),
		Mastered:   w.Mastered,
		AddedAt:    w.AddedAt,
	}
}

// VocabWordList is the response for listing vocabulary words
type VocabWordList struct {
	Words []VocabWord `json:"words"`
}

// VocabWordListFromModels converts a slice of vocabulary words
func VocabWordListFromModels(words []*model.VocabularyWord) VocabWordList {
	out := make([]VocabWord, len(words))
	for i, w := range words {
		out[i] = VocabWordFromModel(w)
	}
	return VocabWordList{Words: out}
}

// FriendRequest represents a friend request in API responses
type FriendRequest struct {
	ID           string     `json:"id"`
	FromUserID   string     `json:"from_user_id"`
	FromUserName string     `json:"from_user_name"`
	ToUserID     string     `json:"to_user_id"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

// FriendRequestFromModel converts a model.FriendRequest
func FriendRequestFromModel(r *model.FriendRequest) FriendRequest {
	return FriendRequest{
		ID:           string(r.ID),
		FromUserID:   string(r.FromUserID),
		FromUserName: r.FromUserName,
		ToUserID:     string(r.ToUserID),
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
		ResolvedAt:   r.ResolvedAt,
	}
}

// UserList is the response for user search and friends listings
type UserList struct {
	Users []User `json:"users"`
}

// UserListFromModels converts users, omitting emails
func UserListFromModels(users []*model.User) UserList {
	out := make([]User, len(users))
	for i, u := range users {
		out[i] = PublicUserFromModel(u)
	}
	return UserList{Users: out}
}

// FriendRequestList is the response for listing friend requests
type FriendRequestList struct {
	Requests []FriendRequest `json:"requests"`
}

// FriendRequestListFromModels converts friend requests
func FriendRequestListFromModels(requests []*model.FriendRequest) FriendRequestList {
	out := make([]FriendRequest, len(requests))
	for i, r := range requests {
		out[i] = FriendRequestFromModel(r)
	}
	return FriendRequestList{Requests: out}
}
