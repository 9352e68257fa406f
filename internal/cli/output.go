package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Room:
		o.printRoom(v)
	case RoomList:
		o.printRoomList(v)
	case []Standing:
		o.printStandings(v)
	case Definition:
		o.printDefinition(v)
	case VocabWord:
		o.printVocabWord(v)
	case VocabWordList:
		o.printVocabWordList(v)
	case UserList:
		o.printUserList(v)
	case FriendRequest:
		o.printFriendRequest(v)
	case FriendRequestList:
		o.printFriendRequestList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// UserStats response type
type UserStats struct {
	TotalGamesPlayed int `json:"total_games_played"`
	GamesWon         int `json:"games_won"`
	TotalScore       int `json:"total_score"`
	WordsLearned     int `json:"words_learned"`
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
}

// User response type (matches API)
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name"`
	Stats       UserStats `json:"stats"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// RoomPlayer response type
type RoomPlayer struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
	IsReady     bool   `json:"is_ready"`
	Submitted   bool   `json:"submitted"`
}

// Room response type
type Room struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	HostID        string       `json:"host_id"`
	HostName      string       `json:"host_name"`
	State         string       `json:"state"`
	Players       []RoomPlayer `json:"players"`
	CurrentRound  int          `json:"current_round"`
	MaxRounds     int          `json:"max_rounds"`
	CurrentLetter string       `json:"current_letter,omitempty"`
	RoundEndsAt   *time.Time   `json:"round_ends_at,omitempty"`
	Winner        *string      `json:"winner,omitempty"`
}

// RoomList response type
type RoomList struct {
	Rooms []Room `json:"rooms"`
}

// Standing response type
type Standing struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

// Definition response type
type Definition struct {
	Word          string   `json:"word"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	PartOfSpeech  string   `json:"part_of_speech,omitempty"`
	Definition    string   `json:"definition"`
	Example       string   `json:"example,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
}

// VocabWord response type
type VocabWord struct {
	ID         string `json:"id"`
	Word       string `json:"word"`
	Definition string `json:"definition,omitempty"`
	Example    string `json:"example,omitempty"`
	Difficulty string `json:"difficulty"`
	Mastered   bool   `json:"mastered"`
}

// VocabWordList response type
type VocabWordList struct {
	Words []VocabWord `json:"words"`
}

// UserList response type
type UserList struct {
	Users []User `json:"users"`
}

// FriendRequest response type
type FriendRequest struct {
	ID           string `json:"id"`
	FromUserID   string `json:"from_user_id"`
	FromUserName string `json:"from_user_name"`
	ToUserID     string `json:"to_user_id"`
	Status       string `json:"status"`
}

// FriendRequestList response type
type FriendRequestList struct {
	Requests []FriendRequest `json:"requests"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.DisplayName, u.ID)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	fmt.Printf("Games: %d played, %d won\n", u.Stats.TotalGamesPlayed, u.Stats.GamesWon)
	fmt.Printf("Total Score: %d\n", u.Stats.TotalScore)
	fmt.Printf("Words Learned: %d\n", u.Stats.WordsLearned)
	fmt.Printf("Streak: %d (best %d)\n", u.Stats.CurrentStreak, u.Stats.LongestStreak)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s", r.ID)
	if r.Name != "" {
		fmt.Printf(" (%s)", r.Name)
	}
	fmt.Println()
	fmt.Printf("State: %s\n", r.State)
	fmt.Printf("Host: %s\n", r.HostName)
	fmt.Printf("Round: %d/%d\n", r.CurrentRound, r.MaxRounds)

	if r.CurrentLetter != "" {
		fmt.Printf("Letter: %s\n", r.CurrentLetter)
	}
	if r.RoundEndsAt != nil {
		fmt.Printf("Round Ends: %s\n", r.RoundEndsAt.Format(time.RFC3339))
	}

	fmt.Printf("Players (%d):\n", len(r.Players))
	for _, p := range r.Players {
		var marks []string
		if p.UserID == r.HostID {
			marks = append(marks, "host")
		}
		if p.IsReady {
			marks = append(marks, "ready")
		}
		if p.Submitted {
			marks = append(marks, "submitted")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Printf("  - %s: %d pts%s\n", p.DisplayName, p.Score, suffix)
	}

	if r.Winner != nil {
		fmt.Printf("Winner: %s\n", *r.Winner)
	}
}

func (o *Output) printRoomList(l RoomList) {
	if len(l.Rooms) == 0 {
		fmt.Println("No rooms")
		return
	}
	for _, r := range l.Rooms {
		fmt.Printf("%s  %-20s %-8s %d players  round %d/%d\n",
			r.ID, r.Name, r.State, len(r.Players), r.CurrentRound, r.MaxRounds)
	}
}

func (o *Output) printStandings(standings []Standing) {
	fmt.Println("Standings:")
	for i, s := range standings {
		fmt.Printf("  %d. %s: %d pts\n", i+1, s.DisplayName, s.Score)
	}
}

func (o *Output) printDefinition(d Definition) {
	fmt.Printf("%s", d.Word)
	if d.Pronunciation != "" {
		fmt.Printf(" %s", d.Pronunciation)
	}
	if d.PartOfSpeech != "" {
		fmt.Printf(" (%s)", d.PartOfSpeech)
	}
	fmt.Println()
	fmt.Printf("  %s\n", d.Definition)
	if d.Example != "" {
		fmt.Printf("  e.g. %s\n", d.Example)
	}
	if len(d.Synonyms) > 0 {
		fmt.Printf("  Synonyms: %s\n", strings.Join(d.Synonyms, ", "))
	}
	if len(d.Antonyms) > 0 {
		fmt.Printf("  Antonyms: %s\n", strings.Join(d.Antonyms, ", "))
	}
}

func (o *Output) printVocabWord(w VocabWord) {
	mastered := ""
	if w.Mastered {
		mastered = " [mastered]"
	}
	fmt.Printf("%s (%s)%s\n", w.Word, w.Difficulty, mastered)
	if w.Definition != "" {
		fmt.Printf("  %s\n", w.Definition)
	}
	if w.Example != "" {
		fmt.Printf("  e.g. %s\n", w.Example)
	}
	fmt.Printf("  id: %s\n", w.ID)
}

func (o *Output) printVocabWordList(l VocabWordList) {
	if len(l.Words) == 0 {
		fmt.Println("No words")
		return
	}
	for _, w := range l.Words {
		mastered := " "
		if w.Mastered {
			mastered = "*"
		}
		fmt.Printf("%s %-20s %-6s %s\n", mastered, w.Word, w.Difficulty, w.ID)
	}
}

func (o *Output) printUserList(l UserList) {
	if len(l.Users) == 0 {
		fmt.Println("No users")
		return
	}
	for _, u := range l.Users {
		fmt.Printf("%s  %s\n", u.ID, u.DisplayName)
	}
}

func (o *Output) printFriendRequest(r FriendRequest) {
	fmt.Printf("Request %s: %s -> %s (%s)\n", r.ID, r.FromUserName, r.ToUserID, r.Status)
}

func (o *Output) printFriendRequestList(l FriendRequestList) {
	if len(l.Requests) == 0 {
		fmt.Println("No pending requests")
		return
	}
	for _, r := range l.Requests {
		fmt.Printf("%s  from %s (%s)\n", r.ID, r.FromUserName, r.FromUserID)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
