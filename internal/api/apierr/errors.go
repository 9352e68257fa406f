package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vocabquest/vocabquest-go/internal/model"
	"github.com/vocabquest/vocabquest-go/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeEmailExists          = "EMAIL_EXISTS"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeRoomNotFound         = "ROOM_NOT_FOUND"
	CodeRoomFull             = "ROOM_FULL"
	CodeRoomNotJoinable      = "ROOM_NOT_JOINABLE"
	CodeNotHost              = "NOT_HOST"
	CodePlayerNotInRoom      = "PLAYER_NOT_IN_ROOM"
	CodePlayersNotReady      = "PLAYERS_NOT_READY"
	CodeInvalidTransition    = "INVALID_TRANSITION"
	CodeDuplicateSubmission  = "DUPLICATE_SUBMISSION"
	CodeWordNotFound         = "WORD_NOT_FOUND"
	CodeVocabWordNotFound    = "VOCAB_WORD_NOT_FOUND"
	CodeRequestNotFound      = "FRIEND_REQUEST_NOT_FOUND"
	CodeSelfFriendRequest    = "SELF_FRIEND_REQUEST"
	CodeAlreadyFriends       = "ALREADY_FRIENDS"
	CodeRequestPending       = "FRIEND_REQUEST_PENDING"
	CodeRequestResolved      = "FRIEND_REQUEST_RESOLVED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room is full"}}
	case errors.Is(err, model.ErrRoomNotJoinable):
		return &httpError{http.StatusConflict, APIError{CodeRoomNotJoinable, "Room is not accepting new players"}}
	case errors.Is(err, model.ErrInvalidConfig):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfiguration, "Invalid configuration"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrPlayerNotInRoom):
		return &httpError{http.StatusForbidden, APIError{CodePlayerNotInRoom, "Not a player in this room"}}
	case errors.Is(err, model.ErrPlayersNotReady):
		return &httpError{http.StatusConflict, APIError{CodePlayersNotReady, "Not all players are ready"}}
	case errors.Is(err, model.ErrInvalidTransition):
		return &httpError{http.StatusConflict, APIError{CodeInvalidTransition, "Action not valid in current game state"}}
	case errors.Is(err, model.ErrDuplicateSubmission):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateSubmission, "Answers already submitted this round"}}
	case errors.Is(err, model.ErrWordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeWordNotFound, "Word not found in dictionary"}}
	case errors.Is(err, model.ErrVocabWordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeVocabWordNotFound, "Vocabulary word not found"}}
	case errors.Is(err, model.ErrFriendRequestNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRequestNotFound, "Friend request not found"}}
	case errors.Is(err, model.ErrSelfFriendRequest):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfFriendRequest, "Cannot send a friend request to yourself"}}
	case errors.Is(err, model.ErrAlreadyFriends):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyFriends, "Already friends"}}
	case errors.Is(err, model.ErrRequestPending):
		return &httpError{http.StatusConflict, APIError{CodeRequestPending, "A friend request is already pending"}}
	case errors.Is(err, model.ErrRequestResolved):
		return &httpError{http.StatusConflict, APIError{CodeRequestResolved, "Friend request has already been resolved"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrNotAuthenticated):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already registered"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
