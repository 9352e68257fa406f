package handler

import (
	"net/http"

	"github.com/vocabquest/vocabquest-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeInvalidConfiguration = apierr.CodeInvalidConfiguration
	CodeUnauthorized         = apierr.CodeUnauthorized
	CodeInvalidCredentials   = apierr.CodeInvalidCredentials
	CodeEmailExists          = apierr.CodeEmailExists
	CodeUserNotFound         = apierr.CodeUserNotFound
	CodeRoomNotFound         = apierr.CodeRoomNotFound
	CodeRoomFull             = apierr.CodeRoomFull
	CodeRoomNotJoinable      = apierr.CodeRoomNotJoinable
	CodeNotHost              = apierr.CodeNotHost
	CodePlayerNotInRoom      = apierr.CodePlayerNotInRoom
	CodePlayersNotReady      = apierr.CodePlayersNotReady
	CodeInvalidTransition    = apierr.CodeInvalidTransition
	CodeDuplicateSubmission  = apierr.CodeDuplicateSubmission
	CodeWordNotFound         = apierr.CodeWordNotFound
	CodeVocabWordNotFound    = apierr.CodeVocabWordNotFound
	CodeRequestNotFound      = apierr.CodeRequestNotFound
	CodeSelfFriendRequest    = apierr.CodeSelfFriendRequest
	CodeAlreadyFriends       = apierr.CodeAlreadyFriends
	CodeRequestPending       = apierr.CodeRequestPending
	CodeRequestResolved      = apierr.CodeRequestResolved
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return apierr.NewUnauthorizedError()
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
