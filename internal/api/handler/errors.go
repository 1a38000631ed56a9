package handler

import (
	"net/http"

	"github.com/scripturemastery/server/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest        = apierr.CodeInvalidRequest
	CodeUnauthorized          = apierr.CodeUnauthorized
	CodePlayerNotFound        = apierr.CodePlayerNotFound
	CodeProfileNotFound       = apierr.CodeProfileNotFound
	CodeNicknameMissing       = apierr.CodeNicknameMissing
	CodeInvalidNickname       = apierr.CodeInvalidNickname
	CodeChallengeNotFound     = apierr.CodeChallengeNotFound
	CodeChallengeUnavailable  = apierr.CodeChallengeUnavailable
	CodeCannotJoinOwn         = apierr.CodeCannotJoinOwn
	CodeNotParticipant        = apierr.CodeNotParticipant
	CodeScoreAlreadySubmitted = apierr.CodeScoreAlreadySubmitted
	CodeChallengeNotStarted   = apierr.CodeChallengeNotStarted
	CodeInvalidDifficulty     = apierr.CodeInvalidDifficulty
	CodeInvalidQuestionCount  = apierr.CodeInvalidQuestionCount
	CodeCodeGeneration        = apierr.CodeCodeGeneration
	CodeNotEnoughScriptures   = apierr.CodeNotEnoughScriptures
	CodeLeaderboardOptedOut   = apierr.CodeLeaderboardOptedOut
	CodeEntryNotFound         = apierr.CodeEntryNotFound
	CodeDailyCompleted        = apierr.CodeDailyCompleted
	CodeInvalidDailyScore     = apierr.CodeInvalidDailyScore
	CodeUsernameExists        = apierr.CodeUsernameExists
	CodeInvalidCredentials    = apierr.CodeInvalidCredentials
	CodeNotGuest              = apierr.CodeNotGuest
	CodeInternalError         = apierr.CodeInternalError
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
