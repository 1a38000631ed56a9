package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/auth"
	"github.com/scripturemastery/server/internal/services/profile"
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
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeProfileNotFound       = "PROFILE_NOT_FOUND"
	CodeNicknameMissing       = "NICKNAME_MISSING"
	CodeInvalidNickname       = "INVALID_NICKNAME"
	CodeChallengeNotFound     = "CHALLENGE_NOT_FOUND"
	CodeChallengeUnavailable  = "CHALLENGE_UNAVAILABLE"
	CodeCannotJoinOwn         = "CANNOT_JOIN_OWN_CHALLENGE"
	CodeNotParticipant        = "NOT_PARTICIPANT"
	CodeScoreAlreadySubmitted = "SCORE_ALREADY_SUBMITTED"
	CodeChallengeNotStarted   = "CHALLENGE_NOT_STARTED"
	CodeInvalidDifficulty     = "INVALID_DIFFICULTY"
	CodeInvalidQuestionCount  = "INVALID_QUESTION_COUNT"
	CodeCodeGeneration        = "CODE_GENERATION_FAILED"
	CodeNotEnoughScriptures   = "NOT_ENOUGH_SCRIPTURES"
	CodeLeaderboardOptedOut   = "LEADERBOARD_OPTED_OUT"
	CodeEntryNotFound         = "LEADERBOARD_ENTRY_NOT_FOUND"
	CodeDailyCompleted        = "DAILY_ALREADY_COMPLETED"
	CodeInvalidDailyScore     = "INVALID_DAILY_SCORE"
	CodeUsernameExists        = "USERNAME_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeNotGuest              = "NOT_GUEST"
	CodeInternalError         = "INTERNAL_ERROR"
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
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrNicknameMissing):
		return &httpError{http.StatusConflict, APIError{CodeNicknameMissing, "Set a nickname before playing challenges"}}
	case errors.Is(err, model.ErrChallengeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeChallengeNotFound, "Challenge not found or expired"}}
	case errors.Is(err, model.ErrChallengeUnavailable):
		return &httpError{http.StatusConflict, APIError{CodeChallengeUnavailable, "Challenge is no longer available"}}
	case errors.Is(err, model.ErrCannotJoinOwnChallenge):
		return &httpError{http.StatusConflict, APIError{CodeCannotJoinOwn, "Cannot join your own challenge"}}
	case errors.Is(err, model.ErrNotParticipant):
		return &httpError{http.StatusForbidden, APIError{CodeNotParticipant, "You are not part of this challenge"}}
	case errors.Is(err, model.ErrScoreAlreadySubmitted):
		return &httpError{http.StatusConflict, APIError{CodeScoreAlreadySubmitted, "Score already submitted"}}
	case errors.Is(err, model.ErrChallengeNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeChallengeNotStarted, "Challenge has not been accepted yet"}}
	case errors.Is(err, model.ErrInvalidDifficulty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDifficulty, "Difficulty must be easy, medium, or hard"}}
	case errors.Is(err, model.ErrInvalidQuestionCount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidQuestionCount, "Question count must be 3, 5, or 10"}}
	case errors.Is(err, model.ErrCodeGeneration):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeCodeGeneration, "Could not generate a challenge code, try again"}}
	case errors.Is(err, model.ErrNotEnoughScriptures):
		return &httpError{http.StatusBadRequest, APIError{CodeNotEnoughScriptures, "Not enough scriptures for the requested count"}}
	case errors.Is(err, model.ErrLeaderboardOptedOut):
		return &httpError{http.StatusForbidden, APIError{CodeLeaderboardOptedOut, "Player has opted out of the leaderboard"}}
	case errors.Is(err, model.ErrLeaderboardEntryNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeEntryNotFound, "No leaderboard entry for this player"}}
	case errors.Is(err, model.ErrDailyAlreadyCompleted):
		return &httpError{http.StatusConflict, APIError{CodeDailyCompleted, "Daily challenge already completed today"}}
	case errors.Is(err, model.ErrInvalidDailyScore):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDailyScore, "Daily score out of range"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrNotGuest):
		return &httpError{http.StatusConflict, APIError{CodeNotGuest, "Account is already registered"}}

	// Map profile errors
	case errors.Is(err, profile.ErrInvalidNickname):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidNickname, "Nickname must be 1-24 characters"}}

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
