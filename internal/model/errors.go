package model

import "errors"

// Common errors used across the application
var (
	// Player / profile errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrNicknameMissing = errors.New("a nickname is required")

	// Challenge errors
	ErrChallengeNotFound      = errors.New("challenge not found or expired")
	ErrChallengeUnavailable   = errors.New("challenge is no longer available")
	ErrCannotJoinOwnChallenge = errors.New("cannot join your own challenge")
	ErrNotParticipant         = errors.New("player is not part of this challenge")
	ErrScoreAlreadySubmitted  = errors.New("score already submitted")
	ErrChallengeNotStarted    = errors.New("challenge has not been accepted yet")
	ErrInvalidDifficulty      = errors.New("invalid difficulty")
	ErrInvalidQuestionCount   = errors.New("question count must be 3, 5, or 10")
	ErrCodeGeneration         = errors.New("could not generate a unique challenge code")

	// Selection errors
	ErrNotEnoughScriptures = errors.New("dataset smaller than requested count")

	// Leaderboard errors
	ErrLeaderboardEntryNotFound = errors.New("leaderboard entry not found")
	ErrLeaderboardOptedOut      = errors.New("player has opted out of the leaderboard")

	// Daily challenge errors
	ErrDailyStatsNotFound    = errors.New("daily stats not found")
	ErrDailyResultNotFound   = errors.New("daily result not found")
	ErrDailyAlreadyCompleted = errors.New("daily challenge already completed today")
	ErrInvalidDailyScore     = errors.New("daily score out of range")
)
