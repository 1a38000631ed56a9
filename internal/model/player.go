package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents an app user
type Player struct {
	ID          PlayerID
	DisplayName string
	IsGuest     bool // true until the account is linked to credentials
	CreatedAt   time.Time
}

// RegisteredPlayer extends Player with authentication data.
// Stored separately so the password hash never travels with session state.
type RegisteredPlayer struct {
	PlayerID     PlayerID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds gameplay identity and cached personal bests.
// Created lazily when the player first sets a nickname.
type Profile struct {
	PlayerID         PlayerID
	Nickname         string
	PhotoURL         string
	HighScores       map[Difficulty]int // larger-wins merge on update
	LeaderboardOptIn bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HighScore returns the cached best for a difficulty, 0 if none
func (p *Profile) HighScore(d Difficulty) int {
	if p.HighScores == nil {
		return 0
	}
	return p.HighScores[d]
}
