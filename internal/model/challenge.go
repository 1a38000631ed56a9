package model

import "time"

// ChallengeID uniquely identifies a challenge
type ChallengeID string

// ChallengeCode is the human-shareable 6-character join key
type ChallengeCode string

// Difficulty controls answer-matching strictness
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // book only
	DifficultyMedium Difficulty = "medium" // book + chapter
	DifficultyHard   Difficulty = "hard"   // book + chapter + verse
)

// ValidDifficulty reports whether d is a known difficulty
func ValidDifficulty(d Difficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ChallengeStatus represents the lifecycle phase of a challenge
type ChallengeStatus string

const (
	ChallengeStatusPending   ChallengeStatus = "pending"   // created, awaiting opponent
	ChallengeStatusAccepted  ChallengeStatus = "accepted"  // opponent joined, both play
	ChallengeStatusCompleted ChallengeStatus = "completed" // both scores in, outcome resolved
	ChallengeStatusExpired   ChallengeStatus = "expired"   // 7-day window elapsed with no joiner
)

// ValidQuestionCount reports whether n is an allowed question count
func ValidQuestionCount(n int) bool {
	return n == 3 || n == 5 || n == 10
}

// Participant is one side of a challenge
type Participant struct {
	PlayerID    PlayerID
	Nickname    string
	PhotoURL    string
	Score       *int          // nil until submitted
	TimeTaken   time.Duration // completion time, valid once Score is set
	SubmittedAt time.Time
}

// Submitted reports whether this side has posted a score
func (p *Participant) Submitted() bool {
	return p != nil && p.Score != nil
}

// Challenge represents one asynchronous two-player match.
// Scriptures are derived deterministically from the code so both players
// always see an identical question set.
type Challenge struct {
	ID            ChallengeID
	Code          ChallengeCode
	Difficulty    Difficulty
	QuestionCount int
	Scriptures    []Scripture

	Creator    Participant
	Challenger *Participant // nil until joined

	Status    ChallengeStatus
	Winner    PlayerID // set only by the server-side arbiter
	IsTie     bool
	CreatedAt time.Time
	ExpiresAt time.Time
	UpdatedAt time.Time
}

// Terminal reports whether the challenge can no longer be joined or played
func (c *Challenge) Terminal() bool {
	return c.Status == ChallengeStatusCompleted || c.Status == ChallengeStatusExpired
}

// ParticipantFor returns the side belonging to playerID, or nil
func (c *Challenge) ParticipantFor(playerID PlayerID) *Participant {
	if c.Creator.PlayerID == playerID {
		return &c.Creator
	}
	if c.Challenger != nil && c.Challenger.PlayerID == playerID {
		return c.Challenger
	}
	return nil
}

// BothSubmitted reports whether both sides have posted scores
func (c *Challenge) BothSubmitted() bool {
	return c.Creator.Submitted() && c.Challenger.Submitted()
}
