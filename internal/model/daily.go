package model

import "time"

// BadgeID identifies an earned daily-challenge badge
type BadgeID string

const (
	BadgeFirstCompleted BadgeID = "first_completed"
	BadgeStreak3        BadgeID = "streak_3"
	BadgeStreak7        BadgeID = "streak_7"
	BadgeStreak14       BadgeID = "streak_14"
	BadgeStreak30       BadgeID = "streak_30"
	BadgeCorrect50      BadgeID = "correct_50"
)

// DailyStats tracks a player's daily-challenge progress.
// The streak counts consecutive calendar days with at least one completion;
// it resets when the last completion is neither today nor yesterday.
type DailyStats struct {
	PlayerID          PlayerID
	CurrentStreak     int
	LongestStreak     int
	TotalCompleted    int
	TotalCorrect      int
	LastCompletedDate string // YYYY-MM-DD, empty if never completed
	Badges            []BadgeID
	UpdatedAt         time.Time
}

// HasBadge reports whether the badge has already been earned
func (s *DailyStats) HasBadge(id BadgeID) bool {
	for _, b := range s.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// DailyResult records one day's completed daily challenge.
// Written atomically together with DailyStats.
type DailyResult struct {
	PlayerID    PlayerID
	Date        string // YYYY-MM-DD
	Correct     int
	Total       int
	CompletedAt time.Time
}
