package model

import (
	"sort"
	"time"
)

// LeaderboardEntry is a player's best score for one difficulty.
// Invariant: at most one entry per (player, difficulty); only the highest
// score is retained.
type LeaderboardEntry struct {
	PlayerID   PlayerID
	Nickname   string
	PhotoURL   string
	Difficulty Difficulty
	Score      int
	UpdatedAt  time.Time
}

// SortLeaderboard orders entries best first: highest score, then whoever
// reached the score earliest, then player ID. Every storage backend must
// present listings in this order.
func SortLeaderboard(entries []*LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
		return a.PlayerID < b.PlayerID
	})
}
