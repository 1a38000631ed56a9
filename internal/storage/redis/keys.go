package redis

import (
	"fmt"

	"github.com/scripturemastery/server/internal/model"
)

// Key prefix for all application data
const keyPrefix = "smpro"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// registeredPlayerKey returns the Redis key for a RegisteredPlayer
func registeredPlayerKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:registered_player:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// profileKey returns the Redis key for a Profile
func profileKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, playerID)
}

// challengeKey returns the Redis key for a Challenge
func challengeKey(id model.ChallengeID) string {
	return fmt.Sprintf("%s:challenge:%s", keyPrefix, id)
}

// codeIndexKey returns the Redis key for the code -> challenge_id index.
// Only non-terminal challenges are indexed.
func codeIndexKey(code model.ChallengeCode) string {
	return fmt.Sprintf("%s:idx:code:%s", keyPrefix, code)
}

// leaderboardEntryKey returns the Redis key for one player's entry
func leaderboardEntryKey(playerID model.PlayerID, difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:lb:entry:%s:%s", keyPrefix, difficulty, playerID)
}

// leaderboardRankKey returns the Redis key for the per-difficulty ZSET
func leaderboardRankKey(difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:lb:rank:%s", keyPrefix, difficulty)
}

// dailyStatsKey returns the Redis key for a player's DailyStats
func dailyStatsKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:daily:stats:%s", keyPrefix, playerID)
}

// dailyResultKey returns the Redis key for one day's DailyResult
func dailyResultKey(playerID model.PlayerID, date string) string {
	return fmt.Sprintf("%s:daily:result:%s:%s", keyPrefix, playerID, date)
}
