package storage

import (
	"context"

	"github.com/scripturemastery/server/internal/model"
)

// ChallengeUpdateFn mutates a challenge inside a transactional
// read-modify-write. Returning an error aborts the update.
type ChallengeUpdateFn func(*model.Challenge) error

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Registered player operations
	SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error
	GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error)
	GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error)

	// Profile operations
	SaveProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, playerID model.PlayerID) (*model.Profile, error)

	// Challenge operations. The code index is released when a challenge
	// expires so the code can be reissued; completed challenges stay
	// reachable by code for result viewing. GetActiveChallengeByCode only
	// resolves non-terminal (pending/accepted) challenges.
	SaveChallenge(ctx context.Context, challenge *model.Challenge) error
	GetChallenge(ctx context.Context, id model.ChallengeID) (*model.Challenge, error)
	GetChallengeByCode(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error)
	GetActiveChallengeByCode(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error)
	// UpdateChallenge applies fn under a transactional read-modify-write so
	// concurrent score submissions cannot lose an update.
	UpdateChallenge(ctx context.Context, id model.ChallengeID, fn ChallengeUpdateFn) (*model.Challenge, error)

	// Leaderboard operations. MergeLeaderboardEntry stores the entry only if
	// its score is strictly higher than the stored one, comparing and writing
	// atomically so a racing lower score can never clobber a higher one. It
	// reports whether the entry was stored. TopLeaderboardEntries lists in
	// model.SortLeaderboard order.
	GetLeaderboardEntry(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty) (*model.LeaderboardEntry, error)
	MergeLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) (bool, error)
	TopLeaderboardEntries(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.LeaderboardEntry, error)

	// Daily challenge operations. SaveDailyCompletion persists the stats
	// record and the day's result atomically, both or neither, and returns
	// model.ErrDailyAlreadyCompleted if a result for that player and date
	// already exists; the existence check and the write are one atomic step.
	GetDailyStats(ctx context.Context, playerID model.PlayerID) (*model.DailyStats, error)
	GetDailyResult(ctx context.Context, playerID model.PlayerID, date string) (*model.DailyResult, error)
	SaveDailyCompletion(ctx context.Context, stats *model.DailyStats, result *model.DailyResult) error
}
