package leaderboard

import (
	"context"
	"log/slog"

	"github.com/scripturemastery/server/internal/dependencies/clock"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/storage"
)

// DefaultLimit is how many entries Top returns when the caller does not ask
// for a specific count
const DefaultLimit = 50

// Service maintains per-player personal bests and serves ranked listings.
// Submissions merge: an entry only ever moves up, a lower or equal score
// leaves the stored best untouched.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// NewService creates a new leaderboard Service
func NewService(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit records a score for the player at the given difficulty. It returns
// whether the score improved the stored personal best. Players who have
// opted out of the leaderboard are rejected.
func (s *Service) Submit(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty, score int) (bool, error) {
	if !model.ValidDifficulty(difficulty) {
		return false, model.ErrInvalidDifficulty
	}

	profile, err := s.storage.GetProfile(ctx, playerID)
	if err != nil {
		return false, err
	}
	if !profile.LeaderboardOptIn {
		return false, model.ErrLeaderboardOptedOut
	}

	entry := &model.LeaderboardEntry{
		PlayerID:   playerID,
		Nickname:   profile.Nickname,
		PhotoURL:   profile.PhotoURL,
		Difficulty: difficulty,
		Score:      score,
		UpdatedAt:  s.clock.Now(),
	}
	// Storage owns the strictly-greater compare so the merge holds under
	// concurrent submissions
	improved, err := s.storage.MergeLeaderboardEntry(ctx, entry)
	if err != nil {
		return false, err
	}
	if !improved {
		return false, nil
	}

	s.logger.Info("leaderboard best updated",
		slog.String("player_id", string(playerID)),
		slog.String("difficulty", string(difficulty)),
		slog.Int("score", score),
	)
	return true, nil
}

// Best returns the player's stored personal best for a difficulty
func (s *Service) Best(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty) (*model.LeaderboardEntry, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, model.ErrInvalidDifficulty
	}
	return s.storage.GetLeaderboardEntry(ctx, playerID, difficulty)
}

// Top returns the highest personal bests for a difficulty, best first.
// A non-positive limit falls back to DefaultLimit.
func (s *Service) Top(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.LeaderboardEntry, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, model.ErrInvalidDifficulty
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.storage.TopLeaderboardEntries(ctx, difficulty, limit)
}

// Interface for dependency injection
type ServiceInterface interface {
	Submit(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty, score int) (bool, error)
	Best(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty) (*model.LeaderboardEntry, error)
	Top(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.LeaderboardEntry, error)
}

var _ ServiceInterface = (*Service)(nil)
