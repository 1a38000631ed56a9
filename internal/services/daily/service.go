package daily

import (
	"context"
	"errors"
	"log/slog"

	"github.com/scripturemastery/server/internal/dependencies/clock"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/selection"
	"github.com/scripturemastery/server/internal/storage"
)

const (
	// QuestionCount is the fixed size of the daily set
	QuestionCount = 5
	// seedPrefix namespaces the daily seed away from challenge codes
	seedPrefix = "daily-"
)

// Service runs the daily challenge: one shared scripture set per calendar
// day, a per-player completion record, and the streak and badge bookkeeping
// that hangs off it.
type Service struct {
	storage   storage.Storage
	selection *selection.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// NewService creates a new daily Service
func NewService(storage storage.Storage, selection *selection.Service, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage:   storage,
		selection: selection,
		clock:     clock,
		logger:    logger,
	}
}

// TodaysSet returns today's scripture set. Every caller on the same
// calendar day gets the identical list, with no stored state involved.
func (s *Service) TodaysSet(ctx context.Context) (string, []model.Scripture, error) {
	date := clock.DateOf(s.clock.Now())
	set, err := s.selection.Select(seedPrefix+date, QuestionCount)
	if err != nil {
		return "", nil, err
	}
	return date, set, nil
}

// Stats returns the player's daily-challenge stats, or zeroed stats for a
// player who has never completed one.
func (s *Service) Stats(ctx context.Context, playerID model.PlayerID) (*model.DailyStats, error) {
	stats, err := s.storage.GetDailyStats(ctx, playerID)
	if errors.Is(err, model.ErrDailyStatsNotFound) {
		return &model.DailyStats{PlayerID: playerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// Complete records the player's result for today's challenge and returns the
// updated stats plus any badges earned by this completion. A second
// completion on the same day is rejected. The stats update and the result
// record are written atomically.
func (s *Service) Complete(ctx context.Context, playerID model.PlayerID, correct int) (*model.DailyStats, []model.BadgeID, error) {
	if correct < 0 || correct > QuestionCount {
		return nil, nil, model.ErrInvalidDailyScore
	}

	now := s.clock.Now()
	today := clock.DateOf(now)

	// Fast path; SaveDailyCompletion enforces the same rule atomically, so a
	// completion racing past this check is still rejected there
	_, err := s.storage.GetDailyResult(ctx, playerID, today)
	if err == nil {
		return nil, nil, model.ErrDailyAlreadyCompleted
	}
	if !errors.Is(err, model.ErrDailyResultNotFound) {
		return nil, nil, err
	}

	stats, err := s.Stats(ctx, playerID)
	if err != nil {
		return nil, nil, err
	}

	yesterday := clock.DateOf(now.AddDate(0, 0, -1))
	if stats.LastCompletedDate == yesterday {
		stats.CurrentStreak++
	} else {
		stats.CurrentStreak = 1
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.TotalCompleted++
	stats.TotalCorrect += correct
	stats.LastCompletedDate = today
	stats.UpdatedAt = now

	earned := awardBadges(stats)

	result := &model.DailyResult{
		PlayerID:    playerID,
		Date:        today,
		Correct:     correct,
		Total:       QuestionCount,
		CompletedAt: now,
	}
	if err := s.storage.SaveDailyCompletion(ctx, stats, result); err != nil {
		return nil, nil, err
	}

	s.logger.Info("daily challenge completed",
		slog.String("player_id", string(playerID)),
		slog.String("date", today),
		slog.Int("correct", correct),
		slog.Int("streak", stats.CurrentStreak),
	)

	return stats, earned, nil
}

// awardBadges appends any newly earned badges to stats and returns them.
// Each badge is awarded at most once.
func awardBadges(stats *model.DailyStats) []model.BadgeID {
	var earned []model.BadgeID
	grant := func(id model.BadgeID, met bool) {
		if met && !stats.HasBadge(id) {
			stats.Badges = append(stats.Badges, id)
			earned = append(earned, id)
		}
	}

	grant(model.BadgeFirstCompleted, stats.TotalCompleted >= 1)
	grant(model.BadgeStreak3, stats.CurrentStreak >= 3)
	grant(model.BadgeStreak7, stats.CurrentStreak >= 7)
	grant(model.BadgeStreak14, stats.CurrentStreak >= 14)
	grant(model.BadgeStreak30, stats.CurrentStreak >= 30)
	grant(model.BadgeCorrect50, stats.TotalCorrect >= 50)

	return earned
}

// Interface for dependency injection
type ServiceInterface interface {
	TodaysSet(ctx context.Context) (string, []model.Scripture, error)
	Stats(ctx context.Context, playerID model.PlayerID) (*model.DailyStats, error)
	Complete(ctx context.Context, playerID model.PlayerID, correct int) (*model.DailyStats, []model.BadgeID, error)
}

var _ ServiceInterface = (*Service)(nil)
