package daily_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scripturemastery/server/internal/dependencies/mocks"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/daily"
	"github.com/scripturemastery/server/internal/services/selection"
	"github.com/scripturemastery/server/internal/storage/memory"
	"github.com/scripturemastery/server/internal/testutil"
)

type ServiceTestSuite struct {
	suite.Suite

	store   *memory.Storage
	clock   *mocks.MockClock
	service *daily.Service

	ctx context.Context
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s.service = daily.NewService(s.store, selection.New(), s.clock, testutil.NewNopLogger())
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TestTodaysSet_StableWithinDay() {
	date, first, err := s.service.TodaysSet(s.ctx)
	s.Require().NoError(err)
	s.Equal("2025-03-10", date)
	s.Len(first, 5)

	s.clock.Advance(10 * time.Hour)
	_, second, err := s.service.TodaysSet(s.ctx)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *ServiceTestSuite) TestTodaysSet_ChangesAcrossDays() {
	_, first, err := s.service.TodaysSet(s.ctx)
	s.Require().NoError(err)

	s.clock.Advance(24 * time.Hour)
	date, second, err := s.service.TodaysSet(s.ctx)
	s.Require().NoError(err)
	s.Equal("2025-03-11", date)
	s.NotEqual(first, second)
}

func (s *ServiceTestSuite) TestComplete_FirstTime() {
	stats, earned, err := s.service.Complete(s.ctx, "p1", 4)
	s.Require().NoError(err)

	s.Equal(1, stats.CurrentStreak)
	s.Equal(1, stats.LongestStreak)
	s.Equal(1, stats.TotalCompleted)
	s.Equal(4, stats.TotalCorrect)
	s.Equal("2025-03-10", stats.LastCompletedDate)
	s.Equal([]model.BadgeID{model.BadgeFirstCompleted}, earned)
}

func (s *ServiceTestSuite) TestComplete_TwiceSameDay() {
	_, _, err := s.service.Complete(s.ctx, "p1", 4)
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)
	_, _, err = s.service.Complete(s.ctx, "p1", 5)
	s.ErrorIs(err, model.ErrDailyAlreadyCompleted)

	stats, err := s.service.Stats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1, stats.TotalCompleted)
	s.Equal(4, stats.TotalCorrect)
}

func (s *ServiceTestSuite) TestComplete_ConcurrentSameDay() {
	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.service.Complete(s.ctx, "p1", 5)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	// Exactly one completion may count even when both pass the early check
	var rejected int
	for err := range errs {
		if err != nil {
			s.ErrorIs(err, model.ErrDailyAlreadyCompleted)
			rejected++
		}
	}
	s.Equal(1, rejected)

	stats, err := s.service.Stats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(1, stats.TotalCompleted)
	s.Equal(5, stats.TotalCorrect)
}

func (s *ServiceTestSuite) TestComplete_ConsecutiveDaysExtendStreak() {
	for day := 0; day < 3; day++ {
		_, _, err := s.service.Complete(s.ctx, "p1", 3)
		s.Require().NoError(err)
		s.clock.Advance(24 * time.Hour)
	}

	stats, err := s.service.Stats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(3, stats.CurrentStreak)
	s.Equal(3, stats.LongestStreak)
	s.True(stats.HasBadge(model.BadgeStreak3))
}

func (s *ServiceTestSuite) TestComplete_GapResetsStreak() {
	_, _, err := s.service.Complete(s.ctx, "p1", 3)
	s.Require().NoError(err)
	s.clock.Advance(24 * time.Hour)
	_, _, err = s.service.Complete(s.ctx, "p1", 3)
	s.Require().NoError(err)

	// Skip a day
	s.clock.Advance(48 * time.Hour)
	stats, _, err := s.service.Complete(s.ctx, "p1", 3)
	s.Require().NoError(err)
	s.Equal(1, stats.CurrentStreak)
	s.Equal(2, stats.LongestStreak)
}

func (s *ServiceTestSuite) TestComplete_StreakBadgesAwardedOnce() {
	for day := 0; day < 4; day++ {
		_, earned, err := s.service.Complete(s.ctx, "p1", 3)
		s.Require().NoError(err)
		switch day {
		case 0:
			s.Equal([]model.BadgeID{model.BadgeFirstCompleted}, earned)
		case 2:
			s.Equal([]model.BadgeID{model.BadgeStreak3}, earned)
		default:
			s.Empty(earned)
		}
		s.clock.Advance(24 * time.Hour)
	}
}

func (s *ServiceTestSuite) TestComplete_FiftyCorrectBadge() {
	// 5 correct per day for 10 days crosses the 50-correct threshold
	var lastEarned []model.BadgeID
	for day := 0; day < 10; day++ {
		_, earned, err := s.service.Complete(s.ctx, "p1", 5)
		s.Require().NoError(err)
		lastEarned = earned
		s.clock.Advance(24 * time.Hour)
	}

	s.Contains(lastEarned, model.BadgeCorrect50)
	stats, err := s.service.Stats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(50, stats.TotalCorrect)
}

func (s *ServiceTestSuite) TestComplete_ScoreOutOfRange() {
	_, _, err := s.service.Complete(s.ctx, "p1", 6)
	s.ErrorIs(err, model.ErrInvalidDailyScore)

	_, _, err = s.service.Complete(s.ctx, "p1", -1)
	s.ErrorIs(err, model.ErrInvalidDailyScore)
}

func (s *ServiceTestSuite) TestStats_NeverCompleted() {
	stats, err := s.service.Stats(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(0, stats.CurrentStreak)
	s.Empty(stats.Badges)
}
