package leaderboard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scripturemastery/server/internal/dependencies/mocks"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/leaderboard"
	"github.com/scripturemastery/server/internal/storage/memory"
	"github.com/scripturemastery/server/internal/testutil"
)

type ServiceTestSuite struct {
	suite.Suite

	store   *memory.Storage
	clock   *mocks.MockClock
	service *leaderboard.Service

	ctx context.Context
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	s.service = leaderboard.NewService(s.store, s.clock, testutil.NewNopLogger())
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) givenPlayer(id model.PlayerID, nickname string, optIn bool) {
	s.Require().NoError(s.store.SaveProfile(s.ctx, &model.Profile{
		PlayerID:         id,
		Nickname:         nickname,
		LeaderboardOptIn: optIn,
		CreatedAt:        s.clock.Now(),
		UpdatedAt:        s.clock.Now(),
	}))
}

func (s *ServiceTestSuite) TestSubmit_FirstScore() {
	s.givenPlayer("p1", "Alice", true)

	improved, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 4)
	s.Require().NoError(err)
	s.True(improved)

	entry, err := s.service.Best(s.ctx, "p1", model.DifficultyMedium)
	s.Require().NoError(err)
	s.Equal(4, entry.Score)
	s.Equal("Alice", entry.Nickname)
}

func (s *ServiceTestSuite) TestSubmit_HigherScoreReplaces() {
	s.givenPlayer("p1", "Alice", true)

	_, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 4)
	s.Require().NoError(err)

	improved, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 7)
	s.Require().NoError(err)
	s.True(improved)

	entry, err := s.service.Best(s.ctx, "p1", model.DifficultyMedium)
	s.Require().NoError(err)
	s.Equal(7, entry.Score)
}

func (s *ServiceTestSuite) TestSubmit_EqualScoreKept() {
	s.givenPlayer("p1", "Alice", true)

	_, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 4)
	s.Require().NoError(err)
	recorded := s.clock.Now()

	s.clock.Advance(time.Hour)
	improved, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 4)
	s.Require().NoError(err)
	s.False(improved)

	entry, err := s.service.Best(s.ctx, "p1", model.DifficultyMedium)
	s.Require().NoError(err)
	s.Equal(4, entry.Score)
	s.Equal(recorded, entry.UpdatedAt)
}

func (s *ServiceTestSuite) TestSubmit_LowerScoreIgnored() {
	s.givenPlayer("p1", "Alice", true)

	_, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 8)
	s.Require().NoError(err)

	improved, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 3)
	s.Require().NoError(err)
	s.False(improved)

	entry, err := s.service.Best(s.ctx, "p1", model.DifficultyMedium)
	s.Require().NoError(err)
	s.Equal(8, entry.Score)
}

func (s *ServiceTestSuite) TestSubmit_ConcurrentKeepsHigherScore() {
	s.givenPlayer("p1", "Alice", true)

	var wg sync.WaitGroup
	for _, score := range []int{5, 3} {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, score)
			s.NoError(err)
		}(score)
	}
	wg.Wait()

	entry, err := s.service.Best(s.ctx, "p1", model.DifficultyMedium)
	s.Require().NoError(err)
	s.Equal(5, entry.Score)
}

func (s *ServiceTestSuite) TestSubmit_DifficultiesIndependent() {
	s.givenPlayer("p1", "Alice", true)

	_, err := s.service.Submit(s.ctx, "p1", model.DifficultyEasy, 9)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, "p1", model.DifficultyHard, 2)
	s.Require().NoError(err)

	easy, err := s.service.Best(s.ctx, "p1", model.DifficultyEasy)
	s.Require().NoError(err)
	s.Equal(9, easy.Score)

	hard, err := s.service.Best(s.ctx, "p1", model.DifficultyHard)
	s.Require().NoError(err)
	s.Equal(2, hard.Score)
}

func (s *ServiceTestSuite) TestSubmit_OptedOut() {
	s.givenPlayer("p1", "Alice", false)

	_, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 4)
	s.ErrorIs(err, model.ErrLeaderboardOptedOut)
}

func (s *ServiceTestSuite) TestSubmit_InvalidDifficulty() {
	s.givenPlayer("p1", "Alice", true)

	_, err := s.service.Submit(s.ctx, "p1", "brutal", 4)
	s.ErrorIs(err, model.ErrInvalidDifficulty)
}

func (s *ServiceTestSuite) TestTop_OrderedByScore() {
	s.givenPlayer("p1", "Alice", true)
	s.givenPlayer("p2", "Bob", true)
	s.givenPlayer("p3", "Carol", true)

	_, err := s.service.Submit(s.ctx, "p1", model.DifficultyMedium, 3)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, "p2", model.DifficultyMedium, 9)
	s.Require().NoError(err)
	_, err = s.service.Submit(s.ctx, "p3", model.DifficultyMedium, 6)
	s.Require().NoError(err)

	top, err := s.service.Top(s.ctx, model.DifficultyMedium, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 3)
	s.Equal(model.PlayerID("p2"), top[0].PlayerID)
	s.Equal(model.PlayerID("p3"), top[1].PlayerID)
	s.Equal(model.PlayerID("p1"), top[2].PlayerID)
}

func (s *ServiceTestSuite) TestTop_Limit() {
	for i, id := range []model.PlayerID{"p1", "p2", "p3"} {
		s.givenPlayer(id, string(id), true)
		_, err := s.service.Submit(s.ctx, id, model.DifficultyEasy, i+1)
		s.Require().NoError(err)
	}

	top, err := s.service.Top(s.ctx, model.DifficultyEasy, 2)
	s.Require().NoError(err)
	s.Len(top, 2)
}
