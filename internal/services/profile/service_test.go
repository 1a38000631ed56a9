package profile_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scripturemastery/server/internal/dependencies/mocks"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/services/profile"
	"github.com/scripturemastery/server/internal/storage/memory"
)

type ServiceTestSuite struct {
	suite.Suite

	store   *memory.Storage
	clock   *mocks.MockClock
	service *profile.Service

	ctx context.Context
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	s.service = profile.NewService(s.store, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceTestSuite) TestSetNickname_CreatesProfile() {
	p, err := s.service.SetNickname(s.ctx, "p1", "Alice")
	s.Require().NoError(err)
	s.Equal("Alice", p.Nickname)
	s.Equal(s.clock.Now(), p.CreatedAt)

	stored, err := s.service.Get(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal("Alice", stored.Nickname)
}

func (s *ServiceTestSuite) TestSetNickname_TrimsWhitespace() {
	p, err := s.service.SetNickname(s.ctx, "p1", "  Alice  ")
	s.Require().NoError(err)
	s.Equal("Alice", p.Nickname)
}

func (s *ServiceTestSuite) TestSetNickname_RejectsEmpty() {
	_, err := s.service.SetNickname(s.ctx, "p1", "   ")
	s.ErrorIs(err, profile.ErrInvalidNickname)
}

func (s *ServiceTestSuite) TestSetNickname_RejectsTooLong() {
	_, err := s.service.SetNickname(s.ctx, "p1", strings.Repeat("x", 25))
	s.ErrorIs(err, profile.ErrInvalidNickname)
}

func (s *ServiceTestSuite) TestSetNickname_PreservesOtherFields() {
	_, err := s.service.SetLeaderboardOptIn(s.ctx, "p1", true)
	s.Require().NoError(err)

	p, err := s.service.SetNickname(s.ctx, "p1", "Alice")
	s.Require().NoError(err)
	s.True(p.LeaderboardOptIn)
}

func (s *ServiceTestSuite) TestGet_NotFound() {
	_, err := s.service.Get(s.ctx, "missing")
	s.ErrorIs(err, model.ErrProfileNotFound)
}

func (s *ServiceTestSuite) TestUpdateHighScore_FirstScore() {
	improved, err := s.service.UpdateHighScore(s.ctx, "p1", model.DifficultyMedium, 4)
	s.Require().NoError(err)
	s.True(improved)

	p, err := s.service.Get(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(4, p.HighScore(model.DifficultyMedium))
}

func (s *ServiceTestSuite) TestUpdateHighScore_LargerWins() {
	_, err := s.service.UpdateHighScore(s.ctx, "p1", model.DifficultyMedium, 4)
	s.Require().NoError(err)

	improved, err := s.service.UpdateHighScore(s.ctx, "p1", model.DifficultyMedium, 7)
	s.Require().NoError(err)
	s.True(improved)

	improved, err = s.service.UpdateHighScore(s.ctx, "p1", model.DifficultyMedium, 5)
	s.Require().NoError(err)
	s.False(improved)

	p, err := s.service.Get(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(7, p.HighScore(model.DifficultyMedium))
}

func (s *ServiceTestSuite) TestUpdateHighScore_PerDifficulty() {
	_, err := s.service.UpdateHighScore(s.ctx, "p1", model.DifficultyEasy, 9)
	s.Require().NoError(err)
	_, err = s.service.UpdateHighScore(s.ctx, "p1", model.DifficultyHard, 2)
	s.Require().NoError(err)

	p, err := s.service.Get(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(9, p.HighScore(model.DifficultyEasy))
	s.Equal(2, p.HighScore(model.DifficultyHard))
	s.Equal(0, p.HighScore(model.DifficultyMedium))
}

func (s *ServiceTestSuite) TestUpdateHighScore_InvalidDifficulty() {
	_, err := s.service.UpdateHighScore(s.ctx, "p1", "brutal", 4)
	s.ErrorIs(err, model.ErrInvalidDifficulty)
}

func (s *ServiceTestSuite) TestSetLeaderboardOptIn_Toggle() {
	p, err := s.service.SetLeaderboardOptIn(s.ctx, "p1", true)
	s.Require().NoError(err)
	s.True(p.LeaderboardOptIn)

	p, err = s.service.SetLeaderboardOptIn(s.ctx, "p1", false)
	s.Require().NoError(err)
	s.False(p.LeaderboardOptIn)
}

func (s *ServiceTestSuite) TestSetPhotoURL() {
	p, err := s.service.SetPhotoURL(s.ctx, "p1", "https://example.com/me.png")
	s.Require().NoError(err)
	s.Equal("https://example.com/me.png", p.PhotoURL)
}
