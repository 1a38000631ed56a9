package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/scripturemastery/server/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// signUp creates a guest player with a nickname, ready to play
func (s *IntegrationSuite) signUp(displayName, nickname string) model.PlayerID {
	session, err := s.app.AuthService.CreateGuestPlayer(s.ctx, displayName)
	s.Require().NoError(err)
	_, err = s.app.ProfileService.SetNickname(s.ctx, session.PlayerID, nickname)
	s.Require().NoError(err)
	return session.PlayerID
}

// Test: Complete challenge flow from creation to a resolved winner
func (s *IntegrationSuite) TestCompleteChallengeFlow() {
	s.app.MockRandom.QueueString("QZXW23")

	alice := s.signUp("Alice", "alice")
	bob := s.signUp("Bob", "bob")

	// Step 1: Alice creates a challenge
	ch, err := s.app.ChallengeController.Create(s.ctx, alice, model.DifficultyMedium, 5)
	s.Require().NoError(err)
	s.Equal(model.ChallengeCode("QZXW23"), ch.Code)
	s.Equal(model.ChallengeStatusPending, ch.Status)
	s.Len(ch.Scriptures, 5)

	// Step 2: Bob joins with the code
	ch, err = s.app.ChallengeController.Join(s.ctx, ch.Code, bob)
	s.Require().NoError(err)
	s.Equal(model.ChallengeStatusAccepted, ch.Status)
	s.Require().NotNil(ch.Challenger)
	s.Equal(bob, ch.Challenger.PlayerID)

	// Step 3: Both players see the identical question set
	got, err := s.app.ChallengeController.Get(s.ctx, ch.Code)
	s.Require().NoError(err)
	s.Equal(ch.Scriptures, got.Scriptures)

	// Step 4: Both submit scores; Bob is faster at the same score
	_, err = s.app.ChallengeController.SubmitScore(s.ctx, ch.Code, alice, 4, 90*time.Second)
	s.Require().NoError(err)
	ch, err = s.app.ChallengeController.SubmitScore(s.ctx, ch.Code, bob, 4, 60*time.Second)
	s.Require().NoError(err)

	// Step 5: The server resolves the winner on the time tiebreak
	s.Equal(model.ChallengeStatusCompleted, ch.Status)
	s.Equal(bob, ch.Winner)
	s.False(ch.IsTie)
}

// Test: Challenge scores feed the leaderboard when opted in
func (s *IntegrationSuite) TestLeaderboardFlow() {
	alice := s.signUp("Alice", "alice")
	bob := s.signUp("Bob", "bob")

	_, err := s.app.ProfileService.SetLeaderboardOptIn(s.ctx, alice, true)
	s.Require().NoError(err)
	_, err = s.app.ProfileService.SetLeaderboardOptIn(s.ctx, bob, true)
	s.Require().NoError(err)

	improved, err := s.app.LeaderboardService.Submit(s.ctx, alice, model.DifficultyHard, 7)
	s.Require().NoError(err)
	s.True(improved)
	improved, err = s.app.LeaderboardService.Submit(s.ctx, bob, model.DifficultyHard, 9)
	s.Require().NoError(err)
	s.True(improved)

	// A lower rerun does not displace the personal best
	improved, err = s.app.LeaderboardService.Submit(s.ctx, alice, model.DifficultyHard, 3)
	s.Require().NoError(err)
	s.False(improved)

	top, err := s.app.LeaderboardService.Top(s.ctx, model.DifficultyHard, 10)
	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(bob, top[0].PlayerID)
	s.Equal(alice, top[1].PlayerID)
	s.Equal(7, top[1].Score)
}

// Test: Daily completions build a streak across consecutive days
func (s *IntegrationSuite) TestDailyStreakFlow() {
	alice := s.signUp("Alice", "alice")

	for day := 0; day < 3; day++ {
		if day > 0 {
			s.app.MockClock.Advance(24 * time.Hour)
		}
		stats, _, err := s.app.DailyService.Complete(s.ctx, alice, 5)
		s.Require().NoError(err)
		s.Equal(day+1, stats.CurrentStreak)
	}

	stats, err := s.app.DailyService.Stats(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(3, stats.CurrentStreak)
	s.True(stats.HasBadge(model.BadgeStreak3))
}

// Test: Linking a guest account keeps challenge history on the same player
func (s *IntegrationSuite) TestGuestUpgradeKeepsProgress() {
	s.app.MockRandom.QueueString("QZXW23")

	aliceSession, err := s.app.AuthService.CreateGuestPlayer(s.ctx, "Alice")
	s.Require().NoError(err)
	alice := aliceSession.PlayerID
	_, err = s.app.ProfileService.SetNickname(s.ctx, alice, "alice")
	s.Require().NoError(err)
	bob := s.signUp("Bob", "bob")

	ch, err := s.app.ChallengeController.Create(s.ctx, alice, model.DifficultyEasy, 3)
	s.Require().NoError(err)
	_, err = s.app.ChallengeController.Join(s.ctx, ch.Code, bob)
	s.Require().NoError(err)

	// Alice registers mid-challenge; the player ID survives the upgrade
	linked, err := s.app.AuthService.LinkAccount(s.ctx, aliceSession.Token, "alice@example.com", "hunter22")
	s.Require().NoError(err)
	s.Equal(alice, linked.PlayerID)
	s.False(linked.Player.IsGuest)

	_, err = s.app.ChallengeController.SubmitScore(s.ctx, ch.Code, alice, 3, 30*time.Second)
	s.Require().NoError(err)
	ch, err = s.app.ChallengeController.SubmitScore(s.ctx, ch.Code, bob, 1, 30*time.Second)
	s.Require().NoError(err)
	s.Equal(alice, ch.Winner)
}
