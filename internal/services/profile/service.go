package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/scripturemastery/server/internal/dependencies/clock"
	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/storage"
)

// MaxNicknameLength bounds nicknames shown to other players
const MaxNicknameLength = 24

// Errors
var (
	ErrInvalidNickname = errors.New("nickname must be 1-24 characters")
)

// Service manages player profiles: nickname, photo, per-difficulty high
// scores, and the leaderboard opt-in flag. Profiles are created lazily on
// first write.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// NewService creates a new profile Service
func NewService(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Get returns the player's profile
func (s *Service) Get(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	return s.storage.GetProfile(ctx, playerID)
}

// SetNickname sets the player's nickname, creating the profile if needed
func (s *Service) SetNickname(ctx context.Context, playerID model.PlayerID, nickname string) (*model.Profile, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || len(nickname) > MaxNicknameLength {
		return nil, ErrInvalidNickname
	}

	return s.update(ctx, playerID, func(p *model.Profile) {
		p.Nickname = nickname
	})
}

// SetPhotoURL sets the player's photo URL, creating the profile if needed
func (s *Service) SetPhotoURL(ctx context.Context, playerID model.PlayerID, photoURL string) (*model.Profile, error) {
	return s.update(ctx, playerID, func(p *model.Profile) {
		p.PhotoURL = photoURL
	})
}

// SetLeaderboardOptIn records whether the player appears on public
// leaderboards
func (s *Service) SetLeaderboardOptIn(ctx context.Context, playerID model.PlayerID, optIn bool) (*model.Profile, error) {
	return s.update(ctx, playerID, func(p *model.Profile) {
		p.LeaderboardOptIn = optIn
	})
}

// UpdateHighScore merges a score into the profile's per-difficulty best,
// keeping the larger. It reports whether the score improved the best.
func (s *Service) UpdateHighScore(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty, score int) (bool, error) {
	if !model.ValidDifficulty(difficulty) {
		return false, model.ErrInvalidDifficulty
	}

	improved := false
	_, err := s.update(ctx, playerID, func(p *model.Profile) {
		if score > p.HighScore(difficulty) {
			if p.HighScores == nil {
				p.HighScores = make(map[model.Difficulty]int)
			}
			p.HighScores[difficulty] = score
			improved = true
		}
	})
	return improved, err
}

// update loads (or lazily creates) the profile, applies fn, and saves
func (s *Service) update(ctx context.Context, playerID model.PlayerID, fn func(*model.Profile)) (*model.Profile, error) {
	now := s.clock.Now()

	profile, err := s.storage.GetProfile(ctx, playerID)
	if errors.Is(err, model.ErrProfileNotFound) {
		profile = &model.Profile{
			PlayerID:  playerID,
			CreatedAt: now,
		}
	} else if err != nil {
		return nil, err
	}

	fn(profile)
	profile.UpdatedAt = now

	if err := s.storage.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Get(ctx context.Context, playerID model.PlayerID) (*model.Profile, error)
	SetNickname(ctx context.Context, playerID model.PlayerID, nickname string) (*model.Profile, error)
	SetPhotoURL(ctx context.Context, playerID model.PlayerID, photoURL string) (*model.Profile, error)
	SetLeaderboardOptIn(ctx context.Context, playerID model.PlayerID, optIn bool) (*model.Profile, error)
	UpdateHighScore(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty, score int) (bool, error)
}

var _ ServiceInterface = (*Service)(nil)
