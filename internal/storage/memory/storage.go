package memory

import (
	"context"
	"sync"

	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players           map[model.PlayerID]*model.Player
	registeredPlayers map[model.PlayerID]*model.RegisteredPlayer
	usernameIndex     map[string]model.PlayerID
	profiles          map[model.PlayerID]*model.Profile
	challenges        map[model.ChallengeID]*model.Challenge
	codeIndex         map[model.ChallengeCode]model.ChallengeID
	leaderboard       map[leaderboardKey]*model.LeaderboardEntry
	dailyStats        map[model.PlayerID]*model.DailyStats
	dailyResults      map[dailyKey]*model.DailyResult
}

type leaderboardKey struct {
	playerID   model.PlayerID
	difficulty model.Difficulty
}

type dailyKey struct {
	playerID model.PlayerID
	date     string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:           make(map[model.PlayerID]*model.Player),
		registeredPlayers: make(map[model.PlayerID]*model.RegisteredPlayer),
		usernameIndex:     make(map[string]model.PlayerID),
		profiles:          make(map[model.PlayerID]*model.Profile),
		challenges:        make(map[model.ChallengeID]*model.Challenge),
		codeIndex:         make(map[model.ChallengeCode]model.ChallengeID),
		leaderboard:       make(map[leaderboardKey]*model.LeaderboardEntry),
		dailyStats:        make(map[model.PlayerID]*model.DailyStats),
		dailyResults:      make(map[dailyKey]*model.DailyResult),
	}
}

var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredPlayers[rp.PlayerID] = rp
	s.usernameIndex[rp.Username] = rp.PlayerID
	return nil
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	playerID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	rp, ok := s.registeredPlayers[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return rp, nil
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.PlayerID] = profile
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[playerID]
	if !ok {
		return nil, model.ErrProfileNotFound
	}
	return profile, nil
}

// Challenge operations

func (s *Storage) SaveChallenge(ctx context.Context, challenge *model.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.ID] = challenge
	s.syncCodeIndex(challenge)
	return nil
}

// syncCodeIndex releases the code of an expired challenge and keeps every
// other status indexed. Caller must hold the write lock.
func (s *Storage) syncCodeIndex(challenge *model.Challenge) {
	if challenge.Status == model.ChallengeStatusExpired {
		if id, ok := s.codeIndex[challenge.Code]; ok && id == challenge.ID {
			delete(s.codeIndex, challenge.Code)
		}
		return
	}
	s.codeIndex[challenge.Code] = challenge.ID
}

func (s *Storage) GetChallenge(ctx context.Context, id model.ChallengeID) (*model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	challenge, ok := s.challenges[id]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	return challenge, nil
}

func (s *Storage) GetChallengeByCode(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.codeIndex[code]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	challenge, ok := s.challenges[id]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	return challenge, nil
}

func (s *Storage) GetActiveChallengeByCode(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error) {
	challenge, err := s.GetChallengeByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if challenge.Terminal() {
		return nil, model.ErrChallengeNotFound
	}
	return challenge, nil
}

func (s *Storage) UpdateChallenge(ctx context.Context, id model.ChallengeID, fn storage.ChallengeUpdateFn) (*model.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[id]
	if !ok {
		return nil, model.ErrChallengeNotFound
	}
	// Mutate a copy so an aborted update leaves the stored record untouched
	updated := *challenge
	if challenge.Challenger != nil {
		c := *challenge.Challenger
		updated.Challenger = &c
	}
	if err := fn(&updated); err != nil {
		return nil, err
	}
	s.challenges[id] = &updated
	s.syncCodeIndex(&updated)
	return &updated, nil
}

// Leaderboard operations

func (s *Storage) GetLeaderboardEntry(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty) (*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.leaderboard[leaderboardKey{playerID, difficulty}]
	if !ok {
		return nil, model.ErrLeaderboardEntryNotFound
	}
	return entry, nil
}

func (s *Storage) MergeLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := leaderboardKey{entry.PlayerID, entry.Difficulty}
	// Compare under the same lock as the write so a racing lower score
	// cannot overwrite a higher one
	if existing, ok := s.leaderboard[key]; ok && entry.Score <= existing.Score {
		return false, nil
	}
	s.leaderboard[key] = entry
	return true, nil
}

func (s *Storage) TopLeaderboardEntries(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]*model.LeaderboardEntry, 0)
	for key, entry := range s.leaderboard {
		if key.difficulty == difficulty {
			entries = append(entries, entry)
		}
	}
	model.SortLeaderboard(entries)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Daily challenge operations

func (s *Storage) GetDailyStats(ctx context.Context, playerID model.PlayerID) (*model.DailyStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.dailyStats[playerID]
	if !ok {
		return nil, model.ErrDailyStatsNotFound
	}
	return stats, nil
}

func (s *Storage) GetDailyResult(ctx context.Context, playerID model.PlayerID, date string) (*model.DailyResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.dailyResults[dailyKey{playerID, date}]
	if !ok {
		return nil, model.ErrDailyResultNotFound
	}
	return result, nil
}

func (s *Storage) SaveDailyCompletion(ctx context.Context, stats *model.DailyStats, result *model.DailyResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dailyKey{result.PlayerID, result.Date}
	// The existence check shares the write lock with the insert, so two
	// racing completions cannot both count
	if _, ok := s.dailyResults[key]; ok {
		return model.ErrDailyAlreadyCompleted
	}
	s.dailyStats[stats.PlayerID] = stats
	s.dailyResults[key] = result
	return nil
}
