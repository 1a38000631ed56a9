package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scripturemastery/server/internal/model"
	"github.com/scripturemastery/server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Only unlinked guests expire
	var ttl time.Duration
	if player.IsGuest {
		ttl = s.cfg.GuestPlayerTTL
	}
	return s.client.Set(ctx, playerKey(player.ID), data, ttl).Err()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	var player model.Player
	if err := s.getJSON(ctx, playerKey(id), &player, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &player, nil
}

// Registered player operations

func (s *Storage) SaveRegisteredPlayer(ctx context.Context, rp *model.RegisteredPlayer) error {
	data, err := json.Marshal(rp)
	if err != nil {
		return err
	}

	// Pipeline keeps the record and the username index in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, registeredPlayerKey(rp.PlayerID), data, 0)
	pipe.Set(ctx, usernameIndexKey(rp.Username), string(rp.PlayerID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredPlayer(ctx context.Context, playerID model.PlayerID) (*model.RegisteredPlayer, error) {
	var rp model.RegisteredPlayer
	if err := s.getJSON(ctx, registeredPlayerKey(playerID), &rp, model.ErrPlayerNotFound); err != nil {
		return nil, err
	}
	return &rp, nil
}

func (s *Storage) GetRegisteredPlayerByUsername(ctx context.Context, username string) (*model.RegisteredPlayer, error) {
	playerIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}
	return s.GetRegisteredPlayer(ctx, model.PlayerID(playerIDStr))
}

// Profile operations

func (s *Storage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, profileKey(profile.PlayerID), data, 0).Err()
}

func (s *Storage) GetProfile(ctx context.Context, playerID model.PlayerID) (*model.Profile, error) {
	var profile model.Profile
	if err := s.getJSON(ctx, profileKey(playerID), &profile, model.ErrProfileNotFound); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Challenge operations

func (s *Storage) SaveChallenge(ctx context.Context, challenge *model.Challenge) error {
	data, err := json.Marshal(challenge)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, challengeKey(challenge.ID), data, s.cfg.ChallengeTTL)
	if challenge.Status == model.ChallengeStatusExpired {
		pipe.Del(ctx, codeIndexKey(challenge.Code))
	} else {
		pipe.Set(ctx, codeIndexKey(challenge.Code), string(challenge.ID), s.cfg.ChallengeTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetChallenge(ctx context.Context, id model.ChallengeID) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := s.getJSON(ctx, challengeKey(id), &challenge, model.ErrChallengeNotFound); err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *Storage) GetChallengeByCode(ctx context.Context, code model.ChallengeCode) (*model.Challenge, error) {
	idStr, err := s.client.Get(ctx, codeIndexKey(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrChallengeNotFound
		}
		return nil, err
	}
	return s.GetChallenge(ctx, model.ChallengeID(idStr))
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

// UpdateChallenge runs fn under WATCH so a concurrent write to the same
// challenge aborts and retries the transaction instead of losing an update.
func (s *Storage) UpdateChallenge(ctx context.Context, id model.ChallengeID, fn storage.ChallengeUpdateFn) (*model.Challenge, error) {
	const maxRetries = 5
	key := challengeKey(id)

	var updated *model.Challenge
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrChallengeNotFound
			}
			return err
		}

		var challenge model.Challenge
		if err := json.Unmarshal(data, &challenge); err != nil {
			return err
		}

		if err := fn(&challenge); err != nil {
			return err
		}

		out, err := json.Marshal(&challenge)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.cfg.ChallengeTTL)
			if challenge.Status == model.ChallengeStatusExpired {
				pipe.Del(ctx, codeIndexKey(challenge.Code))
			} else {
				pipe.Set(ctx, codeIndexKey(challenge.Code), string(challenge.ID), s.cfg.ChallengeTTL)
			}
			return nil
		})
		if err != nil {
			return err
		}
		updated = &challenge
		return nil
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Leaderboard operations

func (s *Storage) GetLeaderboardEntry(ctx context.Context, playerID model.PlayerID, difficulty model.Difficulty) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	if err := s.getJSON(ctx, leaderboardEntryKey(playerID, difficulty), &entry, model.ErrLeaderboardEntryNotFound); err != nil {
		return nil, err
	}
	return &entry, nil
}

// MergeLeaderboardEntry compares against the stored entry and writes under
// WATCH, so a racing lower score aborts instead of clobbering the entry JSON
// while ZADD GT keeps the old rank.
func (s *Storage) MergeLeaderboardEntry(ctx context.Context, entry *model.LeaderboardEntry) (bool, error) {
	key := leaderboardEntryKey(entry.PlayerID, entry.Difficulty)

	data, err := json.Marshal(entry)
	if err != nil {
		return false, err
	}

	var improved bool
	txf := func(tx *redis.Tx) error {
		improved = false

		existing, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			var stored model.LeaderboardEntry
			if err := json.Unmarshal(existing, &stored); err != nil {
				return err
			}
			if entry.Score <= stored.Score {
				return nil
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZAddGT(ctx, leaderboardRankKey(entry.Difficulty), redis.Z{
				Score:  float64(entry.Score),
				Member: string(entry.PlayerID),
			})
			return nil
		})
		if err != nil {
			return err
		}
		improved = true
		return nil
	}

	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		err = s.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return false, err
	}
	return improved, nil
}

func (s *Storage) TopLeaderboardEntries(ctx context.Context, difficulty model.Difficulty, limit int) ([]*model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 100
	}

	ids, err := s.client.ZRevRange(ctx, leaderboardRankKey(difficulty), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.LeaderboardEntry{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = leaderboardEntryKey(model.PlayerID(id), difficulty)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*model.LeaderboardEntry, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Entry may have been removed
		}
		var entry model.LeaderboardEntry
		if err := json.Unmarshal([]byte(val.(string)), &entry); err != nil {
			continue // Skip invalid data
		}
		entries = append(entries, &entry)
	}

	// ZREVRANGE breaks score ties by member, which is not the order the
	// model defines; re-sort the page so every backend agrees
	model.SortLeaderboard(entries)

	return entries, nil
}

// Daily challenge operations

func (s *Storage) GetDailyStats(ctx context.Context, playerID model.PlayerID) (*model.DailyStats, error) {
	var stats model.DailyStats
	if err := s.getJSON(ctx, dailyStatsKey(playerID), &stats, model.ErrDailyStatsNotFound); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Storage) GetDailyResult(ctx context.Context, playerID model.PlayerID, date string) (*model.DailyResult, error) {
	var result model.DailyResult
	if err := s.getJSON(ctx, dailyResultKey(playerID, date), &result, model.ErrDailyResultNotFound); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveDailyCompletion writes the stats record and the day's result in one
// transaction. The result key is WATCHed and checked inside it, so only one
// of two racing completions for the same day can land.
func (s *Storage) SaveDailyCompletion(ctx context.Context, stats *model.DailyStats, result *model.DailyResult) error {
	statsData, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	resultData, err := json.Marshal(result)
	if err != nil {
		return err
	}

	resultKey := dailyResultKey(result.PlayerID, result.Date)
	txf := func(tx *redis.Tx) error {
		_, err := tx.Get(ctx, resultKey).Result()
		if err == nil {
			return model.ErrDailyAlreadyCompleted
		}
		if !errors.Is(err, redis.Nil) {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, dailyStatsKey(stats.PlayerID), statsData, 0)
			pipe.Set(ctx, resultKey, resultData, 0)
			return nil
		})
		return err
	}

	const maxRetries = 5
	for i := 0; i < maxRetries; i++ {
		err = s.client.Watch(ctx, txf, resultKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	return err
}

// getJSON loads and unmarshals a single JSON value, mapping redis.Nil to
// the given not-found sentinel.
func (s *Storage) getJSON(ctx context.Context, key string, dest any, notFound error) error {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return notFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}
