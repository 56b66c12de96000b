package repository

import (
	"context"
	"encoding/json"
	"errors"

	"golang-market-screener/pkg/common"
	"golang-market-screener/pkg/logger"
	"golang-market-screener/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// WatchlistRepository persists the favorite ticker list.
type WatchlistRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, tickers []string) error
}

type watchlistRepository struct {
	redisClient *redis.Client
	log         *logger.Logger
}

// NewWatchlistRepository creates a Redis-backed watchlist repository.
func NewWatchlistRepository(redisClient *redis.Client, log *logger.Logger) WatchlistRepository {
	return &watchlistRepository{redisClient: redisClient, log: log}
}

// Load reads the persisted watchlist. A missing or unreadable record
// yields an empty list so the dashboard can still start.
func (r *watchlistRepository) Load(ctx context.Context) ([]string, error) {
	raw, err := r.redisClient.Get(ctx, common.RedisKeyWatchlist).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []string{}, nil
		}
		return nil, err
	}

	var tickers []string
	if err := json.Unmarshal([]byte(raw), &tickers); err != nil {
		r.log.Warn("Discarding unreadable watchlist record", logger.ErrorField(err))
		return []string{}, nil
	}
	return tickers, nil
}

// Save writes the full watchlist, replacing the previous record.
func (r *watchlistRepository) Save(ctx context.Context, tickers []string) error {
	raw, err := json.Marshal(tickers)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, common.RedisKeyWatchlist, raw, 0).Err()
}
