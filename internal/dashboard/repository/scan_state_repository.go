package repository

import (
	"context"
	"encoding/json"
	"errors"

	"golang-market-screener/internal/entity"
	"golang-market-screener/pkg/common"
	"golang-market-screener/pkg/logger"
	"golang-market-screener/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// ScanStateRepository persists the most recently submitted scan
// configuration so scheduled rescans survive a restart.
type ScanStateRepository interface {
	SaveLastConfig(ctx context.Context, cfg entity.ScanConfig) error
	LoadLastConfig(ctx context.Context) (*entity.ScanConfig, error)
}

type scanStateRepository struct {
	redisClient *redis.Client
	log         *logger.Logger
}

// NewScanStateRepository creates a Redis-backed scan state repository.
func NewScanStateRepository(redisClient *redis.Client, log *logger.Logger) ScanStateRepository {
	return &scanStateRepository{redisClient: redisClient, log: log}
}

// SaveLastConfig replaces the stored configuration.
func (r *scanStateRepository) SaveLastConfig(ctx context.Context, cfg entity.ScanConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.redisClient.Set(ctx, common.RedisKeyLastScanConfig, raw, 0).Err()
}

// LoadLastConfig returns the stored configuration, or nil when none is
// stored or the record is unreadable.
func (r *scanStateRepository) LoadLastConfig(ctx context.Context) (*entity.ScanConfig, error) {
	raw, err := r.redisClient.Get(ctx, common.RedisKeyLastScanConfig).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cfg entity.ScanConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		r.log.Warn("Discarding unreadable scan config record", logger.ErrorField(err))
		return nil, nil
	}
	return &cfg, nil
}
