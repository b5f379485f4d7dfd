// Package cache holds the redis-backed conveniences: a short-lived cache for
// the stats endpoint and the lock that keeps two migrations from overlapping.
// A nil Store degrades to "no cache, lock always granted"; the database-level
// unique indexes still hold the line in that case.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	statsTTL       = 30 * time.Second
	migrateLockTTL = 2 * time.Minute
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	if rdb == nil {
		return nil
	}
	return &Store{rdb: rdb}
}

func statsKey() string       { return "inventory:stats" }
func migrateLockKey() string { return "inventory:migrate:lock" }

func (s *Store) GetStats(ctx context.Context) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	b, err := s.rdb.Get(ctx, statsKey()).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (s *Store) SetStats(ctx context.Context, payload []byte) {
	if s == nil {
		return
	}
	_ = s.rdb.Set(ctx, statsKey(), payload, statsTTL).Err()
}

// AcquireMigrateLock grants the migration lock via SetNX. The TTL bounds how
// long a crashed holder can block the next run.
func (s *Store) AcquireMigrateLock(ctx context.Context) (bool, error) {
	if s == nil {
		return true, nil
	}
	ok, err := s.rdb.SetNX(ctx, migrateLockKey(), "1", migrateLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("acquire migrate lock: %w", err)
	}
	return ok, nil
}

func (s *Store) ReleaseMigrateLock(ctx context.Context) {
	if s == nil {
		return
	}
	_ = s.rdb.Del(ctx, migrateLockKey()).Err()
}
