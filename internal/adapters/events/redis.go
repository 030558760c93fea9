package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/go-todolist-service/internal/domain"
	"github.com/jsamuelsen11/go-todolist-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-todolist-service/internal/platform/config"
)

// redisCounter is the part of redis.Cmdable the statistics need.
type redisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	HIncrBy(ctx context.Context, key, field string, incr int64) *redis.IntCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// NewRedisClient builds a client from cfg. Connections are made lazily.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// CompletionStats keeps running completion counts in Redis:
//
//	<prefix>items:completed           total completions
//	<prefix>items:completed:by_user   hash of user id -> completions
type CompletionStats struct {
	rdb    redisCounter
	prefix string
}

// NewCompletionStats returns a CompletionStats writing under prefix.
func NewCompletionStats(rdb redisCounter, prefix string) *CompletionStats {
	return &CompletionStats{rdb: rdb, prefix: prefix}
}

// Name implements ports.EventSubscriber and ports.HealthChecker.
func (s *CompletionStats) Name() string { return "redis" }

// Handle implements ports.EventSubscriber. Other events are ignored.
func (s *CompletionStats) Handle(ctx context.Context, event domain.Event) error {
	e, ok := event.(todo.ItemCompletedEvent)
	if !ok {
		return nil
	}

	if err := s.rdb.Incr(ctx, s.totalKey()).Err(); err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	if err := s.rdb.HIncrBy(ctx, s.byUserKey(), strconv.FormatInt(e.UserID, 10), 1).Err(); err != nil {
		return fmt.Errorf("redis hincrby: %w", err)
	}
	return nil
}

// Total returns the number of completions recorded.
func (s *CompletionStats) Total(ctx context.Context) (int64, error) {
	return count(s.rdb.Get(ctx, s.totalKey()))
}

// ForUser returns the number of completions recorded for userID.
func (s *CompletionStats) ForUser(ctx context.Context, userID int64) (int64, error) {
	return count(s.rdb.HGet(ctx, s.byUserKey(), strconv.FormatInt(userID, 10)))
}

// HealthCheck implements ports.HealthChecker.
func (s *CompletionStats) HealthCheck(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

func (s *CompletionStats) totalKey() string  { return s.prefix + "items:completed" }
func (s *CompletionStats) byUserKey() string { return s.prefix + "items:completed:by_user" }

// count reads an integer reply, treating a missing key as zero.
func count(cmd *redis.StringCmd) (int64, error) {
	n, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis: %w", err)
	}
	return n, nil
}
