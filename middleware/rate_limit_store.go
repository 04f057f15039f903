package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitStore counts hits per key within a fixed window
type RateLimitStore interface {
	// Hit records one request and returns the count within the current window
	Hit(ctx context.Context, key string, window time.Duration) (int, error)
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryStore keeps counters in process. Expired entries are pruned at most
// once per minute while hits keep arriving.
type MemoryStore struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	nextPrune time.Time
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*rateLimitEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Hit(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.After(s.nextPrune) {
		for k, entry := range s.entries {
			if now.After(entry.expiresAt) {
				delete(s.entries, k)
			}
		}
		s.nextPrune = now.Add(time.Minute)
	}

	entry, exists := s.entries[key]
	if !exists || now.After(entry.expiresAt) {
		s.entries[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(window)}
		return 1, nil
	}
	entry.count++
	return entry.count, nil
}

// RedisStore shares counters between instances through Redis
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (int, error) {
	redisKey := fmt.Sprintf("%s:%s", s.prefix, key)

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	if _, err := s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.TTL(ctx, redisKey)
		return nil
	}); err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}

	// A counter without expiry would block the key for good, so any hit that
	// finds one (first hit, or an earlier failed EXPIRE) sets the window
	if ttl.Val() < 0 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return int(incr.Val()), nil
}
