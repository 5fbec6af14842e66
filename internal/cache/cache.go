// Package cache memoizes scoring results in Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/candidate-matcher/internal/types"
)

// ErrMiss is returned by Get when no result is cached for the pair.
var ErrMiss = errors.New("cache miss")

// KeyPrefix namespaces every key written by ResultCache.
const KeyPrefix = "match:"

// ResultCache stores ScoringResults keyed by the content of the scored records.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at addr. A zero ttl keeps entries until evicted.
func New(ctx context.Context, addr string, ttl time.Duration) (*ResultCache, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return NewWithClient(client, ttl), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client, ttl time.Duration) *ResultCache {
	return &ResultCache{client: client, ttl: ttl}
}

// Key derives the cache key for a candidate/requirement pair. Records that
// marshal to the same JSON share a key.
func Key(candidate, requirement any) (string, error) {
	c, err := json.Marshal(candidate)
	if err != nil {
		return "", fmt.Errorf("failed to marshal candidate: %w", err)
	}
	r, err := json.Marshal(requirement)
	if err != nil {
		return "", fmt.Errorf("failed to marshal requirement: %w", err)
	}

	h := sha256.New()
	h.Write(c)
	h.Write([]byte{0})
	h.Write(r)
	return KeyPrefix + hex.EncodeToString(h.Sum(nil)), nil
}

// Get returns the cached result for the pair, or ErrMiss.
func (c *ResultCache) Get(ctx context.Context, candidate, requirement any) (types.ScoringResult, error) {
	key, err := Key(candidate, requirement)
	if err != nil {
		return types.ScoringResult{}, err
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return types.ScoringResult{}, ErrMiss
	}
	if err != nil {
		return types.ScoringResult{}, fmt.Errorf("failed to read cached result %s: %w", key, err)
	}

	var result types.ScoringResult
	if err := json.Unmarshal(data, &result); err != nil {
		return types.ScoringResult{}, fmt.Errorf("failed to unmarshal cached result %s: %w", key, err)
	}
	return result, nil
}

// Set stores result for the pair with the cache TTL.
func (c *ResultCache) Set(ctx context.Context, candidate, requirement any, result types.ScoringResult) error {
	key, err := Key(candidate, requirement)
	if err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal scoring result: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache result %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis client.
func (c *ResultCache) Close() error {
	return c.client.Close()
}
