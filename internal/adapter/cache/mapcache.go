package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vndialect/tudien-backend/internal/domain"
)

const (
	allWordsKey   = "tudien:map:all-words"
	generationKey = "tudien:map:generation"
)

// setIfGeneration stores KEYS[1] only while KEYS[2] still holds ARGV[1].
// A missing generation counts as "0". ARGV[3] is the TTL in milliseconds,
// 0 meaning no expiry.
var setIfGeneration = redis.NewScript(`
local cur = redis.call('GET', KEYS[2]) or '0'
if cur ~= ARGV[1] then
	return 0
end
if ARGV[3] == '0' then
	redis.call('SET', KEYS[1], ARGV[2])
else
	redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
end
return 1
`)

// MapCache stores the aggregated all-words usage map.
//
// Every Invalidate bumps a generation counter. A reader takes the generation
// before it loads links and passes it to SetAllWords, which refuses to store
// the map when an invalidation happened in between.
type MapCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewMapCache creates a map cache with the given entry lifetime.
func NewMapCache(client redis.Cmdable, ttl time.Duration) *MapCache {
	return &MapCache{client: client, ttl: ttl}
}

// GetAllWords returns the cached map. ok is false on a miss.
func (c *MapCache) GetAllWords(ctx context.Context) ([]domain.MapEntry, bool, error) {
	raw, err := c.client.Get(ctx, allWordsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", allWordsKey, err)
	}

	var entries []domain.MapEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", allWordsKey, err)
	}
	return entries, true, nil
}

// Generation returns the current invalidation counter.
func (c *MapCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", generationKey, err)
	}
	return gen, nil
}

// SetAllWords stores the map until the TTL expires or Invalidate is called.
// It reports false without storing anything when the generation moved past
// gen, i.e. the entries were computed from data that has since changed.
func (c *MapCache) SetAllWords(ctx context.Context, gen int64, entries []domain.MapEntry) (bool, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", allWordsKey, err)
	}

	stored, err := setIfGeneration.Run(ctx, c.client,
		[]string{allWordsKey, generationKey},
		strconv.FormatInt(gen, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("set %s: %w", allWordsKey, err)
	}
	return stored == 1, nil
}

// Invalidate drops the cached map and bumps the generation.
func (c *MapCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, allWordsKey)
		pipe.Incr(ctx, generationKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate %s: %w", allWordsKey, err)
	}
	return nil
}
