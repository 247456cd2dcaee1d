// Package cache keeps the by-category dish lists in redis so the menu
// selectors of the admin UI do not hit the database on every open.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"menuadmin/internal/dto"

	"github.com/redis/go-redis/v9"
)

// ErrStale is returned by SetByCategory when an eviction ran after the
// caller read the generation, so the list it loaded may be outdated.
var ErrStale = errors.New("cache: generation changed")

// DishCache is a read-through store for the dish list of a category.
//
// Every eviction bumps a generation counter. Readers take the generation
// before loading from the database and pass it to SetByCategory, which
// refuses the write if an eviction happened in between.
type DishCache interface {
	// GetByCategory reports ok=false on a miss.
	GetByCategory(ctx context.Context, categoryID int64) (dishes []dto.DishVO, ok bool, err error)
	Generation(ctx context.Context) (int64, error)
	SetByCategory(ctx context.Context, categoryID, generation int64, dishes []dto.DishVO) error
	Evict(ctx context.Context, categoryIDs ...int64) error
	EvictAll(ctx context.Context) error
}

const scanCount = 100

type RedisDishCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ DishCache = (*RedisDishCache)(nil)

func NewRedisDishCache(client *redis.Client, prefix string, ttl time.Duration) *RedisDishCache {
	return &RedisDishCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisDishCache) key(categoryID int64) string {
	var b strings.Builder
	b.Grow(len(c.prefix) + 24)
	b.WriteString(c.prefix)
	b.WriteString(":dish_")
	b.WriteString(strconv.FormatInt(categoryID, 10))
	return b.String()
}

// genKey sits outside the dish_* pattern so EvictAll never deletes it.
func (c *RedisDishCache) genKey() string {
	return c.prefix + ":dishgen"
}

func (c *RedisDishCache) GetByCategory(ctx context.Context, categoryID int64) ([]dto.DishVO, bool, error) {
	raw, err := c.client.Get(ctx, c.key(categoryID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var dishes []dto.DishVO
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return nil, false, err
	}
	return dishes, true, nil
}

// Generation returns the eviction counter; a missing key reads as 0.
func (c *RedisDishCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// SetByCategory stores the list only while the generation still equals the
// one the caller read. WATCH makes the check and the SET a single step.
func (c *RedisDishCache) SetByCategory(ctx context.Context, categoryID, generation int64, dishes []dto.DishVO) error {
	if dishes == nil {
		dishes = []dto.DishVO{}
	}
	data, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, c.genKey()).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != generation {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, c.key(categoryID), data, c.ttl)
			return nil
		})
		return err
	}, c.genKey())
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	return err
}

func (c *RedisDishCache) Evict(ctx context.Context, categoryIDs ...int64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		keys = append(keys, c.key(id))
	}
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, c.genKey())
		p.Del(ctx, keys...)
		return nil
	})
	return err
}

// EvictAll drops every dish list under the prefix using SCAN, never KEYS.
// The generation is bumped first so no in-flight read can refill a list
// between the scan and the delete.
func (c *RedisDishCache) EvictAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.genKey()).Err(); err != nil {
		return err
	}
	var cursor uint64
	pattern := c.prefix + ":dish_*"
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Noop is used when no redis is configured: every read misses.
type Noop struct{}

var _ DishCache = Noop{}

func (Noop) GetByCategory(context.Context, int64) ([]dto.DishVO, bool, error) { return nil, false, nil }
func (Noop) Generation(context.Context) (int64, error)                        { return 0, nil }
func (Noop) SetByCategory(context.Context, int64, int64, []dto.DishVO) error  { return nil }
func (Noop) Evict(context.Context, ...int64) error                            { return nil }
func (Noop) EvictAll(context.Context) error                                   { return nil }
