package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const listKeyPrefix = "menu:list:"

var ErrCacheMiss = errors.New("cache miss")

// Cache stores serialized menu listings.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisCache{rdb: rdb}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	return val, err
}

func (c *RedisCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, val, ttl).Err()
}

func (c *RedisCache) DeletePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// CachedRepo serves List from the cache and drops every cached listing on
// writes. Cache errors are logged and the database answers instead.
type CachedRepo struct {
	Repository
	cache Cache
	ttl   time.Duration
}

func NewCachedRepo(repo Repository, cache Cache, ttl time.Duration) *CachedRepo {
	return &CachedRepo{Repository: repo, cache: cache, ttl: ttl}
}

func listKey(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "all"
	}
	return listKeyPrefix + category
}

func (r *CachedRepo) List(ctx context.Context, category string) ([]Item, error) {
	key := listKey(category)
	if raw, err := r.cache.Get(ctx, key); err == nil {
		var items []Item
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		log.Printf("[menu] drop corrupt cache entry %s", key)
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Printf("[menu] cache get %s: %v", key, err)
	}

	items, err := r.Repository.List(ctx, category)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(items); err == nil {
		if err := r.cache.Set(ctx, key, raw, r.ttl); err != nil {
			log.Printf("[menu] cache set %s: %v", key, err)
		}
	}
	return items, nil
}

func (r *CachedRepo) invalidate(ctx context.Context) {
	if err := r.cache.DeletePrefix(ctx, listKeyPrefix); err != nil {
		log.Printf("[menu] cache invalidate: %v", err)
	}
}

func (r *CachedRepo) Create(ctx context.Context, it *Item) error {
	if err := r.Repository.Create(ctx, it); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedRepo) Update(ctx context.Context, it *Item) (bool, error) {
	ok, err := r.Repository.Update(ctx, it)
	if err == nil && ok {
		r.invalidate(ctx)
	}
	return ok, err
}

func (r *CachedRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := r.Repository.Delete(ctx, id)
	if err == nil && ok {
		r.invalidate(ctx)
	}
	return ok, err
}
