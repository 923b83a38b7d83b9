package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedRegistry wraps a Registry with a Redis read-through cache for
// author lookups. A nil client disables caching entirely.
type CachedRegistry struct {
	inner  Registry
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedRegistry decorates inner with Redis caching. When client is nil
// every call passes straight through.
func NewCachedRegistry(inner Registry, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRegistry {
	return &CachedRegistry{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func authorsKey(postID int32) string {
	return fmt.Sprintf("catalog:authors:%d", postID)
}

// AuthorsOf returns the cached author set for the post, filling the cache
// on a miss. Cache failures degrade to the inner registry.
func (r *CachedRegistry) AuthorsOf(ctx context.Context, postID int32) (map[int64]struct{}, error) {
	if r.client == nil {
		return r.inner.AuthorsOf(ctx, postID)
	}

	key := authorsKey(postID)
	if raw, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var ids []int64
		if err := json.Unmarshal(raw, &ids); err == nil {
			authors := make(map[int64]struct{}, len(ids))
			for _, id := range ids {
				authors[id] = struct{}{}
			}
			return authors, nil
		}
	} else if err != redis.Nil {
		r.logger.Warn("author cache read failed", zap.Int32("post_id", postID), zap.Error(err))
	}

	authors, err := r.inner.AuthorsOf(ctx, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(authors))
	for id := range authors {
		ids = append(ids, id)
	}
	if raw, err := json.Marshal(ids); err == nil {
		if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
			r.logger.Warn("author cache write failed", zap.Int32("post_id", postID), zap.Error(err))
		}
	}
	return authors, nil
}

// PostsOf is not cached; post lists change on every upload.
func (r *CachedRegistry) PostsOf(ctx context.Context, userID int64) ([]int32, error) {
	return r.inner.PostsOf(ctx, userID)
}
