package readstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cleanmarket/internal/usecase/queries"
	"cleanmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	promocodeCacheTTL    = 15 * time.Minute
	promocodeCachePrefix = "promocode:code:"
)

// CachedPromocodeReadStore is a read-through cache in front of the postgres
// store. Redis failures never fail a request: the cache degrades to a plain
// lookup. Usage counts are volatile and always hit the database.
type CachedPromocodeReadStore struct {
	inner queries.PromocodeReadStore
	cache *redis.Client
}

func NewCachedPromocodeReadStore(inner queries.PromocodeReadStore, cache *redis.Client) *CachedPromocodeReadStore {
	return &CachedPromocodeReadStore{
		inner: inner,
		cache: cache,
	}
}

func (r *CachedPromocodeReadStore) FindByCode(ctx context.Context, code string) (*shared.PromocodeSnapshot, error) {
	key := promocodeCachePrefix + code

	cached, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var snap shared.PromocodeSnapshot
		if err := json.Unmarshal(cached, &snap); err == nil {
			return &snap, nil
		}
		// Corrupt entry: drop it and fall through to the database.
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		slog.Warn("promocode cache read failed", "code", code, "error", err)
	}

	snap, err := r.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(snap); err == nil {
		if err := r.cache.Set(ctx, key, payload, promocodeCacheTTL).Err(); err != nil {
			slog.Warn("promocode cache write failed", "code", code, "error", err)
		}
	}

	return snap, nil
}

func (r *CachedPromocodeReadStore) CountBookingsUsing(ctx context.Context, promocodeID uuid.UUID) (int64, error) {
	return r.inner.CountBookingsUsing(ctx, promocodeID)
}
