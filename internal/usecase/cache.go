package usecase

import (
	"context"
	"time"
)

// Cache is a best-effort read-through cache; implementations must degrade
// to misses when the backing store is unavailable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
