package repository

import (
	"context"
	"time"
)

// CacheRepository stores encoded projections keyed by their inputs.
// A ttl of zero means the entry does not expire.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
