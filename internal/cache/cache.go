package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// CVDataKey caches the aggregated CV view. The aggregate carries both
// languages, so one entry serves es and en alike. Admin mutations that
// touch any CV input invalidate it.
const CVDataKey = "cv:data"

func CVKeys() []string { return []string{CVDataKey} }
