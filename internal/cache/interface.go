package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	// NavKeyPrefix namespaces the navigation menu with its per-category counts.
	NavKeyPrefix = "nav"
	BrandKeyPrefix = "brand"
)

var (
	// NavCategoriesKey is the single entry holding the navigation menu.
	NavCategoriesKey = Key(NavKeyPrefix, "categories")
	BrandListKey     = Key(BrandKeyPrefix, "all")
)
