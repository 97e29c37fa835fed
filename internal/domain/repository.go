package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching extracted drawing text
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TextExtractor defines the interface for pulling the text layer out of a
// drawing file
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, pages PageRange) (string, error)
}
