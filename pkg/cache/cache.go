// Package cache stores rendered artifacts keyed by a hash of their inputs.
//
// # Overview
//
// The CLI re-renders the same graph with the same settings often (watch
// scripts, make targets). A [Cache] maps an artifact key to the rendered
// bytes so those renders are served from disk.
//
//	c, _ := cache.NewFileCache(dir)
//	key := cache.NewDefaultKeyer().ArtifactKey(cache.Hash(graphJSON), opts)
//	if data, ok, _ := c.Get(ctx, key); ok {
//	    return data
//	}
//
// [NullCache] disables caching without changing call sites.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the data stored under key. ok is false on a miss.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour
