// Package cache stores rendered artifacts keyed by their inputs.
//
// Rendering a frame through Graphviz is the only expensive step in the
// tool, so rendered outputs are cached on disk and reused whenever the
// same arrangement is rendered with the same options.
//
// # Backends
//
//   - [FileCache]: JSON entries with optional expiry under a directory
//   - [NullCache]: never stores anything, used for --no-cache
//
// # Keys
//
// A [Keyer] derives stable keys from frame hashes and render options:
//
//	k := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
//	key := k.ArtifactKey(cache.Hash(frameJSON), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts holds the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Lift     int    `json:"lift"`
	Drop     int    `json:"drop"`
	Detailed bool   `json:"detailed,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for a rendered artifact of a frame.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<format>:<hash>".
func (DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, frameHash, opts)
}
