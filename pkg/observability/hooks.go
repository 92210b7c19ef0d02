// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about drag gestures and render cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so the grid core stays
// free of logging and metrics imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnResolve(ctx, id, res, skipped)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragEvent describes one resolved drag update.
type DragEvent struct {
	Dragging  int
	Current   int
	Proposed  int
	DropIndex int
	Branch    string
	Skipped   bool
	Duration  time.Duration
}

// DragHooks receives events from drag sessions.
type DragHooks interface {
	// OnBegin records the start of a gesture on the item at dragging.
	OnBegin(ctx context.Context, sessionID string, dragging int)

	// OnResolve records a drag update, including short-circuited ones.
	OnResolve(ctx context.Context, sessionID string, ev DragEvent, err error)

	// OnCommit records a drop that adopted the proposed arrangement.
	OnCommit(ctx context.Context, sessionID string, updates int)

	// OnCancel records a gesture abandoned without a drop.
	OnCancel(ctx context.Context, sessionID string, updates int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnBegin(context.Context, string, int)                {}
func (NoopDragHooks) OnResolve(context.Context, string, DragEvent, error) {}
func (NoopDragHooks) OnCommit(context.Context, string, int)               {}
func (NoopDragHooks) OnCancel(context.Context, string, int)               {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks  DragHooks  = NoopDragHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any gesture starts.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	cacheHooks = NoopCacheHooks{}
}
