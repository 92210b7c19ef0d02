package render

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/briancoyner/interactive-grid/pkg/cache"
	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/layout"
	"github.com/briancoyner/interactive-grid/pkg/observability"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// Runner renders frames through an artifact cache.
//
// The Runner holds no per-render state, so one Runner can serve several
// goroutines as long as its Cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	TTL    time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: DefaultTTL}
}

// Render produces the frame in the requested format.
func (r *Runner) Render(ctx context.Context, f layout.Frame, format Format, opts Options) ([]byte, error) {
	data, _, err := r.RenderWithCacheInfo(ctx, f, format, opts)
	return data, err
}

// RenderWithCacheInfo is Render but also reports whether the artifact came
// from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, f layout.Frame, format Format, opts Options) ([]byte, bool, error) {
	frameHash, err := cache.HashJSON(NewDocument(f, DefaultOptions()))
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "hash frame")
	}
	key := r.Keyer.ArtifactKey(frameHash, cache.ArtifactKeyOpts{
		Format:   string(format),
		Lift:     opts.Lift,
		Drop:     opts.Drop,
		Detailed: opts.Detailed,
	})

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, string(format))
		r.Logger.Debug("artifact cache hit", "format", format, "bytes", len(data))
		return data, true, nil
	} else if err != nil {
		r.Logger.Warn("artifact cache read failed", "err", err)
	}
	observability.Cache().OnCacheMiss(ctx, string(format))

	start := time.Now()
	data, err := r.render(ctx, f, format, opts)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("rendered artifact", "format", format, "bytes", len(data), "duration", time.Since(start))

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("artifact cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, string(format), len(data))
	}
	return data, false, nil
}

func (r *Runner) render(ctx context.Context, f layout.Frame, format Format, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return RenderJSON(f, opts)
	case FormatDOT:
		return []byte(ToDOT(f, opts)), nil
	case FormatSVG:
		return RenderSVG(ctx, ToDOT(f, opts))
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", format)
}
