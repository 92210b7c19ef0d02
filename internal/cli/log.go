// Package cli implements the gridctl command-line interface.
//
// This package provides commands for classifying grid arrangements,
// resolving single drag updates, running scenario suites, rendering
// layouts and playing with the grid in the terminal. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - classify: Show the row role of every item in an arrangement
//   - resolve: Apply one drag update and print the proposed arrangement
//   - scenario: Run, list and convert scenario suites
//   - render: Generate SVG, DOT or JSON output for an arrangement
//   - play: Drag items around an interactive terminal grid
//   - config, cache: Manage settings and the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Drag session
// events are forwarded to the logger through an observability hook.
//
// # Example
//
//	import "github.com/briancoyner/interactive-grid/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/briancoyner/interactive-grid/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered svg (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Drag Hook Logging
// =============================================================================

// logDragHooks writes drag session events to a logger at debug level. It
// holds the CLI logger itself, not a derived one, so redirecting the CLI
// logger also redirects drag events.
type logDragHooks struct {
	logger *log.Logger
}

func newLogDragHooks(l *log.Logger) observability.DragHooks {
	return &logDragHooks{logger: l}
}

func (h *logDragHooks) OnBegin(_ context.Context, id string, dragging int) {
	h.logger.Debug("drag begin", "id", shortID(id), "dragging", dragging)
}

func (h *logDragHooks) OnResolve(_ context.Context, id string, ev observability.DragEvent, err error) {
	if err != nil {
		h.logger.Warn("drag resolve failed", "id", shortID(id), "current", ev.Current, "proposed", ev.Proposed, "error", err)
		return
	}
	if ev.Skipped {
		h.logger.Debug("drag skip", "id", shortID(id), "current", ev.Current, "proposed", ev.Proposed)
		return
	}
	h.logger.Debug("drag resolve",
		"id", shortID(id),
		"current", ev.Current,
		"proposed", ev.Proposed,
		"drop", ev.DropIndex,
		"branch", ev.Branch,
		"took", ev.Duration,
	)
}

func (h *logDragHooks) OnCommit(_ context.Context, id string, updates int) {
	h.logger.Debug("drag commit", "id", shortID(id), "updates", updates)
}

func (h *logDragHooks) OnCancel(_ context.Context, id string, updates int) {
	h.logger.Debug("drag cancel", "id", shortID(id), "updates", updates)
}

// shortID trims a session UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
