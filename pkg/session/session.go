// Package session tracks one drag gesture over a grid.
//
// A Session holds the committed arrangement and the proposal for the
// gesture in flight. The committed arrangement only changes on Commit, so
// every Update resolves against the same snapshot no matter how many
// intermediate proposals were shown.
//
// # Usage
//
//	s := session.New(seq, session.WithLogger(logger))
//	if err := s.Begin(dragging); err != nil {
//	    return err
//	}
//	p, err := s.Update(current, proposed)
//	if err != nil {
//	    return err
//	}
//	render(p.Sequence, p.DropIndex)
//	seq = s.Commit()
//
// A Session is not safe for concurrent use. Gestures are sequential by
// nature; wrap it in a mutex if several goroutines feed it events.
package session

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/observability"
)

// Proposal is the arrangement shown while a drag is in flight.
type Proposal struct {
	Sequence  grid.Sequence
	DropIndex int
	Branch    grid.Branch
	// Skipped is set when the update targeted the item already under the
	// pointer; the previous proposal is returned unchanged.
	Skipped bool
}

// Session is one interactive grid and its in-flight drag, if any.
type Session struct {
	committed grid.Sequence
	proposal  Proposal

	id       string
	dragging int
	active   bool
	updates  int

	ctx    context.Context
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithContext sets the context passed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

// WithLogger sets the logger used for debug tracing of updates.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides time.Now for measuring resolve durations.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns an idle session over the committed arrangement.
func New(committed grid.Sequence, opts ...Option) *Session {
	s := &Session{
		committed: committed,
		proposal:  Proposal{Sequence: committed},
		ctx:       context.Background(),
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin starts a gesture on the item at index dragging of the committed
// arrangement. It fails if a gesture is already active.
func (s *Session) Begin(dragging int) error {
	if s.active {
		return errors.New(errors.ErrCodeInvalidState, "drag %s already in progress", s.id)
	}
	if s.committed.IsEmpty() {
		return errors.New(errors.ErrCodeEmptySequence, "cannot drag in an empty grid")
	}
	if err := errors.ValidateIndex("dragging", dragging, s.committed.Len()); err != nil {
		return err
	}

	s.id = uuid.NewString()
	s.dragging = dragging
	s.active = true
	s.updates = 0
	s.proposal = Proposal{Sequence: s.committed, DropIndex: dragging}

	s.logger.Debug("drag begin", "id", s.id, "dragging", dragging, "item", s.committed.At(dragging))
	observability.Drag().OnBegin(s.ctx, s.id, dragging)
	return nil
}

// Update resolves the dragged item moving from its on-screen index current
// toward proposed. Both indices refer to the arrangement currently shown,
// which is the previous proposal.
//
// When current and proposed name the same item the previous proposal is
// returned with Skipped set and the resolver is not consulted.
func (s *Session) Update(current, proposed int) (Proposal, error) {
	if !s.active {
		return Proposal{}, errors.New(errors.ErrCodeInvalidState, "no drag in progress")
	}
	shown := s.proposal.Sequence
	if err := errors.ValidateIndex("current", current, shown.Len()); err != nil {
		return Proposal{}, err
	}
	if err := errors.ValidateIndex("proposed drop", proposed, shown.Len()); err != nil {
		return Proposal{}, err
	}

	if shown.At(current) == shown.At(proposed) {
		p := s.proposal
		p.Skipped = true
		observability.Drag().OnResolve(s.ctx, s.id, observability.DragEvent{
			Dragging:  s.dragging,
			Current:   current,
			Proposed:  proposed,
			DropIndex: p.DropIndex,
			Skipped:   true,
		}, nil)
		return p, nil
	}

	start := s.now()
	res, err := grid.Explain(s.committed, s.dragging, current, proposed)
	ev := observability.DragEvent{
		Dragging: s.dragging,
		Current:  current,
		Proposed: proposed,
		Duration: s.now().Sub(start),
	}
	if err != nil {
		observability.Drag().OnResolve(s.ctx, s.id, ev, err)
		return Proposal{}, err
	}
	ev.DropIndex = res.DropIndex
	ev.Branch = string(res.Branch)
	observability.Drag().OnResolve(s.ctx, s.id, ev, nil)

	s.updates++
	s.proposal = Proposal{Sequence: res.Sequence, DropIndex: res.DropIndex, Branch: res.Branch}
	s.logger.Debug("drag update", "id", s.id, "current", current, "proposed", proposed, "resolution", res)
	return s.proposal, nil
}

// Commit ends the gesture and adopts the last proposal as the committed
// arrangement, which it returns. Without an active gesture it returns the
// committed arrangement unchanged.
func (s *Session) Commit() grid.Sequence {
	if !s.active {
		return s.committed
	}
	s.committed = s.proposal.Sequence
	s.active = false
	s.logger.Debug("drag commit", "id", s.id, "updates", s.updates, "sequence", s.committed)
	observability.Drag().OnCommit(s.ctx, s.id, s.updates)
	return s.committed
}

// Cancel ends the gesture and discards the proposal.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	s.active = false
	s.proposal = Proposal{Sequence: s.committed}
	s.logger.Debug("drag cancel", "id", s.id, "updates", s.updates)
	observability.Drag().OnCancel(s.ctx, s.id, s.updates)
}

// Proposed returns the arrangement currently shown.
func (s *Session) Proposed() Proposal { return s.proposal }

// Committed returns the arrangement as of the last commit.
func (s *Session) Committed() grid.Sequence { return s.committed }

// Active reports whether a gesture is in flight.
func (s *Session) Active() bool { return s.active }

// Dragging returns the committed index of the dragged item.
func (s *Session) Dragging() int { return s.dragging }

// ID returns the identifier of the current or most recent gesture.
func (s *Session) ID() string { return s.id }
