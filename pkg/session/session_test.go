package session

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/observability"
)

func mustParse(t *testing.T, layout string) grid.Sequence {
	t.Helper()
	s, err := grid.ParseSequence(layout)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSessionDragCommit(t *testing.T) {
	s := New(mustParse(t, "R0 C1 C2"))

	if err := s.Begin(0); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if !s.Active() {
		t.Fatal("Active() = false after Begin")
	}
	if _, err := uuid.Parse(s.ID()); err != nil {
		t.Errorf("ID %q is not a uuid: %v", s.ID(), err)
	}

	p, err := s.Update(0, 1)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Sequence.String() != "C1 C2 R0" || p.DropIndex != 2 || p.Skipped {
		t.Errorf("Update = %s drop %d skipped %v", p.Sequence, p.DropIndex, p.Skipped)
	}
	if p.Branch != grid.BranchDownCompact {
		t.Errorf("Branch = %s", p.Branch)
	}
	if s.Committed().String() != "R0 C1 C2" {
		t.Errorf("Committed changed during drag: %s", s.Committed())
	}

	got := s.Commit()
	if got.String() != "C1 C2 R0" {
		t.Errorf("Commit = %s", got)
	}
	if s.Active() {
		t.Error("Active() = true after Commit")
	}
}

func TestSessionResolvesAgainstCommittedSnapshot(t *testing.T) {
	s := New(mustParse(t, "C0 C1 C2 C3"))
	if err := s.Begin(0); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(0, 1); err != nil {
		t.Fatal(err)
	}
	// The dragged item now shows at index 1; keep going to the end.
	p, err := s.Update(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Sequence.String() != "C1 C2 C3 C0" || p.DropIndex != 3 {
		t.Errorf("Update = %s drop %d, want C1 C2 C3 C0 drop 3", p.Sequence, p.DropIndex)
	}
}

func TestSessionUpdateSkipsSameItem(t *testing.T) {
	s := New(mustParse(t, "R0 C1 C2"))
	if err := s.Begin(0); err != nil {
		t.Fatal(err)
	}
	first, err := s.Update(0, 1)
	if err != nil {
		t.Fatal(err)
	}

	p, err := s.Update(2, 2)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !p.Skipped {
		t.Error("Skipped = false for same item")
	}
	if !p.Sequence.Equal(first.Sequence) || p.DropIndex != first.DropIndex {
		t.Errorf("skipped update changed proposal: %s drop %d", p.Sequence, p.DropIndex)
	}
	if s.Proposed().Skipped {
		t.Error("stored proposal should not be marked skipped")
	}
}

func TestSessionCancel(t *testing.T) {
	s := New(mustParse(t, "C0 C1"))
	if err := s.Begin(1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(1, 0); err != nil {
		t.Fatal(err)
	}
	s.Cancel()

	if s.Active() {
		t.Error("Active() = true after Cancel")
	}
	if s.Proposed().Sequence.String() != "C0 C1" {
		t.Errorf("Proposed after Cancel = %s", s.Proposed().Sequence)
	}
	if s.Commit().String() != "C0 C1" {
		t.Error("Commit after Cancel changed the arrangement")
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(s *Session) error
		want errors.Code
	}{
		{
			name: "update without begin",
			run:  func(s *Session) error { _, err := s.Update(0, 1); return err },
			want: errors.ErrCodeInvalidState,
		},
		{
			name: "begin twice",
			run: func(s *Session) error {
				if err := s.Begin(0); err != nil {
					return err
				}
				return s.Begin(1)
			},
			want: errors.ErrCodeInvalidState,
		},
		{
			name: "begin out of range",
			run:  func(s *Session) error { return s.Begin(5) },
			want: errors.ErrCodeIndexOutOfRange,
		},
		{
			name: "update out of range",
			run: func(s *Session) error {
				if err := s.Begin(0); err != nil {
					return err
				}
				_, err := s.Update(0, 3)
				return err
			},
			want: errors.ErrCodeIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(mustParse(t, "R0 C1 C2"))
			if err := tt.run(s); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}

	empty := New(grid.Sequence{})
	if err := empty.Begin(0); !errors.Is(err, errors.ErrCodeEmptySequence) {
		t.Errorf("Begin on empty = %v", err)
	}
}

type recordingHooks struct {
	observability.NoopDragHooks
	begins, resolves, skipped, commits, cancels int
	lastBranch                                  string
}

func (r *recordingHooks) OnBegin(context.Context, string, int) { r.begins++ }

func (r *recordingHooks) OnResolve(_ context.Context, _ string, ev observability.DragEvent, _ error) {
	r.resolves++
	if ev.Skipped {
		r.skipped++
	}
	r.lastBranch = ev.Branch
}

func (r *recordingHooks) OnCommit(context.Context, string, int) { r.commits++ }
func (r *recordingHooks) OnCancel(context.Context, string, int) { r.cancels++ }

func TestSessionEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetDragHooks(hooks)
	defer observability.Reset()

	s := New(mustParse(t, "C0 C1 R2 C3 C4"), WithContext(context.Background()))
	if err := s.Begin(2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(2, 1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Update(0, 0); err != nil {
		t.Fatal(err)
	}
	s.Commit()

	if err := s.Begin(0); err != nil {
		t.Fatal(err)
	}
	s.Cancel()

	if hooks.begins != 2 || hooks.resolves != 2 || hooks.skipped != 1 || hooks.commits != 1 || hooks.cancels != 1 {
		t.Errorf("hooks = %+v", hooks)
	}
	if hooks.lastBranch != "" {
		t.Errorf("skipped event carried branch %q", hooks.lastBranch)
	}
}
