package grid

import (
	"fmt"

	"github.com/briancoyner/interactive-grid/pkg/errors"
)

// Direction is the vertical direction of a drag relative to the item's
// current on-screen position.
type Direction int

const (
	// Up means the proposed drop index is at or before the current index.
	Up Direction = iota
	// Down means the proposed drop index is after the current index.
	Down
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// DirectionOf returns Down when current < proposed and Up otherwise.
func DirectionOf(current, proposed int) Direction {
	if current < proposed {
		return Down
	}
	return Up
}

// Branch names the resolver rule that produced a Resolution.
type Branch string

// Resolver branches.
const (
	BranchCompactSource    Branch = "compact-source"
	BranchRegularOnRegular Branch = "regular-on-regular"
	BranchUpRegular        Branch = "up-regular"
	BranchUpLeading        Branch = "up-leading-compact"
	BranchUpTrailing       Branch = "up-trailing-compact"
	BranchUpOrphan         Branch = "up-orphan-compact"
	BranchDownCompact      Branch = "down-compact-neighbor"
	BranchDownPastRow      Branch = "down-past-row"
)

// Resolution is the full outcome of resolving one drag update.
type Resolution struct {
	// Sequence is the proposed arrangement for the in-flight drag.
	Sequence Sequence
	// DropIndex is where the placeholder for the dragged item should render.
	DropIndex int
	// Direction is only meaningful for the regular-over-compact branches.
	Direction Direction
	// Branch identifies the rule that fired.
	Branch Branch
}

// Resolve computes the reordered sequence and adjusted drop index for
// dragging the item that started at dragging, currently shown at current,
// toward proposed.
//
// It returns EMPTY_SEQUENCE for an empty sequence and INDEX_OUT_OF_RANGE if
// any index lies outside [0, s.Len()). Callers must not call Resolve when the
// items at current and proposed are the same item.
func Resolve(s Sequence, dragging, current, proposed int) (Sequence, int, error) {
	r, err := Explain(s, dragging, current, proposed)
	if err != nil {
		return Sequence{}, 0, err
	}
	return r.Sequence, r.DropIndex, nil
}

// Explain is Resolve but also reports the direction and branch taken.
func Explain(s Sequence, dragging, current, proposed int) (Resolution, error) {
	if err := validate(s, dragging, current, proposed); err != nil {
		return Resolution{}, err
	}

	source, target := s.items[dragging], s.items[proposed]
	dir := DirectionOf(current, proposed)

	switch {
	case source.Density == Compact:
		return relocate(s, dragging, proposed, dir, BranchCompactSource)
	case target.Density == Regular:
		return relocate(s, dragging, proposed, dir, BranchRegularOnRegular)
	case dir == Up:
		return resolveRegularUp(s, dragging, proposed)
	default:
		return resolveRegularDown(s, dragging, proposed)
	}
}

// resolveRegularUp handles a regular item moving up onto a compact item.
// The compact row keeps its pairing: the regular item lands before the
// whole pair, or swaps with a lone orphan.
func resolveRegularUp(s Sequence, dragging, proposed int) (Resolution, error) {
	switch role := RoleAt(s, proposed); role {
	case RegularRow:
		return relocate(s, dragging, proposed, Up, BranchUpRegular)
	case LeadingCompact:
		return relocate(s, dragging, proposed, Up, BranchUpLeading)
	case TrailingCompact:
		return relocate(s, dragging, proposed-1, Up, BranchUpTrailing)
	case OrphanCompact:
		return pivot(s, dragging, proposed, Up, BranchUpOrphan)
	default:
		return Resolution{}, errors.New(errors.ErrCodeInternal, "unhandled row role %v", role)
	}
}

// resolveRegularDown handles a regular item moving down onto a compact item.
// The regular item must end up after the full row it crosses.
func resolveRegularDown(s Sequence, dragging, proposed int) (Resolution, error) {
	neighbor := min(s.Len()-1, proposed+1)
	if s.items[neighbor].Density == Compact {
		return pivot(s, dragging, neighbor, Down, BranchDownCompact)
	}

	items, err := MoveToOffset(s.items, dragging, proposed+1)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{
		Sequence:  withItems(items),
		DropIndex: proposed,
		Direction: Down,
		Branch:    BranchDownPastRow,
	}, nil
}

func relocate(s Sequence, from, to int, dir Direction, b Branch) (Resolution, error) {
	items, err := Relocate(s.items, from, to)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Sequence: withItems(items), DropIndex: to, Direction: dir, Branch: b}, nil
}

func pivot(s Sequence, from, to int, dir Direction, b Branch) (Resolution, error) {
	items, err := Pivot(s.items, from, to)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Sequence: withItems(items), DropIndex: to, Direction: dir, Branch: b}, nil
}

func validate(s Sequence, dragging, current, proposed int) error {
	if s.IsEmpty() {
		return errors.New(errors.ErrCodeEmptySequence, "cannot resolve a drag on an empty sequence")
	}
	for _, idx := range []struct {
		name  string
		value int
	}{
		{"dragging", dragging},
		{"current", current},
		{"proposed drop", proposed},
	} {
		if err := errors.ValidateIndex(idx.name, idx.value, s.Len()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the resolution for logs, e.g. "drop=2 dir=down branch=down-compact-neighbor [C1 C2 R0]".
func (r Resolution) String() string {
	return fmt.Sprintf("drop=%d dir=%s branch=%s [%s]", r.DropIndex, r.Direction, r.Branch, r.Sequence)
}
