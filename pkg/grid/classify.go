package grid

import "fmt"

// RowRole is the derived position of an item within its grid row.
type RowRole int

const (
	// LeadingCompact is the left half of a compact pair.
	LeadingCompact RowRole = iota
	// TrailingCompact is the right half of a compact pair.
	TrailingCompact
	// OrphanCompact is a compact item alone on its row.
	OrphanCompact
	// RegularRow is a regular item filling its own row.
	RegularRow
)

// String returns the role name.
func (r RowRole) String() string {
	switch r {
	case LeadingCompact:
		return "LeadingCompact"
	case TrailingCompact:
		return "TrailingCompact"
	case OrphanCompact:
		return "OrphanCompact"
	case RegularRow:
		return "Regular"
	}
	return fmt.Sprintf("RowRole(%d)", int(r))
}

// IsCompact reports whether the role belongs to a compact item.
func (r RowRole) IsCompact() bool { return r != RegularRow }

// StartsRow reports whether an item with this role begins a new grid row.
func (r RowRole) StartsRow() bool { return r != TrailingCompact }

// neighbor is the density of an adjacent item, or none at either edge.
type neighbor int

const (
	none neighbor = iota
	compactNeighbor
	regularNeighbor
)

func neighborOf(s Sequence, i int) neighbor {
	if i < 0 || i >= s.Len() {
		return none
	}
	if s.items[i].Density == Regular {
		return regularNeighbor
	}
	return compactNeighbor
}

// Classify returns the row role of every item, indexed like the sequence.
//
// Compact items pair up left to right. A compact item completes a pair when
// the item before it opened one; otherwise it opens a pair if the next item
// is compact and stands alone if the next item is regular or absent. Regular
// items always fill their own row.
func Classify(s Sequence) []RowRole {
	roles := make([]RowRole, s.Len())
	prevRole := RegularRow
	for i := range s.items {
		roles[i] = classifyAt(s, i, prevRole)
		prevRole = roles[i]
	}
	return roles
}

// RoleAt returns the row role of the item at index i.
// It scans from the start of the sequence since pairing depends on every
// compact item before i. It panics if i is out of range.
func RoleAt(s Sequence, i int) RowRole {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("grid: RoleAt index %d out of range [0, %d)", i, s.Len()))
	}
	prevRole := RegularRow
	for j := 0; j < i; j++ {
		prevRole = classifyAt(s, j, prevRole)
	}
	return classifyAt(s, i, prevRole)
}

// classifyAt decides the role for index i given the role derived for i-1.
// prevRole is only consulted when the previous item is compact.
func classifyAt(s Sequence, i int, prevRole RowRole) RowRole {
	prev, next := neighborOf(s, i-1), neighborOf(s, i+1)

	if s.items[i].Density == Regular {
		return RegularRow
	}

	switch prev {
	case compactNeighbor:
		if prevRole == LeadingCompact {
			return TrailingCompact
		}
		return opening(next)
	case none, regularNeighbor:
		return opening(next)
	}
	panic("unreachable")
}

// opening is the role of a compact item that starts a new row.
func opening(next neighbor) RowRole {
	switch next {
	case compactNeighbor:
		return LeadingCompact
	case regularNeighbor, none:
		return OrphanCompact
	}
	panic("unreachable")
}
