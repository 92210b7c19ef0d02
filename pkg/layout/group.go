package layout

import "github.com/briancoyner/interactive-grid/pkg/grid"

// Kind identifies a layout group.
type Kind int

const (
	// CompactPair holds a leading and trailing compact item side by side.
	CompactPair Kind = iota
	// CompactOrphan holds a single compact item in the left half of a row.
	CompactOrphan
	// RegularGroup holds a single regular item across the full row.
	RegularGroup
)

// String returns the group name.
func (k Kind) String() string {
	switch k {
	case CompactPair:
		return "CompactPair"
	case CompactOrphan:
		return "CompactOrphan"
	case RegularGroup:
		return "Regular"
	}
	return "Kind(?)"
}

// Group describes the shape of one grid row.
// Width and Height are fractions of the usable frame width.
type Group struct {
	Kind   Kind
	Width  float64
	Height float64
	Cells  int
}

var groups = map[grid.RowRole]Group{
	grid.LeadingCompact: {Kind: CompactPair, Width: 1.0, Height: 0.5, Cells: 2},
	grid.OrphanCompact:  {Kind: CompactOrphan, Width: 0.5, Height: 0.5, Cells: 1},
	grid.RegularRow:     {Kind: RegularGroup, Width: 1.0, Height: 0.5, Cells: 1},
}

// GroupFor returns the group that a row starting with role renders as.
// It reports false for TrailingCompact, which never starts a row.
func GroupFor(role grid.RowRole) (Group, bool) {
	g, ok := groups[role]
	return g, ok
}

// Row is one rendered row: a group and the sequence indices it holds.
type Row struct {
	Group   Group
	Indices []int
}

// Rows splits s into rows using the row roles from grid.Classify.
func Rows(s grid.Sequence) []Row {
	roles := grid.Classify(s)
	var rows []Row
	for i, role := range roles {
		if !role.StartsRow() {
			last := &rows[len(rows)-1]
			last.Indices = append(last.Indices, i)
			continue
		}
		g, _ := GroupFor(role)
		rows = append(rows, Row{Group: g, Indices: []int{i}})
	}
	return rows
}
