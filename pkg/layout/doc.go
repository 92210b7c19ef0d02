// Package layout turns a grid sequence into rows and positioned cells.
//
// # Groups
//
// Every row role maps to a fixed layout group:
//
//	LeadingCompact  -> CompactPair    full width, two half-width cells
//	TrailingCompact -> consumed by the pair that precedes it
//	OrphanCompact   -> CompactOrphan  one half-width cell
//	Regular         -> Regular        one full-width cell
//
// All groups share the same row height, half the usable width.
//
// # Frames
//
// [Compute] positions every item inside a frame of the configured width:
//
//	frame := layout.Compute(seq, layout.DefaultOptions())
//	for _, c := range frame.Cells {
//	    fmt.Println(c.Item, c.X, c.Y, c.W, c.H)
//	}
//
// Cells are listed in sequence order, so frame.Cells[i] is the item at
// index i. [Frame.IndexAt] maps a point back to an index, which is how a
// pointer position becomes a proposed drop index.
package layout
