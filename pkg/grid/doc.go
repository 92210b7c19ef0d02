// Package grid derives row layouts and drag-reorder results for a
// two-column grid of mixed-density items.
//
// # Overview
//
// A [Sequence] is an ordered list of [Item] values. Each item is either
// [Compact] (half a row wide) or [Regular] (a full row). Order alone decides
// grid position: compact items pair up left to right into rows of two, and
// a regular item always forces a full-width row.
//
// The package has two pure components:
//
//   - [Classify] computes a [RowRole] for every index from the densities of
//     the item and its neighbors.
//   - [Resolve] takes a proposed drag (origin index, current index, proposed
//     drop index) and returns the reordered sequence together with the
//     adjusted drop index, so that the grid never shows an orphaned half-row
//     or an ambiguous row pairing while the gesture is in flight.
//
// Neither function keeps state between calls. Both are safe to call from
// multiple goroutines as long as each goroutine works on its own data.
//
// # Row Roles
//
//	|  Compact  |  Compact  |   LeadingCompact, TrailingCompact
//	|  Compact  |  <empty>  |   OrphanCompact
//	|  R  e  g  u  l  a  r  |   Regular
//
// # Resolving a Drag
//
//	seq := grid.MustSequence(grid.R(0), grid.C(1), grid.C(2))
//	next, drop, err := grid.Resolve(seq, 0, 0, 1)
//	// next = [C(1) C(2) R(0)], drop = 2
//
// Callers must short-circuit when the item at the current index is the item
// at the proposed index; such calls are undefined. The session package
// implements that guard along with commit and cancel.
//
// # Splicing
//
// [Relocate], [Pivot] and [MoveToOffset] are the array primitives the
// resolver is built on. They never modify their input.
package grid
