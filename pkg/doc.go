// Package pkg provides the libraries behind the interactive grid.
//
// # Overview
//
// The grid shows items of two sizes on two columns. Compact items take half
// a row and pair up side by side; regular items take a full row. Dragging a
// regular item through the grid must not split a compact pair, which is what
// the resolver in [grid] guarantees. The pkg directory is organized as:
//
//  1. [grid] - Items, sequences, row classification and the drag resolver
//  2. [layout] - Row groups and point geometry for a container width
//  3. [session] - One in-flight drag gesture over a committed arrangement
//  4. [scenario] - Regression suites in a visual and a TOML format
//  5. [render] - DOT, SVG and JSON output with a cached runner
//
// Supporting packages are [cache], [errors], [observability] and [buildinfo].
//
// # Architecture
//
// The typical data flow:
//
//	layout string or preset
//	         ↓
//	    [grid] package (classify, resolve drag updates)
//	         ↓
//	    [session] package (begin, update, commit or cancel)
//	         ↓
//	    [layout] package (rows and cell frames)
//	         ↓
//	    [render] package (DOT, SVG, JSON)
//
// # Quick Start
//
// Resolve one drag update and render the proposal:
//
//	import (
//	    "github.com/briancoyner/interactive-grid/pkg/grid"
//	    "github.com/briancoyner/interactive-grid/pkg/layout"
//	    "github.com/briancoyner/interactive-grid/pkg/render"
//	)
//
//	s, _ := grid.ParseSequence("R0 C1 C2")
//	next, drop, _ := grid.Resolve(s, 0, 0, 1) // C1 C2 R0, drop 2
//
//	frame := layout.Compute(next, layout.DefaultOptions())
//	dot := render.ToDOT(frame, render.Options{Lift: drop, Drop: drop})
//	svg, _ := render.RenderSVG(ctx, dot)
//
// # Error Handling
//
// Every package returns coded errors from [errors]. Use [errors.Is] to test
// for a code and [errors.IsContractViolation] to tell caller mistakes such as
// out-of-range indices apart from bad input files.
//
// [grid]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/grid
// [layout]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/layout
// [session]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/session
// [scenario]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/scenario
// [render]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/render
// [cache]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/cache
// [errors]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/buildinfo
// [errors.Is]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/errors#Is
// [errors.IsContractViolation]: https://pkg.go.dev/github.com/briancoyner/interactive-grid/pkg/errors#IsContractViolation
package pkg
