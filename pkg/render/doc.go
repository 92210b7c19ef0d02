// Package render exports positioned grid frames.
//
// # Formats
//
//   - JSON: the frame with row roles and marks, for tooling
//   - DOT: a Graphviz graph with one box per item, rows ranked together
//   - SVG: the DOT graph rendered through Graphviz
//
//	frame := layout.Compute(seq, layout.DefaultOptions())
//	dot := render.ToDOT(frame, render.Options{Lift: 0, Drop: 2})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Marks
//
// Options.Lift and Options.Drop highlight the dragged item and the drop
// placeholder. Use -1, or [DefaultOptions], for no mark.
//
// # Caching
//
// [Runner] wraps the renderers with an artifact cache keyed by the frame
// and the options, so re-rendering an unchanged arrangement is free.
package render
