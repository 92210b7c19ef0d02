package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
)

const pointsPerInch = 72.0

// Fill colors by density and mark.
const (
	fillRegular = "#cfe2ff"
	fillCompact = "#d1e7dd"
	fillLifted  = "#ffe69c"
	fillDrop    = "#f8f9fa"
)

// ToDOT converts a frame to Graphviz DOT.
//
// Each item is a fixed-size box sized from its cell. Items sharing a row
// are ranked together and chained left to right with invisible edges; the
// first item of each row is chained to the next row so rows stack in order.
// Every node also carries a pinned pos attribute, so neato -n reproduces
// the exact frame geometry.
func ToDOT(f layout.Frame, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph grid {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fixedsize=true, fontname=\"Helvetica\", fontsize=14];\n")
	buf.WriteString("  edge [style=invis];\n")
	fmt.Fprintf(&buf, "  nodesep=%.3f;\n", f.Options.Spacing/pointsPerInch)
	fmt.Fprintf(&buf, "  ranksep=%.3f;\n", f.Options.Spacing/pointsPerInch)
	buf.WriteString("\n")

	for _, c := range f.Cells {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(c.Index), strings.Join(cellAttrs(c, f.Height, opts), ", "))
	}

	if len(f.Rows) > 0 {
		buf.WriteString("\n")
	}
	for i, row := range f.Rows {
		ids := make([]string, len(row.Indices))
		for j, idx := range row.Indices {
			ids[j] = nodeID(idx)
		}
		if len(ids) > 1 {
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
			fmt.Fprintf(&buf, "  %s;\n", strings.Join(ids, " -> "))
		}
		if i+1 < len(f.Rows) {
			fmt.Fprintf(&buf, "  %s -> %s;\n", ids[0], nodeID(f.Rows[i+1].Indices[0]))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(index int) string {
	return fmt.Sprintf("n%d", index)
}

func cellAttrs(c layout.Cell, frameHeight float64, opts Options) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", cellLabel(c, opts.Detailed)),
		fmt.Sprintf("width=%.3f", c.W/pointsPerInch),
		fmt.Sprintf("height=%.3f", c.H/pointsPerInch),
		// Graphviz puts the origin bottom-left.
		fmt.Sprintf("pos=\"%.1f,%.1f!\"", c.CenterX(), frameHeight-c.CenterY()),
	}

	fill := fillCompact
	if c.Item.Density == grid.Regular {
		fill = fillRegular
	}
	switch {
	case c.Index == opts.Lift:
		attrs = append(attrs, "penwidth=3")
		fill = fillLifted
	case c.Index == opts.Drop:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
		fill = fillDrop
	}
	return append(attrs, fmt.Sprintf("fillcolor=%q", fill))
}

func cellLabel(c layout.Cell, detailed bool) string {
	label := fmt.Sprintf("%s%d", c.Item.Density.Symbol(), c.Item.Value)
	if c.Item.AllowsMenu {
		label += " …"
	}
	if !detailed {
		return label
	}
	return fmt.Sprintf("%s\n%s\nrow %d", label, c.Role, c.Row)
}
