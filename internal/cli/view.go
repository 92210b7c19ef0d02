package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
)

// Cell widths are chosen so that a compact pair and a regular row occupy
// the same number of columns once borders and the gap are added.
const (
	halfCellWidth = 12
	fullCellWidth = 2*halfCellWidth + 3
)

var styleCell = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorDim).
	Align(lipgloss.Center)

var (
	styleCompactLabel = lipgloss.NewStyle().Foreground(colorPurple)
	styleRegularLabel = lipgloss.NewStyle().Foreground(colorCyan)
)

// marks are the indices highlighted in a grid view. -1 means none.
type marks struct {
	Cursor int
	Lift   int
	Drop   int
}

func noMarks() marks {
	return marks{Cursor: -1, Lift: -1, Drop: -1}
}

// gridView draws s as a two-column grid, one box per item.
func gridView(s grid.Sequence, m marks) string {
	rows := layout.Rows(s)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		boxes := make([]string, 0, len(row.Indices)*2)
		for n, idx := range row.Indices {
			if n > 0 {
				boxes = append(boxes, " ")
			}
			boxes = append(boxes, cellBox(s.At(idx), idx, row.Group.Kind, m))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cellBox(it grid.Item, idx int, kind layout.Kind, m marks) string {
	width := halfCellWidth
	if kind == layout.RegularGroup {
		width = fullCellWidth
	}

	label := cellLabel(it, idx, m)
	if it.IsCompact() {
		label = styleCompactLabel.Render(label)
	} else {
		label = styleRegularLabel.Render(label)
	}

	st := styleCell.Width(width)
	switch idx {
	case m.Lift:
		st = st.BorderForeground(colorYellow).BorderStyle(lipgloss.ThickBorder())
	case m.Drop:
		st = st.BorderForeground(colorGreen).BorderStyle(lipgloss.DoubleBorder())
	case m.Cursor:
		st = st.BorderForeground(colorWhite)
	}
	return st.Render(label)
}

// cellLabel writes an item the way scenario files do: R0, C1^ for the lifted
// item, C2- for the drop target.
func cellLabel(it grid.Item, idx int, m marks) string {
	var b strings.Builder
	if idx == m.Cursor {
		b.WriteString(iconInfo + " ")
	}
	b.WriteString(it.Density.Symbol())
	b.WriteString(strconv.Itoa(it.Value))
	if idx == m.Lift {
		b.WriteByte('^')
	}
	if idx == m.Drop {
		b.WriteByte('-')
	}
	if it.AllowsMenu {
		b.WriteString(" …")
	}
	return b.String()
}
