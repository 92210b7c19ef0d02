package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var styleTableHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

// newTable builds the bordered table used by the listing commands. cellStyle
// may be nil; it is not called for the header row.
func newTable(headers []string, rows [][]string, cellStyle func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if cellStyle == nil {
				return base
			}
			return cellStyle(row, col).Inherit(base)
		})
}
