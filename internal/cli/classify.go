package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
	"github.com/briancoyner/interactive-grid/pkg/render"
)

// classifyCommand creates the classify command.
func (c *CLI) classifyCommand() *cobra.Command {
	var (
		src    sourceFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "classify [layout...]",
		Short: "Show the row role of every item",
		Long: `Classify an arrangement and show how it lays out on the grid.

The layout is a list of items such as "R0 C1 C2 C3". Without a layout the
configured preset is used.`,
		Example: `  gridctl classify R0 C1 C2 C3
  gridctl classify --preset random --seed 7
  gridctl classify "C0,C1,R2" --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readSequence(cmd, args, &src)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return render.WriteJSON(w, layout.Compute(s, c.Config.Layout), render.DefaultOptions())
			}
			fmt.Fprintln(w, classifyTable(s))
			fmt.Fprintln(w, gridView(s, noMarks()))
			return nil
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the laid out frame as JSON")

	return cmd
}

// classifyTable lists each item with its role, row and row group.
func classifyTable(s grid.Sequence) string {
	roles := grid.Classify(s)
	rowOf := make([]int, s.Len())
	groupOf := make([]string, s.Len())
	for r, row := range layout.Rows(s) {
		for _, idx := range row.Indices {
			rowOf[idx] = r
			groupOf[idx] = row.Group.Kind.String()
		}
	}

	rows := make([][]string, 0, s.Len())
	for i, it := range s.All() {
		rows = append(rows, []string{
			strconv.Itoa(i),
			it.Density.Symbol() + strconv.Itoa(it.Value),
			roles[i].String(),
			strconv.Itoa(rowOf[i]),
			groupOf[i],
		})
	}

	return newTable([]string{"#", "Item", "Role", "Row", "Group"}, rows, func(row, col int) lipgloss.Style {
		if col == 1 && row < len(roles) && roles[row].IsCompact() {
			return styleCompactLabel
		}
		if col == 1 {
			return styleRegularLabel
		}
		return lipgloss.NewStyle().Foreground(colorGray)
	}).String()
}
