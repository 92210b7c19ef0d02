package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/grid"
)

// presetsCommand creates the presets command.
func (c *CLI) presetsCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in starting arrangements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = c.Config.Play.Seed
			}
			out, err := presetTable(seed, c.Config.Play.Preset)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the random preset")
	return cmd
}

// presetTable lists every preset; current is highlighted.
func presetTable(seed uint64, current string) (string, error) {
	rows := make([][]string, 0, len(grid.PresetNames))
	for _, name := range grid.PresetNames {
		s, err := grid.Preset(name, seed)
		if err != nil {
			return "", err
		}
		label := name
		if name == current {
			label += " *"
		}
		rows = append(rows, []string{label, strconv.Itoa(s.Len()), s.String()})
	}
	return newTable([]string{"Preset", "Items", "Layout"}, rows, func(row, col int) lipgloss.Style {
		if row < len(grid.PresetNames) && grid.PresetNames[row] == current {
			return StyleHighlight
		}
		return StyleValue
	}).String(), nil
}
