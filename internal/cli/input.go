package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
)

// sourceFlags selects the arrangement a command works on: either a layout
// given as arguments or a named preset.
type sourceFlags struct {
	preset string
	seed   uint64
}

func addSourceFlags(cmd *cobra.Command, sf *sourceFlags) {
	cmd.Flags().StringVarP(&sf.preset, "preset", "p", "", "start from a preset ("+strings.Join(grid.PresetNames, ", ")+")")
	cmd.Flags().Uint64Var(&sf.seed, "seed", 0, "seed for the random preset")
	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return grid.PresetNames, cobra.ShellCompDirectiveNoFileComp
	})
}

// readSequence parses the layout arguments, falling back to the preset flag
// and then to the configured preset.
func (c *CLI) readSequence(cmd *cobra.Command, args []string, sf *sourceFlags) (grid.Sequence, error) {
	if len(args) > 0 {
		if sf.preset != "" {
			return grid.Sequence{}, errors.New(errors.ErrCodeInvalidInput, "give either a layout or --preset, not both")
		}
		return grid.ParseSequence(strings.Join(args, " "))
	}

	name, seed := c.Config.Play.Preset, c.Config.Play.Seed
	if sf.preset != "" {
		name = sf.preset
	}
	if cmd.Flags().Changed("seed") {
		seed = sf.seed
	}
	c.Logger.Debug("using preset", "name", name, "seed", seed)
	return grid.Preset(name, seed)
}
