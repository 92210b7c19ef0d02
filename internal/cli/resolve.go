package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/grid"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	src      sourceFlags
	dragging int
	current  int
	proposed int
	explain  bool
	asJSON   bool
	dump     bool
}

// resolveOutput is the --json form of a resolution.
type resolveOutput struct {
	Layout    string      `json:"layout"`
	Items     []grid.Item `json:"items"`
	DropIndex int         `json:"drop_index"`
	Direction string      `json:"direction"`
	Branch    string      `json:"branch"`
}

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve [layout...] --drag N --drop N",
		Short: "Apply one drag update and print the proposed arrangement",
		Long: `Resolve moves the item at --drag toward --drop and prints the
arrangement the grid would show, together with where the drop placeholder
belongs. --current is the index the dragged item is shown at; it defaults
to --drag.`,
		Example: `  gridctl resolve R0 C1 C2 --drag 0 --drop 1
  gridctl resolve C0 C1 R2 C3 C4 --drag 2 --drop 1 --explain
  gridctl resolve --preset mix --drag 4 --drop 0 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readSequence(cmd, args, &opts.src)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("current") {
				opts.current = opts.dragging
			}

			res, err := grid.Explain(s, opts.dragging, opts.current, opts.proposed)
			if err != nil {
				return err
			}
			c.Logger.Debug("resolved", "resolution", res)
			return writeResolution(cmd.OutOrStdout(), s, res, opts)
		},
	}

	addSourceFlags(cmd, &opts.src)
	cmd.Flags().IntVar(&opts.dragging, "drag", 0, "index of the item being dragged")
	cmd.Flags().IntVar(&opts.current, "current", 0, "index the dragged item is shown at (default --drag)")
	cmd.Flags().IntVar(&opts.proposed, "drop", 0, "proposed drop index")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "show the input and the rule that fired")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the resolution as JSON")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print the raw resolution value")
	_ = cmd.MarkFlagRequired("drag")
	_ = cmd.MarkFlagRequired("drop")

	return cmd
}

func writeResolution(w io.Writer, input grid.Sequence, res grid.Resolution, opts resolveOpts) error {
	switch {
	case opts.dump:
		fmt.Fprintln(w, litter.Sdump(res))
		return nil
	case opts.asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resolveOutput{
			Layout:    res.Sequence.String(),
			Items:     res.Sequence.Items(),
			DropIndex: res.DropIndex,
			Direction: res.Direction.String(),
			Branch:    string(res.Branch),
		})
	}

	if opts.explain {
		fmt.Fprintln(w, gridView(input, marks{Cursor: -1, Lift: opts.dragging, Drop: opts.proposed}))
		fmt.Fprintf(w, "%s %s %s\n", StyleDim.Render(iconArrow), StyleHighlight.Render(string(res.Branch)), StyleDim.Render("("+res.Direction.String()+")"))
	}
	fmt.Fprintln(w, gridView(res.Sequence, marks{Cursor: -1, Lift: -1, Drop: res.DropIndex}))
	fmt.Fprintf(w, "%s  drop %d\n", res.Sequence, res.DropIndex)
	return nil
}
