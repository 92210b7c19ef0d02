package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/layout"
	"github.com/briancoyner/interactive-grid/pkg/render"
)

// defaultOutputBase names output files when several formats are requested
// without --output.
const defaultOutputBase = "grid"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	src      sourceFlags
	formats  string // comma-separated formats
	output   string // output file, or base path for several formats
	noCache  bool
	lift     int
	drop     int
	detailed bool
	width    float64
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{lift: -1, drop: -1}

	cmd := &cobra.Command{
		Use:   "render [layout...]",
		Short: "Render an arrangement as SVG, DOT or JSON",
		Long: `Render lays an arrangement out on the grid and writes it as an SVG
drawing, a Graphviz DOT document or a JSON frame. Rendered artifacts are
cached; --no-cache skips the cache.`,
		Example: `  gridctl render R0 C1 C2 -o grid.svg
  gridctl render --preset mix -f dot
  gridctl render C0 C1 R2 --lift 2 --drop 0 -f svg,json -o proposal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readSequence(cmd, args, &opts.src)
			if err != nil {
				return err
			}
			formats, err := parseFormats(opts.formats)
			if err != nil {
				return err
			}

			lo := c.Config.Layout
			if cmd.Flags().Changed("width") {
				lo.Width = opts.width
			}
			frame := layout.Compute(s, lo)

			runner, err := c.newRunner(opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Cache.Close()

			ropts := render.Options{Lift: opts.lift, Drop: opts.drop, Detailed: opts.detailed}
			return c.renderAll(cmd, runner, frame, formats, ropts, opts.output)
		},
	}

	addSourceFlags(cmd, &opts.src)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats, comma separated: svg, dot, json (default svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or base name for several formats (default stdout)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "skip the render cache")
	cmd.Flags().IntVar(&opts.lift, "lift", -1, "index to mark as the dragged item")
	cmd.Flags().IntVar(&opts.drop, "drop", -1, "index to mark as the drop placeholder")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label cells with their row role")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "container width in points (default from config)")

	return cmd
}

func (c *CLI) renderAll(cmd *cobra.Command, runner *render.Runner, frame layout.Frame, formats []render.Format, opts render.Options, output string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if output == "" && len(formats) == 1 {
		data, _, err := c.renderOne(ctx, runner, frame, formats[0], opts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	base := outputBase(output, defaultOutputBase)
	for _, f := range formats {
		data, cached, err := c.renderOne(ctx, runner, frame, f, opts)
		if err != nil {
			return err
		}
		path := outputPath(output, base, f, len(formats))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		printSuccess("Rendered %s", strings.ToUpper(string(f)))
		printStats(len(frame.Cells), len(frame.Rows), cached)
		printFile(path)
	}
	return nil
}

func (c *CLI) renderOne(ctx context.Context, runner *render.Runner, frame layout.Frame, f render.Format, opts render.Options) ([]byte, bool, error) {
	prog := newProgress(c.Logger)
	type artifact struct {
		data   []byte
		cached bool
	}
	a, err := withSpinner(ctx, "Rendering "+string(f)+"...", func(ctx context.Context) (artifact, error) {
		data, cached, err := runner.RenderWithCacheInfo(ctx, frame, f, opts)
		return artifact{data, cached}, err
	})
	if err != nil {
		return nil, false, err
	}
	prog.done(fmt.Sprintf("Rendered %s", f))
	return a.data, a.cached, nil
}

// parseFormats parses a comma-separated format list. Empty means svg.
func parseFormats(s string) ([]render.Format, error) {
	if strings.TrimSpace(s) == "" {
		return []render.Format{render.FormatSVG}, nil
	}
	var out []render.Format
	seen := make(map[render.Format]bool)
	for _, part := range strings.Split(s, ",") {
		f, err := render.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no output format given")
	}
	return out, nil
}

// outputBase strips a known format extension from output.
func outputBase(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns output unchanged for a single format, else base.<format>.
func outputPath(output, base string, f render.Format, count int) string {
	if output != "" && count == 1 {
		return output
	}
	return base + "." + string(f)
}
