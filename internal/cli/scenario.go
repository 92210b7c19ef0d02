package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/scenario"
)

const (
	suiteVisual = "visual"
	suiteTOML   = "toml"
)

// scenarioCommand creates the scenario command group.
func (c *CLI) scenarioCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"scenarios"},
		Short:   "Run, list and convert scenario suites",
		Long: `Scenario suites pair an arrangement and a drag update with the
arrangement the grid should propose. Suites are written either in the
visual format (.grid) or as TOML (.toml). Without a file the built-in
regression suite is used.`,
	}

	cmd.AddCommand(c.scenarioRunCommand())
	cmd.AddCommand(c.scenarioListCommand())
	cmd.AddCommand(c.scenarioConvertCommand())

	return cmd
}

// scenarioRunCommand creates the "scenario run" subcommand.
func (c *CLI) scenarioRunCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "run [file...]",
		Short: "Resolve every scenario and compare with its expectation",
		Example: `  gridctl scenario run
  gridctl scenario run testdata/regular.grid --filter orphan`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.loadScenarios(args)
			if err != nil {
				return err
			}
			all = filterScenarios(all, filter)
			if len(all) == 0 && filter != "" {
				printWarning("No scenario name contains %q", filter)
			}

			prog := newProgress(c.Logger)
			results, err := scenario.RunAll(cmd.Context(), all)
			if err != nil {
				return err
			}
			sum := writeResults(cmd.OutOrStdout(), results)
			prog.done(fmt.Sprintf("Ran %d scenarios", sum.Total))

			if !sum.OK() {
				if f, ok := firstFailure(results); ok {
					printNextStep("Inspect the first failure with", explainCommand(f))
				}
				return fmt.Errorf("%d of %d scenarios failed", sum.Failed+sum.Errored, sum.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only run scenarios whose name contains this text")
	return cmd
}

// scenarioListCommand creates the "scenario list" subcommand.
func (c *CLI) scenarioListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file...]",
		Short: "List scenarios without running them",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.loadScenarios(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), scenarioTable(all))
			return nil
		},
	}
}

// scenarioConvertCommand creates the "scenario convert" subcommand.
func (c *CLI) scenarioConvertCommand() *cobra.Command {
	var (
		output string
		to     string
	)

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a suite between the visual and TOML formats",
		Example: `  gridctl scenario convert cases.grid -o cases.toml
  gridctl scenario convert cases.toml --to visual`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := scenario.LoadSuite(args[0])
			if err != nil {
				return err
			}
			format, err := convertTarget(args[0], output, to)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := encodeSuite(&buf, format, all); err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			printSuccess("Converted %d scenarios", len(all))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&to, "to", "", "target format: visual or toml (default from --output, else the other format)")
	return cmd
}

// loadScenarios reads every file in paths, or the built-in suite when
// paths is empty.
func (c *CLI) loadScenarios(paths []string) ([]scenario.Scenario, error) {
	if len(paths) == 0 {
		return scenario.Builtin(), nil
	}
	var all []scenario.Scenario
	for _, p := range paths {
		s, err := scenario.LoadSuite(p)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("loaded suite", "path", p, "scenarios", len(s))
		all = append(all, s...)
	}
	return all, nil
}

func filterScenarios(all []scenario.Scenario, substr string) []scenario.Scenario {
	if substr == "" {
		return all
	}
	var out []scenario.Scenario
	for _, s := range all {
		if strings.Contains(s.Name, substr) {
			out = append(out, s)
		}
	}
	return out
}

// writeResults prints one line per result and a closing summary.
func writeResults(w io.Writer, results []scenario.Result) scenario.Summary {
	for _, r := range results {
		name := r.Scenario.Name
		switch r.Status {
		case scenario.StatusPass:
			fmt.Fprintf(w, "%s %s %s\n", styleIconSuccess.Render(iconSuccess), name, StyleDim.Render(string(r.Branch)))
		case scenario.StatusSkip:
			fmt.Fprintf(w, "%s %s %s\n", styleIconInfo.Render(iconSkip), StyleDim.Render(name), StyleDim.Render("skipped: "+r.Scenario.SkipReason))
		default:
			fmt.Fprintf(w, "%s %s\n", styleIconError.Render(iconError), name)
			fmt.Fprintf(w, "  %s\n", StyleDim.Render(r.Diff()))
		}
	}

	sum := scenario.Summarize(results)
	line := fmt.Sprintf("%d passed, %d failed, %d skipped", sum.Passed, sum.Failed+sum.Errored, sum.Skipped)
	if sum.OK() {
		fmt.Fprintln(w, StyleSuccess.Render(line))
	} else {
		fmt.Fprintln(w, StyleWarning.Render(line))
	}
	return sum
}

func firstFailure(results []scenario.Result) (scenario.Scenario, bool) {
	for _, r := range results {
		if r.Status == scenario.StatusFail {
			return r.Scenario, true
		}
	}
	return scenario.Scenario{}, false
}

// explainCommand is the resolve invocation that reproduces s.
func explainCommand(s scenario.Scenario) string {
	return fmt.Sprintf("%s resolve %q --drag %d --current %d --drop %d --explain",
		cmdName, s.Input.String(), s.Dragging, s.Current, s.Proposed)
}

func scenarioTable(all []scenario.Scenario) string {
	rows := make([][]string, 0, len(all))
	for _, s := range all {
		skip := ""
		if s.Skip {
			skip = "skip"
		}
		rows = append(rows, []string{
			s.Name,
			s.Input.String(),
			strconv.Itoa(s.Dragging),
			strconv.Itoa(s.Current),
			strconv.Itoa(s.Proposed),
			s.Want.String(),
			strconv.Itoa(s.WantDrop),
			skip,
		})
	}
	headers := []string{"Name", "Input", "Drag", "Current", "Drop", "Want", "Want drop", ""}
	return newTable(headers, rows, func(row, col int) lipgloss.Style {
		if row < len(all) && all[row].Skip {
			return lipgloss.NewStyle().Foreground(colorDim)
		}
		if col == 0 {
			return StyleValue
		}
		return lipgloss.NewStyle().Foreground(colorGray)
	}).String()
}

// convertTarget picks the output format: --to wins, then the output file
// extension, then whichever format the input is not.
func convertTarget(input, output, to string) (string, error) {
	switch to {
	case suiteVisual, suiteTOML:
		return to, nil
	case "":
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unknown suite format %q (want visual or toml)", to)
	}
	if output != "" {
		if isTOML(output) {
			return suiteTOML, nil
		}
		return suiteVisual, nil
	}
	if isTOML(input) {
		return suiteVisual, nil
	}
	return suiteTOML, nil
}

func encodeSuite(w io.Writer, format string, all []scenario.Scenario) error {
	if format == suiteTOML {
		return scenario.EncodeTOML(w, all...)
	}
	return scenario.FormatVisual(w, all...)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
