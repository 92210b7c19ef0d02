package scenario

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
)

func TestBuiltinSuite(t *testing.T) {
	suite := Builtin()
	if len(suite) == 0 {
		t.Fatal("builtin suite is empty")
	}

	names := make(map[string]bool)
	for _, s := range suite {
		if names[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		names[s.Name] = true

		t.Run(s.Name, func(t *testing.T) {
			r := Run(s)
			if s.Skip {
				if r.Status != StatusSkip {
					t.Errorf("Status = %s, want %s", r.Status, StatusSkip)
				}
				t.Skip(s.SkipReason)
			}
			if !r.Passed {
				t.Errorf("%s", r.Diff())
			}
		})
	}
}

func TestBuiltinSkippedCaseStillFails(t *testing.T) {
	var pending []Scenario
	for _, s := range Builtin() {
		if s.Skip {
			pending = append(pending, s)
		}
	}
	if len(pending) != 1 {
		t.Fatalf("got %d pending scenarios, want 1", len(pending))
	}
	r := Run(pending[0])
	if r.Passed {
		t.Error("pending scenario passes; remove its skip marker")
	}
	if r.Got.String() != "C1 R0 C2" || r.GotDrop != 1 {
		t.Errorf("pending scenario output = %s drop %d", r.Got, r.GotDrop)
	}
}

func TestParseVisual(t *testing.T) {
	suite, err := LoadSuite(filepath.Join("testdata", "regular.grid"))
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if len(suite) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(suite))
	}

	first := suite[0]
	if first.Name != "regular down onto leading compact" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Input.String() != "R0 C1 C2" || first.Want.String() != "C1 C2 R0" {
		t.Errorf("Input/Want = %s / %s", first.Input, first.Want)
	}
	if first.Dragging != 0 || first.Current != 0 || first.Proposed != 1 || first.WantDrop != 2 {
		t.Errorf("indices = %d %d %d %d", first.Dragging, first.Current, first.Proposed, first.WantDrop)
	}

	second := suite[1]
	if second.Dragging != 2 || second.Proposed != 1 || second.WantDrop != 0 {
		t.Errorf("second indices = %d %d %d", second.Dragging, second.Proposed, second.WantDrop)
	}

	third := suite[2]
	if !third.Skip || !strings.HasPrefix(third.SkipReason, "regular item dragged") {
		t.Errorf("Skip = %v %q", third.Skip, third.SkipReason)
	}
	if third.Current != 2 {
		t.Errorf("Current = %d, want 2", third.Current)
	}

	for _, s := range suite[:2] {
		if r := Run(s); !r.Passed {
			t.Errorf("%s: %s", s.Name, r.Diff())
		}
	}
}

func TestParseVisualDefaultsWantDrop(t *testing.T) {
	src := `### compact pair swap
| C0^ | C1- |
=====
| C1 | C0 |
-----
`
	suite, err := ParseVisual(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseVisual: %v", err)
	}
	if suite[0].WantDrop != 1 {
		t.Errorf("WantDrop = %d, want proposed index 1", suite[0].WantDrop)
	}
}

func TestParseVisualLiftAndDropOnSameCell(t *testing.T) {
	src := "### self\n| R0^- |\n| C1 |\n=====\n| R0- |\n| C1 |\n-----\n"
	suite, err := ParseVisual(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseVisual: %v", err)
	}
	if suite[0].Dragging != 0 || suite[0].Proposed != 0 {
		t.Errorf("indices = %d %d", suite[0].Dragging, suite[0].Proposed)
	}
}

func TestParseVisualErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no header", "| R0^ |\n"},
		{"unterminated", "### a\n| R0^ | C1- |\n=====\n| C1 | R0 |\n"},
		{"no separator", "### a\n| R0^ |\n-----\n"},
		{"no lift", "### a\n| R0 | C1- |\n=====\n| R0 | C1 |\n-----\n"},
		{"no drop", "### a\n| R0^ | C1 |\n=====\n| R0 | C1 |\n-----\n"},
		{"two lifts", "### a\n| C0^ | C1^- |\n=====\n| C0 | C1 |\n-----\n"},
		{"lift in expectation", "### a\n| C0^ | C1- |\n=====\n| C1^ | C0 |\n-----\n"},
		{"bad cell", "### a\n| X0^ | C1- |\n=====\n| C1 | C0 |\n-----\n"},
		{"missing item", "### a\n| C0^ | C1- |\n=====\n| C1 |\n-----\n"},
		{"empty name", "###\n| C0^ | C1- |\n=====\n| C1 | C0 |\n-----\n"},
		{"bad current", "### a\n@current=x\n| C0^ | C1- |\n=====\n| C1 | C0 |\n-----\n"},
		{"garbage", "### a\nhello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseVisual(strings.NewReader(tt.src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFormatVisualRoundTrip(t *testing.T) {
	suite := Builtin()

	var buf bytes.Buffer
	if err := FormatVisual(&buf, suite...); err != nil {
		t.Fatalf("FormatVisual: %v", err)
	}
	back, err := ParseVisual(&buf)
	if err != nil {
		t.Fatalf("ParseVisual: %v", err)
	}
	if len(back) != len(suite) {
		t.Fatalf("got %d scenarios back, want %d", len(back), len(suite))
	}
	for i := range suite {
		assertSameScenario(t, back[i], suite[i])
	}
}

func TestFormatVisualRows(t *testing.T) {
	s := Builtin()[2]
	var buf bytes.Buffer
	if err := FormatVisual(&buf, s); err != nil {
		t.Fatal(err)
	}
	want := `### regular down onto leading compact
| R0^ |
| C1- | C2 |
=====
| C1 | C2 |
| R0- |
-----
`
	if buf.String() != want {
		t.Errorf("FormatVisual =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	suite := Builtin()

	var buf bytes.Buffer
	if err := EncodeTOML(&buf, suite...); err != nil {
		t.Fatalf("EncodeTOML: %v", err)
	}
	back, err := DecodeTOML(&buf)
	if err != nil {
		t.Fatalf("DecodeTOML: %v", err)
	}
	if len(back) != len(suite) {
		t.Fatalf("got %d scenarios back, want %d", len(back), len(suite))
	}
	for i := range suite {
		assertSameScenario(t, back[i], suite[i])
	}
}

func TestDecodeTOMLDefaults(t *testing.T) {
	src := `
[[scenario]]
name = "defaults"
input = "R0 C1 C2"
dragging = 1
proposed = 0
want = "C1 R0 C2"
`
	suite, err := DecodeTOML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeTOML: %v", err)
	}
	s := suite[0]
	if s.Current != 1 || s.WantDrop != 0 || s.Skip {
		t.Errorf("defaults = current %d want_drop %d skip %v", s.Current, s.WantDrop, s.Skip)
	}
}

func TestDecodeTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want errors.Code
	}{
		{"syntax", "[[scenario]\n", errors.ErrCodeInvalidFormat},
		{"bad input", "[[scenario]]\nname = \"a\"\ninput = \"Q1\"\nwant = \"Q1\"\n", errors.ErrCodeInvalidScenario},
		{"index out of range", "[[scenario]]\nname = \"a\"\ninput = \"C0 C1\"\nproposed = 4\nwant = \"C0 C1\"\n", errors.ErrCodeInvalidScenario},
		{"items differ", "[[scenario]]\nname = \"a\"\ninput = \"C0 C1\"\nproposed = 1\nwant = \"C0 R1\"\n", errors.ErrCodeInvalidScenario},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTOML(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestLoadSuite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.toml")

	var buf bytes.Buffer
	if err := EncodeTOML(&buf, Builtin()[:3]...); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	suite, err := LoadSuite(path)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if len(suite) != 3 {
		t.Errorf("got %d scenarios, want 3", len(suite))
	}

	if _, err := LoadSuite(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := LoadSuite(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path error = %v", err)
	}
}

func TestRunReportsFailureAndError(t *testing.T) {
	input := grid.MustSequence(grid.C(0), grid.C(1))

	failing := Scenario{Name: "wrong", Input: input, Dragging: 0, Current: 0, Proposed: 1, Want: input, WantDrop: 1}
	r := Run(failing)
	if r.Passed || r.Status != StatusFail {
		t.Errorf("Run = %s passed %v", r.Status, r.Passed)
	}
	if !strings.Contains(r.Diff(), "got [C1 C0] drop 1") {
		t.Errorf("Diff = %q", r.Diff())
	}

	broken := Scenario{Name: "broken", Input: input, Dragging: 5, Current: 0, Proposed: 1, Want: input}
	r = Run(broken)
	if r.Status != StatusError || !errors.Is(r.Err, errors.ErrCodeIndexOutOfRange) {
		t.Errorf("Run = %s err %v", r.Status, r.Err)
	}
}

func TestRunAllAndSummarize(t *testing.T) {
	results, err := RunAll(context.Background(), Builtin())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	sum := Summarize(results)
	if sum.Total != len(Builtin()) || sum.Skipped != 1 || !sum.OK() {
		t.Errorf("Summary = %+v", sum)
	}
	if sum.Passed+sum.Skipped != sum.Total {
		t.Errorf("Summary = %+v, want every scenario to pass or skip", sum)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err = RunAll(ctx, Builtin())
	if err == nil || len(results) != 0 {
		t.Errorf("RunAll on cancelled context = %d results, err %v", len(results), err)
	}
}

func assertSameScenario(t *testing.T, got, want Scenario) {
	t.Helper()
	if got.Name != want.Name ||
		got.Input.String() != want.Input.String() ||
		got.Want.String() != want.Want.String() ||
		got.Dragging != want.Dragging ||
		got.Current != want.Current ||
		got.Proposed != want.Proposed ||
		got.WantDrop != want.WantDrop ||
		got.Skip != want.Skip ||
		got.SkipReason != want.SkipReason {
		t.Errorf("scenario mismatch:\n got %+v\nwant %+v", got, want)
	}
}
