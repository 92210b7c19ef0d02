package render

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/briancoyner/interactive-grid/pkg/cache"
	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
	"github.com/briancoyner/interactive-grid/pkg/observability"
)

func testFrame(t *testing.T, s string) layout.Frame {
	t.Helper()
	seq, err := grid.ParseSequence(s)
	if err != nil {
		t.Fatal(err)
	}
	return layout.Compute(seq, layout.DefaultOptions())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{" DOT ", FormatDOT, false},
		{"Json", FormatJSON, false},
		{"png", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToDOT(t *testing.T) {
	f := testFrame(t, "R0 C1 C2 C3")
	dot := ToDOT(f, Options{Lift: 0, Drop: 2})

	for _, want := range []string{
		"digraph grid {",
		`n0 [label="R0 …"`,
		"{ rank=same; n1; n2; }",
		"n1 -> n2;",
		"n0 -> n1;",
		"n1 -> n3;",
		"penwidth=3",
		`style="rounded,filled,dashed"`,
		`fillcolor="#ffe69c"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "n3 -> ") {
		t.Errorf("last row should not chain onward:\n%s", dot)
	}
}

func TestToDOTDetailedLabels(t *testing.T) {
	f := testFrame(t, "C0 C1 C2")
	dot := ToDOT(f, Options{Lift: -1, Drop: -1, Detailed: true})
	if !strings.Contains(dot, `OrphanCompact\nrow 1`) {
		t.Errorf("detailed label missing role and row:\n%s", dot)
	}
	if strings.Contains(dot, "penwidth") {
		t.Error("no marks requested but lift mark rendered")
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(layout.Compute(grid.Sequence{}, layout.DefaultOptions()), DefaultOptions())
	if !strings.HasPrefix(dot, "digraph grid {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(empty) = %q", dot)
	}
}

func TestRenderJSON(t *testing.T) {
	f := testFrame(t, "C0 C1 R2")
	data, err := RenderJSON(f, Options{Lift: 2, Drop: 0})
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Layout != "C0 C1 R2" || doc.Width != 400 {
		t.Errorf("doc = %s width %v", doc.Layout, doc.Width)
	}
	if len(doc.Rows) != 2 || doc.Rows[0].Group != "CompactPair" || doc.Rows[1].Group != "Regular" {
		t.Errorf("rows = %+v", doc.Rows)
	}
	if !doc.Cells[2].Lifted || !doc.Cells[0].Drop || doc.Cells[1].Lifted {
		t.Errorf("marks = %+v", doc.Cells)
	}
	if doc.Cells[1].Role != "TrailingCompact" || doc.Cells[1].Density != grid.Compact {
		t.Errorf("cell 1 = %+v", doc.Cells[1])
	}
}

func TestRenderSVG(t *testing.T) {
	f := testFrame(t, "R0 C1 C2")
	svg, err := RenderSVG(context.Background(), ToDOT(f, DefaultOptions()))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "R0") {
		t.Errorf("unexpected SVG output: %.200s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.50 200.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.50 200.00" width="100" height="200"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox = %s", got)
	}

	plain := []byte("<svg></svg>")
	if string(normalizeViewBox(plain)) != "<svg></svg>" {
		t.Error("svg without viewBox should be unchanged")
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
}

func (c *countingHooks) OnCacheHit(context.Context, string)      { c.hits++ }
func (c *countingHooks) OnCacheMiss(context.Context, string)     { c.misses++ }
func (c *countingHooks) OnCacheSet(context.Context, string, int) { c.sets++ }

func TestRunnerCachesArtifacts(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	ctx := context.Background()
	f := testFrame(t, "R0 C1 C2")

	first, hit, err := r.RenderWithCacheInfo(ctx, f, FormatDOT, DefaultOptions())
	if err != nil || hit {
		t.Fatalf("first render hit=%v err=%v", hit, err)
	}
	second, hit, err := r.RenderWithCacheInfo(ctx, f, FormatDOT, DefaultOptions())
	if err != nil || !hit {
		t.Fatalf("second render hit=%v err=%v", hit, err)
	}
	if string(first) != string(second) {
		t.Error("cached artifact differs from rendered artifact")
	}

	if _, hit, _ := r.RenderWithCacheInfo(ctx, f, FormatDOT, Options{Lift: 0, Drop: -1}); hit {
		t.Error("different marks should miss the cache")
	}
	if hooks.hits != 1 || hooks.misses != 2 || hooks.sets != 2 {
		t.Errorf("hooks = %+v", hooks)
	}
}

func TestRunnerWithoutCache(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	f := testFrame(t, "C0")
	for i := 0; i < 2; i++ {
		if _, hit, err := r.RenderWithCacheInfo(context.Background(), f, FormatJSON, DefaultOptions()); hit || err != nil {
			t.Fatalf("render %d: hit=%v err=%v", i, hit, err)
		}
	}

	_, err := r.Render(context.Background(), f, Format("png"), DefaultOptions())
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}
