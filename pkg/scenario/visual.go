package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
	"github.com/briancoyner/interactive-grid/pkg/layout"
)

const (
	headerPrefix  = "###"
	separator     = "====="
	terminator    = "-----"
	currentPrefix = "@current="
	skipPrefix    = "!skip"
	liftMarker    = '^'
	dropMarker    = '-'
)

// cellToken is one parsed "| C1^ |" cell.
type cellToken struct {
	item grid.Item
	lift bool
	drop bool
}

// visualBuilder accumulates one scenario while its lines are read.
type visualBuilder struct {
	name       string
	line       int
	current    int
	hasCurrent bool
	skip       bool
	skipReason string
	input      []cellToken
	want       []cellToken
	inWant     bool
}

// ParseVisual reads scenarios written in the visual row format.
func ParseVisual(r io.Reader) ([]Scenario, error) {
	var (
		out []Scenario
		cur *visualBuilder
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "//"):
			continue

		case strings.HasPrefix(line, headerPrefix):
			if cur != nil {
				return nil, parseErr(lineNo, "scenario %q not terminated with %s", cur.name, terminator)
			}
			cur = &visualBuilder{name: strings.TrimSpace(line[len(headerPrefix):]), line: lineNo}

		case cur == nil:
			return nil, parseErr(lineNo, "expected %s header, got %q", headerPrefix, line)

		case strings.HasPrefix(line, currentPrefix):
			if cur.inWant {
				return nil, parseErr(lineNo, "%s must precede %s", currentPrefix, separator)
			}
			n, err := strconv.Atoi(strings.TrimSpace(line[len(currentPrefix):]))
			if err != nil {
				return nil, parseErr(lineNo, "invalid current index %q", line)
			}
			cur.current, cur.hasCurrent = n, true

		case strings.HasPrefix(line, skipPrefix):
			cur.skip = true
			cur.skipReason = strings.TrimSpace(line[len(skipPrefix):])

		case line == separator:
			if cur.inWant {
				return nil, parseErr(lineNo, "duplicate %s", separator)
			}
			cur.inWant = true

		case line == terminator:
			if !cur.inWant {
				return nil, parseErr(lineNo, "missing %s before %s", separator, terminator)
			}
			s, err := cur.build()
			if err != nil {
				return nil, err
			}
			out = append(out, s)
			cur = nil

		case strings.HasPrefix(line, "|"):
			cells, err := parseRow(line)
			if err != nil {
				return nil, parseErr(lineNo, "%v", errors.UserMessage(err))
			}
			if cur.inWant {
				cur.want = append(cur.want, cells...)
			} else {
				cur.input = append(cur.input, cells...)
			}

		default:
			return nil, parseErr(lineNo, "unexpected line %q", line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read scenarios")
	}
	if cur != nil {
		return nil, parseErr(cur.line, "scenario %q not terminated with %s", cur.name, terminator)
	}
	return out, nil
}

func parseRow(line string) ([]cellToken, error) {
	var cells []cellToken
	for _, field := range strings.Split(line, "|") {
		tok := strings.TrimSpace(field)
		if tok == "" {
			continue
		}
		var c cellToken
		for len(tok) > 0 {
			last := tok[len(tok)-1]
			if last == liftMarker {
				c.lift = true
			} else if last == dropMarker {
				c.drop = true
			} else {
				break
			}
			tok = tok[:len(tok)-1]
		}
		s, err := grid.ParseSequence(tok)
		if err != nil {
			return nil, err
		}
		if s.Len() != 1 {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "cell %q must hold exactly one item", field)
		}
		c.item = s.At(0)
		cells = append(cells, c)
	}
	return cells, nil
}

func (b *visualBuilder) build() (Scenario, error) {
	lift, drop := -1, -1
	items := make([]grid.Item, len(b.input))
	for i, c := range b.input {
		items[i] = c.item
		if c.lift {
			if lift >= 0 {
				return Scenario{}, parseErr(b.line, "%s: more than one lifted item", b.name)
			}
			lift = i
		}
		if c.drop {
			if drop >= 0 {
				return Scenario{}, parseErr(b.line, "%s: more than one drop target", b.name)
			}
			drop = i
		}
	}
	if lift < 0 {
		return Scenario{}, parseErr(b.line, "%s: no lifted item (mark one with %c)", b.name, liftMarker)
	}
	if drop < 0 {
		return Scenario{}, parseErr(b.line, "%s: no drop target (mark one with %c)", b.name, dropMarker)
	}

	wantDrop := drop
	wantItems := make([]grid.Item, len(b.want))
	seenDrop := false
	for i, c := range b.want {
		if c.lift {
			return Scenario{}, parseErr(b.line, "%s: %c is not allowed in the expected block", b.name, liftMarker)
		}
		if c.drop {
			if seenDrop {
				return Scenario{}, parseErr(b.line, "%s: more than one expected drop index", b.name)
			}
			wantDrop, seenDrop = i, true
		}
		wantItems[i] = c.item
	}

	input, err := grid.NewSequence(items...)
	if err != nil {
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "%s: input", b.name)
	}
	want, err := grid.NewSequence(wantItems...)
	if err != nil {
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "%s: expectation", b.name)
	}

	current := lift
	if b.hasCurrent {
		current = b.current
	}
	s := Scenario{
		Name:       b.name,
		Input:      input,
		Dragging:   lift,
		Current:    current,
		Proposed:   drop,
		Want:       want,
		WantDrop:   wantDrop,
		Skip:       b.skip,
		SkipReason: b.skipReason,
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func parseErr(line int, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidFormat, "line %d: %s", line, fmt.Sprintf(format, args...))
}

// FormatVisual writes scenarios in the visual row format. Rows follow the
// grid layout, so compact pairs share a line.
func FormatVisual(w io.Writer, scenarios ...Scenario) error {
	bw := bufio.NewWriter(w)
	for i, s := range scenarios {
		if i > 0 {
			bw.WriteString("\n")
		}
		fmt.Fprintf(bw, "%s %s\n", headerPrefix, s.Name)
		if s.Skip {
			if s.SkipReason != "" {
				fmt.Fprintf(bw, "%s %s\n", skipPrefix, s.SkipReason)
			} else {
				fmt.Fprintln(bw, skipPrefix)
			}
		}
		if s.Current != s.Dragging {
			fmt.Fprintf(bw, "%s%d\n", currentPrefix, s.Current)
		}
		writeRows(bw, s.Input, func(i int) string {
			var m string
			if i == s.Dragging {
				m += string(liftMarker)
			}
			if i == s.Proposed {
				m += string(dropMarker)
			}
			return m
		})
		fmt.Fprintln(bw, separator)
		writeRows(bw, s.Want, func(i int) string {
			if i == s.WantDrop {
				return string(dropMarker)
			}
			return ""
		})
		fmt.Fprintln(bw, terminator)
	}
	return bw.Flush()
}

func writeRows(w io.Writer, s grid.Sequence, marker func(int) string) {
	for _, row := range layout.Rows(s) {
		var b strings.Builder
		b.WriteString("|")
		for _, idx := range row.Indices {
			it := s.At(idx)
			fmt.Fprintf(&b, " %s%d%s |", it.Density.Symbol(), it.Value, marker(idx))
		}
		fmt.Fprintln(w, b.String())
	}
}
