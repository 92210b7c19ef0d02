package scenario

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
)

// Scenario is one drag update and its expected outcome.
type Scenario struct {
	Name       string
	Input      grid.Sequence
	Dragging   int
	Current    int
	Proposed   int
	Want       grid.Sequence
	WantDrop   int
	Skip       bool
	SkipReason string
}

// Validate checks that the scenario is well formed: a valid name, indices
// inside the input, and an expectation holding the same items.
func (s Scenario) Validate() error {
	if err := errors.ValidateScenarioName(s.Name); err != nil {
		return err
	}
	n := s.Input.Len()
	if n == 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "%s: empty input", s.Name)
	}
	for _, idx := range []struct {
		name  string
		value int
	}{
		{"dragging", s.Dragging},
		{"current", s.Current},
		{"proposed", s.Proposed},
		{"want_drop", s.WantDrop},
	} {
		if idx.value < 0 || idx.value >= n {
			return errors.New(errors.ErrCodeInvalidScenario,
				"%s: %s index %d outside [0, %d)", s.Name, idx.name, idx.value, n)
		}
	}
	if s.Want.Len() != n {
		return errors.New(errors.ErrCodeInvalidScenario,
			"%s: expected %d items, input has %d", s.Name, s.Want.Len(), n)
	}
	in, want := itemSet(s.Input), itemSet(s.Want)
	if !in.Equal(want) {
		missing := in.Difference(want).ToSlice()
		slices.Sort(missing)
		return errors.New(errors.ErrCodeInvalidScenario,
			"%s: expectation is missing %s", s.Name, strings.Join(missing, " "))
	}
	return nil
}

// itemSet returns the layout tokens ("C1", "R0") of s as a set.
func itemSet(s grid.Sequence) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, it := range s.All() {
		set.Add(it.Density.Symbol() + strconv.Itoa(it.Value))
	}
	return set
}

// Status is the outcome of running a scenario.
type Status string

// Scenario outcomes.
const (
	StatusPass  Status = "pass"
	StatusFail  Status = "fail"
	StatusSkip  Status = "skip"
	StatusError Status = "error"
)

// Result is the outcome of running one scenario.
type Result struct {
	Scenario Scenario
	Got      grid.Sequence
	GotDrop  int
	Branch   grid.Branch
	Passed   bool
	Status   Status
	Err      error
}

// Diff describes a failing result in one line. It returns "" for passes.
func (r Result) Diff() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Passed:
		return ""
	}
	return fmt.Sprintf("got [%s] drop %d, want [%s] drop %d",
		r.Got, r.GotDrop, r.Scenario.Want, r.Scenario.WantDrop)
}

// Run resolves s and compares the outcome with its expectation.
// Skipped scenarios are still resolved so their current output is visible,
// but they are reported with StatusSkip.
func Run(s Scenario) Result {
	res, err := grid.Explain(s.Input, s.Dragging, s.Current, s.Proposed)
	r := Result{Scenario: s}
	if err != nil {
		r.Err = err
		r.Status = StatusError
	} else {
		r.Got = res.Sequence
		r.GotDrop = res.DropIndex
		r.Branch = res.Branch
		r.Passed = sameLayout(res.Sequence, s.Want) && res.DropIndex == s.WantDrop
		r.Status = StatusFail
		if r.Passed {
			r.Status = StatusPass
		}
	}
	if s.Skip {
		r.Status = StatusSkip
	}
	return r
}

// RunAll runs every scenario in order. It stops early if ctx is done.
func RunAll(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, Run(s))
	}
	return results, nil
}

// Summary counts results by status.
type Summary struct {
	Total, Passed, Failed, Skipped, Errored int
}

// OK reports whether no scenario failed or errored.
func (s Summary) OK() bool { return s.Failed == 0 && s.Errored == 0 }

// Summarize counts results by status.
func Summarize(results []Result) Summary {
	sum := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			sum.Passed++
		case StatusFail:
			sum.Failed++
		case StatusSkip:
			sum.Skipped++
		case StatusError:
			sum.Errored++
		}
	}
	return sum
}

// sameLayout compares identities and densities, ignoring display payload.
func sameLayout(a, b grid.Sequence) bool {
	return a.String() == b.String()
}
