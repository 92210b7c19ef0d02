package scenario

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/briancoyner/interactive-grid/pkg/errors"
	"github.com/briancoyner/interactive-grid/pkg/grid"
)

//go:embed builtin.toml
var builtinSuite []byte

// suiteFile is the TOML document layout.
type suiteFile struct {
	Scenario []scenarioEntry `toml:"scenario"`
}

type scenarioEntry struct {
	Name     string `toml:"name"`
	Input    string `toml:"input"`
	Dragging int    `toml:"dragging"`
	Current  *int   `toml:"current"`
	Proposed int    `toml:"proposed"`
	Want     string `toml:"want"`
	WantDrop *int   `toml:"want_drop"`
	Skip     string `toml:"skip,omitempty"`
}

// Builtin returns the bundled regression suite.
func Builtin() []Scenario {
	s, err := DecodeTOML(bytes.NewReader(builtinSuite))
	if err != nil {
		panic("scenario: builtin suite: " + err.Error())
	}
	return s
}

// LoadSuite reads a scenario file. Files ending in .toml use the TOML
// format; anything else is read as the visual format.
func LoadSuite(path string) ([]Scenario, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return DecodeTOML(f)
	}
	return ParseVisual(f)
}

// DecodeTOML reads a suite of [[scenario]] tables.
// current defaults to dragging and want_drop defaults to proposed.
func DecodeTOML(r io.Reader) ([]Scenario, error) {
	var doc suiteFile
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scenario suite")
	}

	out := make([]Scenario, 0, len(doc.Scenario))
	for _, e := range doc.Scenario {
		s, err := e.scenario()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (e scenarioEntry) scenario() (Scenario, error) {
	input, err := grid.ParseSequence(e.Input)
	if err != nil {
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "%s: input", e.Name)
	}
	want, err := grid.ParseSequence(e.Want)
	if err != nil {
		return Scenario{}, errors.Wrap(errors.ErrCodeInvalidScenario, err, "%s: want", e.Name)
	}
	s := Scenario{
		Name:       e.Name,
		Input:      input,
		Dragging:   e.Dragging,
		Current:    e.Dragging,
		Proposed:   e.Proposed,
		Want:       want,
		WantDrop:   e.Proposed,
		Skip:       e.Skip != "",
		SkipReason: e.Skip,
	}
	if e.Current != nil {
		s.Current = *e.Current
	}
	if e.WantDrop != nil {
		s.WantDrop = *e.WantDrop
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// EncodeTOML writes scenarios as a TOML suite.
func EncodeTOML(w io.Writer, scenarios ...Scenario) error {
	doc := suiteFile{Scenario: make([]scenarioEntry, len(scenarios))}
	for i, s := range scenarios {
		current, wantDrop := s.Current, s.WantDrop
		doc.Scenario[i] = scenarioEntry{
			Name:     s.Name,
			Input:    s.Input.String(),
			Dragging: s.Dragging,
			Current:  &current,
			Proposed: s.Proposed,
			Want:     s.Want.String(),
			WantDrop: &wantDrop,
			Skip:     skipValue(s),
		}
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode scenario suite")
	}
	return nil
}

func skipValue(s Scenario) string {
	switch {
	case !s.Skip:
		return ""
	case s.SkipReason == "":
		return "pending"
	}
	return s.SkipReason
}
