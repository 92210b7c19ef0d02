package render

import (
	"strings"

	"github.com/briancoyner/interactive-grid/pkg/errors"
)

// Format is an output format.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
)

// Formats lists the supported formats.
var Formats = []Format{FormatSVG, FormatDOT, FormatJSON}

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatDOT, FormatSVG:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeUnsupported, "unsupported format %q (want svg, dot or json)", s)
}

// Options controls marks and labels.
type Options struct {
	// Lift is the index of the dragged item, or -1.
	Lift int
	// Drop is the index of the drop placeholder, or -1.
	Drop int
	// Detailed adds the row role and identity to each label.
	Detailed bool
}

// DefaultOptions returns options with no marks.
func DefaultOptions() Options {
	return Options{Lift: -1, Drop: -1}
}
