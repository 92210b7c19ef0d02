package grid

import (
	"fmt"
	"strings"

	"github.com/briancoyner/interactive-grid/pkg/errors"
)

// Density is the width class of an item.
type Density int

const (
	// Compact items occupy one column (half a row).
	Compact Density = iota
	// Regular items occupy a full row.
	Regular
)

// String returns "Compact" or "Regular".
func (d Density) String() string {
	switch d {
	case Compact:
		return "Compact"
	case Regular:
		return "Regular"
	}
	return fmt.Sprintf("Density(%d)", int(d))
}

// Symbol returns the single-letter form used in layout strings ("C" or "R").
func (d Density) Symbol() string {
	if d == Regular {
		return "R"
	}
	return "C"
}

// ParseDensity accepts "C", "R", "compact" or "regular" in any case.
func ParseDensity(s string) (Density, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "compact":
		return Compact, nil
	case "r", "regular":
		return Regular, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown density %q (want C or R)", s)
}

// MarshalText encodes the density as "compact" or "regular".
func (d Density) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(d.String())), nil
}

// UnmarshalText accepts any form understood by ParseDensity.
func (d *Density) UnmarshalText(b []byte) error {
	v, err := ParseDensity(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Item is a single grid entry.
//
// Value is the item's identity and must be unique within a Sequence.
// AllowsMenu is display payload only; it never affects layout.
type Item struct {
	Value      int     `json:"value"`
	Density    Density `json:"density"`
	AllowsMenu bool    `json:"allows_menu,omitempty"`
}

// C returns a compact item with the given identity.
func C(value int) Item {
	return Item{Value: value, Density: Compact, AllowsMenu: true}
}

// R returns a regular item with the given identity.
func R(value int) Item {
	return Item{Value: value, Density: Regular, AllowsMenu: true}
}

// IsCompact reports whether the item is half-row wide.
func (it Item) IsCompact() bool { return it.Density == Compact }

// String renders the item as C(3) or R(4).
func (it Item) String() string {
	return fmt.Sprintf("%s(%d)", it.Density.Symbol(), it.Value)
}
