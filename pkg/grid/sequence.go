package grid

import (
	"slices"
	"strconv"
	"strings"

	"github.com/briancoyner/interactive-grid/pkg/errors"
)

// Sequence is an immutable ordered list of items with unique identities.
//
// The zero value is an empty sequence. Reordering operations return a new
// Sequence and leave the receiver untouched.
type Sequence struct {
	items []Item
}

// NewSequence builds a sequence from items.
// It returns a DUPLICATE_IDENTITY error if two items share a Value.
func NewSequence(items ...Item) (Sequence, error) {
	seen := make(map[int]int, len(items))
	for i, it := range items {
		if j, dup := seen[it.Value]; dup {
			return Sequence{}, errors.New(errors.ErrCodeDuplicateIdentity,
				"identity %d appears at index %d and %d", it.Value, j, i)
		}
		seen[it.Value] = i
	}
	return Sequence{items: slices.Clone(items)}, nil
}

// MustSequence is like NewSequence but panics on error.
// It is intended for fixtures and examples.
func MustSequence(items ...Item) Sequence {
	s, err := NewSequence(items...)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSequence parses a layout string such as "R0 C1 C2".
//
// Tokens are separated by whitespace, commas or pipes. Each token is a
// density letter followed by the identity; the C(1) form is also accepted.
func ParseSequence(s string) (Sequence, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ',' || r == '|'
	})
	items := make([]Item, 0, len(fields))
	for _, f := range fields {
		it, err := parseItem(f)
		if err != nil {
			return Sequence{}, err
		}
		items = append(items, it)
	}
	return NewSequence(items...)
}

func parseItem(tok string) (Item, error) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 {
		return Item{}, errors.New(errors.ErrCodeInvalidInput, "invalid item %q", tok)
	}
	d, err := ParseDensity(tok[:1])
	if err != nil {
		return Item{}, err
	}
	num := strings.TrimSuffix(strings.TrimPrefix(tok[1:], "("), ")")
	v, err := strconv.Atoi(num)
	if err != nil {
		return Item{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid identity in %q", tok)
	}
	return Item{Value: v, Density: d, AllowsMenu: true}, nil
}

// Len returns the number of items.
func (s Sequence) Len() int { return len(s.items) }

// IsEmpty reports whether the sequence has no items.
func (s Sequence) IsEmpty() bool { return len(s.items) == 0 }

// At returns the item at index i. It panics if i is out of range.
func (s Sequence) At(i int) Item { return s.items[i] }

// Items returns a copy of the items.
func (s Sequence) Items() []Item { return slices.Clone(s.items) }

// All iterates over index and item pairs.
func (s Sequence) All() func(yield func(int, Item) bool) {
	return func(yield func(int, Item) bool) {
		for i, it := range s.items {
			if !yield(i, it) {
				return
			}
		}
	}
}

// IndexOf returns the index of the item with the given identity, or -1.
func (s Sequence) IndexOf(value int) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.Value == value })
}

// Values returns the identities in order.
func (s Sequence) Values() []int {
	out := make([]int, len(s.items))
	for i, it := range s.items {
		out[i] = it.Value
	}
	return out
}

// Densities returns the densities in order.
func (s Sequence) Densities() []Density {
	out := make([]Density, len(s.items))
	for i, it := range s.items {
		out[i] = it.Density
	}
	return out
}

// Equal reports whether both sequences hold the same items in the same order.
func (s Sequence) Equal(other Sequence) bool {
	return slices.Equal(s.items, other.items)
}

// String renders the sequence in the layout string form accepted by ParseSequence.
func (s Sequence) String() string {
	parts := make([]string, len(s.items))
	for i, it := range s.items {
		parts[i] = it.Density.Symbol() + strconv.Itoa(it.Value)
	}
	return strings.Join(parts, " ")
}

// withItems wraps an already validated item slice without copying.
func withItems(items []Item) Sequence {
	return Sequence{items: items}
}
