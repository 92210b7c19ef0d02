package grid

import (
	"math/rand/v2"
	"slices"

	"github.com/briancoyner/interactive-grid/pkg/errors"
)

// Preset names accepted by Preset.
const (
	PresetCompact = "compact"
	PresetRegular = "regular"
	PresetMix     = "mix"
	PresetRandom  = "random"
)

// PresetNames lists the built-in presets in display order.
var PresetNames = []string{PresetCompact, PresetRegular, PresetMix, PresetRandom}

// Preset returns one of the built-in starting arrangements.
// seed only affects PresetRandom; the same seed yields the same sequence.
func Preset(name string, seed uint64) (Sequence, error) {
	switch name {
	case PresetCompact:
		return allOf(Compact, 6), nil
	case PresetRegular:
		return allOf(Regular, 6), nil
	case PresetMix:
		return MustSequence(
			Item{Value: 1, Density: Regular, AllowsMenu: true},
			Item{Value: 2, Density: Compact, AllowsMenu: true},
			Item{Value: 3, Density: Compact, AllowsMenu: true},
			Item{Value: 4, Density: Compact, AllowsMenu: true},
			Item{Value: 5, Density: Compact, AllowsMenu: true},
			Item{Value: 6, Density: Regular, AllowsMenu: true},
			Item{Value: 7, Density: Compact, AllowsMenu: true},
			Item{Value: 8, Density: Compact, AllowsMenu: true},
			Item{Value: 9, Density: Regular, AllowsMenu: true},
		), nil
	case PresetRandom:
		return random(seed), nil
	}
	return Sequence{}, errors.New(errors.ErrCodePresetNotFound, "unknown preset %q", name)
}

// allOf returns n items of one density with identities 1..n.
// Regular items never offer a menu, matching the demo data.
func allOf(d Density, n int) Sequence {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Value: i + 1, Density: d, AllowsMenu: d == Compact}
	}
	return withItems(items)
}

// random mixes 1-9 compact items (identities from 0) with 0-9 regular
// items (identities from 100) and shuffles them.
func random(seed uint64) Sequence {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	compact := 1 + rng.IntN(9)
	regular := rng.IntN(10)

	items := make([]Item, 0, compact+regular)
	for v := 0; v < compact; v++ {
		items = append(items, Item{Value: v, Density: Compact, AllowsMenu: v%2 == 0})
	}
	for v := 100; v < 100+regular; v++ {
		items = append(items, Item{Value: v, Density: Regular, AllowsMenu: v%3 == 0})
	}
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	return withItems(slices.Clip(items))
}
