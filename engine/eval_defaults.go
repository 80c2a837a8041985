package engine

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Weights scales each evaluation term. Material is applied to the ratio-scaled
// material balance, the rest to small integer counts.
type Weights struct {
	Material  int32
	Formation int32
	Tempo     int32
	Spread    int32
	Outpost   int32
	BackRank  int32
}

var (
	DefaultWeights  = Weights{Material: 90, Formation: 5, Tempo: 5, Spread: 15, Outpost: 5, BackRank: 10}
	MaterialWeights = Weights{Material: 90}
	// Older tuning without the outpost term.
	ClassicWeights = Weights{Material: 90, Formation: 5, Tempo: 5, Spread: 15, BackRank: 10}
)

var presets = map[string]Weights{
	"default":  DefaultWeights,
	"material": MaterialWeights,
	"classic":  ClassicWeights,
}

var ErrUnknownPreset = errors.New("unknown evaluation preset")

// PresetByName looks up a weight preset, case-insensitively.
func PresetByName(name string) (Weights, error) {
	w, ok := presets[strings.ToLower(name)]
	if !ok {
		return Weights{}, errors.Wrapf(ErrUnknownPreset, "%q (have %s)", name, strings.Join(PresetNames(), ", "))
	}
	return w, nil
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}
