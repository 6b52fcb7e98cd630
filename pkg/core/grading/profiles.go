package grading

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// Weights are the profile-dependent penalty/bonus magnitudes used by the
// rule set. Only the rules that differ across investment strategies are
// profile-weighted; the rest carry fixed deltas.
type Weights struct {
	OERHighPenalty float64 `yaml:"oer_high_penalty"`
	CapLowPenalty  float64 `yaml:"cap_low_penalty"`
	IRRHighBonus   float64 `yaml:"irr_high_bonus"`
}

// Table maps a normalized scoring-profile name to its weights.
type Table map[string]Weights

// DefaultProfile is the fallback for empty or unrecognized profile names.
// Falling back is documented behavior, not a silent failure: a workspace
// with a stale profile setting still grades deterministically.
const DefaultProfile = "core"

// DefaultTable returns the built-in profile set. Core punishes expense and
// yield weakness hardest; value-add and growth trade some of that sting for
// a bigger high-IRR reward.
func DefaultTable() Table {
	return Table{
		"core":      {OERHighPenalty: 18, CapLowPenalty: 12, IRRHighBonus: 4},
		"value-add": {OERHighPenalty: 14, CapLowPenalty: 10, IRRHighBonus: 6},
		"growth":    {OERHighPenalty: 12, CapLowPenalty: 8, IRRHighBonus: 8},
	}
}

// Lookup resolves a profile name case-insensitively, falling back to
// DefaultProfile when the name is unknown.
func (t Table) Lookup(name string) Weights {
	key := strings.ToLower(strings.TrimSpace(name))
	if w, ok := t[key]; ok {
		return w
	}
	return t[DefaultProfile]
}

// MergeYAML overlays profile weights parsed from YAML onto the table,
// keyed by lowercased profile name. Unknown names add new profiles;
// known names are replaced wholesale.
func (t Table) MergeYAML(data []byte) error {
	var parsed map[string]Weights
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse profile config: %w", err)
	}
	for name, w := range parsed {
		t[strings.ToLower(strings.TrimSpace(name))] = w
	}
	return nil
}
