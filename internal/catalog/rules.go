package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// CorrectionKind selects how an improvement level turns into extra attack.
type CorrectionKind int8

const (
	CorrectionNone   CorrectionKind = iota // no effect
	CorrectionLinear                       // coefficient * level
	CorrectionSqrt                         // coefficient * sqrt(level)
)

var correctionKindNames = map[CorrectionKind]string{
	CorrectionNone:   "none",
	CorrectionLinear: "linear",
	CorrectionSqrt:   "sqrt",
}

func (k CorrectionKind) String() string {
	if name, ok := correctionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("CorrectionKind(%d)", int(k))
}

// ParseCorrectionKind converts a config string into a CorrectionKind.
func ParseCorrectionKind(s string) (CorrectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CorrectionNone, nil
	case "linear":
		return CorrectionLinear, nil
	case "sqrt":
		return CorrectionSqrt, nil
	default:
		return CorrectionNone, fmt.Errorf("unknown correction kind %q", s)
	}
}

// CorrectionRule is the improvement correction registered for an aircraft type.
// The zero value is the "no correction" rule.
type CorrectionRule struct {
	Kind        CorrectionKind
	Coefficient float64
}

// Linear returns a rule scaling linearly with the improvement level.
func Linear(coefficient float64) CorrectionRule {
	return CorrectionRule{Kind: CorrectionLinear, Coefficient: coefficient}
}

// Sqrt returns a rule scaling with the square root of the improvement level.
func Sqrt(coefficient float64) CorrectionRule {
	return CorrectionRule{Kind: CorrectionSqrt, Coefficient: coefficient}
}

// Apply returns the attack bonus granted at the given improvement level.
func (r CorrectionRule) Apply(level int) float64 {
	if level <= 0 {
		return 0
	}
	switch r.Kind {
	case CorrectionLinear:
		return r.Coefficient * float64(level)
	case CorrectionSqrt:
		return r.Coefficient * math.Sqrt(float64(level))
	default:
		return 0
	}
}

func (r CorrectionRule) validate() error {
	if _, ok := correctionKindNames[r.Kind]; !ok {
		return fmt.Errorf("invalid correction kind %d", r.Kind)
	}
	if math.IsNaN(r.Coefficient) || math.IsInf(r.Coefficient, 0) {
		return fmt.Errorf("correction coefficient must be finite")
	}
	return nil
}

// SearchTier applies Factor when an aircraft's search value is at least MinSearch.
type SearchTier struct {
	MinSearch float64 `json:"minSearch" yaml:"minSearch"`
	Factor    float64 `json:"factor" yaml:"factor" validate:"gt=0"`
}

// SearchTiers is an ordered set of tiers; the highest tier reached wins.
type SearchTiers []SearchTier

// Constant returns tiers yielding the same factor for any search value.
func Constant(factor float64) SearchTiers {
	return SearchTiers{{MinSearch: 0, Factor: factor}}
}

// Factor returns the revision factor for the given search value, or 1 when no tier
// is reached.
func (t SearchTiers) Factor(search float64) float64 {
	for _, tier := range t {
		if search >= tier.MinSearch {
			return tier.Factor
		}
	}
	return 1
}

// ScoutingRule holds the scouting revision tiers for each scoring mode.
type ScoutingRule struct {
	Sortie     SearchTiers `json:"sortie,omitempty" yaml:"sortie,omitempty"`
	AirDefense SearchTiers `json:"airDefense,omitempty" yaml:"airDefense,omitempty"`
}

// normalized returns a copy with tiers sorted by descending MinSearch.
func (r ScoutingRule) normalized() ScoutingRule {
	return ScoutingRule{
		Sortie:     sortTiers(r.Sortie),
		AirDefense: sortTiers(r.AirDefense),
	}
}

func sortTiers(tiers SearchTiers) SearchTiers {
	if len(tiers) == 0 {
		return nil
	}
	out := make(SearchTiers, len(tiers))
	copy(out, tiers)
	sort.SliceStable(out, func(i, j int) bool { return out[i].MinSearch > out[j].MinSearch })
	return out
}
