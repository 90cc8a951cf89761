package mastery

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/airpower-calculator/internal/catalog"
)

const (
	// MinImprovement and MaxImprovement bound an aircraft's improvement level.
	MinImprovement = 0
	MaxImprovement = 10
	// DefaultProficiency is used when a spec leaves proficiency unset.
	DefaultProficiency = 7
)

// Aircraft is one equipped unit. It is a plain value; copies are independent.
type Aircraft struct {
	Name        string
	Type        catalog.AircraftType
	Attack      float64
	Intercept   float64
	AntiBomber  float64
	Search      float64
	Proficiency int
	Improvement int
}

// AircraftSpec holds the inputs for NewAircraft. Type is a catalog id or code.
type AircraftSpec struct {
	Name        string
	Type        string
	Attack      float64
	Intercept   float64
	AntiBomber  float64
	Search      float64
	Proficiency *int
	Improvement any
}

// NewAircraft resolves the spec's type against the catalog and builds an Aircraft.
func NewAircraft(cat *catalog.Catalog, spec AircraftSpec) (Aircraft, error) {
	typ, err := cat.Lookup(spec.Type)
	if err != nil {
		return Aircraft{}, fmt.Errorf("aircraft %q: %w", spec.Name, err)
	}

	proficiency := DefaultProficiency
	if spec.Proficiency != nil {
		proficiency = *spec.Proficiency
	}

	return Aircraft{
		Name:        spec.Name,
		Type:        typ,
		Attack:      spec.Attack,
		Intercept:   spec.Intercept,
		AntiBomber:  spec.AntiBomber,
		Search:      spec.Search,
		Proficiency: proficiency,
		Improvement: ClampImprovement(spec.Improvement),
	}, nil
}

// Improve returns a copy of the aircraft with its improvement level set from raw.
func (a Aircraft) Improve(raw any) Aircraft {
	a.Improvement = ClampImprovement(raw)
	return a
}

// String returns "name(type)".
func (a Aircraft) String() string {
	return fmt.Sprintf("%s(%s)", a.Name, a.Type.ID)
}

// ClampImprovement normalises user input into an improvement level in [0, 10].
// Non-numeric input yields 0; fractional values are truncated.
func ClampImprovement(raw any) int {
	var v float64
	switch n := raw.(type) {
	case nil:
		return MinImprovement
	case int:
		v = float64(n)
	case int8:
		v = float64(n)
	case int16:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case uint:
		v = float64(n)
	case uint8:
		v = float64(n)
	case uint16:
		v = float64(n)
	case uint32:
		v = float64(n)
	case uint64:
		v = float64(n)
	case float32:
		v = float64(n)
	case float64:
		v = n
	case json.Number:
		return ClampImprovement(string(n))
	case string:
		parsed, ok := parseNumber(n)
		if !ok {
			return MinImprovement
		}
		v = parsed
	default:
		return MinImprovement
	}

	if math.IsNaN(v) {
		return MinImprovement
	}
	if v < MinImprovement {
		return MinImprovement
	}
	if v > MaxImprovement {
		return MaxImprovement
	}
	return int(v)
}

// parseNumber reads a decimal number. Infinity and NaN spellings are not numbers;
// out-of-range values parse to ±Inf so they clamp.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return float64(i), true
	}

	word := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(word, "inf") || strings.HasPrefix(word, "nan") {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}
