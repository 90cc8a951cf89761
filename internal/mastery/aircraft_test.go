package mastery

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/jonathan/airpower-calculator/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampImprovement(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "nil", input: nil, want: 0},
		{name: "in range", input: 5, want: 5},
		{name: "upper bound", input: 10, want: 10},
		{name: "negative", input: -3, want: 0},
		{name: "above max", input: 11, want: 10},
		{name: "int64", input: int64(7), want: 7},
		{name: "uint8", input: uint8(200), want: 10},
		{name: "float truncated", input: 4.9, want: 4},
		{name: "NaN", input: math.NaN(), want: 0},
		{name: "positive infinity", input: math.Inf(1), want: 10},
		{name: "numeric string", input: " 6 ", want: 6},
		{name: "float string", input: "2.5", want: 2},
		{name: "string above max", input: "42", want: 10},
		{name: "non-numeric string", input: "max", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "infinity string", input: "Infinity", want: 0},
		{name: "inf string", input: "inf", want: 0},
		{name: "negative inf string", input: "-Inf", want: 0},
		{name: "nan string", input: "NaN", want: 0},
		{name: "overflowing exponent", input: "1e400", want: 10},
		{name: "negative overflowing exponent", input: "-1e400", want: 0},
		{name: "json number", input: json.Number("3"), want: 3},
		{name: "bool", input: true, want: 0},
		{name: "slice", input: []int{1}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampImprovement(tt.input)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, MinImprovement)
			assert.LessOrEqual(t, got, MaxImprovement)
		})
	}
}

func TestAircraftImprove_ReturnsCopy(t *testing.T) {
	base := newAircraft(t, AircraftSpec{Name: "reppu", Type: "KS", Attack: 10})
	improved := base.Improve(7)

	assert.Equal(t, 0, base.Improvement)
	assert.Equal(t, 7, improved.Improvement)
	assert.Equal(t, 0, improved.Improve("nope").Improvement)
}

func TestNewAircraft(t *testing.T) {
	ac := newAircraft(t, AircraftSpec{Name: "reppu", Type: catalog.CarrierFighter, Attack: 10, Improvement: 15})
	assert.Equal(t, DefaultProficiency, ac.Proficiency)
	assert.Equal(t, MaxImprovement, ac.Improvement)
	assert.Equal(t, "reppu(kansen)", ac.String())

	zero := 0
	ac = newAircraft(t, AircraftSpec{Name: "reppu", Type: "KS", Proficiency: &zero})
	assert.Equal(t, 0, ac.Proficiency)
}

func TestNewAircraft_UnknownType(t *testing.T) {
	_, err := NewAircraft(catalog.Standard(), AircraftSpec{Name: "zeppelin", Type: "LTA"})
	require.Error(t, err)

	var unknown *catalog.UnknownAircraftTypeError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "LTA", unknown.ID)
}

func TestSlotScore_LandAttackerSqrtCorrection(t *testing.T) {
	rikko := newAircraft(t, AircraftSpec{Name: "ginga", Type: "RK", Attack: 10}).Improve(4)

	assert.InDelta(t, 1.0, improvementBonus(rikko), 1e-9)

	score, err := SlotScore(Sortie, 18, rikko, true)
	require.NoError(t, err)
	assert.Equal(t, 46, score)
}

func TestSlotScore_SkillBonus(t *testing.T) {
	fighter := newAircraft(t, AircraftSpec{Name: "reppu", Type: "KS"})

	score, err := SlotScore(AirDefense, 0, fighter, false)
	require.NoError(t, err)
	assert.Equal(t, 25, score)

	score, err = SlotScore(AirDefense, 0, fighter, true)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestHighAltitudeRevision(t *testing.T) {
	expected := map[int]float64{-1: 0.5, 0: 0.5, 1: 0.8, 2: 1.1, 3: 1.2, 4: 1.2, 12: 1.2}
	for rockets, want := range expected {
		assert.Equal(t, want, HighAltitudeRevision(rockets), "rockets=%d", rockets)
	}

	prev := HighAltitudeRevision(0)
	for rockets := 1; rockets <= 10; rockets++ {
		cur := HighAltitudeRevision(rockets)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestScoutingFactor(t *testing.T) {
	tests := []struct {
		typ    string
		search float64
		sortie float64
		air    float64
	}{
		{typ: "KT", search: 9, sortie: 1, air: 1.3},
		{typ: "KT", search: 8, sortie: 1, air: 1.2},
		{typ: "KT", search: 5, sortie: 1, air: 1.2},
		{typ: "RT", search: 9, sortie: 1.18, air: 1.18},
		{typ: "RT", search: 8, sortie: 1.15, air: 1.18},
		{typ: "ST", search: 9, sortie: 1, air: 1.16},
		{typ: "ST", search: 8, sortie: 1, air: 1.13},
		{typ: "ST", search: 7, sortie: 1, air: 1.1},
		{typ: "KS", search: 9, sortie: 1, air: 1},
	}
	for _, tt := range tests {
		ac := newAircraft(t, AircraftSpec{Name: "scout", Type: tt.typ, Search: tt.search})
		assert.Equal(t, tt.sortie, ScoutingFactor(ac, Sortie), "%s search %v sortie", tt.typ, tt.search)
		assert.Equal(t, tt.air, ScoutingFactor(ac, AirDefense), "%s search %v airDefense", tt.typ, tt.search)
	}
}

func TestShipScoutingRevision_Product(t *testing.T) {
	s := newShip(t, "base", []int{4, 4, 18}, true)
	equip(t, s, 1, AircraftSpec{Name: "saiun", Type: "KT", Search: 9})
	equip(t, s, 2, AircraftSpec{Name: "type2", Type: "RT", Search: 8})

	rev, err := s.ScoutingRevision(AirDefense)
	require.NoError(t, err)
	assert.InDelta(t, 1.3*1.18, rev, 1e-9)

	rev, err = s.ScoutingRevision(Sortie)
	require.NoError(t, err)
	assert.InDelta(t, 1.15, rev, 1e-9)
}
