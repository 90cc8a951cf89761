//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}

func TestAircraftTemplate_Validation(t *testing.T) {
	tests := []struct {
		name     string
		template AircraftTemplate
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid template",
			template: AircraftTemplate{Name: "Reppu", Type: "KS", Attack: 10, Proficiency: intPtr(7)},
		},
		{
			name:     "missing name",
			template: AircraftTemplate{Type: "KS"},
			wantErr:  true,
			errMsg:   "required",
		},
		{
			name:     "missing type",
			template: AircraftTemplate{Name: "Reppu"},
			wantErr:  true,
			errMsg:   "required",
		},
		{
			name:     "negative attack",
			template: AircraftTemplate{Name: "Reppu", Type: "KS", Attack: -1},
			wantErr:  true,
			errMsg:   "gte",
		},
		{
			name:     "proficiency above max",
			template: AircraftTemplate{Name: "Reppu", Type: "KS", Proficiency: intPtr(8)},
			wantErr:  true,
			errMsg:   "lte",
		},
		{
			name:     "improvement above max",
			template: AircraftTemplate{Name: "Reppu", Type: "KS", Improvement: 11},
			wantErr:  true,
			errMsg:   "lte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.template.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShipTemplate_Validation(t *testing.T) {
	valid := ShipTemplate{Name: "Akagi", Slots: []int{18, 18, 27, 10}}
	assert.NoError(t, valid.Validate())

	noName := ShipTemplate{Slots: []int{18}}
	assert.Error(t, noName.Validate())

	negative := ShipTemplate{Name: "Broken", Slots: []int{18, -2}}
	assert.Error(t, negative.Validate())
}

func TestLoadout_Validation(t *testing.T) {
	loadout := Loadout{Ships: make([]LoadoutShip, MaxLoadoutShips)}
	assert.NoError(t, loadout.Validate())

	loadout.Ships = append(loadout.Ships, LoadoutShip{Ship: "one too many"})
	err := loadout.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max")
}

func TestLoadoutShip_Included(t *testing.T) {
	assert.True(t, LoadoutShip{}.Included())
	assert.True(t, LoadoutShip{Include: boolPtr(true)}.Included())
	assert.False(t, LoadoutShip{Include: boolPtr(false)}.Included())
}

func TestLoadout_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"mode": "airDefence",
		"highAltitude": true,
		"ships": [
			{
				"ship": "Base 1",
				"slots": [
					{"slot": 1, "aircraft": "Shusui", "improvement": "7"},
					{"slot": 2, "aircraft": "Raiden", "improvement": 3, "suppressSkillBonus": true},
					{"slot": 3, "aircraft": "Me163B", "improvement": null}
				]
			},
			{"ship": "Base 2", "include": false}
		]
	}`

	var loadout Loadout
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &loadout))
	assert.Equal(t, "airDefence", loadout.Mode)
	assert.True(t, loadout.HighAltitude)
	require.Len(t, loadout.Ships, 2)

	slots := loadout.Ships[0].Slots
	require.Len(t, slots, 3)
	assert.Equal(t, "7", slots[0].Improvement)
	assert.Equal(t, 3.0, slots[1].Improvement)
	assert.Nil(t, slots[2].Improvement)
	assert.Nil(t, slots[0].SuppressSkillBonus)
	require.NotNil(t, slots[1].SuppressSkillBonus)
	assert.True(t, *slots[1].SuppressSkillBonus)
	assert.False(t, loadout.Ships[1].Included())
}
