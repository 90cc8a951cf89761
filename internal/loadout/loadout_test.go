package loadout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/airpower-calculator/internal/catalog"
	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/jonathan/airpower-calculator/internal/registry"
	"github.com/jonathan/airpower-calculator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Load(catalog.Standard(), "../../testdata/aircraft.json", "../../testdata/ships.json")
	require.NoError(t, err)
	return reg
}

func boolPtr(v bool) *bool {
	return &v
}

func TestEvaluate_HighAltitudeFixture(t *testing.T) {
	l, err := LoadFile("../../testdata/loadout.json")
	require.NoError(t, err)

	eval, err := Evaluate(testRegistry(t), l, Options{})
	require.NoError(t, err)

	_, err = uuid.Parse(eval.ID)
	assert.NoError(t, err)
	assert.Equal(t, "high-altitude defense", eval.Name)
	assert.Empty(t, eval.Warnings)

	report := eval.Report
	assert.Equal(t, mastery.AirDefense, report.Mode)
	require.Len(t, report.Ships, 1, "excluded ships are left out")
	assert.Equal(t, 454, report.Subtotal)
	assert.Equal(t, 2, report.RocketCount)
	assert.Equal(t, 499, report.Total)
}

func TestEvaluate_SortieYAMLFixture(t *testing.T) {
	l, err := LoadFile("../../testdata/sortie.yaml")
	require.NoError(t, err)

	eval, err := Evaluate(testRegistry(t), l, Options{})
	require.NoError(t, err)

	require.Len(t, eval.Report.Ships, 2)
	assert.Equal(t, 257, eval.Report.Ships[0].Score)
	assert.Equal(t, 280, eval.Report.Ships[1].Score)
	assert.Equal(t, 537, eval.Report.Total)
	assert.True(t, eval.Report.Ships[0].Slots[3].SuppressSkillBonus, "bombers default to no skill bonus")
}

func TestBuild_ExplicitSuppressionOverridesDefault(t *testing.T) {
	l := types.Loadout{
		Mode: "airDefence",
		Ships: []types.LoadoutShip{{
			Ship: "Base Air Squadron 1",
			Slots: []types.LoadoutSlot{
				{Slot: 1, Aircraft: "Saiun", SuppressSkillBonus: boolPtr(false)},
				{Slot: 2, Aircraft: "Type 1 Fighter Hayabusa Model II"},
			},
		}},
	}

	plan, err := Build(testRegistry(t), l, Options{})
	require.NoError(t, err)
	assert.Equal(t, mastery.AirDefense, plan.Mode)

	slot, err := plan.Fleet.Ships[0].Slot(1)
	require.NoError(t, err)
	assert.False(t, slot.SuppressSkillBonus)

	eval, err := plan.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, 3, eval.Report.Ships[0].Slots[0].Score)
}

func TestBuild_Warnings(t *testing.T) {
	l := types.Loadout{
		Ships: []types.LoadoutShip{
			{Ship: "Yamato"},
			{
				Ship:  "Akagi",
				Slots: []types.LoadoutSlot{{Slot: 1, Aircraft: "Reppu"}, {Slot: 2, Aircraft: "Zero Fighter Model 99"}},
			},
		},
	}

	plan, err := Build(testRegistry(t), l, Options{})
	require.NoError(t, err)
	require.Len(t, plan.Warnings, 2)
	assert.Equal(t, Warning{Ship: "Yamato", Message: "unknown ship"}, plan.Warnings[0])
	assert.Equal(t, 2, plan.Warnings[1].Slot)
	assert.Contains(t, plan.Warnings[1].String(), "Akagi slot 2")

	require.Len(t, plan.Fleet.Ships, 2)
	assert.True(t, plan.Fleet.Ships[0].IsUnassigned())

	slot, err := plan.Fleet.Ships[1].Slot(2)
	require.NoError(t, err)
	assert.True(t, slot.Empty())

	total, err := plan.Fleet.Mastery(plan.Mode, false)
	require.NoError(t, err)
	assert.Equal(t, 69, total)
}

func TestBuild_InvalidSlotNumber(t *testing.T) {
	l := types.Loadout{
		Ships: []types.LoadoutShip{{Ship: "Akagi", Slots: []types.LoadoutSlot{{Slot: 5, Aircraft: "Reppu"}}}},
	}

	_, err := Build(testRegistry(t), l, Options{})
	require.Error(t, err)

	var slotErr *mastery.InvalidSlotNumberError
	require.True(t, errors.As(err, &slotErr))
	assert.Equal(t, 5, slotErr.SlotNo)

	var buildErr *BuildError
	assert.True(t, errors.As(err, &buildErr))
}

func TestBuild_Modes(t *testing.T) {
	reg := testRegistry(t)

	plan, err := Build(reg, types.Loadout{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, mastery.Sortie, plan.Mode)

	plan, err = Build(reg, types.Loadout{}, Options{DefaultMode: mastery.AirDefense})
	require.NoError(t, err)
	assert.Equal(t, mastery.AirDefense, plan.Mode)

	plan, err = Build(reg, types.Loadout{Mode: "sortie"}, Options{DefaultMode: mastery.AirDefense})
	require.NoError(t, err)
	assert.Equal(t, mastery.Sortie, plan.Mode)

	_, err = Build(reg, types.Loadout{Mode: "night battle"}, Options{})
	var modeErr *mastery.UnsupportedModeError
	assert.True(t, errors.As(err, &modeErr))
}

func TestBuild_TooManyShips(t *testing.T) {
	l := types.Loadout{Ships: make([]types.LoadoutShip, types.MaxLoadoutShips+1)}

	_, err := Build(testRegistry(t), l, Options{})
	var buildErr *BuildError
	assert.True(t, errors.As(err, &buildErr))
}

func TestLoadFile_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadout.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mode": "dogfight", "ships": []}`), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}
