package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/airpower-calculator/internal/loadout"
	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestCalcCommand_Fixture(t *testing.T) {
	out, err := executeCommand(t, withTemplates("calc", "-l", loadoutFixture)...)
	require.NoError(t, err, out)

	assert.Contains(t, out, "high-altitude defense\tairDefense\t499")
}

func TestCalcCommand_MultipleLoadoutsJSON(t *testing.T) {
	out, err := executeCommand(t, withTemplates("calc", "-l", loadoutFixture, "-l", sortieFixture, "--json")...)
	require.NoError(t, err, out)

	var evals []loadout.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &evals))
	require.Len(t, evals, 2)
	assert.Equal(t, 499, evals[0].Report.Total, "results keep argument order")
	assert.Equal(t, 537, evals[1].Report.Total)
	assert.NotEqual(t, evals[0].ID, evals[1].ID)
}

func TestCalcCommand_HighAltitudeOverride(t *testing.T) {
	out, err := executeCommand(t, withTemplates("calc", "-l", loadoutFixture, "--high-altitude=false", "--json")...)
	require.NoError(t, err, out)

	var evals []loadout.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &evals))
	require.Len(t, evals, 1)
	assert.Equal(t, 454, evals[0].Report.Total)
}

func TestCalcCommand_ModeOverride(t *testing.T) {
	out, err := executeCommand(t, withTemplates("calc", "-l", sortieFixture, "--mode", "airDefence", "--json")...)
	require.NoError(t, err, out)

	var evals []loadout.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &evals))
	assert.Equal(t, mastery.AirDefense, evals[0].Report.Mode)

	_, err = executeCommand(t, withTemplates("calc", "-l", sortieFixture, "--mode", "night")...)
	var modeErr *mastery.UnsupportedModeError
	assert.ErrorAs(t, err, &modeErr)
}

func TestCalcCommand_Verbose(t *testing.T) {
	out, err := executeCommand(t, withTemplates("calc", "-l", loadoutFixture, "--verbose")...)
	require.NoError(t, err, out)

	assert.Contains(t, out, "FLEET MASTERY")
	assert.Contains(t, out, "Base Air Squadron 1")
}

func TestCalcCommand_VerboseFromConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "airpower.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("verbose: true\n"), 0644))

	out, err := executeCommand(t, withTemplates("calc", "-l", loadoutFixture, "--config", configFile)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "FLEET MASTERY")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel), "config verbose enables debug logging")

	out, err = executeCommand(t, withTemplates("calc", "-l", loadoutFixture, "--config", configFile, "--verbose=false")...)
	require.NoError(t, err, out)
	assert.NotContains(t, out, "FLEET MASTERY")
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "--verbose=false overrides the config file")
}

func TestCalcCommand_UnknownNamesWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadout.yaml")
	content := "ships:\n  - ship: Yamato\n  - ship: Akagi\n    slots:\n      - slot: 1\n        aircraft: Zero\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := executeCommand(t, withTemplates("calc", "-l", path)...)
	require.NoError(t, err, out)

	assert.Contains(t, out, "warning: Yamato: unknown ship")
	assert.Contains(t, out, `warning: Akagi slot 1: unknown aircraft "Zero"`)
}

func TestCalcCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, withTemplates("calc")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "loadout" not set`)

	_, err = executeCommand(t, withTemplates("calc", "-l", filepath.Join(t.TempDir(), "missing.json"))...)
	var loadErr *loadout.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestCalcCommand_ConfigFile(t *testing.T) {
	aircraft, err := filepath.Abs(aircraftFixture)
	require.NoError(t, err)
	ships, err := filepath.Abs(shipsFixture)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "airpower.yaml")
	content := "aircraft: " + aircraft + "\nships: " + ships + "\nmode: airDefense\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loadoutPath := filepath.Join(t.TempDir(), "loadout.json")
	require.NoError(t, os.WriteFile(loadoutPath, []byte(`{"ships": [{"ship": "Base Air Squadron 1", "slots": [{"slot": 1, "aircraft": "Raiden"}]}]}`), 0644))

	out, err := executeCommand(t, "--config", path, "calc", "-l", loadoutPath, "--json")
	require.NoError(t, err, out)

	var evals []loadout.Evaluation
	require.NoError(t, json.Unmarshal([]byte(out), &evals))
	assert.Equal(t, mastery.AirDefense, evals[0].Report.Mode, "config mode applies to loadouts without one")
	assert.Positive(t, evals[0].Report.Total)
}
