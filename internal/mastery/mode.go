// Package mastery implements the air-power (mastery) score engine: aircraft, slots,
// ships, air-bases and fleets, and the formulas that score them.
package mastery

import "strings"

// Mode selects the per-slot scoring formula.
type Mode string

const (
	// Sortie scores a fleet or air-base sent out to attack.
	Sortie Mode = "sortie"
	// AirDefense scores an air-base defending against an air raid.
	AirDefense Mode = "airDefense"
)

// Modes lists the supported modes.
var Modes = []Mode{Sortie, AirDefense}

// ParseMode converts user input into a Mode. "airDefence" is accepted as an
// alternative spelling of airDefense.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sortie":
		return Sortie, nil
	case "airdefense", "airdefence":
		return AirDefense, nil
	default:
		return "", &UnsupportedModeError{Mode: s}
	}
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == Sortie || m == AirDefense
}

func (m Mode) String() string {
	return string(m)
}
