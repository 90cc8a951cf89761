//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// MaxLoadoutShips is the largest number of ships a loadout may list.
const MaxLoadoutShips = 12

// Loadout is a calculation request: which ships to score and what they carry.
type Loadout struct {
	Name         string        `json:"name,omitempty" yaml:"name,omitempty"`
	Mode         string        `json:"mode,omitempty" yaml:"mode,omitempty"`
	HighAltitude bool          `json:"highAltitude,omitempty" yaml:"highAltitude,omitempty"`
	Ships        []LoadoutShip `json:"ships" yaml:"ships" validate:"max=12,dive"`
}

// LoadoutShip selects a ship template by name. Include defaults to true.
type LoadoutShip struct {
	Ship    string        `json:"ship" yaml:"ship"`
	Include *bool         `json:"include,omitempty" yaml:"include,omitempty"`
	Slots   []LoadoutSlot `json:"slots,omitempty" yaml:"slots,omitempty" validate:"dive"`
}

// LoadoutSlot names the aircraft template equipped in a slot. Improvement is raw
// user input and is clamped when applied; a nil SuppressSkillBonus means the
// aircraft type's default.
type LoadoutSlot struct {
	Slot               int    `json:"slot" yaml:"slot"`
	Aircraft           string `json:"aircraft,omitempty" yaml:"aircraft,omitempty"`
	Improvement        any    `json:"improvement,omitempty" yaml:"improvement,omitempty"`
	SuppressSkillBonus *bool  `json:"suppressSkillBonus,omitempty" yaml:"suppressSkillBonus,omitempty"`
}

// Included reports whether the ship takes part in the calculation.
func (s LoadoutShip) Included() bool {
	return s.Include == nil || *s.Include
}

// Validate validates the Loadout using the validator.
func (l *Loadout) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}
