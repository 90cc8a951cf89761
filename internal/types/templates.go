// Package types provides the file and request shapes shared by the registry, loadout
// and server packages.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// AircraftTemplate is a named aircraft as listed in an aircraft templates file.
type AircraftTemplate struct {
	Name        string  `json:"name" yaml:"name" validate:"required"`
	Type        string  `json:"type" yaml:"type" validate:"required"` // type id or short code
	Attack      float64 `json:"attack,omitempty" yaml:"attack,omitempty" validate:"gte=0"`
	Intercept   float64 `json:"intercept,omitempty" yaml:"intercept,omitempty" validate:"gte=0"`
	AntiBomber  float64 `json:"antiBomber,omitempty" yaml:"antiBomber,omitempty" validate:"gte=0"`
	Search      float64 `json:"search,omitempty" yaml:"search,omitempty" validate:"gte=0"`
	Proficiency *int    `json:"proficiency,omitempty" yaml:"proficiency,omitempty" validate:"omitempty,gte=0,lte=7"`
	Improvement int     `json:"improvement,omitempty" yaml:"improvement,omitempty" validate:"gte=0,lte=10"`
}

// ShipTemplate is a named ship or land-based squadron with its slot capacities.
type ShipTemplate struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Slots   []int  `json:"slots" yaml:"slots" validate:"dive,gte=0"`
	AirBase bool   `json:"airBase,omitempty" yaml:"airBase,omitempty"`
}

// Validate validates the AircraftTemplate using the validator.
func (t *AircraftTemplate) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// Validate validates the ShipTemplate using the validator.
func (t *ShipTemplate) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}
