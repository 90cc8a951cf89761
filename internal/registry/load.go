package registry

import (
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/catalog"
	"github.com/jonathan/airpower-calculator/internal/schemas"
	"github.com/jonathan/airpower-calculator/internal/types"
	schemafiles "github.com/jonathan/airpower-calculator/schemas"
)

// Load builds a registry from an aircraft templates file and a ship templates file.
// Either path may be empty.
func Load(cat *catalog.Catalog, aircraftPath, shipsPath string) (*Registry, error) {
	r := New(cat)
	if aircraftPath != "" {
		if err := r.LoadAircraftFile(aircraftPath); err != nil {
			return nil, err
		}
	}
	if shipsPath != "" {
		if err := r.LoadShipFile(shipsPath); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadAircraftFile adds the templates of a JSON or YAML aircraft file. Nothing is
// registered when any template is invalid.
func (r *Registry) LoadAircraftFile(path string) error {
	var templates []types.AircraftTemplate
	if err := schemas.DecodeFile(path, schemafiles.AircraftTemplates, &templates); err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to decode aircraft file %s", path),
			Cause:   err,
		}
	}

	staged := New(r.catalog)
	for _, t := range templates {
		if err := staged.AddAircraft(t); err != nil {
			return &LoadError{
				Message: fmt.Sprintf("invalid aircraft file %s", path),
				Cause:   err,
			}
		}
	}
	for _, name := range staged.aircraftOrder {
		if err := r.AddAircraft(staged.aircraft[name]); err != nil {
			return err
		}
	}
	return nil
}

// LoadShipFile adds the templates of a JSON or YAML ship file. Nothing is registered
// when any template is invalid.
func (r *Registry) LoadShipFile(path string) error {
	var templates []types.ShipTemplate
	if err := schemas.DecodeFile(path, schemafiles.ShipTemplates, &templates); err != nil {
		return &LoadError{
			Message: fmt.Sprintf("failed to decode ship file %s", path),
			Cause:   err,
		}
	}

	staged := New(r.catalog)
	for _, t := range templates {
		if err := staged.AddShip(t); err != nil {
			return &LoadError{
				Message: fmt.Sprintf("invalid ship file %s", path),
				Cause:   err,
			}
		}
	}
	for _, name := range staged.shipOrder {
		if err := r.AddShip(staged.ships[name]); err != nil {
			return err
		}
	}
	return nil
}
