// Package registry holds the named ship and aircraft templates offered for selection
// and builds fresh engine values from them.
package registry

import (
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/catalog"
	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/jonathan/airpower-calculator/internal/types"
)

// Registry maps template names to aircraft and ship templates. It is filled during
// start-up and safe for concurrent reads afterwards.
type Registry struct {
	catalog *catalog.Catalog

	aircraft      map[string]types.AircraftTemplate
	aircraftOrder []string
	ships         map[string]types.ShipTemplate
	shipOrder     []string
}

// Dump is every registered template, in load order.
type Dump struct {
	Aircraft []types.AircraftTemplate `json:"aircraft" yaml:"aircraft"`
	Ships    []types.ShipTemplate     `json:"ships" yaml:"ships"`
}

// New returns an empty registry resolving aircraft types against cat.
func New(cat *catalog.Catalog) *Registry {
	return &Registry{
		catalog:  cat,
		aircraft: make(map[string]types.AircraftTemplate),
		ships:    make(map[string]types.ShipTemplate),
	}
}

// Catalog returns the aircraft-type catalog the registry resolves against.
func (r *Registry) Catalog() *catalog.Catalog {
	return r.catalog
}

// AddAircraft validates and registers an aircraft template. A template with an
// existing name replaces it in place.
func (r *Registry) AddAircraft(t types.AircraftTemplate) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("aircraft template %q: %w", t.Name, err)
	}
	if _, err := r.catalog.Lookup(t.Type); err != nil {
		return fmt.Errorf("aircraft template %q: %w", t.Name, err)
	}
	if _, ok := r.aircraft[t.Name]; !ok {
		r.aircraftOrder = append(r.aircraftOrder, t.Name)
	}
	r.aircraft[t.Name] = t
	return nil
}

// AddShip validates and registers a ship template. A template with an existing name
// replaces it in place.
func (r *Registry) AddShip(t types.ShipTemplate) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("ship template %q: %w", t.Name, err)
	}
	if _, ok := r.ships[t.Name]; !ok {
		r.shipOrder = append(r.shipOrder, t.Name)
	}
	t.Slots = append([]int(nil), t.Slots...)
	r.ships[t.Name] = t
	return nil
}

// AircraftNames returns the aircraft template names in load order.
func (r *Registry) AircraftNames() []string {
	return append([]string(nil), r.aircraftOrder...)
}

// ShipNames returns the ship template names in load order.
func (r *Registry) ShipNames() []string {
	return append([]string(nil), r.shipOrder...)
}

// AircraftTemplate returns the template registered under name.
func (r *Registry) AircraftTemplate(name string) (types.AircraftTemplate, bool) {
	t, ok := r.aircraft[name]
	return t, ok
}

// ShipTemplate returns the template registered under name.
func (r *Registry) ShipTemplate(name string) (types.ShipTemplate, bool) {
	t, ok := r.ships[name]
	if ok {
		t.Slots = append([]int(nil), t.Slots...)
	}
	return t, ok
}

// Aircraft builds a fresh aircraft from the named template.
func (r *Registry) Aircraft(name string) (mastery.Aircraft, error) {
	t, ok := r.aircraft[name]
	if !ok {
		return mastery.Aircraft{}, &NotFoundError{Kind: "aircraft", Name: name}
	}
	return mastery.NewAircraft(r.catalog, mastery.AircraftSpec{
		Name:        t.Name,
		Type:        t.Type,
		Attack:      t.Attack,
		Intercept:   t.Intercept,
		AntiBomber:  t.AntiBomber,
		Search:      t.Search,
		Proficiency: t.Proficiency,
		Improvement: t.Improvement,
	})
}

// Ship builds a fresh, empty ship from the named template. Unknown names yield the
// unassigned ship.
func (r *Registry) Ship(name string) *mastery.Ship {
	t, ok := r.ships[name]
	if !ok {
		return mastery.Unassigned()
	}
	s, err := mastery.NewShip(t.Name, t.Slots, t.AirBase)
	if err != nil {
		return mastery.Unassigned()
	}
	return s
}

// Dump returns copies of every template in load order.
func (r *Registry) Dump() Dump {
	d := Dump{
		Aircraft: make([]types.AircraftTemplate, 0, len(r.aircraftOrder)),
		Ships:    make([]types.ShipTemplate, 0, len(r.shipOrder)),
	}
	for _, name := range r.aircraftOrder {
		d.Aircraft = append(d.Aircraft, r.aircraft[name])
	}
	for _, name := range r.shipOrder {
		t, _ := r.ShipTemplate(name)
		d.Ships = append(d.Ships, t)
	}
	return d
}
