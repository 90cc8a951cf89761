// Package catalog holds the aircraft-type reference data used by the mastery engine.
package catalog

import (
	"fmt"
	"strings"
)

// TypeDef describes an aircraft category as registered with DefineType.
type TypeDef struct {
	ID                      string  `json:"id" yaml:"id" validate:"required"`
	Code                    string  `json:"code,omitempty" yaml:"code,omitempty"`
	Name                    string  `json:"name,omitempty" yaml:"name,omitempty"`
	SkillBonus              float64 `json:"skillBonus" yaml:"skillBonus" validate:"gte=0"`
	DefaultSuppressesBonus  bool    `json:"defaultSuppressesBonus,omitempty" yaml:"defaultSuppressesBonus,omitempty"`
	HighAltitudeInterceptor bool    `json:"highAltitudeInterceptor,omitempty" yaml:"highAltitudeInterceptor,omitempty"`
}

// AircraftType is a resolved catalog entry: the type definition together with the
// correction and scouting rules registered for it.
type AircraftType struct {
	TypeDef
	Correction CorrectionRule
	// Scouting is nil for aircraft that do not affect the scouting revision.
	Scouting *ScoutingRule
}

// String returns the type id.
func (t AircraftType) String() string {
	return t.ID
}

// IsScout reports whether the type contributes to the scouting revision.
func (t AircraftType) IsScout() bool {
	return t.Scouting != nil
}

// Catalog is the registry of aircraft types. It is populated once during start-up
// and only read afterwards.
type Catalog struct {
	types       map[string]TypeDef
	codes       map[string]string
	corrections map[string]CorrectionRule
	scouting    map[string]ScoutingRule
	order       []string
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		types:       make(map[string]TypeDef),
		codes:       make(map[string]string),
		corrections: make(map[string]CorrectionRule),
		scouting:    make(map[string]ScoutingRule),
	}
}

// DefineType registers an aircraft type. Redefining an id replaces the previous
// definition but keeps its rules.
func (c *Catalog) DefineType(def TypeDef) error {
	def.ID = strings.TrimSpace(def.ID)
	if def.ID == "" {
		return fmt.Errorf("aircraft type id is empty")
	}
	if def.SkillBonus < 0 {
		return fmt.Errorf("aircraft type %s: skill bonus must be non-negative", def.ID)
	}
	if def.Code != "" {
		if owner, ok := c.codes[def.Code]; ok && owner != def.ID {
			return fmt.Errorf("aircraft type %s: code %s already used by %s", def.ID, def.Code, owner)
		}
	}

	if prev, ok := c.types[def.ID]; ok {
		if prev.Code != "" && prev.Code != def.Code {
			delete(c.codes, prev.Code)
		}
	} else {
		c.order = append(c.order, def.ID)
	}
	c.types[def.ID] = def
	if def.Code != "" {
		c.codes[def.Code] = def.ID
	}
	return nil
}

// DefineCorrectionRule registers the improvement correction for a defined type.
func (c *Catalog) DefineCorrectionRule(typeID string, rule CorrectionRule) error {
	id, ok := c.resolve(typeID)
	if !ok {
		return &UnknownAircraftTypeError{ID: typeID}
	}
	if err := rule.validate(); err != nil {
		return fmt.Errorf("aircraft type %s: %w", id, err)
	}
	c.corrections[id] = rule
	return nil
}

// DefineScoutingRule marks a defined type as scouting-capable with the given rule.
func (c *Catalog) DefineScoutingRule(typeID string, rule ScoutingRule) error {
	id, ok := c.resolve(typeID)
	if !ok {
		return &UnknownAircraftTypeError{ID: typeID}
	}
	c.scouting[id] = rule.normalized()
	return nil
}

// Lookup resolves a type by id or short code.
func (c *Catalog) Lookup(idOrCode string) (AircraftType, error) {
	id, ok := c.resolve(idOrCode)
	if !ok {
		return AircraftType{}, &UnknownAircraftTypeError{ID: idOrCode}
	}

	t := AircraftType{
		TypeDef:    c.types[id],
		Correction: c.corrections[id],
	}
	if rule, ok := c.scouting[id]; ok {
		r := rule
		t.Scouting = &r
	}
	return t, nil
}

// IDs returns the registered type ids in definition order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	return ids
}

// Types returns every registered type in definition order.
func (c *Catalog) Types() []AircraftType {
	out := make([]AircraftType, 0, len(c.order))
	for _, id := range c.order {
		t, err := c.Lookup(id)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	return len(c.types)
}

func (c *Catalog) resolve(idOrCode string) (string, bool) {
	key := strings.TrimSpace(idOrCode)
	if _, ok := c.types[key]; ok {
		return key, true
	}
	if id, ok := c.codes[key]; ok {
		return id, true
	}
	return "", false
}
