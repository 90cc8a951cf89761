package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/airpower-calculator/internal/schemas"
	schemafiles "github.com/jonathan/airpower-calculator/schemas"
)

// TypeEntry is one element of a types file.
type TypeEntry struct {
	TypeDef    `yaml:",inline"`
	Correction *CorrectionEntry `json:"correction,omitempty" yaml:"correction,omitempty"`
	Scouting   *ScoutingRule    `json:"scouting,omitempty" yaml:"scouting,omitempty"`
}

// CorrectionEntry is the file representation of a CorrectionRule.
type CorrectionEntry struct {
	Kind        string  `json:"kind" yaml:"kind" validate:"oneof=none linear sqrt"`
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

// LoadFile builds a catalog from a JSON or YAML types file.
func LoadFile(path string) (*Catalog, error) {
	var entries []TypeEntry
	if err := schemas.DecodeFile(path, schemafiles.AircraftTypes, &entries); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to decode types file %s", path),
			Cause:   err,
		}
	}

	c, err := FromEntries(entries)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid types file %s", path),
			Cause:   err,
		}
	}
	return c, nil
}

// FromEntries builds a catalog from decoded type entries.
func FromEntries(entries []TypeEntry) (*Catalog, error) {
	validate := validator.New()
	c := New()
	for i, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("type %d (%s): %w", i, entry.ID, err)
		}
		if err := c.DefineType(entry.TypeDef); err != nil {
			return nil, err
		}
		if entry.Correction != nil {
			kind, err := ParseCorrectionKind(entry.Correction.Kind)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", entry.ID, err)
			}
			rule := CorrectionRule{Kind: kind, Coefficient: entry.Correction.Coefficient}
			if err := c.DefineCorrectionRule(entry.ID, rule); err != nil {
				return nil, err
			}
		}
		if entry.Scouting != nil {
			if err := c.DefineScoutingRule(entry.ID, *entry.Scouting); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Entries converts the catalog back into its file representation.
func (c *Catalog) Entries() []TypeEntry {
	types := c.Types()
	entries := make([]TypeEntry, 0, len(types))
	for _, t := range types {
		entry := TypeEntry{TypeDef: t.TypeDef, Scouting: t.Scouting}
		if t.Correction.Kind != CorrectionNone {
			entry.Correction = &CorrectionEntry{
				Kind:        t.Correction.Kind.String(),
				Coefficient: t.Correction.Coefficient,
			}
		}
		entries = append(entries, entry)
	}
	return entries
}
