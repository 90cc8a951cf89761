// Package loadout turns a loadout document into a fleet and scores it.
package loadout

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/airpower-calculator/internal/mastery"
	"github.com/jonathan/airpower-calculator/internal/registry"
	"github.com/jonathan/airpower-calculator/internal/schemas"
	"github.com/jonathan/airpower-calculator/internal/types"
	schemafiles "github.com/jonathan/airpower-calculator/schemas"
)

// Options holds the defaults applied where a loadout leaves a setting out.
type Options struct {
	// DefaultMode is used when the loadout has no mode. Sortie when empty.
	DefaultMode mastery.Mode
}

// Warning reports a loadout entry that was skipped.
type Warning struct {
	Ship    string `json:"ship"`
	Slot    int    `json:"slot,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Slot > 0 {
		return fmt.Sprintf("%s slot %d: %s", w.Ship, w.Slot, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Ship, w.Message)
}

// Plan is a loadout resolved against the registry, ready to score.
type Plan struct {
	Name         string
	Mode         mastery.Mode
	HighAltitude bool
	Fleet        *mastery.Fleet
	Warnings     []Warning
}

// Evaluation is the scored result of a plan.
type Evaluation struct {
	ID       string          `json:"id"`
	Name     string          `json:"name,omitempty"`
	Report   *mastery.Report `json:"report"`
	Warnings []Warning       `json:"warnings,omitempty"`
}

// LoadFile reads a JSON or YAML loadout file and validates it.
func LoadFile(path string) (types.Loadout, error) {
	var l types.Loadout
	if err := schemas.DecodeFile(path, schemafiles.Loadout, &l); err != nil {
		return types.Loadout{}, &LoadError{
			Message: fmt.Sprintf("failed to decode loadout file %s", path),
			Cause:   err,
		}
	}
	if err := l.Validate(); err != nil {
		return types.Loadout{}, &LoadError{
			Message: fmt.Sprintf("invalid loadout file %s", path),
			Cause:   err,
		}
	}
	return l, nil
}

// Build resolves ship and aircraft names against the registry. Excluded ships are
// left out; unknown ship names become unassigned ships and unknown aircraft leave
// their slot empty, both with a warning. Invalid slot numbers fail the build.
func Build(reg *registry.Registry, l types.Loadout, opts Options) (*Plan, error) {
	if len(l.Ships) > types.MaxLoadoutShips {
		return nil, &BuildError{Message: fmt.Sprintf("too many ships: %d (max %d)", len(l.Ships), types.MaxLoadoutShips)}
	}

	mode := opts.DefaultMode
	if mode == "" {
		mode = mastery.Sortie
	}
	if l.Mode != "" {
		parsed, err := mastery.ParseMode(l.Mode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}
	if !mode.Valid() {
		return nil, &mastery.UnsupportedModeError{Mode: string(mode)}
	}

	plan := &Plan{
		Name:         l.Name,
		Mode:         mode,
		HighAltitude: l.HighAltitude,
	}

	ships := make([]*mastery.Ship, 0, len(l.Ships))
	for _, entry := range l.Ships {
		if !entry.Included() {
			continue
		}
		ship := reg.Ship(entry.Ship)
		if ship.IsUnassigned() {
			if entry.Ship != "" {
				plan.Warnings = append(plan.Warnings, Warning{Ship: entry.Ship, Message: "unknown ship"})
			}
			ships = append(ships, ship)
			continue
		}
		for _, slot := range entry.Slots {
			warning, err := equipSlot(reg, ship, slot)
			if err != nil {
				return nil, &BuildError{Message: fmt.Sprintf("ship %s", entry.Ship), Cause: err}
			}
			if warning != "" {
				plan.Warnings = append(plan.Warnings, Warning{Ship: entry.Ship, Slot: slot.Slot, Message: warning})
			}
		}
		ships = append(ships, ship)
	}
	plan.Fleet = mastery.NewFleet(ships...)
	return plan, nil
}

// equipSlot applies one slot entry. It returns a warning when the aircraft name is
// unknown.
func equipSlot(reg *registry.Registry, ship *mastery.Ship, slot types.LoadoutSlot) (string, error) {
	if _, err := ship.Slot(slot.Slot); err != nil {
		return "", err
	}

	var warning string
	if slot.Aircraft == "" {
		if err := ship.RemoveAircraft(slot.Slot); err != nil {
			return "", err
		}
	} else {
		ac, err := reg.Aircraft(slot.Aircraft)
		if err != nil {
			warning = fmt.Sprintf("unknown aircraft %q", slot.Aircraft)
			if err := ship.RemoveAircraft(slot.Slot); err != nil {
				return "", err
			}
		} else {
			if slot.Improvement != nil {
				ac = ac.Improve(slot.Improvement)
			}
			if err := ship.Equip(slot.Slot, ac); err != nil {
				return "", err
			}
		}
	}

	if slot.SuppressSkillBonus != nil {
		if err := ship.SetSuppressSkillBonus(slot.Slot, *slot.SuppressSkillBonus); err != nil {
			return "", err
		}
	}
	return warning, nil
}

// Evaluate scores the plan.
func (p *Plan) Evaluate() (*Evaluation, error) {
	report, err := p.Fleet.Evaluate(p.Mode, p.HighAltitude)
	if err != nil {
		return nil, err
	}
	return &Evaluation{
		ID:       uuid.NewString(),
		Name:     p.Name,
		Report:   report,
		Warnings: p.Warnings,
	}, nil
}

// Evaluate builds and scores a loadout in one step.
func Evaluate(reg *registry.Registry, l types.Loadout, opts Options) (*Evaluation, error) {
	plan, err := Build(reg, l, opts)
	if err != nil {
		return nil, err
	}
	return plan.Evaluate()
}
