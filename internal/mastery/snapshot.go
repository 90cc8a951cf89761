package mastery

import (
	"fmt"

	"github.com/jonathan/airpower-calculator/internal/catalog"
)

// AircraftSnapshot is the JSON form of an equipped aircraft.
type AircraftSnapshot struct {
	Name        string  `json:"name" yaml:"name"`
	Type        string  `json:"type" yaml:"type"`
	Attack      float64 `json:"attack" yaml:"attack"`
	Intercept   float64 `json:"intercept" yaml:"intercept"`
	AntiBomber  float64 `json:"antiBomber" yaml:"antiBomber"`
	Search      float64 `json:"search" yaml:"search"`
	Proficiency int     `json:"proficiency" yaml:"proficiency"`
	Improvement int     `json:"improvement" yaml:"improvement"`
}

// SlotSnapshot is the JSON form of a slot. Aircraft is null for an empty slot.
type SlotSnapshot struct {
	Capacity           int               `json:"capacity" yaml:"capacity"`
	Aircraft           *AircraftSnapshot `json:"aircraft" yaml:"aircraft"`
	SuppressSkillBonus bool              `json:"suppressSkillBonus" yaml:"suppressSkillBonus"`
}

// ShipSnapshot is the structural view of a ship, keyed by slot number. It is meant
// for display and debugging.
type ShipSnapshot struct {
	Name       string               `json:"name" yaml:"name"`
	AirBase    bool                 `json:"airBase" yaml:"airBase"`
	Unassigned bool                 `json:"unassigned,omitempty" yaml:"unassigned,omitempty"`
	Slots      map[int]SlotSnapshot `json:"slots" yaml:"slots"`
}

// Snapshot returns the structural view of the ship.
func (s *Ship) Snapshot() ShipSnapshot {
	snap := ShipSnapshot{
		Name:       s.Name,
		AirBase:    s.AirBase,
		Unassigned: s.unassigned,
		Slots:      make(map[int]SlotSnapshot, len(s.slots)),
	}
	for i, slot := range s.slots {
		entry := SlotSnapshot{
			Capacity:           slot.Capacity,
			SuppressSkillBonus: slot.SuppressSkillBonus,
		}
		if ac := slot.Aircraft; ac != nil {
			entry.Aircraft = &AircraftSnapshot{
				Name:        ac.Name,
				Type:        ac.Type.ID,
				Attack:      ac.Attack,
				Intercept:   ac.Intercept,
				AntiBomber:  ac.AntiBomber,
				Search:      ac.Search,
				Proficiency: ac.Proficiency,
				Improvement: ac.Improvement,
			}
		}
		snap.Slots[i+1] = entry
	}
	return snap
}

// Snapshot returns the ship snapshots in fleet order.
func (f *Fleet) Snapshot() []ShipSnapshot {
	out := make([]ShipSnapshot, 0, len(f.Ships))
	for _, s := range f.Ships {
		if s != nil {
			out = append(out, s.Snapshot())
		}
	}
	return out
}

// RestoreShip rebuilds a ship from a snapshot, resolving aircraft types against cat.
// Slot numbers must be exactly 1..n.
func RestoreShip(cat *catalog.Catalog, snap ShipSnapshot) (*Ship, error) {
	if snap.Unassigned {
		return Unassigned(), nil
	}

	capacities := make([]int, len(snap.Slots))
	for slotNo := 1; slotNo <= len(snap.Slots); slotNo++ {
		entry, ok := snap.Slots[slotNo]
		if !ok {
			return nil, &SnapshotError{Message: fmt.Sprintf("ship %q: missing slot %d", snap.Name, slotNo)}
		}
		capacities[slotNo-1] = entry.Capacity
	}

	ship, err := NewShip(snap.Name, capacities, snap.AirBase)
	if err != nil {
		return nil, &SnapshotError{Message: "bad slot capacity", Cause: err}
	}

	for slotNo := 1; slotNo <= len(capacities); slotNo++ {
		entry := snap.Slots[slotNo]
		if entry.Aircraft != nil {
			a := entry.Aircraft
			proficiency := a.Proficiency
			ac, err := NewAircraft(cat, AircraftSpec{
				Name:        a.Name,
				Type:        a.Type,
				Attack:      a.Attack,
				Intercept:   a.Intercept,
				AntiBomber:  a.AntiBomber,
				Search:      a.Search,
				Proficiency: &proficiency,
				Improvement: a.Improvement,
			})
			if err != nil {
				return nil, &SnapshotError{Message: fmt.Sprintf("ship %q slot %d", snap.Name, slotNo), Cause: err}
			}
			if err := ship.SetAircraft(slotNo, ac); err != nil {
				return nil, err
			}
		}
		if err := ship.SetSuppressSkillBonus(slotNo, entry.SuppressSkillBonus); err != nil {
			return nil, err
		}
	}
	return ship, nil
}
