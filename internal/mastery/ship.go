package mastery

import (
	"fmt"
	"math"
)

// Ship is a ship or an air-base: a fixed, 1-based sequence of slots.
type Ship struct {
	Name    string
	AirBase bool

	slots      []Slot
	unassigned bool
}

// NewShip builds a ship whose slots are numbered 1..len(capacities).
func NewShip(name string, capacities []int, airBase bool) (*Ship, error) {
	slots := make([]Slot, len(capacities))
	for i, c := range capacities {
		if c < 0 {
			return nil, fmt.Errorf("ship %q: slot %d capacity must be non-negative, got %d", name, i+1, c)
		}
		slots[i] = Slot{Capacity: c}
	}
	return &Ship{Name: name, AirBase: airBase, slots: slots}, nil
}

// Unassigned returns the "no ship selected" placeholder. It has no slots, ignores
// slot mutations and always scores 0.
func Unassigned() *Ship {
	return &Ship{unassigned: true}
}

// IsUnassigned reports whether s is the placeholder returned by Unassigned.
func (s *Ship) IsUnassigned() bool {
	return s.unassigned
}

// SlotCount returns the number of slots.
func (s *Ship) SlotCount() int {
	return len(s.slots)
}

// Capacities returns the slot capacities in slot order.
func (s *Ship) Capacities() []int {
	out := make([]int, len(s.slots))
	for i, slot := range s.slots {
		out[i] = slot.Capacity
	}
	return out
}

// Slot returns a copy of the slot with the given 1-based number.
func (s *Ship) Slot(slotNo int) (Slot, error) {
	slot, err := s.slot(slotNo)
	if err != nil {
		return Slot{}, err
	}
	return slot.clone(), nil
}

// Slots returns copies of every slot in slot order.
func (s *Ship) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	for i, slot := range s.slots {
		out[i] = slot.clone()
	}
	return out
}

// SetAircraft equips a copy of ac into the slot. The suppression flag is unchanged.
func (s *Ship) SetAircraft(slotNo int, ac Aircraft) error {
	if s.unassigned {
		return nil
	}
	slot, err := s.slot(slotNo)
	if err != nil {
		return err
	}
	slot.Aircraft = &ac
	return nil
}

// Equip equips ac and resets the slot's suppression flag to the default of the
// aircraft's type.
func (s *Ship) Equip(slotNo int, ac Aircraft) error {
	if s.unassigned {
		return nil
	}
	slot, err := s.slot(slotNo)
	if err != nil {
		return err
	}
	slot.Aircraft = &ac
	slot.SuppressSkillBonus = ac.Type.DefaultSuppressesBonus
	return nil
}

// RemoveAircraft empties the slot and clears its suppression flag.
func (s *Ship) RemoveAircraft(slotNo int) error {
	if s.unassigned {
		return nil
	}
	slot, err := s.slot(slotNo)
	if err != nil {
		return err
	}
	slot.Aircraft = nil
	slot.SuppressSkillBonus = false
	return nil
}

// SetSuppressSkillBonus sets whether the slot's skill bonus is ignored.
func (s *Ship) SetSuppressSkillBonus(slotNo int, suppress bool) error {
	if s.unassigned {
		return nil
	}
	slot, err := s.slot(slotNo)
	if err != nil {
		return err
	}
	slot.SuppressSkillBonus = suppress
	return nil
}

// SlotMastery scores a single slot. Empty slots and slot numbers the ship does not
// have score 0.
func (s *Ship) SlotMastery(slotNo int, mode Mode) (int, error) {
	if !mode.Valid() {
		return 0, &UnsupportedModeError{Mode: string(mode)}
	}
	slot, err := s.slot(slotNo)
	if err != nil {
		return 0, nil
	}
	return slot.score(mode)
}

// Mastery returns the ship's score. Air-bases apply the scouting revision and, when
// highAltitude is set, the high-altitude revision for their own rocket count.
func (s *Ship) Mastery(mode Mode, highAltitude bool) (int, error) {
	report, err := s.evaluate(mode, highAltitude)
	if err != nil {
		return 0, err
	}
	return report.Score, nil
}

// RocketCount returns the number of equipped high-altitude interceptors.
func (s *Ship) RocketCount() int {
	n := 0
	for _, slot := range s.slots {
		if slot.Aircraft != nil && slot.Aircraft.Type.HighAltitudeInterceptor {
			n++
		}
	}
	return n
}

// ScoutingRevision returns the product of the scouting factors of every equipped
// aircraft. It is 1 when no scouting aircraft is equipped.
func (s *Ship) ScoutingRevision(mode Mode) (float64, error) {
	if !mode.Valid() {
		return 0, &UnsupportedModeError{Mode: string(mode)}
	}
	rev := 1.0
	for _, slot := range s.slots {
		if slot.Aircraft != nil {
			rev *= ScoutingFactor(*slot.Aircraft, mode)
		}
	}
	return rev, nil
}

func (s *Ship) evaluate(mode Mode, highAltitude bool) (ShipReport, error) {
	report := ShipReport{
		Name:                 s.Name,
		AirBase:              s.AirBase,
		Unassigned:           s.unassigned,
		ScoutingRevision:     1,
		HighAltitudeRevision: 1,
	}
	if s.unassigned {
		return report, nil
	}

	scouting, err := s.ScoutingRevision(mode)
	if err != nil {
		return ShipReport{}, err
	}

	report.Slots = make([]SlotReport, 0, len(s.slots))
	for i, slot := range s.slots {
		score, err := slot.score(mode)
		if err != nil {
			return ShipReport{}, err
		}
		entry := SlotReport{
			SlotNo:             i + 1,
			Capacity:           slot.Capacity,
			SuppressSkillBonus: slot.SuppressSkillBonus,
			Score:              score,
		}
		if slot.Aircraft != nil {
			entry.Aircraft = slot.Aircraft.Name
			entry.Type = slot.Aircraft.Type.ID
		}
		report.Slots = append(report.Slots, entry)
		report.Raw += score
	}
	report.RocketCount = s.RocketCount()

	total := float64(report.Raw)
	if s.AirBase {
		report.ScoutingRevision = scouting
		total *= scouting
		if highAltitude {
			report.HighAltitudeRevision = HighAltitudeRevision(report.RocketCount)
			total *= report.HighAltitudeRevision
		}
	}
	report.Score = int(math.Trunc(total))
	return report, nil
}

func (s *Ship) slot(slotNo int) (*Slot, error) {
	if slotNo < 1 || slotNo > len(s.slots) {
		return nil, &InvalidSlotNumberError{SlotNo: slotNo}
	}
	return &s.slots[slotNo-1], nil
}
