package mastery

// Slot is an equipment position holding at most one aircraft.
type Slot struct {
	Capacity           int
	Aircraft           *Aircraft
	SuppressSkillBonus bool
}

// Empty reports whether no aircraft is equipped.
func (s Slot) Empty() bool {
	return s.Aircraft == nil
}

// clone returns a copy that shares no aircraft pointer with s.
func (s Slot) clone() Slot {
	if s.Aircraft != nil {
		ac := *s.Aircraft
		s.Aircraft = &ac
	}
	return s
}

func (s Slot) score(mode Mode) (int, error) {
	if s.Aircraft == nil {
		if !mode.Valid() {
			return 0, &UnsupportedModeError{Mode: string(mode)}
		}
		return 0, nil
	}
	return SlotScore(mode, s.Capacity, *s.Aircraft, s.SuppressSkillBonus)
}
