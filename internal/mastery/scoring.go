package mastery

import "math"

// improvementBonus is the extra attack granted by the aircraft's improvement level.
func improvementBonus(ac Aircraft) float64 {
	return ac.Type.Correction.Apply(ac.Improvement)
}

// skillBonus is the flat proficiency bonus, or 0 when the slot suppresses it.
func skillBonus(ac Aircraft, suppressed bool) float64 {
	if suppressed {
		return 0
	}
	return ac.Type.SkillBonus
}

// SlotScore returns the score of one aircraft carried in a slot of the given
// capacity. The result is truncated toward zero.
func SlotScore(mode Mode, capacity int, ac Aircraft, suppressed bool) (int, error) {
	attack := ac.Attack + improvementBonus(ac)
	bonus := skillBonus(ac, suppressed)
	size := math.Sqrt(float64(max(capacity, 0)))

	var score float64
	switch mode {
	case Sortie:
		score = (attack+ac.Intercept*1.5)*size + bonus
	case AirDefense:
		score = (attack+ac.Intercept+ac.AntiBomber*2)*size + bonus
	default:
		return 0, &UnsupportedModeError{Mode: string(mode)}
	}
	return int(math.Trunc(score)), nil
}

// HighAltitudeRevision returns the factor for the number of high-altitude
// interceptors equipped: 0 → 0.5, 1 → 0.8, 2 → 1.1, 3 or more → 1.2.
func HighAltitudeRevision(rockets int) float64 {
	switch {
	case rockets <= 0:
		return 0.5
	case rockets == 1:
		return 0.8
	case rockets == 2:
		return 1.1
	default:
		return 1.2
	}
}

// ScoutingFactor returns the scouting revision contributed by one aircraft. Aircraft
// whose type has no scouting rule contribute 1.
func ScoutingFactor(ac Aircraft, mode Mode) float64 {
	rule := ac.Type.Scouting
	if rule == nil {
		return 1
	}
	switch mode {
	case Sortie:
		return rule.Sortie.Factor(ac.Search)
	case AirDefense:
		return rule.AirDefense.Factor(ac.Search)
	default:
		return 1
	}
}
