package mastery

import "math"

// Fleet is an ordered group of ships or air-bases scored together.
type Fleet struct {
	Ships []*Ship
}

// NewFleet builds a fleet from ships. Nil entries are treated as unassigned.
func NewFleet(ships ...*Ship) *Fleet {
	out := make([]*Ship, len(ships))
	for i, s := range ships {
		if s == nil {
			s = Unassigned()
		}
		out[i] = s
	}
	return &Fleet{Ships: out}
}

// Mastery sums the ship scores. With highAltitude a single revision is applied to
// the sum, based on the rocket count of the whole fleet; ships do not apply their
// own high-altitude revision here.
func (f *Fleet) Mastery(mode Mode, highAltitude bool) (int, error) {
	report, err := f.Evaluate(mode, highAltitude)
	if err != nil {
		return 0, err
	}
	return report.Total, nil
}

// RocketCount returns the number of high-altitude interceptors across the fleet.
func (f *Fleet) RocketCount() int {
	n := 0
	for _, s := range f.Ships {
		if s != nil {
			n += s.RocketCount()
		}
	}
	return n
}

// Evaluate scores the fleet and returns the full breakdown. Report.Total equals
// Mastery for the same arguments.
func (f *Fleet) Evaluate(mode Mode, highAltitude bool) (*Report, error) {
	if !mode.Valid() {
		return nil, &UnsupportedModeError{Mode: string(mode)}
	}

	report := &Report{
		Mode:                 mode,
		HighAltitude:         highAltitude,
		HighAltitudeRevision: 1,
		Ships:                make([]ShipReport, 0, len(f.Ships)),
	}
	for _, s := range f.Ships {
		if s == nil {
			continue
		}
		shipReport, err := s.evaluate(mode, false)
		if err != nil {
			return nil, err
		}
		report.Ships = append(report.Ships, shipReport)
		report.Subtotal += shipReport.Score
		report.RocketCount += shipReport.RocketCount
	}

	total := float64(report.Subtotal)
	if highAltitude {
		report.HighAltitudeRevision = HighAltitudeRevision(report.RocketCount)
		total *= report.HighAltitudeRevision
	}
	report.Total = int(math.Trunc(total))
	return report, nil
}
