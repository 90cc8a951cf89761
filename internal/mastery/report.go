package mastery

// Report is the breakdown produced by Fleet.Evaluate.
type Report struct {
	Mode                 Mode         `json:"mode" yaml:"mode"`
	HighAltitude         bool         `json:"highAltitude" yaml:"highAltitude"`
	Ships                []ShipReport `json:"ships" yaml:"ships"`
	Subtotal             int          `json:"subtotal" yaml:"subtotal"`
	RocketCount          int          `json:"rocketCount" yaml:"rocketCount"`
	HighAltitudeRevision float64      `json:"highAltitudeRevision" yaml:"highAltitudeRevision"`
	Total                int          `json:"total" yaml:"total"`
}

// ShipReport is the breakdown of one ship. Raw is the plain slot sum; Score has the
// ship's revisions applied.
type ShipReport struct {
	Name                 string       `json:"name" yaml:"name"`
	AirBase              bool         `json:"airBase" yaml:"airBase"`
	Unassigned           bool         `json:"unassigned,omitempty" yaml:"unassigned,omitempty"`
	Slots                []SlotReport `json:"slots" yaml:"slots"`
	Raw                  int          `json:"raw" yaml:"raw"`
	ScoutingRevision     float64      `json:"scoutingRevision" yaml:"scoutingRevision"`
	RocketCount          int          `json:"rocketCount" yaml:"rocketCount"`
	HighAltitudeRevision float64      `json:"highAltitudeRevision" yaml:"highAltitudeRevision"`
	Score                int          `json:"score" yaml:"score"`
}

// SlotReport is the score of one slot.
type SlotReport struct {
	SlotNo             int    `json:"slot" yaml:"slot"`
	Capacity           int    `json:"capacity" yaml:"capacity"`
	Aircraft           string `json:"aircraft,omitempty" yaml:"aircraft,omitempty"`
	Type               string `json:"type,omitempty" yaml:"type,omitempty"`
	SuppressSkillBonus bool   `json:"suppressSkillBonus" yaml:"suppressSkillBonus"`
	Score              int    `json:"score" yaml:"score"`
}
