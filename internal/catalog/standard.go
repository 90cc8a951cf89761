package catalog

// Standard type ids.
const (
	CarrierFighter    = "kansen"
	CarrierAttacker   = "kankou"
	CarrierBomber     = "kanbaku"
	FighterBomber     = "bakusen"
	SeaplaneBomber    = "suibaku"
	SeaplaneFighter   = "suisen"
	JetBomber         = "hunbaku"
	ArmyFighter       = "rikusen"
	Interceptor       = "kyokusen"
	RocketInterceptor = "rocketsen"
	LandAttacker      = "rikko"
	CarrierRecon      = "kantei"
	SeaplaneRecon     = "suitei"
	LandRecon         = "rikutei"
)

const (
	fighterSkillBonus   = 25
	seaplaneBomberBonus = 9
	otherSkillBonus     = 3
)

// Skill bonuses assume maximum proficiency; lower proficiency is not modelled.
var standardTypes = []TypeDef{
	{ID: CarrierFighter, Code: "KS", Name: "carrier fighter", SkillBonus: fighterSkillBonus},
	{ID: CarrierAttacker, Code: "KK", Name: "carrier attacker", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: CarrierBomber, Code: "KB", Name: "carrier bomber", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: FighterBomber, Code: "BS", Name: "fighter-bomber", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: SeaplaneBomber, Code: "SB", Name: "seaplane bomber", SkillBonus: seaplaneBomberBonus, DefaultSuppressesBonus: true},
	{ID: SeaplaneFighter, Code: "SS", Name: "seaplane fighter", SkillBonus: fighterSkillBonus},
	{ID: JetBomber, Code: "HB", Name: "jet fighter-bomber", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: ArmyFighter, Code: "RS", Name: "army fighter", SkillBonus: fighterSkillBonus},
	{ID: Interceptor, Code: "KYS", Name: "interceptor", SkillBonus: fighterSkillBonus},
	{ID: RocketInterceptor, Code: "ROS", Name: "rocket interceptor", SkillBonus: fighterSkillBonus, HighAltitudeInterceptor: true},
	{ID: LandAttacker, Code: "RK", Name: "land-based attacker", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: CarrierRecon, Code: "KT", Name: "carrier recon", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: SeaplaneRecon, Code: "ST", Name: "seaplane recon", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
	{ID: LandRecon, Code: "RT", Name: "land-based recon", SkillBonus: otherSkillBonus, DefaultSuppressesBonus: true},
}

// Types missing here cannot be improved for air power.
var standardCorrections = map[string]CorrectionRule{
	CarrierFighter:  Linear(0.2),
	FighterBomber:   Linear(0.25),
	SeaplaneFighter: Linear(0.2),
	Interceptor:     Linear(0.2),
	ArmyFighter:     Linear(0.2),
	LandAttacker:    Sqrt(0.5),
}

var standardScouting = map[string]ScoutingRule{
	CarrierRecon: {
		Sortie:     Constant(1),
		AirDefense: SearchTiers{{MinSearch: 9, Factor: 1.3}, {MinSearch: 0, Factor: 1.2}},
	},
	LandRecon: {
		Sortie: SearchTiers{{MinSearch: 9, Factor: 1.18}, {MinSearch: 0, Factor: 1.15}},
		// Air defense ignores the search value for land recon.
		AirDefense: Constant(1.18),
	},
	SeaplaneRecon: {
		Sortie:     Constant(1),
		AirDefense: SearchTiers{{MinSearch: 9, Factor: 1.16}, {MinSearch: 8, Factor: 1.13}, {MinSearch: 0, Factor: 1.1}},
	},
}

// Standard returns a catalog populated with the fourteen standard aircraft types.
func Standard() *Catalog {
	c := New()
	for _, def := range standardTypes {
		if err := c.DefineType(def); err != nil {
			panic(err)
		}
	}
	for id, rule := range standardCorrections {
		if err := c.DefineCorrectionRule(id, rule); err != nil {
			panic(err)
		}
	}
	for id, rule := range standardScouting {
		if err := c.DefineScoutingRule(id, rule); err != nil {
			panic(err)
		}
	}
	return c
}
