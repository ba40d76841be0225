package strategy

// ShipType is a stat allocation used when constructing a ship. Every archetype spends exactly
// the 20 points a new ship is allowed.
type ShipType struct {
	Name        string `json:"name"`
	Attack      int    `json:"attack"`
	Defense     int    `json:"defense"`
	Engineering int    `json:"engineering"`
	Prospecting int    `json:"prospecting"`
}

var (
	Prospector       = ShipType{Name: "prospector", Prospecting: 20}
	SniperDefender   = ShipType{Name: "sentry", Attack: 15, Defense: 5}
	EngineerDefender = ShipType{Name: "warden", Defense: 5, Engineering: 15}
	Sniper           = ShipType{Name: "sniper", Attack: 20}
	Battler          = ShipType{Name: "battler", Attack: 10, Defense: 10}
	Engineer         = ShipType{Name: "engineer", Engineering: 20}
	Scout            = ShipType{Name: "scout", Defense: 19, Prospecting: 1}
)

// Catalog lists every archetype the agent builds.
var Catalog = []ShipType{
	Prospector,
	SniperDefender,
	EngineerDefender,
	Sniper,
	Battler,
	Engineer,
	Scout,
}

const (
	ShipCost        = 1000
	AttackFleetCost = 9 * ShipCost
	UpgradeCost     = 1075
	MaxFleetSize    = 8

	MinerProspecting    = 20
	RepairerEngineering = 20

	SniperDefenderLimit   = 2
	EngineerDefenderLimit = 1

	combatHulls    = 6
	fleetEngineers = 2
)

func (t ShipType) Points() int {
	return t.Attack + t.Defense + t.Engineering + t.Prospecting
}
