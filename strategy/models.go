package strategy

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Player struct {
	Id          int64  `json:"id"`
	Username    string `json:"username"`
	Balance     int64  `json:"balance"`
	FuelReserve int64  `json:"fuelReserve"`
}

type Planet struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	MineLimit   int    `json:"mineLimit"`
	Location    Point  `json:"location"`
	ConquerorId *int64 `json:"conquerorId"`
}

// Action values as stored in the ships action column. An empty action is an idle ship.
const (
	ActionIdle   = ""
	ActionMine   = "MINE"
	ActionRepair = "REPAIR"
	ActionMove   = "MOVE"
	ActionAttack = "ATTACK"
)

type Ship struct {
	Id             int64  `json:"id"`
	FleetId        *int64 `json:"fleetId"`
	PlayerId       int64  `json:"playerId"`
	Name           string `json:"name"`
	CurrentHealth  int    `json:"currentHealth"`
	MaxHealth      int    `json:"maxHealth"`
	CurrentFuel    int    `json:"currentFuel"`
	MaxFuel        int    `json:"maxFuel"`
	Speed          int    `json:"speed"`
	MaxSpeed       int    `json:"maxSpeed"`
	Range          int    `json:"range"`
	Attack         int    `json:"attack"`
	Defense        int    `json:"defense"`
	Engineering    int    `json:"engineering"`
	Prospecting    int    `json:"prospecting"`
	Location       Point  `json:"location"`
	Destination    *Point `json:"destination"`
	Action         string `json:"action"`
	ActionTargetId *int64 `json:"actionTargetId"`
	RepairPriority int    `json:"repairPriority"`
}

func (s Ship) InFleet() bool {
	return s.FleetId != nil && *s.FleetId > 0
}

func (s Ship) Damaged() bool {
	return s.CurrentHealth < s.MaxHealth
}

type Fleet struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Snapshot is everything the player owns at the start of a tick. It is treated as immutable
// while a tick is planned.
type Snapshot struct {
	Tic     int64
	Player  Player
	Planets []Planet
	Ships   []Ship
	Fleets  []Fleet
}

// ShipsAt returns the owned ships whose location equals loc, in snapshot order.
func (s Snapshot) ShipsAt(loc Point) []Ship {
	var ships []Ship
	for _, ship := range s.Ships {
		if ship.Location == loc {
			ships = append(ships, ship)
		}
	}

	return ships
}

// NearestOwnedPlanet returns the owned planet closest to loc. Ties go to the planet listed
// first.
func (s Snapshot) NearestOwnedPlanet(loc Point) (Planet, bool) {
	found := false
	nearest := Planet{}
	bestDistance := 0.0
	for _, p := range s.Planets {
		d := distanceSquared(p.Location, loc)
		if !found || d < bestDistance {
			found = true
			nearest = p
			bestDistance = d
		}
	}

	return nearest, found
}

// FleetMembers groups owned ships by fleet id. Unfleeted ships are left out.
func (s Snapshot) FleetMembers() map[int64][]Ship {
	members := make(map[int64][]Ship)
	for _, ship := range s.Ships {
		if !ship.InFleet() {
			continue
		}
		members[*ship.FleetId] = append(members[*ship.FleetId], ship)
	}

	return members
}

// MaxFleetId is the highest fleet id seen on either a ship or a fleet record, 0 when there
// are no fleets.
func (s Snapshot) MaxFleetId() int64 {
	max := int64(0)
	for _, f := range s.Fleets {
		if f.Id > max {
			max = f.Id
		}
	}
	for _, ship := range s.Ships {
		if ship.InFleet() && *ship.FleetId > max {
			max = *ship.FleetId
		}
	}

	return max
}

func distanceSquared(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
