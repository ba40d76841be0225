package strategy

import "fmt"

type IntentKind int

const (
	Construct IntentKind = iota
	AssignMining
	AssignRepair
	SetFleetId
	Upgrade
	SetCourse
)

func (k IntentKind) String() string {
	return [...]string{"Construct", "AssignMining", "AssignRepair", "SetFleetId", "Upgrade", "SetCourse"}[k]
}

type Stat string

const (
	StatMaxFuel     Stat = "MAX_FUEL"
	StatMaxSpeed    Stat = "MAX_SPEED"
	StatRange       Stat = "RANGE"
	StatAttack      Stat = "ATTACK"
	StatDefense     Stat = "DEFENSE"
	StatEngineering Stat = "ENGINEERING"
)

// ShipRef points at a ship either by id or, for a ship constructed earlier in the same batch,
// by name.
type ShipRef struct {
	Id   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (r ShipRef) String() string {
	if r.Id != 0 {
		return fmt.Sprintf("#%d", r.Id)
	}
	return r.Name
}

// Intent is a single command for the executor. Which fields are set depends on Kind.
type Intent struct {
	Kind IntentKind `json:"kind"`
	Ship ShipRef    `json:"ship"`

	// Construct
	Archetype ShipType `json:"archetype,omitempty"`
	Location  Point    `json:"location,omitempty"`

	// Construct, AssignMining
	PlanetId int64 `json:"planetId,omitempty"`

	// AssignRepair
	PatientId int64 `json:"patientId,omitempty"`

	// SetFleetId
	FleetId int64 `json:"fleetId,omitempty"`

	// Upgrade
	Stat   Stat `json:"stat,omitempty"`
	Amount int  `json:"amount,omitempty"`

	// SetCourse
	Speed       int   `json:"speed,omitempty"`
	Destination Point `json:"destination,omitempty"`
}

func (i Intent) String() string {
	switch i.Kind {
	case Construct:
		return fmt.Sprintf("Construct(%s, %s, planet %d)", i.Archetype.Name, i.Ship, i.PlanetId)
	case AssignMining:
		return fmt.Sprintf("AssignMining(%s, planet %d)", i.Ship, i.PlanetId)
	case AssignRepair:
		return fmt.Sprintf("AssignRepair(%s, #%d)", i.Ship, i.PatientId)
	case SetFleetId:
		return fmt.Sprintf("SetFleetId(%s, %d)", i.Ship, i.FleetId)
	case Upgrade:
		return fmt.Sprintf("Upgrade(%s, %s, %d)", i.Ship, i.Stat, i.Amount)
	case SetCourse:
		return fmt.Sprintf("SetCourse(%s, %d, (%g, %g))", i.Ship, i.Speed, i.Destination.X, i.Destination.Y)
	}

	return fmt.Sprintf("Intent(%d)", i.Kind)
}
