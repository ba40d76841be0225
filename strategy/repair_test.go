package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func damaged(s Ship) Ship {
	s.CurrentHealth = s.MaxHealth / 2
	return s
}

func TestScheduleRepairsUsesEachRepairerOnce(t *testing.T) {
	here := Point{X: 3, Y: 3}
	ships := []Ship{
		damaged(shipAt(1, here, Sniper)),
		damaged(shipAt(2, here, Battler)),
		damaged(shipAt(3, here, Scout)),
		shipAt(10, here, Engineer),
		shipAt(11, here, Engineer),
	}

	intents := ScheduleRepairs(ships)

	if assert.Len(t, intents, 2) {
		assert.Equal(t, Intent{Kind: AssignRepair, Ship: ShipRef{Id: 10}, PatientId: 1}, intents[0])
		assert.Equal(t, Intent{Kind: AssignRepair, Ship: ShipRef{Id: 11}, PatientId: 2}, intents[1])
	}
}

func TestScheduleRepairsRequiresSameLocation(t *testing.T) {
	ships := []Ship{
		damaged(shipAt(1, Point{X: 0, Y: 0}, Sniper)),
		shipAt(10, Point{X: 1, Y: 0}, Engineer),
		damaged(shipAt(2, Point{X: 1, Y: 0}, Battler)),
	}

	intents := ScheduleRepairs(ships)

	if assert.Len(t, intents, 1) {
		assert.Equal(t, int64(10), intents[0].Ship.Id)
		assert.Equal(t, int64(2), intents[0].PatientId)
	}
}

func TestScheduleRepairsSkipsSelfRepair(t *testing.T) {
	here := Point{}
	assert.Empty(t, ScheduleRepairs([]Ship{damaged(shipAt(10, here, Engineer))}))

	intents := ScheduleRepairs([]Ship{
		damaged(shipAt(10, here, Engineer)),
		shipAt(11, here, Engineer),
	})
	if assert.Len(t, intents, 1) {
		assert.Equal(t, int64(11), intents[0].Ship.Id)
		assert.Equal(t, int64(10), intents[0].PatientId)
	}
}

func TestScheduleRepairsEngineerDefendersDoNotRepair(t *testing.T) {
	here := Point{}
	ships := []Ship{
		damaged(shipAt(1, here, Sniper)),
		shipAt(2, here, EngineerDefender),
	}

	assert.Empty(t, ScheduleRepairs(ships))
}
