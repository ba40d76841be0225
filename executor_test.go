package schemaverse

import (
	"context"
	"errors"
	"testing"

	"schemaverse/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func returning(values ...interface{}) func(args []interface{}) ([][]interface{}, error) {
	return func(args []interface{}) ([][]interface{}, error) {
		return [][]interface{}{values}, nil
	}
}

func TestExecuteIntents(t *testing.T) {
	conn := &fakeConn{}
	conn.on("INSERT INTO my_ships", returning(int64(101)))
	conn.on("UPGRADE", returning(false))
	conn.on("SHIP_COURSE_CONTROL", returning(true))

	intents := []strategy.Intent{
		{Kind: strategy.Construct, Ship: strategy.ShipRef{Name: "prospector_Earth_1"}, Archetype: strategy.Prospector, Location: strategy.Point{X: 3, Y: 4}, PlanetId: 9},
		{Kind: strategy.AssignMining, Ship: strategy.ShipRef{Name: "prospector_Earth_1"}, PlanetId: 9},
		{Kind: strategy.SetFleetId, Ship: strategy.ShipRef{Name: "prospector_Earth_1"}, FleetId: 3},
		{Kind: strategy.SetFleetId, Ship: strategy.ShipRef{Id: 7}, FleetId: 3},
		{Kind: strategy.Upgrade, Ship: strategy.ShipRef{Id: 7}, Stat: strategy.StatMaxSpeed, Amount: 5},
		{Kind: strategy.SetCourse, Ship: strategy.ShipRef{Id: 7}, Speed: 50, Destination: strategy.Point{X: 10, Y: -10}},
		{Kind: strategy.AssignRepair, Ship: strategy.ShipRef{Id: 8}, PatientId: 7},
	}

	result, err := ExecuteIntents(context.Background(), conn, "tester", intents)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Executed)
	assert.Equal(t, 1, result.Refused)
	assert.Equal(t, map[string]int64{"prospector_Earth_1": 101}, result.ConstructedShips)

	inserts := conn.callsMatching("INSERT INTO my_ships")
	require.Len(t, inserts, 1)
	assert.Equal(t, []interface{}{"prospector_Earth_1", 0, 0, 0, 20, 3.0, 4.0}, inserts[0].args)

	actions := conn.callsMatching("SET  action")
	require.Len(t, actions, 2)
	assert.Equal(t, []interface{}{int64(101), strategy.ActionMine, int64(9)}, actions[0].args)
	assert.Equal(t, []interface{}{int64(8), strategy.ActionRepair, int64(7)}, actions[1].args)

	fleetInserts := conn.callsMatching("INSERT INTO my_fleets")
	require.Len(t, fleetInserts, 1)
	assert.Equal(t, []interface{}{int64(3), "fleet_3"}, fleetInserts[0].args)

	fleetUpdates := conn.callsMatching("SET fleet_id")
	require.Len(t, fleetUpdates, 2)
	assert.Equal(t, []interface{}{int64(101), int64(3)}, fleetUpdates[0].args)
	assert.Equal(t, []interface{}{int64(7), int64(3)}, fleetUpdates[1].args)

	upgrades := conn.callsMatching("UPGRADE")
	require.Len(t, upgrades, 1)
	assert.Equal(t, []interface{}{int64(7), "MAX_SPEED", 5}, upgrades[0].args)

	courses := conn.callsMatching("SHIP_COURSE_CONTROL")
	require.Len(t, courses, 1)
	assert.Equal(t, []interface{}{int64(7), 50, 10.0, -10.0}, courses[0].args)
}

func TestExecuteIntentsUnresolvedShip(t *testing.T) {
	conn := &fakeConn{}

	intents := []strategy.Intent{
		{Kind: strategy.AssignMining, Ship: strategy.ShipRef{Name: "ghost"}, PlanetId: 1},
	}

	result, err := ExecuteIntents(context.Background(), conn, "tester", intents)
	assert.True(t, errors.Is(err, UnresolvedShipError))
	assert.Equal(t, 0, result.Executed)
	assert.Empty(t, conn.calls)
}

func TestExecuteIntentsStopsAtFirstError(t *testing.T) {
	conn := &fakeConn{}
	dbError := errors.New("insufficient funds")
	conn.on("INSERT INTO my_ships", func(args []interface{}) ([][]interface{}, error) {
		return nil, dbError
	})

	intents := []strategy.Intent{
		{Kind: strategy.AssignRepair, Ship: strategy.ShipRef{Id: 1}, PatientId: 2},
		{Kind: strategy.Construct, Ship: strategy.ShipRef{Name: "sniper_Earth_2"}, Archetype: strategy.Sniper},
		{Kind: strategy.AssignRepair, Ship: strategy.ShipRef{Id: 3}, PatientId: 2},
	}

	result, err := ExecuteIntents(context.Background(), conn, "tester", intents)
	assert.True(t, errors.Is(err, dbError))
	assert.Equal(t, 1, result.Executed)
	assert.Len(t, conn.callsMatching("SET  action"), 1)
}
