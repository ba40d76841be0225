package schemaverse

import (
	"context"
	"errors"
	"fmt"
	"log"

	"schemaverse/strategy"
)

var UnresolvedShipError = errors.New("ship was not constructed earlier in the batch")

// ExecutionResult reports what happened to a batch. Refused counts commands the game
// answered with false, for example an upgrade past a ship's limits; they do not fail the batch.
type ExecutionResult struct {
	Executed         int
	Refused          int
	ConstructedShips map[string]int64
}

// ExecuteIntents runs the intents in order on conn, normally a transaction. Ships built in
// the batch are referred to by name until the insert hands back their id. The first SQL error
// stops the batch and is returned so the caller can roll back.
func ExecuteIntents(ctx context.Context, conn DbConn, username string, intents []strategy.Intent) (ExecutionResult, error) {
	e := executor{
		conn:     conn,
		username: username,
		result:   ExecutionResult{ConstructedShips: make(map[string]int64)},
		fleets:   make(map[int64]bool),
	}

	for _, intent := range intents {
		if err := e.execute(ctx, intent); err != nil {
			return e.result, fmt.Errorf("unable to execute %s: %w", intent, err)
		}
		e.result.Executed++
	}

	return e.result, nil
}

type executor struct {
	conn     DbConn
	username string
	result   ExecutionResult
	fleets   map[int64]bool
}

func (e *executor) shipId(ref strategy.ShipRef) (int64, error) {
	if ref.Id != 0 {
		return ref.Id, nil
	}

	id, ok := e.result.ConstructedShips[ref.Name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", ref.Name, UnresolvedShipError)
	}

	return id, nil
}

func (e *executor) execute(ctx context.Context, intent strategy.Intent) error {
	if intent.Kind == strategy.Construct {
		return e.construct(ctx, intent)
	}

	id, err := e.shipId(intent.Ship)
	if err != nil {
		return err
	}

	switch intent.Kind {
	case strategy.AssignMining:
		return e.setAction(ctx, id, strategy.ActionMine, intent.PlanetId)
	case strategy.AssignRepair:
		return e.setAction(ctx, id, strategy.ActionRepair, intent.PatientId)
	case strategy.SetFleetId:
		return e.setFleet(ctx, id, intent.FleetId)
	case strategy.Upgrade:
		var ok bool
		err := e.conn.QueryRow(ctx, `SELECT UPGRADE($1, $2, $3);`, id, string(intent.Stat), intent.Amount).Scan(&ok)
		if err != nil {
			return err
		}
		e.refusedUnless(ok, intent)
		return nil
	case strategy.SetCourse:
		var ok bool
		err := e.conn.QueryRow(ctx, `
			SELECT SHIP_COURSE_CONTROL($1, $2, NULL, POINT($3, $4));
			`,
			id,
			intent.Speed,
			intent.Destination.X,
			intent.Destination.Y,
		).Scan(&ok)
		if err != nil {
			return err
		}
		e.refusedUnless(ok, intent)
		return nil
	}

	return fmt.Errorf("unknown intent kind %d", intent.Kind)
}

func (e *executor) construct(ctx context.Context, intent strategy.Intent) error {
	var id int64
	err := e.conn.QueryRow(ctx, `
		INSERT INTO my_ships (name, attack, defense, engineering, prospecting, location)
		VALUES ($1, $2, $3, $4, $5, POINT($6, $7))
		RETURNING id::bigint;
		`,
		intent.Ship.Name,
		intent.Archetype.Attack,
		intent.Archetype.Defense,
		intent.Archetype.Engineering,
		intent.Archetype.Prospecting,
		intent.Location.X,
		intent.Location.Y,
	).Scan(&id)
	if err != nil {
		return err
	}

	log.Printf("%s -- Constructed %s #%d\n", e.username, intent.Ship.Name, id)
	e.result.ConstructedShips[intent.Ship.Name] = id
	return nil
}

func (e *executor) setAction(ctx context.Context, shipId int64, action string, targetId int64) error {
	_, err := e.conn.Exec(ctx, `
		UPDATE my_ships
		SET  action = $2
			,action_target_id = $3
		WHERE id = $1;
		`,
		shipId,
		action,
		targetId,
	)

	return err
}

func (e *executor) setFleet(ctx context.Context, shipId int64, fleetId int64) error {
	if !e.fleets[fleetId] {
		// The first ship assigned to a new fleet id brings the fleet into existence.
		_, err := e.conn.Exec(ctx, `
			INSERT INTO my_fleets (id, name, enabled)
			SELECT $1, $2, true
			WHERE NOT EXISTS (SELECT 1 FROM my_fleets WHERE id = $1);
			`,
			fleetId,
			fmt.Sprintf("fleet_%d", fleetId),
		)
		if err != nil {
			return err
		}
		e.fleets[fleetId] = true
	}

	_, err := e.conn.Exec(ctx, `
		UPDATE my_ships
		SET fleet_id = $2
		WHERE id = $1;
		`,
		shipId,
		fleetId,
	)

	return err
}

func (e *executor) refusedUnless(ok bool, intent strategy.Intent) {
	if ok {
		return
	}

	log.Printf("%s -- Game refused %s\n", e.username, intent)
	e.result.Refused++
}
