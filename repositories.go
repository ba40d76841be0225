package schemaverse

import (
	"context"
	"fmt"

	"schemaverse/strategy"
)

type PlayerRepository interface {
	GetPlayer(ctx context.Context) (strategy.Player, error)
	GetCurrentTic(ctx context.Context) (int64, error)
}

type PostgresPlayerRepository struct {
	Conn DbConn
}

func (r PostgresPlayerRepository) GetPlayer(ctx context.Context) (strategy.Player, error) {
	p := strategy.Player{}
	err := r.Conn.QueryRow(ctx, `
		SELECT
			 id::bigint
			,username
			,balance::bigint
			,fuel_reserve::bigint
		FROM my_player;
		`,
	).Scan(&p.Id, &p.Username, &p.Balance, &p.FuelReserve)
	if err != nil {
		return strategy.Player{}, fmt.Errorf("unable to get player: %w", err)
	}

	return p, nil
}

func (r PostgresPlayerRepository) GetCurrentTic(ctx context.Context) (int64, error) {
	var tic int64
	err := r.Conn.QueryRow(ctx, `SELECT last_value::bigint FROM tic_seq;`).Scan(&tic)
	if err != nil {
		return 0, fmt.Errorf("unable to get current tic: %w", err)
	}

	return tic, nil
}

type PlanetRepository interface {
	GetOwnedPlanets(ctx context.Context) ([]strategy.Planet, error)
	GetNearestOwnedPlanet(ctx context.Context, location strategy.Point) (strategy.Planet, error)
}

type PostgresPlanetRepository struct {
	Conn DbConn
}

const planetColumns = `
			 id::bigint
			,name
			,mine_limit
			,location_x::float8
			,location_y::float8
			,conqueror_id::bigint`

func scanPlanet(row interface{ Scan(...interface{}) error }) (strategy.Planet, error) {
	p := strategy.Planet{}
	err := row.Scan(&p.Id, &p.Name, &p.MineLimit, &p.Location.X, &p.Location.Y, &p.ConquerorId)
	return p, err
}

func (r PostgresPlanetRepository) GetOwnedPlanets(ctx context.Context) ([]strategy.Planet, error) {
	rows, err := r.Conn.Query(ctx, `
		SELECT`+planetColumns+`
		FROM planets
		WHERE conqueror_id = GET_PLAYER_ID(SESSION_USER)
		ORDER BY id;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to get owned planets: %w", err)
	}
	defer rows.Close()

	var planets []strategy.Planet
	for rows.Next() {
		p, err := scanPlanet(rows)
		if err != nil {
			return nil, fmt.Errorf("unable to read planet row: %w", err)
		}

		planets = append(planets, p)
	}

	return planets, rows.Err()
}

// GetNearestOwnedPlanet returns pgx.ErrNoRows (wrapped) when the player owns no planet.
func (r PostgresPlanetRepository) GetNearestOwnedPlanet(ctx context.Context, location strategy.Point) (strategy.Planet, error) {
	p, err := scanPlanet(r.Conn.QueryRow(ctx, `
		SELECT`+planetColumns+`
		FROM planets
		WHERE conqueror_id = GET_PLAYER_ID(SESSION_USER)
		ORDER BY location <-> POINT($1, $2), id
		LIMIT 1;
		`,
		location.X,
		location.Y,
	))
	if err != nil {
		return strategy.Planet{}, fmt.Errorf("unable to get nearest owned planet to (%g, %g): %w", location.X, location.Y, err)
	}

	return p, nil
}

type ShipRepository interface {
	GetOwnedShips(ctx context.Context) ([]strategy.Ship, error)
	GetShipsAt(ctx context.Context, location strategy.Point) ([]strategy.Ship, error)
}

type PostgresShipRepository struct {
	Conn DbConn
}

const shipColumns = `
			 id::bigint
			,fleet_id::bigint
			,player_id::bigint
			,name
			,current_health
			,max_health
			,current_fuel
			,max_fuel
			,speed
			,max_speed
			,range
			,attack
			,defense
			,engineering
			,prospecting
			,location_x::float8
			,location_y::float8
			,destination_x::float8
			,destination_y::float8
			,COALESCE(action, '')
			,action_target_id::bigint
			,repair_priority`

func (r PostgresShipRepository) queryShips(ctx context.Context, sql string, args ...interface{}) ([]strategy.Ship, error) {
	rows, err := r.Conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ships []strategy.Ship
	for rows.Next() {
		s := strategy.Ship{}
		var destinationX, destinationY *float64

		err := rows.Scan(
			&s.Id,
			&s.FleetId,
			&s.PlayerId,
			&s.Name,
			&s.CurrentHealth,
			&s.MaxHealth,
			&s.CurrentFuel,
			&s.MaxFuel,
			&s.Speed,
			&s.MaxSpeed,
			&s.Range,
			&s.Attack,
			&s.Defense,
			&s.Engineering,
			&s.Prospecting,
			&s.Location.X,
			&s.Location.Y,
			&destinationX,
			&destinationY,
			&s.Action,
			&s.ActionTargetId,
			&s.RepairPriority,
		)
		if err != nil {
			return nil, fmt.Errorf("unable to read ship row: %w", err)
		}

		if destinationX != nil && destinationY != nil {
			s.Destination = &strategy.Point{X: *destinationX, Y: *destinationY}
		}

		ships = append(ships, s)
	}

	return ships, rows.Err()
}

func (r PostgresShipRepository) GetOwnedShips(ctx context.Context) ([]strategy.Ship, error) {
	ships, err := r.queryShips(ctx, `
		SELECT`+shipColumns+`
		FROM my_ships
		ORDER BY id;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to get owned ships: %w", err)
	}

	return ships, nil
}

func (r PostgresShipRepository) GetShipsAt(ctx context.Context, location strategy.Point) ([]strategy.Ship, error) {
	ships, err := r.queryShips(ctx, `
		SELECT`+shipColumns+`
		FROM my_ships
		WHERE location_x = $1
			AND location_y = $2
		ORDER BY id;
		`,
		location.X,
		location.Y,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to get ships at (%g, %g): %w", location.X, location.Y, err)
	}

	return ships, nil
}

type FleetRepository interface {
	GetOwnedFleets(ctx context.Context) ([]strategy.Fleet, error)
}

type PostgresFleetRepository struct {
	Conn DbConn
}

func (r PostgresFleetRepository) GetOwnedFleets(ctx context.Context) ([]strategy.Fleet, error) {
	rows, err := r.Conn.Query(ctx, `
		SELECT
			 id::bigint
			,name
			,COALESCE(enabled, false)
		FROM my_fleets
		ORDER BY id;
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to get owned fleets: %w", err)
	}
	defer rows.Close()

	var fleets []strategy.Fleet
	for rows.Next() {
		f := strategy.Fleet{}

		err := rows.Scan(&f.Id, &f.Name, &f.Enabled)
		if err != nil {
			return nil, fmt.Errorf("unable to read fleet row: %w", err)
		}

		fleets = append(fleets, f)
	}

	return fleets, rows.Err()
}

// Store groups the repositories the agent reads the game from.
type Store struct {
	Players PlayerRepository
	Planets PlanetRepository
	Ships   ShipRepository
	Fleets  FleetRepository
}

func NewPostgresStore(conn DbConn) Store {
	return Store{
		Players: PostgresPlayerRepository{Conn: conn},
		Planets: PostgresPlanetRepository{Conn: conn},
		Ships:   PostgresShipRepository{Conn: conn},
		Fleets:  PostgresFleetRepository{Conn: conn},
	}
}

// LoadSnapshot reads everything the player owns for the given tic.
func LoadSnapshot(ctx context.Context, store Store, tic int64) (strategy.Snapshot, error) {
	player, err := store.Players.GetPlayer(ctx)
	if err != nil {
		return strategy.Snapshot{}, err
	}

	planets, err := store.Planets.GetOwnedPlanets(ctx)
	if err != nil {
		return strategy.Snapshot{}, err
	}

	ships, err := store.Ships.GetOwnedShips(ctx)
	if err != nil {
		return strategy.Snapshot{}, err
	}

	fleets, err := store.Fleets.GetOwnedFleets(ctx)
	if err != nil {
		return strategy.Snapshot{}, err
	}

	return strategy.Snapshot{
		Tic:     tic,
		Player:  player,
		Planets: planets,
		Ships:   ships,
		Fleets:  fleets,
	}, nil
}
