package schemaverse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schemaverse/strategy"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
)

type DbTic struct {
	Id          int64     `json:"id"`
	RunId       uuid.UUID `json:"runId"`
	Tic         int64     `json:"tic"`
	Username    string    `json:"username"`
	Balance     int64     `json:"balance"`
	Committed   int64     `json:"committed"`
	IntentCount int       `json:"intentCount"`
	Refused     int       `json:"refused"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DbTicIntent struct {
	Seq    int             `json:"seq"`
	Kind   string          `json:"kind"`
	Intent strategy.Intent `json:"intent"`
}

// MigrateJournal brings the journal schema up to date.
func MigrateJournal(migrationsPath string, databaseUrl string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), databaseUrl)
	if err != nil {
		return fmt.Errorf("unable to load journal migrations: %w", err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to migrate journal: %w", err)
	}

	return nil
}

type JournalRepository interface {
	SaveTic(ctx context.Context, tic DbTic, intents []strategy.Intent) (DbTic, error)
	GetLatestTics(ctx context.Context, limit int) ([]DbTic, error)
	GetTicIntents(ctx context.Context, tic int64) ([]DbTicIntent, error)
}

type PostgresJournalRepository struct {
	Conn DbConn
}

// SaveTic records a played tic and its intents and returns the tic with Id and CreatedAt
// populated.
func (r PostgresJournalRepository) SaveTic(ctx context.Context, tic DbTic, intents []strategy.Intent) (DbTic, error) {
	tic.IntentCount = len(intents)
	err := r.Conn.QueryRow(ctx, `
		INSERT INTO daemon_tic (run_id, tic, username, balance, committed, intent_count, refused)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
		`,
		tic.RunId.String(),
		tic.Tic,
		tic.Username,
		tic.Balance,
		tic.Committed,
		tic.IntentCount,
		tic.Refused,
	).Scan(&tic.Id, &tic.CreatedAt)
	if err != nil {
		return DbTic{}, fmt.Errorf("unable to save tic %d: %w", tic.Tic, err)
	}

	for seq, intent := range intents {
		_, err := r.Conn.Exec(ctx, `
			INSERT INTO daemon_tic_intent (tic_id, seq, kind, intent)
			VALUES ($1, $2, $3, $4);
			`,
			tic.Id,
			seq,
			intent.Kind.String(),
			intent,
		)
		if err != nil {
			return DbTic{}, fmt.Errorf("unable to save intent %d of tic %d: %w", seq, tic.Tic, err)
		}
	}

	return tic, nil
}

func (r PostgresJournalRepository) GetLatestTics(ctx context.Context, limit int) ([]DbTic, error) {
	rows, err := r.Conn.Query(ctx, `
		SELECT
			 id
			,run_id::text
			,tic
			,username
			,balance
			,committed
			,intent_count
			,refused
			,created_at
		FROM daemon_tic
		ORDER BY tic DESC, id DESC
		LIMIT $1;
		`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to get latest tics: %w", err)
	}
	defer rows.Close()

	var tics []DbTic
	for rows.Next() {
		t := DbTic{}
		var runId string

		err := rows.Scan(&t.Id, &runId, &t.Tic, &t.Username, &t.Balance, &t.Committed, &t.IntentCount, &t.Refused, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unable to read tic row: %w", err)
		}

		t.RunId, err = uuid.Parse(runId)
		if err != nil {
			return nil, fmt.Errorf("unable to parse run id %q: %w", runId, err)
		}

		tics = append(tics, t)
	}

	return tics, rows.Err()
}

// GetTicIntents returns the intents of the most recent run that played tic.
func (r PostgresJournalRepository) GetTicIntents(ctx context.Context, tic int64) ([]DbTicIntent, error) {
	rows, err := r.Conn.Query(ctx, `
		WITH latest AS (
			SELECT id
			FROM daemon_tic
			WHERE tic = $1
			ORDER BY id DESC
			LIMIT 1
		)
		SELECT
			 dti.seq
			,dti.kind
			,dti.intent
		FROM daemon_tic_intent dti
		INNER JOIN latest
			ON latest.id = dti.tic_id
		ORDER BY dti.seq;
		`,
		tic,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to get intents of tic %d: %w", tic, err)
	}
	defer rows.Close()

	var intents []DbTicIntent
	for rows.Next() {
		i := DbTicIntent{}

		err := rows.Scan(&i.Seq, &i.Kind, &i.Intent)
		if err != nil {
			return nil, fmt.Errorf("unable to read intent row: %w", err)
		}

		intents = append(intents, i)
	}

	return intents, rows.Err()
}
