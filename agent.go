package schemaverse

import (
	"context"
	"fmt"
	"log"
	"time"

	"schemaverse/strategy"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Agent plays every new tic once. Reading the snapshot and executing the plan share one
// transaction, so a failed tic leaves no trace in the game and is played again from a fresh
// snapshot on the next poll.
type Agent struct {
	db           TxBeginner
	journal      JournalRepository
	orchestrator *strategy.Orchestrator
	limiter      *rate.Limiter
	runId        uuid.UUID
	lastTic      int64
}

// NewAgent creates an agent. journal may be nil to skip journaling.
func NewAgent(db TxBeginner, journal JournalRepository, orchestrator *strategy.Orchestrator, pollInterval time.Duration) *Agent {
	return &Agent{
		db:           db,
		journal:      journal,
		orchestrator: orchestrator,
		limiter:      rate.NewLimiter(rate.Every(pollInterval), 1),
		runId:        uuid.New(),
	}
}

func (a *Agent) RunId() uuid.UUID {
	return a.runId
}

func (a *Agent) LastTic() int64 {
	return a.lastTic
}

// Run polls until ctx is cancelled. Errors from a single poll are logged and retried on the
// next one.
func (a *Agent) Run(ctx context.Context) error {
	log.Printf("Agent run %s started\n", a.runId)
	for {
		if err := a.limiter.Wait(ctx); err != nil {
			return err
		}

		if err := a.Poll(ctx); err != nil {
			log.Printf("Unable to play tic: %s\n", err)
		}
	}
}

// Poll plays the current tic if it hasn't been played yet.
func (a *Agent) Poll(ctx context.Context) error {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("unable to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	store := NewPostgresStore(tx)
	tic, err := store.Players.GetCurrentTic(ctx)
	if err != nil {
		return err
	}
	if tic <= a.lastTic {
		return nil
	}

	snapshot, err := LoadSnapshot(ctx, store, tic)
	if err != nil {
		return err
	}

	plan := a.orchestrator.Plan(snapshot)
	result, err := ExecuteIntents(ctx, tx, snapshot.Player.Username, plan.Intents)
	if err != nil {
		return fmt.Errorf("tic %d: %w", tic, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("unable to commit tic %d: %w", tic, err)
	}
	a.lastTic = tic

	log.Printf("%s -- Played tic %d: %d intents, %d refused, committed %d of %d\n",
		snapshot.Player.Username, tic, result.Executed, result.Refused, plan.Committed, snapshot.Player.Balance)

	if a.journal != nil {
		_, err := a.journal.SaveTic(ctx, DbTic{
			RunId:     a.runId,
			Tic:       tic,
			Username:  snapshot.Player.Username,
			Balance:   snapshot.Player.Balance,
			Committed: plan.Committed,
			Refused:   result.Refused,
		}, plan.Intents)
		if err != nil {
			// The tic itself went through, only the record of it is lost.
			log.Printf("%s -- Unable to journal tic %d: %s\n", snapshot.Player.Username, tic, err)
		}
	}

	return nil
}
