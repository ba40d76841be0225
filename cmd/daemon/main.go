package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schemaverse"
	"schemaverse/strategy"

	"github.com/jackc/pgx/v4/pgxpool"
)

func main() {
	config, err := schemaverse.LoadConfig()
	if err != nil {
		log.Fatalf("Unable to load app config: %s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.Connect(ctx, config.PostgresUrl)
	if err != nil {
		log.Fatalf("Unable to connect to schemaverse: %s", err)
	}
	defer pool.Close()

	var journal schemaverse.JournalRepository
	if config.EnableJournal {
		if err := schemaverse.MigrateJournal(config.MigrationsPath, config.JournalPostgresUrl); err != nil {
			log.Fatalln(err)
		}

		journalPool, err := pgxpool.Connect(ctx, config.JournalPostgresUrl)
		if err != nil {
			log.Fatalf("Unable to connect to journal database: %s", err)
		}
		defer journalPool.Close()

		journal = schemaverse.PostgresJournalRepository{Conn: journalPool}
	}

	now := time.Now()
	orchestrator := strategy.NewOrchestrator(
		strategy.NewSequence(now.Unix()),
		rand.New(rand.NewSource(now.UnixNano())),
		strategy.Options{
			Rally:        strategy.Point{X: config.RallyX, Y: config.RallyY},
			EnableAttack: config.EnableAttack,
			Logger:       log.Default(),
		},
	)

	agent := schemaverse.NewAgent(pool, journal, orchestrator, config.PollInterval)
	err = agent.Run(ctx)
	if err != nil && ctx.Err() == nil {
		log.Fatalln(err)
	}

	log.Printf("Agent run %s stopped after tic %d\n", agent.RunId(), agent.LastTic())
}
