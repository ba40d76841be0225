package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"schemaverse"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v4/pgxpool"
)

func NewRouter(s Server) http.Handler {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/", s.Index)
	r.Route("/api", func(r chi.Router) {
		r.Get("/", s.Index)

		// journal
		r.Route("/tics", func(r chi.Router) {
			r.Get("/", s.GetTics)
			r.Get("/{tic}/intents", s.GetTicIntents)
		})

		// live game state
		r.Get("/garrison", s.GetGarrison)
		r.Get("/planets/nearest", s.GetNearestPlanet)
	})

	return r
}

func main() {
	config, err := schemaverse.LoadConfig()
	if err != nil {
		log.Fatalf("Unable to load app config: %s", err)
	}
	if config.JournalPostgresUrl == "" {
		log.Fatalln("JOURNAL_POSTGRES_URL is required to serve the journal")
	}

	ctx := context.Background()

	pool, err := pgxpool.Connect(ctx, config.PostgresUrl)
	if err != nil {
		log.Fatalf("Unable to connect to schemaverse: %s", err)
	}
	defer pool.Close()

	journalPool, err := pgxpool.Connect(ctx, config.JournalPostgresUrl)
	if err != nil {
		log.Fatalf("Unable to connect to journal database: %s", err)
	}
	defer journalPool.Close()

	s := NewServer(schemaverse.PostgresJournalRepository{Conn: journalPool}, schemaverse.NewPostgresStore(pool))

	log.Printf("Listening on %s\n", config.ApiAddr)
	log.Fatal(http.ListenAndServe(config.ApiAddr, NewRouter(s)))
}
