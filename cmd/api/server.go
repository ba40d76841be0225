package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"schemaverse"
	"schemaverse/strategy"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v4"
)

const defaultTicLimit = 50

type Server struct {
	journal schemaverse.JournalRepository
	planets schemaverse.PlanetRepository
	ships   schemaverse.ShipRepository
}

func NewServer(journal schemaverse.JournalRepository, store schemaverse.Store) Server {
	return Server{journal: journal, planets: store.Planets, ships: store.Ships}
}

func writeJson(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("unable to encode response: %s", err)
	}
}

func locationFromQuery(r *http.Request) (strategy.Point, error) {
	x, err := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	if err != nil {
		return strategy.Point{}, err
	}

	y, err := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if err != nil {
		return strategy.Point{}, err
	}

	return strategy.Point{X: x, Y: y}, nil
}

func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	writeJson(w, map[string]string{"status": "ok"})
}

func (s *Server) GetTics(w http.ResponseWriter, r *http.Request) {
	limit := defaultTicLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	tics, err := s.journal.GetLatestTics(r.Context(), limit)
	if err != nil {
		log.Printf("unable to get tics: %s", err)
		http.Error(w, http.StatusText(500), http.StatusInternalServerError)
		return
	}

	writeJson(w, tics)
}

func (s *Server) GetTicIntents(w http.ResponseWriter, r *http.Request) {
	tic, err := strconv.ParseInt(chi.URLParam(r, "tic"), 10, 64)
	if err != nil {
		http.Error(w, "tic must be an integer", http.StatusBadRequest)
		return
	}

	intents, err := s.journal.GetTicIntents(r.Context(), tic)
	if err != nil {
		log.Printf("unable to get intents of tic %d: %s", tic, err)
		http.Error(w, http.StatusText(500), http.StatusInternalServerError)
		return
	}
	if len(intents) == 0 {
		http.Error(w, http.StatusText(404), http.StatusNotFound)
		return
	}

	writeJson(w, intents)
}

func (s *Server) GetGarrison(w http.ResponseWriter, r *http.Request) {
	location, err := locationFromQuery(r)
	if err != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}

	ships, err := s.ships.GetShipsAt(r.Context(), location)
	if err != nil {
		log.Printf("unable to get garrison: %s", err)
		http.Error(w, http.StatusText(500), http.StatusInternalServerError)
		return
	}

	writeJson(w, ships)
}

func (s *Server) GetNearestPlanet(w http.ResponseWriter, r *http.Request) {
	location, err := locationFromQuery(r)
	if err != nil {
		http.Error(w, "x and y must be numbers", http.StatusBadRequest)
		return
	}

	planet, err := s.planets.GetNearestOwnedPlanet(r.Context(), location)
	if errors.Is(err, pgx.ErrNoRows) {
		http.Error(w, http.StatusText(404), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("unable to get nearest planet: %s", err)
		http.Error(w, http.StatusText(500), http.StatusInternalServerError)
		return
	}

	writeJson(w, planet)
}
