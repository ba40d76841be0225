package strategy

import (
	"fmt"
	"sort"
)

type PlanetLocator interface {
	NearestOwnedPlanet(loc Point) (Planet, bool)
}

// PlanCourses sends every fleet toward the rally point. Each ship travels on half of its
// current fuel; ships with nothing to spend, or already heading for the rally point, are left
// alone. Fleets that can't be targeted come back as errors alongside the intents that could be
// planned.
func PlanCourses(fleets []Fleet, members map[int64][]Ship, planets PlanetLocator, rally Point) ([]Intent, []error) {
	var intents []Intent
	var skipped []error

	for _, fleetId := range fleetIds(fleets, members) {
		ships := members[fleetId]
		if len(ships) == 0 {
			skipped = append(skipped, fmt.Errorf("fleet %d has no ships: %w", fleetId, InconsistentSnapshotError))
			continue
		}

		anchor := ships[0]
		if _, ok := planets.NearestOwnedPlanet(anchor.Location); !ok {
			skipped = append(skipped, fmt.Errorf("fleet %d has no staging planet: %w", fleetId, NoEligibleTargetError))
			continue
		}

		planned := 0
		for _, s := range ships {
			speed := s.CurrentFuel / 2
			if speed < 1 {
				continue
			}
			if s.Destination != nil && *s.Destination == rally {
				continue
			}

			planned++
			intents = append(intents, Intent{
				Kind:        SetCourse,
				Ship:        ShipRef{Id: s.Id},
				Speed:       speed,
				Destination: rally,
			})
		}

		if planned == 0 {
			skipped = append(skipped, fmt.Errorf("fleet %d has no ship to send: %w", fleetId, NoEligibleTargetError))
		}
	}

	return intents, skipped
}

func fleetIds(fleets []Fleet, members map[int64][]Ship) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, f := range fleets {
		if !seen[f.Id] {
			seen[f.Id] = true
			ids = append(ids, f.Id)
		}
	}
	for id := range members {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
