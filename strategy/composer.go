package strategy

// ComposeFleet assigns a freshly built batch to fleets. maxFleetId and maxFleetSize describe
// the highest numbered fleet in the snapshot; maxFleetId 0 means no fleet exists yet.
//
// An under-strength fleet is topped up to MaxFleetSize from the front of the batch and
// whatever is left goes to the next fleet id. With no fleet yet, or a full one, the whole batch
// becomes a new fleet.
func ComposeFleet(batch []ShipRef, maxFleetId int64, maxFleetSize int) []Intent {
	var intents []Intent
	if len(batch) == 0 {
		return intents
	}

	rest := batch
	if maxFleetId > 0 && maxFleetSize < MaxFleetSize {
		open := MaxFleetSize - maxFleetSize
		if open > len(rest) {
			open = len(rest)
		}

		for _, ref := range rest[:open] {
			intents = append(intents, Intent{Kind: SetFleetId, Ship: ref, FleetId: maxFleetId})
		}
		rest = rest[open:]
	}

	newFleetId := maxFleetId + 1
	for _, ref := range rest {
		intents = append(intents, Intent{Kind: SetFleetId, Ship: ref, FleetId: newFleetId})
	}

	return intents
}
