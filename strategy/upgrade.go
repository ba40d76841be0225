package strategy

import "fmt"

// PlanUpgrades walks fleets 1..maxFleetId in order and upgrades every ship of a fleet while
// half of the remaining budget covers UpgradeCost per ship. The first fleet that can't be
// afforded ends the walk for this tick; fleets after it are not considered even if they are
// smaller. Fleet ids with no members are skipped.
func PlanUpgrades(members map[int64][]Ship, maxFleetId int64, b *Budget) ([]Intent, error) {
	var intents []Intent
	for fleetId := int64(1); fleetId <= maxFleetId; fleetId++ {
		ships := members[fleetId]
		if len(ships) == 0 {
			continue
		}

		cost := int64(UpgradeCost * len(ships))
		if b.Remaining()/2 < cost {
			return intents, fmt.Errorf("fleet %d upgrade needs %d, half of remaining is %d: %w", fleetId, cost, b.Remaining()/2, InsufficientFundsError)
		}
		if err := b.Reserve(cost); err != nil {
			return intents, err
		}

		for _, s := range ships {
			intents = append(intents, upgradeShip(s)...)
		}
	}

	return intents, nil
}

func upgradeShip(s Ship) []Intent {
	ref := ShipRef{Id: s.Id}
	intents := []Intent{
		{Kind: Upgrade, Ship: ref, Stat: StatMaxFuel, Amount: 25},
		{Kind: Upgrade, Ship: ref, Stat: StatMaxSpeed, Amount: 25},
		{Kind: Upgrade, Ship: ref, Stat: StatRange, Amount: 1},
	}

	switch {
	case s.Attack > s.Defense:
		intents = append(intents, Intent{Kind: Upgrade, Ship: ref, Stat: StatAttack, Amount: 2})
	case s.Engineering > 0:
		intents = append(intents, Intent{Kind: Upgrade, Ship: ref, Stat: StatEngineering, Amount: 2})
	case s.Attack == s.Defense:
		intents = append(intents,
			Intent{Kind: Upgrade, Ship: ref, Stat: StatAttack, Amount: 1},
			Intent{Kind: Upgrade, Ship: ref, Stat: StatDefense, Amount: 1},
		)
	}

	return intents
}
