package strategy

func IsMiner(s Ship) bool {
	return s.Prospecting >= MinerProspecting
}

func IsSniperDefender(s Ship) bool {
	return s.Attack >= 15 && s.Defense >= 5
}

func IsEngineerDefender(s Ship) bool {
	return s.Engineering >= 15 && s.Defense >= 5
}

func IsRepairer(s Ship) bool {
	return s.Engineering >= RepairerEngineering
}

func countShips(garrison []Ship, qualifies func(Ship) bool) int {
	n := 0
	for _, s := range garrison {
		if qualifies(s) {
			n++
		}
	}

	return n
}

// CanAddMiner reports whether planet p has room for another miner given the ships currently
// parked on it.
func CanAddMiner(p Planet, garrison []Ship) bool {
	return countShips(garrison, IsMiner) < p.MineLimit
}

func CanAddSniperDefender(p Planet, garrison []Ship) bool {
	return countShips(garrison, IsSniperDefender) < SniperDefenderLimit
}

func CanAddEngineerDefender(p Planet, garrison []Ship) bool {
	return countShips(garrison, IsEngineerDefender) < EngineerDefenderLimit
}
