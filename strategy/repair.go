package strategy

// ScheduleRepairs pairs each damaged ship with the first unused repairer parked at the same
// location. Each repairer works on one patient per tick and each patient gets at most one
// repairer. Patients nobody can reach are picked up again next tick.
func ScheduleRepairs(ships []Ship) []Intent {
	var patients, repairers []Ship
	for _, s := range ships {
		if s.Damaged() {
			patients = append(patients, s)
		}
		if IsRepairer(s) {
			repairers = append(repairers, s)
		}
	}

	var intents []Intent
	used := make(map[int64]bool)
	for _, patient := range patients {
		for _, repairer := range repairers {
			if used[repairer.Id] || repairer.Id == patient.Id {
				continue
			}
			if repairer.Location != patient.Location {
				continue
			}

			used[repairer.Id] = true
			intents = append(intents, Intent{
				Kind:      AssignRepair,
				Ship:      ShipRef{Id: repairer.Id},
				PatientId: patient.Id,
			})
			break
		}
	}

	return intents
}
