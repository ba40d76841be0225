package strategy

// scriptedRand replays the given values in order, wrapping around.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}

	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func fleetId(id int64) *int64 {
	return &id
}

func planetAt(id int64, name string, mineLimit int, x, y float64) Planet {
	owner := int64(1)
	return Planet{Id: id, Name: name, MineLimit: mineLimit, Location: Point{X: x, Y: y}, ConquerorId: &owner}
}

func shipAt(id int64, loc Point, t ShipType) Ship {
	return Ship{
		Id:            id,
		PlayerId:      1,
		Name:          t.Name,
		CurrentHealth: 100,
		MaxHealth:     100,
		CurrentFuel:   100,
		MaxFuel:       100,
		Attack:        t.Attack,
		Defense:       t.Defense,
		Engineering:   t.Engineering,
		Prospecting:   t.Prospecting,
		Location:      loc,
	}
}

func inFleet(s Ship, id int64) Ship {
	s.FleetId = fleetId(id)
	return s
}

func kinds(intents []Intent) []IntentKind {
	var ks []IntentKind
	for _, i := range intents {
		ks = append(ks, i.Kind)
	}
	return ks
}

func countKind(intents []Intent, k IntentKind) int {
	n := 0
	for _, i := range intents {
		if i.Kind == k {
			n++
		}
	}
	return n
}
