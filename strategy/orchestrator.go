package strategy

import (
	"errors"
	"io"
	"log"
)

type Rand interface {
	Intn(n int) int
}

type Options struct {
	Rally        Point
	EnableAttack bool
	// Logger receives a line for every step that is skipped. Defaults to discarding.
	Logger *log.Logger
}

// Orchestrator plans one tick at a time. It keeps nothing between ticks except the ship name
// sequence.
type Orchestrator struct {
	factory ShipFactory
	rand    Rand
	opts    Options
}

// Plan is the outcome of one tick: the intents in the order they must be executed and how much
// of the balance they commit.
type Plan struct {
	Tic       int64
	Intents   []Intent
	Committed int64
}

func NewOrchestrator(seq *Sequence, r Rand, opts Options) *Orchestrator {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	return &Orchestrator{
		factory: NewShipFactory(seq),
		rand:    r,
		opts:    opts,
	}
}

// Plan runs economy, repair, construction, composition, upgrades and targeting against the
// snapshot, in that order.
func (o *Orchestrator) Plan(s Snapshot) Plan {
	b := NewBudget(s.Player.Balance)

	var intents []Intent
	intents = append(intents, o.economy(s, b)...)
	intents = append(intents, ScheduleRepairs(s.Ships)...)
	intents = append(intents, o.defense(s, b)...)

	batch := o.attackFleet(s, b)
	intents = append(intents, batch...)
	intents = append(intents, o.compose(s, batch)...)

	members := s.FleetMembers()
	upgrades, err := PlanUpgrades(members, s.MaxFleetId(), b)
	if err != nil {
		o.skipped(s, "upgrades", err)
	}
	intents = append(intents, upgrades...)

	courses, errs := PlanCourses(s.Fleets, members, s, o.opts.Rally)
	for _, err := range errs {
		o.skipped(s, "targeting", err)
	}
	intents = append(intents, courses...)

	return Plan{Tic: s.Tic, Intents: intents, Committed: b.Committed()}
}

func (o *Orchestrator) economy(s Snapshot, b *Budget) []Intent {
	var intents []Intent

	// Miners left idle on an owned planet go back to work.
	for _, p := range s.Planets {
		for _, ship := range s.ShipsAt(p.Location) {
			if !IsMiner(ship) || ship.InFleet() || ship.Action == ActionMine {
				continue
			}
			intents = append(intents, Intent{Kind: AssignMining, Ship: ShipRef{Id: ship.Id}, PlanetId: p.Id})
		}
	}

	for _, p := range s.Planets {
		if !CanAddMiner(p, s.ShipsAt(p.Location)) {
			continue
		}

		construct, err := o.factory.Build(Prospector, p, b)
		if err != nil {
			o.skipped(s, "mining", err)
			continue
		}
		intents = append(intents, construct, Intent{Kind: AssignMining, Ship: construct.Ship, PlanetId: p.Id})
	}

	return intents
}

func (o *Orchestrator) defense(s Snapshot, b *Budget) []Intent {
	var intents []Intent
	for _, p := range s.Planets {
		garrison := s.ShipsAt(p.Location)

		if CanAddSniperDefender(p, garrison) {
			if construct, err := o.factory.Build(SniperDefender, p, b); err != nil {
				o.skipped(s, "defense", err)
			} else {
				intents = append(intents, construct)
			}
		}

		if CanAddEngineerDefender(p, garrison) {
			if construct, err := o.factory.Build(EngineerDefender, p, b); err != nil {
				o.skipped(s, "defense", err)
			} else {
				intents = append(intents, construct)
			}
		}
	}

	return intents
}

// attackFleet builds the nine ships of a new attack fleet at a random owned planet when the
// whole fleet can be paid for.
func (o *Orchestrator) attackFleet(s Snapshot, b *Budget) []Intent {
	if !o.opts.EnableAttack {
		return nil
	}
	if len(s.Planets) == 0 {
		o.skipped(s, "attack fleet", NoEligibleTargetError)
		return nil
	}
	if !b.CanAfford(AttackFleetCost) {
		return nil
	}

	staging := s.Planets[o.rand.Intn(len(s.Planets))]

	var hulls []ShipType
	for i := 0; i < combatHulls; i++ {
		if o.rand.Intn(2) == 0 {
			hulls = append(hulls, Sniper)
		} else {
			hulls = append(hulls, Battler)
		}
	}
	for i := 0; i < fleetEngineers; i++ {
		hulls = append(hulls, Engineer)
	}
	hulls = append(hulls, Scout)

	var intents []Intent
	for _, t := range hulls {
		construct, err := o.factory.Build(t, staging, b)
		if err != nil {
			// CanAfford covered the whole fleet so this only happens on a bad cost table.
			o.skipped(s, "attack fleet", err)
			break
		}
		intents = append(intents, construct)
	}

	return intents
}

func (o *Orchestrator) compose(s Snapshot, batch []Intent) []Intent {
	refs := make([]ShipRef, 0, len(batch))
	for _, i := range batch {
		refs = append(refs, i.Ship)
	}

	maxFleetId := s.MaxFleetId()
	return ComposeFleet(refs, maxFleetId, len(s.FleetMembers()[maxFleetId]))
}

func (o *Orchestrator) skipped(s Snapshot, step string, err error) {
	reason := "skipped"
	switch {
	case errors.Is(err, InsufficientFundsError):
		reason = "insufficient funds"
	case errors.Is(err, NoEligibleTargetError):
		reason = "no target"
	case errors.Is(err, InconsistentSnapshotError):
		reason = "inconsistent snapshot"
	}

	o.opts.Logger.Printf("%s -- tic %d %s %s: %s\n", s.Player.Username, s.Tic, step, reason, err)
}
