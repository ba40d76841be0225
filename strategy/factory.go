package strategy

import (
	"fmt"
	"strings"
)

// ShipFactory turns archetypes into Construct intents, naming each new ship from its own
// sequence.
type ShipFactory struct {
	seq *Sequence
}

func NewShipFactory(seq *Sequence) ShipFactory {
	return ShipFactory{seq: seq}
}

// Build will reserve the cost of one ship and return the Construct intent for it. Nothing is
// reserved and InsufficientFundsError is returned when the budget can't cover it.
func (f ShipFactory) Build(t ShipType, p Planet, b *Budget) (Intent, error) {
	if err := b.Reserve(ShipCost); err != nil {
		return Intent{}, fmt.Errorf("unable to build %s at %s: %w", t.Name, p.Name, err)
	}

	return Intent{
		Kind:      Construct,
		Ship:      ShipRef{Name: f.shipName(t, p)},
		Archetype: t,
		PlanetId:  p.Id,
		Location:  p.Location,
	}, nil
}

func (f ShipFactory) shipName(t ShipType, p Planet) string {
	planet := strings.ReplaceAll(strings.TrimSpace(p.Name), " ", "-")
	return fmt.Sprintf("%s_%s_%d", t.Name, planet, f.seq.Next())
}
