package strategy

import "fmt"

// Budget tracks what has been committed against the balance read at the start of a tick. The
// snapshot balance is never re-read mid-tick, so every spend is checked against what is left.
type Budget struct {
	balance   int64
	committed int64
}

func NewBudget(balance int64) *Budget {
	return &Budget{balance: balance}
}

func (b *Budget) Remaining() int64 {
	return b.balance - b.committed
}

func (b *Budget) Committed() int64 {
	return b.committed
}

func (b *Budget) CanAfford(cost int64) bool {
	return cost <= b.Remaining()
}

// Reserve commits cost if it fits in the remaining balance.
func (b *Budget) Reserve(cost int64) error {
	if !b.CanAfford(cost) {
		return fmt.Errorf("need %d, have %d: %w", cost, b.Remaining(), InsufficientFundsError)
	}

	b.committed += cost
	return nil
}
