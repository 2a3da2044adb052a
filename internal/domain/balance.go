package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the amount an account holds in one currency. A balance row is
// created once, when the currency is added to the account, and mutated only
// by the ledger engine inside a storage transaction.
type Balance struct {
	ID        string
	AccountID string
	Currency  string
	Amount    decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanApply checks whether applying the signed delta keeps the balance
// non-negative.
func (b *Balance) CanApply(delta decimal.Decimal) error {
	if b.Amount.Add(delta).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// Apply returns the new amount after the signed delta.
func (b *Balance) Apply(delta decimal.Decimal) decimal.Decimal {
	return b.Amount.Add(delta)
}
