package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction states whether a transaction increases or decreases a balance.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// IsValid reports whether the direction is one of IN or OUT.
func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Transaction is an immutable record of a single balance mutation. Amount is
// always the positive magnitude of the movement; the sign lives in Direction.
// BalanceAfter snapshots the balance immediately after the mutation so a
// statement line can be reconciled without replaying history.
type Transaction struct {
	ID           string
	Seq          int64
	AccountID    string
	Amount       decimal.Decimal
	Currency     string
	Direction    Direction
	Description  string
	BalanceAfter decimal.Decimal
	CreatedAt    time.Time
}

// SignedDelta returns the balance change this transaction represents:
// +Amount for IN, -Amount for OUT.
func (t *Transaction) SignedDelta() decimal.Decimal {
	if t.Direction == DirectionOut {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Validate checks the request-shaped fields of a transaction before any
// storage access.
func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if !t.Direction.IsValid() {
		return ErrInvalidDirection
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if !IsWellFormedCurrency(t.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}
