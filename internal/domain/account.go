package domain

import (
	"time"
)

// Account represents a customer account holding one balance per currency.
type Account struct {
	ID         string
	CustomerID string
	Country    Country
	Balances   []*Balance
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FindBalance returns the balance held in the given currency, or nil when
// the account does not hold that currency.
func (a *Account) FindBalance(currency string) *Balance {
	for _, b := range a.Balances {
		if b.Currency == currency {
			return b
		}
	}
	return nil
}

// HasCurrency reports whether the account holds a balance in currency.
func (a *Account) HasCurrency(currency string) bool {
	return a.FindBalance(currency) != nil
}
