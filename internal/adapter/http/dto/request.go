package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/bankcore/internal/domain"
	"github.com/iho/bankcore/internal/usecase"
)

// OpenAccountRequest represents a request to open an account.
type OpenAccountRequest struct {
	CustomerID string   `json:"customer_id"`
	Country    string   `json:"country"`
	Currencies []string `json:"currencies"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{
		CustomerID: r.CustomerID,
		Country:    domain.Country(r.Country),
		Currencies: r.Currencies,
	}
}

// ApplyTransactionRequest represents a request to move money on a balance.
type ApplyTransactionRequest struct {
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Direction   string          `json:"direction"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input.
func (r *ApplyTransactionRequest) ToUseCaseInput() usecase.ApplyTransactionInput {
	return usecase.ApplyTransactionInput{
		AccountID:   r.AccountID,
		Amount:      r.Amount,
		Currency:    r.Currency,
		Direction:   domain.Direction(r.Direction),
		Description: r.Description,
	}
}
