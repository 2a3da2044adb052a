package domain

import "errors"

var (
	// Lookup errors
	ErrAccountNotFound = errors.New("account not found")

	// Ledger errors
	ErrInvalidCurrency   = errors.New("currency not supported")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConflict          = errors.New("concurrent modification, retry the request")

	// Request validation errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidDirection  = errors.New("direction must be IN or OUT")
	ErrEmptyDescription  = errors.New("description must not be empty")
	ErrEmptyCustomerID   = errors.New("customer ID must not be empty")
	ErrInvalidCountry    = errors.New("country not supported")
	ErrDuplicateCurrency = errors.New("duplicate currency in request")

	// ErrStorage wraps persistence failures the caller cannot act on.
	ErrStorage = errors.New("storage failure")
)
